// Package errors provides error handling for AXC.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrMalformedInput) {
//	    // handle bad legacy document
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapOnce     = crdb.UnwrapOnce
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// CombineErrors returns the first error with the second attached as secondary.
var CombineErrors = crdb.CombineErrors

// Assertions
var AssertionFailedf = crdb.AssertionFailedf

// Sentinel errors for the converter pipeline.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrMalformedInput indicates a legacy document that does not parse or
	// is missing a required field, so no output can be produced for it
	ErrMalformedInput = New("malformed input")

	// ErrUnknownConversionMode indicates a conversion mode index outside the
	// known table
	ErrUnknownConversionMode = New("unknown conversion mode")

	// ErrFilesystem indicates an unreadable input or unwritable output path
	ErrFilesystem = New("filesystem error")
)

// IsMalformedInput checks if an error is or wraps ErrMalformedInput
func IsMalformedInput(err error) bool {
	return err != nil && Is(err, ErrMalformedInput)
}

// IsUnknownConversionMode checks if an error is or wraps ErrUnknownConversionMode
func IsUnknownConversionMode(err error) bool {
	return err != nil && Is(err, ErrUnknownConversionMode)
}

// IsFilesystem checks if an error is or wraps ErrFilesystem
func IsFilesystem(err error) bool {
	return err != nil && Is(err, ErrFilesystem)
}

// NewMalformedInput creates a malformed-input error with a formatted message
func NewMalformedInput(format string, args ...interface{}) error {
	return Wrap(ErrMalformedInput, Newf(format, args...).Error())
}

// WrapMalformedInput wraps an error as a malformed-input error with context
func WrapMalformedInput(err error, context string) error {
	return Wrap(Wrap(ErrMalformedInput, err.Error()), context)
}

// WrapFilesystem wraps an error as a filesystem error with context
func WrapFilesystem(err error, context string) error {
	return Wrap(Wrap(ErrFilesystem, err.Error()), context)
}

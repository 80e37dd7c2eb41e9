package logger

import (
	"github.com/teranos/AXC/sym"
	"go.uber.org/zap"
)

// Symbol-aware logging helpers.
// These functions log with the marker glyph as a structured field, not in the message.
//
// Usage:
//
//	// Instead of:
//	logger.Infow(sym.Watch + " Configuration reloaded", "path", path)
//
//	// Use:
//	logger.WatchInfow("Configuration reloaded", "path", path)
//
// This makes logs queryable by symbol and keeps messages clean.

// WatchInfow logs an info message with the Watch symbol (◉)
// Used for watch-mode lifecycle and triggers
func WatchInfow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, sym.Watch}, keysAndValues...)
		Logger.Infow(msg, fields...)
	}
}

// AddWatchSymbol wraps a logger with the Watch symbol (◉)
func AddWatchSymbol(l *zap.SugaredLogger) *zap.SugaredLogger {
	return l.With(FieldSymbol, sym.Watch)
}

// AddAlphabetSymbol wraps a logger with the Alphabet symbol (ɑ)
func AddAlphabetSymbol(l *zap.SugaredLogger) *zap.SugaredLogger {
	return l.With(FieldSymbol, sym.Alphabet)
}

// AddPaletteSymbol wraps a logger with the Palette symbol (◧)
func AddPaletteSymbol(l *zap.SugaredLogger) *zap.SugaredLogger {
	return l.With(FieldSymbol, sym.Palette)
}

package config

import "github.com/teranos/AXC/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Input and output directories are optional - empty falls back to the
	// getter defaults

	switch c.Emitter.Format {
	case "", EmitterFormatCLI, EmitterFormatJSON:
	default:
		return errors.Newf("emitter.format must be %q or %q, got %q", EmitterFormatCLI, EmitterFormatJSON, c.Emitter.Format)
	}

	switch c.Log.Theme {
	case "", "gruvbox", "everforest":
	default:
		return errors.Newf("log.theme must be \"gruvbox\" or \"everforest\", got %q", c.Log.Theme)
	}

	// Watch debounce: 0 = use default, negative = invalid
	if c.Watch.DebounceMs < 0 {
		return errors.Newf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMs)
	}

	return nil
}

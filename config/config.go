package config

import (
	"fmt"
	"time"
)

// Config represents the core AXC configuration
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Output  OutputConfig  `mapstructure:"output"`
	Emitter EmitterConfig `mapstructure:"emitter"`
	Log     LogConfig     `mapstructure:"log"`
	Watch   WatchConfig   `mapstructure:"watch"`
}

// InputConfig locates the legacy documents
type InputConfig struct {
	AlphabetsDir   string `mapstructure:"alphabets_dir"`   // holds alphabet.*.xml
	PalettesDir    string `mapstructure:"palettes_dir"`    // holds colour*.xml
	DefaultPalette string `mapstructure:"default_palette"` // palette file seeding the baseline (default: colour.xml)
}

// OutputConfig locates the converted documents
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// EmitterConfig selects how run progress is reported
type EmitterConfig struct {
	Format string `mapstructure:"format"` // "cli" or "json"
}

// Emitter format values
const (
	EmitterFormatCLI  = "cli"
	EmitterFormatJSON = "json"
)

// LogConfig configures log output
type LogConfig struct {
	Theme string `mapstructure:"theme"` // Color theme: gruvbox, everforest
	JSON  bool   `mapstructure:"json"`  // Structured JSON logs instead of console lines
}

// WatchConfig configures the watch command
type WatchConfig struct {
	DebounceMs int `mapstructure:"debounce_ms"` // Delay after a change before re-running (default: 500)
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)

// GetAlphabetsDir returns the legacy alphabets directory (default: ".")
func (c *Config) GetAlphabetsDir() string {
	if c.Input.AlphabetsDir == "" {
		return "."
	}
	return c.Input.AlphabetsDir
}

// GetPalettesDir returns the legacy palettes directory (default: ".")
func (c *Config) GetPalettesDir() string {
	if c.Input.PalettesDir == "" {
		return "."
	}
	return c.Input.PalettesDir
}

// GetOutputDir returns the converted-documents directory (default: "converted")
func (c *Config) GetOutputDir() string {
	if c.Output.Dir == "" {
		return "converted"
	}
	return c.Output.Dir
}

// GetEmitterFormat returns the progress emitter format (default: cli)
func (c *Config) GetEmitterFormat() string {
	if c.Emitter.Format == "" {
		return EmitterFormatCLI
	}
	return c.Emitter.Format
}

// GetLogTheme returns the log theme (default: everforest)
func (c *Config) GetLogTheme() string {
	if c.Log.Theme == "" {
		return "everforest"
	}
	return c.Log.Theme
}

// Debounce returns the watch debounce period (default: 500ms)
func (c *Config) Debounce() time.Duration {
	if c.Watch.DebounceMs <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(c.Watch.DebounceMs) * time.Millisecond
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Alphabets: %s, Palettes: %s, Output: %s, Emitter: %s}",
		c.GetAlphabetsDir(), c.GetPalettesDir(), c.GetOutputDir(), c.GetEmitterFormat())
}

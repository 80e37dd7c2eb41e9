package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Input defaults: both legacy families may share a directory since their
	// file patterns do not overlap
	v.SetDefault("input.alphabets_dir", ".")
	v.SetDefault("input.palettes_dir", ".")
	v.SetDefault("input.default_palette", "colour.xml")

	// Output defaults
	v.SetDefault("output.dir", "converted")

	// Emitter defaults
	v.SetDefault("emitter.format", EmitterFormatCLI)

	// Log defaults
	v.SetDefault("log.theme", "everforest")
	v.SetDefault("log.json", false)

	// Watch defaults
	v.SetDefault("watch.debounce_ms", 500)
}

// BindEnvVars explicitly binds configuration keys to environment variables.
// AutomaticEnv only resolves keys it has already seen, so the ones scripts
// commonly override are bound by hand.
func BindEnvVars(v *viper.Viper) {
	v.BindEnv("input.alphabets_dir", "AXC_INPUT_ALPHABETS_DIR")
	v.BindEnv("input.palettes_dir", "AXC_INPUT_PALETTES_DIR")
	v.BindEnv("input.default_palette", "AXC_INPUT_DEFAULT_PALETTE")
	v.BindEnv("output.dir", "AXC_OUTPUT_DIR")
	v.BindEnv("emitter.format", "AXC_EMITTER_FORMAT")
	v.BindEnv("log.theme", "AXC_LOG_THEME")
}

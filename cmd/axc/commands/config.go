package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/AXC/config"
)

var configFormat string

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage AXC configuration",
	Long: `Manage AXC configuration.

Configuration sources (in order of precedence):
1. Environment variables (AXC_ prefix)
2. Project config (./axc.toml, searched upward)
3. User config (~/.axc/axc.toml)
4. System config (/etc/axc/axc.toml)
5. Default values

Examples:
  axc config init       # Write a commented default axc.toml
  axc config show       # Show the effective configuration
  axc config validate   # Validate the effective configuration`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a commented default configuration file",
	Long: `Write the default configuration template to axc.toml, or to the given
path. An existing file is rotated into .back1 through .back3 first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Display the merged configuration from all sources in TOML, JSON, or
YAML format.`,
	RunE: runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the effective configuration",
	RunE:  runConfigValidate,
}

func init() {
	configShowCmd.Flags().StringVarP(&configFormat, "format", "f", "toml", "Output format (toml, json, yaml)")

	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configValidateCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := "axc.toml"
	if len(args) == 1 {
		path = args[0]
	}
	if err := config.InitFile(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if _, err := config.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	settings := config.GetViper().AllSettings()

	switch configFormat {
	case "json":
		data, err := json.MarshalIndent(settings, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config as JSON: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("failed to marshal config as YAML: %w", err)
		}
		fmt.Print(string(data))
	case "toml":
		out, err := config.RenderSettings(settings)
		if err != nil {
			return fmt.Errorf("failed to marshal config as TOML: %w", err)
		}
		fmt.Print(out)
	default:
		return fmt.Errorf("unknown format %q (expected toml, json, or yaml)", configFormat)
	}
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	fmt.Println("✓ Configuration is valid")
	return nil
}

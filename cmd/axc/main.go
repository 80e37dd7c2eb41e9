package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/AXC/cmd/axc/commands"
	"github.com/teranos/AXC/config"
	"github.com/teranos/AXC/logger"
)

var rootCmd = &cobra.Command{
	Use:   "axc",
	Short: "AXC - Legacy alphabet and colour document converter",
	Long: `AXC - One-shot converter for legacy XML documents.

AXC reads legacy alphabet documents (alphabet.*.xml) and colour palette
documents (colour*.xml) and writes them in the current schema: flat
alphabet attributes, collapsed redundant group wrappers, and named colors
diffed against the default palette.

Available commands:
  convert - Convert legacy documents (alphabets, palettes, or all)
  watch   - Re-run conversion when legacy documents change
  config  - Manage AXC configuration
  version - Show version information

Examples:
  axc convert all           # Convert both document families
  axc convert palettes -v   # Convert palettes, verbose
  axc watch                 # Convert on every change
  axc config init           # Write a default axc.toml`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize global logger before any command runs
		// Skip for commands whose stdout must stay clean (like 'config show')
		if cmd.Name() == "show" {
			return nil
		}

		verbosity, _ := cmd.Root().PersistentFlags().GetCount("verbose")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// The AXC_LOG_THEME environment variable still wins inside
		// Initialize, so config supplies the fallback only.
		logger.SetTheme(cfg.GetLogTheme())
		if err := logger.Initialize(cfg.Log.JSON, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debugw("Logger initialized",
			"level", logger.LevelName(verbosity),
			"showing", logger.VerbosityDescription(verbosity))
		return nil
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")

	// Add commands
	rootCmd.AddCommand(commands.ConvertCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

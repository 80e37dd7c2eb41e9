package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teranos/AXC/batch"
	"github.com/teranos/AXC/config"
	"github.com/teranos/AXC/logger"
	"github.com/teranos/AXC/sym"
)

// WatchCmd represents the watch command - continuous conversion
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: sym.Watch + " Re-run conversion when legacy documents change",
	Long: sym.Watch + ` Watch - continuous conversion.

Performs one full conversion run, then watches the input directories and
re-runs the affected converter family whenever a legacy alphabet or
palette document is written. Changes are debounced (watch.debounce_ms,
default 500) so a burst of saves triggers a single run.

The project axc.toml is watched as well; logging settings apply on
reload, directory changes require a restart.

Example:
  axc watch -v`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	verbosity, _ := cmd.Root().PersistentFlags().GetCount("verbose")

	var emitter batch.Emitter
	if cfg.GetEmitterFormat() == config.EmitterFormatJSON {
		emitter = batch.NewJSONEmitter()
	} else {
		emitter = batch.NewCLIEmitter(verbosity)
	}

	opts := runnerOptions(cfg)
	runner := batch.NewRunner(opts, emitter, logger.Logger)

	// Initial full run. Per-document failures are already reported by the
	// emitter; keep watching so a fixed document converts on save.
	if result, err := runner.Run(); err != nil {
		return err
	} else if !result.Success {
		logger.Warnw("Initial conversion run had failures", "failures", result.Failures)
	}

	watcher, err := batch.NewWatcher(runner, cfg.Debounce(), logger.Logger)
	if err != nil {
		return fmt.Errorf("failed to start document watcher: %w", err)
	}
	watcher.Start()
	defer watcher.Stop()

	if configPath := config.FindProjectConfig(); configPath != "" {
		configWatcher, err := config.NewConfigWatcher(configPath)
		if err != nil {
			logger.Warnw("Cannot watch config file", "path", configPath, "error", err)
		} else {
			configWatcher.OnReload(func(newCfg *config.Config) error {
				logger.SetTheme(newCfg.GetLogTheme())
				logger.WatchInfow("Configuration reloaded", "path", configPath)
				return nil
			})
			config.SetGlobalWatcher(configWatcher)
			configWatcher.Start()
			defer configWatcher.Stop()
		}
	}

	fmt.Printf("%s Watching for legacy document changes\n", sym.Watch)
	fmt.Printf("  %s Alphabets: %s\n", sym.Alphabet, opts.AlphabetsDir)
	fmt.Printf("  %s Palettes:  %s\n", sym.Palette, opts.PalettesDir)
	fmt.Printf("  %s Output:    %s\n", sym.Doc, opts.OutputDir)
	fmt.Printf("\n%s Press Ctrl+C to stop\n\n", sym.Watch)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Printf("\n%s Watch stopped\n", sym.Watch)
	logger.Cleanup()
	return nil
}

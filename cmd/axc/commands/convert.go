package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/AXC/batch"
	"github.com/teranos/AXC/config"
	"github.com/teranos/AXC/logger"
	"github.com/teranos/AXC/sym"
)

var (
	convertAlphabetsDir   string
	convertPalettesDir    string
	convertOutDir         string
	convertDefaultPalette string
	convertJSON           bool
)

// ConvertCmd represents the convert command - one-shot conversion runs
var ConvertCmd = &cobra.Command{
	Use:   "convert",
	Short: sym.Convert + " Convert legacy documents",
	Long: sym.Convert + ` Convert - one-shot legacy document conversion.

Reads legacy alphabet documents (alphabet.*.xml) and colour palette
documents (colour*.xml) from the input directories and writes converted
documents into the output directory. A failing document is reported and
skipped; the run continues with the rest.

The default palette (colour.xml) is converted first. Its named colors
become the baseline, and every other palette only emits the colors that
differ from it.

Examples:
  axc convert all                      # Both document families
  axc convert alphabets                # Only alphabet documents
  axc convert palettes --out-dir out   # Only palettes, explicit output
  axc convert all --json               # Machine-readable progress events`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var convertAlphabetsCmd = &cobra.Command{
	Use:   "alphabets",
	Short: sym.Alphabet + " Convert legacy alphabet documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, "alphabets")
	},
}

var convertPalettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: sym.Palette + " Convert legacy colour palette documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, "palettes")
	},
}

var convertAllCmd = &cobra.Command{
	Use:   "all",
	Short: sym.Doc + " Convert both document families",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, "all")
	},
}

func init() {
	ConvertCmd.PersistentFlags().StringVar(&convertAlphabetsDir, "alphabets-dir", "", "Directory containing legacy alphabet documents (default from config)")
	ConvertCmd.PersistentFlags().StringVar(&convertPalettesDir, "palettes-dir", "", "Directory containing legacy palette documents (default from config)")
	ConvertCmd.PersistentFlags().StringVar(&convertOutDir, "out-dir", "", "Directory for converted documents (default from config)")
	ConvertCmd.PersistentFlags().StringVar(&convertDefaultPalette, "default-palette", "", "File name of the baseline palette (default colour.xml)")
	ConvertCmd.PersistentFlags().BoolVar(&convertJSON, "json", false, "Emit progress events and the run result as JSON")

	ConvertCmd.AddCommand(convertAlphabetsCmd)
	ConvertCmd.AddCommand(convertPalettesCmd)
	ConvertCmd.AddCommand(convertAllCmd)
}

func runConvert(cmd *cobra.Command, family string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	verbosity, _ := cmd.Root().PersistentFlags().GetCount("verbose")
	jsonEvents := convertJSON || cfg.GetEmitterFormat() == config.EmitterFormatJSON

	var emitter batch.Emitter
	if jsonEvents {
		emitter = batch.NewJSONEmitter()
	} else {
		emitter = batch.NewCLIEmitter(verbosity)
	}

	runner := batch.NewRunner(runnerOptions(cfg), emitter, logger.Logger)

	var result *batch.Result
	switch family {
	case "alphabets":
		result, err = runner.RunAlphabets()
	case "palettes":
		result, err = runner.RunPalettes()
	default:
		result, err = runner.Run()
	}
	if err != nil {
		return err
	}

	if jsonEvents {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to encode run result: %w", err)
		}
	}

	if !result.Success {
		return fmt.Errorf("conversion failed: %s", result.Message)
	}
	return nil
}

// runnerOptions merges configured directories with command line overrides.
func runnerOptions(cfg *config.Config) batch.Options {
	opts := batch.Options{
		AlphabetsDir:   cfg.GetAlphabetsDir(),
		PalettesDir:    cfg.GetPalettesDir(),
		OutputDir:      cfg.GetOutputDir(),
		DefaultPalette: cfg.Input.DefaultPalette,
	}
	if convertAlphabetsDir != "" {
		opts.AlphabetsDir = convertAlphabetsDir
	}
	if convertPalettesDir != "" {
		opts.PalettesDir = convertPalettesDir
	}
	if convertOutDir != "" {
		opts.OutputDir = convertOutDir
	}
	if convertDefaultPalette != "" {
		opts.DefaultPalette = convertDefaultPalette
	}
	return opts
}

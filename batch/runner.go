// Package batch discovers legacy documents, runs the converters over them,
// and aggregates per-file outcomes into a run Result. Failed files are
// recorded and the run continues; only setup problems abort it.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/AXC/alphabet"
	"github.com/teranos/AXC/errors"
	"github.com/teranos/AXC/logger"
	"github.com/teranos/AXC/palette"
)

// Options configures a conversion run.
type Options struct {
	// AlphabetsDir holds the legacy alphabet documents.
	AlphabetsDir string

	// PalettesDir holds the legacy palette documents.
	PalettesDir string

	// OutputDir receives every converted document.
	OutputDir string

	// DefaultPalette is the file name (inside PalettesDir) of the palette
	// that seeds the baseline. Empty means palette.DefaultFileName.
	DefaultPalette string
}

// Runner executes one-shot conversion runs over the legacy input
// directories.
type Runner struct {
	opts    Options
	emitter Emitter
	logger  *zap.SugaredLogger
}

// NewRunner creates a runner. A nil emitter gets a quiet CLI emitter and a
// nil logger falls back to the global one.
func NewRunner(opts Options, emitter Emitter, log *zap.SugaredLogger) *Runner {
	if opts.DefaultPalette == "" {
		opts.DefaultPalette = palette.DefaultFileName
	}
	if emitter == nil {
		emitter = NewCLIEmitter(0)
	}
	if log == nil {
		log = logger.ComponentLogger("batch")
	}
	return &Runner{opts: opts, emitter: emitter, logger: log}
}

// Run converts both document families.
func (r *Runner) Run() (*Result, error) {
	return r.run(true, true)
}

// RunAlphabets converts only the legacy alphabet documents.
func (r *Runner) RunAlphabets() (*Result, error) {
	return r.run(true, false)
}

// RunPalettes converts only the legacy palette documents.
func (r *Runner) RunPalettes() (*Result, error) {
	return r.run(false, true)
}

func (r *Runner) run(alphabets, palettes bool) (*Result, error) {
	result := &Result{
		RunID:     uuid.NewString(),
		OutputDir: r.opts.OutputDir,
		StartTime: time.Now(),
	}
	if alphabets {
		result.AlphabetsDir = r.opts.AlphabetsDir
	}
	if palettes {
		result.PalettesDir = r.opts.PalettesDir
	}

	if err := os.MkdirAll(r.opts.OutputDir, 0755); err != nil {
		return nil, errors.WrapFilesystem(err, "creating output directory "+r.opts.OutputDir)
	}

	if alphabets {
		r.runAlphabets(result)
	}
	if palettes {
		r.runPalettes(result)
	}

	result.EndTime = time.Now()
	result.Success = result.Failures == 0
	if result.Success {
		result.Message = fmt.Sprintf("converted %d of %d files", result.FilesProcessed-result.Skipped, result.FilesProcessed)
	} else {
		result.Message = fmt.Sprintf("%d of %d files failed", result.Failures, result.FilesProcessed)
	}

	r.emitter.EmitComplete(map[string]interface{}{
		"run_id":   result.RunID,
		"files":    result.FilesProcessed,
		"outputs":  result.OutputsWritten,
		"failures": result.Failures,
		"duration": result.Duration().Round(time.Millisecond).String(),
	})
	r.logger.Infow("Conversion run finished",
		logger.FieldRunID, result.RunID,
		logger.FieldCount, result.FilesProcessed,
		logger.FieldOutput, result.OutputsWritten,
		logger.FieldFailed, result.Failures,
		logger.FieldDurationMS, result.Duration().Milliseconds())
	return result, nil
}

// record folds one file outcome into the run result and surfaces it.
func (r *Runner) record(result *Result, fr FileResult) {
	result.Files = append(result.Files, fr)
	result.FilesProcessed++
	result.OutputsWritten += len(fr.Outputs)
	if !fr.Success {
		result.Failures++
	} else if len(fr.Outputs) == 0 {
		result.Skipped++
	}
	r.emitter.EmitFile(fr)
}

func (r *Runner) runAlphabets(result *Result) {
	pattern := filepath.Join(r.opts.AlphabetsDir, alphabet.FilePattern)
	files, err := filepath.Glob(pattern)
	if err != nil {
		r.emitter.EmitError("alphabets", err)
		r.record(result, FileResult{Path: pattern, Kind: KindAlphabet, Error: err.Error()})
		return
	}

	r.emitter.EmitStage("alphabets", fmt.Sprintf("Converting %d legacy alphabet documents", len(files)))
	if len(files) == 0 {
		r.logger.Warnw("No legacy alphabet documents found", "pattern", pattern)
		r.emitter.EmitInfo("No legacy alphabet documents found in " + r.opts.AlphabetsDir)
		return
	}

	conv := alphabet.NewConverter(r.opts.OutputDir, logger.AddAlphabetSymbol(r.logger))
	converted := 0
	for _, path := range files {
		outputs, err := conv.ConvertFile(path)
		fr := FileResult{Path: path, Kind: KindAlphabet, Outputs: outputs, Success: err == nil}
		if err != nil {
			fr.Error = err.Error()
			r.emitter.EmitError("alphabets", errors.Wrap(err, path))
		} else {
			converted++
		}
		r.record(result, fr)
	}
	r.emitter.EmitProgress(converted, map[string]interface{}{"type": "alphabet documents"})
}

func (r *Runner) runPalettes(result *Result) {
	pattern := filepath.Join(r.opts.PalettesDir, palette.FilePattern)
	files, err := filepath.Glob(pattern)
	if err != nil {
		r.emitter.EmitError("palettes", err)
		r.record(result, FileResult{Path: pattern, Kind: KindPalette, Error: err.Error()})
		return
	}

	r.emitter.EmitStage("palettes", fmt.Sprintf("Converting %d legacy palette documents", len(files)))
	if len(files) == 0 {
		r.logger.Warnw("No legacy palette documents found", "pattern", pattern)
		r.emitter.EmitInfo("No legacy palette documents found in " + r.opts.PalettesDir)
		return
	}

	conv := palette.NewConverter(r.opts.OutputDir, logger.AddPaletteSymbol(r.logger))
	defaultPath := filepath.Join(r.opts.PalettesDir, r.opts.DefaultPalette)
	converted := 0

	// The default palette goes first so its named colors can serve as the
	// baseline for every other palette.
	var baseline map[string]string
	if _, err := os.Stat(defaultPath); err == nil {
		outPath, named, err := conv.ConvertFile(defaultPath, nil)
		fr := FileResult{Path: defaultPath, Kind: KindPalette, Success: err == nil}
		if err != nil {
			fr.Error = err.Error()
			r.emitter.EmitError("palettes", errors.Wrap(err, defaultPath))
			r.logger.Warnw("Default palette failed; later palettes emit every named color", "path", defaultPath)
		} else {
			fr.Outputs = []string{outPath}
			baseline = named
			converted++
		}
		r.record(result, fr)
	} else {
		r.logger.Warnw("No default palette found; emitting every named color", "expected", defaultPath)
		r.emitter.EmitInfo("No default palette " + r.opts.DefaultPalette + " found; emitting every named color")
	}

	for _, path := range files {
		if path == defaultPath {
			continue
		}
		outPath, _, err := conv.ConvertFile(path, baseline)
		fr := FileResult{Path: path, Kind: KindPalette, Success: err == nil}
		if err != nil {
			fr.Error = err.Error()
			r.emitter.EmitError("palettes", errors.Wrap(err, path))
		} else {
			fr.Outputs = []string{outPath}
			converted++
		}
		r.record(result, fr)
	}
	r.emitter.EmitProgress(converted, map[string]interface{}{"type": "palette documents"})
}

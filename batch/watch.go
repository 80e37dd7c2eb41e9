package batch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/AXC/alphabet"
	"github.com/teranos/AXC/errors"
	"github.com/teranos/AXC/logger"
	"github.com/teranos/AXC/palette"
)

// DefaultDebounce spaces out rapid editor writes before a watch run fires.
const DefaultDebounce = 500 * time.Millisecond

// Watcher observes the legacy input directories and re-runs the relevant
// converter batch when documents change. Each trigger is the same
// synchronous one-shot run the convert command performs.
type Watcher struct {
	runner  *Runner
	watcher *fsnotify.Watcher
	logger  *zap.SugaredLogger

	outDir string

	mu             sync.Mutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	pendingAlpha   bool
	pendingPal     bool
}

// NewWatcher creates a watcher over the runner's input directories. A
// missing directory is skipped with a warning; at least one must be
// watchable. Zero debounce means DefaultDebounce.
func NewWatcher(runner *Runner, debounce time.Duration, log *zap.SugaredLogger) (*Watcher, error) {
	if log == nil {
		log = logger.Logger
	}
	log = logger.AddWatchSymbol(log)
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating fsnotify watcher")
	}

	dirs := []string{runner.opts.AlphabetsDir}
	if runner.opts.PalettesDir != runner.opts.AlphabetsDir {
		dirs = append(dirs, runner.opts.PalettesDir)
	}
	watched := 0
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			log.Warnw("Cannot watch input directory", logger.FieldDir, dir, logger.FieldError, err)
			continue
		}
		watched++
	}
	if watched == 0 {
		fsw.Close()
		return nil, errors.New("no input directory could be watched")
	}

	return &Watcher{
		runner:         runner,
		watcher:        fsw,
		logger:         log,
		outDir:         filepath.Clean(runner.opts.OutputDir),
		debouncePeriod: debounce,
	}, nil
}

// Start begins watching for legacy document changes.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops watching.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Write != fsnotify.Write && event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			// A run's own writes must not retrigger it when the output
			// directory overlaps an input directory.
			if filepath.Dir(filepath.Clean(event.Name)) == w.outDir {
				continue
			}

			base := filepath.Base(event.Name)
			alphaMatch, _ := filepath.Match(alphabet.FilePattern, base)
			palMatch, _ := filepath.Match(palette.FilePattern, base)
			if !alphaMatch && !palMatch {
				continue
			}

			w.logger.Infow("Legacy document changed",
				logger.FieldFile, event.Name,
				"op", event.Op.String())
			w.scheduleRun(alphaMatch, palMatch)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warnw("Watcher error", logger.FieldError, err)
		}
	}
}

// scheduleRun debounces rapid changes and fires one run for the families
// seen since the last run.
func (w *Watcher) scheduleRun(alphabets, palettes bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pendingAlpha = w.pendingAlpha || alphabets
	w.pendingPal = w.pendingPal || palettes

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	alphabets, palettes := w.pendingAlpha, w.pendingPal
	w.pendingAlpha, w.pendingPal = false, false
	w.mu.Unlock()

	if !alphabets && !palettes {
		return
	}

	result, err := w.runner.run(alphabets, palettes)
	if err != nil {
		w.logger.Errorw("Watch-triggered run failed", logger.FieldError, err)
		return
	}
	w.logger.Infow("Watch-triggered run finished",
		logger.FieldRunID, result.RunID,
		logger.FieldCount, result.FilesProcessed,
		logger.FieldFailed, result.Failures)
}

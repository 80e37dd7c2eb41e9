package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/teranos/AXC/logger"
	"github.com/teranos/AXC/sym"
)

// Emitter is the progress sink for conversion runs. Implementations:
//   - CLIEmitter: pretty-printed terminal output using pterm
//   - JSONEmitter: structured JSON events for machine consumption
type Emitter interface {
	// EmitStage announces the start of a processing stage
	EmitStage(stage string, message string)

	// EmitFile announces the outcome of a single converted input file
	EmitFile(fr FileResult)

	// EmitProgress announces batch progress with count and optional metadata
	EmitProgress(count int, metadata map[string]interface{})

	// EmitComplete announces successful completion with summary
	EmitComplete(summary map[string]interface{})

	// EmitError announces an error during processing
	EmitError(stage string, err error)

	// EmitInfo emits a general informational message
	EmitInfo(message string)
}

// ProgressEvent is one structured JSON progress event.
type ProgressEvent struct {
	Type      string                 `json:"type"`      // "stage", "file", "progress", "complete", "error", "info"
	Timestamp time.Time              `json:"timestamp"` // When this event occurred
	Data      map[string]interface{} `json:"data"`      // Event-specific data
}

// kindGlyph maps a document family to its marker glyph.
func kindGlyph(kind Kind) string {
	switch kind {
	case KindAlphabet:
		return sym.Alphabet
	case KindPalette:
		return sym.Palette
	default:
		return sym.Doc
	}
}

// CLIEmitter outputs pretty-printed progress to the terminal using pterm.
type CLIEmitter struct {
	verbosity int
}

// NewCLIEmitter creates a CLI progress emitter for terminal output.
func NewCLIEmitter(verbosity int) *CLIEmitter {
	return &CLIEmitter{verbosity: verbosity}
}

// EmitStage prints a stage announcement.
func (e *CLIEmitter) EmitStage(stage string, message string) {
	pterm.Printf("%s %s: %s\n", sym.Convert, pterm.LightCyan(stage), message)
}

// EmitFile prints one converted file. Successes only show at -v; failures
// always show.
func (e *CLIEmitter) EmitFile(fr FileResult) {
	if !fr.Success {
		pterm.Error.Printf("%s %s: %s\n", kindGlyph(fr.Kind), fr.Path, fr.Error)
		return
	}
	if !logger.ShouldOutput(e.verbosity, logger.OutputFileInfo) {
		return
	}
	for _, out := range fr.Outputs {
		pterm.Printf("%s %s %s\n", kindGlyph(fr.Kind), pterm.Green("wrote"), out)
	}
}

// EmitProgress prints a stage's converted-document count.
func (e *CLIEmitter) EmitProgress(count int, metadata map[string]interface{}) {
	if itemType, ok := metadata["type"].(string); ok {
		pterm.Printf("%s Converted %s %s\n", sym.Doc, pterm.Green(fmt.Sprintf("%d", count)), itemType)
	} else {
		pterm.Printf("%s Converted %s files\n", sym.Doc, pterm.Green(fmt.Sprintf("%d", count)))
	}
}

// EmitComplete prints the run summary.
func (e *CLIEmitter) EmitComplete(summary map[string]interface{}) {
	pterm.Success.Println("Conversion complete")
	if logger.ShouldOutput(e.verbosity, logger.OutputFileInfo) {
		for key, value := range summary {
			pterm.Printf("  %s: %v\n", key, value)
		}
	}
}

// EmitError prints an error.
func (e *CLIEmitter) EmitError(stage string, err error) {
	pterm.Error.Printf("Error in %s: %v\n", stage, err)
}

// EmitInfo prints an informational message.
func (e *CLIEmitter) EmitInfo(message string) {
	if logger.ShouldOutput(e.verbosity, logger.OutputProgress) {
		pterm.Info.Println(message)
	}
}

// JSONEmitter outputs structured JSON events to stdout.
type JSONEmitter struct {
	encoder *json.Encoder
}

// NewJSONEmitter creates a JSON progress emitter writing to stdout.
func NewJSONEmitter() *JSONEmitter {
	return &JSONEmitter{
		encoder: json.NewEncoder(os.Stdout),
	}
}

// EmitStage emits a stage event as JSON.
func (e *JSONEmitter) EmitStage(stage string, message string) {
	e.encoder.Encode(ProgressEvent{
		Type:      "stage",
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"stage":   stage,
			"message": message,
		},
	})
}

// EmitFile emits a file event as JSON.
func (e *JSONEmitter) EmitFile(fr FileResult) {
	data := map[string]interface{}{
		"path":    fr.Path,
		"kind":    fr.Kind,
		"outputs": fr.Outputs,
		"success": fr.Success,
	}
	if fr.Error != "" {
		data["error"] = fr.Error
	}
	e.encoder.Encode(ProgressEvent{
		Type:      "file",
		Timestamp: time.Now(),
		Data:      data,
	})
}

// EmitProgress emits a progress event as JSON.
func (e *JSONEmitter) EmitProgress(count int, metadata map[string]interface{}) {
	data := map[string]interface{}{
		"count": count,
	}
	for k, v := range metadata {
		data[k] = v
	}
	e.encoder.Encode(ProgressEvent{
		Type:      "progress",
		Timestamp: time.Now(),
		Data:      data,
	})
}

// EmitComplete emits a completion event as JSON.
func (e *JSONEmitter) EmitComplete(summary map[string]interface{}) {
	e.encoder.Encode(ProgressEvent{
		Type:      "complete",
		Timestamp: time.Now(),
		Data:      summary,
	})
}

// EmitError emits an error event as JSON.
func (e *JSONEmitter) EmitError(stage string, err error) {
	e.encoder.Encode(ProgressEvent{
		Type:      "error",
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"stage": stage,
			"error": err.Error(),
		},
	})
}

// EmitInfo emits an info event as JSON.
func (e *JSONEmitter) EmitInfo(message string) {
	e.encoder.Encode(ProgressEvent{
		Type:      "info",
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"message": message,
		},
	})
}

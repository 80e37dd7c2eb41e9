package batch

import "time"

// Kind discriminates the two legacy document families a run converts.
type Kind string

const (
	KindAlphabet Kind = "alphabet"
	KindPalette  Kind = "palette"
)

// FileResult records the outcome of converting one input file.
type FileResult struct {
	Path    string   `json:"path"`
	Kind    Kind     `json:"kind"`
	Outputs []string `json:"outputs,omitempty"`
	Success bool     `json:"success"`
	Error   string   `json:"error,omitempty"`
}

// Result aggregates one conversion run.
type Result struct {
	RunID        string `json:"run_id"`
	AlphabetsDir string `json:"alphabets_dir,omitempty"`
	PalettesDir  string `json:"palettes_dir,omitempty"`
	OutputDir    string `json:"output_dir"`

	FilesProcessed int `json:"files_processed"`
	OutputsWritten int `json:"outputs_written"`
	Failures       int `json:"failures"`

	// Skipped counts inputs that converted cleanly but produced no
	// documents, such as an alphabet file without alphabet elements.
	Skipped int `json:"skipped"`

	Files     []FileResult `json:"files,omitempty"`
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	StartTime time.Time    `json:"start_time"`
	EndTime   time.Time    `json:"end_time"`
}

// Duration is the wall-clock time the run took.
func (r *Result) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

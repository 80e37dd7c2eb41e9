package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
// Verbosity Levels:
//
//	0 (default) - User-facing output only: results, errors with hints, final status
//	1 (-v)      - + Progress, discovery, per-file conversion status
//	2 (-vv)     - + Timing, config loaded, document details, baseline diffs
//	3 (-vvv)    - + Tree operations (collapse, color migration), watch events
//	4 (-vvvv)   - + Full emitted tree dumps

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults    OutputCategory = iota // Conversion results, command output
	OutputErrors                           // Errors with hints and resolution steps
	OutputUserStatus                       // Final success/failure status

	// Level 1 (-v) - Informational
	OutputProgress  // Progress indicators (e.g., "Converting 5/12 alphabets")
	OutputStartup   // Startup banner, config summary
	OutputDiscovery // Input files discovered per converter
	OutputFileInfo  // Per-file conversion summaries

	// Level 2 (-vv) - Detailed
	OutputTiming         // Operation timing (e.g., "conversion took 42ms")
	OutputConfig         // Config values loaded/applied
	OutputDocumentDetail // Document names, output paths, per-document counts
	OutputBaseline       // Baseline named-color diffs per palette

	// Level 3 (-vvv) - Debug
	OutputTreeOps     // Group collapses, color migrations, node emissions
	OutputWatchEvents // Filesystem events driving watch mode
	OutputInternalOp  // Internal operation flow

	// Level 4 (-vvvv) - Full dump
	OutputTreeDump // Full emitted tree contents
	OutputDataDump // Full data structure contents
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	// Level 0 - Always shown
	OutputResults:    VerbosityUser,
	OutputErrors:     VerbosityUser,
	OutputUserStatus: VerbosityUser,

	// Level 1 - Informational
	OutputProgress:  VerbosityInfo,
	OutputStartup:   VerbosityInfo,
	OutputDiscovery: VerbosityInfo,
	OutputFileInfo:  VerbosityInfo,

	// Level 2 - Detailed
	OutputTiming:         VerbosityDebug,
	OutputConfig:         VerbosityDebug,
	OutputDocumentDetail: VerbosityDebug,
	OutputBaseline:       VerbosityDebug,

	// Level 3 - Debug
	OutputTreeOps:     VerbosityTrace,
	OutputWatchEvents: VerbosityTrace,
	OutputInternalOp:  VerbosityTrace,

	// Level 4 - Full dump
	OutputTreeDump: VerbosityAll,
	OutputDataDump: VerbosityAll,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityAll
	}
	return verbosity >= minLevel
}

// categoryNames provides human-readable names for output categories
var categoryNames = map[OutputCategory]string{
	OutputResults:        "results",
	OutputErrors:         "errors",
	OutputUserStatus:     "status",
	OutputProgress:       "progress",
	OutputStartup:        "startup",
	OutputDiscovery:      "discovery",
	OutputFileInfo:       "file-info",
	OutputTiming:         "timing",
	OutputConfig:         "config",
	OutputDocumentDetail: "document-detail",
	OutputBaseline:       "baseline",
	OutputTreeOps:        "tree-ops",
	OutputWatchEvents:    "watch-events",
	OutputInternalOp:     "internal",
	OutputTreeDump:       "tree-dump",
	OutputDataDump:       "data-dump",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}

// EnabledCategories returns all output categories enabled at the given verbosity
func EnabledCategories(verbosity int) []OutputCategory {
	var enabled []OutputCategory
	for cat, minLevel := range categoryLevels {
		if verbosity >= minLevel {
			enabled = append(enabled, cat)
		}
	}
	return enabled
}

// VerbosityDescription returns a description of what's shown at each level
func VerbosityDescription(verbosity int) string {
	switch verbosity {
	case VerbosityUser:
		return "results and errors only"
	case VerbosityInfo:
		return "results, errors, progress, and per-file status"
	case VerbosityDebug:
		return "above + timing, config, document details"
	case VerbosityTrace:
		return "above + tree operations and watch events"
	case VerbosityAll:
		return "full output including emitted tree dumps"
	default:
		if verbosity > VerbosityAll {
			return "maximum verbosity"
		}
		return "unknown verbosity level"
	}
}

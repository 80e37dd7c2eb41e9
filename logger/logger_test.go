package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		verbosity  int
		wantErr    bool
	}{
		{
			name:       "JSON output mode",
			jsonOutput: true,
			verbosity:  VerbosityInfo,
			wantErr:    false,
		},
		{
			name:       "Console output mode",
			jsonOutput: false,
			verbosity:  VerbosityInfo,
			wantErr:    false,
		},
		{
			name:       "Console quiet mode",
			jsonOutput: false,
			verbosity:  VerbosityUser,
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset global logger
			Logger = nil
			JSONOutput = false

			err := Initialize(tt.jsonOutput, tt.verbosity)
			if (err != nil) != tt.wantErr {
				t.Errorf("Initialize() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if Logger == nil {
					t.Error("Initialize() did not set global Logger")
				}
				if JSONOutput != tt.jsonOutput {
					t.Errorf("Initialize() JSONOutput = %v, want %v", JSONOutput, tt.jsonOutput)
				}
			}

			// Cleanup
			if Logger != nil {
				Logger.Sync()
				Logger = nil
			}
		})
	}
}

func TestCleanup(t *testing.T) {
	tests := []struct {
		name        string
		setupLogger bool
	}{
		{
			name:        "Cleanup with initialized logger",
			setupLogger: true,
		},
		{
			name:        "Cleanup with nil logger (should not panic)",
			setupLogger: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupLogger {
				config := zap.NewDevelopmentConfig()
				zapLogger, err := config.Build()
				if err != nil {
					t.Fatalf("Failed to create test logger: %v", err)
				}
				Logger = zapLogger.Sugar()
			} else {
				Logger = nil
			}

			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Cleanup() panicked unexpectedly: %v", r)
				}
			}()

			Cleanup()

			if tt.setupLogger && Logger == nil {
				t.Error("Cleanup() should not nil out the logger")
			}

			Logger = nil
		})
	}
}

// newTestLogger creates a logger for testing without modifying global state
func newTestLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	zapLogger, err := config.Build()
	if err != nil {
		t.Fatalf("Failed to create test logger: %v", err)
	}

	return zapLogger.Sugar()
}

// TestLoggingFunctions tests the package-level logging functions
func TestLoggingFunctions(t *testing.T) {
	Logger = newTestLogger(t)
	defer func() {
		if Logger != nil {
			Logger.Sync()
			Logger = nil
		}
	}()

	// Test all logging functions (should not panic)
	t.Run("Info functions", func(t *testing.T) {
		Info("test")
		Infof("test %s", "format")
		Infow("test", "key", "value")
	})

	t.Run("Error functions", func(t *testing.T) {
		Error("test")
		Errorf("test %s", "format")
		Errorw("test", "key", "value")
	})

	t.Run("Warn functions", func(t *testing.T) {
		Warn("test")
		Warnf("test %s", "format")
		Warnw("test", "key", "value")
	})

	t.Run("Debug functions", func(t *testing.T) {
		Debug("test")
		Debugf("test %s", "format")
		Debugw("test", "key", "value")
	})

	t.Run("With nil logger (should not panic)", func(t *testing.T) {
		Logger = nil

		Info("test")
		Infof("test %s", "format")
		Infow("test", "key", "value")
		Error("test")
		Errorf("test %s", "format")
		Errorw("test", "key", "value")
		Warn("test")
		Warnf("test %s", "format")
		Warnw("test", "key", "value")
		Debug("test")
		Debugf("test %s", "format")
		Debugw("test", "key", "value")
	})
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{VerbosityTrace, zapcore.DebugLevel},
		{VerbosityAll, zapcore.DebugLevel},
		{99, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		if got := VerbosityToLevel(tt.verbosity); got != tt.want {
			t.Errorf("VerbosityToLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestVerbosityHelpers(t *testing.T) {
	if ShouldLogTrace(VerbosityDebug) {
		t.Error("ShouldLogTrace should be false below -vvv")
	}
	if !ShouldLogTrace(VerbosityTrace) {
		t.Error("ShouldLogTrace should be true at -vvv")
	}
	if ShouldLogAll(VerbosityTrace) {
		t.Error("ShouldLogAll should be false below -vvvv")
	}
	if !ShouldLogAll(VerbosityAll) {
		t.Error("ShouldLogAll should be true at -vvvv")
	}

	if got := LevelName(VerbosityInfo); got != "Info (-v)" {
		t.Errorf("LevelName(VerbosityInfo) = %q", got)
	}
	if got := LevelName(99); got != "All (-vvvv+)" {
		t.Errorf("LevelName(99) = %q", got)
	}
}

func TestEnabledCategories(t *testing.T) {
	quiet := EnabledCategories(VerbosityUser)
	all := EnabledCategories(VerbosityAll)
	if len(quiet) >= len(all) {
		t.Errorf("quiet mode enables %d categories, full verbosity %d", len(quiet), len(all))
	}
	for _, cat := range quiet {
		if !ShouldOutput(VerbosityAll, cat) {
			t.Errorf("category %s enabled when quiet but not at full verbosity", CategoryName(cat))
		}
	}
	if len(all) != len(categoryLevels) {
		t.Errorf("full verbosity should enable every category: got %d of %d", len(all), len(categoryLevels))
	}
}

func TestVerbosityDescription(t *testing.T) {
	if desc := VerbosityDescription(VerbosityUser); desc != "results and errors only" {
		t.Errorf("VerbosityDescription(VerbosityUser) = %q", desc)
	}
	if desc := VerbosityDescription(VerbosityAll); desc != "full output including emitted tree dumps" {
		t.Errorf("VerbosityDescription(VerbosityAll) = %q", desc)
	}
}

func TestShouldOutput(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		category  OutputCategory
		want      bool
	}{
		{"errors always shown", VerbosityUser, OutputErrors, true},
		{"progress hidden by default", VerbosityUser, OutputProgress, false},
		{"progress shown at -v", VerbosityInfo, OutputProgress, true},
		{"timing hidden at -v", VerbosityInfo, OutputTiming, false},
		{"timing shown at -vv", VerbosityDebug, OutputTiming, true},
		{"tree ops shown at -vvv", VerbosityTrace, OutputTreeOps, true},
		{"tree dump needs -vvvv", VerbosityTrace, OutputTreeDump, false},
		{"tree dump shown at -vvvv", VerbosityAll, OutputTreeDump, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldOutput(tt.verbosity, tt.category); got != tt.want {
				t.Errorf("ShouldOutput(%d, %s) = %v, want %v",
					tt.verbosity, CategoryName(tt.category), got, tt.want)
			}
		})
	}
}

func TestCategoryName(t *testing.T) {
	if got := CategoryName(OutputBaseline); got != "baseline" {
		t.Errorf("CategoryName(OutputBaseline) = %q, want baseline", got)
	}
	if got := CategoryName(OutputCategory(-1)); got != "unknown" {
		t.Errorf("CategoryName on unknown category = %q, want unknown", got)
	}
}

func TestFieldsFromContext(t *testing.T) {
	ctx := context.Background()
	if fields := FieldsFromContext(ctx); len(fields) != 0 {
		t.Errorf("empty context should produce no fields, got %v", fields)
	}

	ctx = WithRunID(ctx, "run-123")
	ctx = WithComponent(ctx, "batch")

	fields := FieldsFromContext(ctx)
	if len(fields) != 4 {
		t.Fatalf("expected 4 field elements, got %d: %v", len(fields), fields)
	}
	if fields[0] != FieldRunID || fields[1] != "run-123" {
		t.Errorf("run_id field pair wrong: %v", fields[:2])
	}
	if fields[2] != FieldComponent || fields[3] != "batch" {
		t.Errorf("component field pair wrong: %v", fields[2:4])
	}
}

func TestComponentLogger(t *testing.T) {
	Logger = newTestLogger(t)
	defer func() {
		Logger.Sync()
		Logger = nil
	}()

	cl := ComponentLogger("alphabet.convert")
	if cl == nil {
		t.Fatal("ComponentLogger returned nil")
	}
	cl.Infow("component logger works", "file", "alphabet.test.xml")

	child := ChildLogger(cl, FieldFile, "x.xml")
	if child == nil {
		t.Fatal("ChildLogger returned nil")
	}
	child.Debug("child logger works")
}

func BenchmarkInitialize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Logger = nil
		if err := Initialize(false, VerbosityInfo); err != nil {
			b.Fatal(err)
		}
	}
	Logger = nil
}

func BenchmarkInfow(b *testing.B) {
	Logger = zap.NewNop().Sugar()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Infow("benchmark message", "file", "alphabet.test.xml", "groups", 3)
	}
	Logger = nil
}

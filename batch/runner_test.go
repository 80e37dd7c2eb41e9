package batch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/AXC/errors"
	axctest "github.com/teranos/AXC/internal/testing"
	"github.com/teranos/AXC/palette"
	"github.com/teranos/AXC/xmltree"
)

const legacyAlphabetDoc = `<?xml version="1.0"?>
<alphabet name="Runner Test">
	<orientation type="LR"/>
	<train>train.txt</train>
	<group name="Letters">
		<s d="a"/>
		<s d="B" t="b" b="3"/>
	</group>
</alphabet>`

// recordingEmitter captures emissions for assertions.
type recordingEmitter struct {
	stages   []string
	files    []FileResult
	errs     []string
	infos    []string
	complete bool
}

func (e *recordingEmitter) EmitStage(stage string, message string) {
	e.stages = append(e.stages, stage)
}

func (e *recordingEmitter) EmitFile(fr FileResult) {
	e.files = append(e.files, fr)
}

func (e *recordingEmitter) EmitProgress(count int, metadata map[string]interface{}) {}

func (e *recordingEmitter) EmitComplete(summary map[string]interface{}) {
	e.complete = true
}

func (e *recordingEmitter) EmitError(stage string, err error) {
	e.errs = append(e.errs, err.Error())
}

func (e *recordingEmitter) EmitInfo(message string) {
	e.infos = append(e.infos, message)
}

func TestRunConvertsBothFamilies(t *testing.T) {
	alphaDir := t.TempDir()
	palDir := t.TempDir()
	outDir := t.TempDir()
	axctest.WriteFixture(t, alphaDir, "alphabet.legacy.xml", legacyAlphabetDoc)
	axctest.WriteFixture(t, palDir, "colour.xml", axctest.LegacyPalette("Default", 243))
	axctest.WriteFixture(t, palDir, "colour.ocean.xml", axctest.LegacyPalette("Ocean", 243))

	em := &recordingEmitter{}
	r := NewRunner(Options{AlphabetsDir: alphaDir, PalettesDir: palDir, OutputDir: outDir}, em, nil)

	result, err := r.Run()
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.FilesProcessed)
	assert.Equal(t, 3, result.OutputsWritten)
	assert.Equal(t, 0, result.Failures)
	assert.Equal(t, 0, result.Skipped)
	assert.NotEmpty(t, result.RunID)
	assert.False(t, result.EndTime.Before(result.StartTime))

	assert.Equal(t, []string{"alphabets", "palettes"}, em.stages)
	assert.True(t, em.complete)
	require.Len(t, em.files, 3)

	// Alphabets first, then the default palette, then the rest.
	assert.Equal(t, KindAlphabet, result.Files[0].Kind)
	assert.Equal(t, filepath.Join(palDir, "colour.xml"), result.Files[1].Path)
	assert.Equal(t, filepath.Join(palDir, "colour.ocean.xml"), result.Files[2].Path)

	for _, name := range []string{"alphabet.runner.test.xml", "color.default.xml", "color.ocean.xml"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}

	// Ocean matches the default everywhere, so the baseline suppresses
	// every named color.
	doc, err := xmltree.Load(filepath.Join(outDir, "color.ocean.xml"))
	require.NoError(t, err)
	require.Len(t, doc.Root().Attr, 2)
	assert.Equal(t, "Default", xmltree.Attr(doc.Root(), "parentName", ""))
}

func TestRunContinuesPastFailures(t *testing.T) {
	alphaDir := t.TempDir()
	palDir := t.TempDir()
	axctest.WriteFixture(t, alphaDir, "alphabet.bad.xml", "<alphabet")
	axctest.WriteFixture(t, alphaDir, "alphabet.good.xml", legacyAlphabetDoc)
	axctest.WriteFixture(t, palDir, "colour.xml", axctest.LegacyPalette("Default", 243))

	em := &recordingEmitter{}
	r := NewRunner(Options{AlphabetsDir: alphaDir, PalettesDir: palDir, OutputDir: t.TempDir()}, em, nil)

	result, err := r.Run()
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, 3, result.FilesProcessed)
	assert.Equal(t, 1, result.Failures)
	assert.Equal(t, 2, result.OutputsWritten)
	assert.Contains(t, result.Message, "1 of 3 files failed")
	require.Len(t, em.errs, 1)

	require.Len(t, result.Files, 3)
	assert.False(t, result.Files[0].Success)
	assert.NotEmpty(t, result.Files[0].Error)
	assert.True(t, result.Files[1].Success)
	assert.True(t, result.Files[2].Success)
}

func TestRunPalettesWithoutDefault(t *testing.T) {
	palDir := t.TempDir()
	outDir := t.TempDir()
	axctest.WriteFixture(t, palDir, "colour.ocean.xml", axctest.LegacyPalette("Ocean", 243))

	em := &recordingEmitter{}
	r := NewRunner(Options{AlphabetsDir: t.TempDir(), PalettesDir: palDir, OutputDir: outDir}, em, nil)

	result, err := r.RunPalettes()
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.FilesProcessed)
	require.Len(t, em.infos, 1)
	assert.Contains(t, em.infos[0], "colour.xml")

	// Without a baseline every named color is emitted.
	doc, err := xmltree.Load(filepath.Join(outDir, "color.ocean.xml"))
	require.NoError(t, err)
	assert.Len(t, doc.Root().Attr, 2+len(palette.NamedColors))
}

func TestRunAlphabetsEmptyDirectory(t *testing.T) {
	em := &recordingEmitter{}
	r := NewRunner(Options{AlphabetsDir: t.TempDir(), PalettesDir: t.TempDir(), OutputDir: t.TempDir()}, em, nil)

	result, err := r.RunAlphabets()
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 0, result.FilesProcessed)
	assert.Equal(t, []string{"alphabets"}, em.stages)
	require.Len(t, em.infos, 1)
}

func TestRunCountsDocumentlessFileAsSkipped(t *testing.T) {
	alphaDir := t.TempDir()
	axctest.WriteFixture(t, alphaDir, "alphabet.hollow.xml", "<root/>")

	r := NewRunner(Options{AlphabetsDir: alphaDir, PalettesDir: t.TempDir(), OutputDir: t.TempDir()}, &recordingEmitter{}, nil)

	result, err := r.RunAlphabets()
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.FilesProcessed)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.OutputsWritten)
}

func TestRunCreatesOutputDirectory(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "deep", "out")
	r := NewRunner(Options{AlphabetsDir: t.TempDir(), PalettesDir: t.TempDir(), OutputDir: outDir}, &recordingEmitter{}, nil)

	_, err := r.Run()
	require.NoError(t, err)
	assert.DirExists(t, outDir)
}

func TestRunFailsOnUnusableOutputDirectory(t *testing.T) {
	occupied := axctest.WriteFixture(t, t.TempDir(), "occupied", "not a directory")
	r := NewRunner(Options{AlphabetsDir: t.TempDir(), PalettesDir: t.TempDir(), OutputDir: occupied}, &recordingEmitter{}, nil)

	_, err := r.Run()
	require.Error(t, err)
	assert.True(t, errors.IsFilesystem(err))
}

func TestWatcherConvertsOnChange(t *testing.T) {
	alphaDir := t.TempDir()
	outDir := t.TempDir()
	r := NewRunner(Options{AlphabetsDir: alphaDir, PalettesDir: t.TempDir(), OutputDir: outDir}, &recordingEmitter{}, nil)

	w, err := NewWatcher(r, 50*time.Millisecond, nil)
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	axctest.WriteFixture(t, alphaDir, "alphabet.live.xml", legacyAlphabetDoc)

	converted := filepath.Join(outDir, "alphabet.runner.test.xml")
	assert.Eventually(t, func() bool {
		_, err := os.Stat(converted)
		return err == nil
	}, 3*time.Second, 50*time.Millisecond, "watch run should write the converted document")
}

func TestWatcherRequiresWatchableDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")
	r := NewRunner(Options{AlphabetsDir: missing, PalettesDir: missing, OutputDir: t.TempDir()}, &recordingEmitter{}, nil)

	_, err := NewWatcher(r, 0, nil)
	require.Error(t, err)
}

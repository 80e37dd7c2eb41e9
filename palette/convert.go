package palette

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/teranos/AXC/errors"
	"github.com/teranos/AXC/internal/util"
	"github.com/teranos/AXC/logger"
	"github.com/teranos/AXC/xmltree"
)

// Doctype is the document type declaration carried by converted palettes.
const Doctype = `DOCTYPE colors SYSTEM "color.dtd"`

// FilePattern matches legacy palette files in an input directory.
const FilePattern = "colour*.xml"

// DefaultFileName names the palette every other palette diffs against. It
// must be converted first so its named colors can serve as the baseline.
const DefaultFileName = "colour.xml"

// Converter converts legacy palette files and writes the results to a
// target directory.
type Converter struct {
	outDir string
	logger *zap.SugaredLogger
}

// NewConverter creates a palette converter writing into outDir. A nil
// logger falls back to the global one.
func NewConverter(outDir string, log *zap.SugaredLogger) *Converter {
	if log == nil {
		log = logger.Logger
	}
	return &Converter{outDir: outDir, logger: log}
}

// OutputFileName derives the output file name for a converted palette.
func OutputFileName(name string) string {
	return "color." + util.SanitizeName(name) + ".xml"
}

// ConvertFile extracts the palette in the file at path and writes its
// colors document. baseline suppresses named colors identical to the
// default palette's; pass nil when converting the default itself. Returns
// the output path and the palette's full named-color map.
func (c *Converter) ConvertFile(path string, baseline map[string]string) (string, map[string]string, error) {
	doc, err := xmltree.Load(path)
	if err != nil {
		return "", nil, err
	}

	ex, err := Extract(doc, baseline)
	if err != nil {
		return "", nil, errors.Wrap(err, "extracting "+path)
	}

	outPath := filepath.Join(c.outDir, OutputFileName(ex.Name))
	if err := xmltree.WriteDocument(ex.Root, Doctype, outPath); err != nil {
		return "", nil, err
	}

	c.logger.Infow("Extracted palette",
		logger.FieldPalette, ex.Name,
		logger.FieldOutput, outPath,
		logger.FieldCount, ex.Emitted)
	if suppressed := len(ex.Named) - ex.Emitted; suppressed > 0 {
		c.logger.Debugw("Named colors matching the baseline suppressed",
			logger.FieldPalette, ex.Name,
			"suppressed", suppressed)
	}
	return outPath, ex.Named, nil
}

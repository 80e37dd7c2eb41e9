package alphabet

import (
	"path/filepath"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/teranos/AXC/internal/util"
	"github.com/teranos/AXC/logger"
	"github.com/teranos/AXC/xmltree"
)

// Doctype is the document type declaration carried by converted alphabets.
const Doctype = `DOCTYPE alphabet SYSTEM "../alphabet.dtd"`

// FilePattern matches legacy alphabet files in an input directory.
const FilePattern = "alphabet.*.xml"

// Converter converts legacy alphabet files and writes the results to a
// target directory.
type Converter struct {
	outDir string
	logger *zap.SugaredLogger
}

// NewConverter creates an alphabet converter writing into outDir. A nil
// logger falls back to the global one.
func NewConverter(outDir string, log *zap.SugaredLogger) *Converter {
	if log == nil {
		log = logger.Logger
	}
	return &Converter{outDir: outDir, logger: log}
}

// OutputFileName derives the output file name for a converted alphabet.
func OutputFileName(name string) string {
	return "alphabet." + util.SanitizeName(name) + ".xml"
}

// ConvertFile converts every alphabet element in the file at path, one
// output document per element, and returns the paths written. On error the
// paths written before the failure are still returned.
func (c *Converter) ConvertFile(path string) ([]string, error) {
	doc, err := xmltree.Load(path)
	if err != nil {
		return nil, err
	}

	elements := collectAlphabets(doc.Root())
	if len(elements) == 0 {
		c.logger.Warnw("No alphabet elements found",
			logger.FieldFile, path)
		return nil, nil
	}

	var written []string
	for _, el := range elements {
		converted, err := Build(el)
		if err != nil {
			return written, err
		}

		outPath := filepath.Join(c.outDir, OutputFileName(converted.Name))
		if err := xmltree.WriteDocument(converted.Root, Doctype, outPath); err != nil {
			return written, err
		}
		written = append(written, outPath)

		c.logger.Infow("Converted alphabet",
			logger.FieldAlphabet, converted.Name,
			logger.FieldOutput, outPath,
			logger.FieldGroups, converted.Groups,
			logger.FieldNodes, converted.Nodes)
		if converted.UsesCharColors || converted.UsesGroupColors {
			c.logger.Debugw("Legacy colors retained as comments",
				logger.FieldAlphabet, converted.Name,
				"char_colors", converted.UsesCharColors,
				"group_colors", converted.UsesGroupColors)
		}
	}
	return written, nil
}

// collectAlphabets gathers alphabet elements anywhere in the tree, the root
// included. Legacy files usually hold one, but multi-alphabet files exist
// and every element gets its own output document.
func collectAlphabets(el *etree.Element) []*etree.Element {
	var found []*etree.Element
	if el.Tag == "alphabet" {
		found = append(found, el)
	}
	for _, child := range el.ChildElements() {
		found = append(found, collectAlphabets(child)...)
	}
	return found
}

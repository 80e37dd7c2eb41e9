package xmltree

import (
	"os"

	"github.com/beevik/etree"

	"github.com/teranos/AXC/errors"
)

// Serialize renders a converted tree with the standard XML declaration and
// the given DOCTYPE directive, indented one tab per nesting level.
func Serialize(root *etree.Element, doctype string) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(doctype)
	doc.SetRoot(root)
	doc.IndentTabs()

	out, err := doc.WriteToString()
	if err != nil {
		return "", errors.Wrap(err, "serializing document")
	}
	return out, nil
}

// WriteDocument serializes the tree and writes it to path in one shot.
func WriteDocument(root *etree.Element, doctype, path string) error {
	out, err := Serialize(root, doctype)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return errors.WrapFilesystem(err, "writing "+path)
	}
	return nil
}

// Package alphabet converts legacy alphabet documents into the current
// schema: flat document attributes, collapsed redundant group wrappers, and
// legacy color indices retained as diagnostic comments.
package alphabet

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/teranos/AXC/errors"
	"github.com/teranos/AXC/xmltree"
)

// conversionModes maps legacy numeric mode ids to their schema names.
var conversionModes = []string{"none", "none", "mandarin", "routingContextInsensitive", "routingContextSensitive"}

// Document is one converted alphabet.
type Document struct {
	Name string
	Root *etree.Element

	UsesCharColors  bool
	UsesGroupColors bool
	Groups          int
	Nodes           int
}

// Build converts a single legacy alphabet element into a Document.
func Build(el *etree.Element) (*Document, error) {
	name := xmltree.Attr(el, "name", "")
	if name == "" {
		return nil, errors.NewMalformedInput("alphabet has no name")
	}

	orientationEl := el.SelectElement("orientation")
	if !xmltree.HasAttr(orientationEl, "type") {
		return nil, errors.NewMalformedInput("alphabet %q has no orientation type", name)
	}
	orientation := xmltree.Attr(orientationEl, "type", "")

	trainEl := el.SelectElement("train")
	if trainEl == nil || trainEl.Text() == "" {
		return nil, errors.NewMalformedInput("alphabet %q has no training filename", name)
	}
	training := trainEl.Text()

	colorsName := "Default"
	if paletteEl := el.SelectElement("palette"); paletteEl != nil {
		colorsName = paletteEl.Text()
		if colorsName == "" {
			return nil, errors.NewMalformedInput("alphabet %q has an empty palette reference", name)
		}
	}

	mode := ""
	if modeEl := el.SelectElement("conversionmode"); xmltree.HasAttr(modeEl, "id") {
		m, err := conversionModeName(xmltree.Attr(modeEl, "id", ""), name)
		if err != nil {
			return nil, err
		}
		mode = m
	}

	root := etree.NewElement("alphabet")
	root.CreateAttr("name", name)
	root.CreateAttr("orientation", orientation)
	root.CreateAttr("trainingFilename", training)
	root.CreateAttr("colorsName", colorsName)
	if mode != "" {
		root.CreateAttr("conversionMode", mode)
	}

	// Legacy files keep commentary at the document level; it is hoisted
	// ahead of the converted groups.
	for _, tok := range el.Child {
		if c, ok := tok.(*etree.Comment); ok {
			root.CreateComment(c.Data)
		}
	}

	acc := &accumulator{}
	explicitInvisible := true
	for _, group := range el.SelectElements("group") {
		if _, err := transformGroup(group, root, explicitInvisible, acc); err != nil {
			return nil, err
		}
		explicitInvisible = false
	}

	if err := appendSpacingGroup(el, root, acc); err != nil {
		return nil, err
	}

	return &Document{
		Name:            name,
		Root:            root,
		UsesCharColors:  acc.charColors,
		UsesGroupColors: acc.groupColors,
		Groups:          acc.groups,
		Nodes:           acc.nodes,
	}, nil
}

// conversionModeName resolves a legacy numeric mode id against the table.
func conversionModeName(id, alphabet string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return "", errors.Wrapf(errors.ErrUnknownConversionMode, "alphabet %q declares mode %q", alphabet, id)
	}
	if n < 0 || n >= len(conversionModes) {
		return "", errors.Wrapf(errors.ErrUnknownConversionMode, "alphabet %q declares mode %d", alphabet, n)
	}
	return conversionModes[n], nil
}

// appendSpacingGroup synthesizes the trailing group holding the paragraph
// and space characters, when the legacy document defines them.
func appendSpacingGroup(el, root *etree.Element, acc *accumulator) error {
	paragraph, err := readCharData(el.SelectElement("paragraph"))
	if err != nil {
		return err
	}
	space, err := readCharData(el.SelectElement("space"))
	if err != nil {
		return err
	}
	if paragraph == nil && space == nil {
		return nil
	}

	group := root.CreateElement("group")
	acc.groups++
	switch {
	case paragraph != nil && space != nil:
		group.CreateAttr("name", "paragraphSpace")
		group.CreateAttr("colorInfoName", "paragraphSpace")
	case paragraph != nil:
		group.CreateAttr("name", "paragraph")
		// "saragraph" matches the documents already shipped.
		group.CreateAttr("colorInfoName", "saragraph")
	default:
		group.CreateAttr("name", "space")
		group.CreateAttr("colorInfoName", "space")
	}

	if paragraph != nil {
		if _, err := paragraph.emit(group, acc); err != nil {
			return err
		}
	}
	if space != nil {
		if _, err := space.emit(group, acc); err != nil {
			return err
		}
	}
	return nil
}

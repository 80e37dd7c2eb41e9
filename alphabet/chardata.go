package alphabet

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/teranos/AXC/errors"
	"github.com/teranos/AXC/xmltree"
)

// charData carries one legacy character definition: the display glyph plus
// the optional input glyph, color index, and note.
type charData struct {
	display  string
	input    string
	hasInput bool
	color    string
	hasColor bool
	note     string
}

// readCharData extracts a character definition from an s, paragraph, or
// space element. Returns nil for a nil element so optional lookups pass
// straight through.
func readCharData(el *etree.Element) (*charData, error) {
	if el == nil {
		return nil, nil
	}

	d := el.SelectAttr("d")
	if d == nil {
		return nil, errors.NewMalformedInput("<%s> element has no display glyph", el.Tag)
	}

	cd := &charData{
		display: d.Value,
		note:    xmltree.Attr(el, "note", ""),
	}
	if t := el.SelectAttr("t"); t != nil {
		cd.input = t.Value
		cd.hasInput = true
	}
	if b := el.SelectAttr("b"); b != nil {
		cd.color = b.Value
		cd.hasColor = true
	}
	return cd, nil
}

// emit appends the converted node for this character to parent and reports
// whether the character carried a legacy color index. The legacy color and
// note survive as comments inside the node; the code point of the input
// glyph is attached only when it differs from the display glyph.
func (cd *charData) emit(parent *etree.Element, acc *accumulator) (bool, error) {
	node := parent.CreateElement("node")
	node.CreateAttr("label", cd.display)
	acc.nodes++

	if cd.hasColor {
		node.CreateComment("Old Char Color: " + cd.color)
		acc.charColors = true
	}
	if cd.note != "" {
		node.CreateComment("Note: " + cd.note)
	}

	action := node.CreateElement("textCharAction")
	if cd.hasInput && cd.input != cd.display {
		runes := []rune(cd.input)
		if len(runes) != 1 {
			return false, errors.NewMalformedInput("input glyph %q for display glyph %q is not a single character", cd.input, cd.display)
		}
		action.CreateAttr("unicode", strconv.Itoa(int(runes[0])))
	}
	return cd.hasColor, nil
}

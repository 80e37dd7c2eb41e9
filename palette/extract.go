package palette

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/teranos/AXC/errors"
)

// Extraction is the outcome of extracting one legacy palette document.
type Extraction struct {
	Name string
	Root *etree.Element

	// Named records every computed named color, including those the
	// baseline diff suppressed, so later palettes can diff against the
	// full map.
	Named map[string]string

	// Emitted counts the named colors that survived the diff.
	Emitted int
}

// Extract converts the legacy palette tree into a colors document. baseline
// suppresses named colors whose value matches the default palette's; pass
// nil when extracting the default palette itself.
func Extract(doc *etree.Document, baseline map[string]string) (*Extraction, error) {
	pal := doc.Root().SelectElement("palette")
	if pal == nil {
		return nil, errors.NewMalformedInput("document has no palette element")
	}
	nameAttr := pal.SelectAttr("name")
	if nameAttr == nil {
		return nil, errors.NewMalformedInput("palette has no name")
	}
	name := nameAttr.Value

	colours := pal.SelectElements("colour")

	root := etree.NewElement("colors")
	root.CreateAttr("name", name)
	if name != "Default" {
		root.CreateAttr("parentName", "Default")
	}

	ex := &Extraction{
		Name:  name,
		Root:  root,
		Named: make(map[string]string, len(NamedColors)),
	}
	for _, nc := range NamedColors {
		hex, err := slotHex(colours, nc.Slot, name)
		if err != nil {
			return nil, err
		}
		if prev, ok := baseline[nc.Name]; !ok || prev != hex {
			root.CreateAttr(nc.Name, hex)
			ex.Emitted++
		}
		ex.Named[nc.Name] = hex
	}

	for _, gs := range KnownGroups {
		if err := appendGroup(root, colours, gs, name); err != nil {
			return nil, err
		}
	}

	return ex, nil
}

// appendGroup emits one groupColorInfo element for the group spec.
func appendGroup(root *etree.Element, colours []*etree.Element, gs GroupSpec, palette string) error {
	group := root.CreateElement("groupColorInfo")
	group.CreateAttr("name", gs.Name)

	if gs.Accent >= 0 {
		accent, err := slotHex(colours, gs.Accent, palette)
		if err != nil {
			return err
		}
		outline, err := slotHex(colours, outlineSlot, palette)
		if err != nil {
			return err
		}
		group.CreateAttr("groupColor", accent)
		group.CreateAttr("groupOutlineColor", outline)
	}

	seq, err := slotSequence(colours, gs.Members, 0, palette)
	if err != nil {
		return err
	}
	group.CreateAttr("nodeColorSequence", seq)

	if gs.Alt {
		alt, err := slotSequence(colours, gs.Members, altOffset, palette)
		if err != nil {
			return err
		}
		group.CreateAttr("altNodeColorSequence", alt)
	}
	return nil
}

// slotSequence joins the hex colors of the given slots, offset applied to
// each, comma separated.
func slotSequence(colours []*etree.Element, slots []int, offset int, palette string) (string, error) {
	parts := make([]string, 0, len(slots))
	for _, slot := range slots {
		hex, err := slotHex(colours, slot+offset, palette)
		if err != nil {
			return "", err
		}
		parts = append(parts, hex)
	}
	return strings.Join(parts, ","), nil
}

// slotHex resolves one palette slot to its hex string.
func slotHex(colours []*etree.Element, slot int, palette string) (string, error) {
	if slot < 0 || slot >= len(colours) {
		return "", errors.NewMalformedInput("palette %q has no colour slot %d (%d entries)", palette, slot, len(colours))
	}
	c, err := parseChannels(colours[slot])
	if err != nil {
		return "", err
	}
	return c.hex(), nil
}

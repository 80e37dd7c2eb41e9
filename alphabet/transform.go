package alphabet

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/teranos/AXC/xmltree"
)

// accumulator tracks what one legacy document used while its tree is walked.
// The color flags feed the conversion log, the counters feed per-document
// stats.
type accumulator struct {
	charColors  bool
	groupColors bool
	groups      int
	nodes       int
}

// transformNode converts a single legacy child: a nested group, a character
// entry, or a comment. Comments are copied through in place. Elements with
// any other tag count as children of their group but produce no output.
// The returned flag reports whether a character in the converted subtree
// carried a legacy color index.
func transformNode(tok etree.Token, out *etree.Element, explicitInvisible bool, acc *accumulator) (bool, error) {
	switch n := tok.(type) {
	case *etree.Comment:
		out.CreateComment(n.Data)
		return false, nil
	case *etree.Element:
		switch n.Tag {
		case "group":
			return transformGroup(n, out, explicitInvisible, acc)
		case "s":
			cd, err := readCharData(n)
			if err != nil {
				return false, err
			}
			return cd.emit(out, acc)
		}
	}
	return false, nil
}

// transformGroup converts one legacy group element.
//
// A group that wraps exactly one group or character entry, is invisible, and
// has neither name nor label collapses away: the child is converted directly
// into the parent. The explicitInvisible override used for the first
// top-level group forces the group invisible before both the collapse check
// and the color gate.
func transformGroup(el *etree.Element, out *etree.Element, explicitInvisible bool, acc *accumulator) (bool, error) {
	children := xmltree.ChildNodes(el)
	visible := xmltree.Attr(el, "visible", "yes")
	if explicitInvisible {
		visible = "no"
	}
	nameAttr := el.SelectAttr("name")
	labelAttr := el.SelectAttr("label")

	if len(children) == 1 && visible == "no" && nameAttr == nil && labelAttr == nil {
		if child, ok := children[0].(*etree.Element); ok && (child.Tag == "group" || child.Tag == "s") {
			return transformNode(child, out, false, acc)
		}
	}

	group := out.CreateElement("group")
	acc.groups++
	if nameAttr != nil {
		group.CreateAttr("name", nameAttr.Value)
	}
	if labelAttr != nil && labelAttr.Value != "" {
		group.CreateAttr("label", labelAttr.Value)
	}

	if color := el.SelectAttr("b"); color != nil && visible != "no" {
		if nameAttr != nil {
			group.CreateAttr("colorInfoName", strings.ToLower(nameAttr.Value))
		}
		group.CreateComment("Old Group Color: " + color.Value)
		acc.groupColors = true
	}

	childUsesColors := false
	for _, child := range children {
		has, err := transformNode(child, group, false, acc)
		if err != nil {
			return false, err
		}
		childUsesColors = childUsesColors || has
	}

	// Whether a descendant character was colored is only known after the
	// walk, so the color reference may be attached retroactively.
	if childUsesColors && nameAttr != nil {
		group.CreateAttr("colorInfoName", strings.ToLower(nameAttr.Value))
	}

	return childUsesColors, nil
}

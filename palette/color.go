// Package palette converts legacy colour palette documents into colors
// documents: every slot-indexed colour becomes a named color or a member of
// a group sequence, diffed against the default palette's values.
package palette

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/teranos/AXC/errors"
)

// channels holds one parsed colour entry.
type channels struct {
	r, g, b, a int
}

// parseChannels reads a legacy colour element. Missing channels default to
// 0 and missing alpha to 255.
func parseChannels(el *etree.Element) (channels, error) {
	c := channels{a: 255}
	for _, ch := range []struct {
		key string
		dst *int
	}{
		{"r", &c.r},
		{"g", &c.g},
		{"b", &c.b},
		{"a", &c.a},
	} {
		attr := el.SelectAttr(ch.key)
		if attr == nil {
			continue
		}
		v, err := strconv.Atoi(attr.Value)
		if err != nil {
			return channels{}, errors.NewMalformedInput("colour channel %s=%q is not numeric", ch.key, attr.Value)
		}
		*ch.dst = v
	}
	return c, nil
}

// hex encodes the channels as a lowercase hex string. Fully opaque colors
// drop the alpha pair.
func (c channels) hex() string {
	if c.a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.r, c.g, c.b, c.a)
}

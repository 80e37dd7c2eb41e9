package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/AXC/errors"
	"github.com/teranos/AXC/xmltree"
)

func TestHexEncoding(t *testing.T) {
	tests := []struct {
		name string
		c    channels
		want string
	}{
		{"black", channels{0, 0, 0, 255}, "#000000"},
		{"white", channels{255, 255, 255, 255}, "#ffffff"},
		{"zero padded", channels{1, 2, 3, 255}, "#010203"},
		{"lowercase digits", channels{171, 205, 239, 255}, "#abcdef"},
		{"translucent", channels{1, 2, 3, 128}, "#01020380"},
		{"fully transparent", channels{0, 0, 0, 0}, "#00000000"},
		{"alpha just below opaque keeps the pair", channels{16, 32, 48, 254}, "#102030fe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.hex())
		})
	}
}

func TestParseChannelsDefaults(t *testing.T) {
	tests := []struct {
		name   string
		colour string
		want   channels
	}{
		{"all defaults", `<colour/>`, channels{0, 0, 0, 255}},
		{"partial channels", `<colour r="10"/>`, channels{10, 0, 0, 255}},
		{"full channels", `<colour r="1" g="2" b="3" a="4"/>`, channels{1, 2, 3, 4}},
		{"unknown attributes ignored", `<colour r="9" x="junk"/>`, channels{9, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := xmltree.Parse(tt.colour)
			require.NoError(t, err)

			got, err := parseChannels(doc.Root())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChannelsErrors(t *testing.T) {
	for _, colour := range []string{`<colour r="red"/>`, `<colour a=""/>`, `<colour g="1.5"/>`} {
		t.Run(colour, func(t *testing.T) {
			doc, err := xmltree.Parse(colour)
			require.NoError(t, err)

			_, err = parseChannels(doc.Root())
			require.Error(t, err)
			assert.True(t, errors.IsMalformedInput(err))
		})
	}
}

package alphabet

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/AXC/errors"
	axctest "github.com/teranos/AXC/internal/testing"
	"github.com/teranos/AXC/xmltree"
)

func TestConvertFileEndToEnd(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	path := axctest.WriteFixture(t, inDir, "alphabet.test.xml", `<alphabet name="Test">
	<orientation type="LR"/>
	<train>training_test.txt</train>
	<group>
		<s d="a"/>
		<s d="B" t="b" b="3"/>
	</group>
</alphabet>`)

	written, err := NewConverter(outDir, nil).ConvertFile(path)
	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, filepath.Join(outDir, "alphabet.test.xml"), written[0])

	raw := axctest.ReadOutput(t, written[0])
	lines := strings.Split(raw, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>`, lines[0])
	assert.Equal(t, `<!DOCTYPE alphabet SYSTEM "../alphabet.dtd">`, lines[1])

	doc, err := xmltree.Load(written[0])
	require.NoError(t, err)
	root := doc.Root()
	assert.Equal(t, "alphabet", root.Tag)
	assert.Equal(t, "Test", xmltree.Attr(root, "name", ""))

	group := root.SelectElement("group")
	require.NotNil(t, group)
	nodes := group.SelectElements("node")
	require.Len(t, nodes, 2)

	assert.Equal(t, "a", xmltree.Attr(nodes[0], "label", ""))
	require.NotNil(t, nodes[0].SelectElement("textCharAction"))
	assert.False(t, xmltree.HasAttr(nodes[0].SelectElement("textCharAction"), "unicode"))

	assert.Equal(t, "B", xmltree.Attr(nodes[1], "label", ""))
	assert.Contains(t, raw, "<!--Old Char Color: 3-->")
	require.NotNil(t, nodes[1].SelectElement("textCharAction"))
	assert.Equal(t, "98", xmltree.Attr(nodes[1].SelectElement("textCharAction"), "unicode", ""))
}

func TestConvertFileMultipleAlphabets(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	path := axctest.WriteFixture(t, inDir, "alphabet.pair.xml", `<alphabets>
	<alphabet name="First">
		<orientation type="LR"/>
		<train>first.txt</train>
		<group><s d="a"/><s d="b"/></group>
	</alphabet>
	<alphabet name="Second">
		<orientation type="RL"/>
		<train>second.txt</train>
		<group><s d="c"/><s d="d"/></group>
	</alphabet>
</alphabets>`)

	written, err := NewConverter(outDir, nil).ConvertFile(path)
	require.NoError(t, err)
	require.Len(t, written, 2)
	assert.Equal(t, filepath.Join(outDir, "alphabet.first.xml"), written[0])
	assert.Equal(t, filepath.Join(outDir, "alphabet.second.xml"), written[1])
}

func TestConvertFileWithoutAlphabets(t *testing.T) {
	inDir := t.TempDir()
	path := axctest.WriteFixture(t, inDir, "alphabet.none.xml", `<something-else/>`)

	written, err := NewConverter(t.TempDir(), nil).ConvertFile(path)
	require.NoError(t, err)
	assert.Empty(t, written)
}

func TestConvertFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewConverter(t.TempDir(), nil).ConvertFile(filepath.Join(t.TempDir(), "absent.xml"))
		require.Error(t, err)
		assert.True(t, errors.IsFilesystem(err))
	})

	t.Run("unparseable file", func(t *testing.T) {
		inDir := t.TempDir()
		path := axctest.WriteFixture(t, inDir, "alphabet.bad.xml", "<alphabet")

		_, err := NewConverter(t.TempDir(), nil).ConvertFile(path)
		require.Error(t, err)
		assert.True(t, errors.IsMalformedInput(err))
	})

	t.Run("invalid document", func(t *testing.T) {
		inDir := t.TempDir()
		path := axctest.WriteFixture(t, inDir, "alphabet.incomplete.xml", `<alphabet name="X"><group><s d="a"/></group></alphabet>`)

		_, err := NewConverter(t.TempDir(), nil).ConvertFile(path)
		require.Error(t, err)
		assert.True(t, errors.IsMalformedInput(err))
	})
}

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Default", "alphabet.default.xml"},
		{"English with limited punctuation", "alphabet.english.with.limited.punctuation.xml"},
		{"What's this?", "alphabet.whats.this.xml"},
		{"Español", "alphabet.espaol.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputFileName(tt.name))
		})
	}
}

// Package xmltree wraps etree with the document conventions shared by the
// alphabet and palette converters: comment-preserving parse, legacy charset
// decoding, and the fixed header/DOCTYPE output framing.
package xmltree

import (
	"os"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"github.com/teranos/AXC/errors"
)

// Load parses a legacy XML document from path. Comments survive as tree
// tokens, and documents declaring legacy single-byte encodings are decoded
// through the charset reader.
func Load(path string) (*etree.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapFilesystem(err, "opening "+path)
	}
	defer f.Close()

	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel

	if _, err := doc.ReadFrom(f); err != nil {
		return nil, errors.WrapMalformedInput(err, "parsing "+path)
	}
	if doc.Root() == nil {
		return nil, errors.NewMalformedInput("document %s has no root element", path)
	}

	return doc, nil
}

// Parse reads a legacy document from a string. Used by tests and anywhere a
// document arrives without a file behind it.
func Parse(content string) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel

	if err := doc.ReadFromString(content); err != nil {
		return nil, errors.WrapMalformedInput(err, "parsing document")
	}
	if doc.Root() == nil {
		return nil, errors.NewMalformedInput("document has no root element")
	}

	return doc, nil
}

// Attr returns the value of the named attribute, or fallback when the
// attribute (or the element itself) is absent.
func Attr(el *etree.Element, key, fallback string) string {
	if el == nil {
		return fallback
	}
	if a := el.SelectAttr(key); a != nil {
		return a.Value
	}
	return fallback
}

// HasAttr reports whether the element carries the named attribute.
func HasAttr(el *etree.Element, key string) bool {
	return el != nil && el.SelectAttr(key) != nil
}

// ChildNodes returns the element and comment children in document order.
// Whitespace and other character data between tags is skipped, so the
// result matches what the legacy schema counts as a group's children.
func ChildNodes(el *etree.Element) []etree.Token {
	nodes := make([]etree.Token, 0, len(el.Child))
	for _, tok := range el.Child {
		switch tok.(type) {
		case *etree.Element, *etree.Comment:
			nodes = append(nodes, tok)
		}
	}
	return nodes
}

// Package testing provides shared test utilities for AXC.
package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFixture writes a legacy document into dir and returns its path.
// Parent directories are created as needed; failures abort the test.
func WriteFixture(t *testing.T, dir, name, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create fixture directory %s: %v", dir, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", path, err)
	}

	return path
}

// ReadOutput reads a converted document back for assertions.
func ReadOutput(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output %s: %v", path, err)
	}

	return string(data)
}

// LegacyPalette builds a legacy palette document with n colour entries.
// Channel values derive from the slot index (r=i, g=2i, b=3i, mod 256) so
// tests can predict the emitted hex strings without hardcoding a full table.
func LegacyPalette(name string, n int) string {
	var b strings.Builder

	b.WriteString("<?xml version=\"1.0\"?>\n")
	b.WriteString("<palettes>\n")
	fmt.Fprintf(&b, "\t<palette name=%q>\n", name)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "\t\t<colour r=\"%d\" g=\"%d\" b=\"%d\"/>\n", i%256, (i*2)%256, (i*3)%256)
	}
	b.WriteString("\t</palette>\n")
	b.WriteString("</palettes>\n")

	return b.String()
}

// PaletteSlotHex returns the hex string LegacyPalette's slot i parses to.
// Keep in sync with the channel derivation above.
func PaletteSlotHex(i int) string {
	return fmt.Sprintf("#%02x%02x%02x", i%256, (i*2)%256, (i*3)%256)
}

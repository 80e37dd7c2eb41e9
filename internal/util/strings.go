package util

import "strings"

// SanitizeName derives an output filename fragment from a document name:
// lowercase, spaces become dots, then only ASCII alphanumerics and dots
// survive, and one pass of ".." collapsing keeps separators single.
//
//	"English, with accents" -> "english.with.accents"
func SanitizeName(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", ".")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	return strings.ReplaceAll(b.String(), "..", ".")
}

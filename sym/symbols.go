// Package sym defines canonical marker glyphs for AXC surfaces and log output.
// These symbols are stable across CLI output, logs, and documentation.
package sym

// Converter surface markers — each maps to a CLI command.
const (
	Alphabet = "ɑ" // alphabet — legacy character-set documents
	Palette  = "◧" // palette — legacy colour documents
	Convert  = "⇄" // convert — one-shot batch transformation
	Watch    = "◉" // watch — re-run conversion on input changes
)

// Document structure markers — used in detail output, no commands.
const (
	Group = "⊞" // normalized group container
	Node  = "▢" // normalized character node
	Doc   = "▤" // emitted document
)

// entry binds a glyph to its command, label, and description.
type entry struct {
	glyph       string
	command     string
	label       string
	description string
}

// registry is the canonical mapping between glyphs and marker metadata.
var registry = []entry{
	{Alphabet, "alphabets", "Alphabets", "Legacy character-set documents"},
	{Palette, "palettes", "Palettes", "Legacy colour documents"},
	{Convert, "convert", "Convert", "One-shot batch transformation"},
	{Watch, "watch", "Watch", "Re-run conversion on input changes"},
	{Group, "", "Group", "Normalized group container"},
	{Node, "", "Node", "Normalized character node"},
	{Doc, "", "Document", "Emitted document"},
}

// MarkerOrder defines the canonical ordering for CLI listings and help.
// Only includes markers with commands.
var MarkerOrder = []string{Alphabet, Palette, Convert, Watch}

// SymbolToCommand maps glyph strings to their text command equivalents.
var SymbolToCommand = map[string]string{}

// CommandToSymbol maps text commands to their canonical glyph strings.
var CommandToSymbol = map[string]string{}

// CommandDescriptions provides human-readable explanations for help output.
var CommandDescriptions = map[string]string{}

func init() {
	for _, e := range registry {
		if e.command == "" {
			continue
		}
		SymbolToCommand[e.glyph] = e.command
		CommandToSymbol[e.command] = e.glyph
		CommandDescriptions[e.command] = e.label + " — " + e.description
	}
}

// Label returns the human-readable label for a glyph, or "" if unknown.
func Label(glyph string) string {
	for _, e := range registry {
		if e.glyph == glyph {
			return e.label
		}
	}
	return ""
}

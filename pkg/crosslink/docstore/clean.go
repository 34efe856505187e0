package docstore

import "strings"

// typographic replacements applied before scanning: smart punctuation is
// folded to its ASCII form so possessive stripping and whole-word
// matching see one spelling.
var cleaner = strings.NewReplacer(
	"’", "'", // right single quote
	"‘", "'", // left single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"`", "'",
	"—", " -- ", // em dash
	"–", "-", // en dash
	"…", "...", // ellipsis
	"\r\n", "\n",
)

// Clean normalizes typography in document text.
func Clean(text string) string {
	text = cleaner.Replace(text)
	for strings.Contains(text, "  ") {
		text = strings.ReplaceAll(text, "  ", " ")
	}
	return text
}

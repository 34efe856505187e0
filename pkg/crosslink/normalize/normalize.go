// Package normalize canonicalizes raw entity and term text into a stable
// identity key while keeping a human-readable display form.
//
// The identity key is a pure function of the term's text: possessive
// suffix stripped, case folded, internal whitespace mapped to "_". Two raw
// mentions that normalize to the same key are the same logical term.
package normalize

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/corpuskit/crosslink/pkg/crosslink/internalerr"
)

// Term is the normalized identity of a mention.
type Term struct {
	Key     string // case-folded, "_"-separated, file-safe
	Display string // original case, single-spaced, possessive stripped
}

// Title abbreviations that never become index entries. Compared against
// the punctuation-stripped, lowercased text.
var titleAbbrevs = map[string]struct{}{
	"mr":  {},
	"mrs": {},
	"ms":  {},
}

// Normalize derives the identity key and display form for raw text.
// Rejected candidates return an error wrapping internalerr.ErrTermRejected;
// callers discard those mentions without indexing them.
func Normalize(raw string) (Term, error) {
	if strings.ContainsRune(raw, '\n') {
		return Term{}, fmt.Errorf("%w: spans lines", internalerr.ErrTermRejected)
	}

	display := StripPossessive(strings.TrimSpace(raw))
	display = strings.Join(strings.Fields(display), " ")
	if display == "" {
		return Term{}, fmt.Errorf("%w: empty", internalerr.ErrTermRejected)
	}

	cleaned := stripPunct(display)
	if utf8.RuneCountInString(cleaned) < 2 {
		return Term{}, fmt.Errorf("%w: too short: %q", internalerr.ErrTermRejected, raw)
	}
	if _, ok := titleAbbrevs[strings.ToLower(cleaned)]; ok {
		return Term{}, fmt.Errorf("%w: title abbreviation: %q", internalerr.ErrTermRejected, raw)
	}

	key := strings.Join(strings.Fields(strings.ToLower(display)), "_")
	return Term{Key: key, Display: display}, nil
}

// StripPossessive removes a trailing "'s" or bare trailing apostrophe.
// The possessive is preserved in the original surface text; matching
// variants are reconstructed from the base form later.
func StripPossessive(s string) string {
	if strings.HasSuffix(s, "'s") {
		return s[:len(s)-2]
	}
	if strings.HasSuffix(s, "'") {
		return s[:len(s)-1]
	}
	return s
}

// SpacedKey converts an identity key back to its spaced surface form.
func SpacedKey(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

func stripPunct(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '\'', '.':
			return -1
		}
		return r
	}, s)
}

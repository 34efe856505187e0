// Package match provides case-insensitive, whole-word literal matching
// over document text. Terms are matched as written, never as regular
// expressions, so list terms containing metacharacters stay literal.
package match

import (
	"unicode"
	"unicode/utf8"
)

// IsWordRune reports whether r is part of a word for boundary purposes.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// FoldLen reports whether term matches a prefix of s under simple case
// folding, returning the number of bytes of s consumed. Byte lengths may
// differ between s and term when case pairs differ in UTF-8 width.
func FoldLen(s, term string) (int, bool) {
	i := 0
	for _, tr := range term {
		if i >= len(s) {
			return 0, false
		}
		sr, size := utf8.DecodeRuneInString(s[i:])
		if unicode.ToLower(sr) != unicode.ToLower(tr) {
			return 0, false
		}
		i += size
	}
	return i, true
}

// BoundaryAt reports whether a match ending at byte offset i in text sits
// on a word boundary: either end of text or a following non-word rune.
func BoundaryAt(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !IsWordRune(r)
}

// CountWholeWord counts non-overlapping, case-insensitive, whole-word
// occurrences of term in text in a single forward pass.
func CountWholeWord(text, term string) int {
	if term == "" {
		return 0
	}

	count := 0
	prev := rune(' ') // start of text is a boundary
	for i := 0; i < len(text); {
		if !IsWordRune(prev) {
			if n, ok := FoldLen(text[i:], term); ok && BoundaryAt(text, i+n) {
				count++
				i += n
				prev, _ = utf8.DecodeLastRuneInString(term)
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		prev = r
		i += size
	}
	return count
}

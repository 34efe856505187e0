// Package subst rewrites document text, replacing whole-word occurrences
// of published terms with [[target|display]] links.
//
// The overlap-avoidance invariant: no substitution may occur inside text
// already delimited by a link span, whether the span was present in the
// source or inserted by an earlier pass. Each pass is a single forward
// scan that tracks an inside-link state on the [[ and ]] markers, so once
// something is linked it stays linked regardless of entry order.
//
// Two published terms whose literal variants partially overlap (for
// example "San Diego" and "Diego") are applied longest-display-first,
// with identity key as the tie-break, so the longer phrase claims the
// span and the shorter term only links its free-standing occurrences.
package subst

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/corpuskit/crosslink/pkg/crosslink/match"
	"github.com/corpuskit/crosslink/pkg/crosslink/normalize"
)

const (
	linkOpen  = "[["
	linkClose = "]]"
)

// Candidate is one published entry attested in the document under rewrite.
type Candidate struct {
	Key     string // identity key, used in the link target
	Type    string // entity category, used as the target's path prefix
	Display string // preferred surface form
}

// Rewrite replaces every non-overlapping, whole-word, case-insensitive
// occurrence of each candidate's surface variants with a link whose
// display text is the matched surface string. Candidates are ordered
// internally, so the result does not depend on input order.
func Rewrite(text string, candidates []Candidate) string {
	ordered := make([]Candidate, len(candidates))
	copy(ordered, candidates)
	sort.Slice(ordered, func(i, j int) bool {
		li := utf8.RuneCountInString(ordered[i].Display)
		lj := utf8.RuneCountInString(ordered[j].Display)
		if li != lj {
			return li > lj
		}
		return ordered[i].Key < ordered[j].Key
	})

	for _, c := range ordered {
		target := c.Type + "/" + c.Key
		for _, variant := range Variants(c) {
			text = replaceOutsideLinks(text, variant, target)
		}
	}
	return text
}

// Variants derives the surface forms that should resolve to a candidate:
// the display text, the key's spaced form, and for each of those the
// possessive inflections. Longest variants come first so that a possessive
// mention keeps its inflection in the link display rather than leaving a
// dangling 's outside the link.
func Variants(c Candidate) []string {
	bases := []string{c.Display, normalize.SpacedKey(c.Key)}

	seen := make(map[string]struct{})
	var variants []string
	add := func(v string) {
		folded := strings.ToLower(v)
		if v == "" {
			return
		}
		if _, ok := seen[folded]; ok {
			return
		}
		seen[folded] = struct{}{}
		variants = append(variants, v)
	}

	for _, base := range bases {
		add(base)
		add(base + "'s")
		add(base + "'")
	}

	sort.Slice(variants, func(i, j int) bool {
		li := utf8.RuneCountInString(variants[i])
		lj := utf8.RuneCountInString(variants[j])
		if li != lj {
			return li > lj
		}
		return variants[i] < variants[j]
	})
	return variants
}

// replaceOutsideLinks is one forward pass over text: copy link spans
// verbatim, and outside them substitute whole-word matches of variant.
// Inserted markup is emitted directly and never rescanned within the
// pass, so a replacement can never nest inside itself.
func replaceOutsideLinks(text, variant, target string) string {
	var b strings.Builder
	b.Grow(len(text))

	inside := false
	prev := ' ' // start of text is a word boundary
	for i := 0; i < len(text); {
		if strings.HasPrefix(text[i:], linkOpen) {
			inside = true
			b.WriteString(linkOpen)
			i += len(linkOpen)
			prev = '['
			continue
		}
		if strings.HasPrefix(text[i:], linkClose) {
			inside = false
			b.WriteString(linkClose)
			i += len(linkClose)
			prev = ']'
			continue
		}

		if !inside && !match.IsWordRune(prev) {
			if n, ok := match.FoldLen(text[i:], variant); ok && match.BoundaryAt(text, i+n) {
				matched := text[i : i+n]
				b.WriteString(linkOpen)
				b.WriteString(target)
				b.WriteString("|")
				b.WriteString(matched)
				b.WriteString(linkClose)
				i += n
				prev, _ = utf8.DecodeLastRuneInString(matched)
				continue
			}
		}

		r, size := utf8.DecodeRuneInString(text[i:])
		b.WriteRune(r)
		prev = r
		i += size
	}
	return b.String()
}

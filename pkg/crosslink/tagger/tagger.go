// Package tagger defines the entity-recognition capability consumed by the
// term source: given one paragraph, produce labeled entity spans.
package tagger

// Span is one labeled entity span, in left-to-right paragraph order.
type Span struct {
	Label string // entity category, e.g. PERSON, GPE, DATE
	Text  string // surface text as written
}

// Tagger tags a single paragraph. Implementations are one-shot per
// paragraph and must be safe for concurrent use across paragraphs.
type Tagger interface {
	Tag(paragraph string) ([]Span, error)
}

// Func adapts a function to the Tagger interface.
type Func func(paragraph string) ([]Span, error)

// Tag implements Tagger.
func (f Func) Tag(paragraph string) ([]Span, error) {
	return f(paragraph)
}

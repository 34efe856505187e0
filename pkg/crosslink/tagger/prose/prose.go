// Package prose implements the tagger capability with the prose NLP
// library's statistical named-entity chunker.
package prose

import (
	"fmt"

	prose "github.com/jdkato/prose/v2"

	"github.com/corpuskit/crosslink/pkg/crosslink/tagger"
)

// Tagger wraps prose's entity extraction behind the tagger interface.
type Tagger struct{}

// New creates a prose-backed tagger.
func New() *Tagger {
	return &Tagger{}
}

// Tag runs entity extraction over one paragraph. Spans come back in
// left-to-right order with prose's labels (PERSON, GPE, ...). A tagging
// failure drops the paragraph's mentions, not the run.
func (t *Tagger) Tag(paragraph string) ([]tagger.Span, error) {
	doc, err := prose.NewDocument(paragraph,
		prose.WithSegmentation(false),
		prose.WithExtraction(true),
	)
	if err != nil {
		return nil, fmt.Errorf("tag paragraph: %w", err)
	}

	var spans []tagger.Span
	for _, ent := range doc.Entities() {
		spans = append(spans, tagger.Span{Label: ent.Label, Text: ent.Text})
	}
	return spans, nil
}

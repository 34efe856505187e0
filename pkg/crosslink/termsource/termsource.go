// Package termsource feeds the occurrence index from two producers: the
// entity tagger, invoked per paragraph, and the curated word list, matched
// by whole-word search over the full document text.
package termsource

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/corpuskit/crosslink/pkg/crosslink/index"
	"github.com/corpuskit/crosslink/pkg/crosslink/internalerr"
	"github.com/corpuskit/crosslink/pkg/crosslink/match"
	"github.com/corpuskit/crosslink/pkg/crosslink/normalize"
	"github.com/corpuskit/crosslink/pkg/crosslink/stoplist"
	"github.com/corpuskit/crosslink/pkg/crosslink/tagger"
)

// DefaultLabels is the entity-category allow-list for a narrative corpus.
var DefaultLabels = []string{
	"PERSON", "ORG", "GPE", "LOC", "FAC", "NORP", "DATE", "WORK_OF_ART", "PRODUCT",
}

// Scanner extracts candidate mentions from documents into an index.
type Scanner struct {
	tagger tagger.Tagger
	stops  *stoplist.Manager
	labels map[string]struct{}
	words  []Word
	log    *zap.Logger
}

// Word is one curated list term with its precomputed identity.
type Word struct {
	Key     string
	Display string
}

// New creates a scanner. labels defaults to DefaultLabels when empty;
// stops defaults to the built-in function-word list when nil.
func New(tg tagger.Tagger, stops *stoplist.Manager, labels []string, words []string, log *zap.Logger) *Scanner {
	if len(labels) == 0 {
		labels = DefaultLabels
	}
	if stops == nil {
		stops = stoplist.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}

	allowed := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		allowed[l] = struct{}{}
	}

	return &Scanner{
		tagger: tg,
		stops:  stops,
		labels: allowed,
		words:  prepareWords(words),
		log:    log,
	}
}

// SeedWordList ensures every curated term has an index entry, so terms
// with zero hits across the corpus still produce an index card. Called
// exactly once per run; seeding an existing key is a no-op for counts.
func (s *Scanner) SeedWordList(idx *index.Index) {
	for _, w := range s.words {
		idx.Seed(w.Key, index.TypeList, w.Display)
	}
}

// ScanDocument runs both producers over one document and records the
// surviving mentions against docID. Safe to call concurrently across
// documents; the index serializes increments.
func (s *Scanner) ScanDocument(idx *index.Index, docID, text string) {
	s.scanEntities(idx, docID, text)
	s.scanWordList(idx, docID, text)
}

func (s *Scanner) scanEntities(idx *index.Index, docID, text string) {
	for _, paragraph := range SplitParagraphs(text) {
		spans, err := s.tagger.Tag(paragraph)
		if err != nil {
			s.log.Warn("tagging failed, dropping paragraph mentions",
				zap.String("doc", docID), zap.Error(err))
			continue
		}

		for _, span := range spans {
			if _, ok := s.labels[span.Label]; !ok {
				continue
			}
			if s.stops.IsStop(span.Text) {
				continue
			}
			term, err := normalize.Normalize(span.Text)
			if err != nil {
				if !errors.Is(err, internalerr.ErrTermRejected) {
					s.log.Warn("normalize failed", zap.String("doc", docID), zap.Error(err))
				}
				continue
			}
			idx.Record(term.Key, docID, span.Label, term.Display)
		}
	}
}

func (s *Scanner) scanWordList(idx *index.Index, docID, text string) {
	for _, w := range s.words {
		if n := match.CountWholeWord(text, w.Display); n > 0 {
			idx.RecordN(w.Key, docID, index.TypeList, w.Display, n)
		}
	}
}

// SplitParagraphs splits document text on blank lines and flattens line
// breaks within each paragraph to spaces, since the tagging capability
// expects single-line input.
func SplitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(strings.ReplaceAll(p, "\n", " "))
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// prepareWords lowercases list terms and derives their identity keys.
// Curated terms bypass the normalizer's rejection rules; the list is
// trusted input.
func prepareWords(words []string) []Word {
	var out []Word
	seen := make(map[string]struct{})
	for _, raw := range words {
		display := strings.ToLower(strings.TrimSpace(raw))
		if display == "" {
			continue
		}
		key := strings.Join(strings.Fields(display), "_")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Word{Key: key, Display: display})
	}
	return out
}

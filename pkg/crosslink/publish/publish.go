// Package publish decides which index entries have crossed the visibility
// thresholds and therefore get an index card and in-text links.
package publish

import (
	"github.com/corpuskit/crosslink/pkg/crosslink/index"
)

// Thresholds are run parameters, recomputed fresh per run rather than
// persisted with the index.
type Thresholds struct {
	MinSources int // minimum distinct documents mentioning the term
	MinCount   int // minimum total mentions across the corpus
}

// Published reports whether an entry is visible. Word-list entries are
// always published regardless of thresholds.
func Published(e index.Entry, t Thresholds) bool {
	if e.Type == index.TypeList {
		return true
	}
	return e.SourceCount() >= t.MinSources && e.TotalCount() >= t.MinCount
}

// Select returns the sorted identity keys of all published entries in a
// snapshot. Computed once, after indexing completes, before substitution
// begins.
func Select(snap index.Snapshot, t Thresholds) []string {
	var keys []string
	for _, key := range snap.Keys() {
		if Published(snap.Entries[key], t) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Package index maintains the persistent occurrence index: a mapping from
// identity key to entry type, display text, and per-document mention counts.
//
// The index is single-writer per key during the scan pass: all mutations go
// through Record/RecordN/Seed under one mutex, so concurrent increments from
// parallel document scans never overwrite each other with stale reads. After
// Finalize the index is read-only; late writes are dropped.
package index

import (
	"sort"
	"sync"
)

// TypeList is the reserved type tag for curated word-list terms.
const TypeList = "LIST"

// Entry is one indexed term.
type Entry struct {
	Type    string
	Display string
	Counts  map[string]int // document ID -> mention count
}

// TotalCount sums the entry's mentions across all documents.
func (e Entry) TotalCount() int {
	total := 0
	for _, n := range e.Counts {
		total += n
	}
	return total
}

// SourceCount returns the number of distinct documents mentioning the entry.
func (e Entry) SourceCount() int {
	return len(e.Counts)
}

// Index accumulates occurrence entries during the scan pass.
type Index struct {
	mu        sync.Mutex
	entries   map[string]*Entry
	finalized bool
}

// New creates an empty index.
func New() *Index {
	return &Index{entries: make(map[string]*Entry)}
}

// Record increments the per-document count for key by one, creating the
// entry on first sight. The first writer fixes type and display text,
// except that a LIST write always wins over an entity write.
func (x *Index) Record(key, docID, typ, display string) {
	x.RecordN(key, docID, typ, display, 1)
}

// RecordN increments the per-document count for key by n. Used by the
// word-list producer, which counts a whole document in one call.
func (x *Index) RecordN(key, docID, typ, display string, n int) {
	if key == "" || docID == "" || n <= 0 {
		return
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.finalized {
		return
	}

	e, ok := x.entries[key]
	if !ok {
		x.entries[key] = &Entry{
			Type:    typ,
			Display: display,
			Counts:  map[string]int{docID: n},
		}
		return
	}
	x.reconcile(e, typ, display)
	e.Counts[docID] += n
}

// Seed ensures an entry exists for key with empty counts, without touching
// an existing entry's counts. Word-list terms are seeded once per run so
// that terms with zero hits still surface an index card.
func (x *Index) Seed(key, typ, display string) {
	if key == "" {
		return
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.finalized {
		return
	}

	e, ok := x.entries[key]
	if !ok {
		x.entries[key] = &Entry{
			Type:    typ,
			Display: display,
			Counts:  make(map[string]int),
		}
		return
	}
	x.reconcile(e, typ, display)
}

// reconcile applies the type precedence rule: when an NER-derived key and a
// word-list key coincide, the word list wins the entry's type and spelling.
func (x *Index) reconcile(e *Entry, typ, display string) {
	if typ == TypeList && e.Type != TypeList {
		e.Type = TypeList
		e.Display = display
	}
}

// Len returns the number of entries.
func (x *Index) Len() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.entries)
}

// Finalize freezes the index and returns an immutable snapshot. Further
// Record/Seed calls are no-ops: publication status is a corpus-wide
// aggregate, so nothing may move after the scan barrier.
func (x *Index) Finalize() Snapshot {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.finalized = true

	entries := make(map[string]Entry, len(x.entries))
	for key, e := range x.entries {
		counts := make(map[string]int, len(e.Counts))
		for doc, n := range e.Counts {
			counts[doc] = n
		}
		entries[key] = Entry{Type: e.Type, Display: e.Display, Counts: counts}
	}
	return Snapshot{Entries: entries}
}

// Snapshot is a frozen copy of the index, safe for concurrent reads.
type Snapshot struct {
	Entries map[string]Entry
}

// Keys returns all identity keys in sorted order.
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s.Entries))
	for k := range s.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the entry for key.
func (s Snapshot) Get(key string) (Entry, bool) {
	e, ok := s.Entries[key]
	return e, ok
}

// Attested reports whether key has at least one mention in docID. Entries
// published corpus-wide but absent from a document must never be
// substituted into it.
func (s Snapshot) Attested(key, docID string) bool {
	e, ok := s.Entries[key]
	if !ok {
		return false
	}
	_, ok = e.Counts[docID]
	return ok
}

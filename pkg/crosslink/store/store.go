// Package store defines persistence for the occurrence index. The index
// is written once, at the end of the scan pass, and may be reloaded by
// external tooling; a run never depends on reloading its own output.
package store

import "context"

// Entry is the persisted form of one index entry. The JSON field names
// match the flat keyed document contract: {type, original_text, counts}.
type Entry struct {
	Type    string         `json:"type"`
	Display string         `json:"original_text"`
	Counts  map[string]int `json:"counts"`
}

// Snapshot is a finalized index keyed by identity key, stamped with the
// run that produced it.
type Snapshot struct {
	RunID   string
	Entries map[string]Entry
}

// Store persists index snapshots.
type Store interface {
	SaveSnapshot(ctx context.Context, snap Snapshot) error
	LoadSnapshot(ctx context.Context) (Snapshot, bool, error)
	Close() error
}

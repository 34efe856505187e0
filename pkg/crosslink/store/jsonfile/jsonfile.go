// Package jsonfile persists the occurrence index as a flat keyed JSON
// document, human-inspectable and compatible with external tooling that
// expects {key: {type, original_text, counts}}.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/corpuskit/crosslink/pkg/crosslink/store"
)

// Store writes the index to a single JSON file.
type Store struct {
	path string
}

// New creates a JSON-file store at path.
func New(path string) *Store {
	return &Store{path: path}
}

// SaveSnapshot writes the snapshot's entries as an indented flat map.
// The run ID is not part of the flat document contract and is dropped.
func (s *Store) SaveSnapshot(ctx context.Context, snap store.Snapshot) error {
	data, err := json.MarshalIndent(snap.Entries, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// LoadSnapshot reads the flat map back. A missing file is not an error;
// the second return value reports presence.
func (s *Store) LoadSnapshot(ctx context.Context) (store.Snapshot, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return store.Snapshot{}, false, nil
	}
	if err != nil {
		return store.Snapshot{}, false, fmt.Errorf("read index: %w", err)
	}

	entries := make(map[string]store.Entry)
	if err := json.Unmarshal(data, &entries); err != nil {
		return store.Snapshot{}, false, fmt.Errorf("parse index: %w", err)
	}
	return store.Snapshot{Entries: entries}, true, nil
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

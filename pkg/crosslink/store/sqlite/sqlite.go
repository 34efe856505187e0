// Package sqlite persists occurrence-index snapshots in a SQLite
// database, one run row per save, for corpora too large to inspect as a
// single JSON document.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/corpuskit/crosslink/pkg/crosslink/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite-backed store with WAL mode enabled.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS entries (
	key TEXT PRIMARY KEY,
	type TEXT NOT NULL,
	display TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS entry_counts (
	key TEXT NOT NULL,
	doc TEXT NOT NULL,
	count INTEGER NOT NULL,
	PRIMARY KEY(key, doc),
	FOREIGN KEY(key) REFERENCES entries(key) ON DELETE CASCADE
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveSnapshot replaces the stored index with snap in one transaction and
// records the run that produced it.
func (s *sqliteStore) SaveSnapshot(ctx context.Context, snap store.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entry_counts`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return err
	}

	entryStmt, err := tx.PrepareContext(ctx, `INSERT INTO entries (key, type, display) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer entryStmt.Close()

	countStmt, err := tx.PrepareContext(ctx, `INSERT INTO entry_counts (key, doc, count) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer countStmt.Close()

	for key, e := range snap.Entries {
		if key == "" {
			continue
		}
		if _, err := entryStmt.ExecContext(ctx, key, e.Type, e.Display); err != nil {
			return fmt.Errorf("save entry %q: %w", key, err)
		}
		for doc, n := range e.Counts {
			if _, err := countStmt.ExecContext(ctx, key, doc, n); err != nil {
				return fmt.Errorf("save counts for %q: %w", key, err)
			}
		}
	}

	if snap.RunID != "" {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO runs (id, created_at) VALUES (?, ?)
ON CONFLICT(id) DO NOTHING;
`, snap.RunID, time.Now().UTC().Format(time.RFC3339)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadSnapshot reads the stored index back, stamped with the most recent
// run ID. Presence is reported through the second return value.
func (s *sqliteStore) LoadSnapshot(ctx context.Context) (store.Snapshot, bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, type, display FROM entries`)
	if err != nil {
		return store.Snapshot{}, false, err
	}
	defer rows.Close()

	entries := make(map[string]store.Entry)
	for rows.Next() {
		var key string
		var e store.Entry
		if err := rows.Scan(&key, &e.Type, &e.Display); err != nil {
			return store.Snapshot{}, false, err
		}
		e.Counts = make(map[string]int)
		entries[key] = e
	}
	if err := rows.Err(); err != nil {
		return store.Snapshot{}, false, err
	}
	if len(entries) == 0 {
		return store.Snapshot{}, false, nil
	}

	countRows, err := s.db.QueryContext(ctx, `SELECT key, doc, count FROM entry_counts`)
	if err != nil {
		return store.Snapshot{}, false, err
	}
	defer countRows.Close()

	for countRows.Next() {
		var key, doc string
		var n int
		if err := countRows.Scan(&key, &doc, &n); err != nil {
			return store.Snapshot{}, false, err
		}
		if e, ok := entries[key]; ok {
			e.Counts[doc] = n
		}
	}
	if err := countRows.Err(); err != nil {
		return store.Snapshot{}, false, err
	}

	var runID string
	err = s.db.QueryRowContext(ctx, `SELECT id FROM runs ORDER BY created_at DESC, id DESC LIMIT 1`).Scan(&runID)
	if err != nil && err != sql.ErrNoRows {
		return store.Snapshot{}, false, err
	}

	return store.Snapshot{RunID: runID, Entries: entries}, true, nil
}

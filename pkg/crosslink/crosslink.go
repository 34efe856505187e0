// Package crosslink assembles the indexing and substitution pipeline: it
// scans a corpus for terms, freezes the occurrence index, persists it,
// and rewrites every document with conflict-free [[type/key|display]]
// links plus one index card per published term.
package crosslink

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/corpuskit/crosslink/internal/worker"
	"github.com/corpuskit/crosslink/pkg/crosslink/docstore"
	"github.com/corpuskit/crosslink/pkg/crosslink/index"
	"github.com/corpuskit/crosslink/pkg/crosslink/publish"
	"github.com/corpuskit/crosslink/pkg/crosslink/stoplist"
	"github.com/corpuskit/crosslink/pkg/crosslink/store"
	"github.com/corpuskit/crosslink/pkg/crosslink/subst"
	"github.com/corpuskit/crosslink/pkg/crosslink/tagger"
	"github.com/corpuskit/crosslink/pkg/crosslink/termsource"
)

// Docs enumerates the source corpus. *docstore.Dir satisfies it.
type Docs interface {
	List(ctx context.Context) ([]docstore.Document, error)
}

// Output receives the rendered wiki. *render.Writer satisfies it.
type Output interface {
	WriteDoc(id, text string) error
	WriteCard(typ, key, display string, counts map[string]int) error
}

// Options configures an Engine.
type Options struct {
	Docs   Docs
	Tagger tagger.Tagger
	Store  store.Store
	Output Output

	Words      []string
	Stops      *stoplist.Manager
	Labels     []string
	Thresholds publish.Thresholds
	Workers    int
	Logger     *zap.Logger
}

// Engine is the pipeline facade.
type Engine struct {
	docs    Docs
	scanner *termsource.Scanner
	store   store.Store
	out     Output

	thresholds publish.Thresholds
	workers    int
	log        *zap.Logger
	entropy    *ulid.MonotonicEntropy
}

// New creates an Engine from its dependencies.
func New(opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Engine{
		docs:       opts.Docs,
		scanner:    termsource.New(opts.Tagger, opts.Stops, opts.Labels, opts.Words, log),
		store:      opts.Store,
		out:        opts.Output,
		thresholds: opts.Thresholds,
		workers:    workers,
		log:        log,
		entropy:    ulid.Monotonic(rand.Reader, 0),
	}
}

// Close releases the persistence backend.
func (e *Engine) Close() error {
	return e.store.Close()
}

// Report summarizes one run.
type Report struct {
	RunID        string
	DocsScanned  int
	Entries      int
	Published    int
	CardsWritten int
}

// Run executes one full pass over the corpus. Scanning runs to
// completion and the index is frozen before any document is rewritten,
// so every link decision sees the same totals.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	docs, err := e.docs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	idx := index.New()
	e.scanner.SeedWordList(idx)

	pool := worker.NewPool(ctx, e.workers)
	for _, d := range docs {
		doc := d
		pool.Submit(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e.scanner.ScanDocument(idx, doc.ID, doc.Text)
			return nil
		})
	}
	if errs := pool.Wait(); len(errs) > 0 {
		return nil, fmt.Errorf("scan pass: %w", errors.Join(errs...))
	}

	snap := idx.Finalize()
	runID := ulid.MustNew(ulid.Now(), e.entropy).String()
	e.log.Info("index frozen",
		zap.String("run", runID),
		zap.Int("documents", len(docs)),
		zap.Int("entries", len(snap.Entries)))

	if err := e.store.SaveSnapshot(ctx, persistable(runID, snap)); err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}

	published := publish.Select(snap, e.thresholds)

	candidates := make([]subst.Candidate, 0, len(published))
	for _, key := range published {
		entry, ok := snap.Get(key)
		if !ok {
			continue
		}
		candidates = append(candidates, subst.Candidate{
			Key:     key,
			Type:    entry.Type,
			Display: entry.Display,
		})
	}

	pool = worker.NewPool(ctx, e.workers)
	for _, d := range docs {
		doc := d
		pool.Submit(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			local := attestedIn(candidates, snap, doc.ID)
			rewritten := subst.Rewrite(doc.Text, local)
			if err := e.out.WriteDoc(doc.ID, rewritten); err != nil {
				return err
			}
			return nil
		})
	}
	if errs := pool.Wait(); len(errs) > 0 {
		return nil, fmt.Errorf("rewrite pass: %w", errors.Join(errs...))
	}

	cards := 0
	for _, key := range published {
		entry, ok := snap.Get(key)
		if !ok {
			continue
		}
		if err := e.out.WriteCard(entry.Type, key, entry.Display, entry.Counts); err != nil {
			return nil, fmt.Errorf("write card %s: %w", key, err)
		}
		cards++
	}

	return &Report{
		RunID:        runID,
		DocsScanned:  len(docs),
		Entries:      len(snap.Entries),
		Published:    len(published),
		CardsWritten: cards,
	}, nil
}

// attestedIn keeps only the candidates the frozen index counted in this
// document. A term is never linked where it was not seen during the
// scan pass.
func attestedIn(all []subst.Candidate, snap index.Snapshot, docID string) []subst.Candidate {
	local := make([]subst.Candidate, 0, len(all))
	for _, c := range all {
		if snap.Attested(c.Key, docID) {
			local = append(local, c)
		}
	}
	return local
}

func persistable(runID string, snap index.Snapshot) store.Snapshot {
	out := store.Snapshot{RunID: runID, Entries: make(map[string]store.Entry, len(snap.Entries))}
	for key, e := range snap.Entries {
		counts := make(map[string]int, len(e.Counts))
		for doc, n := range e.Counts {
			counts[doc] = n
		}
		out.Entries[key] = store.Entry{Type: e.Type, Display: e.Display, Counts: counts}
	}
	return out
}

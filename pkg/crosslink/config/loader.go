package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/corpuskit/crosslink/pkg/crosslink/publish"
	"github.com/corpuskit/crosslink/pkg/crosslink/stoplist"
	"github.com/corpuskit/crosslink/pkg/crosslink/store"
	"github.com/corpuskit/crosslink/pkg/crosslink/store/jsonfile"
	"github.com/corpuskit/crosslink/pkg/crosslink/store/sqlite"
	"github.com/corpuskit/crosslink/pkg/crosslink/wordlist"
)

// Components are the configured pieces the engine is assembled from.
type Components struct {
	Stops      *stoplist.Manager
	Words      []string
	Thresholds publish.Thresholds
	Labels     []string
	Store      store.Store
	Workers    int
}

// Loader turns a validated Config into live components.
type Loader struct {
	Config Config
	Log    *zap.Logger
}

// Load builds every component. A missing word list is logged and run
// without; everything else fails the load.
func (l *Loader) Load(ctx context.Context) (*Components, error) {
	log := l.Log
	if log == nil {
		log = zap.NewNop()
	}

	comp := &Components{
		Stops:      stoplist.Default(),
		Thresholds: publish.Thresholds{MinSources: l.Config.MinSources, MinCount: l.Config.MinCount},
		Labels:     l.Config.Labels,
		Workers:    l.Config.Workers,
	}
	for _, w := range l.Config.Stopwords {
		comp.Stops.Add(w)
	}

	if l.Config.Wordlist != "" {
		words, err := wordlist.Load(l.Config.Wordlist)
		if err != nil {
			log.Warn("word list unavailable, continuing without it",
				zap.String("path", l.Config.Wordlist), zap.Error(err))
		} else {
			comp.Words = words
		}
	}

	st, err := l.openStore(ctx)
	if err != nil {
		return nil, err
	}
	comp.Store = st

	return comp, nil
}

func (l *Loader) openStore(ctx context.Context) (store.Store, error) {
	switch l.Config.Store.Backend {
	case BackendSQLite:
		st, err := sqlite.Open(ctx, l.Config.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return st, nil
	default:
		path := l.Config.Store.Path
		if path == "" {
			path = "dictionary.json"
		}
		return jsonfile.New(path), nil
	}
}

// Package docstore enumerates the source corpus: text, markdown, and HTML
// files under a data directory, with front matter stripped and typography
// normalized before any scanning happens.
package docstore

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"go.uber.org/zap"
)

// Document is one source document. ID is the path relative to the data
// directory, slash-separated, stable across runs, and used verbatim as
// the index's per-document count key.
type Document struct {
	ID    string
	Title string
	Text  string
}

// Dir reads documents from a directory tree.
type Dir struct {
	root string
	log  *zap.Logger
}

// NewDir creates a document store rooted at root.
func NewDir(root string, log *zap.Logger) *Dir {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dir{root: root, log: log}
}

// List walks the tree and returns every readable document. Unreadable or
// undecodable files are logged and skipped; they never fail the run.
func (d *Dir) List(ctx context.Context) ([]Document, error) {
	var docs []Document

	err := filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		switch ext {
		case ".txt", ".md", ".html":
		default:
			return nil
		}

		doc, derr := d.read(path, ext)
		if derr != nil {
			d.log.Warn("skipping unreadable document", zap.String("path", path), zap.Error(derr))
			return nil
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", d.root, err)
	}
	return docs, nil
}

func (d *Dir) read(path, ext string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}

	var text string
	if ext == ".html" {
		text, err = ExtractText(bytes.NewReader(data))
		if err != nil {
			return Document{}, fmt.Errorf("extract html: %w", err)
		}
	} else {
		var meta map[string]any
		body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
		if err != nil {
			// Malformed front matter: fall back to the raw body rather
			// than losing the document.
			body = data
		}
		text = string(body)
	}

	rel, err := filepath.Rel(d.root, path)
	if err != nil {
		return Document{}, err
	}
	id := filepath.ToSlash(rel)

	return Document{
		ID:    id,
		Title: TitleOf(id),
		Text:  Clean(text),
	}, nil
}

// TitleOf derives a display title from a document ID: the base name
// without its extension.
func TitleOf(id string) string {
	base := id
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}

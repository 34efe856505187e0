// Package render writes the generated wiki: rewritten documents and one
// index card per published term, laid out so that [[TYPE/key]] links from
// documents and [[doc-path]] links from cards both resolve against the
// output root.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// NotFoundNote is the card body line for a curated term that never
// appeared in the corpus.
const NotFoundNote = "*This term was in your word list but not found in any documents.*"

// Writer renders output files under a single root directory.
type Writer struct {
	root string
	log  *zap.Logger
}

// NewWriter creates a Writer rooted at root.
func NewWriter(root string, log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{root: root, log: log}
}

// DocPath maps a source document ID to its output path: the same relative
// path with the extension replaced by .md, so links stay stable while
// every output page is markdown.
func DocPath(id string) string {
	if i := strings.LastIndex(id, "."); i > strings.LastIndex(id, "/") {
		id = id[:i]
	}
	return id + ".md"
}

// LinkTarget is the target used when a card links back to a document:
// the output path without its extension.
func LinkTarget(id string) string {
	p := DocPath(id)
	return strings.TrimSuffix(p, ".md")
}

// WriteDoc writes the rewritten text of one document.
func (w *Writer) WriteDoc(id, text string) error {
	out := filepath.Join(w.root, filepath.FromSlash(DocPath(id)))
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("render doc %s: %w", id, err)
	}
	if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
		return fmt.Errorf("render doc %s: %w", id, err)
	}
	return nil
}

// WriteCard writes the index card for one term at <root>/<TYPE>/<key>.md.
func (w *Writer) WriteCard(typ, key, display string, counts map[string]int) error {
	out := filepath.Join(w.root, typ, key+".md")
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("render card %s/%s: %w", typ, key, err)
	}
	body := CardBody(display, counts)
	if err := os.WriteFile(out, []byte(body), 0o644); err != nil {
		return fmt.Errorf("render card %s/%s: %w", typ, key, err)
	}
	return nil
}

// CardBody builds the markdown body of an index card. Occurrence lines
// are sorted by document ID so reruns produce identical files. A term
// with no occurrences gets the word-list note instead of an empty list.
func CardBody(display string, counts map[string]int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", display)

	if len(counts) == 0 {
		b.WriteString(NotFoundNote)
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("## Occurrences\n\n")
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(&b, "- [[%s|%s]]: %d\n", LinkTarget(id), title(id), counts[id])
	}
	return b.String()
}

func title(id string) string {
	base := id
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}

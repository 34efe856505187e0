package docstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestListStripsYAMLFrontMatter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "novel.md", "---\ntitle: Novel\nauthor: Someone\n---\nJacob went home.\n")

	docs, err := NewDir(root, nil).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("docs = %d", len(docs))
	}
	if strings.Contains(docs[0].Text, "title:") {
		t.Fatalf("front matter leaked into text: %q", docs[0].Text)
	}
	if !strings.Contains(docs[0].Text, "Jacob went home.") {
		t.Fatalf("body missing: %q", docs[0].Text)
	}
}

func TestListIDsAreRelativeSlashPaths(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, filepath.Join("part1", "chapter.txt"), "Text.")
	writeFile(t, root, "notes.md", "Notes.")
	writeFile(t, root, "ignored.pdf", "binary")

	docs, err := NewDir(root, nil).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	ids := make(map[string]string)
	for _, d := range docs {
		ids[d.ID] = d.Title
	}
	if title, ok := ids["part1/chapter.txt"]; !ok || title != "chapter" {
		t.Fatalf("ids = %v", ids)
	}
	if _, ok := ids["notes.md"]; !ok {
		t.Fatalf("ids = %v", ids)
	}
	if len(docs) != 2 {
		t.Fatalf("unexpected extensions picked up: %v", ids)
	}
}

func TestListExtractsHTML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "page.html",
		"<html><head><style>p{}</style></head><body><p>First paragraph.</p><p>Second one.</p><script>x()</script></body></html>")

	docs, err := NewDir(root, nil).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	text := docs[0].Text
	if !strings.Contains(text, "First paragraph.") || !strings.Contains(text, "Second one.") {
		t.Fatalf("text = %q", text)
	}
	if strings.Contains(text, "x()") || strings.Contains(text, "p{}") {
		t.Fatalf("script/style leaked: %q", text)
	}
	if !strings.Contains(text, "\n\n") {
		t.Fatalf("block elements not separated: %q", text)
	}
}

func TestCleanNormalizesTypography(t *testing.T) {
	in := "Jacob’s “friend” said—wait… okay"
	got := Clean(in)
	want := `Jacob's "friend" said -- wait... okay`
	if got != want {
		t.Fatalf("Clean = %q, want %q", got, want)
	}
}

func TestCleanCollapsesDoubleSpaces(t *testing.T) {
	if got := Clean("a    b"); got != "a b" {
		t.Fatalf("Clean = %q", got)
	}
}

func TestTitleOf(t *testing.T) {
	cases := map[string]string{
		"part1/chapter.txt": "chapter",
		"notes.md":          "notes",
		"plain":             "plain",
	}
	for id, want := range cases {
		if got := TitleOf(id); got != want {
			t.Fatalf("TitleOf(%q) = %q, want %q", id, got, want)
		}
	}
}

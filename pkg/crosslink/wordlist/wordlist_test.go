package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadLowercasesAndSkipsBlanks(t *testing.T) {
	in := "Hyperspace\n\n  warp drive  \nHYPERSPACE DRIVE\n\n"
	words, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []string{"hyperspace", "warp drive", "hyperspace drive"}
	if len(words) != len(want) {
		t.Fatalf("words = %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Fatalf("words[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(path, []byte("Alpha\nbeta\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	words, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(words) != 2 || words[0] != "alpha" || words[1] != "beta" {
		t.Fatalf("words = %v", words)
	}
}

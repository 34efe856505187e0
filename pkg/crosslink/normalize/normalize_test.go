package normalize

import (
	"errors"
	"testing"

	"github.com/corpuskit/crosslink/pkg/crosslink/internalerr"
)

func TestNormalizeStability(t *testing.T) {
	cases := []string{"Jacob's", "jacob", "Jacob", "JACOB"}

	first, err := Normalize(cases[0])
	if err != nil {
		t.Fatalf("Normalize(%q): %v", cases[0], err)
	}
	if first.Key != "jacob" {
		t.Fatalf("key = %q, want %q", first.Key, "jacob")
	}
	if first.Display != "Jacob" {
		t.Fatalf("display = %q, want %q", first.Display, "Jacob")
	}

	for _, raw := range cases[1:] {
		term, err := Normalize(raw)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", raw, err)
		}
		if term.Key != first.Key {
			t.Fatalf("Normalize(%q).Key = %q, want %q", raw, term.Key, first.Key)
		}
	}
}

func TestNormalizeMultiWord(t *testing.T) {
	term, err := Normalize("San  Diego")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if term.Key != "san_diego" {
		t.Fatalf("key = %q, want san_diego", term.Key)
	}
	if term.Display != "San Diego" {
		t.Fatalf("display = %q, want %q", term.Display, "San Diego")
	}
}

func TestNormalizeTrailingApostrophe(t *testing.T) {
	term, err := Normalize("Williams'")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if term.Key != "williams" || term.Display != "Williams" {
		t.Fatalf("got %+v, want williams/Williams", term)
	}
}

func TestNormalizeRejections(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"single rune", "a"},
		{"punctuation only", "-'."},
		{"short after punct strip", "a."},
		{"newline", "Jacob\nWilliamson"},
		{"title mr", "Mr."},
		{"title mrs", "Mrs."},
		{"title ms", "Ms."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Normalize(tc.raw); !errors.Is(err, internalerr.ErrTermRejected) {
				t.Fatalf("Normalize(%q) err = %v, want ErrTermRejected", tc.raw, err)
			}
		})
	}
}

func TestNormalizeKeepsHyphenatedNames(t *testing.T) {
	term, err := Normalize("Jean-Luc")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if term.Key != "jean-luc" {
		t.Fatalf("key = %q, want jean-luc", term.Key)
	}
}

func TestSpacedKey(t *testing.T) {
	if got := SpacedKey("san_diego"); got != "san diego" {
		t.Fatalf("SpacedKey = %q", got)
	}
	if got := SpacedKey("jacob"); got != "jacob" {
		t.Fatalf("SpacedKey = %q", got)
	}
}

// Package wordlist loads the curated term list: one term per line,
// case-insensitive, blank lines ignored.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads the word list at path. A missing list is an input error for
// the caller to log; the run continues without curated terms.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses word-list lines from r.
func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}

// Package stoplist manages the closed-class function-word list used to
// discard tagger noise. Statistical taggers routinely mislabel short
// function words as entity spans, so every candidate mention is checked
// against this list before it reaches the index.
package stoplist

import "strings"

// Manager holds the stopword set. Lookups are case-insensitive.
type Manager struct {
	stops map[string]struct{}
}

// NewManager creates a manager seeded with the given words.
func NewManager(initial []string) *Manager {
	stops := make(map[string]struct{}, len(initial))
	for _, s := range initial {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			stops[s] = struct{}{}
		}
	}
	return &Manager{stops: stops}
}

// Default returns a manager seeded with English closed-class words.
func Default() *Manager {
	return NewManager(defaultEnglish)
}

// IsStop checks whether a word is a stopword.
func (m *Manager) IsStop(word string) bool {
	_, ok := m.stops[strings.ToLower(word)]
	return ok
}

// Add inserts a word into the list.
func (m *Manager) Add(word string) {
	if word = strings.ToLower(strings.TrimSpace(word)); word != "" {
		m.stops[word] = struct{}{}
	}
}

// Remove deletes a word from the list.
func (m *Manager) Remove(word string) {
	delete(m.stops, strings.ToLower(word))
}

// All returns all stopwords, unordered.
func (m *Manager) All() []string {
	result := make([]string, 0, len(m.stops))
	for s := range m.stops {
		result = append(result, s)
	}
	return result
}

// defaultEnglish covers determiners, pronouns, prepositions, conjunctions,
// auxiliaries, and the high-frequency adverbs taggers trip on.
var defaultEnglish = []string{
	"a", "an", "the", "this", "that", "these", "those", "some", "any",
	"each", "every", "either", "neither", "no", "all", "both", "few",
	"many", "much", "more", "most", "other", "such",
	"i", "me", "my", "mine", "myself", "we", "us", "our", "ours",
	"ourselves", "you", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself", "she", "her", "hers", "herself",
	"it", "its", "itself", "they", "them", "their", "theirs",
	"themselves", "who", "whom", "whose", "which", "what",
	"in", "on", "at", "by", "for", "with", "about", "against",
	"between", "into", "through", "during", "before", "after",
	"above", "below", "to", "from", "up", "down", "out", "off",
	"over", "under", "of", "as", "near", "since", "until", "upon",
	"and", "but", "or", "nor", "so", "yet", "if", "because",
	"although", "while", "whereas", "unless", "than", "whether",
	"am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing",
	"will", "would", "shall", "should", "may", "might", "must",
	"can", "could",
	"not", "only", "just", "very", "too", "also", "then", "there",
	"here", "when", "where", "why", "how", "again", "once", "now",
}

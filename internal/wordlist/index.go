package wordlist

import (
	"sort"
	"strings"
)

// Index answers membership queries over a word list.
type Index struct {
	sorted []string
}

// NewIndex builds an index of the lowercased words.
func NewIndex(words []string) *Index {
	sorted := make([]string, 0, len(words))
	for _, word := range words {
		sorted = append(sorted, strings.ToLower(strings.TrimSpace(word)))
	}
	sort.Strings(sorted)
	return &Index{sorted: sorted}
}

// Contains reports whether word, case-insensitively, is in the list.
func (i *Index) Contains(word string) bool {
	word = strings.ToLower(strings.TrimSpace(word))
	pos := sort.SearchStrings(i.sorted, word)
	return pos < len(i.sorted) && i.sorted[pos] == word
}

// Len returns the number of indexed words.
func (i *Index) Len() int {
	return len(i.sorted)
}

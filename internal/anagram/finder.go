package anagram

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/lexigram/internal/letters"
)

// Result holds the matched words and the caller's input exactly as given.
type Result struct {
	Input string
	Words []string
}

// Finder matches word lists against a letter pool using one alphabet policy.
type Finder struct {
	Alphabet letters.Alphabet
}

// Find returns every word of words with at least minLength letters whose letters
// are available in input, longest first. Equal lengths keep word list order.
func (f Finder) Find(input string, words []string, minLength int) Result {
	pool := f.Alphabet.Count(input)
	filter := NewFilter(f.Alphabet, pool, minLength)

	found := []string{}
	for _, word := range filter.Candidates(words) {
		if f.Alphabet.Count(word).SubsetOf(pool) {
			found = append(found, word)
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		return utf8.RuneCountInString(found[i]) > utf8.RuneCountInString(found[j])
	})
	return Result{Input: input, Words: found}
}

// Find runs an ASCII Finder.
func Find(input string, words []string, minLength int) Result {
	return Finder{}.Find(input, words, minLength)
}

// FindText runs an ASCII Finder over a newline-delimited word list.
func FindText(input, wordlist string, minLength int) Result {
	return Find(input, strings.Split(wordlist, "\n"), minLength)
}

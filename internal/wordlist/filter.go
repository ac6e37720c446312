package wordlist

import "github.com/verte-zerg/lexigram/internal/letters"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForAlphabet keeps words that are non-empty and made only of letters of
// the alphabet once folded.
func FilterForAlphabet(alphabet letters.Alphabet) FilterFunc {
	return func(word string) bool {
		folded := alphabet.Fold(word)
		if folded == "" {
			return false
		}
		return alphabet.Normalize(folded) == folded
	}
}

// Keep returns the words accepted by filter, in order.
func Keep(words []string, filter FilterFunc) []string {
	out := make([]string, 0, len(words))
	for _, word := range words {
		if filter(word) {
			out = append(out, word)
		}
	}
	return out
}

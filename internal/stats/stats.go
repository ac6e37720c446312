// Package stats computes per-word statistics and renders them as text.
package stats

import (
	"unicode"

	"github.com/verte-zerg/lexigram/internal/model"
	"github.com/verte-zerg/lexigram/internal/score"
)

// Compute returns the statistics of word. It has no side effects.
func Compute(word string) model.WordStats {
	runes := foldRunes(word)
	ws := model.WordStats{
		Length:          len(runes),
		UniqueLetters:   uniqueCount(runes),
		Palindrome:      isPalindrome(runes),
		RepeatedLetters: hasRepeat(runes),
		Difficulty:      score.Difficulty(word),
		ScrabbleScore:   score.Scrabble(word),
	}
	for _, r := range runes {
		switch {
		case score.IsVowel(r):
			ws.Vowels++
		case unicode.IsLetter(r):
			ws.Consonants++
		}
	}
	return ws
}

// IsPalindrome reports whether the lowercased word reads the same backwards.
// Every rune counts, so "level1" is not a palindrome.
func IsPalindrome(word string) bool {
	return isPalindrome(foldRunes(word))
}

// HasRepeatedLetters reports whether any lowercased rune occurs twice.
func HasRepeatedLetters(word string) bool {
	return hasRepeat(foldRunes(word))
}

func foldRunes(word string) []rune {
	runes := []rune(word)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

func isPalindrome(runes []rune) bool {
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

func hasRepeat(runes []rune) bool {
	seen := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		if _, ok := seen[r]; ok {
			return true
		}
		seen[r] = struct{}{}
	}
	return false
}

func uniqueCount(runes []rune) int {
	seen := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		seen[r] = struct{}{}
	}
	return len(seen)
}

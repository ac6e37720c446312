package score

import (
	"math"
	"unicode"
)

// MaxDifficulty is the saturation ceiling of Difficulty.
const MaxDifficulty = math.MaxUint8

const (
	lengthWeight  = 2
	uniqueWeight  = 1
	rarityWeight  = 2
	clusterWeight = 2
)

// letterFrequency is the relative frequency of letters in English text, in percent.
var letterFrequency = map[rune]float64{
	'a': 8.167, 'b': 1.492, 'c': 2.782, 'd': 4.253, 'e': 12.702,
	'f': 2.228, 'g': 2.015, 'h': 6.094, 'i': 6.966, 'j': 0.153,
	'k': 0.772, 'l': 4.025, 'm': 2.406, 'n': 6.749, 'o': 7.507,
	'p': 1.929, 'q': 0.095, 'r': 5.987, 's': 6.327, 't': 9.056,
	'u': 2.758, 'v': 0.978, 'w': 2.360, 'x': 0.150, 'y': 1.974,
	'z': 0.074,
}

// topFrequency is the frequency of 'e'.
const topFrequency = 12.702

// Rarity returns log2(topFrequency/freq) for English letters and 0 otherwise.
func Rarity(r rune) float64 {
	freq, ok := letterFrequency[unicode.ToLower(r)]
	if !ok {
		return 0
	}
	return math.Log2(topFrequency / freq)
}

// IsVowel reports whether r is one of aeiou, ignoring case.
func IsVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func isConsonant(r rune) bool {
	return unicode.IsLetter(r) && !IsVowel(r)
}

// Difficulty combines length, letter variety, letter rarity and consonant
// clusters into a score that saturates at MaxDifficulty.
func Difficulty(word string) uint8 {
	runes := []rune(word)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}

	distinct := map[rune]struct{}{}
	var rarity float64
	for _, r := range runes {
		if unicode.IsLetter(r) {
			distinct[r] = struct{}{}
		}
		rarity += Rarity(r)
	}

	total := lengthWeight*len(runes) +
		uniqueWeight*len(distinct) +
		int(math.Round(rarityWeight*rarity)) +
		clusterWeight*ConsonantRuns(word)
	if total > MaxDifficulty {
		return MaxDifficulty
	}
	return uint8(total)
}

// ConsonantRuns counts the 3-letter windows made only of consonants.
func ConsonantRuns(word string) int {
	runes := []rune(word)
	runs := 0
	for i := 0; i+3 <= len(runes); i++ {
		if isConsonant(runes[i]) && isConsonant(runes[i+1]) && isConsonant(runes[i+2]) {
			runs++
		}
	}
	return runs
}

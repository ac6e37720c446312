// Package rank orders word lists by a fixed set of criteria.
package rank

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/lexigram/internal/score"
)

// ErrUnknownCriterion is returned for criteria outside the enumeration.
var ErrUnknownCriterion = errors.New("unknown sort criterion")

// Criterion selects the sort key.
type Criterion int

const (
	Alphabetical Criterion = iota
	Length
	Difficulty
	ScrabbleScore
)

var criterionNames = []string{"alpha", "length", "difficulty", "score"}

// Criteria returns every criterion in declaration order.
func Criteria() []Criterion {
	return []Criterion{Alphabetical, Length, Difficulty, ScrabbleScore}
}

// String returns the flag name of c.
func (c Criterion) String() string {
	if !c.valid() {
		return fmt.Sprintf("Criterion(%d)", int(c))
	}
	return criterionNames[c]
}

func (c Criterion) valid() bool {
	return c >= Alphabetical && c <= ScrabbleScore
}

// Next cycles to the following criterion.
func (c Criterion) Next() Criterion {
	if !c.valid() {
		return Alphabetical
	}
	return (c + 1) % Criterion(len(criterionNames))
}

// ParseCriterion maps a flag or config value to a Criterion.
func ParseCriterion(name string) (Criterion, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "alpha", "alphabetical":
		return Alphabetical, nil
	case "length", "len":
		return Length, nil
	case "difficulty":
		return Difficulty, nil
	case "score", "scrabble":
		return ScrabbleScore, nil
	default:
		return Alphabetical, fmt.Errorf("%w %q (want %s)", ErrUnknownCriterion, name, strings.Join(criterionNames, ", "))
	}
}

// Sort returns a copy of words in ascending order of c. Ties keep input order.
func Sort(words []string, c Criterion) ([]string, error) {
	return sortWords(words, c, false)
}

// SortDesc returns a copy of words in descending order of c. Ties keep input order.
func SortDesc(words []string, c Criterion) ([]string, error) {
	return sortWords(words, c, true)
}

func sortWords(words []string, c Criterion, desc bool) ([]string, error) {
	if !c.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCriterion, int(c))
	}
	out := make([]string, len(words))
	copy(out, words)
	if c == Alphabetical {
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return out[i] > out[j]
			}
			return out[i] < out[j]
		})
		return out, nil
	}

	// Keys are computed once; the scorers are pure.
	keys := make(map[string]int, len(out))
	for _, word := range out {
		if _, ok := keys[word]; !ok {
			keys[word] = intKey(word, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return keys[out[i]] > keys[out[j]]
		}
		return keys[out[i]] < keys[out[j]]
	})
	return out, nil
}

func intKey(word string, c Criterion) int {
	switch c {
	case Length:
		return utf8.RuneCountInString(word)
	case Difficulty:
		return int(score.Difficulty(word))
	case ScrabbleScore:
		return score.Scrabble(word)
	}
	return 0
}

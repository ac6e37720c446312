// Package anagram finds the words of a word list that can be spelled from a pool of letters.
package anagram

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/lexigram/internal/letters"
)

// maxRepeat is the largest {n,} bound accepted by package regexp.
const maxRepeat = 1000

// Filter is a cheap pre-filter: it keeps words long enough and spelled only with
// letters present in the pool, regardless of how many times each letter is used.
type Filter struct {
	alphabet  letters.Alphabet
	minLength int
	pattern   *regexp.Regexp
}

// NewFilter compiles a filter for the distinct letters of pool. An empty pool
// yields a filter that rejects every word.
func NewFilter(alphabet letters.Alphabet, pool letters.Multiset, minLength int) *Filter {
	if minLength < 1 {
		minLength = 1
	}
	f := &Filter{alphabet: alphabet, minLength: minLength}
	chars := pool.Letters()
	if len(chars) == 0 {
		// "[]" does not compile in Go; nothing can match an empty class anyway.
		return f
	}
	pattern, err := regexp.Compile(buildPattern(chars, minLength))
	if err != nil {
		return f
	}
	f.pattern = pattern
	return f
}

func buildPattern(chars []rune, minLength int) string {
	var b strings.Builder
	b.WriteString("^[")
	for _, r := range chars {
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	b.WriteString("]")
	if minLength > maxRepeat {
		b.WriteString("+")
	} else {
		b.WriteString("{" + strconv.Itoa(minLength) + ",}")
	}
	b.WriteString("$")
	return b.String()
}

// Pattern returns the compiled expression, or "" when the filter rejects everything.
func (f *Filter) Pattern() string {
	if f.pattern == nil {
		return ""
	}
	return f.pattern.String()
}

// Match reports whether word passes the filter after folding.
func (f *Filter) Match(word string) bool {
	return f.match(f.alphabet.Fold(word))
}

func (f *Filter) match(folded string) bool {
	if f.pattern == nil {
		return false
	}
	if utf8.RuneCountInString(folded) < f.minLength {
		return false
	}
	return f.pattern.MatchString(folded)
}

// Candidates returns the folded form of every word that passes, in input order.
func (f *Filter) Candidates(words []string) []string {
	out := []string{}
	if f.pattern == nil {
		return out
	}
	for _, word := range words {
		folded := f.alphabet.Fold(word)
		if f.match(folded) {
			out = append(out, folded)
		}
	}
	return out
}

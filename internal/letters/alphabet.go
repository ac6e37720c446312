// Package letters builds letter multisets and checks multiset containment.
package letters

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ErrUnknownAlphabet is returned for alphabet names other than ascii and unicode.
var ErrUnknownAlphabet = errors.New("unknown alphabet")

// Alphabet selects which runes survive normalization.
type Alphabet int

const (
	// ASCII keeps only a-z after lowercasing.
	ASCII Alphabet = iota
	// Unicode keeps any letter after NFC composition and lowercasing.
	Unicode
)

// ParseAlphabet maps a config or flag value to an Alphabet. Empty means ASCII.
func ParseAlphabet(name string) (Alphabet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ascii":
		return ASCII, nil
	case "unicode":
		return Unicode, nil
	default:
		return ASCII, fmt.Errorf("%w %q (want ascii or unicode)", ErrUnknownAlphabet, name)
	}
}

// String returns the config name of the alphabet.
func (a Alphabet) String() string {
	if a == Unicode {
		return "unicode"
	}
	return "ascii"
}

// Contains reports whether r, already lowercased, belongs to the alphabet.
func (a Alphabet) Contains(r rune) bool {
	if a == Unicode {
		return unicode.IsLetter(r)
	}
	return r >= 'a' && r <= 'z'
}

// Fold lowercases a word and, for Unicode, composes it to NFC. Other runes are kept.
func (a Alphabet) Fold(s string) string {
	s = strings.TrimSpace(s)
	if a == Unicode {
		return strings.ToLower(norm.NFC.String(s))
	}
	return strings.ToLower(s)
}

// Normalize folds s and drops every rune outside the alphabet.
func (a Alphabet) Normalize(s string) string {
	folded := a.Fold(s)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if a.Contains(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Count normalizes s and tallies each surviving rune.
func (a Alphabet) Count(s string) Multiset {
	return countRunes(a.Normalize(s))
}

// Package generator picks random words and the word of the day.
package generator

import (
	"math/rand"
	"time"
)

// FallbackWord is returned when there is nothing to pick from.
const FallbackWord = "puzzle"

// Generator picks words at random.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Random selects a word uniformly. It returns "" for an empty list.
func (g *Generator) Random(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return words[g.rnd.Intn(len(words))]
}

// DaySeed encodes the UTC calendar date of day as yyyymmdd.
func DaySeed(day time.Time) int64 {
	y, m, d := day.UTC().Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}

// WordOfDay picks the same word for every call on the same UTC date.
func WordOfDay(words []string, day time.Time) string {
	if len(words) == 0 {
		return FallbackWord
	}
	return NewSeeded(DaySeed(day)).Random(words)
}

package generator

import (
	"testing"
	"time"
)

var words = []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel"}

func TestDaySeed(t *testing.T) {
	day := time.Date(2024, time.March, 7, 23, 30, 0, 0, time.UTC)
	if got := DaySeed(day); got != 20240307 {
		t.Fatalf("expected 20240307, got %d", got)
	}
	// 01:00 in UTC+2 on the 8th is still the 7th in UTC.
	local := time.Date(2024, time.March, 8, 1, 0, 0, 0, time.FixedZone("UTC+2", 2*60*60))
	if got := DaySeed(local); got != 20240307 {
		t.Fatalf("expected UTC date, got %d", got)
	}
}

func TestWordOfDayDeterministic(t *testing.T) {
	morning := time.Date(2025, time.June, 1, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.June, 1, 22, 0, 0, 0, time.UTC)
	first := WordOfDay(words, morning)
	if first != WordOfDay(words, evening) {
		t.Fatalf("expected the same word for the whole day")
	}
	found := false
	for _, w := range words {
		if w == first {
			found = true
		}
	}
	if !found {
		t.Fatalf("word of the day %q not in list", first)
	}
}

func TestWordOfDayEmpty(t *testing.T) {
	if got := WordOfDay(nil, time.Now()); got != FallbackWord {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestRandom(t *testing.T) {
	g := NewSeeded(1)
	if g.Random(nil) != "" {
		t.Fatalf("expected empty word for empty list")
	}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[g.Random(words)] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected more than one distinct word, got %v", seen)
	}
	a, b := NewSeeded(9), NewSeeded(9)
	for i := 0; i < 10; i++ {
		if a.Random(words) != b.Random(words) {
			t.Fatalf("expected equal seeds to agree")
		}
	}
}

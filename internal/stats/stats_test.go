package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/verte-zerg/lexigram/internal/model"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		word string
		want model.WordStats
	}{
		{
			word: "hello",
			want: model.WordStats{Length: 5, Vowels: 2, Consonants: 3, UniqueLetters: 4, RepeatedLetters: true, Difficulty: 24, ScrabbleScore: 8},
		},
		{
			word: "Level",
			want: model.WordStats{Length: 5, Vowels: 2, Consonants: 3, UniqueLetters: 3, Palindrome: true, RepeatedLetters: true, Difficulty: 27, ScrabbleScore: 8},
		},
		{
			word: "quiz",
			want: model.WordStats{Length: 4, Vowels: 2, Consonants: 2, UniqueLetters: 4, Difficulty: 47, ScrabbleScore: 22},
		},
		{
			word: "a1b2",
			want: model.WordStats{Length: 4, Vowels: 1, Consonants: 1, UniqueLetters: 4, Difficulty: 17, ScrabbleScore: 4},
		},
		{
			word: "",
			want: model.WordStats{Palindrome: true},
		},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Compute(tt.word)); diff != "" {
			t.Errorf("Compute(%q) (-want +got):\n%s", tt.word, diff)
		}
	}
}

func TestComputeIdempotent(t *testing.T) {
	for _, word := range []string{"strength", "Ünïcödé", "racecar", "x-ray"} {
		if first, second := Compute(word), Compute(word); first != second {
			t.Fatalf("Compute(%q) not idempotent: %+v vs %+v", word, first, second)
		}
	}
}

func TestIsPalindrome(t *testing.T) {
	tests := map[string]bool{
		"Level":   true,
		"level1":  false,
		"racecar": true,
		"abca":    false,
		"a":       true,
		"1a1":     true,
	}
	for word, want := range tests {
		if got := IsPalindrome(word); got != want {
			t.Errorf("IsPalindrome(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestHasRepeatedLetters(t *testing.T) {
	tests := map[string]bool{
		"hello": true,
		"world": false,
		"Aa":    true,
		"abc":   false,
		"":      false,
	}
	for word, want := range tests {
		if got := HasRepeatedLetters(word); got != want {
			t.Errorf("HasRepeatedLetters(%q) = %v, want %v", word, got, want)
		}
	}
}

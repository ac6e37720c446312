package letters

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCountNormalizesInput(t *testing.T) {
	got := Count("  He-LLo, World!  ")
	want := Multiset{'h': 1, 'e': 1, 'l': 3, 'o': 2, 'w': 1, 'r': 1, 'd': 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected multiset (-want +got):\n%s", diff)
	}
	if got.Len() != 10 {
		t.Fatalf("expected 10 letters, got %d", got.Len())
	}
}

func TestCountEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "123 !?", "été"} {
		got := Count(input)
		if input == "été" {
			if len(got) != 1 || got['t'] != 1 {
				t.Fatalf("expected only t to survive ascii normalization, got %v", got)
			}
			continue
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty non-nil multiset for %q, got %v", input, got)
		}
	}
}

func TestUnicodeAlphabetKeepsLetters(t *testing.T) {
	// "e" followed by a combining acute accent composes to é.
	got := Unicode.Count("Cafe\u0301s")
	want := Multiset{'c': 1, 'a': 1, 'f': 1, 'é': 1, 's': 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected multiset (-want +got):\n%s", diff)
	}
	if Unicode.Normalize("Straße 42") != "straße" {
		t.Fatalf("unexpected normalization: %q", Unicode.Normalize("Straße 42"))
	}
}

func TestLettersSortedDistinct(t *testing.T) {
	got := Count("banana").Letters()
	if diff := cmp.Diff([]rune{'a', 'b', 'n'}, got); diff != "" {
		t.Fatalf("unexpected letters (-want +got):\n%s", diff)
	}
}

func TestSubsetOf(t *testing.T) {
	pool := Count("hello")
	tests := []struct {
		word string
		want bool
	}{
		{"hell", true},
		{"hole", true},
		{"hello", true},
		{"helo", true},
		{"hoop", false},
		{"hellos", false},
		{"holl", true},
		{"hollo", false},
		{"", true},
	}
	for _, tt := range tests {
		if got := Count(tt.word).SubsetOf(pool); got != tt.want {
			t.Errorf("SubsetOf(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
	if Count("a").SubsetOf(Multiset{}) {
		t.Fatalf("expected nothing to fit an empty pool")
	}
}

func TestParseAlphabet(t *testing.T) {
	for name, want := range map[string]Alphabet{"": ASCII, "ASCII": ASCII, " unicode ": Unicode} {
		got, err := ParseAlphabet(name)
		if err != nil {
			t.Fatalf("ParseAlphabet(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseAlphabet(%q) = %v, want %v", name, got, want)
		}
	}
	if _, err := ParseAlphabet("latin"); !errors.Is(err, ErrUnknownAlphabet) {
		t.Fatalf("expected ErrUnknownAlphabet, got %v", err)
	}
}

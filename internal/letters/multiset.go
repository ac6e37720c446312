package letters

import "sort"

// Multiset maps a lowercase letter to its number of occurrences.
// A missing key means zero. Values are never mutated after construction.
type Multiset map[rune]int

// Count builds an ASCII multiset from s.
func Count(s string) Multiset {
	return ASCII.Count(s)
}

func countRunes(s string) Multiset {
	m := Multiset{}
	for _, r := range s {
		m[r]++
	}
	return m
}

// Len returns the total number of letters, duplicates included.
func (m Multiset) Len() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

// Letters returns the distinct letters in ascending order.
func (m Multiset) Letters() []rune {
	out := make([]rune, 0, len(m))
	for r, n := range m {
		if n > 0 {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SubsetOf reports whether every letter of m is available in pool at least as many times.
func (m Multiset) SubsetOf(pool Multiset) bool {
	for r, n := range m {
		if n > pool[r] {
			return false
		}
	}
	return true
}

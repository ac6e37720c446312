// Package model defines shared data structures.
package model

import "time"

// Config defines search settings.
type Config struct {
	WordListPath string
	MinLength    int
	Alphabet     string
	Sort         string
	Desc         bool
	HistorySize  int
}

// DefineConfig defines dictionary lookup settings.
type DefineConfig struct {
	Endpoint  string
	Timeout   time.Duration
	CacheSize int
}

// WordStats describes a single word.
type WordStats struct {
	Length          int   `json:"length"`
	Vowels          int   `json:"vowel_count"`
	Consonants      int   `json:"consonant_count"`
	UniqueLetters   int   `json:"unique_letters"`
	Palindrome      bool  `json:"is_palindrome"`
	RepeatedLetters bool  `json:"has_repeated_letters"`
	Difficulty      uint8 `json:"difficulty"`
	ScrabbleScore   int   `json:"scrabble_score"`
}

// Favorite is a saved word and the time it was saved.
type Favorite struct {
	Word    string
	AddedAt time.Time
}

// HistoryEntry is a searched input and the time it was last searched.
type HistoryEntry struct {
	Word   string
	UsedAt time.Time
}

// Definition is the result of a dictionary lookup.
type Definition struct {
	Word  string `json:"word"`
	Text  string `json:"definition"`
	Found bool   `json:"found"`
}

// ShareableContent bundles a search for sharing.
type ShareableContent struct {
	Input        string   `json:"original_input"`
	Anagrams     []string `json:"anagrams"`
	WordOfTheDay string   `json:"word_of_the_day"`
}

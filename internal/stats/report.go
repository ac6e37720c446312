package stats

import (
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/lexigram/internal/model"
)

// RenderWordStats prints the statistics of one word.
func RenderWordStats(w io.Writer, word string, ws model.WordStats) error {
	rows := [][]string{
		{"Length", strconv.Itoa(ws.Length)},
		{"Vowels", strconv.Itoa(ws.Vowels)},
		{"Consonants", strconv.Itoa(ws.Consonants)},
		{"Unique letters", strconv.Itoa(ws.UniqueLetters)},
		{"Palindrome", yesNo(ws.Palindrome)},
		{"Repeated letters", yesNo(ws.RepeatedLetters)},
		{"Scrabble score", strconv.Itoa(ws.ScrabbleScore)},
		{"Difficulty", strconv.Itoa(int(ws.Difficulty))},
	}
	if _, err := fmt.Fprintln(w, word); err != nil {
		return err
	}
	for _, line := range formatTable(nil, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderWordTable prints one row per word with its length and scores.
// Words present in favorites are marked with a star.
func RenderWordTable(w io.Writer, words []string, favorites map[string]bool) error {
	if len(words) == 0 {
		_, err := fmt.Fprintln(w, "No words found.")
		return err
	}
	headers := []string{"Word", "Len", "Score", "Difficulty", ""}
	rows := make([][]string, 0, len(words))
	for _, word := range words {
		ws := Compute(word)
		mark := ""
		if favorites[word] {
			mark = "*"
		}
		rows = append(rows, []string{
			word,
			strconv.Itoa(ws.Length),
			strconv.Itoa(ws.ScrabbleScore),
			strconv.Itoa(int(ws.Difficulty)),
			mark,
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// Package wordlist loads word lists from files.
package wordlist

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmpty is returned when a word list contains no words.
var ErrEmpty = errors.New("word list is empty")

// LoadWords reads one word per line from path. Files ending in .gz are
// decompressed on the fly.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var r io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip word list: %w", err)
		}
		defer func() {
			_ = gz.Close()
		}()
		r = gz
	}

	words, err := Parse(r)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}

// Parse reads one word per line, skipping blank lines.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// ParseText splits newline-delimited text into words, skipping blank lines.
func ParseText(text string) []string {
	words, err := Parse(strings.NewReader(text))
	if err != nil {
		// Reading from a strings.Reader only fails on lines over the scanner limit.
		return strings.Fields(text)
	}
	return words
}

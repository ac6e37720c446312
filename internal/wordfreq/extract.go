package wordfreq

import (
	"archive/zip"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/lexigram/internal/letters"
)

const dataDir = "wordfreq/data/"

// Options selects which words ExtractWords keeps.
type Options struct {
	Lang      string
	Alphabet  letters.Alphabet
	MinLength int
	MaxLength int
	Limit     int
}

// ExtractWords returns up to opts.Limit words for opts.Lang, most frequent
// first. Words are folded with the alphabet; any word with a rune outside it
// is skipped.
func ExtractWords(wheelPath string, opts Options) ([]string, error) {
	if wheelPath == "" {
		return nil, fmt.Errorf("wheel path is required")
	}
	if opts.Limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than 0")
	}
	lang := strings.ToLower(strings.TrimSpace(opts.Lang))
	if lang == "" {
		lang = "en"
	}

	reader, err := zip.OpenReader(wheelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wheel: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	file := findDataFile(reader.File, lang)
	if file == nil {
		return nil, fmt.Errorf("no word list for language %q", lang)
	}
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer func() {
		_ = rc.Close()
	}()
	bins, err := readBins(file.Name, rc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", file.Name, err)
	}

	words := make([]string, 0, opts.Limit)
	seen := make(map[string]struct{})
	for _, bin := range bins {
		for _, raw := range bin {
			word := opts.Alphabet.Fold(raw)
			if !keepWord(word, opts) {
				continue
			}
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			words = append(words, word)
			if len(words) >= opts.Limit {
				return words, nil
			}
		}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("no words found for language %q", lang)
	}
	return words, nil
}

func keepWord(word string, opts Options) bool {
	n := utf8.RuneCountInString(word)
	if n == 0 || n < opts.MinLength || (opts.MaxLength > 0 && n > opts.MaxLength) {
		return false
	}
	for _, r := range word {
		if !opts.Alphabet.Contains(r) {
			return false
		}
	}
	return true
}

// findDataFile prefers the large list and falls back to the small one.
func findDataFile(files []*zip.File, lang string) *zip.File {
	for _, size := range []string{"large", "small"} {
		base := dataDir + size + "_" + lang + ".msgpack"
		for _, f := range files {
			if f.Name == base || f.Name == base+".gz" {
				return f
			}
		}
	}
	return nil
}

// Languages lists the language codes with a word list in the wheel.
func Languages(wheelPath string) ([]string, error) {
	reader, err := zip.OpenReader(wheelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wheel: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	seen := map[string]struct{}{}
	langs := []string{}
	for _, f := range reader.File {
		lang := languageOf(f.Name)
		if lang == "" {
			continue
		}
		if _, ok := seen[lang]; ok {
			continue
		}
		seen[lang] = struct{}{}
		langs = append(langs, lang)
	}
	if len(langs) == 0 {
		return nil, fmt.Errorf("no languages found in wordfreq wheel")
	}
	sort.Strings(langs)
	return langs, nil
}

func languageOf(name string) string {
	base, ok := strings.CutPrefix(name, dataDir)
	if !ok {
		return ""
	}
	base = strings.TrimSuffix(base, ".gz")
	base, ok = strings.CutSuffix(base, ".msgpack")
	if !ok {
		return ""
	}
	for _, prefix := range []string{"large_", "small_"} {
		if lang, ok := strings.CutPrefix(base, prefix); ok {
			return lang
		}
	}
	return ""
}

// readLicense returns the first license file shipped in the wheel.
func readLicense(wheelPath string) ([]byte, error) {
	reader, err := zip.OpenReader(wheelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wheel for license: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	for _, f := range reader.File {
		if !strings.Contains(strings.ToLower(f.Name), "license") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open license: %w", err)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read license: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("license file not found in wheel")
}

package wordfreq

import (
	"compress/gzip"
	"fmt"
	"io"
	"strings"
)

// readBins decodes a wordfreq "cB" pack: a header map followed by one list of
// words per centibel bin, most frequent bin first.
func readBins(name string, r io.Reader) ([][]string, error) {
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer func() {
			_ = gz.Close()
		}()
		r = gz
	}

	root, err := newMsgpackReader(r).value()
	if err != nil {
		return nil, err
	}
	items, ok := root.([]any)
	if !ok || len(items) == 0 {
		return nil, fmt.Errorf("unexpected wordfreq root %T", root)
	}
	header, ok := items[0].(map[any]any)
	if !ok || header["format"] != "cB" {
		return nil, fmt.Errorf("unsupported wordfreq pack format")
	}

	bins := make([][]string, 0, len(items)-1)
	for i, item := range items[1:] {
		raw, ok := item.([]any)
		if !ok {
			return nil, fmt.Errorf("bin %d: unexpected %T", i, item)
		}
		words := make([]string, 0, len(raw))
		for _, w := range raw {
			switch v := w.(type) {
			case string:
				words = append(words, v)
			case []byte:
				words = append(words, string(v))
			default:
				return nil, fmt.Errorf("bin %d: unexpected word %T", i, w)
			}
		}
		bins = append(bins, words)
	}
	return bins, nil
}

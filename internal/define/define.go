// Package define looks up word definitions over HTTP.
package define

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/verte-zerg/lexigram/internal/model"
)

const (
	// DefaultEndpoint is the Datamuse API base URL.
	DefaultEndpoint = "https://api.datamuse.com"
	// DefaultTimeout bounds a single lookup.
	DefaultTimeout = 10 * time.Second
	// NotFoundText is the definition text reported when the dictionary has none.
	NotFoundText = "No definition found"
)

// Cache stores definitions between lookups. Implementations must be safe for
// concurrent use.
type Cache interface {
	GetDefinition(ctx context.Context, word string) (model.Definition, bool, error)
	PutDefinition(ctx context.Context, def model.Definition) error
}

// Client fetches definitions from a Datamuse-compatible endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	cache    Cache
}

type datamuseItem struct {
	Word string   `json:"word"`
	Defs []string `json:"defs"`
}

// NewClient returns a Client. A nil cache disables caching.
func NewClient(endpoint string, timeout time.Duration, cache Cache) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     &http.Client{Timeout: timeout},
		cache:    cache,
	}
}

// Lookup returns the first definition of word. A word without definitions is
// not an error: the result has Found set to false.
func (c *Client) Lookup(ctx context.Context, word string) (model.Definition, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return model.Definition{}, fmt.Errorf("word is required")
	}
	if c.cache != nil {
		if def, ok, err := c.cache.GetDefinition(ctx, word); err == nil && ok {
			return def, nil
		}
	}

	def, err := c.fetch(ctx, word)
	if err != nil {
		return model.Definition{}, err
	}
	if c.cache != nil {
		if err := c.cache.PutDefinition(ctx, def); err != nil {
			// Best-effort cache write.
			_ = err
		}
	}
	return def, nil
}

// LookupAll looks up words concurrently, at most limit at a time, and returns
// the definitions in input order.
func (c *Client) LookupAll(ctx context.Context, words []string, limit int) ([]model.Definition, error) {
	if limit <= 0 {
		limit = 4
	}
	out := make([]model.Definition, len(words))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, word := range words {
		g.Go(func() error {
			def, err := c.Lookup(ctx, word)
			if err != nil {
				return fmt.Errorf("failed to define %q: %w", word, err)
			}
			out[i] = def
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) fetch(ctx context.Context, word string) (model.Definition, error) {
	query := url.Values{"sp": {word}, "md": {"d"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/words?"+query.Encode(), http.NoBody)
	if err != nil {
		return model.Definition{}, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return model.Definition{}, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return model.Definition{}, fmt.Errorf("unexpected dictionary status: %s", resp.Status)
	}

	var items []datamuseItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return model.Definition{}, fmt.Errorf("failed to decode dictionary response: %w", err)
	}
	if len(items) == 0 || len(items[0].Defs) == 0 {
		return model.Definition{Word: word, Text: NotFoundText}, nil
	}
	return model.Definition{Word: word, Text: stripPartOfSpeech(items[0].Defs[0]), Found: true}, nil
}

// stripPartOfSpeech drops the "n\t" style prefix Datamuse puts on definitions.
func stripPartOfSpeech(def string) string {
	if _, text, ok := strings.Cut(def, "\t"); ok {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(def)
}

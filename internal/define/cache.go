package define

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/verte-zerg/lexigram/internal/model"
)

// MemoryCache keeps the most recently used definitions in memory.
type MemoryCache struct {
	entries *lru.Cache[string, model.Definition]
}

// NewMemoryCache returns a cache holding at most size definitions.
func NewMemoryCache(size int) (*MemoryCache, error) {
	if size <= 0 {
		size = 256
	}
	entries, err := lru.New[string, model.Definition](size)
	if err != nil {
		return nil, err
	}
	return &MemoryCache{entries: entries}, nil
}

// GetDefinition implements Cache.
func (m *MemoryCache) GetDefinition(_ context.Context, word string) (model.Definition, bool, error) {
	def, ok := m.entries.Get(word)
	return def, ok, nil
}

// PutDefinition implements Cache.
func (m *MemoryCache) PutDefinition(_ context.Context, def model.Definition) error {
	m.entries.Add(def.Word, def)
	return nil
}

// Layered reads from the first cache that has a word and writes to all of them.
type Layered []Cache

// GetDefinition implements Cache. Earlier layers are filled on a hit further down.
func (l Layered) GetDefinition(ctx context.Context, word string) (model.Definition, bool, error) {
	for i, c := range l {
		def, ok, err := c.GetDefinition(ctx, word)
		if err != nil {
			return model.Definition{}, false, err
		}
		if !ok {
			continue
		}
		for _, upper := range l[:i] {
			if err := upper.PutDefinition(ctx, def); err != nil {
				// Best-effort backfill.
				_ = err
			}
		}
		return def, true, nil
	}
	return model.Definition{}, false, nil
}

// PutDefinition implements Cache.
func (l Layered) PutDefinition(ctx context.Context, def model.Definition) error {
	for _, c := range l {
		if err := c.PutDefinition(ctx, def); err != nil {
			return err
		}
	}
	return nil
}

package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MemCache is a bounded in-process L1, the same role the teacher's
// MongoCacheService gives its own hashicorp/golang-lru layer in front of
// the slower backend.
type MemCache struct {
	cache *lru.Cache[string, string]
}

// NewMemCache returns a MemCache holding at most size entries.
func NewMemCache(size int) (*MemCache, error) {
	c, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("cache: creating LRU cache: %w", err)
	}
	return &MemCache{cache: c}, nil
}

func (m *MemCache) Get(_ context.Context, key string) (string, bool, error) {
	zipcode, ok := m.cache.Get(key)
	return zipcode, ok, nil
}

func (m *MemCache) Set(_ context.Context, key, zipcode string) error {
	m.cache.Add(key, zipcode)
	return nil
}

func (m *MemCache) Close() error {
	return nil
}

package chunk

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoises Split by row text. Grids with many repeated rows
// (stripes, borders, padding) are chunked once per distinct row.
// Cache is safe for concurrent use.
type Cache struct {
	runs *lru.Cache[string, []Run]
}

// NewCache returns a Cache holding at most size distinct rows.
// Returns ErrBadCacheSize if size <= 0.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCacheSize, size)
	}
	runs, err := lru.New[string, []Run](size)
	if err != nil {
		return nil, fmt.Errorf("chunk: building lru: %w", err)
	}

	return &Cache{runs: runs}, nil
}

// Split behaves like the package-level Split but serves repeated rows from
// the cache. The returned slice is shared and must not be modified.
func (c *Cache) Split(row []rune) []Run {
	key := string(row)
	if runs, ok := c.runs.Get(key); ok {
		return runs
	}
	runs := Split(row)
	c.runs.Add(key, runs)

	return runs
}

// SplitAll is SplitAll backed by c.
func (c *Cache) SplitAll(ctx context.Context, rows [][]rune, workers int) ([][]Run, error) {
	return splitAll(ctx, rows, workers, c.Split)
}

// Len reports how many distinct rows are currently cached.
func (c *Cache) Len() int {
	return c.runs.Len()
}

package catalog

import (
	"context"
	"sync"

	"alcyxob/trainer-api/internal/domain"
)

// Cache memoizes the catalog for the process lifetime. Concurrent first
// accessors may each issue a redundant fetch; the last writer wins, which is
// harmless because records are immutable once fetched.
type Cache struct {
	fetcher Fetcher

	mu        sync.Mutex
	records   []domain.ExerciseRecord
	populated bool
}

// NewCache wraps a fetcher with process-lifetime memoization.
func NewCache(fetcher Fetcher) *Cache {
	return &Cache{fetcher: fetcher}
}

// Fetch returns the cached exercise list, fetching it on first use.
func (c *Cache) Fetch(ctx context.Context) ([]domain.ExerciseRecord, error) {
	c.mu.Lock()
	if c.populated {
		records := c.records
		c.mu.Unlock()
		return records, nil
	}
	c.mu.Unlock()

	records, err := c.fetcher.FetchExercises(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.records = records
	c.populated = true
	c.mu.Unlock()
	return records, nil
}

// Reset clears the cache so the next Fetch hits the external catalog again.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.records = nil
	c.populated = false
	c.mu.Unlock()
}

package suggest

import (
	"context"
	"strings"
	"sync"
)

// Cache remembers successful suggestions per hanzi for the session
type Cache struct {
	next Provider

	mu      sync.Mutex
	entries map[string]Suggestion
}

// NewCache wraps next with an in-memory cache
func NewCache(next Provider) *Cache {
	return &Cache{
		next:    next,
		entries: make(map[string]Suggestion),
	}
}

// Name returns the wrapped provider name
func (c *Cache) Name() string {
	return c.next.Name()
}

// IsAvailable forwards to the wrapped provider
func (c *Cache) IsAvailable() error {
	return c.next.IsAvailable()
}

// Suggest returns a cached suggestion or asks the wrapped provider
func (c *Cache) Suggest(ctx context.Context, hanzi string) (Suggestion, error) {
	key := strings.TrimSpace(hanzi)

	c.mu.Lock()
	s, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return s, nil
	}

	s, err := c.next.Suggest(ctx, key)
	if err != nil {
		return Suggestion{}, err
	}

	c.mu.Lock()
	c.entries[key] = s
	c.mu.Unlock()
	return s, nil
}

// Len returns the number of cached suggestions
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

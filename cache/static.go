package cache

import (
	"sync"
	"sync/atomic"
)

// StaticCache is a concurrency-safe URL-to-URL mapping with no eviction.
// The zero value is not usable; create one with NewStaticCache.
type StaticCache struct {
	mu      sync.RWMutex
	entries map[string]string

	hits   atomic.Int64
	misses atomic.Int64
}

// NewStaticCache creates an empty StaticCache.
func NewStaticCache() *StaticCache {
	return &StaticCache{
		entries: make(map[string]string),
	}
}

// Get returns the cached value for key. ok=false if missing.
func (c *StaticCache) Get(key string) (value string, ok bool) {
	c.mu.RLock()
	value, ok = c.entries[key]
	c.mu.RUnlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return value, ok
}

// Set stores value under key, overwriting any previous entry.
// Values are deterministic functions of the key's underlying content, so
// concurrent duplicate writes are harmless.
func (c *StaticCache) Set(key, value string) {
	c.mu.Lock()
	c.entries[key] = value
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *StaticCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns cache statistics.
func (c *StaticCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

package store

import "sync"

// HeaderCache maps a rounded-coordinate key to a previously computed
// location header string. Implementations must be safe for concurrent use.
type HeaderCache interface {
	Get(key string) (string, bool)
	Put(key, value string)
}

// MemoryHeaderCache is a concurrency-safe, insert-only in-memory HeaderCache.
// It is populated lazily and lives for the process lifetime; nothing is ever
// evicted because the value for a given key is deterministic.
type MemoryHeaderCache struct {
	mu      sync.RWMutex
	headers map[string]string
}

// NewMemoryHeaderCache creates an empty MemoryHeaderCache.
func NewMemoryHeaderCache() *MemoryHeaderCache {
	return &MemoryHeaderCache{
		headers: make(map[string]string),
	}
}

// Get returns the cached header for key, if any.
func (c *MemoryHeaderCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.headers[key]
	return v, ok
}

// Put stores the header for key. Concurrent writes to the same key are
// benign since callers always compute the same value for a given key.
func (c *MemoryHeaderCache) Put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.headers[key] = value
}

package data

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"windfarm-analytics/internal/observability/metrics"
)

// Cache memoizes pipeline results keyed by operation name and parameters.
//
// There is no eviction: the input set is a handful of files and a small
// parameter space. A nil *Cache disables memoization, which lets tests
// exercise the pure functions directly.
type Cache struct {
	mu    sync.RWMutex
	store map[string]any
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{store: make(map[string]any)}
}

// Get retrieves a cached result.
func (c *Cache) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.store[key]
	return v, ok
}

// Set stores a result.
func (c *Cache) Set(key string, v any) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = v
	metrics.SetCacheEntries(len(c.store))
}

// Clear removes all entries.
func (c *Cache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]any)
	metrics.SetCacheEntries(0)
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// CacheKey creates a deterministic key from an operation and its parameters.
func CacheKey(operation string, params ...any) string {
	keyStr := operation
	for _, p := range params {
		keyStr += fmt.Sprintf(":%v", p)
	}
	hash := sha256.Sum256([]byte(keyStr))
	return hex.EncodeToString(hash[:])
}

// Memoize returns the cached result of operation(params) or computes and
// stores it. Errors are returned without being cached.
func Memoize[T any](c *Cache, operation string, params []any, compute func() (T, error)) (T, error) {
	if c == nil {
		return compute()
	}
	key := CacheKey(operation, params...)
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			metrics.IncCacheLookup(operation, true)
			return typed, nil
		}
	}
	metrics.IncCacheLookup(operation, false)
	v, err := compute()
	if err != nil {
		return v, err
	}
	c.Set(key, v)
	return v, nil
}

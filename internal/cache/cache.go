// Package cache provides a small TTL cache used to memoize repeated
// computations, such as per-line syntax classification.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"slate/internal/log"
)

const (
	DefaultExpiration      = 10 * time.Minute
	DefaultCleanupInterval = 30 * time.Minute
)

// Cache is a typed wrapper over go-cache. The useCase string tags log
// entries so hit/miss patterns can be told apart per call site.
type Cache[V any] struct {
	useCase string
	store   *gocache.Cache
}

// New creates a cache with the given default expiration and cleanup
// interval.
func New[V any](useCase string, expiration, cleanupInterval time.Duration) *Cache[V] {
	return &Cache[V]{
		useCase: useCase,
		store:   gocache.New(expiration, cleanupInterval),
	}
}

// Get retrieves a value by key.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V

	value, found := c.store.Get(key)
	if !found {
		return zero, false
	}

	v, ok := value.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type in cache", "useCase", c.useCase, "key", key)
		return zero, false
	}
	return v, true
}

// Set stores a value under key with the given TTL. A zero TTL uses the
// cache's default expiration.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	c.store.Set(key, value, ttl)
}

// GetOrCompute returns the cached value for key, computing and storing
// it on a miss.
func (c *Cache[V]) GetOrCompute(key string, ttl time.Duration, fn func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := fn()
	c.Set(key, v, ttl)
	return v
}

// Delete removes the given keys.
func (c *Cache[V]) Delete(keys ...string) {
	for _, key := range keys {
		c.store.Delete(key)
	}
}

// Flush drops every entry.
func (c *Cache[V]) Flush() {
	c.store.Flush()
}

// Len returns the number of live entries.
func (c *Cache[V]) Len() int {
	return c.store.ItemCount()
}

// Package cache provides a time-bounded in-memory key/value cache. Entries
// expire a fixed lifetime after they are written and staleness is checked
// lazily on read, there is no background eviction. All operations are safe
// for concurrent use without external locking and a write is atomic with
// respect to reads, so two callers racing on the same key settle on
// last-write-wins without partial visibility.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is a typed view over a single expiry-bounded store. The name
// identifies the cache in logs and lets several caches share an entry
// lifetime while staying independent.
type Cache[V any] struct {
	name  string
	store *gocache.Cache
}

// New returns a cache whose entries live for exactly lifetime after each Set.
func New[V any](name string, lifetime time.Duration) *Cache[V] {
	// Cleanup interval zero disables the janitor goroutine, stale entries are
	// dropped on read or overwritten by the next Set.
	return &Cache[V]{
		name:  name,
		store: gocache.New(lifetime, 0),
	}
}

// Name returns the cache identifier.
func (c *Cache[V]) Name() string {
	return c.name
}

// Set stores value under key with expiry now + lifetime, overwriting any
// previous entry.
func (c *Cache[V]) Set(key string, value V) {
	c.store.SetDefault(key, value)
}

// Get returns the value stored under key, with ok=false if the key is absent
// or its entry has expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	raw, ok := c.store.Get(key)
	if !ok {
		return zero, false
	}
	value, ok := raw.(V)
	if !ok {
		return zero, false
	}
	return value, true
}

// Flush drops every entry. Used on wallet-session teardown.
func (c *Cache[V]) Flush() {
	c.store.Flush()
}

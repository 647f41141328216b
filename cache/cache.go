// Package cache provides a small bounded LRU cache used by textmeasure
// for parsed fonts and canonicalized locale tags.
package cache

import (
	"sort"
	"sync"
)

// Cache is a generic thread-safe cache with a soft entry limit.
// When the cache grows past its limit, the least recently used
// entries are evicted in a batch.
//
// Cache is safe for concurrent use.
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu    sync.Mutex
	items map[K]*item[V]
	limit int
	tick  int64 // Monotonic access counter
}

// item holds a cached value with its last access time.
type item[V any] struct {
	value V
	atime int64
}

// New creates a cache with the given soft limit.
// A limit of 0 means unlimited.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		items: make(map[K]*item[V]),
		limit: limit,
	}
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}

	c.tick++
	it.atime = c.tick
	return it.value, true
}

// Set stores a value in the cache, evicting old entries if the
// soft limit is exceeded.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	c.items[key] = &item[V]{value: value, atime: c.tick}
	c.evict()
}

// GetOrCreate returns the cached value for key, calling create to
// produce it on a miss. create runs under the cache lock so a key is
// only ever created once.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if it, ok := c.items[key]; ok {
		it.atime = c.tick
		return it.value
	}

	value := create()
	c.items[key] = &item[V]{value: value, atime: c.tick}
	c.evict()
	return value
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[K]*item[V])
	c.tick = 0
}

// evict removes least recently used entries until the cache is at
// 3/4 of its soft limit. Caller must hold c.mu.
func (c *Cache[K, V]) evict() {
	if c.limit <= 0 || len(c.items) <= c.limit {
		return
	}

	target := c.limit * 3 / 4
	if target < 1 {
		target = 1
	}

	type aged struct {
		key   K
		atime int64
	}
	all := make([]aged, 0, len(c.items))
	for key, it := range c.items {
		all = append(all, aged{key: key, atime: it.atime})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].atime < all[j].atime })

	for i := 0; i < len(all)-target; i++ {
		delete(c.items, all[i].key)
	}
}

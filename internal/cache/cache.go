package cache

import (
	"crypto/sha256"
	"sync"
)

// Key identifies a value by the content it was created from.
type Key [sha256.Size]byte

// KeyOf hashes the given parts. Parts are length prefixed, so ("ab", "c")
// and ("a", "bc") give different keys.
func KeyOf(parts ...string) Key {
	h := sha256.New()
	var n [8]byte
	for _, p := range parts {
		l := uint64(len(p))
		for i := range n {
			n[i] = byte(l >> (8 * i))
		}
		h.Write(n[:])
		h.Write([]byte(p))
	}
	var k Key
	h.Sum(k[:0])
	return k
}

// Cache maps keys to values shared by reference count.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*cacheEntry[V]
	hits    uint64
	misses  uint64
}

type cacheEntry[V any] struct {
	value V
	refs  int
}

// New creates an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]*cacheEntry[V])}
}

// Acquire returns the value for key and takes a reference to it. A missing
// value is created under the lock; a failed create stores nothing.
func (c *Cache[K, V]) Acquire(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.refs++
		c.hits++
		return e.value, nil
	}
	c.misses++
	v, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.entries[key] = &cacheEntry[V]{value: v, refs: 1}
	return v, nil
}

// Release drops a reference to key. When the last reference goes, the
// entry is removed and destroy is called with its value. Release reports
// whether the value was destroyed.
func (c *Cache[K, V]) Release(key K, destroy func(V)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	e.refs--
	if e.refs > 0 {
		return false
	}
	delete(c.entries, key)
	if destroy != nil {
		destroy(e.value)
	}
	return true
}

// Clear destroys every value regardless of references.
func (c *Cache[K, V]) Clear(destroy func(V)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k, e := range c.entries {
		if destroy != nil {
			destroy(e.value)
		}
		delete(c.entries, k)
	}
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{Len: len(c.entries), Hits: c.hits, Misses: c.misses}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Hits counts Acquire calls that found an entry.
	Hits uint64
	// Misses counts Acquire calls that had to create.
	Misses uint64
}

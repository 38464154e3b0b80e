package cache

import (
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is an in-process cache with TTL expiry
type Memory struct {
	cache  *gocache.Cache
	hits   atomic.Int64
	misses atomic.Int64
}

// NewMemory creates a memory cache with the given default TTL and
// cleanup interval
func NewMemory(defaultTTL, cleanupInterval time.Duration) *Memory {
	return &Memory{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value; the bool reports whether it was present
func (m *Memory) Get(key string) ([]byte, bool) {
	if val, found := m.cache.Get(key); found {
		m.hits.Add(1)
		return val.([]byte), true
	}
	m.misses.Add(1)
	return nil, false
}

// Set stores a value with the given TTL (0 uses the default)
func (m *Memory) Set(key string, value []byte, ttl time.Duration) {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	m.cache.Set(key, value, ttl)
}

// Delete removes a key
func (m *Memory) Delete(key string) {
	m.cache.Delete(key)
}

// Flush removes all entries
func (m *Memory) Flush() {
	m.cache.Flush()
}

// Stats reports hit/miss counters and item count
func (m *Memory) Stats() Stats {
	return Stats{
		Hits:   m.hits.Load(),
		Misses: m.misses.Load(),
		Items:  m.cache.ItemCount(),
	}
}

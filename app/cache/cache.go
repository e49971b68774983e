package cache

import (
	"sync"
	"time"

	"newsproxy/app/feed"
)

// Entry holds the single cached payload plus the category it was
// fetched for and when it was stored.
type Entry struct {
	Payload  feed.Payload
	Category string
	StoredAt time.Time
}

// Cache is a single-slot TTL cache. At most one entry exists at any
// time, so a request for a different category is always a miss, even
// when the stored entry is still fresh.
type Cache struct {
	ttl   time.Duration
	mu    sync.Mutex
	entry *Entry
}

func New(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl}
}

// Get returns the entry only when it matches category and is younger
// than the TTL. Expiry is lazy: checked on read, never swept.
func (c *Cache) Get(category string, now time.Time) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entry == nil {
		return Entry{}, false
	}
	if c.entry.Category != category {
		return Entry{}, false
	}
	if now.Sub(c.entry.StoredAt) >= c.ttl {
		return Entry{}, false
	}

	return *c.entry, true
}

// Put unconditionally replaces the slot.
func (c *Cache) Put(category string, payload feed.Payload, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entry = &Entry{
		Payload:  payload,
		Category: category,
		StoredAt: now,
	}
}

package data

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"adwords-sim/internal/simulate"
)

// CacheEntry is a finished run kept for later retrieval.
type CacheEntry struct {
	Result    *simulate.Result
	ExpiresAt time.Time
}

// RunCache keeps finished runs in memory so their ledgers can be fetched by
// id. Nothing is written to disk; entries expire after the TTL.
type RunCache struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
	ttl   time.Duration
	now   func() time.Time
}

func NewRunCache(ttl time.Duration) *RunCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RunCache{
		store: make(map[string]*CacheEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Put stores a result under a new random id and returns the id.
func (c *RunCache) Put(res *simulate.Result) string {
	id := uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[id] = &CacheEntry{
		Result:    res,
		ExpiresAt: c.now().Add(c.ttl),
	}
	return id
}

// Get retrieves a result if present and not expired.
func (c *RunCache) Get(id string) (*simulate.Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[id]
	if !exists {
		return nil, false
	}
	if c.now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Result, true
}

func (c *RunCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Clear removes all entries from the cache
func (c *RunCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*CacheEntry)
}

// Cleanup periodically removes expired entries until ctx is done.
func (c *RunCache) Cleanup(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.evictExpired()
		}
	}
}

func (c *RunCache) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, key)
		}
	}
}

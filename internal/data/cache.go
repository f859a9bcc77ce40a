package data

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"draft-value/internal/model"
)

type cacheEntry struct {
	records   []model.Projection
	expiresAt time.Time
}

// FeedCache keeps fetched feeds in memory for a TTL. A nil cache is valid and
// never hits.
type FeedCache struct {
	mu    sync.RWMutex
	store map[string]cacheEntry
	ttl   time.Duration
	now   func() time.Time
}

func NewFeedCache(ttl time.Duration) *FeedCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &FeedCache{store: map[string]cacheEntry{}, ttl: ttl, now: time.Now}
}

func (c *FeedCache) Get(key string) ([]model.Projection, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.store[key]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.records, true
}

// Set stores records under key and drops any entries that have expired.
func (c *FeedCache) Set(key string, records []model.Projection) {
	if c == nil {
		return
	}
	c.Prune()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = cacheEntry{records: records, expiresAt: c.now().Add(c.ttl)}
}

// Prune drops expired entries and reports how many were removed.
func (c *FeedCache) Prune() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	n := 0
	for k, e := range c.store {
		if now.After(e.expiresAt) {
			delete(c.store, k)
			n++
		}
	}
	return n
}

// CacheKey hashes the request so keys stay short.
func CacheKey(url string, week int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%d", url, week)))
	return hex.EncodeToString(sum[:])
}

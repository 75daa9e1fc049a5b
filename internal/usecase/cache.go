package usecase

import (
	"sync"
	"time"

	"github.com/3-lines-studio/showcase/internal/core"
)

type encodedPage struct {
	body        []byte
	contentType string
	etag        string
}

type cacheEntry struct {
	page      encodedPage
	expiresAt time.Time
}

// renderCache keeps encoded pages by (page, format). A zero TTL never expires,
// which is safe because pages cannot change after the site is loaded.
type renderCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func newRenderCache(ttl time.Duration) *renderCache {
	return &renderCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func cacheKey(page string, format core.Format) string {
	return page + "|" + string(format)
}

func (c *renderCache) get(key string) (encodedPage, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		return encodedPage{}, false
	}

	if c.ttl > 0 && c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return encodedPage{}, false
	}

	return entry.page, true
}

func (c *renderCache) set(key string, page encodedPage) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{
		page:      page,
		expiresAt: c.now().Add(c.ttl),
	}
	c.mu.Unlock()
}

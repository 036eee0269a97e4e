package reports

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const cacheTTL = 2 * time.Minute

// responseCache holds built report payloads for a short TTL so bursts of
// identical requests do not rebuild the same report. The reporting core
// itself stays uncached; this lives strictly at the transport layer.
type responseCache struct {
	ttl   time.Duration
	mu    sync.RWMutex
	items map[string]cacheItem
	group singleflight.Group
}

type cacheItem struct {
	value   any
	expires time.Time
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{ttl: ttl, items: make(map[string]cacheItem)}
}

func (c *responseCache) get(key string) (any, bool) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(item.expires) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, false
	}
	return item.value, true
}

func (c *responseCache) set(key string, value any) {
	c.mu.Lock()
	c.items[key] = cacheItem{value: value, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// do returns the cached value for key or builds it once, with concurrent
// requests for the same key sharing a single build.
func (c *responseCache) do(ctx context.Context, key string, build func(context.Context) (any, error)) (any, error) {
	if value, ok := c.get(key); ok {
		return value, nil
	}
	resultChan := c.group.DoChan(key, func() (any, error) {
		value, err := build(ctx)
		if err != nil {
			return nil, err
		}
		c.set(key, value)
		return value, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultChan:
		return res.Val, res.Err
	}
}

// cacheKey renders the report name plus optional date bounds into a key.
func cacheKey(report string, dates ...*time.Time) string {
	key := report
	for _, d := range dates {
		key += "|"
		if d != nil {
			key += d.Format("2006-01-02")
		}
	}
	return key
}

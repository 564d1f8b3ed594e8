package balance

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cachedRules is a parsed rules file and when it was parsed.
type cachedRules struct {
	rules *Rules
	built time.Time
	ttl   time.Duration
}

// IsExpired returns true if the entry has outlived its TTL.
func (c *cachedRules) IsExpired(now time.Time) bool {
	if c.ttl == 0 {
		return true // No caching
	}
	return now.Sub(c.built) > c.ttl
}

// rulesCache keeps parsed rules files keyed by source so the server does not
// parse the same unitrules.xml for every request.
type rulesCache struct {
	mu      sync.RWMutex
	entries map[string]*cachedRules
	sf      singleflight.Group
	ttl     time.Duration
	now     func() time.Time
}

func newRulesCache(ttl time.Duration) *rulesCache {
	return &rulesCache{
		entries: make(map[string]*cachedRules),
		ttl:     ttl,
		now:     time.Now,
	}
}

// GetOrLoad returns the cached rules for key, or calls load when there are
// none or they expired. Concurrent misses for one key share a single load.
func (c *rulesCache) GetOrLoad(ctx context.Context, key string, load func(context.Context) (*Rules, error)) (*Rules, error) {
	// Fast path
	if rs, ok := c.lookup(key); ok {
		return rs, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after winning the flight
		if rs, ok := c.lookup(key); ok {
			return rs, nil
		}

		rs, err := load(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = &cachedRules{rules: rs, built: c.now(), ttl: c.ttl}
		c.mu.Unlock()

		return rs, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Rules), nil
}

func (c *rulesCache) lookup(key string) (*Rules, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || entry.IsExpired(c.now()) {
		return nil, false
	}
	return entry.rules, true
}

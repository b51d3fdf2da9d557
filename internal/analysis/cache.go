package analysis

import (
	"sync"
	"time"
)

// reportCache stores analysis reports temporarily so repeated requests for
// the same ticker do not re-scrape and re-classify.
type reportCache struct {
	mu   sync.RWMutex
	data map[string]*cacheEntry
	ttl  time.Duration
}

type cacheEntry struct {
	report    *Report
	timestamp time.Time
}

// newReportCache creates a new cache
func newReportCache(ttl time.Duration) *reportCache {
	cache := &reportCache{
		data: make(map[string]*cacheEntry),
		ttl:  ttl,
	}

	// Start cleanup goroutine
	go cache.cleanupLoop()

	return cache
}

// get retrieves a cached report if still valid
func (c *reportCache) get(key string) (*Report, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.data[key]
	if !exists {
		return nil, false
	}

	if time.Since(entry.timestamp) > c.ttl {
		return nil, false
	}

	return entry.report, true
}

// set stores a report in cache
func (c *reportCache) set(key string, report *Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = &cacheEntry{
		report:    report,
		timestamp: time.Now(),
	}
}

// cleanupLoop periodically removes expired entries
func (c *reportCache) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

// cleanup removes expired entries
func (c *reportCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.data {
		if now.Sub(entry.timestamp) > c.ttl {
			delete(c.data, key)
		}
	}
}

// clear removes all cached reports
func (c *reportCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*cacheEntry)
}

// keys returns the cache keys currently held
func (c *reportCache) keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.data))
	for key := range c.data {
		keys = append(keys, key)
	}
	return keys
}

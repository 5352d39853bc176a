package currency

import (
	"sync"
	"time"
)

// DefaultCacheTTL is how long a fetched rate table stays fresh.
const DefaultCacheTTL = time.Hour

// RateCache holds a rate table with an expiry. It is an explicit,
// injectable value rather than package-global state so tests and
// concurrent requests can each carry their own.
type RateCache struct {
	mu     sync.RWMutex
	rates  map[string]float64
	expiry time.Time
	ttl    time.Duration
}

// NewRateCache creates an empty cache. A zero ttl falls back to
// DefaultCacheTTL.
func NewRateCache(ttl time.Duration) *RateCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RateCache{ttl: ttl}
}

// Get returns the cached rate table, or ok=false when nothing fresh
// is cached yet.
func (c *RateCache) Get() (map[string]float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.rates == nil || time.Now().After(c.expiry) {
		return nil, false
	}
	return c.rates, true
}

// Set replaces the cached rate table and resets the expiry.
func (c *RateCache) Set(rates map[string]float64) {
	copied := make(map[string]float64, len(rates))
	for code, rate := range rates {
		copied[code] = rate
	}

	c.mu.Lock()
	c.rates = copied
	c.expiry = time.Now().Add(c.ttl)
	c.mu.Unlock()
}

// Invalidate drops the cached table, forcing the next Convert to
// refetch.
func (c *RateCache) Invalidate() {
	c.mu.Lock()
	c.rates = nil
	c.expiry = time.Time{}
	c.mu.Unlock()
}

package memory

import (
	"context"
	"sync"
	"time"

	"mesa-placements/internal/core/domain"
)

type cacheKey struct {
	placementID int64
	day         string
}

type cacheEntry struct {
	status    domain.Availability
	expiresAt time.Time
}

// AvailabilityCache implements port.AvailabilityCache with a TTL map and
// a generation counter per placement.
type AvailabilityCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[cacheKey]cacheEntry
	gens    map[int64]int64
	now     func() time.Time
}

func NewAvailabilityCache(ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{
		ttl:     ttl,
		entries: make(map[cacheKey]cacheEntry),
		gens:    make(map[int64]int64),
		now:     time.Now,
	}
}

func (c *AvailabilityCache) Generation(_ context.Context, placementID int64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[placementID], nil
}

func (c *AvailabilityCache) Get(_ context.Context, placementID int64, day time.Time) (domain.Availability, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := cacheKey{placementID, day.Format(domain.DateLayout)}
	e, ok := c.entries[k]
	if !ok {
		return "", false, nil
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, k)
		return "", false, nil
	}
	return e.status, true, nil
}

// Set stores a only while the placement is still at generation gen.
func (c *AvailabilityCache) Set(_ context.Context, placementID int64, day time.Time, a domain.Availability, gen int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[placementID] != gen {
		return nil
	}
	c.entries[cacheKey{placementID, day.Format(domain.DateLayout)}] = cacheEntry{
		status:    a,
		expiresAt: c.now().Add(c.ttl),
	}
	return nil
}

func (c *AvailabilityCache) Invalidate(_ context.Context, placementID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[placementID]++
	for k := range c.entries {
		if k.placementID == placementID {
			delete(c.entries, k)
		}
	}
	return nil
}

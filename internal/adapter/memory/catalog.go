package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"mesa-placements/internal/core/domain"
)

// Catalog implements port.PlacementCatalog in memory.
type Catalog struct {
	mu         sync.RWMutex
	platforms  map[int64]domain.Platform
	placements map[int64]domain.Placement
	nextID     int64
}

func NewCatalog() *Catalog {
	return &Catalog{
		platforms:  make(map[int64]domain.Platform),
		placements: make(map[int64]domain.Placement),
	}
}

// AddPlatform stores p under a fresh id and returns it.
func (c *Catalog) AddPlatform(p domain.Platform) domain.Platform {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	p.ID = c.nextID
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	c.platforms[p.ID] = p
	return p
}

// AddPlacement stores p under a fresh id and returns it. The platform must
// exist.
func (c *Catalog) AddPlacement(p domain.Placement) (domain.Placement, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.platforms[p.PlatformID]; !ok {
		return domain.Placement{}, fmt.Errorf("%w: platform %d", domain.ErrNotFound, p.PlatformID)
	}
	if !p.Type.Valid() {
		return domain.Placement{}, domain.InvalidInputf("unknown placement type %q", p.Type)
	}
	c.nextID++
	p.ID = c.nextID
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	c.placements[p.ID] = p
	return p, nil
}

func (c *Catalog) GetPlacement(_ context.Context, id int64) (*domain.Placement, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.placements[id]
	if !ok {
		return nil, fmt.Errorf("%w: placement %d", domain.ErrNotFound, id)
	}
	return &p, nil
}

func (c *Catalog) ListPlacements(_ context.Context) ([]domain.Placement, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Placement, 0, len(c.placements))
	for _, p := range c.placements {
		out = append(out, p)
	}
	sortPlacements(out)
	return out, nil
}

func (c *Catalog) ListPlacementsByPlatform(_ context.Context, platformID int64) ([]domain.Placement, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []domain.Placement
	for _, p := range c.placements {
		if p.PlatformID == platformID {
			out = append(out, p)
		}
	}
	sortPlacements(out)
	return out, nil
}

func (c *Catalog) ListPlatforms(_ context.Context) ([]domain.Platform, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Platform, 0, len(c.platforms))
	for _, p := range c.platforms {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b domain.Platform) int {
		return cmp.Compare(a.DisplayName, b.DisplayName)
	})
	return out, nil
}

func (c *Catalog) GetPlatformByName(_ context.Context, name string) (*domain.Platform, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.platforms {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: platform %q", domain.ErrNotFound, name)
}

func sortPlacements(ps []domain.Placement) {
	slices.SortFunc(ps, func(a, b domain.Placement) int {
		return cmp.Or(
			cmp.Compare(a.PlatformID, b.PlatformID),
			cmp.Compare(a.Type, b.Type),
			cmp.Compare(a.PositionName, b.PositionName),
		)
	})
}

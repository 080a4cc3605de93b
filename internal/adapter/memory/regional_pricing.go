package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"mesa-placements/internal/core/domain"
)

// PricingTable implements port.RegionalPricingTable in memory.
type PricingTable struct {
	mu     sync.RWMutex
	rows   []domain.RegionalPricing
	nextID int64
}

func NewPricingTable() *PricingTable {
	return &PricingTable{}
}

// Add stores row under a fresh id and returns it.
func (t *PricingTable) Add(row domain.RegionalPricing) domain.RegionalPricing {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	row.ID = t.nextID
	t.rows = append(t.rows, row)
	return row
}

func (t *PricingTable) FindByRegion(_ context.Context, q domain.RegionQuery) (*domain.RegionalPricing, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var matched []domain.RegionalPricing
	for _, r := range t.rows {
		if q.Matches(r) {
			matched = append(matched, r)
		}
	}
	best := domain.BestMatch(matched)
	if best == nil {
		return nil, nil
	}
	row := *best
	return &row, nil
}

func (t *PricingTable) List(_ context.Context) ([]domain.RegionalPricing, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := slices.Clone(t.rows)
	slices.SortFunc(out, func(a, b domain.RegionalPricing) int {
		return cmp.Or(
			cmp.Compare(a.Country, b.Country),
			cmp.Compare(a.State, b.State),
			cmp.Compare(a.RegionName, b.RegionName),
		)
	})
	return out, nil
}

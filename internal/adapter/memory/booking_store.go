package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"mesa-placements/internal/core/domain"
	"mesa-placements/internal/core/port"
)

// BookingStore implements port.BookingStore in memory. Writes to one
// placement are serialised by a per-placement mutex; mu only guards the
// maps and is never held while waiting for a placement.
type BookingStore struct {
	catalog *Catalog

	mu       sync.RWMutex
	bookings map[int64]domain.Booking
	nextID   int64

	locksMu sync.Mutex
	locks   map[int64]*sync.Mutex

	now func() time.Time
}

func NewBookingStore(catalog *Catalog) *BookingStore {
	return &BookingStore{
		catalog:  catalog,
		bookings: make(map[int64]domain.Booking),
		locks:    make(map[int64]*sync.Mutex),
		now:      time.Now,
	}
}

// lockPlacement acquires the write lock of a placement and returns its
// release function.
func (s *BookingStore) lockPlacement(placementID int64) func() {
	s.locksMu.Lock()
	l, ok := s.locks[placementID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[placementID] = l
	}
	s.locksMu.Unlock()

	l.Lock()
	return l.Unlock
}

func (s *BookingStore) ListByPlacement(_ context.Context, placementID int64) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(b domain.Booking) bool { return b.PlacementID == placementID }), nil
}

func (s *BookingStore) ListCovering(_ context.Context, day time.Time) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(b domain.Booking) bool { return b.Period.Contains(day) }), nil
}

func (s *BookingStore) CreateIfNoConflict(ctx context.Context, nb domain.NewBooking, policy domain.OccupancyPolicy) (*domain.Booking, error) {
	if _, err := s.catalog.GetPlacement(ctx, nb.PlacementID); err != nil {
		return nil, err
	}

	unlock := s.lockPlacement(nb.PlacementID)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreFailure, err)
	}
	existing, _ := s.ListByPlacement(ctx, nb.PlacementID)
	if err := policy.Conflict(existing, nb.Period, 0); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now().UTC()
	s.nextID++
	b := domain.Booking{
		ID:           s.nextID,
		AdvertiserID: nb.AdvertiserID,
		PlacementID:  nb.PlacementID,
		CampaignName: nb.CampaignName,
		AdImageURL:   nb.AdImageURL,
		AdLinkURL:    nb.AdLinkURL,
		Region:       nb.Region,
		PostalCode:   nb.PostalCode,
		Period:       nb.Period,
		MonthlyPrice: nb.MonthlyPrice,
		TotalPrice:   nb.TotalPrice,
		Status:       domain.BookingPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.bookings[b.ID] = b
	return &b, nil
}

func (s *BookingStore) TransitionStatus(ctx context.Context, id int64, next domain.BookingStatus, policy domain.OccupancyPolicy) (*domain.StatusChange, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock := s.lockPlacement(current.PlacementID)
	defer unlock()

	// Re-read under the placement lock; another writer may have moved it.
	current, err = s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	siblings, _ := s.ListByPlacement(ctx, current.PlacementID)
	if err = policy.CheckTransition(*current, next, siblings); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.bookings[id]
	previous := b.Status
	b.Status = next
	b.UpdatedAt = s.now().UTC()
	s.bookings[id] = b
	return &domain.StatusChange{Booking: b, Previous: previous}, nil
}

func (s *BookingStore) Get(_ context.Context, id int64) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, fmt.Errorf("%w: booking %d", domain.ErrNotFound, id)
	}
	return &b, nil
}

func (s *BookingStore) List(_ context.Context, filter port.BookingFilter) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.filter(func(b domain.Booking) bool {
		return filter.AdvertiserID == nil || b.AdvertiserID == *filter.AdvertiserID
	})
	slices.SortFunc(out, func(a, b domain.Booking) int {
		return cmp.Compare(b.ID, a.ID)
	})
	return out, nil
}

func (s *BookingStore) ListActiveByPlatform(ctx context.Context, platformID int64, day time.Time) ([]domain.ActiveAd, error) {
	placements, err := s.catalog.ListPlacementsByPlatform(ctx, platformID)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.Placement, len(placements))
	for _, p := range placements {
		byID[p.ID] = p
	}

	s.mu.RLock()
	active := s.filter(func(b domain.Booking) bool {
		_, ok := byID[b.PlacementID]
		return ok && b.Status.Renders() && b.Period.Contains(day)
	})
	s.mu.RUnlock()

	slices.SortFunc(active, func(a, b domain.Booking) int {
		return cmp.Compare(a.PlacementID, b.PlacementID)
	})
	out := make([]domain.ActiveAd, 0, len(active))
	for _, b := range active {
		out = append(out, domain.ActiveAd{Booking: b, Placement: byID[b.PlacementID]})
	}
	return out, nil
}

func (s *BookingStore) TrackImpression(_ context.Context, id int64) error {
	return s.bump(id, func(b *domain.Booking) { b.Impressions++ })
}

func (s *BookingStore) TrackClick(_ context.Context, id int64) error {
	return s.bump(id, func(b *domain.Booking) { b.Clicks++ })
}

func (s *BookingStore) bump(id int64, fn func(*domain.Booking)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return fmt.Errorf("%w: booking %d", domain.ErrNotFound, id)
	}
	fn(&b)
	s.bookings[id] = b
	return nil
}

// filter must be called with mu held.
func (s *BookingStore) filter(keep func(domain.Booking) bool) []domain.Booking {
	var out []domain.Booking
	for _, b := range s.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	slices.SortFunc(out, func(a, b domain.Booking) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-placements/internal/core/domain"
	"mesa-placements/internal/core/port"
)

func newStore(t *testing.T) (*BookingStore, domain.Placement, domain.Placement) {
	t.Helper()
	catalog := NewCatalog()
	pf := catalog.AddPlatform(domain.Platform{Name: "facebook", DisplayName: "Facebook", Active: true})
	a, err := catalog.AddPlacement(domain.Placement{
		PlatformID: pf.ID, Type: domain.PlacementLeaderboard, PositionName: "leaderboard_top",
		BasePrice: decimal.NewFromInt(500), Active: true,
	})
	require.NoError(t, err)
	b, err := catalog.AddPlacement(domain.Placement{
		PlatformID: pf.ID, Type: domain.PlacementSkyscraper, PositionName: "skyscraper_left",
		BasePrice: decimal.NewFromInt(120), Active: true,
	})
	require.NoError(t, err)
	return NewBookingStore(catalog), a, b
}

func period(t *testing.T, start, end string) domain.DateRange {
	t.Helper()
	r, err := domain.ParseDateRange(start, end)
	require.NoError(t, err)
	return r
}

func newBooking(placementID int64, r domain.DateRange) domain.NewBooking {
	return domain.NewBooking{
		AdvertiserID: 7,
		PlacementID:  placementID,
		CampaignName: "spring",
		Region:       "New York Metro",
		Period:       r,
		MonthlyPrice: decimal.NewFromInt(1000),
		TotalPrice:   decimal.NewFromInt(1000),
	}
}

func TestCreateIfNoConflict(t *testing.T) {
	ctx := context.Background()
	store, pl, _ := newStore(t)
	occupying := domain.OccupancyPolicy{PendingOccupies: true}

	first, err := store.CreateIfNoConflict(ctx, newBooking(pl.ID, period(t, "2025-01-10", "2025-01-20")), occupying)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingPending, first.Status)
	assert.Equal(t, int64(1), first.ID)

	_, err = store.CreateIfNoConflict(ctx, newBooking(pl.ID, period(t, "2025-01-20", "2025-01-25")), occupying)
	require.ErrorIs(t, err, domain.ErrConflict)
	var ce *domain.ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, first.ID, ce.BookingID)

	_, err = store.CreateIfNoConflict(ctx, newBooking(pl.ID, period(t, "2025-01-21", "2025-01-25")), occupying)
	require.NoError(t, err)

	// Pending rows do not block under the default policy.
	_, err = store.CreateIfNoConflict(ctx, newBooking(pl.ID, period(t, "2025-01-12", "2025-01-14")), domain.OccupancyPolicy{})
	require.NoError(t, err)

	all, err := store.ListByPlacement(ctx, pl.ID)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCreateIfNoConflictUnknownPlacement(t *testing.T) {
	store, _, _ := newStore(t)
	_, err := store.CreateIfNoConflict(context.Background(), newBooking(999, period(t, "2025-01-10", "2025-01-20")), domain.OccupancyPolicy{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransitionStatus(t *testing.T) {
	ctx := context.Background()
	store, pl, _ := newStore(t)
	policy := domain.OccupancyPolicy{}

	a, err := store.CreateIfNoConflict(ctx, newBooking(pl.ID, period(t, "2025-03-01", "2025-03-31")), policy)
	require.NoError(t, err)
	b, err := store.CreateIfNoConflict(ctx, newBooking(pl.ID, period(t, "2025-03-15", "2025-04-15")), policy)
	require.NoError(t, err)

	change, err := store.TransitionStatus(ctx, a.ID, domain.BookingApproved, policy)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingPending, change.Previous)
	assert.Equal(t, domain.BookingApproved, change.Booking.Status)

	_, err = store.TransitionStatus(ctx, b.ID, domain.BookingApproved, policy)
	require.ErrorIs(t, err, domain.ErrConflict)

	got, err := store.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingPending, got.Status, "failed transition must not write")

	_, err = store.TransitionStatus(ctx, a.ID, domain.BookingCompleted, policy)
	require.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = store.TransitionStatus(ctx, 404, domain.BookingApproved, policy)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListAndTracking(t *testing.T) {
	ctx := context.Background()
	store, pl, other := newStore(t)
	policy := domain.OccupancyPolicy{}

	a, err := store.CreateIfNoConflict(ctx, newBooking(pl.ID, period(t, "2025-05-01", "2025-05-31")), policy)
	require.NoError(t, err)
	nb := newBooking(other.ID, period(t, "2025-05-10", "2025-05-12"))
	nb.AdvertiserID = 8
	b, err := store.CreateIfNoConflict(ctx, nb, policy)
	require.NoError(t, err)

	all, err := store.List(ctx, port.BookingFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, b.ID, all[0].ID, "newest first")

	adv := int64(8)
	own, err := store.List(ctx, port.BookingFilter{AdvertiserID: &adv})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, b.ID, own[0].ID)

	covering, err := store.ListCovering(ctx, time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, covering, 1)
	assert.Equal(t, a.ID, covering[0].ID)

	for _, next := range []domain.BookingStatus{domain.BookingApproved, domain.BookingActive} {
		_, err = store.TransitionStatus(ctx, a.ID, next, policy)
		require.NoError(t, err)
	}
	ads, err := store.ListActiveByPlatform(ctx, pl.PlatformID, time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, pl.ID, ads[0].Placement.ID)

	require.NoError(t, store.TrackImpression(ctx, a.ID))
	require.NoError(t, store.TrackImpression(ctx, a.ID))
	require.NoError(t, store.TrackClick(ctx, a.ID))
	got, err := store.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Impressions)
	assert.Equal(t, int64(1), got.Clicks)

	require.ErrorIs(t, store.TrackClick(ctx, 404), domain.ErrNotFound)
}

// TestConcurrentCreate races overlapping inserts on one placement and
// disjoint inserts on another.
func TestConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	store, pl, other := newStore(t)
	policy := domain.OccupancyPolicy{PendingOccupies: true}

	const n = 32
	june := period(t, "2025-06-01", "2025-06-30")
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		conflicts atomic.Int32
	)
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := store.CreateIfNoConflict(ctx, newBooking(pl.ID, june), policy)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domain.ErrConflict):
				conflicts.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
		go func(day int) {
			defer wg.Done()
			d := time.Date(2025, 6, 1+day%28, 0, 0, 0, 0, time.UTC)
			r, _ := domain.NewDateRange(d, d)
			_, _ = store.CreateIfNoConflict(ctx, newBooking(other.ID, r), policy)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(n-1), conflicts.Load())

	// No two occupying bookings of either placement overlap.
	for _, id := range []int64{pl.ID, other.ID} {
		list, err := store.ListByPlacement(ctx, id)
		require.NoError(t, err)
		for i := range list {
			for j := i + 1; j < len(list); j++ {
				assert.False(t, list[i].Period.Overlaps(list[j].Period),
					"bookings %d and %d overlap", list[i].ID, list[j].ID)
			}
		}
	}
}

func TestConcurrentApprove(t *testing.T) {
	ctx := context.Background()
	store, pl, _ := newStore(t)
	policy := domain.OccupancyPolicy{}

	const n = 16
	ids := make([]int64, n)
	for i := range ids {
		b, err := store.CreateIfNoConflict(ctx, newBooking(pl.ID, period(t, "2025-07-01", "2025-07-10")), policy)
		require.NoError(t, err)
		ids[i] = b.ID
	}

	var (
		wg       sync.WaitGroup
		approved atomic.Int32
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			if _, err := store.TransitionStatus(ctx, id, domain.BookingApproved, policy); err == nil {
				approved.Add(1)
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, int32(1), approved.Load())
}

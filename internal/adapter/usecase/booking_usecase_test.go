package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-placements/internal/adapter/memory"
	"mesa-placements/internal/core/domain"
	"mesa-placements/internal/core/port"
	"mesa-placements/internal/core/port/mocks"
)

type fixture struct {
	uc        *BookingUseCase
	catalog   *memory.Catalog
	store     *memory.BookingStore
	pricing   *memory.PricingTable
	events    *memory.EventLog
	cache     *memory.AvailabilityCache
	placement domain.Placement
}

var today = time.Date(2024, 2, 15, 9, 30, 0, 0, time.UTC)

func newFixture(t *testing.T, opts ...Option) fixture {
	t.Helper()
	catalog := memory.NewCatalog()
	pf := catalog.AddPlatform(domain.Platform{Name: "facebook", DisplayName: "Facebook", Active: true})
	pl, err := catalog.AddPlacement(domain.Placement{
		PlatformID:   pf.ID,
		Type:         domain.PlacementLeaderboard,
		PositionName: "leaderboard_top",
		Width:        728,
		Height:       90,
		BasePrice:    decimal.NewFromInt(500),
		Active:       true,
	})
	require.NoError(t, err)

	pricing := memory.NewPricingTable()
	pricing.Add(domain.RegionalPricing{
		RegionName: "Los Angeles Metro", Country: "US", State: "CA",
		PriceMultiplier: decimal.RequireFromString("1.80"),
	})

	f := fixture{
		catalog:   catalog,
		pricing:   pricing,
		store:     memory.NewBookingStore(catalog),
		events:    memory.NewEventLog(nil),
		cache:     memory.NewAvailabilityCache(time.Minute),
		placement: pl,
	}
	opts = append([]Option{
		WithEvents(f.events),
		WithCache(f.cache),
		WithClock(func() time.Time { return today }),
	}, opts...)
	f.uc = NewBookingUseCase(catalog, pricing, f.store, opts...)
	return f
}

func (f fixture) book(t *testing.T, start, end string) *domain.Booking {
	t.Helper()
	b, err := f.uc.CreateBooking(context.Background(), f.request(start, end))
	require.NoError(t, err)
	return b
}

func (f fixture) request(start, end string) port.CreateBookingRequest {
	return port.CreateBookingRequest{
		AdvertiserID: 42,
		PlacementID:  f.placement.ID,
		CampaignName: "Spring sale",
		Region:       "Los Angeles Metro",
		StartDate:    start,
		EndDate:      end,
	}
}

func (f fixture) advance(t *testing.T, id int64, statuses ...domain.BookingStatus) {
	t.Helper()
	for _, st := range statuses {
		_, err := f.uc.UpdateBookingStatus(context.Background(), id, string(st))
		require.NoError(t, err)
	}
}

func TestCalculatePricing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("three months", func(t *testing.T) {
		p, err := f.uc.CalculatePricing(ctx, port.PricingRequest{
			PlacementID: f.placement.ID, Region: "Los Angeles Metro",
			StartDate: "2024-02-01", EndDate: "2024-04-30",
		})
		require.NoError(t, err)
		assert.Equal(t, 90, p.DurationDays)
		assert.Equal(t, 3, p.DurationMonths)
		assert.Equal(t, "1.8", p.PriceMultiplier.String())
		assert.Equal(t, "900.00", p.MonthlyPrice.StringFixed(2))
		assert.Equal(t, "2700.00", p.TotalPrice.StringFixed(2))
	})

	t.Run("single day", func(t *testing.T) {
		p, err := f.uc.CalculatePricing(ctx, port.PricingRequest{
			PlacementID: f.placement.ID, Region: "Los Angeles Metro",
			StartDate: "2024-02-01", EndDate: "2024-02-01",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, p.DurationMonths)
		assert.True(t, p.TotalPrice.Equal(p.MonthlyPrice))
		assert.Equal(t, "900.00", p.TotalPrice.StringFixed(2))
	})

	t.Run("unknown region defaults", func(t *testing.T) {
		p, err := f.uc.CalculatePricing(ctx, port.PricingRequest{
			PlacementID: f.placement.ID, Region: "Atlantis",
			StartDate: "2024-02-01", EndDate: "2024-02-29",
		})
		require.NoError(t, err)
		assert.True(t, p.PriceMultiplier.Equal(decimal.NewFromInt(1)))
		assert.Equal(t, "500.00", p.TotalPrice.StringFixed(2))
	})

	t.Run("no region", func(t *testing.T) {
		p, err := f.uc.CalculatePricing(ctx, port.PricingRequest{
			PlacementID: f.placement.ID, StartDate: "2024-02-01", EndDate: "2024-02-01",
		})
		require.NoError(t, err)
		assert.True(t, p.PriceMultiplier.Equal(domain.DefaultMultiplier))
	})

	t.Run("deterministic", func(t *testing.T) {
		req := port.PricingRequest{
			PlacementID: f.placement.ID, Region: "angeles",
			StartDate: "2024-01-01", EndDate: "2024-12-31",
		}
		first, err := f.uc.CalculatePricing(ctx, req)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := f.uc.CalculatePricing(ctx, req)
			require.NoError(t, err)
			assert.True(t, first.MonthlyPrice.Equal(again.MonthlyPrice))
			assert.True(t, first.TotalPrice.Equal(again.TotalPrice))
		}
	})

	t.Run("unknown placement", func(t *testing.T) {
		_, err := f.uc.CalculatePricing(ctx, port.PricingRequest{
			PlacementID: 9999, StartDate: "2024-02-01", EndDate: "2024-02-01",
		})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	for name, req := range map[string]port.PricingRequest{
		"missing placement": {StartDate: "2024-02-01", EndDate: "2024-02-01"},
		"missing dates":     {PlacementID: f.placement.ID},
		"reversed dates":    {PlacementID: f.placement.ID, StartDate: "2024-03-01", EndDate: "2024-02-01"},
		"garbage date":      {PlacementID: f.placement.ID, StartDate: "soon", EndDate: "2024-02-01"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.uc.CalculatePricing(ctx, req)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCalculatePricingInactivePlacement(t *testing.T) {
	f := newFixture(t)
	pl, err := f.catalog.AddPlacement(domain.Placement{
		PlatformID: f.placement.PlatformID, Type: domain.PlacementSkyscraper,
		PositionName: "skyscraper_left", BasePrice: decimal.NewFromInt(120),
	})
	require.NoError(t, err)

	_, err = f.uc.CalculatePricing(context.Background(), port.PricingRequest{
		PlacementID: pl.ID, StartDate: "2024-02-01", EndDate: "2024-02-01",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	b := f.book(t, "2024-02-01", "2024-04-30")
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, "900.00", b.MonthlyPrice.StringFixed(2))
	assert.Equal(t, "2700.00", b.TotalPrice.StringFixed(2))
	assert.Equal(t, int64(42), b.AdvertiserID)

	events := f.events.Events()
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventBookingCreated, events[0].Type)
	assert.Equal(t, b.ID, events[0].BookingID)
	assert.Equal(t, "2700.00", events[0].TotalPrice)

	t.Run("quoted price must match", func(t *testing.T) {
		req := f.request("2024-06-01", "2024-06-30")
		ok := decimal.RequireFromString("900")
		req.QuotedMonthlyPrice = &ok
		req.QuotedTotalPrice = &ok
		_, err := f.uc.CreateBooking(ctx, req)
		require.NoError(t, err)

		stale := decimal.RequireFromString("850.00")
		req = f.request("2024-08-01", "2024-08-31")
		req.QuotedTotalPrice = &stale
		_, err = f.uc.CreateBooking(ctx, req)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	for name, mutate := range map[string]func(*port.CreateBookingRequest){
		"no advertiser": func(r *port.CreateBookingRequest) { r.AdvertiserID = 0 },
		"no placement":  func(r *port.CreateBookingRequest) { r.PlacementID = 0 },
		"no campaign":   func(r *port.CreateBookingRequest) { r.CampaignName = "  " },
		"no region":     func(r *port.CreateBookingRequest) { r.Region = "" },
		"no start":      func(r *port.CreateBookingRequest) { r.StartDate = "" },
		"no end":        func(r *port.CreateBookingRequest) { r.EndDate = "" },
		"reversed":      func(r *port.CreateBookingRequest) { r.StartDate, r.EndDate = "2024-12-31", "2024-12-01" },
	} {
		t.Run(name, func(t *testing.T) {
			req := f.request("2024-12-01", "2024-12-31")
			mutate(&req)
			_, err := f.uc.CreateBooking(ctx, req)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreateBookingConflicts(t *testing.T) {
	ctx := context.Background()

	t.Run("shared boundary date", func(t *testing.T) {
		f := newFixture(t)
		a := f.book(t, "2024-01-01", "2024-03-31")
		f.advance(t, a.ID, domain.BookingApproved)

		_, err := f.uc.CreateBooking(ctx, f.request("2024-03-31", "2024-04-30"))
		require.ErrorIs(t, err, domain.ErrConflict)
		var ce *domain.ConflictError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, a.ID, ce.BookingID)
	})

	t.Run("cancelled does not occupy", func(t *testing.T) {
		f := newFixture(t)
		a := f.book(t, "2024-01-01", "2024-01-31")
		f.advance(t, a.ID, domain.BookingCancelled)

		b, err := f.uc.CreateBooking(ctx, f.request("2024-01-15", "2024-02-15"))
		require.NoError(t, err)
		f.advance(t, b.ID, domain.BookingApproved)
	})

	t.Run("paused releases its dates", func(t *testing.T) {
		f := newFixture(t)
		a := f.book(t, "2024-01-01", "2024-01-31")
		f.advance(t, a.ID, domain.BookingApproved, domain.BookingActive, domain.BookingPaused)

		day := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
		av, err := f.uc.PlacementAvailability(ctx, f.placement.ID, day)
		require.NoError(t, err)
		assert.Equal(t, domain.AvailabilityAvailable, av.Status)

		b, err := f.uc.CreateBooking(ctx, f.request("2024-01-15", "2024-02-15"))
		require.NoError(t, err)
		f.advance(t, b.ID, domain.BookingApproved)

		_, err = f.uc.UpdateBookingStatus(ctx, a.ID, string(domain.BookingActive))
		require.ErrorIs(t, err, domain.ErrConflict, "resuming needs its dates back")
	})

	t.Run("pending occupies when configured", func(t *testing.T) {
		f := newFixture(t, WithPolicy(domain.OccupancyPolicy{PendingOccupies: true}))
		f.book(t, "2024-01-01", "2024-01-31")

		_, err := f.uc.CreateBooking(ctx, f.request("2024-01-20", "2024-02-10"))
		require.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestConcurrentCreateBooking(t *testing.T) {
	f := newFixture(t, WithPolicy(domain.OccupancyPolicy{PendingOccupies: true}))

	const n = 50
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Identical and shifted, always overlapping, ranges.
			start := time.Date(2024, 5, 1+i%5, 0, 0, 0, 0, time.UTC).Format(domain.DateLayout)
			_, err := f.uc.CreateBooking(context.Background(), f.request(start, "2024-05-31"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, n-1, conflicts)
}

func TestConcurrentApprovals(t *testing.T) {
	f := newFixture(t)

	const n = 20
	ids := make([]int64, n)
	for i := range ids {
		ids[i] = f.book(t, "2024-05-01", "2024-05-31").ID
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		approved int
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := f.uc.UpdateBookingStatus(context.Background(), id, "approved")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				approved++
			} else if !errors.Is(err, domain.ErrConflict) {
				t.Errorf("unexpected error: %v", err)
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 1, approved)
}

func TestUpdateBookingStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	b := f.book(t, "2024-02-10", "2024-02-20")

	_, err := f.uc.UpdateBookingStatus(ctx, b.ID, "finished")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.UpdateBookingStatus(ctx, b.ID, "active")
	require.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = f.uc.UpdateBookingStatus(ctx, 9999, "approved")
	require.ErrorIs(t, err, domain.ErrNotFound)

	change, err := f.uc.UpdateBookingStatus(ctx, b.ID, " Approved ")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingPending, change.Previous)
	assert.Equal(t, domain.BookingApproved, change.Booking.Status)

	events := f.events.Events()
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventBookingStatusChanged, events[1].Type)
	assert.Equal(t, domain.BookingPending, events[1].PreviousStatus)
	assert.Equal(t, domain.BookingApproved, events[1].Status)

	f.advance(t, b.ID, domain.BookingActive, domain.BookingCompleted)
	_, err = f.uc.UpdateBookingStatus(ctx, b.ID, "active")
	require.ErrorIs(t, err, domain.ErrInvalidState, "completed is terminal")
}

// TestAvailabilityFollowsStatus checks that approving books the interval and
// completing frees it, with the cache in front of the store.
func TestAvailabilityFollowsStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	b := f.book(t, "2024-02-10", "2024-02-20")
	inside := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	outside := time.Date(2024, 2, 21, 0, 0, 0, 0, time.UTC)

	status := func(day time.Time) domain.Availability {
		t.Helper()
		av, err := f.uc.PlacementAvailability(ctx, f.placement.ID, day)
		require.NoError(t, err)
		return av.Status
	}

	assert.Equal(t, domain.AvailabilityAvailable, status(inside), "pending does not occupy")

	f.advance(t, b.ID, domain.BookingApproved)
	assert.Equal(t, domain.AvailabilityBooked, status(inside))
	assert.Equal(t, domain.AvailabilityAvailable, status(outside))

	av, err := f.uc.PlacementAvailability(ctx, f.placement.ID, inside)
	require.NoError(t, err)
	assert.Equal(t, domain.AvailabilityBooked, av.Status, "served from cache")

	f.advance(t, b.ID, domain.BookingActive, domain.BookingCompleted)
	assert.Equal(t, domain.AvailabilityAvailable, status(inside))
}

func TestPlacementAvailabilityBlocking(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, WithCache(nil))
	b := f.book(t, "2024-02-10", "2024-02-20")
	f.advance(t, b.ID, domain.BookingApproved)

	av, err := f.uc.PlacementAvailability(ctx, f.placement.ID, time.Date(2024, 2, 10, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, domain.AvailabilityBooked, av.Status)
	require.NotNil(t, av.Blocking)
	assert.Equal(t, b.ID, av.Blocking.ID)

	_, err = f.uc.PlacementAvailability(ctx, 9999, today)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListPlatforms(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.catalog.AddPlacement(domain.Placement{
		PlatformID: f.placement.PlatformID, Type: domain.PlacementSkyscraper,
		PositionName: "skyscraper_left", BasePrice: decimal.NewFromInt(120), Active: true,
	})
	require.NoError(t, err)
	f.catalog.AddPlatform(domain.Platform{Name: "reddit", DisplayName: "Reddit", Active: true})

	b := f.book(t, "2024-02-01", "2024-02-29")
	f.advance(t, b.ID, domain.BookingApproved)

	list, err := f.uc.ListPlatforms(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "facebook", list[0].Name)
	assert.Equal(t, 2, list[0].TotalPlacements)
	assert.Equal(t, 1, list[0].BookedPlacements)
	assert.Equal(t, 1, list[0].AvailablePlacements)
	assert.Equal(t, 0, list[1].TotalPlacements)

	placements, err := f.uc.ListPlatformPlacements(ctx, "Facebook", today)
	require.NoError(t, err)
	require.Len(t, placements, 2)
	assert.Equal(t, domain.AvailabilityBooked, placements[0].Status)
	require.NotNil(t, placements[0].Blocking)
	assert.Equal(t, "Spring sale", placements[0].Blocking.CampaignName)
	assert.Equal(t, domain.AvailabilityAvailable, placements[1].Status)

	_, err = f.uc.ListPlatformPlacements(ctx, "myspace", today)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.ListPlatformPlacements(ctx, " ", today)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBookingVisibility(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	own := f.book(t, "2024-02-01", "2024-02-05")
	req := f.request("2024-03-01", "2024-03-05")
	req.AdvertiserID = 77
	other, err := f.uc.CreateBooking(ctx, req)
	require.NoError(t, err)

	advertiser := port.Actor{UserID: 42, Role: "advertiser"}
	admin := port.Actor{UserID: 1, Role: port.RoleAdmin}

	got, err := f.uc.GetBooking(ctx, advertiser, own.ID)
	require.NoError(t, err)
	assert.Equal(t, own.ID, got.ID)

	_, err = f.uc.GetBooking(ctx, advertiser, other.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.GetBooking(ctx, admin, other.ID)
	require.NoError(t, err)

	list, err := f.uc.ListBookings(ctx, advertiser)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, own.ID, list[0].ID)

	list, err = f.uc.ListBookings(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestActiveAdsAndTracking(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	b := f.book(t, "2024-02-01", "2024-02-29")

	err := f.uc.TrackImpression(ctx, b.ID)
	require.ErrorIs(t, err, domain.ErrInvalidState, "pending bookings are not served")

	f.advance(t, b.ID, domain.BookingApproved, domain.BookingActive)
	ads, err := f.uc.ActiveAds(ctx, "facebook")
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, b.ID, ads[0].Booking.ID)

	require.NoError(t, f.uc.TrackImpression(ctx, b.ID))
	require.NoError(t, f.uc.TrackClick(ctx, b.ID))

	f.advance(t, b.ID, domain.BookingPaused)
	ads, err = f.uc.ActiveAds(ctx, "facebook")
	require.NoError(t, err)
	assert.Empty(t, ads, "paused ads do not render")
	require.ErrorIs(t, f.uc.TrackClick(ctx, b.ID), domain.ErrInvalidState)

	got, err := f.uc.GetBooking(ctx, port.Actor{Role: port.RoleAdmin}, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Impressions)
	assert.Equal(t, int64(1), got.Clicks)

	require.ErrorIs(t, f.uc.TrackClick(ctx, 0), domain.ErrInvalidInput)
	require.ErrorIs(t, f.uc.TrackImpression(ctx, 9999), domain.ErrNotFound)
}

func TestRegionalPricing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	rows, err := f.uc.ListRegionalPricing(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	row, err := f.uc.LookupRegionalPricing(ctx, domain.RegionQuery{Region: "los angeles"})
	require.NoError(t, err)
	assert.Equal(t, "Los Angeles Metro", row.RegionName)

	row, err = f.uc.LookupRegionalPricing(ctx, domain.RegionQuery{Region: "Atlantis"})
	require.NoError(t, err)
	assert.Zero(t, row.ID)
	assert.True(t, row.PriceMultiplier.Equal(domain.DefaultMultiplier))

	_, err = f.uc.LookupRegionalPricing(ctx, domain.RegionQuery{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestStoreFailures drives the engine with mocked ports to check that
// driver errors surface as ErrStoreFailure and domain errors pass through.
func TestStoreFailures(t *testing.T) {
	ctx := context.Background()
	placement := &domain.Placement{ID: 3, BasePrice: decimal.NewFromInt(100), Active: true}

	t.Run("regional lookup failure", func(t *testing.T) {
		catalog := mocks.NewMockPlacementCatalog(t)
		pricing := mocks.NewMockRegionalPricingTable(t)
		store := mocks.NewMockBookingStore(t)

		catalog.EXPECT().GetPlacement(mock.Anything, int64(3)).Return(placement, nil)
		pricing.EXPECT().FindByRegion(mock.Anything, domain.RegionQuery{Region: "Paris"}).
			Return(nil, errors.New("connection reset"))

		uc := NewBookingUseCase(catalog, pricing, store)
		_, err := uc.CalculatePricing(ctx, port.PricingRequest{
			PlacementID: 3, Region: "Paris", StartDate: "2024-01-01", EndDate: "2024-01-01",
		})
		require.ErrorIs(t, err, domain.ErrStoreFailure)
		assert.Contains(t, err.Error(), "connection reset")
	})

	t.Run("insert failure", func(t *testing.T) {
		catalog := mocks.NewMockPlacementCatalog(t)
		pricing := mocks.NewMockRegionalPricingTable(t)
		store := mocks.NewMockBookingStore(t)
		events := mocks.NewMockEventPublisher(t)

		catalog.EXPECT().GetPlacement(mock.Anything, int64(3)).Return(placement, nil)
		pricing.EXPECT().FindByRegion(mock.Anything, mock.Anything).Return(nil, nil)
		store.EXPECT().
			CreateIfNoConflict(mock.Anything, mock.AnythingOfType("domain.NewBooking"), domain.OccupancyPolicy{}).
			Return(nil, errors.New("deadlock detected"))

		uc := NewBookingUseCase(catalog, pricing, store, WithEvents(events))
		_, err := uc.CreateBooking(ctx, port.CreateBookingRequest{
			AdvertiserID: 1, PlacementID: 3, CampaignName: "c", Region: "Paris",
			StartDate: "2024-01-01", EndDate: "2024-01-31",
		})
		require.ErrorIs(t, err, domain.ErrStoreFailure)
		events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("side effects are best effort", func(t *testing.T) {
		catalog := mocks.NewMockPlacementCatalog(t)
		pricing := mocks.NewMockRegionalPricingTable(t)
		store := mocks.NewMockBookingStore(t)
		events := mocks.NewMockEventPublisher(t)
		cache := mocks.NewMockAvailabilityCache(t)

		booking := domain.Booking{ID: 11, PlacementID: 3, Status: domain.BookingApproved}
		store.EXPECT().TransitionStatus(mock.Anything, int64(11), domain.BookingApproved, domain.OccupancyPolicy{}).
			Return(&domain.StatusChange{Booking: booking, Previous: domain.BookingPending}, nil)
		cache.EXPECT().Invalidate(mock.Anything, int64(3)).Return(errors.New("redis down"))
		events.EXPECT().
			Publish(mock.Anything, mock.MatchedBy(func(ev domain.BookingEvent) bool {
				return ev.Type == domain.EventBookingStatusChanged && ev.BookingID == 11
			})).
			Return(errors.New("broker unavailable"))

		uc := NewBookingUseCase(catalog, pricing, store, WithEvents(events), WithCache(cache))
		change, err := uc.UpdateBookingStatus(ctx, 11, "approved")
		require.NoError(t, err)
		assert.Equal(t, domain.BookingApproved, change.Booking.Status)
	})

	t.Run("cache read failure falls back to store", func(t *testing.T) {
		catalog := mocks.NewMockPlacementCatalog(t)
		pricing := mocks.NewMockRegionalPricingTable(t)
		store := mocks.NewMockBookingStore(t)
		cache := mocks.NewMockAvailabilityCache(t)
		day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

		catalog.EXPECT().GetPlacement(mock.Anything, int64(3)).Return(placement, nil)
		cache.EXPECT().Get(mock.Anything, int64(3), day).Return("", false, errors.New("timeout"))
		cache.EXPECT().Generation(mock.Anything, int64(3)).Return(int64(4), nil)
		store.EXPECT().ListByPlacement(mock.Anything, int64(3)).Return(nil, nil)
		cache.EXPECT().Set(mock.Anything, int64(3), day, domain.AvailabilityAvailable, int64(4)).Return(nil)

		uc := NewBookingUseCase(catalog, pricing, store, WithCache(cache))
		av, err := uc.PlacementAvailability(ctx, 3, day)
		require.NoError(t, err)
		assert.Equal(t, domain.AvailabilityAvailable, av.Status)
	})

	t.Run("no generation means no cache write", func(t *testing.T) {
		catalog := mocks.NewMockPlacementCatalog(t)
		pricing := mocks.NewMockRegionalPricingTable(t)
		store := mocks.NewMockBookingStore(t)
		cache := mocks.NewMockAvailabilityCache(t)
		day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

		catalog.EXPECT().GetPlacement(mock.Anything, int64(3)).Return(placement, nil)
		cache.EXPECT().Get(mock.Anything, int64(3), day).Return("", false, nil)
		cache.EXPECT().Generation(mock.Anything, int64(3)).Return(int64(0), errors.New("timeout"))
		store.EXPECT().ListByPlacement(mock.Anything, int64(3)).Return(nil, nil)

		uc := NewBookingUseCase(catalog, pricing, store, WithCache(cache))
		av, err := uc.PlacementAvailability(ctx, 3, day)
		require.NoError(t, err)
		assert.Equal(t, domain.AvailabilityAvailable, av.Status)
		cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

// interleavingStore runs during once, right after the first
// ListByPlacement has read its snapshot.
type interleavingStore struct {
	port.BookingStore
	once   sync.Once
	during func()
}

func (s *interleavingStore) ListByPlacement(ctx context.Context, placementID int64) ([]domain.Booking, error) {
	out, err := s.BookingStore.ListByPlacement(ctx, placementID)
	s.once.Do(s.during)
	return out, err
}

func TestAvailabilityCacheIgnoresResultsOlderThanWrite(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	b := f.book(t, "2024-03-01", "2024-03-31")
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	store := &interleavingStore{BookingStore: f.store}
	uc := NewBookingUseCase(f.catalog, f.pricing, store,
		WithCache(f.cache), WithClock(func() time.Time { return today }))
	store.during = func() {
		_, err := uc.UpdateBookingStatus(ctx, b.ID, string(domain.BookingApproved))
		require.NoError(t, err)
	}

	first, err := uc.PlacementAvailability(ctx, f.placement.ID, day)
	require.NoError(t, err)
	assert.Equal(t, domain.AvailabilityAvailable, first.Status, "computed from the snapshot before approval")

	_, cached, err := f.cache.Get(ctx, f.placement.ID, day)
	require.NoError(t, err)
	assert.False(t, cached, "the pre-approval result must not be cached")

	second, err := uc.PlacementAvailability(ctx, f.placement.ID, day)
	require.NoError(t, err)
	assert.Equal(t, domain.AvailabilityBooked, second.Status)
}

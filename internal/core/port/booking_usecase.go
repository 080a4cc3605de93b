package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"mesa-placements/internal/core/domain"
)

// BookingUseCase is the inbound port of the pricing and booking engine.
// Errors belong to the domain taxonomy: ErrInvalidInput, ErrNotFound,
// ErrConflict, ErrInvalidState, ErrForbidden and ErrStoreFailure.
type BookingUseCase interface {
	// CalculatePricing prices a placement for a region and date range
	// without writing anything.
	CalculatePricing(ctx context.Context, req PricingRequest) (*domain.Pricing, error)

	// CreateBooking prices and books a placement as pending. It fails with
	// ErrConflict when an occupying booking overlaps the range.
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error)

	// UpdateBookingStatus moves a booking through its lifecycle.
	UpdateBookingStatus(ctx context.Context, id int64, status string) (*domain.StatusChange, error)

	// GetBooking returns a booking visible to actor.
	GetBooking(ctx context.Context, actor Actor, id int64) (*domain.Booking, error)

	// ListBookings lists all bookings for admins and own bookings otherwise.
	ListBookings(ctx context.Context, actor Actor) ([]domain.Booking, error)

	// ListPlatforms returns platforms with placement counts for today.
	ListPlatforms(ctx context.Context) ([]domain.PlatformSummary, error)

	// ListPlatformPlacements returns a platform's placements with their
	// availability on day.
	ListPlatformPlacements(ctx context.Context, platform string, day time.Time) ([]domain.PlacementAvailability, error)

	// PlacementAvailability derives the availability of one placement on day.
	PlacementAvailability(ctx context.Context, placementID int64, day time.Time) (*domain.PlacementAvailability, error)

	// ListRegionalPricing returns the whole regional pricing table.
	ListRegionalPricing(ctx context.Context) ([]domain.RegionalPricing, error)

	// LookupRegionalPricing returns the row pricing q, or a synthetic row
	// carrying the default multiplier when nothing matches.
	LookupRegionalPricing(ctx context.Context, q domain.RegionQuery) (*domain.RegionalPricing, error)

	// ActiveAds returns the ads currently served on a platform.
	ActiveAds(ctx context.Context, platform string) ([]domain.ActiveAd, error)

	// TrackImpression and TrackClick count views and clicks of an active
	// booking.
	TrackImpression(ctx context.Context, bookingID int64) error
	TrackClick(ctx context.Context, bookingID int64) error
}

// Actor is the authenticated caller.
type Actor struct {
	UserID int64
	Role   string
}

// RoleAdmin is the role allowed to moderate bookings.
const RoleAdmin = "admin"

// IsAdmin reports whether the actor may see and moderate all bookings.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// PricingRequest is the input of a pricing calculation. Dates are
// YYYY-MM-DD strings; Country and State optionally narrow the regional
// lookup.
type PricingRequest struct {
	PlacementID int64
	Region      string
	Country     string
	State       string
	StartDate   string
	EndDate     string
}

// CreateBookingRequest is the input of a booking. The engine prices the
// booking itself; quoted prices, when present, must match that price.
type CreateBookingRequest struct {
	AdvertiserID       int64
	PlacementID        int64
	CampaignName       string
	AdImageURL         string
	AdLinkURL          string
	Region             string
	PostalCode         string
	StartDate          string
	EndDate            string
	QuotedMonthlyPrice *decimal.Decimal
	QuotedTotalPrice   *decimal.Decimal
}

package port

import (
	"context"
	"time"

	"mesa-placements/internal/core/domain"
)

// BookingStore persists bookings. Implementations must run the conflict
// check and the write of CreateIfNoConflict and TransitionStatus as one
// atomic unit per placement, so that concurrent writers to the same
// placement are serialised while other placements proceed independently.
type BookingStore interface {
	// ListByPlacement returns every booking of a placement.
	ListByPlacement(ctx context.Context, placementID int64) ([]domain.Booking, error)
	// ListCovering returns bookings of any status whose interval contains day.
	ListCovering(ctx context.Context, day time.Time) ([]domain.Booking, error)
	// CreateIfNoConflict inserts nb as pending unless an occupying booking
	// under policy overlaps it, in which case a *domain.ConflictError is
	// returned and nothing is written.
	CreateIfNoConflict(ctx context.Context, nb domain.NewBooking, policy domain.OccupancyPolicy) (*domain.Booking, error)
	// TransitionStatus moves a booking to next after validating the move
	// with policy.CheckTransition against the placement's other bookings.
	TransitionStatus(ctx context.Context, id int64, next domain.BookingStatus, policy domain.OccupancyPolicy) (*domain.StatusChange, error)
	// Get returns a booking by id.
	Get(ctx context.Context, id int64) (*domain.Booking, error)
	// List returns bookings newest first, optionally restricted to one
	// advertiser.
	List(ctx context.Context, filter BookingFilter) ([]domain.Booking, error)
	// ListActiveByPlatform returns active bookings of a platform whose
	// interval contains day, with their placements.
	ListActiveByPlatform(ctx context.Context, platformID int64, day time.Time) ([]domain.ActiveAd, error)
	// TrackImpression increments the impression counter of a booking.
	TrackImpression(ctx context.Context, id int64) error
	// TrackClick increments the click counter of a booking.
	TrackClick(ctx context.Context, id int64) error
}

// BookingFilter narrows List. A nil AdvertiserID lists all bookings.
type BookingFilter struct {
	AdvertiserID *int64
}

// AvailabilityCache caches derived availability. It is never
// authoritative: entries are dropped on every booking write of the
// placement and expire on their own.
//
// Each placement carries a generation that Invalidate advances. Readers
// take the generation before loading bookings and pass it to Set, which
// stores nothing once the generation has moved on, so a value computed
// before a write cannot outlive that write's invalidation.
type AvailabilityCache interface {
	Get(ctx context.Context, placementID int64, day time.Time) (domain.Availability, bool, error)
	Generation(ctx context.Context, placementID int64) (int64, error)
	Set(ctx context.Context, placementID int64, day time.Time, a domain.Availability, gen int64) error
	Invalidate(ctx context.Context, placementID int64) error
}

// EventPublisher delivers booking events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent) error
}

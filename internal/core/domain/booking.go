package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingActive    BookingStatus = "active"
	BookingPaused    BookingStatus = "paused"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
	BookingRejected  BookingStatus = "rejected"
)

// bookingTransitions whitelists the next states reachable from each state.
// States without an entry are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:  {BookingApproved, BookingRejected, BookingCancelled},
	BookingApproved: {BookingActive, BookingCancelled},
	BookingActive:   {BookingPaused, BookingCompleted, BookingCancelled},
	BookingPaused:   {BookingActive, BookingCancelled},
}

// ParseBookingStatus validates a status string.
func ParseBookingStatus(s string) (BookingStatus, error) {
	st := BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case BookingPending, BookingApproved, BookingActive, BookingPaused,
		BookingCompleted, BookingCancelled, BookingRejected:
		return st, nil
	}
	return "", InvalidInputf("unknown booking status %q", s)
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return slices.Contains(bookingTransitions[s], next)
}

// Terminal reports whether no transition leaves s.
func (s BookingStatus) Terminal() bool {
	return len(bookingTransitions[s]) == 0
}

// Renders reports whether a booking in s is served to viewers and may
// record impressions and clicks.
func (s BookingStatus) Renders() bool {
	return s == BookingActive
}

// Booking reserves a placement for an inclusive date range. Prices are the
// snapshot computed when the booking was created.
type Booking struct {
	ID           int64
	AdvertiserID int64
	PlacementID  int64
	CampaignName string
	AdImageURL   string
	AdLinkURL    string
	Region       string
	PostalCode   string
	Period       DateRange
	MonthlyPrice decimal.Decimal
	TotalPrice   decimal.Decimal
	Status       BookingStatus
	Impressions  int64
	Clicks       int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OccupancyPolicy decides which statuses block other bookings of the same
// placement. Approved and active bookings always occupy; pending bookings
// occupy only when PendingOccupies is set. Paused bookings release their
// dates and must win them back to resume.
type OccupancyPolicy struct {
	PendingOccupies bool
}

// Occupies reports whether a booking in status s blocks its interval.
func (p OccupancyPolicy) Occupies(s BookingStatus) bool {
	switch s {
	case BookingApproved, BookingActive:
		return true
	case BookingPending:
		return p.PendingOccupies
	default:
		return false
	}
}

// OccupyingStatuses lists the statuses that occupy under p.
func (p OccupancyPolicy) OccupyingStatuses() []BookingStatus {
	out := []BookingStatus{BookingApproved, BookingActive}
	if p.PendingOccupies {
		out = append(out, BookingPending)
	}
	return out
}

// FindConflict returns the first occupying booking in existing whose
// interval overlaps period, skipping the booking with id exclude. It
// returns nil when period is free.
func (p OccupancyPolicy) FindConflict(existing []Booking, period DateRange, exclude int64) *Booking {
	for i := range existing {
		b := &existing[i]
		if b.ID == exclude || !p.Occupies(b.Status) {
			continue
		}
		if b.Period.Overlaps(period) {
			return b
		}
	}
	return nil
}

// Conflict is FindConflict reported as an error.
func (p OccupancyPolicy) Conflict(existing []Booking, period DateRange, exclude int64) error {
	if b := p.FindConflict(existing, period, exclude); b != nil {
		return &ConflictError{BookingID: b.ID, Period: b.Period}
	}
	return nil
}

// Availability derives the state of a placement on day from its bookings.
func (p OccupancyPolicy) Availability(bookings []Booking, day time.Time) (Availability, *Booking) {
	for i := range bookings {
		b := &bookings[i]
		if p.Occupies(b.Status) && b.Period.Contains(day) {
			return AvailabilityBooked, b
		}
	}
	return AvailabilityAvailable, nil
}

// NewBooking is the input for inserting a booking. Status and counters are
// set by the store.
type NewBooking struct {
	AdvertiserID int64
	PlacementID  int64
	CampaignName string
	AdImageURL   string
	AdLinkURL    string
	Region       string
	PostalCode   string
	Period       DateRange
	MonthlyPrice decimal.Decimal
	TotalPrice   decimal.Decimal
}

// StatusChange records a completed transition.
type StatusChange struct {
	Booking  Booking
	Previous BookingStatus
}

// CheckTransition validates moving b to next. siblings are the other
// bookings of the same placement; they are consulted only when next
// occupies and the current status does not.
func (p OccupancyPolicy) CheckTransition(b Booking, next BookingStatus, siblings []Booking) error {
	if !b.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidState, b.Status, next)
	}
	if p.Occupies(next) && !p.Occupies(b.Status) {
		return p.Conflict(siblings, b.Period, b.ID)
	}
	return nil
}

// ActiveAd is a booking currently served on its placement.
type ActiveAd struct {
	Booking   Booking
	Placement Placement
}

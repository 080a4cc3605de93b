package domain

import "time"

// Booking event types published after a write commits.
const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
)

// BookingEvent notifies downstream consumers about a booking write.
type BookingEvent struct {
	Type           string        `json:"type"`
	BookingID      int64         `json:"booking_id"`
	PlacementID    int64         `json:"placement_id"`
	AdvertiserID   int64         `json:"advertiser_id"`
	Status         BookingStatus `json:"status"`
	PreviousStatus BookingStatus `json:"previous_status,omitempty"`
	StartDate      string        `json:"start_date"`
	EndDate        string        `json:"end_date"`
	TotalPrice     string        `json:"total_price"`
	OccurredAt     time.Time     `json:"occurred_at"`
}

// NewBookingEvent builds an event of type typ for b.
func NewBookingEvent(typ string, b Booking, previous BookingStatus) BookingEvent {
	return BookingEvent{
		Type:           typ,
		BookingID:      b.ID,
		PlacementID:    b.PlacementID,
		AdvertiserID:   b.AdvertiserID,
		Status:         b.Status,
		PreviousStatus: previous,
		StartDate:      b.Period.Start.Format(DateLayout),
		EndDate:        b.Period.End.Format(DateLayout),
		TotalPrice:     b.TotalPrice.StringFixed(2),
		OccurredAt:     time.Now().UTC(),
	}
}

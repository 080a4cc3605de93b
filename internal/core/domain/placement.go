package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlacementType is the IAB-style format of an ad slot.
type PlacementType string

const (
	PlacementLeaderboard     PlacementType = "leaderboard"
	PlacementSkyscraper      PlacementType = "skyscraper"
	PlacementMediumRectangle PlacementType = "medium_rectangle"
	PlacementLargeRectangle  PlacementType = "large_rectangle"
)

// Dimensions returns the pixel size of the format, or zeros for an unknown
// type.
func (t PlacementType) Dimensions() (width, height int) {
	switch t {
	case PlacementLeaderboard:
		return 728, 90
	case PlacementSkyscraper:
		return 160, 600
	case PlacementMediumRectangle:
		return 300, 250
	case PlacementLargeRectangle:
		return 336, 280
	default:
		return 0, 0
	}
}

// Valid reports whether t is one of the known formats.
func (t PlacementType) Valid() bool {
	w, _ := t.Dimensions()
	return w > 0
}

// Placement is a purchasable ad slot on a platform. BasePrice is the
// monthly rate before the regional multiplier.
type Placement struct {
	ID           int64
	PlatformID   int64
	Type         PlacementType
	PositionName string
	Width        int
	Height       int
	BasePrice    decimal.Decimal
	Active       bool
	CreatedAt    time.Time
}

// Availability is the derived bookable state of a placement on a day.
type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityBooked    Availability = "booked"
)

// PlacementAvailability is a placement together with its derived state on
// Date. Blocking is the occupying booking covering Date, if any.
type PlacementAvailability struct {
	Placement Placement
	Date      time.Time
	Status    Availability
	Blocking  *Booking
}

package domain

import "time"

// Platform is a social network that sells placements.
type Platform struct {
	ID          int64
	Name        string
	DisplayName string
	Active      bool
	CreatedAt   time.Time
}

// PlatformSummary carries placement counts for a platform. Booked counts
// are derived from occupying bookings covering the current day.
type PlatformSummary struct {
	Platform
	TotalPlacements     int
	AvailablePlacements int
	BookedPlacements    int
}

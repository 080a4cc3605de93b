package configs

// Booking holds engine policy switches.
type Booking struct {
	// PendingOccupies makes pending bookings block their dates. By default
	// only approved and active bookings do.
	PendingOccupies bool `env:"PENDING_OCCUPIES" envDefault:"false"`
}

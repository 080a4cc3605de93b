package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the engine and its adapters. Callers classify
// failures with errors.Is; adapters wrap driver errors into one of these.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("placement already booked for the selected dates")
	ErrInvalidState = errors.New("invalid status transition")
	ErrStoreFailure = errors.New("store failure")
	ErrForbidden    = errors.New("forbidden")
)

// ConflictError reports the occupying booking that blocked a request.
// BookingID is zero when the store rejected the row through its exclusion
// constraint and the blocking booking is unknown.
type ConflictError struct {
	BookingID int64
	Period    DateRange
}

func (e *ConflictError) Error() string {
	if e.BookingID == 0 {
		return ErrConflict.Error()
	}
	return fmt.Sprintf("%s: booking %d occupies %s", ErrConflict, e.BookingID, e.Period)
}

// Is makes errors.Is(err, ErrConflict) hold for any *ConflictError.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// InvalidInputf returns an ErrInvalidInput wrapped with a formatted reason.
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

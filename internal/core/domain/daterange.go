package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used on the wire and in the store.
const DateLayout = "2006-01-02"

// DateRange is an inclusive interval of calendar dates. Both bounds are
// normalised to midnight UTC so that arithmetic on them is exact.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range from two dates. It rejects ranges whose start
// falls after their end.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: TruncateDate(start), End: TruncateDate(end)}
	if r.Start.After(r.End) {
		return DateRange{}, InvalidInputf("start_date %s is after end_date %s",
			r.Start.Format(DateLayout), r.End.Format(DateLayout))
	}
	return r, nil
}

// ParseDateRange parses two wire dates into a range.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, fmt.Errorf("start_date: %w", err)
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, fmt.Errorf("end_date: %w", err)
	}
	return NewDateRange(s, e)
}

// ParseDate accepts YYYY-MM-DD and, for clients that send timestamps,
// RFC 3339. Timestamps keep the calendar date they name in their own zone.
// Anything else is ErrInvalidInput.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, InvalidInputf("date %q is not YYYY-MM-DD", s)
	}
	return TruncateDate(t), nil
}

// TruncateDate drops the clock part of t and returns its calendar date at
// midnight UTC.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether two inclusive ranges share at least one day.
// A range ending on the day another starts overlaps it.
func (r DateRange) Overlaps(o DateRange) bool {
	return !r.Start.After(o.End) && !r.End.Before(o.Start)
}

// Contains reports whether day d lies within the range.
func (r DateRange) Contains(d time.Time) bool {
	d = TruncateDate(d)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days returns the number of calendar days in the range, counting both ends.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}

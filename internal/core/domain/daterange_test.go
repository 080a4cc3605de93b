package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRangeRejectsReversedDates(t *testing.T) {
	_, err := ParseDateRange("2024-03-02", "2024-03-01")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestParseDateRangeRejectsGarbage(t *testing.T) {
	_, err := ParseDateRange("soon", "2024-03-01")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseDateRejectsOtherFormats(t *testing.T) {
	for _, s := range []string{"03/15/2024", "2024-13-01", "", "tomorrow"} {
		_, err := ParseDate(s)
		assert.ErrorIs(t, err, ErrInvalidInput, s)
	}
}

func TestParseDateAcceptsTimestamps(t *testing.T) {
	d, err := ParseDate("2024-03-31T23:30:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), d)
}

func TestOverlapBoundaries(t *testing.T) {
	a := mustRange(t, "2024-01-01", "2024-03-31")

	cases := []struct {
		name  string
		other DateRange
		want  bool
	}{
		{"shared boundary day", mustRange(t, "2024-03-31", "2024-04-30"), true},
		{"day after", mustRange(t, "2024-04-01", "2024-04-30"), false},
		{"day before", mustRange(t, "2023-12-01", "2023-12-31"), false},
		{"contained", mustRange(t, "2024-02-01", "2024-02-05"), true},
		{"containing", mustRange(t, "2023-12-01", "2024-05-01"), true},
		{"exact", mustRange(t, "2024-01-01", "2024-03-31"), true},
		{"partial start", mustRange(t, "2023-12-15", "2024-01-01"), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, a.Overlaps(tc.other))
		})
	}
}

func TestOverlapIsSymmetric(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day := func(n int) time.Time { return base.AddDate(0, 0, n) }

	// every pair of ranges within a 12-day window
	var ranges []DateRange
	for s := 0; s < 12; s++ {
		for e := s; e < 12; e++ {
			r, err := NewDateRange(day(s), day(e))
			require.NoError(t, err)
			ranges = append(ranges, r)
		}
	}
	for _, a := range ranges {
		for _, b := range ranges {
			require.Equal(t, a.Overlaps(b), b.Overlaps(a), "%s vs %s", a, b)
		}
	}
}

func TestDaysCountsBothEnds(t *testing.T) {
	assert.Equal(t, 1, mustRange(t, "2024-02-01", "2024-02-01").Days())
	assert.Equal(t, 29, mustRange(t, "2024-02-01", "2024-02-29").Days())
	assert.Equal(t, 90, mustRange(t, "2024-02-01", "2024-04-30").Days())
}

func TestContains(t *testing.T) {
	r := mustRange(t, "2024-01-10", "2024-01-20")
	assert.True(t, r.Contains(time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)))
}

package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultMultiplier applies when no regional pricing row matches.
var DefaultMultiplier = decimal.NewFromInt(1)

// RegionalPricing maps a region to a price multiplier.
type RegionalPricing struct {
	ID              int64
	RegionName      string
	Country         string
	State           string
	PriceMultiplier decimal.Decimal
	Description     string
}

// RegionQuery selects regional pricing rows. Region is matched as a
// case-insensitive substring, Country and State exactly. Empty fields do
// not constrain the match; a query with every field empty matches nothing.
type RegionQuery struct {
	Region  string
	Country string
	State   string
}

// Empty reports whether the query has no criteria.
func (q RegionQuery) Empty() bool {
	return strings.TrimSpace(q.Region) == "" && q.Country == "" && q.State == ""
}

// Matches reports whether row satisfies the query.
func (q RegionQuery) Matches(row RegionalPricing) bool {
	if q.Empty() {
		return false
	}
	if r := strings.TrimSpace(q.Region); r != "" &&
		!strings.Contains(strings.ToLower(row.RegionName), strings.ToLower(r)) {
		return false
	}
	if q.Country != "" && row.Country != q.Country {
		return false
	}
	if q.State != "" && row.State != q.State {
		return false
	}
	return true
}

// BestMatch chooses among matching rows: the highest multiplier wins, ties
// go to the lowest id. It returns nil when rows is empty.
func BestMatch(rows []RegionalPricing) *RegionalPricing {
	var best *RegionalPricing
	for i := range rows {
		r := &rows[i]
		if best == nil {
			best = r
			continue
		}
		switch r.PriceMultiplier.Cmp(best.PriceMultiplier) {
		case 1:
			best = r
		case 0:
			if r.ID < best.ID {
				best = r
			}
		}
	}
	return best
}

// MultiplierOf returns the multiplier of row, or DefaultMultiplier when
// row is nil or carries a non-positive multiplier.
func MultiplierOf(row *RegionalPricing) decimal.Decimal {
	if row == nil || row.PriceMultiplier.Sign() <= 0 {
		return DefaultMultiplier
	}
	return row.PriceMultiplier
}

package domain

import "github.com/shopspring/decimal"

// billingMonthDays is the length of a billed month.
const billingMonthDays = 30

// Pricing is the breakdown returned by a pricing calculation. It is also
// the snapshot frozen onto a booking at creation.
type Pricing struct {
	PlacementID     int64
	BasePrice       decimal.Decimal
	PriceMultiplier decimal.Decimal
	MonthlyPrice    decimal.Decimal
	DurationDays    int
	DurationMonths  int
	TotalPrice      decimal.Decimal
	Region          string
	Period          DateRange
}

// BillableMonths converts an inclusive day count into billed months. Any
// started 30-day block is billed and at least one month is always billed.
func BillableMonths(days int) int {
	months := (days + billingMonthDays - 1) / billingMonthDays
	if months < 1 {
		return 1
	}
	return months
}

// CalculatePricing prices placement for period under multiplier. Money is
// rounded half-up to cents after each step. A non-positive multiplier is
// treated as DefaultMultiplier.
func CalculatePricing(placement Placement, multiplier decimal.Decimal, region string, period DateRange) Pricing {
	if multiplier.Sign() <= 0 {
		multiplier = DefaultMultiplier
	}
	days := period.Days()
	months := BillableMonths(days)
	monthly := placement.BasePrice.Mul(multiplier).Round(2)
	total := monthly.Mul(decimal.NewFromInt(int64(months))).Round(2)
	return Pricing{
		PlacementID:     placement.ID,
		BasePrice:       placement.BasePrice,
		PriceMultiplier: multiplier,
		MonthlyPrice:    monthly,
		DurationDays:    days,
		DurationMonths:  months,
		TotalPrice:      total,
		Region:          region,
		Period:          period,
	}
}

package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRegionQueryMatches(t *testing.T) {
	row := RegionalPricing{RegionName: "Los Angeles Metro", Country: "United States", State: "California"}

	assert.True(t, RegionQuery{Region: "angeles"}.Matches(row))
	assert.True(t, RegionQuery{Region: "LOS", Country: "United States"}.Matches(row))
	assert.False(t, RegionQuery{Region: "los", State: "Texas"}.Matches(row))
	assert.False(t, RegionQuery{Region: "Atlantis"}.Matches(row))
	assert.False(t, RegionQuery{}.Matches(row))
}

func TestBestMatch(t *testing.T) {
	assert.Nil(t, BestMatch(nil))
	assert.True(t, MultiplierOf(nil).Equal(decimal.NewFromInt(1)))

	rows := []RegionalPricing{
		{ID: 3, PriceMultiplier: decimal.RequireFromString("1.2")},
		{ID: 5, PriceMultiplier: decimal.RequireFromString("1.9")},
		{ID: 2, PriceMultiplier: decimal.RequireFromString("1.90")},
	}
	best := BestMatch(rows)
	assert.Equal(t, int64(2), best.ID)
	assert.Equal(t, "1.9", MultiplierOf(best).StringFixed(1))
}

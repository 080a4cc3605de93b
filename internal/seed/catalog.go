// Package seed holds the demo catalog loaded into empty stores.
package seed

import (
	"fmt"

	"github.com/shopspring/decimal"

	"mesa-placements/internal/core/domain"
)

// Platforms returns the social platforms of the demo catalog.
func Platforms() []domain.Platform {
	return []domain.Platform{
		{Name: "facebook", DisplayName: "Facebook", Active: true},
		{Name: "instagram", DisplayName: "Instagram", Active: true},
		{Name: "x", DisplayName: "X", Active: true},
		{Name: "snapchat", DisplayName: "Snapchat", Active: true},
		{Name: "tiktok", DisplayName: "TikTok", Active: true},
		{Name: "youtube", DisplayName: "YouTube", Active: true},
		{Name: "telegram", DisplayName: "Telegram", Active: true},
		{Name: "pinterest", DisplayName: "Pinterest", Active: true},
		{Name: "reddit", DisplayName: "Reddit", Active: true},
		{Name: "wechat", DisplayName: "WeChat", Active: true},
		{Name: "weibo", DisplayName: "Weibo", Active: true},
		{Name: "kuaishou", DisplayName: "Kuaishou", Active: true},
		{Name: "douyin", DisplayName: "Douyin", Active: true},
		{Name: "linkedin", DisplayName: "LinkedIn", Active: true},
	}
}

type slot struct {
	typ   domain.PlacementType
	name  string
	price int64
}

var slots = []slot{
	{domain.PlacementMediumRectangle, "medium_rectangle_1", 100},
	{domain.PlacementMediumRectangle, "medium_rectangle_2", 100},
	{domain.PlacementMediumRectangle, "medium_rectangle_3", 100},
	{domain.PlacementMediumRectangle, "medium_rectangle_4", 100},
	{domain.PlacementLeaderboard, "leaderboard_top", 150},
	{domain.PlacementLeaderboard, "leaderboard_bottom", 150},
	{domain.PlacementSkyscraper, "skyscraper_left", 120},
	{domain.PlacementSkyscraper, "skyscraper_right", 120},
}

// Placements returns the eight standard slots of a platform.
func Placements(platformID int64) []domain.Placement {
	out := make([]domain.Placement, 0, len(slots))
	for _, s := range slots {
		w, h := s.typ.Dimensions()
		out = append(out, domain.Placement{
			PlatformID:   platformID,
			Type:         s.typ,
			PositionName: s.name,
			Width:        w,
			Height:       h,
			BasePrice:    decimal.NewFromInt(s.price),
			Active:       true,
		})
	}
	return out
}

// RegionalPricing returns the demo multipliers.
func RegionalPricing() []domain.RegionalPricing {
	row := func(region, country, state, mult string) domain.RegionalPricing {
		return domain.RegionalPricing{
			RegionName:      region,
			Country:         country,
			State:           state,
			PriceMultiplier: decimal.RequireFromString(mult),
			Description:     fmt.Sprintf("%s metro market", region),
		}
	}
	return []domain.RegionalPricing{
		row("Los Angeles Metro", "US", "CA", "1.80"),
		row("New York Metro", "US", "NY", "2.00"),
		row("San Francisco Bay Area", "US", "CA", "1.90"),
		row("Chicago Metro", "US", "IL", "1.40"),
		row("Dallas-Fort Worth", "US", "TX", "1.30"),
		row("Miami Metro", "US", "FL", "1.20"),
		row("London Metro", "GB", "ENG", "2.20"),
		row("Toronto Metro", "CA", "ON", "1.60"),
		row("Sydney Metro", "AU", "NSW", "1.70"),
	}
}

package port

import (
	"context"

	"mesa-placements/internal/core/domain"
)

// PlacementCatalog is the read side of the placement inventory. Lookups of
// a single entity return domain.ErrNotFound when it does not exist.
type PlacementCatalog interface {
	// GetPlacement returns a placement by id, active or not.
	GetPlacement(ctx context.Context, id int64) (*domain.Placement, error)
	// ListPlacements returns every placement ordered by platform, type and
	// position.
	ListPlacements(ctx context.Context) ([]domain.Placement, error)
	// ListPlacementsByPlatform returns the placements of one platform.
	ListPlacementsByPlatform(ctx context.Context, platformID int64) ([]domain.Placement, error)
	// ListPlatforms returns all platforms ordered by display name.
	ListPlatforms(ctx context.Context) ([]domain.Platform, error)
	// GetPlatformByName looks a platform up by its slug.
	GetPlatformByName(ctx context.Context, name string) (*domain.Platform, error)
}

// RegionalPricingTable resolves regional price multipliers.
type RegionalPricingTable interface {
	// FindByRegion returns the best row matching q (highest multiplier,
	// then lowest id) or nil when nothing matches.
	FindByRegion(ctx context.Context, q domain.RegionQuery) (*domain.RegionalPricing, error)
	// List returns all rows ordered by country, state and region.
	List(ctx context.Context) ([]domain.RegionalPricing, error)
}

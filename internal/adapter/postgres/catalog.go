package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-placements/internal/core/domain"
)

const placementColumns = `pl.id, pl.platform_id, pl.placement_type, pl.position_name,
    pl.width, pl.height, pl.base_price, pl.is_active, pl.created_at`

// Catalog implements port.PlacementCatalog using pgxpool.
type Catalog struct {
	pool *pgxpool.Pool
}

func NewCatalog(pool *pgxpool.Pool) *Catalog {
	return &Catalog{pool: pool}
}

// GetPlacement returns a placement by id.
func (c *Catalog) GetPlacement(ctx context.Context, id int64) (*domain.Placement, error) {
	row := c.pool.QueryRow(ctx, `SELECT `+placementColumns+` FROM placements pl WHERE pl.id = $1`, id)
	p, err := scanPlacement(row)
	if err != nil {
		return nil, mapError(fmt.Sprintf("get placement %d", id), err)
	}
	return &p, nil
}

// ListPlacements returns every placement.
func (c *Catalog) ListPlacements(ctx context.Context) ([]domain.Placement, error) {
	rows, err := c.pool.Query(ctx, `SELECT `+placementColumns+` FROM placements pl
        ORDER BY pl.platform_id, pl.placement_type, pl.position_name`)
	if err != nil {
		return nil, mapError("list placements", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Placement, error) {
		return scanPlacement(row)
	})
	return out, mapError("list placements", err)
}

// ListPlacementsByPlatform returns the placements of one platform.
func (c *Catalog) ListPlacementsByPlatform(ctx context.Context, platformID int64) ([]domain.Placement, error) {
	rows, err := c.pool.Query(ctx, `SELECT `+placementColumns+` FROM placements pl
        WHERE pl.platform_id = $1
        ORDER BY pl.placement_type, pl.position_name`, platformID)
	if err != nil {
		return nil, mapError("list platform placements", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Placement, error) {
		return scanPlacement(row)
	})
	return out, mapError("list platform placements", err)
}

// ListPlatforms returns all platforms.
func (c *Catalog) ListPlatforms(ctx context.Context) ([]domain.Platform, error) {
	rows, err := c.pool.Query(ctx, `SELECT id, name, display_name, is_active, created_at
        FROM platforms ORDER BY display_name`)
	if err != nil {
		return nil, mapError("list platforms", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Platform, error) {
		var p domain.Platform
		err := row.Scan(&p.ID, &p.Name, &p.DisplayName, &p.Active, &p.CreatedAt)
		return p, err
	})
	return out, mapError("list platforms", err)
}

// GetPlatformByName looks a platform up by its slug.
func (c *Catalog) GetPlatformByName(ctx context.Context, name string) (*domain.Platform, error) {
	var p domain.Platform
	err := c.pool.QueryRow(ctx, `SELECT id, name, display_name, is_active, created_at
        FROM platforms WHERE name = $1`, strings.ToLower(name)).
		Scan(&p.ID, &p.Name, &p.DisplayName, &p.Active, &p.CreatedAt)
	if err != nil {
		return nil, mapError(fmt.Sprintf("get platform %q", name), err)
	}
	return &p, nil
}

func scanPlacement(row pgx.Row) (domain.Placement, error) {
	var p domain.Placement
	var typ string
	err := row.Scan(&p.ID, &p.PlatformID, &typ, &p.PositionName,
		&p.Width, &p.Height, &p.BasePrice, &p.Active, &p.CreatedAt)
	p.Type = domain.PlacementType(typ)
	return p, err
}

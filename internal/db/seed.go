package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-placements/internal/seed"
)

// Seed inserts the demo catalog. It is idempotent: existing platforms,
// placements and regions are left as they are.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for _, pf := range seed.Platforms() {
			var platformID int64
			err := tx.QueryRow(ctx, `INSERT INTO platforms (name, display_name, is_active)
VALUES ($1, $2, $3)
ON CONFLICT (name) DO UPDATE SET display_name = EXCLUDED.display_name
RETURNING id`, pf.Name, pf.DisplayName, pf.Active).Scan(&platformID)
			if err != nil {
				return err
			}

			batch := &pgx.Batch{}
			for _, pl := range seed.Placements(platformID) {
				batch.Queue(`INSERT INTO placements
    (platform_id, placement_type, position_name, width, height, base_price, is_active)
VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT (platform_id, position_name) DO NOTHING`,
					pl.PlatformID, string(pl.Type), pl.PositionName, pl.Width, pl.Height, pl.BasePrice, pl.Active)
			}
			if err = tx.SendBatch(ctx, batch).Close(); err != nil {
				return err
			}
		}

		for _, r := range seed.RegionalPricing() {
			_, err := tx.Exec(ctx, `INSERT INTO regional_pricing
    (region_name, country, state, price_multiplier, description)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT (region_name) DO NOTHING`,
				r.RegionName, r.Country, r.State, r.PriceMultiplier, r.Description)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-placements/internal/core/domain"
)

const regionalPricingColumns = `id, region_name, country, state, price_multiplier, description`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// PricingTable implements port.RegionalPricingTable using pgxpool.
type PricingTable struct {
	pool *pgxpool.Pool
}

func NewPricingTable(pool *pgxpool.Pool) *PricingTable {
	return &PricingTable{pool: pool}
}

// FindByRegion returns the highest multiplier among matching rows, lowest id
// first on ties, or nil when nothing matches.
func (t *PricingTable) FindByRegion(ctx context.Context, q domain.RegionQuery) (*domain.RegionalPricing, error) {
	if q.Empty() {
		return nil, nil
	}
	row := t.pool.QueryRow(ctx, `SELECT `+regionalPricingColumns+` FROM regional_pricing
        WHERE ($1::text = '' OR region_name ILIKE '%' || $1 || '%')
          AND ($2::text = '' OR country = $2)
          AND ($3::text = '' OR state = $3)
        ORDER BY price_multiplier DESC, id ASC
        LIMIT 1`,
		likeEscaper.Replace(strings.TrimSpace(q.Region)), q.Country, q.State)
	r, err := scanRegionalPricing(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError("find regional pricing", err)
	}
	return &r, nil
}

// List returns all rows.
func (t *PricingTable) List(ctx context.Context) ([]domain.RegionalPricing, error) {
	rows, err := t.pool.Query(ctx, `SELECT `+regionalPricingColumns+` FROM regional_pricing
        ORDER BY country, state, region_name`)
	if err != nil {
		return nil, mapError("list regional pricing", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RegionalPricing, error) {
		return scanRegionalPricing(row)
	})
	return out, mapError("list regional pricing", err)
}

func scanRegionalPricing(row pgx.Row) (domain.RegionalPricing, error) {
	var r domain.RegionalPricing
	err := row.Scan(&r.ID, &r.RegionName, &r.Country, &r.State, &r.PriceMultiplier, &r.Description)
	return r, err
}

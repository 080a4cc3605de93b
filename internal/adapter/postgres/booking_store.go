package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-placements/internal/core/domain"
	"mesa-placements/internal/core/port"
)

const bookingColumns = `b.id, b.advertiser_id, b.placement_id, b.campaign_name, b.ad_image_url,
    b.ad_link_url, b.region, b.postal_code, b.start_date, b.end_date, b.monthly_price,
    b.total_price, b.status, b.impressions, b.clicks, b.created_at, b.updated_at`

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BookingStore implements port.BookingStore using pgxpool. Writes run in a
// serializable transaction that first locks the placement row, so that
// writers to one placement queue behind each other. The bookings_no_overlap
// exclusion constraint rejects anything that slips past the check.
type BookingStore struct {
	pool *pgxpool.Pool
}

func NewBookingStore(pool *pgxpool.Pool) *BookingStore {
	return &BookingStore{pool: pool}
}

// ListByPlacement returns every booking of a placement.
func (s *BookingStore) ListByPlacement(ctx context.Context, placementID int64) ([]domain.Booking, error) {
	out, err := s.queryBookings(ctx, s.pool, `SELECT `+bookingColumns+` FROM bookings b
        WHERE b.placement_id = $1 ORDER BY b.start_date, b.id`, placementID)
	return out, mapError("list placement bookings", err)
}

// ListCovering returns bookings whose interval contains day.
func (s *BookingStore) ListCovering(ctx context.Context, day time.Time) ([]domain.Booking, error) {
	out, err := s.queryBookings(ctx, s.pool, `SELECT `+bookingColumns+` FROM bookings b
        WHERE $1::date BETWEEN b.start_date AND b.end_date ORDER BY b.id`, domain.TruncateDate(day))
	return out, mapError("list covering bookings", err)
}

// CreateIfNoConflict inserts nb as pending after checking it against the
// occupying bookings of its placement.
func (s *BookingStore) CreateIfNoConflict(ctx context.Context, nb domain.NewBooking, policy domain.OccupancyPolicy) (*domain.Booking, error) {
	var created domain.Booking
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockPlacement(ctx, tx, nb.PlacementID); err != nil {
			return err
		}
		overlapping, err := s.overlapping(ctx, tx, nb.PlacementID, nb.Period, policy)
		if err != nil {
			return err
		}
		if err = policy.Conflict(overlapping, nb.Period, 0); err != nil {
			return err
		}
		row := tx.QueryRow(ctx, `INSERT INTO bookings AS b
            (advertiser_id, placement_id, campaign_name, ad_image_url, ad_link_url, region,
             postal_code, start_date, end_date, monthly_price, total_price, status)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
            RETURNING `+bookingColumns,
			nb.AdvertiserID, nb.PlacementID, nb.CampaignName, nb.AdImageURL, nb.AdLinkURL, nb.Region,
			nb.PostalCode, nb.Period.Start, nb.Period.End, nb.MonthlyPrice, nb.TotalPrice,
			string(domain.BookingPending))
		created, err = scanBooking(row)
		return err
	})
	if err != nil {
		return nil, mapError("create booking", err)
	}
	return &created, nil
}

// TransitionStatus moves a booking to next. The placement row is locked
// before the booking so that lock order matches CreateIfNoConflict.
func (s *BookingStore) TransitionStatus(ctx context.Context, id int64, next domain.BookingStatus, policy domain.OccupancyPolicy) (*domain.StatusChange, error) {
	var change domain.StatusChange
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		var placementID int64
		err := tx.QueryRow(ctx, `SELECT placement_id FROM bookings WHERE id = $1`, id).Scan(&placementID)
		if err != nil {
			return err
		}
		if err = lockPlacement(ctx, tx, placementID); err != nil {
			return err
		}
		current, err := scanBooking(tx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings b
            WHERE b.id = $1 FOR UPDATE`, id))
		if err != nil {
			return err
		}
		siblings, err := s.overlapping(ctx, tx, placementID, current.Period, policy)
		if err != nil {
			return err
		}
		if err = policy.CheckTransition(current, next, siblings); err != nil {
			return err
		}
		updated, err := scanBooking(tx.QueryRow(ctx, `UPDATE bookings AS b
            SET status = $2, updated_at = now()
            WHERE b.id = $1
            RETURNING `+bookingColumns, id, string(next)))
		if err != nil {
			return err
		}
		change = domain.StatusChange{Booking: updated, Previous: current.Status}
		return nil
	})
	if err != nil {
		return nil, mapError(fmt.Sprintf("transition booking %d", id), err)
	}
	return &change, nil
}

// Get returns a booking by id.
func (s *BookingStore) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := scanBooking(s.pool.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings b WHERE b.id = $1`, id))
	if err != nil {
		return nil, mapError(fmt.Sprintf("get booking %d", id), err)
	}
	return &b, nil
}

// List returns bookings newest first.
func (s *BookingStore) List(ctx context.Context, filter port.BookingFilter) ([]domain.Booking, error) {
	out, err := s.queryBookings(ctx, s.pool, `SELECT `+bookingColumns+` FROM bookings b
        WHERE ($1::bigint IS NULL OR b.advertiser_id = $1)
        ORDER BY b.created_at DESC, b.id DESC`, filter.AdvertiserID)
	return out, mapError("list bookings", err)
}

// ListActiveByPlatform returns active bookings of a platform running on day.
func (s *BookingStore) ListActiveByPlatform(ctx context.Context, platformID int64, day time.Time) ([]domain.ActiveAd, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+bookingColumns+`, `+placementColumns+`
        FROM bookings b
        JOIN placements pl ON pl.id = b.placement_id
        WHERE pl.platform_id = $1
          AND b.status = $2
          AND $3::date BETWEEN b.start_date AND b.end_date
        ORDER BY pl.placement_type, pl.position_name`,
		platformID, string(domain.BookingActive), domain.TruncateDate(day))
	if err != nil {
		return nil, mapError("list active ads", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ActiveAd, error) {
		var (
			ad       domain.ActiveAd
			status   string
			placeTyp string
		)
		b, p := &ad.Booking, &ad.Placement
		err := row.Scan(
			&b.ID, &b.AdvertiserID, &b.PlacementID, &b.CampaignName, &b.AdImageURL,
			&b.AdLinkURL, &b.Region, &b.PostalCode, &b.Period.Start, &b.Period.End, &b.MonthlyPrice,
			&b.TotalPrice, &status, &b.Impressions, &b.Clicks, &b.CreatedAt, &b.UpdatedAt,
			&p.ID, &p.PlatformID, &placeTyp, &p.PositionName,
			&p.Width, &p.Height, &p.BasePrice, &p.Active, &p.CreatedAt,
		)
		b.Status = domain.BookingStatus(status)
		p.Type = domain.PlacementType(placeTyp)
		return ad, err
	})
	return out, mapError("list active ads", err)
}

// TrackImpression increments the impression counter.
func (s *BookingStore) TrackImpression(ctx context.Context, id int64) error {
	return s.bump(ctx, "track impression", `UPDATE bookings SET impressions = impressions + 1 WHERE id = $1`, id)
}

// TrackClick increments the click counter.
func (s *BookingStore) TrackClick(ctx context.Context, id int64) error {
	return s.bump(ctx, "track click", `UPDATE bookings SET clicks = clicks + 1 WHERE id = $1`, id)
}

func (s *BookingStore) bump(ctx context.Context, op, sql string, id int64) error {
	tag, err := s.pool.Exec(ctx, sql, id)
	if err != nil {
		return mapError(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w: booking %d", op, domain.ErrNotFound, id)
	}
	return nil
}

// overlapping returns the occupying bookings of a placement that overlap r.
func (s *BookingStore) overlapping(ctx context.Context, q querier, placementID int64, r domain.DateRange, policy domain.OccupancyPolicy) ([]domain.Booking, error) {
	statuses := make([]string, 0, 4)
	for _, st := range policy.OccupyingStatuses() {
		statuses = append(statuses, string(st))
	}
	return s.queryBookings(ctx, q, `SELECT `+bookingColumns+` FROM bookings b
        WHERE b.placement_id = $1
          AND b.status = ANY($2)
          AND b.start_date <= $4 AND b.end_date >= $3
        ORDER BY b.start_date, b.id`, placementID, statuses, r.Start, r.End)
}

func (s *BookingStore) queryBookings(ctx context.Context, q querier, sql string, args ...any) ([]domain.Booking, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Booking, error) {
		return scanBooking(row)
	})
}

// inTx runs fn in a serializable transaction, committing when fn succeeds.
// A transaction aborted by a serialization failure or deadlock is run once
// more so that fn re-reads the committed state.
func (s *BookingStore) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	return retryOnce(ctx, func() error { return s.runTx(ctx, fn) })
}

func (s *BookingStore) runTx(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()
	return fn(tx)
}

// lockPlacement takes the row lock that serialises writers of a placement.
func lockPlacement(ctx context.Context, tx pgx.Tx, placementID int64) error {
	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM placements WHERE id = $1 FOR UPDATE`, placementID).Scan(&id)
	if err != nil {
		return fmt.Errorf("lock placement %d: %w", placementID, err)
	}
	return nil
}

func scanBooking(row pgx.Row) (domain.Booking, error) {
	var (
		b      domain.Booking
		status string
	)
	err := row.Scan(
		&b.ID, &b.AdvertiserID, &b.PlacementID, &b.CampaignName, &b.AdImageURL,
		&b.AdLinkURL, &b.Region, &b.PostalCode, &b.Period.Start, &b.Period.End, &b.MonthlyPrice,
		&b.TotalPrice, &status, &b.Impressions, &b.Clicks, &b.CreatedAt, &b.UpdatedAt,
	)
	b.Status = domain.BookingStatus(status)
	return b, err
}

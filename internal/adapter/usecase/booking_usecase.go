package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mesa-placements/internal/core/domain"
	"mesa-placements/internal/core/port"
	"mesa-placements/internal/metrics"
)

// BookingUseCase implements port.BookingUseCase. It prices placements,
// books them through the BookingStore and drives the status machine. The
// store owns atomicity; this type owns validation, pricing and the side
// effects that follow a committed write.
type BookingUseCase struct {
	catalog  port.PlacementCatalog
	pricing  port.RegionalPricingTable
	bookings port.BookingStore

	cache   port.AvailabilityCache
	events  port.EventPublisher
	policy  domain.OccupancyPolicy
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures optional collaborators of BookingUseCase.
type Option func(*BookingUseCase)

// WithPolicy sets the occupancy policy. The zero policy treats pending
// bookings as non-occupying.
func WithPolicy(p domain.OccupancyPolicy) Option {
	return func(u *BookingUseCase) { u.policy = p }
}

// WithCache enables the availability cache.
func WithCache(c port.AvailabilityCache) Option {
	return func(u *BookingUseCase) { u.cache = c }
}

// WithEvents enables booking event publishing.
func WithEvents(p port.EventPublisher) Option {
	return func(u *BookingUseCase) { u.events = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(u *BookingUseCase) { u.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(u *BookingUseCase) { u.logger = l }
}

// WithClock overrides the source of "today".
func WithClock(now func() time.Time) Option {
	return func(u *BookingUseCase) { u.now = now }
}

// NewBookingUseCase wires the engine to its stores.
func NewBookingUseCase(catalog port.PlacementCatalog, pricing port.RegionalPricingTable, bookings port.BookingStore, opts ...Option) *BookingUseCase {
	u := &BookingUseCase{
		catalog:  catalog,
		pricing:  pricing,
		bookings: bookings,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CalculatePricing resolves the placement and regional multiplier and
// prices the range. It writes nothing and may be retried freely.
func (u *BookingUseCase) CalculatePricing(ctx context.Context, req port.PricingRequest) (*domain.Pricing, error) {
	if req.PlacementID <= 0 {
		return nil, domain.InvalidInputf("placement_id is required")
	}
	if strings.TrimSpace(req.StartDate) == "" || strings.TrimSpace(req.EndDate) == "" {
		return nil, domain.InvalidInputf("start_date and end_date are required")
	}
	period, err := domain.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	placement, err := u.catalog.GetPlacement(ctx, req.PlacementID)
	if err != nil {
		return nil, u.fail(ctx, "get_placement", err)
	}
	if !placement.Active {
		return nil, fmt.Errorf("%w: placement %d is not active", domain.ErrNotFound, placement.ID)
	}

	var row *domain.RegionalPricing
	q := domain.RegionQuery{Region: req.Region, Country: req.Country, State: req.State}
	if !q.Empty() {
		if row, err = u.pricing.FindByRegion(ctx, q); err != nil {
			return nil, u.fail(ctx, "find_regional_pricing", err)
		}
	}
	u.metrics.RecordPricing(row != nil)

	p := domain.CalculatePricing(*placement, domain.MultiplierOf(row), req.Region, period)
	return &p, nil
}

// CreateBooking prices the request and inserts it as pending. The conflict
// check happens inside the store, atomically with the insert.
func (u *BookingUseCase) CreateBooking(ctx context.Context, req port.CreateBookingRequest) (*domain.Booking, error) {
	if req.AdvertiserID <= 0 {
		return nil, domain.InvalidInputf("advertiser is required")
	}
	campaign := strings.TrimSpace(req.CampaignName)
	switch {
	case req.PlacementID <= 0:
		return nil, domain.InvalidInputf("missing required field: placement_id")
	case campaign == "":
		return nil, domain.InvalidInputf("missing required field: campaign_name")
	case strings.TrimSpace(req.Region) == "":
		return nil, domain.InvalidInputf("missing required field: region")
	case strings.TrimSpace(req.StartDate) == "":
		return nil, domain.InvalidInputf("missing required field: start_date")
	case strings.TrimSpace(req.EndDate) == "":
		return nil, domain.InvalidInputf("missing required field: end_date")
	}

	pricing, err := u.CalculatePricing(ctx, port.PricingRequest{
		PlacementID: req.PlacementID,
		Region:      req.Region,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		return nil, err
	}
	if q := req.QuotedMonthlyPrice; q != nil && !q.Round(2).Equal(pricing.MonthlyPrice) {
		return nil, domain.InvalidInputf("quoted monthly_price %s differs from current price %s",
			q.StringFixed(2), pricing.MonthlyPrice.StringFixed(2))
	}
	if q := req.QuotedTotalPrice; q != nil && !q.Round(2).Equal(pricing.TotalPrice) {
		return nil, domain.InvalidInputf("quoted total_price %s differs from current price %s",
			q.StringFixed(2), pricing.TotalPrice.StringFixed(2))
	}

	b, err := u.bookings.CreateIfNoConflict(ctx, domain.NewBooking{
		AdvertiserID: req.AdvertiserID,
		PlacementID:  req.PlacementID,
		CampaignName: campaign,
		AdImageURL:   strings.TrimSpace(req.AdImageURL),
		AdLinkURL:    strings.TrimSpace(req.AdLinkURL),
		Region:       strings.TrimSpace(req.Region),
		PostalCode:   strings.TrimSpace(req.PostalCode),
		Period:       pricing.Period,
		MonthlyPrice: pricing.MonthlyPrice,
		TotalPrice:   pricing.TotalPrice,
	}, u.policy)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			u.metrics.RecordConflict("create")
			u.logger.InfoContext(ctx, "booking rejected",
				slog.Int64("placement_id", req.PlacementID),
				slog.String("period", pricing.Period.String()),
				slog.Any("error", err))
		}
		return nil, u.fail(ctx, "create_booking", err)
	}

	u.metrics.RecordBookingCreated()
	u.afterWrite(ctx, domain.NewBookingEvent(domain.EventBookingCreated, *b, ""))
	return b, nil
}

// UpdateBookingStatus validates status and hands the transition to the
// store, which checks it against the transition table and, when the new
// status occupies, against the placement's other bookings.
func (u *BookingUseCase) UpdateBookingStatus(ctx context.Context, id int64, status string) (*domain.StatusChange, error) {
	if id <= 0 {
		return nil, domain.InvalidInputf("booking id is required")
	}
	next, err := domain.ParseBookingStatus(status)
	if err != nil {
		return nil, err
	}
	change, err := u.bookings.TransitionStatus(ctx, id, next, u.policy)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			u.metrics.RecordConflict("transition")
		}
		return nil, u.fail(ctx, "transition_status", err)
	}

	u.metrics.RecordTransition(string(next))
	u.logger.InfoContext(ctx, "booking status changed",
		slog.Int64("booking_id", id),
		slog.String("from", string(change.Previous)),
		slog.String("to", string(next)))
	u.afterWrite(ctx, domain.NewBookingEvent(domain.EventBookingStatusChanged, change.Booking, change.Previous))
	return change, nil
}

// GetBooking returns a booking owned by actor, or any booking for admins.
func (u *BookingUseCase) GetBooking(ctx context.Context, actor port.Actor, id int64) (*domain.Booking, error) {
	b, err := u.bookings.Get(ctx, id)
	if err != nil {
		return nil, u.fail(ctx, "get_booking", err)
	}
	if !actor.IsAdmin() && b.AdvertiserID != actor.UserID {
		return nil, fmt.Errorf("%w: booking %d belongs to another advertiser", domain.ErrForbidden, id)
	}
	return b, nil
}

// ListBookings lists the caller's bookings, or all of them for admins.
func (u *BookingUseCase) ListBookings(ctx context.Context, actor port.Actor) ([]domain.Booking, error) {
	var filter port.BookingFilter
	if !actor.IsAdmin() {
		id := actor.UserID
		filter.AdvertiserID = &id
	}
	list, err := u.bookings.List(ctx, filter)
	if err != nil {
		return nil, u.fail(ctx, "list_bookings", err)
	}
	return list, nil
}

// ListPlatforms returns every platform with total, available and booked
// placement counts for today.
func (u *BookingUseCase) ListPlatforms(ctx context.Context) ([]domain.PlatformSummary, error) {
	platforms, err := u.catalog.ListPlatforms(ctx)
	if err != nil {
		return nil, u.fail(ctx, "list_platforms", err)
	}
	placements, err := u.catalog.ListPlacements(ctx)
	if err != nil {
		return nil, u.fail(ctx, "list_placements", err)
	}
	today := u.today()
	covering, err := u.bookings.ListCovering(ctx, today)
	if err != nil {
		return nil, u.fail(ctx, "list_covering", err)
	}
	byPlacement := groupByPlacement(covering)

	summaries := make([]domain.PlatformSummary, len(platforms))
	index := make(map[int64]int, len(platforms))
	for i, p := range platforms {
		summaries[i] = domain.PlatformSummary{Platform: p}
		index[p.ID] = i
	}
	for _, pl := range placements {
		i, ok := index[pl.PlatformID]
		if !ok {
			continue
		}
		summaries[i].TotalPlacements++
		if st, _ := u.policy.Availability(byPlacement[pl.ID], today); st == domain.AvailabilityBooked {
			summaries[i].BookedPlacements++
		} else {
			summaries[i].AvailablePlacements++
		}
	}
	return summaries, nil
}

// ListPlatformPlacements returns the placements of a platform with their
// derived availability on day.
func (u *BookingUseCase) ListPlatformPlacements(ctx context.Context, platform string, day time.Time) ([]domain.PlacementAvailability, error) {
	pf, err := u.platform(ctx, platform)
	if err != nil {
		return nil, err
	}
	placements, err := u.catalog.ListPlacementsByPlatform(ctx, pf.ID)
	if err != nil {
		return nil, u.fail(ctx, "list_placements", err)
	}
	day = domain.TruncateDate(day)
	covering, err := u.bookings.ListCovering(ctx, day)
	if err != nil {
		return nil, u.fail(ctx, "list_covering", err)
	}
	byPlacement := groupByPlacement(covering)

	out := make([]domain.PlacementAvailability, 0, len(placements))
	for _, pl := range placements {
		st, blocking := u.policy.Availability(byPlacement[pl.ID], day)
		out = append(out, domain.PlacementAvailability{
			Placement: pl,
			Date:      day,
			Status:    st,
			Blocking:  blocking,
		})
	}
	return out, nil
}

// PlacementAvailability derives one placement's availability on day from
// its bookings. A cache hit carries the status but no blocking booking.
func (u *BookingUseCase) PlacementAvailability(ctx context.Context, placementID int64, day time.Time) (*domain.PlacementAvailability, error) {
	if placementID <= 0 {
		return nil, domain.InvalidInputf("placement id is required")
	}
	placement, err := u.catalog.GetPlacement(ctx, placementID)
	if err != nil {
		return nil, u.fail(ctx, "get_placement", err)
	}
	day = domain.TruncateDate(day)

	// The generation is taken before the bookings are read; a write that
	// commits in between advances it and the stale result is not stored.
	var (
		gen       int64
		cacheable bool
	)
	if u.cache != nil {
		st, ok, err := u.cache.Get(ctx, placementID, day)
		if err != nil {
			u.logger.WarnContext(ctx, "availability cache read failed", slog.Any("error", err))
		} else if ok {
			return &domain.PlacementAvailability{Placement: *placement, Date: day, Status: st}, nil
		}
		if gen, err = u.cache.Generation(ctx, placementID); err != nil {
			u.logger.WarnContext(ctx, "availability cache generation read failed", slog.Any("error", err))
		} else {
			cacheable = true
		}
	}

	bookings, err := u.bookings.ListByPlacement(ctx, placementID)
	if err != nil {
		return nil, u.fail(ctx, "list_by_placement", err)
	}
	st, blocking := u.policy.Availability(bookings, day)
	if cacheable {
		if err = u.cache.Set(ctx, placementID, day, st, gen); err != nil {
			u.logger.WarnContext(ctx, "availability cache write failed", slog.Any("error", err))
		}
	}
	return &domain.PlacementAvailability{Placement: *placement, Date: day, Status: st, Blocking: blocking}, nil
}

func (u *BookingUseCase) ListRegionalPricing(ctx context.Context) ([]domain.RegionalPricing, error) {
	rows, err := u.pricing.List(ctx)
	if err != nil {
		return nil, u.fail(ctx, "list_regional_pricing", err)
	}
	return rows, nil
}

// LookupRegionalPricing returns the row that would price q. When nothing
// matches it returns a row echoing q with the default multiplier.
func (u *BookingUseCase) LookupRegionalPricing(ctx context.Context, q domain.RegionQuery) (*domain.RegionalPricing, error) {
	if q.Empty() {
		return nil, domain.InvalidInputf("region, country or state is required")
	}
	row, err := u.pricing.FindByRegion(ctx, q)
	if err != nil {
		return nil, u.fail(ctx, "find_regional_pricing", err)
	}
	if row == nil {
		row = &domain.RegionalPricing{
			RegionName:      q.Region,
			Country:         q.Country,
			State:           q.State,
			PriceMultiplier: domain.DefaultMultiplier,
			Description:     "default multiplier",
		}
	}
	return row, nil
}

// ActiveAds returns active bookings of a platform running today.
func (u *BookingUseCase) ActiveAds(ctx context.Context, platform string) ([]domain.ActiveAd, error) {
	pf, err := u.platform(ctx, platform)
	if err != nil {
		return nil, err
	}
	ads, err := u.bookings.ListActiveByPlatform(ctx, pf.ID, u.today())
	if err != nil {
		return nil, u.fail(ctx, "list_active_ads", err)
	}
	return ads, nil
}

func (u *BookingUseCase) TrackImpression(ctx context.Context, bookingID int64) error {
	if err := u.trackable(ctx, bookingID); err != nil {
		return err
	}
	if err := u.bookings.TrackImpression(ctx, bookingID); err != nil {
		return u.fail(ctx, "track_impression", err)
	}
	u.metrics.RecordImpression()
	return nil
}

func (u *BookingUseCase) TrackClick(ctx context.Context, bookingID int64) error {
	if err := u.trackable(ctx, bookingID); err != nil {
		return err
	}
	if err := u.bookings.TrackClick(ctx, bookingID); err != nil {
		return u.fail(ctx, "track_click", err)
	}
	u.metrics.RecordClick()
	return nil
}

// trackable checks that a booking exists and is being served.
func (u *BookingUseCase) trackable(ctx context.Context, bookingID int64) error {
	if bookingID <= 0 {
		return domain.InvalidInputf("missing booking_id")
	}
	b, err := u.bookings.Get(ctx, bookingID)
	if err != nil {
		return u.fail(ctx, "get_booking", err)
	}
	if !b.Status.Renders() {
		return fmt.Errorf("%w: booking %d is %s", domain.ErrInvalidState, b.ID, b.Status)
	}
	return nil
}

func (u *BookingUseCase) platform(ctx context.Context, name string) (*domain.Platform, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, domain.InvalidInputf("platform is required")
	}
	pf, err := u.catalog.GetPlatformByName(ctx, name)
	if err != nil {
		return nil, u.fail(ctx, "get_platform", err)
	}
	return pf, nil
}

// afterWrite runs the best-effort side effects of a committed booking
// write. Failures are logged; the write itself already succeeded.
func (u *BookingUseCase) afterWrite(ctx context.Context, ev domain.BookingEvent) {
	if u.cache != nil {
		if err := u.cache.Invalidate(ctx, ev.PlacementID); err != nil {
			u.logger.WarnContext(ctx, "availability cache invalidation failed",
				slog.Int64("placement_id", ev.PlacementID), slog.Any("error", err))
		}
	}
	if u.events != nil {
		if err := u.events.Publish(ctx, ev); err != nil {
			u.logger.WarnContext(ctx, "publish booking event failed",
				slog.String("type", ev.Type), slog.Int64("booking_id", ev.BookingID), slog.Any("error", err))
		}
	}
}

func (u *BookingUseCase) today() time.Time {
	return domain.TruncateDate(u.now())
}

// fail passes domain errors through and turns anything else into
// ErrStoreFailure after logging it.
func (u *BookingUseCase) fail(ctx context.Context, op string, err error) error {
	for _, known := range []error{
		domain.ErrInvalidInput,
		domain.ErrNotFound,
		domain.ErrConflict,
		domain.ErrInvalidState,
		domain.ErrForbidden,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	u.metrics.RecordStoreFailure(op)
	u.logger.ErrorContext(ctx, "store failure", slog.String("op", op), slog.Any("error", err))
	if errors.Is(err, domain.ErrStoreFailure) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreFailure, err)
}

func groupByPlacement(bookings []domain.Booking) map[int64][]domain.Booking {
	out := make(map[int64][]domain.Booking)
	for _, b := range bookings {
		out[b.PlacementID] = append(out[b.PlacementID], b)
	}
	return out
}

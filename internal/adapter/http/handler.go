package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mesa-placements/internal/auth"
	"mesa-placements/internal/core/port"
	"mesa-placements/internal/metrics"
)

// Options carries the optional parts of the HTTP surface.
type Options struct {
	// Metrics records request counts and latencies; nil disables it.
	Metrics *metrics.Metrics
	// Gatherer is served on /metrics when set.
	Gatherer prometheus.Gatherer
	// TrackingRPS and TrackingBurst limit the public tracking endpoints per
	// client IP. A non-positive rate disables the limit.
	TrackingRPS   float64
	TrackingBurst int
	// RequestTimeout cancels the request context after the given duration.
	RequestTimeout time.Duration
	// Clock supplies "today" for date parameters that are omitted.
	Clock func() time.Time
}

// Handler is the inbound HTTP adapter. It decodes requests, calls the
// BookingUseCase and maps its errors onto status codes. Routes are
// registered on a chi.Router.
type Handler struct {
	svc     port.BookingUseCase
	tokens  *auth.JWTService
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	router  chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.BookingUseCase, tokens *auth.JWTService, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{
		svc:     svc,
		tokens:  tokens,
		logger:  logger,
		metrics: opts.Metrics,
		now:     opts.Clock,
	}
	if h.now == nil {
		h.now = time.Now
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP, requestID, h.recoverer, h.logRequests, h.instrument)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	r.Get("/health", h.handleHealth)
	if opts.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/regional-pricing", h.handleRegionalPricing)
		r.Get("/platforms/{platform}/active-ads", h.handleActiveAds)

		r.Group(func(r chi.Router) {
			r.Use(rateLimit(opts.TrackingRPS, opts.TrackingBurst))
			r.Post("/track/impression", h.handleTrackImpression)
			r.Post("/track/click", h.handleTrackClick)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)
			r.Get("/platforms", h.handleListPlatforms)
			r.Get("/platforms/{platform}/placements", h.handlePlatformPlacements)
			r.Get("/placements/{id}/availability", h.handlePlacementAvailability)
			r.Post("/calculate-pricing", h.handleCalculatePricing)
			r.Post("/bookings", h.handleCreateBooking)
			r.Get("/bookings", h.handleListBookings)
			r.Get("/bookings/{id}", h.handleGetBooking)
			r.With(requireRole(port.RoleAdmin)).Put("/bookings/{id}/status", h.handleUpdateBookingStatus)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

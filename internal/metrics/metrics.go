package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the Prometheus collectors of the service. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Engine metrics
	PricingCalculations *prometheus.CounterVec
	BookingsCreated     prometheus.Counter
	BookingConflicts    *prometheus.CounterVec
	StatusTransitions   *prometheus.CounterVec
	StoreFailures       *prometheus.CounterVec

	// Tracking metrics
	Impressions prometheus.Counter
	Clicks      prometheus.Counter
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"},
		),

		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		PricingCalculations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "placement_pricing_calculations_total",
				Help: "Pricing calculations by whether a regional multiplier matched",
			},
			[]string{"regional_match"},
		),

		BookingsCreated: f.NewCounter(
			prometheus.CounterOpts{
				Name: "placement_bookings_created_total",
				Help: "Bookings inserted as pending",
			},
		),

		BookingConflicts: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "placement_booking_conflicts_total",
				Help: "Booking writes rejected because the dates were occupied",
			},
			[]string{"operation"},
		),

		StatusTransitions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "placement_booking_status_transitions_total",
				Help: "Booking status transitions by target status",
			},
			[]string{"status"},
		),

		StoreFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "placement_store_failures_total",
				Help: "Persistence failures by operation",
			},
			[]string{"operation"},
		),

		Impressions: f.NewCounter(
			prometheus.CounterOpts{
				Name: "placement_ad_impressions_total",
				Help: "Tracked ad impressions",
			},
		),

		Clicks: f.NewCounter(
			prometheus.CounterOpts{
				Name: "placement_ad_clicks_total",
				Help: "Tracked ad clicks",
			},
		),
	}
}

// RecordHTTPRequest counts a served request.
func (m *Metrics) RecordHTTPRequest(method, route, statusCode string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) RecordPricing(regionalMatch bool) {
	if m == nil {
		return
	}
	label := "false"
	if regionalMatch {
		label = "true"
	}
	m.PricingCalculations.WithLabelValues(label).Inc()
}

func (m *Metrics) RecordBookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
}

func (m *Metrics) RecordConflict(operation string) {
	if m == nil {
		return
	}
	m.BookingConflicts.WithLabelValues(operation).Inc()
}

func (m *Metrics) RecordTransition(status string) {
	if m == nil {
		return
	}
	m.StatusTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordStoreFailure(operation string) {
	if m == nil {
		return
	}
	m.StoreFailures.WithLabelValues(operation).Inc()
}

func (m *Metrics) RecordImpression() {
	if m == nil {
		return
	}
	m.Impressions.Inc()
}

func (m *Metrics) RecordClick() {
	if m == nil {
		return
	}
	m.Clicks.Inc()
}

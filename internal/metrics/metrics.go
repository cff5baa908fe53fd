package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Cart check outcomes.
const (
	CartAccepted          = "accepted"
	CartNotFound          = "not_found"
	CartInsufficientStock = "insufficient_stock"
	CartError             = "error"
)

// Metrics holds the service collectors. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	seedInserted prometheus.Counter
	seedFailures prometheus.Counter
	cartChecks   *prometheus.CounterVec
}

// New registers the service metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		seedInserted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalog_seed_inserted_total",
			Help: "Products inserted by startup seeding.",
		}),
		seedFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalog_seed_failures_total",
			Help: "Startup seeding attempts that failed.",
		}),
		cartChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cart_checks_total",
			Help: "Cart stock checks by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.requests, m.duration, m.seedInserted, m.seedFailures, m.cartChecks)
	return m
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	route = normalizeLabel(route)
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// AddSeedInserted adds n to the seeded product counter.
func (m *Metrics) AddSeedInserted(n int) {
	if m == nil || m.seedInserted == nil {
		return
	}
	m.seedInserted.Add(float64(n))
}

// IncSeedFailure counts a failed seeding attempt.
func (m *Metrics) IncSeedFailure() {
	if m == nil || m.seedFailures == nil {
		return
	}
	m.seedFailures.Inc()
}

// IncCartCheck counts a cart check with the given outcome.
func (m *Metrics) IncCartCheck(outcome string) {
	if m == nil || m.cartChecks == nil {
		return
	}
	m.cartChecks.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

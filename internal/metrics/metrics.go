package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// Roast outcomes recorded by RoastsTotal.
const (
	OutcomeSuccess         = "success"
	OutcomeInvalidInput    = "invalid_input"
	OutcomeNotFound        = "not_found"
	OutcomeFetchError      = "fetch_error"
	OutcomeGenerationError = "generation_error"
)

// Metrics bundles the prometheus collectors of the service.
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestDurationSec *prometheus.HistogramVec
	RoastsTotal        *prometheus.CounterVec
	StageDurationSec   *prometheus.HistogramVec
	RateLimitDropped   prometheus.Counter
}

func New(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roaster_http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"route", "method", "status"}),
		RequestDurationSec: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roaster_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		RoastsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roaster_roasts_total",
			Help: "Total number of roast pipeline runs by outcome.",
		}, []string{"outcome"}),
		StageDurationSec: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roaster_stage_duration_seconds",
			Help:    "Duration of the remote pipeline stages in seconds.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"stage"}),
		RateLimitDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roaster_ratelimit_dropped_total",
			Help: "Total number of requests dropped by the rate limiter.",
		}),
	}

	registry.MustRegister(
		m.RequestsTotal,
		m.RequestDurationSec,
		m.RoastsTotal,
		m.StageDurationSec,
		m.RateLimitDropped,
	)

	return m
}

// ObserveStage records how long a pipeline stage took.
func (m *Metrics) ObserveStage(stage string, startedAt time.Time) {
	m.StageDurationSec.WithLabelValues(stage).Observe(time.Since(startedAt).Seconds())
}

// Middleware records request counts and latencies labelled by the matched chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startedAt := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		status := strconv.Itoa(wrapped.statusCode)
		route := routePattern(r)
		m.RequestsTotal.WithLabelValues(route, r.Method, status).Inc()
		m.RequestDurationSec.WithLabelValues(route, r.Method, status).Observe(time.Since(startedAt).Seconds())
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "other"
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecorder) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

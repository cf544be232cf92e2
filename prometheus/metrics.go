package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/maemanahmaemanah39-collab/venaules/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	AuthAttemptsCounter prometheus.Counter
	AuthSuccessCounter  prometheus.Counter
	AuthErrorsCounter   prometheus.CounterVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Entity CRUD metrics
	EntityOperationsCounter prometheus.CounterVec

	// Public form rate limiting
	RateLimitedCounter prometheus.Counter

	// Session lifecycle
	ActiveSessionsGauge prometheus.Gauge

	initialized bool
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.Config) {
	if initialized {
		return
	}
	initialized = true

	// Use metric prefix from configuration
	prefix := cfg.Metrics.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	AuthAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
	)

	AuthSuccessCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_success_total",
			Help: "Total number of successful authentications",
		},
	)

	AuthErrorsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors by reason",
		},
		[]string{"reason"},
	)

	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	EntityOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_entity_operations_total",
			Help: "Total number of entity CRUD operations",
		},
		[]string{"entity", "operation"},
	)

	RateLimitedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_rate_limited_total",
			Help: "Total number of public requests rejected by the rate limiter",
		},
	)

	ActiveSessionsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_active_sessions",
			Help: "Number of currently active sessions",
		},
	)
}

// RecordAuthError increments the auth error counter for a reason.
func RecordAuthError(reason string) {
	if !initialized {
		return
	}
	AuthErrorsCounter.WithLabelValues(reason).Inc()
}

// RecordEntityOperation increments the CRUD counter for an entity.
func RecordEntityOperation(entity, operation string) {
	if !initialized {
		return
	}
	EntityOperationsCounter.WithLabelValues(entity, operation).Inc()
}

// TrackDBOperation returns a function that records the elapsed time of a
// database operation. Use with defer: defer TrackDBOperation("query")(time.Now())
func TrackDBOperation(operationType string) func(time.Time) {
	return func(start time.Time) {
		if !initialized {
			return
		}
		DbOperationDuration.WithLabelValues(operationType).Observe(time.Since(start).Seconds())
	}
}

// GetPrometheusHandler returns the HTTP handler for the /metrics endpoint.
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

package prometheus

import (
	"net/http"
	"time"

	"maritime-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	AuthAttemptsCounter prometheus.Counter
	AuthSuccessCounter  prometheus.Counter
	AuthErrorsCounter   prometheus.Counter

	// Account metrics
	RegisterCounter     prometheus.Counter
	TokenIssuedCounter  prometheus.Counter
	AccountErrorCounter prometheus.CounterVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Entity operation metrics
	PortOperationsCounter     prometheus.CounterVec
	TerminalOperationsCounter prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.Config) {
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
			Help: "Total number of bearer token validations attempted",
		},
	)

	AuthSuccessCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_success_total",
			Help: "Total number of successful bearer token validations",
		},
	)

	AuthErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of rejected bearer tokens",
		},
	)

	RegisterCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_registrations_total",
			Help: "Total number of registration requests",
		},
	)

	TokenIssuedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_tokens_issued_total",
			Help: "Total number of tokens issued",
		},
	)

	AccountErrorCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_account_errors_total",
			Help: "Total number of failed account operations",
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

	PortOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_port_operations_total",
			Help: "Total number of port operations",
		},
		[]string{"operation"},
	)

	TerminalOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_terminal_operations_total",
			Help: "Total number of terminal operations",
		},
		[]string{"operation"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordPortOperation increments the counter for port operations
func RecordPortOperation(operation string) {
	PortOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordTerminalOperation increments the counter for terminal operations
func RecordTerminalOperation(operation string) {
	TerminalOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordAccountError increments the counter for failed account operations
func RecordAccountError(reason string) {
	AccountErrorCounter.WithLabelValues(reason).Inc()
}

// GetPrometheusHandler returns the handler serving the /metrics endpoint
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Entry outcomes recorded by the log entry service.
const (
	OutcomeCreated  = "created"
	OutcomeUpdated  = "updated"
	OutcomeDeleted  = "deleted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "calorie_tracker",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "calorie_tracker",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "calorie_tracker",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	entryOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "calorie_tracker",
			Subsystem: "log_entries",
			Name:      "operations_total",
			Help:      "Log entry mutations by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	validationMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "calorie_tracker",
			Subsystem: "log_entries",
			Name:      "validation_messages_total",
			Help:      "Validation messages returned to callers.",
		},
		[]string{"message"},
	)

	summaryRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "calorie_tracker",
			Subsystem: "summaries",
			Name:      "runs_total",
			Help:      "Daily summary job runs.",
		},
		[]string{"success"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		entryOperations,
		validationMessages,
		summaryRuns,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted increments the in-flight gauge and returns a func that records completion.
func RequestStarted(method, route string) func(status int) {
	start := time.Now()
	httpInFlight.Inc()
	return func(status int) {
		httpInFlight.Dec()
		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordEntryOperation counts one log entry mutation outcome.
func RecordEntryOperation(operation, outcome string) {
	entryOperations.WithLabelValues(operation, outcome).Inc()
}

// RecordValidationMessages counts each message of a rejected entry.
func RecordValidationMessages(messages []string) {
	for _, msg := range messages {
		validationMessages.WithLabelValues(msg).Inc()
	}
}

// RecordSummaryRun counts a summary job run.
func RecordSummaryRun(success bool) {
	summaryRuns.WithLabelValues(strconv.FormatBool(success)).Inc()
}

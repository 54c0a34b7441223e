package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Quotes priced, by training type and travel mode.
	QuoteCalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_calculations_total",
			Help: "Total number of quote breakdowns computed",
		},
		[]string{"training_type", "travel_mode"},
	)

	// Export attempts by format and outcome.
	QuoteExports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_exports_total",
			Help: "Total number of quote exports",
		},
		[]string{"format", "status"}, // status: success, failed
	)

	// Quote totals, for a rough view of what is being quoted.
	QuoteTotal = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quote_total_amount",
			Help:    "Grand total of computed quotes",
			Buckets: prometheus.ExponentialBuckets(100, 2, 12), // 100 to ~200k
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)
)

// RecordQuote counts a computed quote and observes its total.
func RecordQuote(trainingType, travelMode string, total float64) {
	QuoteCalculations.WithLabelValues(trainingType, travelMode).Inc()
	QuoteTotal.Observe(total)
}

// RecordExport counts an export attempt.
func RecordExport(format string, err error) {
	status := "success"
	if err != nil {
		status = "failed"
	}
	QuoteExports.WithLabelValues(format, status).Inc()
}

// RecordHTTPRequest observes a request's duration.
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const OutcomeSuccess = "success"

var (
	PaymentAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_payment_attempts_total",
			Help: "Payment session requests sent to the backend, by outcome",
		},
		[]string{"outcome"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_ms",
			Help:    "Duration of HTTP requests in ms",
			Buckets: []float64{5, 10, 25, 50, 100, 200, 400, 800, 1600},
		},
		[]string{"method", "path"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "checkout_active_sessions",
			Help: "Checkout view sessions currently held in memory",
		},
	)
)

// RecordPayment counts one payment attempt under outcome.
func RecordPayment(outcome string) {
	PaymentAttempts.WithLabelValues(outcome).Inc()
}

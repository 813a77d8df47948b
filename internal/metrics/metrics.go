package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CompletionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "support_completion_requests_total",
			Help: "Total number of completion API calls by outcome",
		},
		[]string{"outcome"},
	)

	CompletionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "support_completion_failures_total",
			Help: "Total number of failed completion API calls by failure kind",
		},
		[]string{"kind"},
	)

	CompletionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "support_completion_duration_seconds",
			Help:    "Duration of completion API calls in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)

	Lookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "support_lookups_total",
			Help: "Total number of product and order lookups by result",
		},
		[]string{"operation", "result"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "support_http_requests_total",
			Help: "Total number of HTTP requests served by the web widget",
		},
		[]string{"method", "route", "status"},
	)
)

// LookupResult returns the label value for a lookup outcome
func LookupResult(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

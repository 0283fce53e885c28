// Package metrics holds metric definitions shared across the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// HTTPRequestDuration observes served HTTP requests by method and status code.
var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
	Namespace: "unitconv",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "Duration of HTTP requests.",
	Buckets:   DefaultBuckets,
}, []string{"method", "code"})

// HistoryEntriesRecorded counts history entries written to storage.
var HistoryEntriesRecorded = promauto.NewCounter(prometheus.CounterOpts{ //nolint: gochecknoglobals
	Namespace: "unitconv",
	Subsystem: "history",
	Name:      "entries_recorded_total",
	Help:      "Number of conversions recorded into the history log.",
})

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	enrichmentResolveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledgerview",
		Subsystem: "enrichment",
		Name:      "resolve_total",
		Help:      "Count of investment enrichments by outcome.",
	}, []string{"outcome"})

	enrichmentResolveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ledgerview",
		Subsystem: "enrichment",
		Name:      "resolve_duration_seconds",
		Help:      "Duration of resolving a single investment.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})

	enrichmentStaleTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ledgerview",
		Subsystem: "enrichment",
		Name:      "stale_results_total",
		Help:      "Count of enrichment results dropped because the view moved on.",
	})
)

// Enrichment tracks metrics for the enrichment engine and its consumers.
type Enrichment struct{}

// NewEnrichment constructs an Enrichment collector.
func NewEnrichment() *Enrichment {
	return &Enrichment{}
}

// ObserveResolve records the outcome and duration of one resolution.
func (Enrichment) ObserveResolve(outcome string, started time.Time) {
	enrichmentResolveTotal.WithLabelValues(outcome).Inc()
	enrichmentResolveDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}

// ObserveStale records a result dropped for an outdated view generation.
func (Enrichment) ObserveStale() {
	enrichmentStaleTotal.Inc()
}

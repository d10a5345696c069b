package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolverResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "slotinsight",
		Subsystem: "resolver",
		Name:      "resolutions_total",
		Help:      "Count of cache-through resolutions by kind and outcome.",
	}, []string{"kind", "outcome"})

	resolverResolutionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "slotinsight",
		Subsystem: "resolver",
		Name:      "resolution_duration_seconds",
		Help:      "Duration of a single resolution.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "outcome"})

	resolverRangeItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "slotinsight",
		Subsystem: "resolver",
		Name:      "range_items_total",
		Help:      "Count of slots requested in ranged resolutions by status.",
	}, []string{"kind", "status"})

	resolverLogAppendFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "slotinsight",
		Subsystem: "resolver",
		Name:      "request_log_failures_total",
		Help:      "Count of request log entries that could not be written.",
	})
)

// Resolver tracks metrics for the cache-through resolver.
type Resolver struct{}

// NewResolver constructs a Resolver metrics collector.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ObserveResolve records one resolution. Outcome is hit, miss or error.
func (m Resolver) ObserveResolve(kind string, hit bool, err error, started time.Time) {
	outcome := "miss"
	switch {
	case err != nil:
		outcome = "error"
	case hit:
		outcome = "hit"
	}
	resolverResolutionsTotal.WithLabelValues(kind, outcome).Inc()
	resolverResolutionDuration.WithLabelValues(kind, outcome).Observe(time.Since(started).Seconds())
}

// ObserveRange records how many slots of a ranged resolution succeeded.
func (m Resolver) ObserveRange(kind string, requested, resolved int) {
	resolverRangeItems.WithLabelValues(kind, "success").Add(float64(resolved))
	if failed := requested - resolved; failed > 0 {
		resolverRangeItems.WithLabelValues(kind, "error").Add(float64(failed))
	}
}

// ObserveLogAppendFailure counts a swallowed request log failure.
func (m Resolver) ObserveLogAppendFailure() {
	resolverLogAppendFailures.Inc()
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	samplerAnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "slotinsight",
		Subsystem: "sampler",
		Name:      "analyses_total",
		Help:      "Count of range analyses by kind.",
	}, []string{"kind", "status"})

	samplerAnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "slotinsight",
		Subsystem: "sampler",
		Name:      "analysis_duration_seconds",
		Help:      "Duration of range analyses.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"kind", "status"})

	samplerFailedSlots = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "slotinsight",
		Subsystem: "sampler",
		Name:      "failed_slots_total",
		Help:      "Count of sampled slots that could not be resolved.",
	}, []string{"kind"})
)

// Sampler tracks metrics for range analyses.
type Sampler struct{}

// NewSampler constructs a Sampler metrics collector.
func NewSampler() *Sampler {
	return &Sampler{}
}

// ObserveAnalysis records one analysis with the number of sampled slots that failed.
func (m Sampler) ObserveAnalysis(kind string, err error, failed int, started time.Time) {
	status := statusOf(err)
	samplerAnalysesTotal.WithLabelValues(kind, status).Inc()
	samplerAnalysisDuration.WithLabelValues(kind, status).Observe(time.Since(started).Seconds())
	if failed > 0 {
		samplerFailedSlots.WithLabelValues(kind).Add(float64(failed))
	}
}

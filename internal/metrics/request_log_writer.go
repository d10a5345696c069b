package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestLogFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "slotinsight",
		Subsystem: "request_log_writer",
		Name:      "flush_total",
		Help:      "Count of request log batch flushes.",
	}, []string{"status"})

	requestLogFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "slotinsight",
		Subsystem: "request_log_writer",
		Name:      "flush_size",
		Help:      "Number of request log entries per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})

	requestLogFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "slotinsight",
		Subsystem: "request_log_writer",
		Name:      "flush_duration_seconds",
		Help:      "Duration of request log batch flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	requestLogDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "slotinsight",
		Subsystem: "request_log_writer",
		Name:      "dropped_total",
		Help:      "Count of request log entries that could not be queued.",
	})
)

// RequestLogWriter tracks metrics for buffered request log writes.
type RequestLogWriter struct{}

// NewRequestLogWriter constructs a RequestLogWriter metrics collector.
func NewRequestLogWriter() *RequestLogWriter {
	return &RequestLogWriter{}
}

// ObserveFlush records a batch flush outcome.
func (m RequestLogWriter) ObserveFlush(err error, size int, started time.Time) {
	status := statusOf(err)
	requestLogFlushTotal.WithLabelValues(status).Inc()
	requestLogFlushDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	requestLogFlushSize.Observe(float64(size))
}

// ObserveDropped counts an entry that was not queued.
func (m RequestLogWriter) ObserveDropped() {
	requestLogDropped.Inc()
}

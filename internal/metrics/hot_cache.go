package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	hotCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "slotinsight",
		Subsystem: "hot_cache",
		Name:      "hits_total",
		Help:      "Cache hits in the in-process LRU.",
	}, []string{"type"})

	hotCacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "slotinsight",
		Subsystem: "hot_cache",
		Name:      "misses_total",
		Help:      "Cache misses in the in-process LRU.",
	}, []string{"type"})
)

// HotCache tracks hit/miss counters of the in-process LRU layer.
type HotCache struct{}

// NewHotCache constructs a HotCache metrics collector.
func NewHotCache() *HotCache {
	return &HotCache{}
}

// Hit counts an LRU hit for a record type ("block" or "program_count").
func (m HotCache) Hit(recordType string) {
	hotCacheHits.WithLabelValues(recordType).Inc()
}

// Miss counts an LRU miss for a record type.
func (m HotCache) Miss(recordType string) {
	hotCacheMisses.WithLabelValues(recordType).Inc()
}

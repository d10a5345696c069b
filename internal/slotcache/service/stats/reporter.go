// Package stats reports cache usage.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
)

// CacheStatistics summarizes stored blocks and the request logs of a time window.
type CacheStatistics struct {
	Window              time.Duration
	TotalCachedRecords  uint64
	TotalRequests       uint64
	CacheHits           uint64
	CacheMisses         uint64
	CacheHitRatePercent float64
	AvgResponseTimeMs   float64
}

// Reporter combines block store counts with windowed request log aggregates.
type Reporter struct {
	blocks   BlockStore
	requests RequestStatsSource
}

// NewReporter constructs a Reporter.
func NewReporter(blocks BlockStore, requests RequestStatsSource) *Reporter {
	return &Reporter{blocks: blocks, requests: requests}
}

// CacheStatistics reports the stored block count and request log aggregates of the last window.
func (r *Reporter) CacheStatistics(ctx context.Context, window time.Duration) (CacheStatistics, error) {
	if window <= 0 {
		return CacheStatistics{}, fmt.Errorf("cache statistics: window %s must be positive: %w", window, model.ErrInvalidInput)
	}

	total, err := r.blocks.TotalBlockCount(ctx)
	if err != nil {
		return CacheStatistics{}, fmt.Errorf("total block count: %w", err)
	}
	req, err := r.requests.WindowedRequestStats(ctx, window)
	if err != nil {
		return CacheStatistics{}, fmt.Errorf("windowed request stats: %w", err)
	}

	s := CacheStatistics{
		Window:             window,
		TotalCachedRecords: total,
		TotalRequests:      req.TotalRequests,
		CacheHits:          req.CacheHits,
		AvgResponseTimeMs:  req.AvgResponseTimeMs,
	}
	if req.CacheHits < req.TotalRequests {
		s.CacheMisses = req.TotalRequests - req.CacheHits
	}
	if req.TotalRequests > 0 {
		s.CacheHitRatePercent = float64(req.CacheHits) / float64(req.TotalRequests) * 100
	}
	return s, nil
}

// RecentBlocks lists the most recently stored blocks, newest first.
func (r *Reporter) RecentBlocks(ctx context.Context, limit int) ([]model.Block, error) {
	blocks, err := r.blocks.RecentBlocks(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent blocks: %w", err)
	}
	return blocks, nil
}

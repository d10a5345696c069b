package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
)

const windowedRequestStatsQuery = `
SELECT
	count() AS total_requests,
	countIf(cache_hit) AS cache_hits,
	if(count() = 0, 0, avg(response_time_ms)) AS avg_response_time_ms
FROM api_request_logs
WHERE created_at > now64(3) - toIntervalMillisecond(?)`

// WindowedRequestStats aggregates request logs created within the window.
func (r *Repository) WindowedRequestStats(ctx context.Context, window time.Duration) (stats model.RequestStats, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("windowed_request_stats", err, start)
	}()

	row := r.conn.QueryRow(ctx, windowedRequestStatsQuery, window.Milliseconds())
	if err = row.Err(); err != nil {
		return model.RequestStats{}, fmt.Errorf("query windowed request stats: %w: %w", model.ErrStorage, err)
	}

	var (
		total uint64
		hits  uint64
		avg   float64
	)
	if err = row.Scan(&total, &hits, &avg); err != nil {
		return model.RequestStats{}, fmt.Errorf("scan windowed request stats: %w: %w", model.ErrStorage, err)
	}

	return model.RequestStats{TotalRequests: total, CacheHits: hits, AvgResponseTimeMs: avg}, nil
}

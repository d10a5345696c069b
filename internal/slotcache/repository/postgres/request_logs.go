package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
)

// AppendRequestLog appends one request log entry.
func (r *Repository) AppendRequestLog(ctx context.Context, entry model.RequestLog) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("append_request_log", err, start)
	}()

	dao, err := toRequestLogDao(entry)
	if err != nil {
		return fmt.Errorf("append request log: %w: %w", model.ErrInvalidInput, err)
	}
	if _, err = r.db.NewInsert().Model(dao).Exec(ctx); err != nil {
		return storageError("append request log", err)
	}
	return nil
}

// InsertRequestLogs appends request log entries in one statement.
func (r *Repository) InsertRequestLogs(ctx context.Context, entries []model.RequestLog) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_request_logs", err, start)
	}()

	if len(entries) == 0 {
		return nil
	}

	daos := make([]*requestLogDao, 0, len(entries))
	for _, e := range entries {
		dao, convErr := toRequestLogDao(e)
		if convErr != nil {
			err = fmt.Errorf("insert request logs: %w: %w", model.ErrInvalidInput, convErr)
			return err
		}
		daos = append(daos, dao)
	}
	if _, err = r.db.NewInsert().Model(&daos).Exec(ctx); err != nil {
		return storageError("insert request logs", err)
	}
	return nil
}

// WindowedRequestStats aggregates request logs created within the window, measured by the database clock.
func (r *Repository) WindowedRequestStats(ctx context.Context, window time.Duration) (stats model.RequestStats, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("windowed_request_stats", err, start)
	}()

	var (
		total int64
		hits  int64
		avg   float64
	)
	err = r.db.NewSelect().
		Model((*requestLogDao)(nil)).
		ColumnExpr("COUNT(*)").
		ColumnExpr("COUNT(*) FILTER (WHERE cache_hit)").
		ColumnExpr("COALESCE(AVG(response_time_ms), 0)::double precision").
		Where("created_at > now() - make_interval(secs => ?)", window.Seconds()).
		Scan(ctx, &total, &hits, &avg)
	if err != nil {
		return model.RequestStats{}, storageError("windowed request stats", err)
	}

	return model.RequestStats{
		TotalRequests:     uint64(total),
		CacheHits:         uint64(hits),
		AvgResponseTimeMs: avg,
	}, nil
}

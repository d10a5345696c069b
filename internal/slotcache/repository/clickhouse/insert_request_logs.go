package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
)

const insertRequestLogsQuery = `
INSERT INTO api_request_logs (
	endpoint,
	method,
	slot,
	cache_hit,
	response_time_ms,
	status_code,
	error_message,
	created_at
) VALUES`

// InsertRequestLogs appends request log rows. Rows without CreatedAt are stamped with the insert time.
func (r *Repository) InsertRequestLogs(ctx context.Context, entries []model.RequestLog) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_request_logs", err, start)
	}()

	if len(entries) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertRequestLogsQuery)
	if err != nil {
		return fmt.Errorf("prepare request logs batch: %w: %w", model.ErrStorage, err)
	}

	for _, e := range entries {
		createdAt := e.CreatedAt
		if createdAt.IsZero() {
			createdAt = start
		}
		var errorMessage *string
		if e.ErrorMessage != "" {
			msg := e.ErrorMessage
			errorMessage = &msg
		}
		if err = batch.Append(
			e.Endpoint,
			e.Method,
			e.Slot,
			e.CacheHit,
			e.ResponseTimeMs,
			e.StatusCode,
			errorMessage,
			createdAt.UTC(),
		); err != nil {
			return fmt.Errorf("append request log: %w: %w", model.ErrStorage, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert request logs: %w: %w", model.ErrStorage, err)
	}
	return nil
}

// AppendRequestLog writes a single entry.
func (r *Repository) AppendRequestLog(ctx context.Context, entry model.RequestLog) error {
	return r.InsertRequestLogs(ctx, []model.RequestLog{entry})
}

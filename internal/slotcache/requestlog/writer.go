// Package requestlog buffers request log entries and writes them to a sink in batches.
package requestlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/creasty/defaults"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
	"github.com/goodnatureofminers/slotinsight-backend/pkg/batcher"
	"go.uber.org/zap"
)

// BatchWriter queues request log entries without blocking callers and flushes them in the background.
type BatchWriter struct {
	sink    Sink
	metrics Metrics
	logger  *zap.Logger
	batcher *batcher.Batcher[model.RequestLog]
	now     func() time.Time
}

// NewBatchWriter constructs a BatchWriter. Zero fields of cfg take their defaults.
func NewBatchWriter(sink Sink, metrics Metrics, logger *zap.Logger, cfg Config) (*BatchWriter, error) {
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("set request log defaults: %w", err)
	}

	w := &BatchWriter{
		sink:    sink,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
	w.batcher = batcher.New[model.RequestLog](
		logger.Named("batcher"),
		w.flush,
		cfg.FlushSize,
		cfg.FlushInterval,
		cfg.FlushRPS,
	)
	return w, nil
}

// Start launches the flush loop.
func (w *BatchWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

// Stop flushes queued entries and waits for the loop to exit.
func (w *BatchWriter) Stop() {
	w.batcher.Stop()
}

// AppendRequestLog queues one entry. A full queue drops the entry and reports ErrStorage.
func (w *BatchWriter) AppendRequestLog(_ context.Context, entry model.RequestLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = w.now().UTC()
	}

	err := w.batcher.TryAdd(entry)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, batcher.ErrQueueFull), errors.Is(err, batcher.ErrStopped):
		w.metrics.ObserveDropped()
		return fmt.Errorf("queue request log: %w: %w", model.ErrStorage, err)
	default:
		return fmt.Errorf("queue request log: %w", err)
	}
}

func (w *BatchWriter) flush(ctx context.Context, entries []model.RequestLog) (err error) {
	started := time.Now()
	defer func() {
		w.metrics.ObserveFlush(err, len(entries), started)
	}()

	if err = w.sink.InsertRequestLogs(ctx, entries); err != nil {
		return fmt.Errorf("flush request logs: %w", err)
	}
	return nil
}

package requestlog

import (
	"context"
	"time"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Sink persists request log entries in bulk. It must not retain the slice.
	Sink interface {
		InsertRequestLogs(ctx context.Context, entries []model.RequestLog) error
	}
	Metrics interface {
		ObserveFlush(err error, size int, started time.Time)
		ObserveDropped()
	}
)

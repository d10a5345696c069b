package resolver

import (
	"context"
	"time"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockStore interface {
		GetBlock(ctx context.Context, slot uint64) (model.Block, bool, error)
		InsertBlock(ctx context.Context, block *model.Block) error
		GetProgramCount(ctx context.Context, slot uint64, programID string) (uint64, bool, error)
		InsertProgramCount(ctx context.Context, slot uint64, programID string, count uint64) (model.WriteOutcome, error)
		SlotForHeight(ctx context.Context, height uint64) (uint64, bool, error)
	}
	BlockSource interface {
		FetchBlock(ctx context.Context, slot uint64) (model.Block, error)
		CurrentSlot(ctx context.Context) (uint64, error)
		FetchProgramTransactionCount(ctx context.Context, slot uint64, programID string) (uint64, error)
	}
	RequestLogSink interface {
		AppendRequestLog(ctx context.Context, entry model.RequestLog) error
	}
	Metrics interface {
		ObserveResolve(kind string, hit bool, err error, started time.Time)
		ObserveRange(kind string, requested, resolved int)
		ObserveLogAppendFailure()
	}
)

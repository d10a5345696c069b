package stats

import (
	"context"
	"time"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockStore interface {
		TotalBlockCount(ctx context.Context) (uint64, error)
		RecentBlocks(ctx context.Context, limit int) ([]model.Block, error)
	}
	RequestStatsSource interface {
		WindowedRequestStats(ctx context.Context, window time.Duration) (model.RequestStats, error)
	}
)

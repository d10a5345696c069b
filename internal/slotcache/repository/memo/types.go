package memo

import (
	"context"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Backend is the durable cache being decorated.
	Backend interface {
		GetBlock(ctx context.Context, slot uint64) (model.Block, bool, error)
		InsertBlock(ctx context.Context, block *model.Block) error
		GetProgramCount(ctx context.Context, slot uint64, programID string) (uint64, bool, error)
		InsertProgramCount(ctx context.Context, slot uint64, programID string, count uint64) (model.WriteOutcome, error)
		SlotForHeight(ctx context.Context, height uint64) (uint64, bool, error)
	}
	Metrics interface {
		Hit(recordType string)
		Miss(recordType string)
	}
)

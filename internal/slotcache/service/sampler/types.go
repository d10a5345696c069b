package sampler

import (
	"context"
	"time"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/service/resolver"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Resolver interface {
		ResolveRange(ctx context.Context, slots []uint64) []resolver.BlockResult
		ResolveProgramRange(ctx context.Context, slots []uint64, programID string) []resolver.ProgramResult
	}
	Metrics interface {
		ObserveAnalysis(kind string, err error, failed int, started time.Time)
	}
)

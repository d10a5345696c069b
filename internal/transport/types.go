package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/service/sampler"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/service/stats"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Resolver interface {
		ResolveBlock(ctx context.Context, slot uint64) (model.Block, bool, error)
		ResolveBlockByHeight(ctx context.Context, height uint64) (model.Block, bool, error)
		CurrentSlot(ctx context.Context) (uint64, error)
		ResolveCurrent(ctx context.Context) (uint64, model.Block, bool, error)
	}
	Analyzer interface {
		AnalyzeRange(ctx context.Context, start, end uint64, sampleSize int) (sampler.RangeAnalysis, error)
		AnalyzeProgramRange(ctx context.Context, start, end uint64, programID string, sampleSize int) (sampler.ProgramRangeAnalysis, error)
		CompareEvent(ctx context.Context, event sampler.EventWindow, sampleSize int) (sampler.Comparison, error)
		CompareProgramEvent(ctx context.Context, event sampler.EventWindow, programID string, sampleSize int) (sampler.ProgramComparison, error)
	}
	Reporter interface {
		CacheStatistics(ctx context.Context, window time.Duration) (stats.CacheStatistics, error)
		RecentBlocks(ctx context.Context, limit int) ([]model.Block, error)
	}
	// RequestLogSink records requests rejected before reaching the resolver.
	RequestLogSink interface {
		AppendRequestLog(ctx context.Context, entry model.RequestLog) error
	}
	Pinger interface {
		Ping(ctx context.Context) error
	}
)

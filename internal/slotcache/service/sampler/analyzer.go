package sampler

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/service/resolver"
	"go.uber.org/zap"
)

const (
	kindRange          = "range"
	kindProgramRange   = "program_range"
	kindCompare        = "compare"
	kindProgramCompare = "program_compare"
)

// RangeAnalysis aggregates transaction counts of the sampled blocks of [Start, End).
// Aggregates of an empty sample are zero.
type RangeAnalysis struct {
	Start          uint64
	End            uint64
	SlotsRequested int
	BlocksSampled  int
	// FailedSlots counts sampled slots that could not be resolved; they are excluded from every aggregate.
	FailedSlots                 int
	TotalTransactions           uint64
	AverageTransactionsPerBlock float64
	MinTransactions             uint64
	MaxTransactions             uint64
	// EstimatedTotalTransactions extrapolates the sample average to every slot of the range.
	// It is an estimate, not a count.
	EstimatedTotalTransactions uint64
	CacheHits                  int
	CacheMisses                int
}

// ProgramRangeAnalysis aggregates program and network transaction counts of the sampled blocks of [Start, End).
type ProgramRangeAnalysis struct {
	Start                              uint64
	End                                uint64
	ProgramID                          string
	SlotsRequested                     int
	BlocksSampled                      int
	FailedSlots                        int
	TotalProgramTransactions           uint64
	TotalNetworkTransactions           uint64
	AverageProgramTransactionsPerBlock float64
	AverageNetworkTransactionsPerBlock float64
	// ProgramPercentage is the program share of all sampled transactions.
	ProgramPercentage      float64
	MinProgramTransactions uint64
	MaxProgramTransactions uint64
	// EstimatedTotalProgramTransactions extrapolates the sample average to every slot of the range.
	EstimatedTotalProgramTransactions uint64
	CacheHits                         int
	CacheMisses                       int
}

// Analyzer samples slot ranges and aggregates the resolved blocks.
type Analyzer struct {
	resolver   Resolver
	metrics    Metrics
	thresholds Thresholds
	logger     *zap.Logger
}

// NewAnalyzer builds an Analyzer. Thresholds are used as given; see DefaultThresholds.
func NewAnalyzer(resolver Resolver, metrics Metrics, thresholds Thresholds, logger *zap.Logger) (*Analyzer, error) {
	if metrics == nil {
		return nil, errors.New("sampler metrics is required")
	}
	if err := thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("validate thresholds: %w", err)
	}
	return &Analyzer{
		resolver:   resolver,
		metrics:    metrics,
		thresholds: thresholds,
		logger:     logger,
	}, nil
}

// Thresholds returns the thresholds used to classify comparisons.
func (a *Analyzer) Thresholds() Thresholds {
	return a.thresholds
}

// AnalyzeRange resolves a stride sample of [start, end) and aggregates transaction counts.
// Slots that fail to resolve are counted in FailedSlots.
func (a *Analyzer) AnalyzeRange(ctx context.Context, start, end uint64, sampleSize int) (analysis RangeAnalysis, err error) {
	started := time.Now()
	defer func() {
		a.metrics.ObserveAnalysis(kindRange, err, analysis.FailedSlots, started)
	}()

	slots, err := StrideSample(start, end, sampleSize)
	if err != nil {
		return RangeAnalysis{}, err
	}

	results := a.resolver.ResolveRange(ctx, slots)
	if err = ctx.Err(); err != nil {
		return RangeAnalysis{}, fmt.Errorf("analyze range [%d, %d): %w", start, end, err)
	}

	analysis = summarizeBlocks(start, end, len(slots), results)
	a.logger.Debug("range analyzed",
		zap.Uint64("start", start),
		zap.Uint64("end", end),
		zap.Int("sampled", analysis.BlocksSampled),
		zap.Int("failed", analysis.FailedSlots),
	)
	return analysis, nil
}

// AnalyzeProgramRange resolves a stride sample of [start, end) and aggregates transactions involving programID.
func (a *Analyzer) AnalyzeProgramRange(
	ctx context.Context,
	start, end uint64,
	programID string,
	sampleSize int,
) (analysis ProgramRangeAnalysis, err error) {
	started := time.Now()
	defer func() {
		a.metrics.ObserveAnalysis(kindProgramRange, err, analysis.FailedSlots, started)
	}()

	slots, err := StrideSample(start, end, sampleSize)
	if err != nil {
		return ProgramRangeAnalysis{}, err
	}

	results := a.resolver.ResolveProgramRange(ctx, slots, programID)
	if err = ctx.Err(); err != nil {
		return ProgramRangeAnalysis{}, fmt.Errorf("analyze program range [%d, %d): %w", start, end, err)
	}

	return summarizePrograms(start, end, programID, len(slots), results), nil
}

func summarizeBlocks(start, end uint64, requested int, results []resolver.BlockResult) RangeAnalysis {
	a := RangeAnalysis{
		Start:          start,
		End:            end,
		SlotsRequested: requested,
		BlocksSampled:  len(results),
		FailedSlots:    requested - len(results),
	}
	for i, res := range results {
		count := res.Block.TransactionCount
		a.TotalTransactions += count
		if i == 0 || count < a.MinTransactions {
			a.MinTransactions = count
		}
		if count > a.MaxTransactions {
			a.MaxTransactions = count
		}
		if res.Hit {
			a.CacheHits++
		} else {
			a.CacheMisses++
		}
	}
	a.AverageTransactionsPerBlock = average(a.TotalTransactions, a.BlocksSampled)
	a.EstimatedTotalTransactions = extrapolate(a.AverageTransactionsPerBlock, end-start)
	return a
}

func summarizePrograms(start, end uint64, programID string, requested int, results []resolver.ProgramResult) ProgramRangeAnalysis {
	a := ProgramRangeAnalysis{
		Start:          start,
		End:            end,
		ProgramID:      programID,
		SlotsRequested: requested,
		BlocksSampled:  len(results),
		FailedSlots:    requested - len(results),
	}
	for i, res := range results {
		a.TotalProgramTransactions += res.ProgramCount
		a.TotalNetworkTransactions += res.NetworkCount
		if i == 0 || res.ProgramCount < a.MinProgramTransactions {
			a.MinProgramTransactions = res.ProgramCount
		}
		if res.ProgramCount > a.MaxProgramTransactions {
			a.MaxProgramTransactions = res.ProgramCount
		}
		if res.Hit {
			a.CacheHits++
		} else {
			a.CacheMisses++
		}
	}
	a.AverageProgramTransactionsPerBlock = average(a.TotalProgramTransactions, a.BlocksSampled)
	a.AverageNetworkTransactionsPerBlock = average(a.TotalNetworkTransactions, a.BlocksSampled)
	if a.TotalNetworkTransactions > 0 {
		a.ProgramPercentage = float64(a.TotalProgramTransactions) / float64(a.TotalNetworkTransactions) * 100
	}
	a.EstimatedTotalProgramTransactions = extrapolate(a.AverageProgramTransactionsPerBlock, end-start)
	return a
}

func average(total uint64, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}

func extrapolate(avg float64, slots uint64) uint64 {
	est := math.Floor(avg * float64(slots))
	if est >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(est)
}

package sampler

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
	"github.com/goodnatureofminers/slotinsight-backend/pkg/workerpool"
)

const (
	periodPre = iota
	periodDuring
	periodPost
)

var periodNames = [...]string{"pre-event", "during-event", "post-event"}

// EventWindow is the slot range [Start, End) of an event.
type EventWindow struct {
	Start uint64
	End   uint64
}

// Period is a slot range [Start, End).
type Period struct {
	Start uint64
	End   uint64
}

// Periods returns the window before the event, the event itself and the window after it, all of equal length.
func (w EventWindow) Periods() ([3]Period, error) {
	if w.End <= w.Start {
		return [3]Period{}, fmt.Errorf("event window [%d, %d): end must be greater than start: %w", w.Start, w.End, model.ErrInvalidInput)
	}
	length := w.End - w.Start
	if length > w.Start {
		return [3]Period{}, fmt.Errorf("event window [%d, %d): no room for a pre-event window: %w", w.Start, w.End, model.ErrInvalidInput)
	}
	if w.End > math.MaxUint64-length {
		return [3]Period{}, fmt.Errorf("event window [%d, %d): post-event window overflows: %w", w.Start, w.End, model.ErrInvalidInput)
	}
	return [3]Period{
		periodPre:    {Start: w.Start - length, End: w.Start},
		periodDuring: {Start: w.Start, End: w.End},
		periodPost:   {Start: w.End, End: w.End + length},
	}, nil
}

// CacheSummary aggregates cache outcomes across the windows of a comparison.
type CacheSummary struct {
	Hits           int
	Misses         int
	HitRatePercent float64
}

// Comparison contrasts block activity during an event with equal-length windows before and after it.
// Percentage changes use PercentChange, so a zero baseline reports 0.
type Comparison struct {
	Event      EventWindow
	SampleSize int
	Pre        RangeAnalysis
	During     RangeAnalysis
	Post       RangeAnalysis
	// AverageChangePercent is the change of the average transactions per block during the event against before it.
	AverageChangePercent float64
	// TotalChangePercent is the same change over the extrapolated totals.
	TotalChangePercent float64
	// PostDuringChangePercent compares the post-event average against the event average.
	PostDuringChangePercent float64
	// RecoveryRatePercent compares the post-event average against the pre-event average.
	RecoveryRatePercent float64
	// EstimatedTransactionLoss is the extrapolated pre-event total minus the event total, floored at 0.
	EstimatedTransactionLoss uint64
	Severity                 Severity
	DisruptionDetected       bool
	FullyRecovered           bool
	Cache                    CacheSummary
}

// ProgramComparison contrasts program activity during an event with the windows before and after it.
type ProgramComparison struct {
	Event                    EventWindow
	ProgramID                string
	SampleSize               int
	Pre                      ProgramRangeAnalysis
	During                   ProgramRangeAnalysis
	Post                     ProgramRangeAnalysis
	AverageChangePercent     float64
	TotalChangePercent       float64
	PostDuringChangePercent  float64
	RecoveryRatePercent      float64
	MarketShareChangePercent float64
	EstimatedTransactionLoss uint64
	Severity                 Severity
	DisruptionDetected       bool
	FullyRecovered           bool
	Cache                    CacheSummary
}

// CompareEvent analyzes the three windows of event concurrently and compares them.
// The first window that fails aborts the comparison.
func (a *Analyzer) CompareEvent(ctx context.Context, event EventWindow, sampleSize int) (cmp Comparison, err error) {
	started := time.Now()
	defer func() {
		a.metrics.ObserveAnalysis(kindCompare, err, cmp.Pre.FailedSlots+cmp.During.FailedSlots+cmp.Post.FailedSlots, started)
	}()

	periods, err := event.Periods()
	if err != nil {
		return Comparison{}, err
	}

	var analyses [3]RangeAnalysis
	err = workerpool.Process(ctx, len(periods), []int{periodPre, periodDuring, periodPost}, func(ctx context.Context, i int) error {
		res, err := a.AnalyzeRange(ctx, periods[i].Start, periods[i].End, sampleSize)
		if err != nil {
			return fmt.Errorf("analyze %s window: %w", periodNames[i], err)
		}
		analyses[i] = res
		return nil
	}, nil)
	if err != nil {
		return Comparison{}, fmt.Errorf("compare event: %w", err)
	}

	pre, during, post := analyses[periodPre], analyses[periodDuring], analyses[periodPost]
	cmp = Comparison{
		Event:                    event,
		SampleSize:               sampleSize,
		Pre:                      pre,
		During:                   during,
		Post:                     post,
		AverageChangePercent:     PercentChange(during.AverageTransactionsPerBlock, pre.AverageTransactionsPerBlock),
		TotalChangePercent:       PercentChange(float64(during.EstimatedTotalTransactions), float64(pre.EstimatedTotalTransactions)),
		PostDuringChangePercent:  PercentChange(post.AverageTransactionsPerBlock, during.AverageTransactionsPerBlock),
		RecoveryRatePercent:      PercentChange(post.AverageTransactionsPerBlock, pre.AverageTransactionsPerBlock),
		EstimatedTransactionLoss: loss(pre.EstimatedTotalTransactions, during.EstimatedTotalTransactions),
		Cache: summarizeCache(
			pre.CacheHits+during.CacheHits+post.CacheHits,
			pre.CacheMisses+during.CacheMisses+post.CacheMisses,
		),
	}
	cmp.Severity, cmp.DisruptionDetected = a.thresholds.Classify(cmp.AverageChangePercent)
	cmp.FullyRecovered = a.thresholds.Recovered(cmp.RecoveryRatePercent)
	return cmp, nil
}

// CompareProgramEvent is CompareEvent over transactions involving programID.
func (a *Analyzer) CompareProgramEvent(
	ctx context.Context,
	event EventWindow,
	programID string,
	sampleSize int,
) (cmp ProgramComparison, err error) {
	started := time.Now()
	defer func() {
		a.metrics.ObserveAnalysis(kindProgramCompare, err, cmp.Pre.FailedSlots+cmp.During.FailedSlots+cmp.Post.FailedSlots, started)
	}()

	if programID == "" {
		return ProgramComparison{}, fmt.Errorf("compare program event: empty program id: %w", model.ErrInvalidInput)
	}
	periods, err := event.Periods()
	if err != nil {
		return ProgramComparison{}, err
	}

	var analyses [3]ProgramRangeAnalysis
	err = workerpool.Process(ctx, len(periods), []int{periodPre, periodDuring, periodPost}, func(ctx context.Context, i int) error {
		res, err := a.AnalyzeProgramRange(ctx, periods[i].Start, periods[i].End, programID, sampleSize)
		if err != nil {
			return fmt.Errorf("analyze %s window: %w", periodNames[i], err)
		}
		analyses[i] = res
		return nil
	}, nil)
	if err != nil {
		return ProgramComparison{}, fmt.Errorf("compare program event: %w", err)
	}

	pre, during, post := analyses[periodPre], analyses[periodDuring], analyses[periodPost]
	cmp = ProgramComparison{
		Event:                    event,
		ProgramID:                programID,
		SampleSize:               sampleSize,
		Pre:                      pre,
		During:                   during,
		Post:                     post,
		AverageChangePercent:     PercentChange(during.AverageProgramTransactionsPerBlock, pre.AverageProgramTransactionsPerBlock),
		TotalChangePercent:       PercentChange(float64(during.EstimatedTotalProgramTransactions), float64(pre.EstimatedTotalProgramTransactions)),
		PostDuringChangePercent:  PercentChange(post.AverageProgramTransactionsPerBlock, during.AverageProgramTransactionsPerBlock),
		RecoveryRatePercent:      PercentChange(post.AverageProgramTransactionsPerBlock, pre.AverageProgramTransactionsPerBlock),
		MarketShareChangePercent: PercentChange(during.ProgramPercentage, pre.ProgramPercentage),
		EstimatedTransactionLoss: loss(pre.EstimatedTotalProgramTransactions, during.EstimatedTotalProgramTransactions),
		Cache: summarizeCache(
			pre.CacheHits+during.CacheHits+post.CacheHits,
			pre.CacheMisses+during.CacheMisses+post.CacheMisses,
		),
	}
	cmp.Severity, cmp.DisruptionDetected = a.thresholds.Classify(cmp.AverageChangePercent)
	cmp.FullyRecovered = a.thresholds.Recovered(cmp.RecoveryRatePercent)
	return cmp, nil
}

func loss(baseline, current uint64) uint64 {
	if current >= baseline {
		return 0
	}
	return baseline - current
}

func summarizeCache(hits, misses int) CacheSummary {
	s := CacheSummary{Hits: hits, Misses: misses}
	if total := hits + misses; total > 0 {
		s.HitRatePercent = float64(hits) / float64(total) * 100
	}
	return s
}

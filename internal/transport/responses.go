package transport

import (
	"time"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/service/sampler"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/service/stats"
	"github.com/shopspring/decimal"
)

const estimateNote = "estimated totals extrapolate the sampled average to every slot of the range; they are not exact counts"

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type blockResponse struct {
	Slot              uint64         `json:"slot"`
	BlockHeight       *uint64        `json:"blockHeight"`
	BlockTime         *int64         `json:"blockTime"`
	Blockhash         string         `json:"blockhash"`
	PreviousBlockhash string         `json:"previousBlockhash"`
	ParentSlot        uint64         `json:"parentSlot"`
	TransactionCount  uint64         `json:"transactionCount"`
	Rewards           []model.Reward `json:"rewards"`
	Cached            bool           `json:"cached"`
	CachedAt          time.Time      `json:"cachedAt"`
}

func newBlockResponse(b model.Block, hit bool) blockResponse {
	return blockResponse{
		Slot:              b.Slot,
		BlockHeight:       b.Height,
		BlockTime:         b.Time,
		Blockhash:         b.Hash,
		PreviousBlockhash: b.PreviousHash,
		ParentSlot:        b.ParentSlot,
		TransactionCount:  b.TransactionCount,
		Rewards:           b.Rewards,
		Cached:            hit,
		CachedAt:          b.CreatedAt,
	}
}

type currentSlotResponse struct {
	CurrentSlot uint64         `json:"currentSlot"`
	Timestamp   int64          `json:"timestamp"`
	Block       *blockResponse `json:"block,omitempty"`
}

type recentBlockResponse struct {
	Slot             uint64    `json:"slot"`
	BlockHeight      *uint64   `json:"blockHeight"`
	BlockTime        *int64    `json:"blockTime"`
	TransactionCount uint64    `json:"transactionCount"`
	Blockhash        string    `json:"blockhash"`
	CachedAt         time.Time `json:"cachedAt"`
}

type recentBlocksResponse struct {
	Stats        statsBody             `json:"stats"`
	RecentBlocks []recentBlockResponse `json:"recentBlocks"`
	Count        int                   `json:"count"`
}

type statsBody struct {
	TotalCachedBlocks uint64      `json:"totalCachedBlocks"`
	Window            windowStats `json:"window"`
}

type windowStats struct {
	WindowSeconds     int64   `json:"windowSeconds"`
	TotalRequests     uint64  `json:"totalRequests"`
	CacheHits         uint64  `json:"cacheHits"`
	CacheMisses       uint64  `json:"cacheMisses"`
	CacheHitRate      string  `json:"cacheHitRate"`
	AvgResponseTimeMs float64 `json:"avgResponseTimeMs"`
}

func newStatsBody(s stats.CacheStatistics) statsBody {
	return statsBody{
		TotalCachedBlocks: s.TotalCachedRecords,
		Window: windowStats{
			WindowSeconds:     int64(s.Window / time.Second),
			TotalRequests:     s.TotalRequests,
			CacheHits:         s.CacheHits,
			CacheMisses:       s.CacheMisses,
			CacheHitRate:      percent(s.CacheHitRatePercent),
			AvgResponseTimeMs: s.AvgResponseTimeMs,
		},
	}
}

type statsResponse struct {
	Stats     statsBody `json:"stats"`
	Timestamp int64     `json:"timestamp"`
}

type slotRange struct {
	Start uint64 `json:"start"`
	End   uint64 `json:"end"`
}

type rangeMetrics struct {
	SlotsRequested              int    `json:"slotsRequested"`
	TotalBlocksSampled          int    `json:"totalBlocksSampled"`
	FailedSlots                 int    `json:"failedSlots"`
	TotalTransactions           uint64 `json:"totalTransactions"`
	AverageTransactionsPerBlock string `json:"averageTransactionsPerBlock"`
	MinTransactions             uint64 `json:"minTransactions"`
	MaxTransactions             uint64 `json:"maxTransactions"`
	EstimatedTotalTransactions  uint64 `json:"estimatedTotalTransactions"`
	CacheHits                   int    `json:"cacheHits"`
	CacheMisses                 int    `json:"cacheMisses"`
}

func newRangeMetrics(a sampler.RangeAnalysis) rangeMetrics {
	return rangeMetrics{
		SlotsRequested:              a.SlotsRequested,
		TotalBlocksSampled:          a.BlocksSampled,
		FailedSlots:                 a.FailedSlots,
		TotalTransactions:           a.TotalTransactions,
		AverageTransactionsPerBlock: fixed(a.AverageTransactionsPerBlock),
		MinTransactions:             a.MinTransactions,
		MaxTransactions:             a.MaxTransactions,
		EstimatedTotalTransactions:  a.EstimatedTotalTransactions,
		CacheHits:                   a.CacheHits,
		CacheMisses:                 a.CacheMisses,
	}
}

type rangeResponse struct {
	SlotRange  slotRange    `json:"slotRange"`
	SampleSize int          `json:"sampleSize"`
	Metrics    rangeMetrics `json:"metrics"`
	Note       string       `json:"note"`
}

type programMetrics struct {
	SlotsRequested                     int    `json:"slotsRequested"`
	TotalBlocksSampled                 int    `json:"totalBlocksSampled"`
	FailedSlots                        int    `json:"failedSlots"`
	TotalProgramTransactions           uint64 `json:"totalProgramTransactions"`
	TotalNetworkTransactions           uint64 `json:"totalNetworkTransactions"`
	AverageProgramTransactionsPerBlock string `json:"averageProgramTransactionsPerBlock"`
	AverageNetworkTransactionsPerBlock string `json:"averageNetworkTransactionsPerBlock"`
	ProgramPercentage                  string `json:"programPercentageOfNetwork"`
	MinProgramTransactions             uint64 `json:"minProgramTransactions"`
	MaxProgramTransactions             uint64 `json:"maxProgramTransactions"`
	EstimatedTotalProgramTransactions  uint64 `json:"estimatedTotalProgramTransactions"`
	CacheHits                          int    `json:"cacheHits"`
	CacheMisses                        int    `json:"cacheMisses"`
}

func newProgramMetrics(a sampler.ProgramRangeAnalysis) programMetrics {
	return programMetrics{
		SlotsRequested:                     a.SlotsRequested,
		TotalBlocksSampled:                 a.BlocksSampled,
		FailedSlots:                        a.FailedSlots,
		TotalProgramTransactions:           a.TotalProgramTransactions,
		TotalNetworkTransactions:           a.TotalNetworkTransactions,
		AverageProgramTransactionsPerBlock: fixed(a.AverageProgramTransactionsPerBlock),
		AverageNetworkTransactionsPerBlock: fixed(a.AverageNetworkTransactionsPerBlock),
		ProgramPercentage:                  percent(a.ProgramPercentage),
		MinProgramTransactions:             a.MinProgramTransactions,
		MaxProgramTransactions:             a.MaxProgramTransactions,
		EstimatedTotalProgramTransactions:  a.EstimatedTotalProgramTransactions,
		CacheHits:                          a.CacheHits,
		CacheMisses:                        a.CacheMisses,
	}
}

type programRangeResponse struct {
	ProgramID  string         `json:"programId"`
	SlotRange  slotRange      `json:"slotRange"`
	SampleSize int            `json:"sampleSize"`
	Metrics    programMetrics `json:"metrics"`
	Note       string         `json:"note"`
}

type impactAnalysis struct {
	DisruptionDetected        bool   `json:"disruptionDetected"`
	DisruptionSeverity        string `json:"disruptionSeverity"`
	FullyRecovered            bool   `json:"fullyRecovered"`
	TransactionDropPercentage string `json:"transactionDropPercentage"`
	EstimatedTransactionLoss  uint64 `json:"estimatedTransactionLoss"`
	MarketShareImpact         string `json:"marketShareImpact,omitempty"`
}

type changeFromBaseline struct {
	AvgTransactionsPerBlock string `json:"avgTransactionsPerBlock"`
	TotalTransactions       string `json:"totalTransactions"`
	MarketShare             string `json:"marketShare,omitempty"`
}

type period[M any] struct {
	SlotRange          slotRange           `json:"slotRange"`
	Metrics            M                   `json:"metrics"`
	ChangeFromBaseline *changeFromBaseline `json:"changeFromBaseline,omitempty"`
	RecoveryRate       string              `json:"recoveryRate,omitempty"`
}

type periods[M any] struct {
	PreEvent    period[M] `json:"preEvent"`
	DuringEvent period[M] `json:"duringEvent"`
	PostEvent   period[M] `json:"postEvent"`
}

type averageChange struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Change string `json:"change"`
}

type comparisonBody struct {
	PreVsDuring  averageChange `json:"preVsDuring"`
	DuringVsPost averageChange `json:"duringVsPost"`
	PreVsPost    averageChange `json:"preVsPost"`
	Recovered    bool          `json:"recovered"`
}

type cacheSummary struct {
	TotalCacheHits   int    `json:"totalCacheHits"`
	TotalCacheMisses int    `json:"totalCacheMisses"`
	CacheHitRate     string `json:"cacheHitRate"`
}

type comparisonMetadata struct {
	SampleSize          int          `json:"sampleSize"`
	TotalBlocksAnalyzed int          `json:"totalBlocksAnalyzed"`
	FailedSlots         int          `json:"failedSlots"`
	CacheStatistics     cacheSummary `json:"cacheStatistics"`
	ResponseTimeMs      int64        `json:"responseTimeMs"`
	Note                string       `json:"note"`
}

type comparisonResponse[M any] struct {
	ProgramID   string             `json:"programId,omitempty"`
	EventWindow slotRange          `json:"eventWindow"`
	Analysis    impactAnalysis     `json:"analysis"`
	Periods     periods[M]         `json:"periods"`
	Comparison  comparisonBody     `json:"comparison"`
	Metadata    comparisonMetadata `json:"metadata"`
}

func newComparisonResponse(c sampler.Comparison, elapsed time.Duration) comparisonResponse[rangeMetrics] {
	return comparisonResponse[rangeMetrics]{
		EventWindow: slotRange{Start: c.Event.Start, End: c.Event.End},
		Analysis: impactAnalysis{
			DisruptionDetected:        c.DisruptionDetected,
			DisruptionSeverity:        string(c.Severity),
			FullyRecovered:            c.FullyRecovered,
			TransactionDropPercentage: fixed(c.AverageChangePercent),
			EstimatedTransactionLoss:  c.EstimatedTransactionLoss,
		},
		Periods: periods[rangeMetrics]{
			PreEvent: period[rangeMetrics]{
				SlotRange: slotRange{Start: c.Pre.Start, End: c.Pre.End},
				Metrics:   newRangeMetrics(c.Pre),
			},
			DuringEvent: period[rangeMetrics]{
				SlotRange: slotRange{Start: c.During.Start, End: c.During.End},
				Metrics:   newRangeMetrics(c.During),
				ChangeFromBaseline: &changeFromBaseline{
					AvgTransactionsPerBlock: percent(c.AverageChangePercent),
					TotalTransactions:       percent(c.TotalChangePercent),
				},
			},
			PostEvent: period[rangeMetrics]{
				SlotRange:    slotRange{Start: c.Post.Start, End: c.Post.End},
				Metrics:      newRangeMetrics(c.Post),
				RecoveryRate: percent(c.RecoveryRatePercent),
			},
		},
		Comparison: comparisonBody{
			PreVsDuring:  averageChange{From: fixed(c.Pre.AverageTransactionsPerBlock), To: fixed(c.During.AverageTransactionsPerBlock), Change: percent(c.AverageChangePercent)},
			DuringVsPost: averageChange{From: fixed(c.During.AverageTransactionsPerBlock), To: fixed(c.Post.AverageTransactionsPerBlock), Change: percent(c.PostDuringChangePercent)},
			PreVsPost:    averageChange{From: fixed(c.Pre.AverageTransactionsPerBlock), To: fixed(c.Post.AverageTransactionsPerBlock), Change: percent(c.RecoveryRatePercent)},
			Recovered:    c.FullyRecovered,
		},
		Metadata: comparisonMetadata{
			SampleSize:          c.SampleSize,
			TotalBlocksAnalyzed: c.Pre.BlocksSampled + c.During.BlocksSampled + c.Post.BlocksSampled,
			FailedSlots:         c.Pre.FailedSlots + c.During.FailedSlots + c.Post.FailedSlots,
			CacheStatistics:     newCacheSummary(c.Cache),
			ResponseTimeMs:      elapsed.Milliseconds(),
			Note:                estimateNote,
		},
	}
}

func newProgramComparisonResponse(c sampler.ProgramComparison, elapsed time.Duration) comparisonResponse[programMetrics] {
	return comparisonResponse[programMetrics]{
		ProgramID:   c.ProgramID,
		EventWindow: slotRange{Start: c.Event.Start, End: c.Event.End},
		Analysis: impactAnalysis{
			DisruptionDetected:        c.DisruptionDetected,
			DisruptionSeverity:        string(c.Severity),
			FullyRecovered:            c.FullyRecovered,
			TransactionDropPercentage: fixed(c.AverageChangePercent),
			EstimatedTransactionLoss:  c.EstimatedTransactionLoss,
			MarketShareImpact:         fixed(c.MarketShareChangePercent),
		},
		Periods: periods[programMetrics]{
			PreEvent: period[programMetrics]{
				SlotRange: slotRange{Start: c.Pre.Start, End: c.Pre.End},
				Metrics:   newProgramMetrics(c.Pre),
			},
			DuringEvent: period[programMetrics]{
				SlotRange: slotRange{Start: c.During.Start, End: c.During.End},
				Metrics:   newProgramMetrics(c.During),
				ChangeFromBaseline: &changeFromBaseline{
					AvgTransactionsPerBlock: percent(c.AverageChangePercent),
					TotalTransactions:       percent(c.TotalChangePercent),
					MarketShare:             percent(c.MarketShareChangePercent),
				},
			},
			PostEvent: period[programMetrics]{
				SlotRange:    slotRange{Start: c.Post.Start, End: c.Post.End},
				Metrics:      newProgramMetrics(c.Post),
				RecoveryRate: percent(c.RecoveryRatePercent),
			},
		},
		Comparison: comparisonBody{
			PreVsDuring:  averageChange{From: fixed(c.Pre.AverageProgramTransactionsPerBlock), To: fixed(c.During.AverageProgramTransactionsPerBlock), Change: percent(c.AverageChangePercent)},
			DuringVsPost: averageChange{From: fixed(c.During.AverageProgramTransactionsPerBlock), To: fixed(c.Post.AverageProgramTransactionsPerBlock), Change: percent(c.PostDuringChangePercent)},
			PreVsPost:    averageChange{From: fixed(c.Pre.AverageProgramTransactionsPerBlock), To: fixed(c.Post.AverageProgramTransactionsPerBlock), Change: percent(c.RecoveryRatePercent)},
			Recovered:    c.FullyRecovered,
		},
		Metadata: comparisonMetadata{
			SampleSize:          c.SampleSize,
			TotalBlocksAnalyzed: c.Pre.BlocksSampled + c.During.BlocksSampled + c.Post.BlocksSampled,
			FailedSlots:         c.Pre.FailedSlots + c.During.FailedSlots + c.Post.FailedSlots,
			CacheStatistics:     newCacheSummary(c.Cache),
			ResponseTimeMs:      elapsed.Milliseconds(),
			Note:                estimateNote,
		},
	}
}

func newCacheSummary(c sampler.CacheSummary) cacheSummary {
	return cacheSummary{
		TotalCacheHits:   c.Hits,
		TotalCacheMisses: c.Misses,
		CacheHitRate:     percent(c.HitRatePercent),
	}
}

// fixed formats v with two decimals.
func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func percent(v float64) string {
	return fixed(v) + "%"
}

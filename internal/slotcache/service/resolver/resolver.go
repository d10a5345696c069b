// Package resolver is the single read-through path from slots to block data.
// A stored record is authoritative and never refetched.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/creasty/defaults"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
	"github.com/goodnatureofminers/slotinsight-backend/pkg/workerpool"
	"go.uber.org/zap"
)

// BlockResult is one resolved block of a ranged resolution.
type BlockResult struct {
	Block model.Block
	Hit   bool
}

// ProgramResult is one resolved slot of a program-filtered ranged resolution.
// Hit reflects the program count lookup.
type ProgramResult struct {
	Slot         uint64
	ProgramCount uint64
	NetworkCount uint64
	Hit          bool
}

// Resolver reads blocks and program counts through the store, fetching and storing them on a miss.
type Resolver struct {
	store            BlockStore
	source           BlockSource
	logs             RequestLogSink
	metrics          Metrics
	logger           *zap.Logger
	batchSize        int
	programBatchSize int
	now              func() time.Time
}

// New builds a Resolver. Zero fields of cfg take their defaults; batch sizes are clamped to 1..10.
func New(
	store BlockStore,
	source BlockSource,
	logs RequestLogSink,
	metrics Metrics,
	logger *zap.Logger,
	cfg Config,
) (*Resolver, error) {
	if metrics == nil {
		return nil, errors.New("resolver metrics is required")
	}
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("set resolver defaults: %w", err)
	}

	return &Resolver{
		store:            store,
		source:           source,
		logs:             logs,
		metrics:          metrics,
		logger:           logger,
		batchSize:        clampBatchSize(cfg.BatchSize),
		programBatchSize: clampBatchSize(cfg.ProgramBatchSize),
		now:              time.Now,
	}, nil
}

// ResolveBlock returns the block at slot and whether it was already cached.
func (r *Resolver) ResolveBlock(ctx context.Context, slot uint64) (block model.Block, hit bool, err error) {
	started := time.Now()
	defer func() {
		r.record(ctx, "resolve_block", kindBlock, &slot, hit, err, started)
	}()

	return r.resolveBlock(ctx, slot)
}

// ResolveProgramCount returns how many transactions at slot involve programID and whether it was already cached.
func (r *Resolver) ResolveProgramCount(ctx context.Context, slot uint64, programID string) (count uint64, hit bool, err error) {
	started := time.Now()
	defer func() {
		r.record(ctx, "resolve_program_count", kindProgram, &slot, hit, err, started)
	}()

	if programID == "" {
		return 0, false, fmt.Errorf("resolve program count: empty program id: %w", model.ErrInvalidInput)
	}

	count, found, err := r.store.GetProgramCount(ctx, slot, programID)
	if err != nil {
		return 0, false, fmt.Errorf("get program count %d: %w", slot, err)
	}
	if found {
		return count, true, nil
	}

	fetched, err := r.source.FetchProgramTransactionCount(ctx, slot, programID)
	if err != nil {
		return 0, false, fmt.Errorf("fetch program count %d: %w", slot, err)
	}

	outcome, err := r.store.InsertProgramCount(ctx, slot, programID, fetched)
	if err != nil {
		return 0, false, fmt.Errorf("insert program count %d: %w", slot, err)
	}
	if outcome == model.Inserted {
		return fetched, false, nil
	}

	r.logger.Debug("program count stored concurrently, re-reading", zap.Uint64("slot", slot), zap.String("program", programID))
	stored, found, err := r.store.GetProgramCount(ctx, slot, programID)
	if err != nil {
		return 0, false, fmt.Errorf("re-read program count %d: %w", slot, err)
	}
	if !found {
		return 0, false, fmt.Errorf("re-read program count %d: missing after conflict: %w", slot, model.ErrStorage)
	}
	return stored, false, nil
}

// ResolveRange resolves slots in sequential batches of concurrent lookups.
// Failed slots are logged and omitted; the result is sorted by ascending slot.
func (r *Resolver) ResolveRange(ctx context.Context, slots []uint64) []BlockResult {
	results := workerpool.Batches(ctx, r.batchSize, slots, func(ctx context.Context, slot uint64) (BlockResult, error) {
		block, hit, err := r.ResolveBlock(ctx, slot)
		return BlockResult{Block: block, Hit: hit}, err
	})

	out := make([]BlockResult, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			r.logger.Warn("slot not resolved", zap.Uint64("slot", res.Item), zap.Error(res.Err))
			continue
		}
		out = append(out, res.Value)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Block.Slot < out[j].Block.Slot })

	r.metrics.ObserveRange(kindBlock, len(slots), len(out))
	return out
}

// ResolveProgramRange resolves the program count and the network transaction count of every slot.
// Failed slots are logged and omitted; the result is sorted by ascending slot.
func (r *Resolver) ResolveProgramRange(ctx context.Context, slots []uint64, programID string) []ProgramResult {
	results := workerpool.Batches(ctx, r.programBatchSize, slots, func(ctx context.Context, slot uint64) (ProgramResult, error) {
		count, hit, err := r.ResolveProgramCount(ctx, slot, programID)
		if err != nil {
			return ProgramResult{}, err
		}
		block, _, err := r.ResolveBlock(ctx, slot)
		if err != nil {
			return ProgramResult{}, err
		}
		return ProgramResult{
			Slot:         slot,
			ProgramCount: count,
			NetworkCount: block.TransactionCount,
			Hit:          hit,
		}, nil
	})

	out := make([]ProgramResult, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			r.logger.Warn("slot not resolved",
				zap.Uint64("slot", res.Item),
				zap.String("program", programID),
				zap.Error(res.Err),
			)
			continue
		}
		out = append(out, res.Value)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })

	r.metrics.ObserveRange(kindProgram, len(slots), len(out))
	return out
}

// CurrentSlot returns the highest slot known upstream.
func (r *Resolver) CurrentSlot(ctx context.Context) (uint64, error) {
	slot, err := r.source.CurrentSlot(ctx)
	if err != nil {
		return 0, fmt.Errorf("current slot: %w", err)
	}
	return slot, nil
}

// ResolveCurrent resolves the block at the current slot.
func (r *Resolver) ResolveCurrent(ctx context.Context) (slot uint64, block model.Block, hit bool, err error) {
	slot, err = r.CurrentSlot(ctx)
	if err != nil {
		return 0, model.Block{}, false, err
	}
	block, hit, err = r.ResolveBlock(ctx, slot)
	return slot, block, hit, err
}

// ResolveBlockByHeight resolves a block through the height index of stored blocks.
// Heights without an indexed block fail with model.ErrHeightNotIndexed.
func (r *Resolver) ResolveBlockByHeight(ctx context.Context, height uint64) (block model.Block, hit bool, err error) {
	started := time.Now()
	var slotRef *uint64
	defer func() {
		r.record(ctx, "resolve_block_by_height", kindHeight, slotRef, hit, err, started)
	}()

	slot, found, err := r.store.SlotForHeight(ctx, height)
	if err != nil {
		return model.Block{}, false, fmt.Errorf("slot for height %d: %w", height, err)
	}
	if !found {
		return model.Block{}, false, fmt.Errorf("resolve height %d: %w", height, model.ErrHeightNotIndexed)
	}
	slotRef = &slot

	return r.resolveBlock(ctx, slot)
}

func (r *Resolver) resolveBlock(ctx context.Context, slot uint64) (model.Block, bool, error) {
	block, found, err := r.store.GetBlock(ctx, slot)
	if err != nil {
		return model.Block{}, false, fmt.Errorf("get block %d: %w", slot, err)
	}
	if found {
		return block, true, nil
	}

	fetched, err := r.source.FetchBlock(ctx, slot)
	if err != nil {
		return model.Block{}, false, fmt.Errorf("fetch block %d: %w", slot, err)
	}

	err = r.store.InsertBlock(ctx, &fetched)
	switch {
	case err == nil:
		return fetched, false, nil
	case errors.Is(err, model.ErrConflict):
		r.logger.Debug("block stored concurrently, re-reading", zap.Uint64("slot", slot))
	default:
		return model.Block{}, false, fmt.Errorf("insert block %d: %w", slot, err)
	}

	stored, found, err := r.store.GetBlock(ctx, slot)
	if err != nil {
		return model.Block{}, false, fmt.Errorf("re-read block %d: %w", slot, err)
	}
	if !found {
		return model.Block{}, false, fmt.Errorf("re-read block %d: missing after conflict: %w", slot, model.ErrStorage)
	}
	return stored, false, nil
}

// record observes one resolution and appends its request log. Log failures are only reported.
func (r *Resolver) record(ctx context.Context, operation, kind string, slot *uint64, hit bool, err error, started time.Time) {
	r.metrics.ObserveResolve(kind, hit, err, started)

	endpoint, method := requestInfoFrom(ctx, operation)
	entry := model.RequestLog{
		Endpoint:       endpoint,
		Method:         method,
		CacheHit:       hit && err == nil,
		ResponseTimeMs: elapsedMillis(started),
		StatusCode:     uint16(model.StatusCode(err)),
		CreatedAt:      r.now().UTC(),
	}
	if slot != nil {
		s := *slot
		entry.Slot = &s
	}
	if err != nil {
		entry.ErrorMessage = err.Error()
	}

	if r.logs == nil {
		return
	}
	if logErr := r.logs.AppendRequestLog(context.WithoutCancel(ctx), entry); logErr != nil {
		r.metrics.ObserveLogAppendFailure()
		r.logger.Warn("request log not written", zap.String("endpoint", endpoint), zap.Error(logErr))
	}
}

func elapsedMillis(started time.Time) uint32 {
	ms := time.Since(started).Milliseconds()
	switch {
	case ms < 0:
		return 0
	case ms > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(ms)
	}
}

// Package memo keeps recently used cache records in process memory in front of the durable store.
package memo

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	recordBlock        = "block"
	recordProgramCount = "program_count"
)

type programKey struct {
	slot      uint64
	programID string
}

// Store memoizes reads of immutable records. Only values known to be in the durable store are kept,
// so entries never need invalidation. Returned blocks share memory with the cache and must not be mutated.
type Store struct {
	Backend

	blocks  *lru.Cache[uint64, model.Block]
	counts  *lru.Cache[programKey, uint64]
	metrics Metrics
}

// New wraps backend with LRUs holding up to size blocks and size program counts.
func New(backend Backend, size int, metrics Metrics) (*Store, error) {
	blocks, err := lru.New[uint64, model.Block](size)
	if err != nil {
		return nil, fmt.Errorf("create block lru: %w", err)
	}
	counts, err := lru.New[programKey, uint64](size)
	if err != nil {
		return nil, fmt.Errorf("create program count lru: %w", err)
	}
	return &Store{Backend: backend, blocks: blocks, counts: counts, metrics: metrics}, nil
}

func (s *Store) GetBlock(ctx context.Context, slot uint64) (model.Block, bool, error) {
	if b, ok := s.blocks.Get(slot); ok {
		s.metrics.Hit(recordBlock)
		return b, true, nil
	}
	s.metrics.Miss(recordBlock)

	b, found, err := s.Backend.GetBlock(ctx, slot)
	if err != nil || !found {
		return b, found, err
	}
	s.blocks.Add(slot, b)
	return b, true, nil
}

func (s *Store) InsertBlock(ctx context.Context, block *model.Block) error {
	if err := s.Backend.InsertBlock(ctx, block); err != nil {
		return err
	}
	s.blocks.Add(block.Slot, *block)
	return nil
}

func (s *Store) GetProgramCount(ctx context.Context, slot uint64, programID string) (uint64, bool, error) {
	key := programKey{slot: slot, programID: programID}
	if c, ok := s.counts.Get(key); ok {
		s.metrics.Hit(recordProgramCount)
		return c, true, nil
	}
	s.metrics.Miss(recordProgramCount)

	c, found, err := s.Backend.GetProgramCount(ctx, slot, programID)
	if err != nil || !found {
		return c, found, err
	}
	s.counts.Add(key, c)
	return c, true, nil
}

// InsertProgramCount memoizes the count only when this write stored it.
func (s *Store) InsertProgramCount(ctx context.Context, slot uint64, programID string, count uint64) (model.WriteOutcome, error) {
	outcome, err := s.Backend.InsertProgramCount(ctx, slot, programID, count)
	if err != nil {
		return outcome, err
	}
	if outcome == model.Inserted {
		s.counts.Add(programKey{slot: slot, programID: programID}, count)
	}
	return outcome, nil
}

// Len reports how many blocks and program counts are held in memory.
func (s *Store) Len() (blocks, counts int) {
	return s.blocks.Len(), s.counts.Len()
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
	"github.com/goodnatureofminers/slotinsight-backend/pkg/safe"
)

// GetBlock returns the cached block for a slot. The bool is false when the slot is not cached.
func (r *Repository) GetBlock(ctx context.Context, slot uint64) (block model.Block, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("get_block", err, start)
	}()

	key, err := safe.Int64(slot)
	if err != nil {
		return model.Block{}, false, fmt.Errorf("get block %d: %w: %w", slot, model.ErrInvalidInput, err)
	}

	dao := new(blockDao)
	err = r.db.NewSelect().Model(dao).Where("slot = ?", key).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Block{}, false, nil
	}
	if err != nil {
		return model.Block{}, false, storageError(fmt.Sprintf("get block %d", slot), err)
	}

	block, err = dao.toModel()
	if err != nil {
		return model.Block{}, false, storageError("get block", err)
	}
	return block, true, nil
}

// InsertBlock stores a block once. If the slot is already cached the stored row is left untouched and
// the returned error wraps model.ErrConflict. On success CreatedAt and UpdatedAt are set from the database.
func (r *Repository) InsertBlock(ctx context.Context, block *model.Block) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_block", err, start)
	}()

	dao, err := toBlockDao(block)
	if err != nil {
		return fmt.Errorf("insert block %d: %w: %w", block.Slot, model.ErrInvalidInput, err)
	}

	res, err := r.db.NewInsert().
		Model(dao).
		On("CONFLICT (slot) DO NOTHING").
		Returning("created_at, updated_at").
		Exec(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("insert block %d: %w", block.Slot, model.ErrConflict)
	}
	if err != nil {
		return storageError(fmt.Sprintf("insert block %d", block.Slot), err)
	}
	if n, rowsErr := res.RowsAffected(); rowsErr == nil && n == 0 {
		return fmt.Errorf("insert block %d: %w", block.Slot, model.ErrConflict)
	}

	block.CreatedAt = dao.CreatedAt.UTC()
	block.UpdatedAt = dao.UpdatedAt.UTC()
	return nil
}

// RecentBlocks lists cached blocks by descending slot. Limit is clamped to 1..MaxRecentBlocks.
func (r *Repository) RecentBlocks(ctx context.Context, limit int) (blocks []model.Block, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("recent_blocks", err, start)
	}()

	limit = clampLimit(limit)

	var daos []blockDao
	if err = r.db.NewSelect().Model(&daos).OrderExpr("slot DESC").Limit(limit).Scan(ctx); err != nil {
		return nil, storageError("list recent blocks", err)
	}

	blocks = make([]model.Block, 0, len(daos))
	for i := range daos {
		b, convErr := daos[i].toModel()
		if convErr != nil {
			return nil, storageError("list recent blocks", convErr)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// TotalBlockCount returns the number of cached blocks.
func (r *Repository) TotalBlockCount(ctx context.Context) (total uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("total_block_count", err, start)
	}()

	count, err := r.db.NewSelect().Model((*blockDao)(nil)).Count(ctx)
	if err != nil {
		return 0, storageError("count blocks", err)
	}
	return uint64(count), nil
}

// SlotForHeight returns the slot of a cached block with the given height.
func (r *Repository) SlotForHeight(ctx context.Context, height uint64) (slot uint64, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("slot_for_height", err, start)
	}()

	key, err := safe.Int64(height)
	if err != nil {
		return 0, false, fmt.Errorf("slot for height %d: %w: %w", height, model.ErrInvalidInput, err)
	}

	var stored int64
	err = r.db.NewSelect().
		Model((*blockDao)(nil)).
		Column("slot").
		Where("block_height = ?", key).
		OrderExpr("slot ASC").
		Limit(1).
		Scan(ctx, &stored)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, storageError(fmt.Sprintf("slot for height %d", height), err)
	}
	return uint64(stored), true, nil
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxRecentBlocks {
		return MaxRecentBlocks
	}
	return limit
}

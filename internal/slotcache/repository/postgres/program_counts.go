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

// GetProgramCount returns the cached transaction count of a program in a slot.
func (r *Repository) GetProgramCount(ctx context.Context, slot uint64, programID string) (count uint64, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("get_program_count", err, start)
	}()

	key, err := safe.Int64(slot)
	if err != nil {
		return 0, false, fmt.Errorf("get program count %d: %w: %w", slot, model.ErrInvalidInput, err)
	}

	dao := new(programCountDao)
	err = r.db.NewSelect().
		Model(dao).
		Where("slot = ?", key).
		Where("program_id = ?", programID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, storageError(fmt.Sprintf("get program count %d/%s", slot, programID), err)
	}
	count, err = safe.Uint64(dao.Count)
	if err != nil {
		return 0, false, storageError(fmt.Sprintf("get program count %d/%s", slot, programID), err)
	}
	return count, true, nil
}

// InsertProgramCount stores a program count once. An existing row is never changed.
func (r *Repository) InsertProgramCount(ctx context.Context, slot uint64, programID string, count uint64) (outcome model.WriteOutcome, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_program_count", err, start)
	}()

	key, err := safe.Int64(slot)
	if err != nil {
		return 0, fmt.Errorf("insert program count %d: %w: %w", slot, model.ErrInvalidInput, err)
	}
	value, err := safe.Int64(count)
	if err != nil {
		return 0, fmt.Errorf("insert program count %d: %w: %w", slot, model.ErrInvalidInput, err)
	}

	res, err := r.db.NewInsert().
		Model(&programCountDao{Slot: key, ProgramID: programID, Count: value}).
		On("CONFLICT (slot, program_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return 0, storageError(fmt.Sprintf("insert program count %d/%s", slot, programID), err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageError("insert program count rows affected", err)
	}
	if n == 0 {
		return model.AlreadyPresent, nil
	}
	return model.Inserted, nil
}

package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
	"github.com/goodnatureofminers/slotinsight-backend/pkg/safe"
	"github.com/uptrace/bun"
)

type blockDao struct {
	bun.BaseModel `bun:"table:solana_blocks,alias:b"`

	Slot              int64     `bun:"slot,pk"`
	BlockHeight       *int64    `bun:"block_height"`
	BlockTime         *int64    `bun:"block_time"`
	ParentSlot        int64     `bun:"parent_slot,notnull"`
	TransactionCount  int64     `bun:"transaction_count,notnull"`
	BlockHash         string    `bun:"block_hash,notnull"`
	PreviousBlockHash string    `bun:"previous_block_hash,notnull"`
	Rewards           *string   `bun:"rewards"`
	CreatedAt         time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt         time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

type programCountDao struct {
	bun.BaseModel `bun:"table:program_transactions,alias:pt"`

	Slot      int64     `bun:"slot,pk"`
	ProgramID string    `bun:"program_id,pk"`
	Count     int64     `bun:"transaction_count,notnull"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

type requestLogDao struct {
	bun.BaseModel `bun:"table:api_request_logs,alias:l"`

	ID             int64     `bun:"id,pk,autoincrement"`
	Endpoint       string    `bun:"endpoint,notnull"`
	Method         string    `bun:"method,notnull"`
	Slot           *int64    `bun:"slot"`
	CacheHit       bool      `bun:"cache_hit,notnull"`
	ResponseTimeMs int64     `bun:"response_time_ms,notnull"`
	StatusCode     int32     `bun:"status_code,notnull"`
	ErrorMessage   *string   `bun:"error_message"`
	CreatedAt      time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toBlockDao(b *model.Block) (*blockDao, error) {
	slot, err := safe.Int64(b.Slot)
	if err != nil {
		return nil, fmt.Errorf("slot: %w", err)
	}
	parent, err := safe.Int64(b.ParentSlot)
	if err != nil {
		return nil, fmt.Errorf("parent slot: %w", err)
	}
	txCount, err := safe.Int64(b.TransactionCount)
	if err != nil {
		return nil, fmt.Errorf("transaction count: %w", err)
	}

	dao := &blockDao{
		Slot:              slot,
		BlockTime:         b.Time,
		ParentSlot:        parent,
		TransactionCount:  txCount,
		BlockHash:         b.Hash,
		PreviousBlockHash: b.PreviousHash,
	}
	if b.Height != nil {
		height, err := safe.Int64(*b.Height)
		if err != nil {
			return nil, fmt.Errorf("block height: %w", err)
		}
		dao.BlockHeight = &height
	}
	if b.Rewards != nil {
		raw, err := json.Marshal(b.Rewards)
		if err != nil {
			return nil, fmt.Errorf("encode rewards: %w", err)
		}
		rewards := string(raw)
		dao.Rewards = &rewards
	}
	return dao, nil
}

func (d *blockDao) toModel() (model.Block, error) {
	slot, err := safe.Uint64(d.Slot)
	if err != nil {
		return model.Block{}, fmt.Errorf("slot: %w", err)
	}
	parent, err := safe.Uint64(d.ParentSlot)
	if err != nil {
		return model.Block{}, fmt.Errorf("parent slot of slot %d: %w", d.Slot, err)
	}
	txCount, err := safe.Uint64(d.TransactionCount)
	if err != nil {
		return model.Block{}, fmt.Errorf("transaction count of slot %d: %w", d.Slot, err)
	}

	b := model.Block{
		Slot:             slot,
		Time:             d.BlockTime,
		ParentSlot:       parent,
		TransactionCount: txCount,
		Hash:             d.BlockHash,
		PreviousHash:     d.PreviousBlockHash,
		CreatedAt:        d.CreatedAt.UTC(),
		UpdatedAt:        d.UpdatedAt.UTC(),
	}
	if d.BlockHeight != nil {
		height, err := safe.Uint64(*d.BlockHeight)
		if err != nil {
			return model.Block{}, fmt.Errorf("block height of slot %d: %w", d.Slot, err)
		}
		b.Height = &height
	}
	if d.Rewards != nil {
		rewards := make([]model.Reward, 0)
		if err := json.Unmarshal([]byte(*d.Rewards), &rewards); err != nil {
			return model.Block{}, fmt.Errorf("decode rewards of slot %d: %w", d.Slot, err)
		}
		b.Rewards = rewards
	}
	return b, nil
}

func toRequestLogDao(l model.RequestLog) (*requestLogDao, error) {
	dao := &requestLogDao{
		Endpoint:       l.Endpoint,
		Method:         l.Method,
		CacheHit:       l.CacheHit,
		ResponseTimeMs: int64(l.ResponseTimeMs),
		StatusCode:     int32(l.StatusCode),
		CreatedAt:      l.CreatedAt,
	}
	if l.Slot != nil {
		slot, err := safe.Int64(*l.Slot)
		if err != nil {
			return nil, fmt.Errorf("slot: %w", err)
		}
		dao.Slot = &slot
	}
	if l.ErrorMessage != "" {
		msg := l.ErrorMessage
		dao.ErrorMessage = &msg
	}
	return dao, nil
}

// Package model defines domain models for the slot cache.
package model

import "time"

// Block is an immutable block record keyed by slot. Once stored it is never refetched or overwritten.
type Block struct {
	Slot             uint64
	Height           *uint64
	Time             *int64
	ParentSlot       uint64
	TransactionCount uint64
	Hash             string
	PreviousHash     string
	Rewards          []Reward
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Reward is a single reward entry attached to a block.
type Reward struct {
	Pubkey      string `json:"pubkey"`
	Lamports    int64  `json:"lamports"`
	PostBalance uint64 `json:"postBalance"`
	RewardType  string `json:"rewardType,omitempty"`
	Commission  *uint8 `json:"commission,omitempty"`
}

package solana

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/chain"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
)

var maxTransactionVersion = 0

var _ chain.BlockSource = (*BlockSource)(nil)

// BlockSource implements chain.BlockSource over Solana JSON-RPC.
type BlockSource struct {
	rpc NodeClient
}

// NewBlockSource creates a BlockSource.
func NewBlockSource(rpc NodeClient) *BlockSource {
	return &BlockSource{rpc: rpc}
}

// FetchBlock retrieves block metadata with signatures and rewards.
func (s *BlockSource) FetchBlock(ctx context.Context, slot uint64) (model.Block, error) {
	res, err := s.rpc.GetBlock(ctx, slot, BlockRequest{
		Encoding:                       "json",
		TransactionDetails:             DetailsSignatures,
		Rewards:                        true,
		MaxSupportedTransactionVersion: &maxTransactionVersion,
	})
	if err != nil {
		return model.Block{}, err
	}
	return BuildBlock(slot, res), nil
}

// FetchTransactionCount retrieves only signatures, without rewards.
func (s *BlockSource) FetchTransactionCount(ctx context.Context, slot uint64) (uint64, error) {
	res, err := s.rpc.GetBlock(ctx, slot, BlockRequest{
		Encoding:                       "json",
		TransactionDetails:             DetailsSignatures,
		Rewards:                        false,
		MaxSupportedTransactionVersion: &maxTransactionVersion,
	})
	if err != nil {
		return 0, err
	}
	return uint64(len(res.Signatures)), nil
}

// CurrentSlot returns the node's current slot.
func (s *BlockSource) CurrentSlot(ctx context.Context) (uint64, error) {
	return s.rpc.GetSlot(ctx)
}

// FetchProgramTransactionCount retrieves full parsed transactions and counts those involving programID.
func (s *BlockSource) FetchProgramTransactionCount(ctx context.Context, slot uint64, programID string) (uint64, error) {
	if programID == "" {
		return 0, fmt.Errorf("program id is required: %w", model.ErrInvalidInput)
	}
	res, err := s.rpc.GetBlock(ctx, slot, BlockRequest{
		Encoding:                       "jsonParsed",
		TransactionDetails:             DetailsFull,
		Rewards:                        false,
		MaxSupportedTransactionVersion: &maxTransactionVersion,
	})
	if err != nil {
		return 0, err
	}

	txs := make([]Transaction, 0, len(res.Transactions))
	for _, tx := range res.Transactions {
		txs = append(txs, DecodeTransaction(tx))
	}
	return CountInvolving(txs, programID), nil
}

// BuildBlock converts a getBlock result into a block record.
func BuildBlock(slot uint64, res *BlockResult) model.Block {
	block := model.Block{
		Slot:             slot,
		Height:           res.BlockHeight,
		Time:             res.BlockTime,
		ParentSlot:       res.ParentSlot,
		TransactionCount: uint64(len(res.Signatures)),
		Hash:             res.Blockhash,
		PreviousHash:     res.PreviousBlockhash,
	}
	if res.Rewards != nil {
		block.Rewards = make([]model.Reward, 0, len(res.Rewards))
		for _, r := range res.Rewards {
			reward := model.Reward{
				Pubkey:      r.Pubkey,
				Lamports:    r.Lamports,
				PostBalance: r.PostBalance,
				Commission:  r.Commission,
			}
			if r.RewardType != nil {
				reward.RewardType = *r.RewardType
			}
			block.Rewards = append(block.Rewards, reward)
		}
	}
	return block
}

// Package chain defines the contract between the slot cache and an upstream block provider.
package chain

import (
	"context"

	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
)

// BlockSource fetches block data from the chain. Implementations do not retry.
//
// Skipped or unavailable slots fail with model.ErrNotFound, transport and protocol failures
// (timeouts and rate limiting included) with model.ErrUpstream.
type BlockSource interface {
	// FetchBlock returns block metadata with rewards. The transaction count is the number of signatures.
	FetchBlock(ctx context.Context, slot uint64) (model.Block, error)
	// FetchTransactionCount returns the same count as FetchBlock using a reduced-detail request.
	FetchTransactionCount(ctx context.Context, slot uint64) (uint64, error)
	// CurrentSlot returns the highest slot known to the node.
	CurrentSlot(ctx context.Context) (uint64, error)
	// FetchProgramTransactionCount counts transactions that reference programID through their account keys,
	// a top-level instruction or an inner instruction. Each transaction counts once.
	FetchProgramTransactionCount(ctx context.Context, slot uint64, programID string) (uint64, error)
}

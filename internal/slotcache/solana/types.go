package solana

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// Caller performs a single JSON-RPC call.
	Caller interface {
		CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
	}
	// NodeClient is the subset of the node API used by BlockSource.
	NodeClient interface {
		GetBlock(ctx context.Context, slot uint64, req BlockRequest) (*BlockResult, error)
		GetSlot(ctx context.Context) (uint64, error)
	}
)

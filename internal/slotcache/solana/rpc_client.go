package solana

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goodnatureofminers/slotinsight-backend/internal/slotcache/model"
	"go.uber.org/ratelimit"
)

// Node error codes for slots that were skipped or are not available on the node.
const (
	codeBlockNotAvailable        = -32004
	codeSlotSkipped              = -32007
	codeSlotSkippedLongTermStore = -32009
)

// ClientConfig configures the node RPC client.
type ClientConfig struct {
	Endpoint   string
	Timeout    time.Duration
	RPS        int
	Commitment string
}

// RPCClient wraps a JSON-RPC caller with pacing, per-call timeouts, error classification and metrics.
type RPCClient struct {
	caller     Caller
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
	timeout    time.Duration
	commitment string
	close      func()
}

// Dial connects to a node over HTTP.
func Dial(ctx context.Context, cfg ClientConfig, rpcMetrics RPCMetrics) (*RPCClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("solana rpc endpoint is required")
	}
	client, err := rpc.DialOptions(ctx, cfg.Endpoint, rpc.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	if err != nil {
		return nil, fmt.Errorf("dial solana rpc: %w", err)
	}

	c := NewRPCClient(client, rpcMetrics, newLimiter(cfg.RPS), cfg.Timeout)
	c.commitment = cfg.Commitment
	c.close = client.Close
	return c, nil
}

// NewRPCClient constructs an instrumented RPC client.
func NewRPCClient(caller Caller, rpcMetrics RPCMetrics, limiter ratelimit.Limiter, timeout time.Duration) *RPCClient {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	return &RPCClient{
		caller:     caller,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
		timeout:    timeout,
	}
}

func newLimiter(rps int) ratelimit.Limiter {
	if rps <= 0 {
		return ratelimit.NewUnlimited()
	}
	return ratelimit.New(rps)
}

// GetBlock calls getBlock. A null result means the slot holds no block.
func (c *RPCClient) GetBlock(ctx context.Context, slot uint64, req BlockRequest) (*BlockResult, error) {
	if req.Commitment == "" {
		req.Commitment = c.commitment
	}

	var res *BlockResult
	if err := c.call(ctx, "get_block", &res, "getBlock", slot, req); err != nil {
		return nil, fmt.Errorf("get block %d: %w", slot, err)
	}
	if res == nil {
		return nil, fmt.Errorf("get block %d: %w", slot, model.ErrNotFound)
	}
	return res, nil
}

// GetSlot calls getSlot.
func (c *RPCClient) GetSlot(ctx context.Context) (uint64, error) {
	var args []interface{}
	if c.commitment != "" {
		args = append(args, map[string]string{"commitment": c.commitment})
	}

	var slot uint64
	if err := c.call(ctx, "get_slot", &slot, "getSlot", args...); err != nil {
		return 0, fmt.Errorf("get slot: %w", err)
	}
	return slot, nil
}

// Close releases the underlying connection.
func (c *RPCClient) Close() {
	if c.close != nil {
		c.close()
	}
}

func (c *RPCClient) call(ctx context.Context, operation string, result interface{}, method string, args ...interface{}) (err error) {
	if err = ctx.Err(); err != nil {
		return classify(err)
	}
	c.limiter.Take()
	if err = ctx.Err(); err != nil {
		return classify(err)
	}

	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(operation, err, started)
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	return classify(c.caller.CallContext(ctx, result, method, args...))
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, rpc.ErrNoResult) {
		return fmt.Errorf("%w: %w", model.ErrNotFound, err)
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		switch rpcErr.ErrorCode() {
		case codeBlockNotAvailable, codeSlotSkipped, codeSlotSkippedLongTermStore:
			return fmt.Errorf("%w: %w", model.ErrNotFound, err)
		}
	}

	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: rate limited: %w", model.ErrUpstream, err)
	}

	return fmt.Errorf("%w: %w", model.ErrUpstream, err)
}

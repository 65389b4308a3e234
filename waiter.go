package web3j

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// EmptyReceipt is the synthetic receipt produced by wait policies that do
// not wait for mining. The executor's status check skips it; callers that
// need a real receipt must use a blocking policy.
var EmptyReceipt = &types.Receipt{}

// DefaultPollInterval matches the polling cadence of go-ethereum's own
// WaitMined helper.
const DefaultPollInterval = time.Second

// PollingWaiter polls the node for a receipt on a fixed interval until the
// transaction is mined or the context is done. It has no intrinsic timeout.
type PollingWaiter struct {
	// Interval between polls; DefaultPollInterval when zero.
	Interval time.Duration
}

// Wait blocks until the transaction is mined. A missing receipt
// (ethereum.NotFound) keeps the poll going; any other transport failure is
// terminal.
func (w *PollingWaiter) Wait(ctx context.Context, backend Backend, txHash common.Hash) (*types.Receipt, error) {
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}

		receipt, err := backend.TransactionReceipt(ctx, txHash)
		switch {
		case err == nil:
			return receipt, nil
		case errors.Is(err, ethereum.NotFound):
			timer.Reset(interval)
		default:
			return nil, &TransportError{Op: "eth_getTransactionReceipt", Err: err}
		}
	}
}

// NoWaitPolicy submits without waiting and yields EmptyReceipt. Use it for
// fire-and-forget flows where settlement is tracked elsewhere.
type NoWaitPolicy struct{}

// Wait returns EmptyReceipt immediately.
func (NoWaitPolicy) Wait(ctx context.Context, backend Backend, txHash common.Hash) (*types.Receipt, error) {
	return EmptyReceipt, nil
}

package web3j

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Backend is the node transport consumed by the engine. ethclient.Client
// satisfies it, as does the simulated backend used in integration tests.
//
// A nil block number selects the latest state.
type Backend interface {
	// CallContract executes a read-only call against the given block.
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)

	// CodeAt returns the contract code at the given account and block.
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)

	// PendingNonceAt returns the next sequence number for an account.
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)

	// EstimateGas estimates the gas needed to execute the call.
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)

	// SendTransaction submits a signed transaction to the network.
	SendTransaction(ctx context.Context, tx *types.Transaction) error

	// TransactionReceipt returns the receipt of a mined transaction, or
	// ethereum.NotFound while it is still pending.
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Signer supplies the sender address and signs assembled transactions.
// Key management stays outside the engine.
type Signer interface {
	// From returns the sender address transactions are issued from.
	From() common.Address

	// SignTx signs the given transaction.
	SignTx(tx *types.Transaction) (*types.Transaction, error)
}

// ReceiptWaiter is the wait-for-mining policy applied after submission.
// Waiting is the only operation in the engine that can block for an
// externally-determined duration; timeout and cancellation come from the
// caller's context and the policy itself.
type ReceiptWaiter interface {
	Wait(ctx context.Context, backend Backend, txHash common.Hash) (*types.Receipt, error)
}

// NameResolver turns a human-readable name or hex string into an address.
// Resolution happens exactly once, when a contract handle is constructed.
type NameResolver interface {
	Resolve(name string) (common.Address, error)
}

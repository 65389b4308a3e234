package web3j

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// mockBackend stands in for the node. Unset functions answer zero values so
// tests only wire what they exercise.
type mockBackend struct {
	callContractFn       func(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	codeAtFn             func(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	pendingNonceAtFn     func(ctx context.Context, account common.Address) (uint64, error)
	estimateGasFn        func(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	sendTransactionFn    func(ctx context.Context, tx *types.Transaction) error
	transactionReceiptFn func(ctx context.Context, txHash common.Hash) (*types.Receipt, error)

	sent []*types.Transaction
}

func (m *mockBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if m.callContractFn == nil {
		return nil, nil
	}
	return m.callContractFn(ctx, msg, blockNumber)
}

func (m *mockBackend) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	if m.codeAtFn == nil {
		return nil, nil
	}
	return m.codeAtFn(ctx, account, blockNumber)
}

func (m *mockBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	if m.pendingNonceAtFn == nil {
		return 0, nil
	}
	return m.pendingNonceAtFn(ctx, account)
}

func (m *mockBackend) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	if m.estimateGasFn == nil {
		return 21000, nil
	}
	return m.estimateGasFn(ctx, msg)
}

func (m *mockBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	m.sent = append(m.sent, tx)
	if m.sendTransactionFn == nil {
		return nil
	}
	return m.sendTransactionFn(ctx, tx)
}

func (m *mockBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if m.transactionReceiptFn == nil {
		return nil, ethereum.NotFound
	}
	return m.transactionReceiptFn(ctx, txHash)
}

// mockSigner returns transactions unsigned; hashes stay stable and no key
// material is needed.
type mockSigner struct {
	from common.Address
}

func (s *mockSigner) From() common.Address {
	return s.from
}

func (s *mockSigner) SignTx(tx *types.Transaction) (*types.Transaction, error) {
	return tx, nil
}

// receiptWaiterFunc adapts a function to the ReceiptWaiter interface.
type receiptWaiterFunc func(ctx context.Context, backend Backend, txHash common.Hash) (*types.Receipt, error)

func (f receiptWaiterFunc) Wait(ctx context.Context, backend Backend, txHash common.Hash) (*types.Receipt, error) {
	return f(ctx, backend, txHash)
}

var testFrom = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

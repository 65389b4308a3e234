package web3j

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// executeTransaction builds, prices, submits and settles one transaction.
// Fee-market pricing is attempted first whenever the active strategy
// supports it; legacy pricing runs only if that attempt yields no receipt.
// Every failure is terminal for this invocation; no retries happen here.
func (c *Contract) executeTransaction(
	ctx context.Context,
	data []byte,
	value *big.Int,
	funcName string,
	constructor bool,
) (*types.Receipt, error) {
	if value == nil {
		value = new(big.Int)
	}
	msg := c.genericTransaction(data, value, constructor)

	var (
		receipt *types.Receipt
		err     error
	)
	if c.gas.FeeMarket() {
		receipt, err = c.submitFeeMarket(ctx, msg)
		if err != nil {
			return nil, submitFailure(err)
		}
	}
	if receipt == nil {
		receipt, err = c.submitLegacy(ctx, msg)
		if err != nil {
			return nil, submitFailure(err)
		}
	}

	if receipt != nil && receipt != EmptyReceipt && receipt.Status != types.ReceiptStatusSuccessful {
		// The receipt carries no revert data on this chain family; replay
		// the call at the receipt's block to recover the reason.
		reason, encoded := c.revertCause(ctx, msg, receipt)
		return nil, &TxFailedError{
			Hash:    receipt.TxHash,
			Status:  receipt.Status,
			GasUsed: receipt.GasUsed,
			Reason:  reason,
			Data:    encoded,
			Receipt: receipt,
		}
	}

	if receipt != nil {
		c.log.Debug("transaction settled",
			zap.String("function", funcName),
			zap.Stringer("tx", receipt.TxHash))
	}
	return receipt, nil
}

// genericTransaction assembles the pricing-independent transaction intent:
// no destination for contract creation, the handle's address otherwise.
func (c *Contract) genericTransaction(data []byte, value *big.Int, constructor bool) ethereum.CallMsg {
	msg := ethereum.CallMsg{
		From:  c.signer.From(),
		Value: value,
		Data:  data,
	}
	if !constructor {
		to := c.address
		msg.To = &to
	}
	return msg
}

// submitFeeMarket submits a dynamic-fee transaction. A strategy without a
// chain id cannot price one; it yields no receipt and the caller falls back
// to legacy pricing.
func (c *Contract) submitFeeMarket(ctx context.Context, msg ethereum.CallMsg) (*types.Receipt, error) {
	chainID := c.gas.ChainID()
	if chainID == nil {
		return nil, nil
	}
	nonce, err := c.pendingNonce(ctx, msg.From)
	if err != nil {
		return nil, err
	}
	limit, err := c.gas.Limit(ctx, msg)
	if err != nil {
		return nil, err
	}
	return c.submit(ctx, types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: c.gas.TipCap(),
		GasFeeCap: c.gas.FeeCap(),
		Gas:       limit,
		To:        msg.To,
		Value:     msg.Value,
		Data:      msg.Data,
	}))
}

// submitLegacy submits a constant-price transaction.
func (c *Contract) submitLegacy(ctx context.Context, msg ethereum.CallMsg) (*types.Receipt, error) {
	nonce, err := c.pendingNonce(ctx, msg.From)
	if err != nil {
		return nil, err
	}
	limit, err := c.gas.Limit(ctx, msg)
	if err != nil {
		return nil, err
	}
	return c.submit(ctx, types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: c.gas.GasPrice(),
		Gas:      limit,
		To:       msg.To,
		Value:    msg.Value,
		Data:     msg.Data,
	}))
}

// pendingNonce fetches the next sequence number; assignment is left to the
// transport, never tracked locally.
func (c *Contract) pendingNonce(ctx context.Context, from common.Address) (uint64, error) {
	nonce, err := c.backend.PendingNonceAt(ctx, from)
	if err != nil {
		if _, ok := asJSONError(err); ok {
			return 0, err
		}
		return 0, &TransportError{Op: "eth_getTransactionCount", Err: err}
	}
	return nonce, nil
}

// submit signs, sends and waits for settlement under the handle's policy.
func (c *Contract) submit(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	signed, err := c.signer.SignTx(tx)
	if err != nil {
		return nil, err
	}
	if err := c.backend.SendTransaction(ctx, signed); err != nil {
		return nil, err
	}
	c.log.Debug("transaction submitted", zap.Stringer("tx", signed.Hash()))
	return c.waiter.Wait(ctx, c.backend, signed.Hash())
}

// submitFailure maps a submission error to its surfaced form: a structured
// node error is surfaced with the data payload verbatim when present,
// otherwise as "<code>: <message>"; anything else is a transport failure.
func submitFailure(err error) error {
	if je, ok := asJSONError(err); ok {
		return je
	}
	if _, ok := err.(*TransportError); ok {
		return err
	}
	return &TransportError{Op: "eth_sendRawTransaction", Err: err}
}

// revertCause replays the failed call at the receipt's block and decodes
// the revert outcome. Best effort: a failed replay leaves both empty.
func (c *Contract) revertCause(ctx context.Context, msg ethereum.CallMsg, receipt *types.Receipt) (string, string) {
	var block *big.Int
	if receipt.BlockNumber != nil {
		block = new(big.Int).Set(receipt.BlockNumber)
	}
	out, err := c.backend.CallContract(ctx, msg, block)
	result, terr := newCallResult(out, err)
	if terr != nil {
		return "", ""
	}
	return result.RevertReason(), result.RevertReasonEncodedData()
}

package web3j

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
)

// DefaultGasLimit is the limit applied when a strategy is built without an
// explicit one.
const DefaultGasLimit uint64 = 4_300_000

// GasKind tags the pricing protocol of a GasStrategy.
type GasKind uint8

const (
	// GasLegacy prices transactions with a constant gas price.
	GasLegacy GasKind = iota

	// GasFeeMarket prices transactions with an EIP-1559 priority fee and
	// fee cap, bound to a chain id.
	GasFeeMarket
)

// LimitFunc computes a gas limit from the fully-assembled call intent, so a
// limit can depend on destination, payload and value.
type LimitFunc func(ctx context.Context, msg ethereum.CallMsg) (uint64, error)

// GasStrategy computes the pricing parameters attached to a transaction.
// It is a closed union of the two pricing protocols; the executor switches
// on FeeMarket(), never on runtime type identity.
//
// A strategy does not validate fee relationships (e.g. fee cap >= priority
// fee); that is the caller's responsibility.
type GasStrategy struct {
	kind    GasKind
	price   *big.Int
	chainID *big.Int
	tipCap  *big.Int
	feeCap  *big.Int
	limit   uint64
	limitFn LimitFunc
}

// NewStaticGas creates a legacy strategy with a constant price and limit.
// A zero limit falls back to DefaultGasLimit.
func NewStaticGas(price *big.Int, limit uint64) *GasStrategy {
	if limit == 0 {
		limit = DefaultGasLimit
	}
	return &GasStrategy{
		kind:  GasLegacy,
		price: price,
		limit: limit,
	}
}

// NewFeeMarketGas creates a fee-market strategy. chainID is required for
// replay protection; tipCap is the priority fee and feeCap the overall cap.
// A zero limit falls back to DefaultGasLimit unless WithLimitFunc is used.
func NewFeeMarketGas(chainID, tipCap, feeCap *big.Int, limit uint64) *GasStrategy {
	if limit == 0 {
		limit = DefaultGasLimit
	}
	return &GasStrategy{
		kind:    GasFeeMarket,
		chainID: chainID,
		tipCap:  tipCap,
		feeCap:  feeCap,
		limit:   limit,
	}
}

// WithLimitFunc returns a copy of the strategy whose limit is computed per
// transaction instead of being constant.
func (g *GasStrategy) WithLimitFunc(fn LimitFunc) *GasStrategy {
	clone := *g
	clone.limitFn = fn
	return &clone
}

// EstimatedLimit returns a LimitFunc that asks the node for a gas estimate
// of the pending transaction.
func EstimatedLimit(backend Backend) LimitFunc {
	return func(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
		return backend.EstimateGas(ctx, msg)
	}
}

// Kind returns the pricing protocol tag.
func (g *GasStrategy) Kind() GasKind {
	return g.kind
}

// FeeMarket reports whether the strategy supports fee-market pricing.
func (g *GasStrategy) FeeMarket() bool {
	return g.kind == GasFeeMarket
}

// GasPrice returns the legacy gas price (nil for fee-market strategies).
func (g *GasStrategy) GasPrice() *big.Int {
	return g.price
}

// ChainID returns the chain id (nil for legacy strategies).
func (g *GasStrategy) ChainID() *big.Int {
	return g.chainID
}

// TipCap returns the priority fee per gas (nil for legacy strategies).
func (g *GasStrategy) TipCap() *big.Int {
	return g.tipCap
}

// FeeCap returns the maximum fee per gas (nil for legacy strategies).
func (g *GasStrategy) FeeCap() *big.Int {
	return g.feeCap
}

// Limit computes the gas limit for the given call intent.
func (g *GasStrategy) Limit(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	if g.limitFn != nil {
		return g.limitFn(ctx, msg)
	}
	return g.limit, nil
}

// StaticLimit returns the constant limit, ignoring any LimitFunc. Used when
// no call intent is available yet.
func (g *GasStrategy) StaticLimit() uint64 {
	return g.limit
}

package web3j

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// ContractOption configures a Contract at construction time.
type ContractOption func(*Contract)

// WithResolver replaces the default hex-only name resolver, e.g. with an
// ENS-backed one.
func WithResolver(resolver NameResolver) ContractOption {
	return func(c *Contract) {
		c.resolver = resolver
	}
}

// WithReceiptWaiter replaces the default polling wait policy.
func WithReceiptWaiter(waiter ReceiptWaiter) ContractOption {
	return func(c *Contract) {
		c.waiter = waiter
	}
}

// WithLogger attaches a structured logger. The engine logs submission and
// settlement at debug level only; the default logger discards everything.
func WithLogger(log *zap.Logger) ContractOption {
	return func(c *Contract) {
		c.log = log
	}
}

// WithDefaultBlock sets the historical-state selector used for read calls.
// Nil (the default) selects the latest state.
func WithDefaultBlock(block *big.Int) ContractOption {
	return func(c *Contract) {
		c.block = block
	}
}

// WithKnownAddresses seeds the per-network map of known deployments.
func WithKnownAddresses(addresses map[string]common.Address) ContractOption {
	return func(c *Contract) {
		for network, addr := range addresses {
			c.deployed[network] = addr
		}
	}
}

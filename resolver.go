package web3j

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// HexResolver is the default NameResolver. It accepts plain hex addresses
// and rejects anything else; ENS-style resolution is plugged in through the
// WithResolver option.
type HexResolver struct{}

// Resolve parses a hex address. An empty name resolves to the zero address
// so that handles can be constructed before deployment.
func (HexResolver) Resolve(name string) (common.Address, error) {
	if name == "" {
		return common.Address{}, nil
	}
	if !common.IsHexAddress(name) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, name)
	}
	return common.HexToAddress(name), nil
}

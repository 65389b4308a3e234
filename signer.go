package web3j

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// KeyedSigner signs transactions with an in-memory private key. It covers
// both legacy and dynamic-fee transaction types for the given chain.
type KeyedSigner struct {
	key    *ecdsa.PrivateKey
	from   common.Address
	signer types.Signer
}

// NewKeyedSigner creates a signer for the given key and chain id.
func NewKeyedSigner(key *ecdsa.PrivateKey, chainID *big.Int) *KeyedSigner {
	return &KeyedSigner{
		key:    key,
		from:   crypto.PubkeyToAddress(key.PublicKey),
		signer: types.LatestSignerForChainID(chainID),
	}
}

// From returns the address derived from the signing key.
func (s *KeyedSigner) From() common.Address {
	return s.from
}

// SignTx signs the transaction with the held key.
func (s *KeyedSigner) SignTx(tx *types.Transaction) (*types.Transaction, error) {
	return types.SignTx(tx, s.signer, s.key)
}

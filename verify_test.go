package web3j

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	bzzr0Indicator = "a165627a7a72305820"
	ipfsIndicator  = "a2646970667358221220"
)

func TestStripMetadata(t *testing.T) {
	t.Run("truncates at a single indicator", func(t *testing.T) {
		code := "60806040" + ipfsIndicator + "deadbeef"

		assert.Equal(t, "60806040", stripMetadata(code))
	})

	t.Run("earliest code position wins over indicator order", func(t *testing.T) {
		// The IPFS indicator is listed after bzzr0, but occurs first here.
		code := "6001" + ipfsIndicator + "00" + bzzr0Indicator + "ff"

		assert.Equal(t, "6001", stripMetadata(code))
	})

	t.Run("unmarked code passes through", func(t *testing.T) {
		assert.Equal(t, "60806040", stripMetadata("60806040"))
	})
}

func validationContract(t *testing.T, binary string, backend Backend) *Contract {
	t.Helper()
	c, err := NewContract(testTokenABI(t), binary, "0x00000000000000000000000000000000000000aa",
		backend, &mockSigner{from: testFrom}, NewStaticGas(big.NewInt(1), 21000))
	require.NoError(t, err)
	return c
}

func TestContractIsValid(t *testing.T) {
	runtime := "6080604052600a600b"
	binary := "0x6001600201" + runtime + ipfsIndicator + "1122334455"

	codeBytes := func(hexCode string) []byte {
		b, err := hex.DecodeString(hexCode)
		require.NoError(t, err)
		return b
	}

	t.Run("deployed code matches a subset of the binary", func(t *testing.T) {
		backend := &mockBackend{
			codeAtFn: func(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
				return codeBytes(runtime + ipfsIndicator + "99887766"), nil
			},
		}

		valid, err := validationContract(t, binary, backend).IsValid(context.Background())

		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("a differing byte outside metadata fails verification", func(t *testing.T) {
		backend := &mockBackend{
			codeAtFn: func(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
				return codeBytes("6080604052600a600c" + ipfsIndicator + "99887766"), nil
			},
		}

		valid, err := validationContract(t, binary, backend).IsValid(context.Background())

		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("empty code after stripping is invalid", func(t *testing.T) {
		backend := &mockBackend{
			codeAtFn: func(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
				return codeBytes(ipfsIndicator + "99887766"), nil
			},
		}

		valid, err := validationContract(t, binary, backend).IsValid(context.Background())

		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("node RPC error answers false, not an error", func(t *testing.T) {
		backend := &mockBackend{
			codeAtFn: func(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
				return nil, &JSONError{Code: -32000, Message: "missing trie node"}
			},
		}

		valid, err := validationContract(t, binary, backend).IsValid(context.Background())

		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("transport failure propagates", func(t *testing.T) {
		backend := &mockBackend{
			codeAtFn: func(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
				return nil, errors.New("connection refused")
			},
		}

		_, err := validationContract(t, binary, backend).IsValid(context.Background())

		var terr *TransportError
		require.ErrorAs(t, err, &terr)
	})

	t.Run("missing binary is unsupported", func(t *testing.T) {
		c := validationContract(t, "", &mockBackend{})

		_, err := c.IsValid(context.Background())

		assert.ErrorIs(t, err, ErrBinaryNotProvided)
	})

	t.Run("unset address is unsupported", func(t *testing.T) {
		c, err := NewContract(testTokenABI(t), binary, "", &mockBackend{},
			&mockSigner{from: testFrom}, NewStaticGas(big.NewInt(1), 21000))
		require.NoError(t, err)

		_, err = c.IsValid(context.Background())

		assert.ErrorIs(t, err, ErrAddressNotSet)
	})
}

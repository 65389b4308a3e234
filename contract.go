package web3j

import (
	"context"
	"encoding/hex"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// Contract is a typed handle to a smart contract: it encodes calls against
// the contract's ABI, prices and submits transactions, performs deployment,
// and decodes results, events and failures.
//
// A handle is bound to at most one address, resolved exactly once at
// construction. Handles created by Deploy additionally carry the receipt of
// their own deployment; handles created by NewContract do not. The address
// and gas strategy are the only mutable fields and must not be changed
// concurrently with an in-flight operation; the engine does no internal
// locking.
type Contract struct {
	abi      abi.ABI
	binary   string
	address  common.Address
	backend  Backend
	signer   Signer
	gas      *GasStrategy
	resolver NameResolver
	waiter   ReceiptWaiter
	log      *zap.Logger
	block    *big.Int
	receipt  *types.Receipt
	deployed map[string]common.Address
}

// NewContract binds a handle to an existing deployment. The address may be
// a hex string or, with a suitable resolver, a human-readable name; it is
// resolved here, before any call or transaction is issued. binary may be
// empty when the creation bytecode is unknown, at the cost of IsValid.
func NewContract(
	contractABI abi.ABI,
	binary string,
	address string,
	backend Backend,
	signer Signer,
	gas *GasStrategy,
	opts ...ContractOption,
) (*Contract, error) {
	c := newUnbound(contractABI, binary, backend, signer, gas, opts...)

	resolved, err := c.resolver.Resolve(address)
	if err != nil {
		return nil, err
	}
	c.address = resolved
	return c, nil
}

func newUnbound(
	contractABI abi.ABI,
	binary string,
	backend Backend,
	signer Signer,
	gas *GasStrategy,
	opts ...ContractOption,
) *Contract {
	c := &Contract{
		abi:      contractABI,
		binary:   binary,
		backend:  backend,
		signer:   signer,
		gas:      gas,
		resolver: HexResolver{},
		waiter:   &PollingWaiter{},
		log:      zap.NewNop(),
		deployed: make(map[string]common.Address),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Deploy submits the creation bytecode concatenated with ABI-encoded
// constructor arguments and returns a handle bound to the created address,
// carrying the deployment receipt. value is the native amount sent along;
// nil means zero.
func Deploy(
	ctx context.Context,
	backend Backend,
	signer Signer,
	gas *GasStrategy,
	contractABI abi.ABI,
	binary string,
	constructorArgs []byte,
	value *big.Int,
	opts ...ContractOption,
) (*Contract, error) {
	c := newUnbound(contractABI, binary, backend, signer, gas, opts...)

	code, err := hex.DecodeString(cleanHexPrefix(binary))
	if err != nil {
		return nil, &EncodingError{Method: "deploy", Err: err}
	}
	data := append(code, constructorArgs...)

	receipt, err := c.executeTransaction(ctx, data, value, "deploy", true)
	if err != nil {
		return nil, err
	}
	if receipt == nil || receipt.ContractAddress == (common.Address{}) {
		return nil, ErrNoContractAddress
	}
	c.address = receipt.ContractAddress
	c.receipt = receipt
	c.log.Debug("contract deployed",
		zap.Stringer("address", c.address),
		zap.Stringer("tx", receipt.TxHash))
	return c, nil
}

// DeployAs deploys like Deploy and hands the bound handle to a factory
// supplied by the generated contract type, returning the typed wrapper.
func DeployAs[T any](
	ctx context.Context,
	backend Backend,
	signer Signer,
	gas *GasStrategy,
	contractABI abi.ABI,
	binary string,
	constructorArgs []byte,
	value *big.Int,
	factory func(*Contract) T,
	opts ...ContractOption,
) (T, error) {
	c, err := Deploy(ctx, backend, signer, gas, contractABI, binary, constructorArgs, value, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return factory(c), nil
}

// Call executes a read-only function at the handle's address and default
// block, returning the decoded output values in declared order. An empty
// node response yields an empty sequence.
func (c *Contract) Call(ctx context.Context, method string, args ...any) ([]any, error) {
	raw, err := c.CallRaw(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	out, err := c.abi.Unpack(method, raw)
	if err != nil {
		return nil, &EncodingError{Method: method, Err: err}
	}
	return out, nil
}

// CallRaw executes a read-only function and returns the raw result without
// decoding. Reverts are still classified and surfaced as *RevertError.
func (c *Contract) CallRaw(ctx context.Context, method string, args ...any) ([]byte, error) {
	input, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, &EncodingError{Method: method, Err: err}
	}

	raw, callErr := c.backend.CallContract(ctx, ethereum.CallMsg{
		From: c.signer.From(),
		To:   &c.address,
		Data: input,
	}, c.block)

	result, err := newCallResult(raw, callErr)
	if err != nil {
		return nil, err
	}
	if result.IsReverted() {
		return nil, &RevertError{
			Reason: result.RevertReason(),
			Data:   result.RevertReasonEncodedData(),
		}
	}
	return result.Result, nil
}

// CallSingleValue executes a read-only function declared to return exactly
// one value and adapts it to T: the decoded value itself when it is a T,
// or its canonical hex text when the value is an address and T is string.
func CallSingleValue[T any](ctx context.Context, c *Contract, method string, args ...any) (T, error) {
	var zero T
	out, err := c.Call(ctx, method, args...)
	if err != nil {
		return zero, err
	}
	if len(out) == 0 {
		return zero, ErrEmptyResult
	}

	value := out[0]
	if v, ok := value.(T); ok {
		return v, nil
	}
	if addr, ok := value.(common.Address); ok {
		if v, ok := any(addr.Hex()).(T); ok {
			return v, nil
		}
	}
	return zero, &ConversionError{Value: value, Target: typeName[T]()}
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// Transact ABI-encodes the function and submits it as a state-changing
// transaction, blocking until the wait policy settles it. value is the
// native amount attached; nil means zero.
func (c *Contract) Transact(ctx context.Context, value *big.Int, method string, args ...any) (*types.Receipt, error) {
	input, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, &EncodingError{Method: method, Err: err}
	}
	return c.executeTransaction(ctx, input, value, method, false)
}

// RawTransact submits pre-encoded calldata as a transaction. Generated
// wrappers use it for fallback and receive functions.
func (c *Contract) RawTransact(ctx context.Context, data []byte, value *big.Int) (*types.Receipt, error) {
	return c.executeTransaction(ctx, data, value, "raw", false)
}

// IsValid checks that the code deployed at the handle's address matches the
// handle's creation bytecode, after stripping the compiler metadata hash
// from the fetched code. A node-level RPC error answers false rather than
// failing: validity is a yes/no question.
func (c *Contract) IsValid(ctx context.Context) (bool, error) {
	if c.binary == "" {
		return false, ErrBinaryNotProvided
	}
	if c.address == (common.Address{}) {
		return false, ErrAddressNotSet
	}

	code, err := c.backend.CodeAt(ctx, c.address, nil)
	if err != nil {
		if _, ok := asJSONError(err); ok {
			return false, nil
		}
		return false, &TransportError{Op: "eth_getCode", Err: err}
	}

	stripped := stripMetadata(hex.EncodeToString(code))
	if stripped == "" {
		return false, nil
	}
	// The stored binary may hold several concatenated contracts, so a
	// subset match is sufficient.
	return strings.Contains(strings.ToLower(cleanHexPrefix(c.binary)), stripped), nil
}

// Address returns the handle's resolved contract address.
func (c *Contract) Address() common.Address {
	return c.address
}

// SetAddress rebinds the handle to another deployment of the same contract.
func (c *Contract) SetAddress(address common.Address) {
	c.address = address
}

// Binary returns the creation bytecode the handle was built with.
func (c *Contract) Binary() string {
	return c.binary
}

// ABI returns the contract ABI.
func (c *Contract) ABI() abi.ABI {
	return c.abi
}

// GasStrategy returns the active gas strategy.
func (c *Contract) GasStrategy() *GasStrategy {
	return c.gas
}

// SetGasStrategy replaces the active gas strategy. Transactions already
// submitted are unaffected.
func (c *Contract) SetGasStrategy(gas *GasStrategy) {
	c.gas = gas
}

// SetGasPrice swaps in a static strategy with the new price, keeping the
// current constant limit.
func (c *Contract) SetGasPrice(price *big.Int) {
	c.gas = NewStaticGas(price, c.gas.StaticLimit())
}

// SetDefaultBlock sets the historical-state selector for subsequent read
// calls. Nil selects the latest state.
func (c *Contract) SetDefaultBlock(block *big.Int) {
	c.block = block
}

// DeploymentReceipt returns the receipt of this instance's own deployment.
// It is present only when the handle was created by Deploy.
func (c *Contract) DeploymentReceipt() (*types.Receipt, bool) {
	return c.receipt, c.receipt != nil
}

// SetDeployedAddress records a known deployment of this contract on the
// given network id.
func (c *Contract) SetDeployedAddress(networkID string, address common.Address) {
	c.deployed[networkID] = address
}

// DeployedAddress returns the recorded deployment for a network id.
func (c *Contract) DeployedAddress(networkID string) (common.Address, bool) {
	addr, ok := c.deployed[networkID]
	return addr, ok
}

// ParseABI parses a JSON ABI string.
func ParseABI(abiJSON string) (abi.ABI, error) {
	return abi.JSON(strings.NewReader(abiJSON))
}

// MustParseABI is like ParseABI but panics on error.
func MustParseABI(abiJSON string) abi.ABI {
	parsed, err := ParseABI(abiJSON)
	if err != nil {
		panic(err)
	}
	return parsed
}

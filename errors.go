package web3j

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Sentinel errors for common failure conditions.
var (
	// ErrBinaryNotProvided indicates the contract wrapper was built without
	// deployment bytecode, so bytecode-dependent operations are unavailable.
	ErrBinaryNotProvided = errors.New("web3j: contract binary not provided")

	// ErrAddressNotSet indicates the contract has no deployed address yet.
	ErrAddressNotSet = errors.New("web3j: contract address not set")

	// ErrNoContractAddress indicates a deployment receipt carried no created
	// contract address.
	ErrNoContractAddress = errors.New("web3j: empty contract address in deployment receipt")

	// ErrEmptyResult indicates the node returned no data (0x) for a call
	// that expects a single value.
	ErrEmptyResult = errors.New("web3j: empty value (0x) returned from contract")

	// ErrInvalidAddress indicates a name could not be resolved to an address.
	ErrInvalidAddress = errors.New("web3j: invalid contract address")
)

// TransportError indicates the node was unreachable or the RPC exchange
// failed below the protocol level. It is never retried here.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("web3j: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// JSONError is a well-formed error response from the node. Its text form is
// the structured data payload verbatim when present, otherwise
// "<code>: <message>".
type JSONError struct {
	Code    int
	Message string
	Data    string
}

func (e *JSONError) Error() string {
	if e.Data != "" {
		return e.Data
	}
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// ErrorCode returns the JSON-RPC error code.
func (e *JSONError) ErrorCode() int {
	return e.Code
}

// ErrorData returns the structured data payload attached to the error.
func (e *JSONError) ErrorData() interface{} {
	if e.Data == "" {
		return nil
	}
	return e.Data
}

// RevertError indicates a read-only call was reverted by the EVM.
type RevertError struct {
	Reason string // decoded human-readable reason, may be empty
	Data   string // raw ABI-encoded error payload, may be empty
}

func (e *RevertError) Error() string {
	return fmt.Sprintf("web3j: contract call reverted: %q", e.Reason)
}

// TxFailedError indicates a transaction was mined with a failed status.
// Reason and Data come from replaying the call at the receipt's block; the
// receipt itself carries no revert data on this chain family.
type TxFailedError struct {
	Hash    common.Hash
	Status  uint64
	GasUsed uint64
	Reason  string
	Data    string
	Receipt *types.Receipt
}

func (e *TxFailedError) Error() string {
	return fmt.Sprintf("web3j: transaction %s failed with status %#x; gas used: %d; revert reason: %q",
		e.Hash.Hex(), e.Status, e.GasUsed, e.Reason)
}

// ConversionError indicates a decoded return value could not be adapted to
// the representation the caller requested.
type ConversionError struct {
	Value  any
	Target string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("web3j: unable to convert response %v (%T) to expected type %s",
		e.Value, e.Value, e.Target)
}

// EncodingError indicates a failure ABI-encoding a function call or its
// arguments.
type EncodingError struct {
	Method string
	Err    error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("web3j: encoding %q: %v", e.Method, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

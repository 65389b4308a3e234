package web3j

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// revertSelector is the 4-byte selector of Error(string), the ABI-encoded
// revert-string convention emitted by solc.
var revertSelector = [4]byte{0x08, 0xc3, 0x79, 0xa0}

// offchainLookupPrefix is the selector of the EIP-3668 OffchainLookup error.
// Nodes report it with code 3 like a revert, but it signals an off-chain
// data fetch, not a failure.
const offchainLookupPrefix = "0x556f1830"

// revertErrorCode is the JSON-RPC error code nodes attach to execution
// reverts that carry return data.
const revertErrorCode = 3

// CallResult is the outcome of a read-only contract call: either raw return
// data or a structured node error. It classifies reverts and extracts
// human-readable reasons.
type CallResult struct {
	// Result is the raw return data; nil when the node reported an error.
	Result []byte

	// Err is the structured node error; nil when the call succeeded.
	Err *JSONError
}

// newCallResult classifies the outcome of a backend call. A non-nil second
// return value means the failure happened below the RPC protocol and no
// result could be derived.
func newCallResult(output []byte, err error) (*CallResult, error) {
	if err == nil {
		return &CallResult{Result: output}, nil
	}
	if je, ok := asJSONError(err); ok {
		return &CallResult{Err: je}, nil
	}
	return nil, &TransportError{Op: "eth_call", Err: err}
}

// IsReverted reports whether the outcome represents an EVM revert. An error
// with code 3 carrying data is a revert unless the data is an EIP-3668
// off-chain lookup; otherwise any node error, or a result beginning with
// the Error(string) selector, counts as reverted.
func (r *CallResult) IsReverted() bool {
	if r.Err != nil && r.Err.Code == revertErrorCode && r.Err.Data != "" {
		return !isOffchainLookup(r.Err.Data)
	}
	return r.Err != nil || r.errorInResult()
}

func (r *CallResult) errorInResult() bool {
	return len(r.Result) >= len(revertSelector) &&
		bytes.Equal(r.Result[:len(revertSelector)], revertSelector[:])
}

// RevertReason extracts a human-readable reason: the decoded Error(string)
// parameter when the result carries one, otherwise the node error message,
// otherwise empty.
func (r *CallResult) RevertReason() string {
	if r.errorInResult() {
		reason, err := abi.UnpackRevert(r.Result)
		if err != nil {
			return ""
		}
		return reason
	}
	if r.Err != nil {
		return r.Err.Message
	}
	return ""
}

// RevertReasonEncodedData returns the raw ABI-encoded error payload from
// the node error, independent of whether it decodes to a string.
func (r *CallResult) RevertReasonEncodedData() string {
	if r.Err != nil {
		return r.Err.Data
	}
	return ""
}

func isOffchainLookup(data string) bool {
	return strings.HasPrefix(strings.ToLower(data), offchainLookupPrefix)
}

// rpcError and rpcDataError mirror the structure of go-ethereum's JSON-RPC
// errors without importing the rpc package; any error exposing these
// methods is treated as a node response.
type rpcError interface {
	Error() string
	ErrorCode() int
}

type rpcDataError interface {
	Error() string
	ErrorData() interface{}
}

// asJSONError extracts the code, message and data payload from a node error.
// Returns false for transport-level failures that carry no error code.
func asJSONError(err error) (*JSONError, bool) {
	if je, ok := err.(*JSONError); ok {
		return je, true
	}
	re, ok := err.(rpcError)
	if !ok {
		return nil, false
	}
	je := &JSONError{
		Code:    re.ErrorCode(),
		Message: re.Error(),
	}
	if de, ok := err.(rpcDataError); ok && de.ErrorData() != nil {
		if s, ok := de.ErrorData().(string); ok {
			je.Data = s
		} else {
			je.Data = fmt.Sprintf("%v", de.ErrorData())
		}
	}
	return je, true
}

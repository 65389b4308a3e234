package web3j

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// revertPayload ABI-encodes Error(string) with the given reason.
func revertPayload(t *testing.T, reason string) []byte {
	t.Helper()
	stringTy, err := abi.NewType("string", "", nil)
	require.NoError(t, err)
	encoded, err := abi.Arguments{{Type: stringTy}}.Pack(reason)
	require.NoError(t, err)
	return append(revertSelector[:], encoded...)
}

func TestCallResultIsReverted(t *testing.T) {
	t.Run("clean result is not a revert", func(t *testing.T) {
		r := &CallResult{Result: []byte{0x00, 0x01}}

		assert.False(t, r.IsReverted())
		assert.Empty(t, r.RevertReason())
	})

	t.Run("result carrying the Error selector is a revert", func(t *testing.T) {
		r := &CallResult{Result: revertPayload(t, "Out of funds")}

		assert.True(t, r.IsReverted())
		assert.Equal(t, "Out of funds", r.RevertReason())
	})

	t.Run("code 3 with revert data is a revert", func(t *testing.T) {
		r := &CallResult{Err: &JSONError{Code: 3, Message: "execution reverted", Data: "0x08c379a0aabb"}}

		assert.True(t, r.IsReverted())
		assert.Equal(t, "0x08c379a0aabb", r.RevertReasonEncodedData())
	})

	t.Run("code 3 with an off-chain lookup payload is not a revert", func(t *testing.T) {
		r := &CallResult{Err: &JSONError{Code: 3, Message: "execution reverted", Data: "0x556f1830"}}

		assert.False(t, r.IsReverted())
	})

	t.Run("off-chain lookup with trailing payload is not a revert", func(t *testing.T) {
		r := &CallResult{Err: &JSONError{Code: 3, Message: "execution reverted", Data: "0x556F1830" + "deadbeef"}}

		assert.False(t, r.IsReverted())
	})

	t.Run("any other node error is a revert", func(t *testing.T) {
		r := &CallResult{Err: &JSONError{Code: -32000, Message: "intrinsic gas too low"}}

		assert.True(t, r.IsReverted())
		assert.Equal(t, "intrinsic gas too low", r.RevertReason())
		assert.Empty(t, r.RevertReasonEncodedData())
	})
}

func TestCallResultRevertReason(t *testing.T) {
	t.Run("decoded reason wins over the error message", func(t *testing.T) {
		r := &CallResult{Result: revertPayload(t, "Out of funds")}

		assert.Equal(t, "Out of funds", r.RevertReason())
	})

	t.Run("truncated payload yields no reason", func(t *testing.T) {
		r := &CallResult{Result: revertSelector[:]}

		assert.True(t, r.IsReverted())
		assert.Empty(t, r.RevertReason())
	})
}

func TestNewCallResult(t *testing.T) {
	t.Run("success carries the raw result", func(t *testing.T) {
		r, err := newCallResult([]byte{0x01}, nil)

		require.NoError(t, err)
		assert.Equal(t, []byte{0x01}, r.Result)
		assert.Nil(t, r.Err)
	})

	t.Run("structured node error becomes the Err field", func(t *testing.T) {
		r, err := newCallResult(nil, &JSONError{Code: 3, Message: "execution reverted", Data: "0xaabb"})

		require.NoError(t, err)
		require.NotNil(t, r.Err)
		assert.Equal(t, 3, r.Err.Code)
		assert.Equal(t, "0xaabb", r.Err.Data)
	})

	t.Run("plain error is a transport failure", func(t *testing.T) {
		_, err := newCallResult(nil, errors.New("dial tcp: connection refused"))

		var terr *TransportError
		require.ErrorAs(t, err, &terr)
	})
}

// dataErr mimics go-ethereum's unexported JSON-RPC error type.
type dataErr struct {
	code int
	msg  string
	data interface{}
}

func (e *dataErr) Error() string          { return e.msg }
func (e *dataErr) ErrorCode() int         { return e.code }
func (e *dataErr) ErrorData() interface{} { return e.data }

func TestAsJSONError(t *testing.T) {
	t.Run("extracts code, message and string data", func(t *testing.T) {
		je, ok := asJSONError(&dataErr{code: 3, msg: "execution reverted", data: "0x1122"})

		require.True(t, ok)
		assert.Equal(t, 3, je.Code)
		assert.Equal(t, "execution reverted", je.Message)
		assert.Equal(t, "0x1122", je.Data)
	})

	t.Run("stringifies non-string data", func(t *testing.T) {
		je, ok := asJSONError(&dataErr{code: 3, msg: "oops", data: 42})

		require.True(t, ok)
		assert.Equal(t, "42", je.Data)
	})

	t.Run("rejects errors without a code", func(t *testing.T) {
		_, ok := asJSONError(errors.New("plain"))

		assert.False(t, ok)
	})
}

func TestJSONErrorText(t *testing.T) {
	t.Run("data payload verbatim when present", func(t *testing.T) {
		err := &JSONError{Code: 3, Message: "execution reverted", Data: "0x08c379a0"}

		assert.Equal(t, "0x08c379a0", err.Error())
	})

	t.Run("code and message otherwise", func(t *testing.T) {
		err := &JSONError{Code: -32000, Message: "nonce too low"}

		assert.Equal(t, "-32000: nonce too low", err.Error())
	})
}

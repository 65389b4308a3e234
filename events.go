package web3j

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// EventValues holds the decoded parameters of one log matched against an
// ABI event, in declared parameter order, plus the originating log.
type EventValues struct {
	Indexed    []any
	NonIndexed []any
	Log        *types.Log
}

// ExtractEventValues matches a log against an event and decodes its
// parameters. Returns (nil, nil) when the log's first topic does not equal
// the event's signature hash, or the log has no topics. Usable without a
// contract handle for stateless log processing.
func ExtractEventValues(event abi.Event, log types.Log) (*EventValues, error) {
	if len(log.Topics) == 0 || log.Topics[0] != event.ID {
		return nil, nil
	}

	nonIndexed, err := event.Inputs.NonIndexed().Unpack(log.Data)
	if err != nil {
		return nil, &EncodingError{Method: event.Name, Err: err}
	}

	var indexed []any
	topic := 1
	for _, input := range event.Inputs {
		if !input.Indexed {
			continue
		}
		if topic >= len(log.Topics) {
			return nil, &EncodingError{
				Method: event.Name,
				Err:    fmt.Errorf("log has %d topics, event declares more indexed parameters", len(log.Topics)),
			}
		}
		value, err := decodeIndexedValue(input, log.Topics[topic])
		if err != nil {
			return nil, &EncodingError{Method: event.Name, Err: err}
		}
		indexed = append(indexed, value)
		topic++
	}

	return &EventValues{
		Indexed:    indexed,
		NonIndexed: nonIndexed,
		Log:        &log,
	}, nil
}

// decodeIndexedValue decodes a single topic against the parameter's type.
// Reference types (strings, bytes, arrays, tuples) are stored in topics as
// their keccak hash, so only the hash itself can be recovered.
func decodeIndexedValue(input abi.Argument, topic common.Hash) (any, error) {
	switch input.Type.T {
	case abi.StringTy, abi.BytesTy, abi.SliceTy, abi.ArrayTy, abi.TupleTy:
		return topic, nil
	default:
		values, err := abi.Arguments{{Type: input.Type}}.Unpack(topic.Bytes())
		if err != nil {
			return nil, err
		}
		return values[0], nil
	}
}

// ExtractEventsFromReceipt applies ExtractEventValues over a receipt's logs,
// discarding non-matches, in log order.
func ExtractEventsFromReceipt(event abi.Event, receipt *types.Receipt) ([]*EventValues, error) {
	var matches []*EventValues
	for _, log := range receipt.Logs {
		ev, err := ExtractEventValues(event, *log)
		if err != nil {
			return nil, err
		}
		if ev != nil {
			matches = append(matches, ev)
		}
	}
	return matches, nil
}

// ExtractEvents decodes the named event from the handle's ABI across a
// receipt's logs.
func (c *Contract) ExtractEvents(name string, receipt *types.Receipt) ([]*EventValues, error) {
	event, ok := c.abi.Events[name]
	if !ok {
		return nil, &EncodingError{Method: name, Err: fmt.Errorf("event not found in contract ABI")}
	}
	return ExtractEventsFromReceipt(event, receipt)
}

// Package ledger is the read boundary to the Sui JSON-RPC surface.
//
// Everything above this package works with the small owned types defined
// here (ObjectMeta, CoinInfo, InspectResult) rather than raw RPC response
// shapes, so composition and resolution logic can be tested against fakes.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/pattonkan/sui-go/sui"
	"github.com/pattonkan/sui-go/sui/suiptb"
)

// Logger defines a standard interface for structured, leveled logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	// ErrNotShared reports an object addressed as shared whose ledger
	// record says otherwise.
	ErrNotShared = errors.New("object is not shared")

	// ErrNotOwned reports an object addressed by exact reference whose
	// ledger record says it is shared.
	ErrNotOwned = errors.New("object is not exclusively owned")
)

// ObjectMeta is the addressing record of one on-chain object. Exactly one
// of Shared or Owned is set: shared objects are addressed by id plus the
// version at which they first became shared, everything else by exact
// reference (id, version, digest).
type ObjectMeta struct {
	Shared *suiptb.SharedObjectArg
	Owned  *sui.ObjectRef
}

// IsShared reports whether the object is in shared consensus state.
func (m ObjectMeta) IsShared() bool { return m.Shared != nil }

// SharedArg builds a shared-object call argument with the requested
// mutability. The receiver is not modified: each call gets its own copy,
// so the same object can appear read-only in one command and mutable in
// another.
func (m ObjectMeta) SharedArg(mutable bool) (suiptb.ObjectArg, error) {
	if m.Shared == nil {
		return suiptb.ObjectArg{}, ErrNotShared
	}
	arg := *m.Shared
	arg.Mutable = mutable
	return suiptb.ObjectArg{SharedObject: &arg}, nil
}

// OwnedArg builds an exact-reference call argument.
func (m ObjectMeta) OwnedArg() (suiptb.ObjectArg, error) {
	if m.Owned == nil {
		return suiptb.ObjectArg{}, ErrNotOwned
	}
	return suiptb.ObjectArg{ImmOrOwnedObject: m.Owned}, nil
}

// CoinInfo is one fungible coin object held by an address.
type CoinInfo struct {
	Ref     *sui.ObjectRef
	Balance uint64
}

// ReturnValue is one BCS-encoded value returned by a simulated call.
type ReturnValue struct {
	Bytes []byte
	Type  string
}

// CallResult holds the return values of one command in a simulated
// transaction, in declaration order.
type CallResult struct {
	ReturnValues []ReturnValue
}

// InspectResult is the outcome of simulating a transaction without
// executing it. Error is the node-reported execution failure, empty on
// success.
type InspectResult struct {
	Error   string
	Results []CallResult
}

// ObjectReader fetches object addressing records.
type ObjectReader interface {
	ObjectMeta(ctx context.Context, id *sui.ObjectId) (ObjectMeta, error)
}

// CoinReader lists the coin objects of an owner. An empty coinType selects
// the default gas coin.
type CoinReader interface {
	Coins(ctx context.Context, owner *sui.Address, coinType string) ([]CoinInfo, error)
}

// Inspector simulates a transaction kind against current ledger state.
type Inspector interface {
	Inspect(ctx context.Context, sender *sui.Address, txKindBytes []byte) (InspectResult, error)
}

// decodeReturnValue converts one JSON-decoded return value, a two-element
// array of byte values and a type string, into a ReturnValue.
func decodeReturnValue(v any) (ReturnValue, error) {
	pair, ok := v.([]any)
	if !ok || len(pair) != 2 {
		return ReturnValue{}, fmt.Errorf("malformed return value: want [bytes, type] pair, got %T", v)
	}
	raw, ok := pair[0].([]any)
	if !ok {
		return ReturnValue{}, fmt.Errorf("malformed return value bytes: got %T", pair[0])
	}
	b := make([]byte, len(raw))
	for i, e := range raw {
		f, ok := e.(float64)
		if !ok {
			return ReturnValue{}, fmt.Errorf("malformed return value byte at %d: got %T", i, e)
		}
		b[i] = byte(f)
	}
	typ, ok := pair[1].(string)
	if !ok {
		return ReturnValue{}, fmt.Errorf("malformed return value type: got %T", pair[1])
	}
	return ReturnValue{Bytes: b, Type: typ}, nil
}

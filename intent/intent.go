// Package intent accumulates a programmable transaction as an ordered,
// append-only buffer of arguments and commands.
//
// Composition is all-or-nothing: the first failure latches on the Builder,
// every later append becomes a no-op, and Finish reports that first error.
// Callers chain appends freely and check a single error at the end.
package intent

import (
	"errors"
	"fmt"

	"github.com/pattonkan/sui-go/sui"
	"github.com/pattonkan/sui-go/sui/suiptb"
)

// ErrFinalized reports use of a Builder after Finish.
var ErrFinalized = errors.New("intent: builder already finalized")

// Builder wraps the programmable transaction buffer with a sticky error
// latch. Not safe for concurrent use.
type Builder struct {
	ptb       *suiptb.ProgrammableTransactionBuilder
	err       error
	finalized bool
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{ptb: suiptb.NewTransactionDataTransactionBuilder()}
}

// Fail latches an error on the Builder. The first latched error wins;
// later calls are ignored.
func (b *Builder) Fail(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

// Err returns the latched error, if any.
func (b *Builder) Err() error { return b.err }

func (b *Builder) broken() bool {
	if b.finalized {
		b.Fail(ErrFinalized)
	}
	return b.err != nil
}

// Object appends an object input and returns its argument handle.
// Identical inputs are deduplicated by the underlying buffer.
func (b *Builder) Object(arg suiptb.ObjectArg) suiptb.Argument {
	if b.broken() {
		return suiptb.Argument{}
	}
	return b.ptb.MustObj(arg)
}

// Pure appends a BCS-serialized value input and returns its argument
// handle.
func (b *Builder) Pure(v any) suiptb.Argument {
	if b.broken() {
		return suiptb.Argument{}
	}
	return b.ptb.MustPure(v)
}

// Command appends a command and returns the handle of its result.
func (b *Builder) Command(cmd suiptb.Command) suiptb.Argument {
	if b.broken() {
		return suiptb.Argument{}
	}
	return b.ptb.Command(cmd)
}

// MoveCall appends a Move call command.
func (b *Builder) MoveCall(
	pkg *sui.PackageId,
	module, function sui.Identifier,
	typeArgs []sui.TypeTag,
	args []suiptb.Argument,
) suiptb.Argument {
	return b.Command(suiptb.Command{
		MoveCall: &suiptb.ProgrammableMoveCall{
			Package:       pkg,
			Module:        module,
			Function:      function,
			TypeArguments: typeArgs,
			Arguments:     args,
		},
	})
}

// NestedResult addresses the index-th value of a command that returned
// more than one. The handle must come from Command or MoveCall on this
// Builder.
func (b *Builder) NestedResult(result suiptb.Argument, index uint16) suiptb.Argument {
	if b.broken() {
		return suiptb.Argument{}
	}
	if result.Result == nil {
		b.Fail(errors.New("intent: nested result requires a command result handle"))
		return suiptb.Argument{}
	}
	return suiptb.Argument{NestedResult: &suiptb.NestedResult{
		Cmd:    *result.Result,
		Result: index,
	}}
}

// Finish seals the Builder and returns the accumulated transaction. A
// latched error fails the whole intent; a second Finish is an error.
func (b *Builder) Finish() (suiptb.ProgrammableTransaction, error) {
	if b.finalized {
		return suiptb.ProgrammableTransaction{}, ErrFinalized
	}
	b.finalized = true
	if b.err != nil {
		return suiptb.ProgrammableTransaction{}, fmt.Errorf("intent failed: %w", b.err)
	}
	return b.ptb.Finish(), nil
}

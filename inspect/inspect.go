// Package inspect finalizes a composed intent and evaluates it as a
// dry run against the ledger, decoding the BCS return values into typed
// results. Nothing here signs or submits anything.
package inspect

import (
	"context"
	"errors"
	"fmt"

	"github.com/fardream/go-bcs/bcs"
	"github.com/pattonkan/sui-go/sui"
	"github.com/pattonkan/sui-go/sui/suiptb"
	"github.com/pattonkan/sui-go/suiclient"

	"github.com/deepbookgo/deepbook-client-go/config"
	"github.com/deepbookgo/deepbook-client-go/intent"
	"github.com/deepbookgo/deepbook-client-go/ledger"
)

var (
	// ErrSimulationFailed reports an execution failure surfaced by the node
	// during the dry run.
	ErrSimulationFailed = errors.New("simulation failed")

	// ErrNoResults reports a dry run that produced no command results.
	ErrNoResults = errors.New("simulation returned no results")

	// ErrNoReturnValues reports a first command that produced no return
	// values to decode.
	ErrNoReturnValues = errors.New("first command returned no values")
)

// VecSet mirrors the on-chain vec_set::VecSet layout for BCS decoding.
type VecSet[T any] struct {
	Contents []T
}

// Executor runs composed intents as dry runs under a fixed sender.
type Executor struct {
	inspector ledger.Inspector
	sender    *sui.Address
	logger    ledger.Logger
}

// NewExecutor creates an Executor evaluating under the given sender
// address.
func NewExecutor(inspector ledger.Inspector, sender *sui.Address, logger ledger.Logger) *Executor {
	return &Executor{inspector: inspector, sender: sender, logger: logger}
}

// Run finalizes the intent, submits it for dry-run evaluation, and decodes
// the first return value of the first command into out, which must be a
// pointer to a BCS-decodable value.
func (e *Executor) Run(ctx context.Context, b *intent.Builder, out any) error {
	pt, err := b.Finish()
	if err != nil {
		return err
	}
	tx := suiptb.NewTransactionData(e.sender, pt, nil, config.GasBudget, suiclient.DefaultGasPrice)
	kindBytes, err := bcs.Marshal(tx.V1.Kind)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction kind: %w", err)
	}

	res, err := e.inspector.Inspect(ctx, e.sender, kindBytes)
	if err != nil {
		return err
	}
	if res.Error != "" {
		return fmt.Errorf("%w: %s", ErrSimulationFailed, res.Error)
	}
	if len(res.Results) == 0 {
		return ErrNoResults
	}
	first := res.Results[0]
	if len(first.ReturnValues) == 0 {
		return ErrNoReturnValues
	}

	value := first.ReturnValues[0]
	e.logger.Debug("Decoding dry-run return value", "type", value.Type, "bytes", len(value.Bytes))
	if _, err := bcs.Unmarshal(value.Bytes, out); err != nil {
		return fmt.Errorf("failed to decode %s return value: %w", value.Type, err)
	}
	return nil
}

// RunCheck runs the intent and reports only whether the dry run executed,
// discarding return values. Useful for validating write compositions
// before signing them elsewhere.
func (e *Executor) RunCheck(ctx context.Context, b *intent.Builder) error {
	pt, err := b.Finish()
	if err != nil {
		return err
	}
	tx := suiptb.NewTransactionData(e.sender, pt, nil, config.GasBudget, suiclient.DefaultGasPrice)
	kindBytes, err := bcs.Marshal(tx.V1.Kind)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction kind: %w", err)
	}
	res, err := e.inspector.Inspect(ctx, e.sender, kindBytes)
	if err != nil {
		return err
	}
	if res.Error != "" {
		return fmt.Errorf("%w: %s", ErrSimulationFailed, res.Error)
	}
	return nil
}

// RunUint64 runs the intent and decodes a u64 result.
func (e *Executor) RunUint64(ctx context.Context, b *intent.Builder) (uint64, error) {
	var v uint64
	if err := e.Run(ctx, b, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// RunBool runs the intent and decodes a bool result.
func (e *Executor) RunBool(ctx context.Context, b *intent.Builder) (bool, error) {
	var v bool
	if err := e.Run(ctx, b, &v); err != nil {
		return false, err
	}
	return v, nil
}

// RunOrderIds runs the intent and decodes a VecSet of u128 order ids.
func (e *Executor) RunOrderIds(ctx context.Context, b *intent.Builder) ([]bcs.Uint128, error) {
	var v VecSet[bcs.Uint128]
	if err := e.Run(ctx, b, &v); err != nil {
		return nil, err
	}
	return v.Contents, nil
}

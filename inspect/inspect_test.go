package inspect

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/pattonkan/sui-go/sui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepbookgo/deepbook-client-go/intent"
	"github.com/deepbookgo/deepbook-client-go/ledger"
)

type fakeInspector struct {
	result ledger.InspectResult
	err    error

	gotSender *sui.Address
	gotBytes  []byte
}

func (f *fakeInspector) Inspect(_ context.Context, sender *sui.Address, txKindBytes []byte) (ledger.InspectResult, error) {
	f.gotSender = sender
	f.gotBytes = txKindBytes
	return f.result, f.err
}

func newExecutor(fake *fakeInspector) *Executor {
	sender := sui.MustObjectIdFromHex("0x00000000000000000000000000000000000000000000000000000000000000a1")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewExecutor(fake, sender, logger)
}

func newIntent() *intent.Builder {
	b := intent.NewBuilder()
	b.MoveCall(sui.MustObjectIdFromHex("0x2"), "pay", "join", nil, nil)
	return b
}

func u64Bytes(v uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return b
}

func returning(values ...ledger.ReturnValue) ledger.InspectResult {
	return ledger.InspectResult{Results: []ledger.CallResult{{ReturnValues: values}}}
}

func TestRun(t *testing.T) {
	t.Run("DecodesUint64", func(t *testing.T) {
		fake := &fakeInspector{result: returning(ledger.ReturnValue{Bytes: u64Bytes(1_500_000_000), Type: "u64"})}
		e := newExecutor(fake)

		got, err := e.RunUint64(context.Background(), newIntent())
		require.NoError(t, err)
		assert.Equal(t, uint64(1_500_000_000), got)
		assert.NotEmpty(t, fake.gotBytes, "transaction kind bytes must be submitted")
		assert.NotNil(t, fake.gotSender)
	})

	t.Run("DecodesBool", func(t *testing.T) {
		fake := &fakeInspector{result: returning(ledger.ReturnValue{Bytes: []byte{1}, Type: "bool"})}
		e := newExecutor(fake)

		got, err := e.RunBool(context.Background(), newIntent())
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("DecodesOrderIdVecSet", func(t *testing.T) {
		// two u128 entries, little endian
		payload := []byte{2}
		one := make([]byte, 16)
		one[0] = 1
		two := make([]byte, 16)
		two[0] = 2
		payload = append(payload, one...)
		payload = append(payload, two...)

		fake := &fakeInspector{result: returning(ledger.ReturnValue{Bytes: payload, Type: "vec_set"})}
		e := newExecutor(fake)

		ids, err := e.RunOrderIds(context.Background(), newIntent())
		require.NoError(t, err)
		require.Len(t, ids, 2)
		assert.Equal(t, "1", ids[0].String())
		assert.Equal(t, "2", ids[1].String())
	})

	t.Run("PoisonedIntent", func(t *testing.T) {
		fake := &fakeInspector{}
		e := newExecutor(fake)
		b := intent.NewBuilder()
		b.Fail(errors.New("bad key"))

		err := e.Run(context.Background(), b, new(uint64))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad key")
		assert.Empty(t, fake.gotBytes, "poisoned intent must not reach the ledger")
	})

	t.Run("SimulationError", func(t *testing.T) {
		fake := &fakeInspector{result: ledger.InspectResult{Error: "MoveAbort 3"}}
		e := newExecutor(fake)

		err := e.Run(context.Background(), newIntent(), new(uint64))
		assert.ErrorIs(t, err, ErrSimulationFailed)
		assert.Contains(t, err.Error(), "MoveAbort 3")
	})

	t.Run("NoResults", func(t *testing.T) {
		fake := &fakeInspector{result: ledger.InspectResult{}}
		e := newExecutor(fake)

		err := e.Run(context.Background(), newIntent(), new(uint64))
		assert.ErrorIs(t, err, ErrNoResults)
	})

	t.Run("NoReturnValues", func(t *testing.T) {
		fake := &fakeInspector{result: returning()}
		e := newExecutor(fake)

		err := e.Run(context.Background(), newIntent(), new(uint64))
		assert.ErrorIs(t, err, ErrNoReturnValues)
	})

	t.Run("InspectorError", func(t *testing.T) {
		boom := errors.New("rpc down")
		fake := &fakeInspector{err: boom}
		e := newExecutor(fake)

		err := e.Run(context.Background(), newIntent(), new(uint64))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("DecodeFailure", func(t *testing.T) {
		fake := &fakeInspector{result: returning(ledger.ReturnValue{Bytes: []byte{1, 2}, Type: "u64"})}
		e := newExecutor(fake)

		err := e.Run(context.Background(), newIntent(), new(uint64))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "u64")
	})
}

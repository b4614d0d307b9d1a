package intent

import (
	"errors"
	"testing"

	"github.com/pattonkan/sui-go/sui"
	"github.com/pattonkan/sui-go/sui/suiptb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderAppendsInOrder(t *testing.T) {
	b := NewBuilder()

	coin := b.Pure(uint64(100))
	b.MoveCall(
		sui.MustObjectIdFromHex("0x2"),
		"pay", "split",
		nil,
		[]suiptb.Argument{coin},
	)
	b.MoveCall(
		sui.MustObjectIdFromHex("0x2"),
		"pay", "join",
		nil,
		nil,
	)

	pt, err := b.Finish()
	require.NoError(t, err)
	require.Len(t, pt.Commands, 2)
	assert.Equal(t, sui.Identifier("split"), pt.Commands[0].MoveCall.Function)
	assert.Equal(t, sui.Identifier("join"), pt.Commands[1].MoveCall.Function)
}

func TestBuilderErrorLatch(t *testing.T) {
	t.Run("FirstErrorWins", func(t *testing.T) {
		b := NewBuilder()
		first := errors.New("first")
		b.Fail(first)
		b.Fail(errors.New("second"))
		assert.ErrorIs(t, b.Err(), first)
	})

	t.Run("AppendsAfterFailureAreNoOps", func(t *testing.T) {
		b := NewBuilder()
		b.Pure(uint64(1))
		b.Fail(errors.New("boom"))
		b.Pure(uint64(2))
		b.MoveCall(sui.MustObjectIdFromHex("0x2"), "pay", "join", nil, nil)

		_, err := b.Finish()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("NilFailIsIgnored", func(t *testing.T) {
		b := NewBuilder()
		b.Fail(nil)
		assert.NoError(t, b.Err())
	})
}

func TestBuilderFinalizeOnce(t *testing.T) {
	b := NewBuilder()
	b.Pure(uint64(1))

	_, err := b.Finish()
	require.NoError(t, err)

	_, err = b.Finish()
	assert.ErrorIs(t, err, ErrFinalized)

	b.Pure(uint64(2))
	assert.ErrorIs(t, b.Err(), ErrFinalized)
}

func TestBuilderDeduplicatesObjectInputs(t *testing.T) {
	b := NewBuilder()
	arg := suiptb.ObjectArg{SharedObject: &suiptb.SharedObjectArg{
		Id:                   sui.SuiObjectIdClock,
		InitialSharedVersion: sui.SuiClockObjectSharedVersion,
		Mutable:              false,
	}}

	first := b.Object(arg)
	second := b.Object(arg)
	assert.Equal(t, first, second)

	_, err := b.Finish()
	require.NoError(t, err)
}

package ledger

import (
	"testing"

	"github.com/pattonkan/sui-go/sui"
	"github.com/pattonkan/sui-go/sui/suiptb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectMetaSharedArg(t *testing.T) {
	id := sui.MustObjectIdFromHex("0x5")
	meta := ObjectMeta{Shared: &suiptb.SharedObjectArg{
		Id:                   id,
		InitialSharedVersion: 42,
	}}

	t.Run("MutabilityPerCall", func(t *testing.T) {
		ro, err := meta.SharedArg(false)
		require.NoError(t, err)
		rw, err := meta.SharedArg(true)
		require.NoError(t, err)

		assert.False(t, ro.SharedObject.Mutable)
		assert.True(t, rw.SharedObject.Mutable)
		assert.Equal(t, id, ro.SharedObject.Id)
		assert.Equal(t, rw.SharedObject.InitialSharedVersion, ro.SharedObject.InitialSharedVersion)
	})

	t.Run("DoesNotAliasReceiver", func(t *testing.T) {
		arg, err := meta.SharedArg(true)
		require.NoError(t, err)
		assert.NotSame(t, meta.Shared, arg.SharedObject)
		assert.False(t, meta.Shared.Mutable, "receiver must stay untouched")
	})

	t.Run("NotShared", func(t *testing.T) {
		_, err := ObjectMeta{Owned: &sui.ObjectRef{}}.SharedArg(true)
		assert.ErrorIs(t, err, ErrNotShared)
	})
}

func TestObjectMetaOwnedArg(t *testing.T) {
	ref := &sui.ObjectRef{ObjectId: sui.MustObjectIdFromHex("0x7"), Version: 3}

	t.Run("Owned", func(t *testing.T) {
		arg, err := ObjectMeta{Owned: ref}.OwnedArg()
		require.NoError(t, err)
		assert.Equal(t, ref, arg.ImmOrOwnedObject)
	})

	t.Run("NotOwned", func(t *testing.T) {
		_, err := ObjectMeta{Shared: &suiptb.SharedObjectArg{}}.OwnedArg()
		assert.ErrorIs(t, err, ErrNotOwned)
	})
}

func TestDecodeReturnValue(t *testing.T) {
	t.Run("WellFormed", func(t *testing.T) {
		v, err := decodeReturnValue([]any{[]any{float64(1), float64(0), float64(255)}, "u64"})
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 0, 255}, v.Bytes)
		assert.Equal(t, "u64", v.Type)
	})

	t.Run("Empty", func(t *testing.T) {
		v, err := decodeReturnValue([]any{[]any{}, "bool"})
		require.NoError(t, err)
		assert.Empty(t, v.Bytes)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, in := range []any{
			"nope",
			[]any{},
			[]any{[]any{float64(1)}},
			[]any{"bytes", "u64"},
			[]any{[]any{"x"}, "u64"},
			[]any{[]any{float64(1)}, 7},
		} {
			_, err := decodeReturnValue(in)
			assert.Error(t, err, "input %v", in)
		}
	})
}

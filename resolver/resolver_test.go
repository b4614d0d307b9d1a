package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/pattonkan/sui-go/sui"
	"github.com/pattonkan/sui-go/sui/suiptb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepbookgo/deepbook-client-go/intent"
	"github.com/deepbookgo/deepbook-client-go/ledger"
)

const (
	sharedId = "0x00000000000000000000000000000000000000000000000000000000000000aa"
	ownedId  = "0x00000000000000000000000000000000000000000000000000000000000000bb"
)

// fakeObjects serves canned addressing records keyed by object id.
type fakeObjects struct {
	metas map[string]ledger.ObjectMeta
	errs  map[string]error
	calls int
}

func (f *fakeObjects) ObjectMeta(_ context.Context, id *sui.ObjectId) (ledger.ObjectMeta, error) {
	f.calls++
	if err, ok := f.errs[id.String()]; ok {
		return ledger.ObjectMeta{}, err
	}
	meta, ok := f.metas[id.String()]
	if !ok {
		return ledger.ObjectMeta{}, errors.New("object not found")
	}
	return meta, nil
}

func newFake() *fakeObjects {
	shared := sui.MustObjectIdFromHex(sharedId)
	owned := sui.MustObjectIdFromHex(ownedId)
	return &fakeObjects{
		metas: map[string]ledger.ObjectMeta{
			shared.String(): {Shared: &suiptb.SharedObjectArg{Id: shared, InitialSharedVersion: 7}},
			owned.String():  {Owned: &sui.ObjectRef{ObjectId: owned, Version: 12}},
		},
		errs: map[string]error{},
	}
}

func TestSharedObject(t *testing.T) {
	t.Run("Resolves", func(t *testing.T) {
		fake := newFake()
		r := New(fake)
		b := intent.NewBuilder()

		r.SharedObject(context.Background(), b, sharedId, true)
		require.NoError(t, b.Err())
		assert.Equal(t, 1, fake.calls)

		_, err := b.Finish()
		require.NoError(t, err)
	})

	t.Run("OwnershipMismatch", func(t *testing.T) {
		r := New(newFake())
		b := intent.NewBuilder()

		r.SharedObject(context.Background(), b, ownedId, false)
		assert.ErrorIs(t, b.Err(), ledger.ErrNotShared)
	})

	t.Run("MalformedIdDetectedLocally", func(t *testing.T) {
		fake := newFake()
		r := New(fake)
		b := intent.NewBuilder()

		r.SharedObject(context.Background(), b, "not-hex", false)
		assert.ErrorIs(t, b.Err(), ErrMalformedId)
		assert.Zero(t, fake.calls, "no remote call for a locally rejected id")
	})

	t.Run("FetchErrorWrapped", func(t *testing.T) {
		fake := newFake()
		boom := errors.New("rpc down")
		fake.errs[sui.MustObjectIdFromHex(sharedId).String()] = boom
		r := New(fake)
		b := intent.NewBuilder()

		r.SharedObject(context.Background(), b, sharedId, false)
		assert.ErrorIs(t, b.Err(), boom)
	})
}

func TestOwnedObject(t *testing.T) {
	t.Run("Resolves", func(t *testing.T) {
		r := New(newFake())
		b := intent.NewBuilder()

		r.OwnedObject(context.Background(), b, ownedId)
		require.NoError(t, b.Err())
	})

	t.Run("OwnershipMismatch", func(t *testing.T) {
		r := New(newFake())
		b := intent.NewBuilder()

		r.OwnedObject(context.Background(), b, sharedId)
		assert.ErrorIs(t, b.Err(), ledger.ErrNotOwned)
	})
}

func TestClock(t *testing.T) {
	r := New(newFake())
	b := intent.NewBuilder()

	first := r.Clock(b)
	second := r.Clock(b)
	assert.Equal(t, first, second, "clock input is deduplicated")
	require.NoError(t, b.Err())
}

func TestPoisonedBuilderSkipsRemoteCalls(t *testing.T) {
	fake := newFake()
	r := New(fake)
	b := intent.NewBuilder()
	b.Fail(errors.New("earlier failure"))

	r.SharedObject(context.Background(), b, sharedId, true)
	r.OwnedObject(context.Background(), b, ownedId)
	assert.Zero(t, fake.calls)
}

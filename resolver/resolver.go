// Package resolver turns configured object ids into call arguments.
//
// Shared objects are addressed by id and initial shared version with the
// mutability the call site requests; exclusively owned objects by exact
// reference. Failures latch on the intent Builder, so a resolution error
// anywhere poisons the whole composition instead of producing a partial
// transaction.
package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/pattonkan/sui-go/sui"
	"github.com/pattonkan/sui-go/sui/suiptb"

	"github.com/deepbookgo/deepbook-client-go/intent"
	"github.com/deepbookgo/deepbook-client-go/ledger"
)

// ErrMalformedId reports an object id that does not parse as hex. It is
// detected locally, before any remote call.
var ErrMalformedId = errors.New("malformed object id")

// Resolver resolves object ids against a ledger reader.
type Resolver struct {
	objects ledger.ObjectReader
}

// New creates a Resolver over the given object reader.
func New(objects ledger.ObjectReader) *Resolver {
	return &Resolver{objects: objects}
}

// SharedObject resolves id as a shared object and appends it with the
// requested mutability. A non-shared object latches ledger.ErrNotShared.
func (r *Resolver) SharedObject(ctx context.Context, b *intent.Builder, id string, mutable bool) suiptb.Argument {
	meta, ok := r.fetch(ctx, b, id)
	if !ok {
		return suiptb.Argument{}
	}
	arg, err := meta.SharedArg(mutable)
	if err != nil {
		b.Fail(fmt.Errorf("object %s: %w", id, err))
		return suiptb.Argument{}
	}
	return b.Object(arg)
}

// OwnedObject resolves id as an exclusively owned object and appends it by
// exact reference. A shared object latches ledger.ErrNotOwned.
func (r *Resolver) OwnedObject(ctx context.Context, b *intent.Builder, id string) suiptb.Argument {
	meta, ok := r.fetch(ctx, b, id)
	if !ok {
		return suiptb.Argument{}
	}
	arg, err := meta.OwnedArg()
	if err != nil {
		b.Fail(fmt.Errorf("object %s: %w", id, err))
		return suiptb.Argument{}
	}
	return b.Object(arg)
}

// Clock appends the system clock as a read-only shared argument. Its id
// and initial shared version are protocol constants, so no remote call is
// needed.
func (r *Resolver) Clock(b *intent.Builder) suiptb.Argument {
	return b.Object(suiptb.ObjectArg{SharedObject: &suiptb.SharedObjectArg{
		Id:                   sui.SuiObjectIdClock,
		InitialSharedVersion: sui.SuiClockObjectSharedVersion,
		Mutable:              false,
	}})
}

// fetch parses the id and reads its addressing record. A poisoned Builder
// short-circuits before the remote call.
func (r *Resolver) fetch(ctx context.Context, b *intent.Builder, id string) (ledger.ObjectMeta, bool) {
	if b.Err() != nil {
		return ledger.ObjectMeta{}, false
	}
	objectId, err := sui.ObjectIdFromHex(id)
	if err != nil {
		b.Fail(fmt.Errorf("%w: %q: %v", ErrMalformedId, id, err))
		return ledger.ObjectMeta{}, false
	}
	meta, err := r.objects.ObjectMeta(ctx, objectId)
	if err != nil {
		b.Fail(fmt.Errorf("resolve object %s: %w", id, err))
		return ledger.ObjectMeta{}, false
	}
	return meta, true
}

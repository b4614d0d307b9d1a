package flashloan

import (
	"context"
	"testing"

	"github.com/pattonkan/sui-go/sui"
	"github.com/pattonkan/sui-go/sui/suiptb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepbookgo/deepbook-client-go/config"
	"github.com/deepbookgo/deepbook-client-go/intent"
	"github.com/deepbookgo/deepbook-client-go/ledger"
	"github.com/deepbookgo/deepbook-client-go/resolver"
)

const callerAddr = "0x00000000000000000000000000000000000000000000000000000000000000a1"

type fakeLedger struct{}

func (fakeLedger) ObjectMeta(_ context.Context, id *sui.ObjectId) (ledger.ObjectMeta, error) {
	return ledger.ObjectMeta{Shared: &suiptb.SharedObjectArg{Id: id, InitialSharedVersion: 1}}, nil
}

func newContract(t *testing.T) *Contract {
	t.Helper()
	cfg := config.New("testnet", callerAddr, nil)
	return New(cfg, resolver.New(fakeLedger{}))
}

func TestBorrowAndReturn(t *testing.T) {
	t.Run("BaseRoundTrip", func(t *testing.T) {
		c := newContract(t)
		b := intent.NewBuilder()
		ctx := context.Background()

		loan := c.BorrowBase(ctx, b, "DEEP_SUI", decimal.RequireFromString("100"))
		require.NoError(t, b.Err())
		require.NotNil(t, loan.Coin.NestedResult)
		require.NotNil(t, loan.Receipt.NestedResult)
		assert.Equal(t, loan.Coin.NestedResult.Cmd, loan.Receipt.NestedResult.Cmd)
		assert.Equal(t, uint16(0), loan.Coin.NestedResult.Result)
		assert.Equal(t, uint16(1), loan.Receipt.NestedResult.Result)

		c.ReturnBase(ctx, b, "DEEP_SUI", loan)
		pt, err := b.Finish()
		require.NoError(t, err)

		require.Len(t, pt.Commands, 2)
		assert.Equal(t, sui.Identifier("borrow_flashloan_base"), pt.Commands[0].MoveCall.Function)
		repay := pt.Commands[1].MoveCall
		assert.Equal(t, sui.Identifier("return_flashloan_base"), repay.Function)
		assert.Len(t, repay.Arguments, 3)
	})

	t.Run("QuoteRoundTrip", func(t *testing.T) {
		c := newContract(t)
		b := intent.NewBuilder()
		ctx := context.Background()

		loan := c.BorrowQuote(ctx, b, "DEEP_SUI", decimal.RequireFromString("5"))
		c.ReturnQuote(ctx, b, "DEEP_SUI", loan)
		pt, err := b.Finish()
		require.NoError(t, err)

		require.Len(t, pt.Commands, 2)
		assert.Equal(t, sui.Identifier("borrow_flashloan_quote"), pt.Commands[0].MoveCall.Function)
		assert.Equal(t, sui.Identifier("return_flashloan_quote"), pt.Commands[1].MoveCall.Function)
	})

	t.Run("UnknownPool", func(t *testing.T) {
		c := newContract(t)
		b := intent.NewBuilder()

		c.BorrowBase(context.Background(), b, "NO_POOL", decimal.RequireFromString("1"))
		assert.ErrorIs(t, b.Err(), ErrPoolNotFound)
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		c := newContract(t)
		b := intent.NewBuilder()

		c.BorrowBase(context.Background(), b, "DEEP_SUI", decimal.RequireFromString("-1"))
		assert.Error(t, b.Err())
	})
}

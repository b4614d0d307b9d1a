package client

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pattonkan/sui-go/sui"
	"github.com/pattonkan/sui-go/sui/suiptb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepbookgo/deepbook-client-go/config"
	"github.com/deepbookgo/deepbook-client-go/ledger"
)

const (
	callerAddr  = "0x00000000000000000000000000000000000000000000000000000000000000a1"
	managerAddr = "0x00000000000000000000000000000000000000000000000000000000000000b2"
)

// fakeLedger implements all three boundary interfaces with canned data.
type fakeLedger struct {
	result ledger.InspectResult
}

func (f *fakeLedger) ObjectMeta(_ context.Context, id *sui.ObjectId) (ledger.ObjectMeta, error) {
	return ledger.ObjectMeta{Shared: &suiptb.SharedObjectArg{Id: id, InitialSharedVersion: 1}}, nil
}

func (f *fakeLedger) Coins(_ context.Context, _ *sui.Address, _ string) ([]ledger.CoinInfo, error) {
	return nil, nil
}

func (f *fakeLedger) Inspect(_ context.Context, _ *sui.Address, _ []byte) (ledger.InspectResult, error) {
	return f.result, nil
}

func u64Result(v uint64) ledger.InspectResult {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return ledger.InspectResult{Results: []ledger.CallResult{{
		ReturnValues: []ledger.ReturnValue{{Bytes: b, Type: "u64"}},
	}}}
}

func newClient(t *testing.T, fake *fakeLedger) *DeepBookClient {
	t.Helper()
	dbCfg := config.New("testnet", callerAddr, &config.Options{
		BalanceManagers: config.BalanceManagerMap{
			"MANAGER_1": {Address: managerAddr},
		},
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := NewWithLedger(dbCfg, fake, fake, fake, logger)
	require.NoError(t, err)
	return c
}

func TestCheckManagerBalance(t *testing.T) {
	t.Run("ScalesToWholeUnits", func(t *testing.T) {
		c := newClient(t, &fakeLedger{result: u64Result(1_500_000_000)})

		coinType, balance, err := c.CheckManagerBalance(context.Background(), "MANAGER_1", "SUI")
		require.NoError(t, err)
		assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000002::sui::SUI", coinType)
		assert.True(t, decimal.RequireFromString("1.5").Equal(balance), "got %s", balance)
	})

	t.Run("UnknownCoin", func(t *testing.T) {
		c := newClient(t, &fakeLedger{})

		_, _, err := c.CheckManagerBalance(context.Background(), "MANAGER_1", "NOPE")
		require.Error(t, err)
	})
}

func TestIsWhitelisted(t *testing.T) {
	fake := &fakeLedger{result: ledger.InspectResult{Results: []ledger.CallResult{{
		ReturnValues: []ledger.ReturnValue{{Bytes: []byte{1}, Type: "bool"}},
	}}}}
	c := newClient(t, fake)

	ok, err := c.IsWhitelisted(context.Background(), "DEEP_SUI")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAccountOpenOrders(t *testing.T) {
	payload := []byte{1}
	id := make([]byte, 16)
	id[0] = 42
	payload = append(payload, id...)
	fake := &fakeLedger{result: ledger.InspectResult{Results: []ledger.CallResult{{
		ReturnValues: []ledger.ReturnValue{{Bytes: payload, Type: "vec_set"}},
	}}}}
	c := newClient(t, fake)

	ids, err := c.AccountOpenOrders(context.Background(), "DEEP_SUI", "MANAGER_1")
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, "42", ids[0].String())
}

func TestMidPrice(t *testing.T) {
	// the book representation of 0.02 SUI per DEEP
	c := newClient(t, &fakeLedger{result: u64Result(20_000_000_000)})

	price, err := c.MidPrice(context.Background(), "DEEP_SUI")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.02").Equal(price), "got %s", price)
}

func TestNewValidation(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

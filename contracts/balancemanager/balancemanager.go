// Package balancemanager composes calls against the balance_manager
// contract module: creating and sharing managers, moving funds in and out,
// and deriving the trade authorization proof that order placement requires.
package balancemanager

import (
	"context"
	"errors"
	"fmt"

	"github.com/pattonkan/sui-go/sui"
	"github.com/pattonkan/sui-go/sui/suiptb"
	"github.com/shopspring/decimal"

	"github.com/deepbookgo/deepbook-client-go/config"
	"github.com/deepbookgo/deepbook-client-go/intent"
	"github.com/deepbookgo/deepbook-client-go/ledger"
	"github.com/deepbookgo/deepbook-client-go/resolver"
	"github.com/deepbookgo/deepbook-client-go/units"
)

var (
	// ErrManagerNotFound reports an unknown balance manager key.
	ErrManagerNotFound = errors.New("balance manager not found")

	// ErrCoinNotFound reports an unknown coin key.
	ErrCoinNotFound = errors.New("coin not found")

	// ErrInsufficientBalance reports that the caller's coin objects do not
	// cover a requested deposit.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Contract composes balance_manager module calls.
type Contract struct {
	cfg   *config.DeepBookConfig
	res   *resolver.Resolver
	coins ledger.CoinReader
}

// New creates a balance manager contract composer.
func New(cfg *config.DeepBookConfig, res *resolver.Resolver, coins ledger.CoinReader) *Contract {
	return &Contract{cfg: cfg, res: res, coins: coins}
}

// CreateAndShare appends the creation of a new BalanceManager and shares it
// so any party holding a proof can trade through it.
func (c *Contract) CreateAndShare(b *intent.Builder) {
	pkg, ok := c.packageId(b)
	if !ok {
		return
	}
	manager := b.MoveCall(pkg, "balance_manager", "new", nil, nil)
	b.MoveCall(
		sui.MustObjectIdFromHex("0x2"),
		"transfer", "public_share_object",
		[]sui.TypeTag{{Struct: &sui.StructTag{
			Address: pkg,
			Module:  "balance_manager",
			Name:    "BalanceManager",
		}}},
		[]suiptb.Argument{manager},
	)
}

// Deposit appends a deposit of the given decimal amount of coinKey into the
// manager. The exact scaled amount is carved out of the caller's coin
// objects: the first coin becomes the split target, further coins are
// merged into it until the amount is covered.
func (c *Contract) Deposit(ctx context.Context, b *intent.Builder, managerKey, coinKey string, amount decimal.Decimal) {
	pkg, ok := c.packageId(b)
	if !ok {
		return
	}
	manager, ok := c.manager(b, managerKey)
	if !ok {
		return
	}
	coin, ok := c.coin(b, coinKey)
	if !ok {
		return
	}
	scaled, err := units.ToUnits(amount, coin.Scalar)
	if err != nil {
		b.Fail(fmt.Errorf("deposit amount for %q: %w", coinKey, err))
		return
	}
	tag, err := coin.TypeTag()
	if err != nil {
		b.Fail(err)
		return
	}
	owner, err := sui.AddressFromHex(c.cfg.Address)
	if err != nil {
		b.Fail(fmt.Errorf("malformed caller address %q: %w", c.cfg.Address, err))
		return
	}

	held, err := c.coins.Coins(ctx, owner, coin.Type)
	if err != nil {
		b.Fail(fmt.Errorf("list %s coins of %s: %w", coinKey, c.cfg.Address, err))
		return
	}
	deposit, ok := c.splitExact(b, held, scaled, coinKey)
	if !ok {
		return
	}

	managerArg := c.res.SharedObject(ctx, b, manager.Address, true)
	b.MoveCall(pkg, "balance_manager", "deposit",
		[]sui.TypeTag{tag},
		[]suiptb.Argument{managerArg, deposit},
	)
}

// splitExact selects coin objects covering the scaled amount, merges them
// into the first one, and splits off exactly the amount. Returns the split
// coin argument.
func (c *Contract) splitExact(b *intent.Builder, held []ledger.CoinInfo, scaled uint64, coinKey string) (suiptb.Argument, bool) {
	var total uint64
	for _, coin := range held {
		total += coin.Balance
	}
	if total < scaled {
		b.Fail(fmt.Errorf("%w: have %d, need %d of %q", ErrInsufficientBalance, total, scaled, coinKey))
		return suiptb.Argument{}, false
	}

	var target suiptb.Argument
	var sources []suiptb.Argument
	var gathered uint64
	for i, coin := range held {
		if gathered > scaled {
			break
		}
		gathered += coin.Balance
		if i == 0 {
			target = b.Object(suiptb.ObjectArg{ImmOrOwnedObject: coin.Ref})
		} else {
			sources = append(sources, b.Object(suiptb.ObjectArg{ImmOrOwnedObject: coin.Ref}))
		}
	}
	if len(sources) > 0 {
		b.Command(suiptb.Command{
			MergeCoins: &suiptb.ProgrammableMergeCoins{
				Destination: target,
				Sources:     sources,
			},
		})
	}
	split := b.Command(suiptb.Command{
		SplitCoins: &suiptb.ProgrammableSplitCoins{
			Coin:    target,
			Amounts: []suiptb.Argument{b.Pure(scaled)},
		},
	})
	return split, b.Err() == nil
}

// Withdraw appends a withdrawal of the given amount of coinKey from the
// manager and transfers the withdrawn coin to the recipient.
func (c *Contract) Withdraw(ctx context.Context, b *intent.Builder, managerKey, coinKey string, amount decimal.Decimal, recipient string) {
	pkg, ok := c.packageId(b)
	if !ok {
		return
	}
	manager, ok := c.manager(b, managerKey)
	if !ok {
		return
	}
	coin, ok := c.coin(b, coinKey)
	if !ok {
		return
	}
	scaled, err := units.ToUnits(amount, coin.Scalar)
	if err != nil {
		b.Fail(fmt.Errorf("withdraw amount for %q: %w", coinKey, err))
		return
	}
	tag, err := coin.TypeTag()
	if err != nil {
		b.Fail(err)
		return
	}

	managerArg := c.res.SharedObject(ctx, b, manager.Address, true)
	withdrawn := b.MoveCall(pkg, "balance_manager", "withdraw",
		[]sui.TypeTag{tag},
		[]suiptb.Argument{managerArg, b.Pure(scaled)},
	)
	c.transferTo(b, withdrawn, recipient)
}

// WithdrawAll appends a withdrawal of the manager's full coinKey balance
// and transfers the withdrawn coin to the recipient.
func (c *Contract) WithdrawAll(ctx context.Context, b *intent.Builder, managerKey, coinKey, recipient string) {
	pkg, ok := c.packageId(b)
	if !ok {
		return
	}
	manager, ok := c.manager(b, managerKey)
	if !ok {
		return
	}
	coin, ok := c.coin(b, coinKey)
	if !ok {
		return
	}
	tag, err := coin.TypeTag()
	if err != nil {
		b.Fail(err)
		return
	}

	managerArg := c.res.SharedObject(ctx, b, manager.Address, true)
	withdrawn := b.MoveCall(pkg, "balance_manager", "withdraw_all",
		[]sui.TypeTag{tag},
		[]suiptb.Argument{managerArg},
	)
	c.transferTo(b, withdrawn, recipient)
}

// Balance appends a read of the manager's coinKey balance. The result is a
// u64 in base units, meant to be decoded from a dry run.
func (c *Contract) Balance(ctx context.Context, b *intent.Builder, managerKey, coinKey string) suiptb.Argument {
	pkg, ok := c.packageId(b)
	if !ok {
		return suiptb.Argument{}
	}
	manager, ok := c.manager(b, managerKey)
	if !ok {
		return suiptb.Argument{}
	}
	coin, ok := c.coin(b, coinKey)
	if !ok {
		return suiptb.Argument{}
	}
	tag, err := coin.TypeTag()
	if err != nil {
		b.Fail(err)
		return suiptb.Argument{}
	}

	managerArg := c.res.SharedObject(ctx, b, manager.Address, false)
	return b.MoveCall(pkg, "balance_manager", "balance",
		[]sui.TypeTag{tag},
		[]suiptb.Argument{managerArg},
	)
}

// MintTradeCap appends minting of a TradeCap for the manager and transfers
// it to the recipient, delegating trade permission without ownership.
func (c *Contract) MintTradeCap(ctx context.Context, b *intent.Builder, managerKey, recipient string) {
	pkg, ok := c.packageId(b)
	if !ok {
		return
	}
	manager, ok := c.manager(b, managerKey)
	if !ok {
		return
	}
	managerArg := c.res.SharedObject(ctx, b, manager.Address, true)
	cap := b.MoveCall(pkg, "balance_manager", "mint_trade_cap",
		nil,
		[]suiptb.Argument{managerArg},
	)
	c.transferTo(b, cap, recipient)
}

// GenerateProof appends derivation of the trade authorization proof for the
// manager and returns its argument for threading into subsequent calls.
//
// The path is a two-state decision: a configured trade cap selects the
// delegated-trader proof with the cap resolved as an exclusively owned
// object; no cap selects the owner proof.
func (c *Contract) GenerateProof(ctx context.Context, b *intent.Builder, managerKey string) suiptb.Argument {
	pkg, ok := c.packageId(b)
	if !ok {
		return suiptb.Argument{}
	}
	manager, ok := c.manager(b, managerKey)
	if !ok {
		return suiptb.Argument{}
	}

	managerArg := c.res.SharedObject(ctx, b, manager.Address, true)
	if manager.TradeCap != "" {
		capArg := c.res.OwnedObject(ctx, b, manager.TradeCap)
		return b.MoveCall(pkg, "balance_manager", "generate_proof_as_trader",
			nil,
			[]suiptb.Argument{managerArg, capArg},
		)
	}
	return b.MoveCall(pkg, "balance_manager", "generate_proof_as_owner",
		nil,
		[]suiptb.Argument{managerArg},
	)
}

// Owner appends a read of the manager's owner address.
func (c *Contract) Owner(ctx context.Context, b *intent.Builder, managerKey string) suiptb.Argument {
	return c.readCall(ctx, b, managerKey, "owner")
}

// Id appends a read of the manager's object id.
func (c *Contract) Id(ctx context.Context, b *intent.Builder, managerKey string) suiptb.Argument {
	return c.readCall(ctx, b, managerKey, "id")
}

func (c *Contract) readCall(ctx context.Context, b *intent.Builder, managerKey string, fn sui.Identifier) suiptb.Argument {
	pkg, ok := c.packageId(b)
	if !ok {
		return suiptb.Argument{}
	}
	manager, ok := c.manager(b, managerKey)
	if !ok {
		return suiptb.Argument{}
	}
	managerArg := c.res.SharedObject(ctx, b, manager.Address, false)
	return b.MoveCall(pkg, "balance_manager", fn, nil, []suiptb.Argument{managerArg})
}

func (c *Contract) transferTo(b *intent.Builder, obj suiptb.Argument, recipient string) {
	to, err := sui.AddressFromHex(recipient)
	if err != nil {
		b.Fail(fmt.Errorf("malformed recipient address %q: %w", recipient, err))
		return
	}
	b.Command(suiptb.Command{
		TransferObjects: &suiptb.ProgrammableTransferObjects{
			Objects: []suiptb.Argument{obj},
			Address: b.Pure(to),
		},
	})
}

func (c *Contract) packageId(b *intent.Builder) (*sui.PackageId, bool) {
	pkg, err := sui.ObjectIdFromHex(c.cfg.DeepbookPackageId)
	if err != nil {
		b.Fail(fmt.Errorf("malformed deepbook package id %q: %w", c.cfg.DeepbookPackageId, err))
		return nil, false
	}
	return pkg, true
}

func (c *Contract) manager(b *intent.Builder, key string) (config.BalanceManager, bool) {
	manager, ok := c.cfg.BalanceManager(key)
	if !ok {
		b.Fail(fmt.Errorf("%w: %q", ErrManagerNotFound, key))
	}
	return manager, ok
}

func (c *Contract) coin(b *intent.Builder, key string) (config.Coin, bool) {
	coin, ok := c.cfg.Coin(key)
	if !ok {
		b.Fail(fmt.Errorf("%w: %q", ErrCoinNotFound, key))
	}
	return coin, ok
}

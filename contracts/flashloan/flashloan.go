// Package flashloan composes flash loan borrow and return calls against
// the pool contract module. A borrow must be repaid inside the same intent
// by threading the returned hot-potato loan receipt into the matching
// return call.
package flashloan

import (
	"context"
	"errors"
	"fmt"

	"github.com/pattonkan/sui-go/sui"
	"github.com/pattonkan/sui-go/sui/suiptb"
	"github.com/shopspring/decimal"

	"github.com/deepbookgo/deepbook-client-go/config"
	"github.com/deepbookgo/deepbook-client-go/intent"
	"github.com/deepbookgo/deepbook-client-go/resolver"
	"github.com/deepbookgo/deepbook-client-go/units"
)

// ErrPoolNotFound reports an unknown pool key.
var ErrPoolNotFound = errors.New("pool not found")

// Loan is the pair of arguments a borrow produces: the borrowed coin and
// the receipt that forces repayment within the same intent.
type Loan struct {
	Coin    suiptb.Argument
	Receipt suiptb.Argument
}

// Contract composes flash loan calls.
type Contract struct {
	cfg *config.DeepBookConfig
	res *resolver.Resolver
}

// New creates a flash loan contract composer.
func New(cfg *config.DeepBookConfig, res *resolver.Resolver) *Contract {
	return &Contract{cfg: cfg, res: res}
}

// BorrowBase appends borrowing of the given whole-unit amount of the
// pool's base asset.
func (c *Contract) BorrowBase(ctx context.Context, b *intent.Builder, poolKey string, amount decimal.Decimal) Loan {
	return c.borrow(ctx, b, poolKey, amount, "borrow_flashloan_base", baseSide)
}

// BorrowQuote appends borrowing of the given whole-unit amount of the
// pool's quote asset.
func (c *Contract) BorrowQuote(ctx context.Context, b *intent.Builder, poolKey string, amount decimal.Decimal) Loan {
	return c.borrow(ctx, b, poolKey, amount, "borrow_flashloan_quote", quoteSide)
}

// ReturnBase appends repayment of a base-asset loan.
func (c *Contract) ReturnBase(ctx context.Context, b *intent.Builder, poolKey string, loan Loan) {
	c.repay(ctx, b, poolKey, loan, "return_flashloan_base")
}

// ReturnQuote appends repayment of a quote-asset loan.
func (c *Contract) ReturnQuote(ctx context.Context, b *intent.Builder, poolKey string, loan Loan) {
	c.repay(ctx, b, poolKey, loan, "return_flashloan_quote")
}

type side int

const (
	baseSide side = iota
	quoteSide
)

func (c *Contract) borrow(ctx context.Context, b *intent.Builder, poolKey string, amount decimal.Decimal, fn sui.Identifier, s side) Loan {
	env, ok := c.env(b, poolKey)
	if !ok {
		return Loan{}
	}
	scalar := env.base.Scalar
	if s == quoteSide {
		scalar = env.quote.Scalar
	}
	borrow, err := units.ToUnits(amount, scalar)
	if err != nil {
		b.Fail(fmt.Errorf("borrow amount: %w", err))
		return Loan{}
	}

	poolArg := c.res.SharedObject(ctx, b, env.pool.Address, true)
	result := b.MoveCall(env.pkg, "pool", fn,
		env.typeArgs,
		[]suiptb.Argument{poolArg, b.Pure(borrow)},
	)
	return Loan{
		Coin:    b.NestedResult(result, 0),
		Receipt: b.NestedResult(result, 1),
	}
}

func (c *Contract) repay(ctx context.Context, b *intent.Builder, poolKey string, loan Loan, fn sui.Identifier) {
	env, ok := c.env(b, poolKey)
	if !ok {
		return
	}
	poolArg := c.res.SharedObject(ctx, b, env.pool.Address, true)
	b.MoveCall(env.pkg, "pool", fn,
		env.typeArgs,
		[]suiptb.Argument{poolArg, loan.Coin, loan.Receipt},
	)
}

type callEnv struct {
	pkg      *sui.PackageId
	pool     config.Pool
	base     config.Coin
	quote    config.Coin
	typeArgs []sui.TypeTag
}

func (c *Contract) env(b *intent.Builder, poolKey string) (callEnv, bool) {
	if b.Err() != nil {
		return callEnv{}, false
	}
	pkg, err := sui.ObjectIdFromHex(c.cfg.DeepbookPackageId)
	if err != nil {
		b.Fail(fmt.Errorf("malformed deepbook package id %q: %w", c.cfg.DeepbookPackageId, err))
		return callEnv{}, false
	}
	pool, ok := c.cfg.Pool(poolKey)
	if !ok {
		b.Fail(fmt.Errorf("%w: %q", ErrPoolNotFound, poolKey))
		return callEnv{}, false
	}
	base, quote, err := c.cfg.PoolCoins(pool)
	if err != nil {
		b.Fail(fmt.Errorf("pool %q: %w", poolKey, err))
		return callEnv{}, false
	}
	baseTag, err := base.TypeTag()
	if err != nil {
		b.Fail(err)
		return callEnv{}, false
	}
	quoteTag, err := quote.TypeTag()
	if err != nil {
		b.Fail(err)
		return callEnv{}, false
	}
	return callEnv{
		pkg:      pkg,
		pool:     pool,
		base:     base,
		quote:    quote,
		typeArgs: []sui.TypeTag{baseTag, quoteTag},
	}, true
}

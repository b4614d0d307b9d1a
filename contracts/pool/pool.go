// Package pool composes order placement, cancellation and market read
// calls against the pool contract module.
//
// Every operation follows the same shape: look up descriptors, parse
// numeric text ids, scale decimal quantities, resolve objects, then append
// one Move call whose argument order matches the contract's declared
// parameter order exactly. Nothing validates that order at this layer; the
// composed list is the contract.
package pool

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/fardream/go-bcs/bcs"
	"github.com/pattonkan/sui-go/sui"
	"github.com/pattonkan/sui-go/sui/suiptb"
	"github.com/shopspring/decimal"

	"github.com/deepbookgo/deepbook-client-go/config"
	"github.com/deepbookgo/deepbook-client-go/intent"
	"github.com/deepbookgo/deepbook-client-go/resolver"
	"github.com/deepbookgo/deepbook-client-go/units"
)

// OrderType restricts how a limit order may execute.
type OrderType uint8

const (
	NoRestriction     OrderType = 0
	ImmediateOrCancel OrderType = 1
	FillOrKill        OrderType = 2
	PostOnly          OrderType = 3
)

// SelfMatching selects the policy when an order would match against the
// same balance manager's resting order.
type SelfMatching uint8

const (
	SelfMatchingAllowed SelfMatching = 0
	CancelTaker         SelfMatching = 1
	CancelMaker         SelfMatching = 2
)

var (
	// ErrPoolNotFound reports an unknown pool key.
	ErrPoolNotFound = errors.New("pool not found")

	// ErrManagerNotFound reports an unknown balance manager key.
	ErrManagerNotFound = errors.New("balance manager not found")

	// ErrMalformedOrderId reports an order id that does not parse as an
	// unsigned integer of the required width.
	ErrMalformedOrderId = errors.New("malformed order id")
)

// ProofDeriver appends derivation of a trade authorization proof and
// returns its argument.
type ProofDeriver interface {
	GenerateProof(ctx context.Context, b *intent.Builder, managerKey string) suiptb.Argument
}

// Contract composes pool module calls.
type Contract struct {
	cfg    *config.DeepBookConfig
	res    *resolver.Resolver
	proofs ProofDeriver
}

// New creates a pool contract composer.
func New(cfg *config.DeepBookConfig, res *resolver.Resolver, proofs ProofDeriver) *Contract {
	return &Contract{cfg: cfg, res: res, proofs: proofs}
}

// LimitOrderParams are the caller-facing parameters of a limit order.
// Price and Quantity are whole-unit decimals; scaling to base units happens
// during composition.
//
// Optional fields reproduce the protocol defaults: zero OrderType is
// no-restriction, zero SelfMatching allows self matching, nil Expiration
// means no expiration, nil PayWithDeep pays fees in DEEP.
type LimitOrderParams struct {
	ClientOrderId string
	Price         decimal.Decimal
	Quantity      decimal.Decimal
	IsBid         bool

	OrderType    OrderType
	SelfMatching SelfMatching
	Expiration   *uint64
	PayWithDeep  *bool
}

// MarketOrderParams are the caller-facing parameters of a market order.
type MarketOrderParams struct {
	ClientOrderId string
	Quantity      decimal.Decimal
	IsBid         bool

	SelfMatching SelfMatching
	PayWithDeep  *bool
}

// PlaceLimitOrder appends a limit order placement. Contract argument order:
// pool, manager, proof, client order id, order type, self matching option,
// price, quantity, is bid, pay with deep, expire timestamp, clock.
func (c *Contract) PlaceLimitOrder(ctx context.Context, b *intent.Builder, poolKey, managerKey string, params LimitOrderParams) suiptb.Argument {
	env, ok := c.orderEnv(b, poolKey, managerKey)
	if !ok {
		return suiptb.Argument{}
	}

	clientOrderId, err := strconv.ParseUint(params.ClientOrderId, 10, 64)
	if err != nil {
		b.Fail(fmt.Errorf("%w: client order id %q: %v", ErrMalformedOrderId, params.ClientOrderId, err))
		return suiptb.Argument{}
	}
	inputPrice, err := units.InputPrice(params.Price, env.base.Scalar, env.quote.Scalar)
	if err != nil {
		b.Fail(fmt.Errorf("limit order price: %w", err))
		return suiptb.Argument{}
	}
	quantity, err := units.ToUnits(params.Quantity, env.base.Scalar)
	if err != nil {
		b.Fail(fmt.Errorf("limit order quantity: %w", err))
		return suiptb.Argument{}
	}

	expiration := config.MaxTimestamp
	if params.Expiration != nil {
		expiration = *params.Expiration
	}
	payWithDeep := true
	if params.PayWithDeep != nil {
		payWithDeep = *params.PayWithDeep
	}

	poolArg := c.res.SharedObject(ctx, b, env.pool.Address, true)
	managerArg := c.res.SharedObject(ctx, b, env.manager.Address, true)
	proofArg := c.proofs.GenerateProof(ctx, b, managerKey)
	clockArg := c.res.Clock(b)

	return b.MoveCall(env.pkg, "pool", "place_limit_order",
		env.typeArgs,
		[]suiptb.Argument{
			poolArg,
			managerArg,
			proofArg,
			b.Pure(clientOrderId),
			b.Pure(uint8(params.OrderType)),
			b.Pure(uint8(params.SelfMatching)),
			b.Pure(inputPrice),
			b.Pure(quantity),
			b.Pure(params.IsBid),
			b.Pure(payWithDeep),
			b.Pure(expiration),
			clockArg,
		},
	)
}

// PlaceMarketOrder appends a market order placement. Contract argument
// order: pool, manager, proof, client order id, self matching option,
// quantity, is bid, pay with deep, clock.
func (c *Contract) PlaceMarketOrder(ctx context.Context, b *intent.Builder, poolKey, managerKey string, params MarketOrderParams) suiptb.Argument {
	env, ok := c.orderEnv(b, poolKey, managerKey)
	if !ok {
		return suiptb.Argument{}
	}

	clientOrderId, err := strconv.ParseUint(params.ClientOrderId, 10, 64)
	if err != nil {
		b.Fail(fmt.Errorf("%w: client order id %q: %v", ErrMalformedOrderId, params.ClientOrderId, err))
		return suiptb.Argument{}
	}
	quantity, err := units.ToUnits(params.Quantity, env.base.Scalar)
	if err != nil {
		b.Fail(fmt.Errorf("market order quantity: %w", err))
		return suiptb.Argument{}
	}
	payWithDeep := true
	if params.PayWithDeep != nil {
		payWithDeep = *params.PayWithDeep
	}

	poolArg := c.res.SharedObject(ctx, b, env.pool.Address, true)
	managerArg := c.res.SharedObject(ctx, b, env.manager.Address, true)
	proofArg := c.proofs.GenerateProof(ctx, b, managerKey)
	clockArg := c.res.Clock(b)

	return b.MoveCall(env.pkg, "pool", "place_market_order",
		env.typeArgs,
		[]suiptb.Argument{
			poolArg,
			managerArg,
			proofArg,
			b.Pure(clientOrderId),
			b.Pure(uint8(params.SelfMatching)),
			b.Pure(quantity),
			b.Pure(params.IsBid),
			b.Pure(payWithDeep),
			clockArg,
		},
	)
}

// CancelOrder appends cancellation of one resting order. The order id is
// the book-assigned u128, supplied as decimal text.
func (c *Contract) CancelOrder(ctx context.Context, b *intent.Builder, poolKey, managerKey, orderId string) {
	env, ok := c.orderEnv(b, poolKey, managerKey)
	if !ok {
		return
	}
	id, err := parseU128(orderId)
	if err != nil {
		b.Fail(err)
		return
	}

	poolArg := c.res.SharedObject(ctx, b, env.pool.Address, true)
	managerArg := c.res.SharedObject(ctx, b, env.manager.Address, true)
	proofArg := c.proofs.GenerateProof(ctx, b, managerKey)
	clockArg := c.res.Clock(b)

	b.MoveCall(env.pkg, "pool", "cancel_order",
		env.typeArgs,
		[]suiptb.Argument{poolArg, managerArg, proofArg, b.Pure(id), clockArg},
	)
}

// CancelAllOrders appends cancellation of every resting order of the
// manager in the pool.
func (c *Contract) CancelAllOrders(ctx context.Context, b *intent.Builder, poolKey, managerKey string) {
	env, ok := c.orderEnv(b, poolKey, managerKey)
	if !ok {
		return
	}

	poolArg := c.res.SharedObject(ctx, b, env.pool.Address, true)
	managerArg := c.res.SharedObject(ctx, b, env.manager.Address, true)
	proofArg := c.proofs.GenerateProof(ctx, b, managerKey)
	clockArg := c.res.Clock(b)

	b.MoveCall(env.pkg, "pool", "cancel_all_orders",
		env.typeArgs,
		[]suiptb.Argument{poolArg, managerArg, proofArg, clockArg},
	)
}

// AccountOpenOrders appends a read of the manager's open order ids in the
// pool. The manager is passed by id, not as an object. Result decodes as a
// VecSet of u128 order ids.
func (c *Contract) AccountOpenOrders(ctx context.Context, b *intent.Builder, poolKey, managerKey string) suiptb.Argument {
	env, ok := c.orderEnv(b, poolKey, managerKey)
	if !ok {
		return suiptb.Argument{}
	}
	managerId, err := sui.AddressFromHex(env.manager.Address)
	if err != nil {
		b.Fail(fmt.Errorf("malformed manager address %q: %w", env.manager.Address, err))
		return suiptb.Argument{}
	}

	poolArg := c.res.SharedObject(ctx, b, env.pool.Address, false)
	return b.MoveCall(env.pkg, "pool", "account_open_orders",
		env.typeArgs,
		[]suiptb.Argument{poolArg, b.Pure(managerId)},
	)
}

// Whitelisted appends a read of the pool's whitelist status. Result
// decodes as a bool.
func (c *Contract) Whitelisted(ctx context.Context, b *intent.Builder, poolKey string) suiptb.Argument {
	env, ok := c.poolEnv(b, poolKey)
	if !ok {
		return suiptb.Argument{}
	}
	poolArg := c.res.SharedObject(ctx, b, env.pool.Address, false)
	return b.MoveCall(env.pkg, "pool", "whitelisted",
		env.typeArgs,
		[]suiptb.Argument{poolArg},
	)
}

// MidPrice appends a read of the pool's current mid price. Result decodes
// as the u64 book representation; units.PriceToDecimal converts it back.
func (c *Contract) MidPrice(ctx context.Context, b *intent.Builder, poolKey string) suiptb.Argument {
	env, ok := c.poolEnv(b, poolKey)
	if !ok {
		return suiptb.Argument{}
	}
	poolArg := c.res.SharedObject(ctx, b, env.pool.Address, false)
	clockArg := c.res.Clock(b)
	return b.MoveCall(env.pkg, "pool", "mid_price",
		env.typeArgs,
		[]suiptb.Argument{poolArg, clockArg},
	)
}

// callEnv is everything an order operation resolves before appending its
// Move call.
type callEnv struct {
	pkg      *sui.PackageId
	pool     config.Pool
	manager  config.BalanceManager
	base     config.Coin
	quote    config.Coin
	typeArgs []sui.TypeTag
}

func (c *Contract) poolEnv(b *intent.Builder, poolKey string) (callEnv, bool) {
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

func (c *Contract) orderEnv(b *intent.Builder, poolKey, managerKey string) (callEnv, bool) {
	env, ok := c.poolEnv(b, poolKey)
	if !ok {
		return callEnv{}, false
	}
	manager, ok := c.cfg.BalanceManager(managerKey)
	if !ok {
		b.Fail(fmt.Errorf("%w: %q", ErrManagerNotFound, managerKey))
		return callEnv{}, false
	}
	env.manager = manager
	return env, true
}

// parseU128 parses a decimal text order id into a BCS u128.
func parseU128(s string) (*bcs.Uint128, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 || v.BitLen() > 128 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedOrderId, s)
	}
	id, err := bcs.NewUint128FromBigInt(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedOrderId, s, err)
	}
	return id, nil
}

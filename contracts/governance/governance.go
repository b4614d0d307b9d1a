// Package governance composes stake and proposal calls against the pool
// contract module's governance entry points.
package governance

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

var (
	// ErrPoolNotFound reports an unknown pool key.
	ErrPoolNotFound = errors.New("pool not found")

	// ErrManagerNotFound reports an unknown balance manager key.
	ErrManagerNotFound = errors.New("balance manager not found")
)

// ProofDeriver appends derivation of a trade authorization proof and
// returns its argument.
type ProofDeriver interface {
	GenerateProof(ctx context.Context, b *intent.Builder, managerKey string) suiptb.Argument
}

// Contract composes governance calls.
type Contract struct {
	cfg    *config.DeepBookConfig
	res    *resolver.Resolver
	proofs ProofDeriver
}

// New creates a governance contract composer.
func New(cfg *config.DeepBookConfig, res *resolver.Resolver, proofs ProofDeriver) *Contract {
	return &Contract{cfg: cfg, res: res, proofs: proofs}
}

// Stake appends staking of the given whole-unit DEEP amount into the
// pool's governance.
func (c *Contract) Stake(ctx context.Context, b *intent.Builder, poolKey, managerKey string, amount decimal.Decimal) {
	env, ok := c.env(b, poolKey, managerKey)
	if !ok {
		return
	}
	stake, err := units.ToUnits(amount, config.DeepScalar)
	if err != nil {
		b.Fail(fmt.Errorf("stake amount: %w", err))
		return
	}

	poolArg := c.res.SharedObject(ctx, b, env.pool.Address, true)
	managerArg := c.res.SharedObject(ctx, b, env.manager.Address, true)
	proofArg := c.proofs.GenerateProof(ctx, b, managerKey)

	b.MoveCall(env.pkg, "pool", "stake",
		env.typeArgs,
		[]suiptb.Argument{poolArg, managerArg, proofArg, b.Pure(stake)},
	)
}

// Unstake appends withdrawal of the manager's entire stake from the
// pool's governance.
func (c *Contract) Unstake(ctx context.Context, b *intent.Builder, poolKey, managerKey string) {
	env, ok := c.env(b, poolKey, managerKey)
	if !ok {
		return
	}

	poolArg := c.res.SharedObject(ctx, b, env.pool.Address, true)
	managerArg := c.res.SharedObject(ctx, b, env.manager.Address, true)
	proofArg := c.proofs.GenerateProof(ctx, b, managerKey)

	b.MoveCall(env.pkg, "pool", "unstake",
		env.typeArgs,
		[]suiptb.Argument{poolArg, managerArg, proofArg},
	)
}

// SubmitProposal appends a fee proposal. Taker and maker fees are
// fractional rates scaled by the protocol's fixed-point factor; the
// required stake is a whole-unit DEEP amount.
func (c *Contract) SubmitProposal(ctx context.Context, b *intent.Builder, poolKey, managerKey string, takerFee, makerFee, stakeRequired decimal.Decimal) {
	env, ok := c.env(b, poolKey, managerKey)
	if !ok {
		return
	}
	taker, err := units.ToUnits(takerFee, config.FloatScalar)
	if err != nil {
		b.Fail(fmt.Errorf("taker fee: %w", err))
		return
	}
	maker, err := units.ToUnits(makerFee, config.FloatScalar)
	if err != nil {
		b.Fail(fmt.Errorf("maker fee: %w", err))
		return
	}
	stake, err := units.ToUnits(stakeRequired, config.DeepScalar)
	if err != nil {
		b.Fail(fmt.Errorf("required stake: %w", err))
		return
	}

	poolArg := c.res.SharedObject(ctx, b, env.pool.Address, true)
	managerArg := c.res.SharedObject(ctx, b, env.manager.Address, true)
	proofArg := c.proofs.GenerateProof(ctx, b, managerKey)

	b.MoveCall(env.pkg, "pool", "submit_proposal",
		env.typeArgs,
		[]suiptb.Argument{
			poolArg,
			managerArg,
			proofArg,
			b.Pure(taker),
			b.Pure(maker),
			b.Pure(stake),
		},
	)
}

// Vote appends a vote on the proposal with the given id.
func (c *Contract) Vote(ctx context.Context, b *intent.Builder, poolKey, managerKey, proposalId string) {
	env, ok := c.env(b, poolKey, managerKey)
	if !ok {
		return
	}
	proposal, err := sui.AddressFromHex(proposalId)
	if err != nil {
		b.Fail(fmt.Errorf("malformed proposal id %q: %w", proposalId, err))
		return
	}

	poolArg := c.res.SharedObject(ctx, b, env.pool.Address, true)
	managerArg := c.res.SharedObject(ctx, b, env.manager.Address, true)
	proofArg := c.proofs.GenerateProof(ctx, b, managerKey)

	b.MoveCall(env.pkg, "pool", "vote",
		env.typeArgs,
		[]suiptb.Argument{poolArg, managerArg, proofArg, b.Pure(proposal)},
	)
}

type callEnv struct {
	pkg      *sui.PackageId
	pool     config.Pool
	manager  config.BalanceManager
	typeArgs []sui.TypeTag
}

func (c *Contract) env(b *intent.Builder, poolKey, managerKey string) (callEnv, bool) {
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
	manager, ok := c.cfg.BalanceManager(managerKey)
	if !ok {
		b.Fail(fmt.Errorf("%w: %q", ErrManagerNotFound, managerKey))
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
		manager:  manager,
		typeArgs: []sui.TypeTag{baseTag, quoteTag},
	}, true
}

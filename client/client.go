// Package client wires the configuration registry, ledger boundary,
// contract composers and the dry-run executor into one facade, and offers
// the typed read operations built on top of them.
package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fardream/go-bcs/bcs"
	"github.com/pattonkan/sui-go/sui"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/deepbookgo/deepbook-client-go/config"
	"github.com/deepbookgo/deepbook-client-go/contracts/balancemanager"
	"github.com/deepbookgo/deepbook-client-go/contracts/flashloan"
	"github.com/deepbookgo/deepbook-client-go/contracts/governance"
	"github.com/deepbookgo/deepbook-client-go/contracts/pool"
	"github.com/deepbookgo/deepbook-client-go/inspect"
	"github.com/deepbookgo/deepbook-client-go/intent"
	"github.com/deepbookgo/deepbook-client-go/ledger"
	"github.com/deepbookgo/deepbook-client-go/resolver"
	"github.com/deepbookgo/deepbook-client-go/units"
)

// Config holds the configuration for the DeepBook client.
type Config struct {
	// Env selects the descriptor tables: "mainnet", or anything else for
	// testnet.
	Env string
	// RPCURL is the Sui full-node JSON-RPC endpoint.
	RPCURL string
	// Address is the caller's address, used as the dry-run sender.
	Address string
	// Options optionally overrides the coin/pool/manager tables.
	Options *config.Options

	Logger     *slog.Logger
	Registerer prometheus.Registerer
}

// validate checks if the configuration is valid.
func (c *Config) validate() error {
	if c.RPCURL == "" {
		return errors.New("config: RPCURL is required")
	}
	if c.Address == "" {
		return errors.New("config: Address is required")
	}
	if c.Logger == nil {
		return errors.New("config: Logger is required")
	}
	if c.Registerer == nil {
		return errors.New("config: Registerer is required")
	}
	return nil
}

// DeepBookClient is the facade over all composition and read operations.
// The contract composers are exported for callers building multi-operation
// intents by hand.
type DeepBookClient struct {
	BalanceManager *balancemanager.Contract
	Pool           *pool.Contract
	Governance     *governance.Contract
	FlashLoan      *flashloan.Contract

	cfg      *config.DeepBookConfig
	executor *inspect.Executor
	logger   *slog.Logger
}

// New creates a DeepBookClient talking to a real Sui endpoint.
func New(cfg Config) (*DeepBookClient, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	led, err := ledger.NewClient(ledger.Config{
		RPCURL:     cfg.RPCURL,
		Logger:     cfg.Logger,
		Registerer: cfg.Registerer,
	})
	if err != nil {
		return nil, err
	}
	dbCfg := config.New(cfg.Env, cfg.Address, cfg.Options)
	return NewWithLedger(dbCfg, led, led, led, cfg.Logger)
}

// NewWithLedger creates a DeepBookClient over explicit ledger boundary
// implementations, for wiring fakes in tests.
func NewWithLedger(
	dbCfg *config.DeepBookConfig,
	objects ledger.ObjectReader,
	coins ledger.CoinReader,
	inspector ledger.Inspector,
	logger *slog.Logger,
) (*DeepBookClient, error) {
	sender, err := sui.AddressFromHex(dbCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("malformed caller address %q: %w", dbCfg.Address, err)
	}

	res := resolver.New(objects)
	managers := balancemanager.New(dbCfg, res, coins)

	c := &DeepBookClient{
		BalanceManager: managers,
		Pool:           pool.New(dbCfg, res, managers),
		Governance:     governance.New(dbCfg, res, managers),
		FlashLoan:      flashloan.New(dbCfg, res),
		cfg:            dbCfg,
		executor:       inspect.NewExecutor(inspector, sender, logger),
		logger:         logger,
	}
	logger.Debug("DeepBook client initialized",
		"coins", dbCfg.NumCoins(), "pools", dbCfg.NumPools(), "address", dbCfg.Address)
	return c, nil
}

// NewIntent starts an empty intent for multi-operation composition.
func (c *DeepBookClient) NewIntent() *intent.Builder {
	return intent.NewBuilder()
}

// Executor returns the dry-run executor for intents composed by hand.
func (c *DeepBookClient) Executor() *inspect.Executor {
	return c.executor
}

// CheckManagerBalance dry-runs a balance read and returns the coin type
// together with the whole-unit balance.
func (c *DeepBookClient) CheckManagerBalance(ctx context.Context, managerKey, coinKey string) (string, decimal.Decimal, error) {
	coin, ok := c.cfg.Coin(coinKey)
	if !ok {
		return "", decimal.Decimal{}, fmt.Errorf("%w: %q", balancemanager.ErrCoinNotFound, coinKey)
	}

	b := intent.NewBuilder()
	c.BalanceManager.Balance(ctx, b, managerKey, coinKey)
	raw, err := c.executor.RunUint64(ctx, b)
	if err != nil {
		return "", decimal.Decimal{}, fmt.Errorf("check balance of %q in %q: %w", coinKey, managerKey, err)
	}
	return coin.Type, units.ToDecimal(raw, coin.Scalar), nil
}

// IsWhitelisted dry-runs the pool's whitelist flag read.
func (c *DeepBookClient) IsWhitelisted(ctx context.Context, poolKey string) (bool, error) {
	b := intent.NewBuilder()
	c.Pool.Whitelisted(ctx, b, poolKey)
	ok, err := c.executor.RunBool(ctx, b)
	if err != nil {
		return false, fmt.Errorf("whitelist check for %q: %w", poolKey, err)
	}
	return ok, nil
}

// AccountOpenOrders dry-runs the open order read and returns the book's
// u128 order ids.
func (c *DeepBookClient) AccountOpenOrders(ctx context.Context, poolKey, managerKey string) ([]bcs.Uint128, error) {
	b := intent.NewBuilder()
	c.Pool.AccountOpenOrders(ctx, b, poolKey, managerKey)
	ids, err := c.executor.RunOrderIds(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("open orders of %q in %q: %w", managerKey, poolKey, err)
	}
	return ids, nil
}

// MidPrice dry-runs the mid price read and converts it back to a
// whole-unit decimal price.
func (c *DeepBookClient) MidPrice(ctx context.Context, poolKey string) (decimal.Decimal, error) {
	p, ok := c.cfg.Pool(poolKey)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", pool.ErrPoolNotFound, poolKey)
	}
	base, quote, err := c.cfg.PoolCoins(p)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("pool %q: %w", poolKey, err)
	}

	b := intent.NewBuilder()
	c.Pool.MidPrice(ctx, b, poolKey)
	raw, err := c.executor.RunUint64(ctx, b)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("mid price of %q: %w", poolKey, err)
	}
	return units.PriceToDecimal(raw, base.Scalar, quote.Scalar), nil
}

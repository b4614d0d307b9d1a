// Package config holds the static descriptor tables and deployed-contract
// coordinates for a DeepBook environment.
//
// A DeepBookConfig is an immutable snapshot selected at construction time:
// callers pick an environment ("mainnet" or anything else, which falls back
// to testnet), optionally override the coin/pool/manager tables, and then
// perform pure lookups by symbolic key. Absence is reported with the
// (value, ok) idiom, never a panic; callers decide whether a miss is fatal.
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/pattonkan/sui-go/sui"
)

// Protocol-wide constants, mirrored from the deployed DeepBook v3 package.
const (
	// FloatScalar is the fixed-point scale factor applied uniformly to all
	// prices by the on-chain order book.
	FloatScalar uint64 = 1_000_000_000

	// DeepScalar is the unit scalar of the DEEP fee coin.
	DeepScalar uint64 = 1_000_000

	// MaxTimestamp encodes "no expiration" for order expiry fields.
	MaxTimestamp uint64 = math.MaxUint64

	// GasBudget is the default budget (in MIST) for submitted bundles.
	GasBudget uint64 = 250_000_000
)

// Coin describes a fungible coin type known to the registry.
type Coin struct {
	// Address is the package publishing the coin type.
	Address string
	// Type is the fully qualified Move type, "package::module::Name".
	Type string
	// Scalar is the number of base units per whole coin (10^decimals).
	Scalar uint64
}

// TypeTag parses the coin's Move type string into a sui.TypeTag suitable
// for use as a call type argument.
func (c Coin) TypeTag() (sui.TypeTag, error) {
	parts := strings.Split(c.Type, "::")
	if len(parts) != 3 {
		return sui.TypeTag{}, fmt.Errorf("malformed coin type %q: want package::module::Name", c.Type)
	}
	addr, err := sui.AddressFromHex(parts[0])
	if err != nil {
		return sui.TypeTag{}, fmt.Errorf("malformed coin type %q: %w", c.Type, err)
	}
	return sui.TypeTag{
		Struct: &sui.StructTag{
			Address: addr,
			Module:  sui.Identifier(parts[1]),
			Name:    sui.Identifier(parts[2]),
		},
	}, nil
}

// Pool describes a trading venue and the symbolic keys of its base and
// quote coins. Both keys must resolve in the active coin table.
type Pool struct {
	Address   string
	BaseCoin  string
	QuoteCoin string
}

// BalanceManager describes a user-owned balance container. TradeCap, when
// non-empty, is the id of a capability object proving delegated trading
// permission; when empty the configured address is assumed to be the owner.
type BalanceManager struct {
	Address  string
	TradeCap string
}

// PackageIds are the deployed-contract coordinates for one environment.
type PackageIds struct {
	DeepbookPackageId string
	RegistryId        string
	DeepTreasuryId    string
}

type (
	CoinMap           = map[string]Coin
	PoolMap           = map[string]Pool
	BalanceManagerMap = map[string]BalanceManager
)

// DeepBookConfig is the environment snapshot consumed by the composition
// engine. It is immutable after construction and safe for concurrent use.
type DeepBookConfig struct {
	coins    CoinMap
	pools    PoolMap
	managers BalanceManagerMap

	// Address is the caller's Sui address, used as the dry-run sender.
	Address string

	// AdminCap is the optional admin capability object id. It is carried
	// for parity with the deployed configuration; no admin operations are
	// composed by this engine.
	AdminCap string

	DeepbookPackageId string
	RegistryId        string
	DeepTreasuryId    string
}

// Options carries the optional construction inputs for New. A nil table
// selects the environment default.
type Options struct {
	AdminCap        string
	Coins           CoinMap
	Pools           PoolMap
	BalanceManagers BalanceManagerMap
}

// New builds a DeepBookConfig for the named environment.
//
// "mainnet" selects the mainnet tables; any other value (including typos)
// selects the testnet tables. The fallback is deliberate: test environments
// are the safe default, so an unrecognized name is not an error.
func New(env, address string, opts *Options) *DeepBookConfig {
	var (
		coins      CoinMap
		pools      PoolMap
		packageIds PackageIds
	)
	switch env {
	case "mainnet":
		coins, pools, packageIds = MainnetCoins, MainnetPools, MainnetPackageIds
	default:
		coins, pools, packageIds = TestnetCoins, TestnetPools, TestnetPackageIds
	}

	cfg := &DeepBookConfig{
		coins:             coins,
		pools:             pools,
		managers:          BalanceManagerMap{},
		Address:           address,
		DeepbookPackageId: packageIds.DeepbookPackageId,
		RegistryId:        packageIds.RegistryId,
		DeepTreasuryId:    packageIds.DeepTreasuryId,
	}

	if opts != nil {
		cfg.AdminCap = opts.AdminCap
		if opts.Coins != nil {
			cfg.coins = opts.Coins
		}
		if opts.Pools != nil {
			cfg.pools = opts.Pools
		}
		if opts.BalanceManagers != nil {
			cfg.managers = opts.BalanceManagers
		}
	}
	return cfg
}

// Coin retrieves a coin descriptor by its symbolic key.
func (c *DeepBookConfig) Coin(key string) (Coin, bool) {
	coin, ok := c.coins[key]
	return coin, ok
}

// Pool retrieves a pool descriptor by its symbolic key.
func (c *DeepBookConfig) Pool(key string) (Pool, bool) {
	pool, ok := c.pools[key]
	return pool, ok
}

// BalanceManager retrieves a balance manager by its symbolic key.
func (c *DeepBookConfig) BalanceManager(key string) (BalanceManager, bool) {
	m, ok := c.managers[key]
	return m, ok
}

// NumCoins reports the size of the active coin table.
func (c *DeepBookConfig) NumCoins() int { return len(c.coins) }

// NumPools reports the size of the active pool table.
func (c *DeepBookConfig) NumPools() int { return len(c.pools) }

// PoolCoins resolves a pool's base and quote coin descriptors against the
// active coin table. A pool whose coin keys do not resolve violates the
// registry invariant and is reported as an error naming the missing key.
func (c *DeepBookConfig) PoolCoins(pool Pool) (base, quote Coin, err error) {
	base, ok := c.coins[pool.BaseCoin]
	if !ok {
		return Coin{}, Coin{}, fmt.Errorf("base coin not found for key %q", pool.BaseCoin)
	}
	quote, ok = c.coins[pool.QuoteCoin]
	if !ok {
		return Coin{}, Coin{}, fmt.Errorf("quote coin not found for key %q", pool.QuoteCoin)
	}
	return base, quote, nil
}

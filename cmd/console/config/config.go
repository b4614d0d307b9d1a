package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ManagerConfig is a balance manager entry in the console configuration.
// TradeCap is optional; when set, proofs are generated through the
// capability instead of the owner path.
type ManagerConfig struct {
	Address  string `yaml:"address"`
	TradeCap string `yaml:"trade_cap"`
}

type ConsoleConfig struct {
	Env             string                   `yaml:"env"`
	RPCURL          string                   `yaml:"rpc_url"`
	Address         string                   `yaml:"address"`
	BalanceManagers map[string]ManagerConfig `yaml:"balance_managers"`
}

// LoadConfig reads a configuration file from the given path and unmarshals it
// into a ConsoleConfig struct.
func LoadConfig(path string) (*ConsoleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg ConsoleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"
	"github.com/grantdao/grantdao-cli/internal/domain"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
)

// DAOFileName is the project configuration file looked up from the working directory
const DAOFileName = "grantdao.toml"

// DefaultNetwork is used when neither a flag nor the config file names one
const DefaultNetwork = "anvil"

// DefaultDAOConfig mirrors a local Anvil deployment whose addresses come from
// the .env written by `grantdao sync`.
func DefaultDAOConfig() *config.DAOConfig {
	return &config.DAOConfig{
		Settings: config.SettingsConfig{
			DefaultNetwork: DefaultNetwork,
		},
		Networks: map[string]config.NetworkConfig{
			"anvil": {
				ChainID: 31337,
				RPCURL:  "http://localhost:8545",
				Contracts: config.ContractsConfig{
					GrantToken: "${GRANT_TOKEN}",
					Governor:   "${GOVERNOR}",
					Treasury:   "${TREASURY}",
					Timelock:   "${TIMELOCK}",
				},
			},
		},
		Account: config.AccountConfig{
			PrivateKey: "${PRIVATE_KEY}",
		},
	}
}

// LoadDAOConfig loads .env files and grantdao.toml from the project root.
// Returns the defaults and source "defaults" when no grantdao.toml exists.
func LoadDAOConfig(projectRoot string) (*config.DAOConfig, string, error) {
	// Load .env files first for variable expansion
	loadEnvFiles(projectRoot)

	path := filepath.Join(projectRoot, DAOFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultDAOConfig(), "defaults", nil
	}

	var cfg config.DAOConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", DAOFileName, err)
	}

	if cfg.Networks == nil {
		cfg.Networks = make(map[string]config.NetworkConfig)
	}
	if cfg.Settings.DefaultNetwork == "" {
		cfg.Settings.DefaultNetwork = DefaultNetwork
	}

	return &cfg, DAOFileName, nil
}

// ResolveNetwork expands a named network section into its runtime form
func ResolveNetwork(cfg *config.DAOConfig, name string) (*config.Network, config.Contracts, error) {
	netCfg, ok := cfg.Networks[name]
	if !ok {
		return nil, config.Contracts{}, fmt.Errorf("network '%s' not found in %s [networks]", name, DAOFileName)
	}

	rpcURL, unset := expandValue(netCfg.RPCURL)
	if unset != "" {
		return nil, config.Contracts{}, fmt.Errorf("network '%s': rpc_url references %s which is not set", name, unset)
	}
	if rpcURL == "" {
		return nil, config.Contracts{}, fmt.Errorf("network '%s': rpc_url is empty", name)
	}

	var contracts config.Contracts
	fields := []struct {
		name string
		raw  string
		dst  *common.Address
	}{
		{"grant_token", netCfg.Contracts.GrantToken, &contracts.GrantToken},
		{"governor", netCfg.Contracts.Governor, &contracts.Governor},
		{"treasury", netCfg.Contracts.Treasury, &contracts.Treasury},
		{"timelock", netCfg.Contracts.Timelock, &contracts.Timelock},
	}
	for _, f := range fields {
		value, _ := expandValue(f.raw)
		if value == "" {
			// Left as the zero address; commands that need it report it as missing
			continue
		}
		if !common.IsHexAddress(value) {
			return nil, config.Contracts{}, fmt.Errorf("network '%s': %s %q: %w", name, f.name, value, domain.ErrInvalidAddress)
		}
		*f.dst = common.HexToAddress(value)
	}

	return &config.Network{
		Name:    name,
		ChainID: netCfg.ChainID,
		RPCURL:  rpcURL,
	}, contracts, nil
}

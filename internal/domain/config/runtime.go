package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	Network   *Network // nil if not specified
	Contracts Contracts

	// Account settings; empty key means no wallet is connected
	PrivateKey string

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool
	Timeout        time.Duration

	// Proposal reads and vote submission
	ReadConcurrency     int
	PollInterval        time.Duration
	ConfirmationTimeout time.Duration
	RefreshInterval     time.Duration

	// Config source tracking
	ConfigSource string // "grantdao.toml" or "defaults"
	DAOConfig    *DAOConfig
}

// Network represents network configuration
type Network struct {
	ChainID uint64 `json:"chainId"`
	Name    string `json:"name"`
	RPCURL  string `json:"rpcUrl"`
}

// Contracts holds the deployed addresses the client talks to
type Contracts struct {
	GrantToken common.Address `json:"grantToken"`
	Governor   common.Address `json:"governor"`
	Treasury   common.Address `json:"treasury"`
	Timelock   common.Address `json:"timelock"`
}

// Missing returns the names of unset addresses
func (c Contracts) Missing() []string {
	var missing []string
	if c.GrantToken == (common.Address{}) {
		missing = append(missing, "grant_token")
	}
	if c.Governor == (common.Address{}) {
		missing = append(missing, "governor")
	}
	if c.Treasury == (common.Address{}) {
		missing = append(missing, "treasury")
	}
	if c.Timelock == (common.Address{}) {
		missing = append(missing, "timelock")
	}
	return missing
}

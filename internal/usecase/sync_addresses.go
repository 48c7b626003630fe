package usecase

import (
	"context"
	"fmt"

	"github.com/grantdao/grantdao-cli/internal/domain"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
)

// DefaultDeployScript is the Foundry script whose broadcast holds the DAO deployment
const DefaultDeployScript = "Deploy.s.sol"

// deployedEnvKeys maps contract names in the broadcast to .env keys
var deployedEnvKeys = map[string]string{
	"GrantToken":         "GRANT_TOKEN",
	"TimelockController": "TIMELOCK",
	"GrantGovernor":      "GOVERNOR",
	"Treasury":           "TREASURY",
}

// SyncAddressesParams contains parameters for syncing addresses
type SyncAddressesParams struct {
	Script string
	DryRun bool
}

// SyncAddressesResult contains the addresses found and where they were written
type SyncAddressesResult struct {
	BroadcastPath string
	EnvPath       string
	Values        map[string]string
	Missing       []string
}

// SyncAddresses is the use case for copying deployed addresses into .env
type SyncAddresses struct {
	config    *config.RuntimeConfig
	broadcast BroadcastReader
	env       EnvWriter
}

// NewSyncAddresses creates a new SyncAddresses use case
func NewSyncAddresses(cfg *config.RuntimeConfig, broadcast BroadcastReader, env EnvWriter) *SyncAddresses {
	return &SyncAddresses{
		config:    cfg,
		broadcast: broadcast,
		env:       env,
	}
}

// Run reads the latest broadcast for the configured chain and upserts the
// DAO contract addresses into the project .env
func (uc *SyncAddresses) Run(ctx context.Context, params SyncAddressesParams) (*SyncAddressesResult, error) {
	if uc.config.Network == nil {
		return nil, fmt.Errorf("no network configured")
	}
	script := params.Script
	if script == "" {
		script = DefaultDeployScript
	}

	contracts, path, err := uc.broadcast.ReadDeployments(ctx, script, uc.config.Network.ChainID)
	if err != nil {
		return nil, err
	}

	result := &SyncAddressesResult{
		BroadcastPath: path,
		Values:        make(map[string]string),
	}
	// Later creations of the same contract win, matching a redeploy in one run
	for _, c := range contracts {
		if key, ok := deployedEnvKeys[c.Name]; ok {
			result.Values[key] = c.Address.Hex()
		}
	}
	for _, name := range DeployedContractNames() {
		if _, ok := result.Values[deployedEnvKeys[name]]; !ok {
			result.Missing = append(result.Missing, name)
		}
	}
	if len(result.Values) == 0 {
		return nil, fmt.Errorf("no DAO contracts in %s: %w", path, domain.ErrNotFound)
	}

	if params.DryRun {
		return result, nil
	}
	if result.EnvPath, err = uc.env.UpsertEnv(ctx, result.Values); err != nil {
		return nil, err
	}
	return result, nil
}

// DeployedContractNames lists the contract names sync looks for
func DeployedContractNames() []string {
	return []string{"GrantToken", "TimelockController", "GrantGovernor", "Treasury"}
}

package usecase

import (
	"context"
	"fmt"

	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
)

// NetworkStatus is the use case for checking the configured node
type NetworkStatus struct {
	config  *config.RuntimeConfig
	checker BlockchainChecker
}

// NewNetworkStatus creates a new NetworkStatus use case
func NewNetworkStatus(cfg *config.RuntimeConfig, checker BlockchainChecker) *NetworkStatus {
	return &NetworkStatus{
		config:  cfg,
		checker: checker,
	}
}

// Run reports the node's chain id and head block against the configured network
func (uc *NetworkStatus) Run(ctx context.Context) (*models.ChainStatus, error) {
	if uc.config.Network == nil {
		return nil, fmt.Errorf("no network configured")
	}

	chainID, err := uc.checker.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", uc.config.Network.RPCURL, err)
	}
	latest, err := uc.checker.LatestBlock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read latest block: %w", err)
	}

	expected := uc.config.Network.ChainID
	return &models.ChainStatus{
		Network:         uc.config.Network.Name,
		RPCURL:          uc.config.Network.RPCURL,
		ExpectedChainID: expected,
		ChainID:         chainID,
		LatestBlock:     latest,
		Mismatch:        expected != 0 && expected != chainID,
	}, nil
}

//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/grantdao/grantdao-cli/internal/adapters"
	"github.com/grantdao/grantdao-cli/internal/config"
	"github.com/grantdao/grantdao-cli/internal/logging"
	"github.com/grantdao/grantdao-cli/internal/usecase"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewVotedSet,
		usecase.NewProposalReader,
		usecase.NewListProposals,
		usecase.NewProposalFeed,
		usecase.NewSubmissionTracker,
		usecase.NewCreateGrant,
		usecase.NewShowBalances,
		usecase.NewNetworkStatus,
		usecase.NewSyncAddresses,
		usecase.NewListVoteHistory,

		// App
		NewApp,
	)
	return nil, nil
}

package app

import (
	"log/slog"

	"github.com/grantdao/grantdao-cli/internal/adapters/blockchain"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	Selector usecase.ProposalSelector
	Sink     usecase.ProgressSink
	Voted    *usecase.VotedSet

	// Use cases
	ListProposals   *usecase.ListProposals
	ProposalReader  *usecase.ProposalReader
	ProposalFeed    *usecase.ProposalFeed
	Tracker         *usecase.SubmissionTracker
	CreateGrant     *usecase.CreateGrant
	ShowBalances    *usecase.ShowBalances
	NetworkStatus   *usecase.NetworkStatus
	SyncAddresses   *usecase.SyncAddresses
	ListVoteHistory *usecase.ListVoteHistory

	conn *blockchain.Connection
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	selector usecase.ProposalSelector,
	sink usecase.ProgressSink,
	voted *usecase.VotedSet,
	listProposals *usecase.ListProposals,
	proposalReader *usecase.ProposalReader,
	proposalFeed *usecase.ProposalFeed,
	tracker *usecase.SubmissionTracker,
	createGrant *usecase.CreateGrant,
	showBalances *usecase.ShowBalances,
	networkStatus *usecase.NetworkStatus,
	syncAddresses *usecase.SyncAddresses,
	listVoteHistory *usecase.ListVoteHistory,
	conn *blockchain.Connection,
) *App {
	return &App{
		Config:          cfg,
		Log:             log,
		Selector:        selector,
		Sink:            sink,
		Voted:           voted,
		ListProposals:   listProposals,
		ProposalReader:  proposalReader,
		ProposalFeed:    proposalFeed,
		Tracker:         tracker,
		CreateGrant:     createGrant,
		ShowBalances:    showBalances,
		NetworkStatus:   networkStatus,
		SyncAddresses:   syncAddresses,
		ListVoteHistory: listVoteHistory,
		conn:            conn,
	}
}

// Close releases the RPC connection if one was opened
func (a *App) Close() {
	if a.conn != nil {
		a.conn.Close()
	}
}

package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
)

// GovernorReader performs the read-only governor calls. Every method is a
// single contract call with no retry.
type GovernorReader interface {
	ReadProposalCount(ctx context.Context) (*big.Int, error)
	ReadProposalCore(ctx context.Context, id *big.Int) (*models.ProposalCore, error)
	ReadProposalState(ctx context.Context, id *big.Int) (models.ProposalState, error)
	ReadProposalVotes(ctx context.Context, id *big.Int) (*models.VoteTally, error)
	ReadHasVoted(ctx context.Context, id *big.Int, voter common.Address) (bool, error)
}

// GovernorWriter signs and broadcasts governor transactions.
// The returned hash is the submission handle; it does not imply inclusion.
type GovernorWriter interface {
	SubmitVote(ctx context.Context, id *big.Int, support models.VoteSupport) (common.Hash, error)
	Propose(ctx context.Context, actions models.ProposalActions) (common.Hash, error)
}

// TransactionWatcher reports whether a submitted transaction has been mined.
// A pending transaction yields a zero Confirmation and no error.
type TransactionWatcher interface {
	CheckConfirmation(ctx context.Context, txHash common.Hash) (models.Confirmation, error)
}

// AccountProvider exposes the bound signing identity, if any
type AccountProvider interface {
	CurrentAccount() (common.Address, bool)
}

// TokenReader reads the governance token
type TokenReader interface {
	TokenInfo(ctx context.Context) (models.TokenInfo, error)
	BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)
	GetVotes(ctx context.Context, account common.Address) (*big.Int, error)
}

// BalanceReader reads native balances
type BalanceReader interface {
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
}

// BlockchainChecker checks the node behind the configured RPC endpoint
type BlockchainChecker interface {
	ChainID(ctx context.Context) (uint64, error)
	LatestBlock(ctx context.Context) (uint64, error)
}

// VoteHistoryStore persists vote submission outcomes
type VoteHistoryStore interface {
	Append(ctx context.Context, record *models.VoteRecord) error
	List(ctx context.Context) ([]*models.VoteRecord, error)
}

// BroadcastReader extracts deployed contracts from Foundry broadcast output
type BroadcastReader interface {
	ReadDeployments(ctx context.Context, script string, chainID uint64) ([]models.DeployedContract, string, error)
}

// EnvWriter updates the project dotenv file
type EnvWriter interface {
	UpsertEnv(ctx context.Context, values map[string]string) (string, error)
}

// ProposalSelector handles interactive selection of proposals
type ProposalSelector interface {
	SelectProposal(ctx context.Context, proposals []*models.Proposal, prompt string) (*models.Proposal, error)
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

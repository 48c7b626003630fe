package adapters

import (
	"github.com/google/wire"
	"github.com/grantdao/grantdao-cli/internal/adapters/blockchain"
	"github.com/grantdao/grantdao-cli/internal/adapters/forge/broadcast"
	"github.com/grantdao/grantdao-cli/internal/adapters/fs"
	"github.com/grantdao/grantdao-cli/internal/adapters/governor"
	"github.com/grantdao/grantdao-cli/internal/adapters/interactive"
	"github.com/grantdao/grantdao-cli/internal/adapters/progress"
	"github.com/grantdao/grantdao-cli/internal/adapters/wallet"
	"github.com/grantdao/grantdao-cli/internal/usecase"
)

// BlockchainSet provides the RPC connection and chain-level reads
var BlockchainSet = wire.NewSet(
	blockchain.NewConnection,
	blockchain.NewCheckerAdapter,
	wire.Bind(new(usecase.BlockchainChecker), new(*blockchain.CheckerAdapter)),
	wire.Bind(new(usecase.BalanceReader), new(*blockchain.CheckerAdapter)),
	wire.Bind(new(usecase.TransactionWatcher), new(*blockchain.CheckerAdapter)),
)

// GovernorSet provides contract-backed implementations
var GovernorSet = wire.NewSet(
	governor.NewReaderAdapter,
	wire.Bind(new(usecase.GovernorReader), new(*governor.ReaderAdapter)),

	governor.NewWriterAdapter,
	wire.Bind(new(usecase.GovernorWriter), new(*governor.WriterAdapter)),

	governor.NewTokenAdapter,
	wire.Bind(new(usecase.TokenReader), new(*governor.TokenAdapter)),
)

// WalletSet provides the signing account
var WalletSet = wire.NewSet(
	wallet.NewAccountAdapter,
	wire.Bind(new(usecase.AccountProvider), new(*wallet.AccountAdapter)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewVoteHistoryStoreAdapter,
	wire.Bind(new(usecase.VoteHistoryStore), new(*fs.VoteHistoryStoreAdapter)),

	fs.NewEnvWriterAdapter,
	wire.Bind(new(usecase.EnvWriter), new(*fs.EnvWriterAdapter)),
)

// ForgeSet provides Foundry artifact readers
var ForgeSet = wire.NewSet(
	broadcast.NewParser,
	wire.Bind(new(usecase.BroadcastReader), new(*broadcast.Parser)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ProposalSelector), new(*interactive.SelectorAdapter)),
)

// ProgressSet provides the progress sink for the current output mode
var ProgressSet = wire.NewSet(
	progress.NewProgressSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	BlockchainSet,
	GovernorSet,
	WalletSet,
	FSSet,
	ForgeSet,
	InteractiveSet,
	ProgressSet,
)

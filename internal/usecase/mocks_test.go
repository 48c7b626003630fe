package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/grantdao/grantdao-cli/internal/usecase"
	"github.com/stretchr/testify/mock"
)

var (
	voterAddr    = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	governorAddr = common.HexToAddress("0x68B1D87F95878fE05B998F19b66F4baba5De1aed")
	txHash       = common.HexToHash("0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// idEq matches a *big.Int argument by value
func idEq(n int64) interface{} {
	return mock.MatchedBy(func(id *big.Int) bool {
		return id != nil && id.Cmp(big.NewInt(n)) == 0
	})
}

// MockGovernorReader is a mock implementation of GovernorReader
type MockGovernorReader struct {
	mock.Mock
}

func (m *MockGovernorReader) ReadProposalCount(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockGovernorReader) ReadProposalCore(ctx context.Context, id *big.Int) (*models.ProposalCore, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProposalCore), args.Error(1)
}

func (m *MockGovernorReader) ReadProposalState(ctx context.Context, id *big.Int) (models.ProposalState, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ProposalState), args.Error(1)
}

func (m *MockGovernorReader) ReadProposalVotes(ctx context.Context, id *big.Int) (*models.VoteTally, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VoteTally), args.Error(1)
}

func (m *MockGovernorReader) ReadHasVoted(ctx context.Context, id *big.Int, voter common.Address) (bool, error) {
	args := m.Called(ctx, id, voter)
	return args.Bool(0), args.Error(1)
}

// expectProposal sets up a successful read of all three getters for id
func (m *MockGovernorReader) expectProposal(id int64, state models.ProposalState) {
	m.On("ReadProposalCore", mock.Anything, idEq(id)).Return(&models.ProposalCore{
		Proposer:    voterAddr,
		Description: "Grant " + big.NewInt(id).String() + "\n\nbody",
		StartBlock:  big.NewInt(10),
		EndBlock:    big.NewInt(20),
	}, nil)
	m.On("ReadProposalState", mock.Anything, idEq(id)).Return(state, nil)
	m.On("ReadProposalVotes", mock.Anything, idEq(id)).Return(&models.VoteTally{
		For:     big.NewInt(id * 10),
		Against: big.NewInt(0),
		Abstain: big.NewInt(0),
	}, nil)
}

// MockGovernorWriter is a mock implementation of GovernorWriter
type MockGovernorWriter struct {
	mock.Mock
}

func (m *MockGovernorWriter) SubmitVote(ctx context.Context, id *big.Int, support models.VoteSupport) (common.Hash, error) {
	args := m.Called(ctx, id, support)
	return args.Get(0).(common.Hash), args.Error(1)
}

func (m *MockGovernorWriter) Propose(ctx context.Context, actions models.ProposalActions) (common.Hash, error) {
	args := m.Called(ctx, actions)
	return args.Get(0).(common.Hash), args.Error(1)
}

// MockTransactionWatcher is a mock implementation of TransactionWatcher
type MockTransactionWatcher struct {
	mock.Mock
}

func (m *MockTransactionWatcher) CheckConfirmation(ctx context.Context, hash common.Hash) (models.Confirmation, error) {
	args := m.Called(ctx, hash)
	return args.Get(0).(models.Confirmation), args.Error(1)
}

// staticAccount implements AccountProvider
type staticAccount struct {
	addr  common.Address
	bound bool
}

func (a staticAccount) CurrentAccount() (common.Address, bool) {
	return a.addr, a.bound
}

var (
	connected    usecase.AccountProvider = staticAccount{addr: voterAddr, bound: true}
	disconnected usecase.AccountProvider = staticAccount{}
)

// memoryHistory implements VoteHistoryStore
type memoryHistory struct {
	mu      sync.Mutex
	records []*models.VoteRecord
}

func (h *memoryHistory) Append(_ context.Context, r *models.VoteRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *memoryHistory) List(context.Context) ([]*models.VoteRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*models.VoteRecord(nil), h.records...), nil
}

// MockProgressSink records progress events
type MockProgressSink struct {
	mu     sync.Mutex
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(_ context.Context, event usecase.ProgressEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(string)  {}
func (m *MockProgressSink) Error(string) {}

func (m *MockProgressSink) stages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.Stage)
	}
	return out
}

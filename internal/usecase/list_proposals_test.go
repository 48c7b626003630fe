package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/grantdao/grantdao-cli/internal/domain"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/grantdao/grantdao-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newListProposals(gov *MockGovernorReader, concurrency int, sink usecase.ProgressSink) *usecase.ListProposals {
	cfg := &config.RuntimeConfig{ReadConcurrency: concurrency}
	reader := usecase.NewProposalReader(gov, discardLogger())
	return usecase.NewListProposals(cfg, gov, reader, sink)
}

func ids(proposals []*models.Proposal) []int64 {
	out := make([]int64, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, p.ID.Int64())
	}
	return out
}

func TestProposalReader(t *testing.T) {
	ctx := context.Background()

	t.Run("merges the three reads", func(t *testing.T) {
		gov := &MockGovernorReader{}
		gov.expectProposal(7, models.ProposalStateActive)

		p, err := usecase.NewProposalReader(gov, discardLogger()).Fetch(ctx, big.NewInt(7))
		require.NoError(t, err)

		assert.Equal(t, int64(7), p.ID.Int64())
		assert.Equal(t, "Grant 7", p.Title())
		assert.Equal(t, models.ProposalStateActive, p.State)
		assert.Equal(t, int64(70), p.ForVotes.Int64())
		assert.Equal(t, voterAddr, p.Proposer)
	})

	t.Run("reports which read failed", func(t *testing.T) {
		gov := &MockGovernorReader{}
		gov.On("ReadProposalCore", mock.Anything, idEq(4)).Return(&models.ProposalCore{}, nil)
		gov.On("ReadProposalState", mock.Anything, idEq(4)).Return(models.ProposalState(0), errors.New("execution reverted"))

		p, err := usecase.NewProposalReader(gov, discardLogger()).Fetch(ctx, big.NewInt(4))
		assert.Nil(t, p)

		var readErr *domain.ProposalReadError
		require.ErrorAs(t, err, &readErr)
		assert.Equal(t, "state", readErr.Op)
		assert.Equal(t, int64(4), readErr.ProposalID.Int64())
		assert.Contains(t, err.Error(), "execution reverted")
		gov.AssertNotCalled(t, "ReadProposalVotes", mock.Anything, mock.Anything)
	})
}

func TestListProposals(t *testing.T) {
	ctx := context.Background()

	t.Run("failed id is dropped and order is kept", func(t *testing.T) {
		gov := &MockGovernorReader{}
		gov.On("ReadProposalCount", mock.Anything).Return(big.NewInt(3), nil)
		gov.expectProposal(1, models.ProposalStateActive)
		gov.expectProposal(3, models.ProposalStateSucceeded)
		gov.On("ReadProposalCore", mock.Anything, idEq(2)).Return(nil, errors.New("rpc timeout"))

		sink := &MockProgressSink{}
		result, err := newListProposals(gov, 1, sink).Run(ctx)
		require.NoError(t, err)

		assert.Equal(t, []int64{1, 3}, ids(result.Proposals))
		assert.Equal(t, int64(3), result.Count.Int64())
		require.Len(t, result.Failures, 1)
		assert.Equal(t, int64(2), result.Failures[0].ProposalID.Int64())
		assert.Equal(t, "proposals", result.Failures[0].Op)

		// Exactly one attempt per id
		gov.AssertNumberOfCalls(t, "ReadProposalCore", 3)
		gov.AssertNumberOfCalls(t, "ReadProposalState", 2)
		gov.AssertNumberOfCalls(t, "ReadProposalVotes", 2)

		stages := sink.stages()
		assert.Equal(t, "loading", stages[0])
		assert.Equal(t, "complete", stages[len(stages)-1])
	})

	t.Run("zero count issues no per-id reads", func(t *testing.T) {
		gov := &MockGovernorReader{}
		gov.On("ReadProposalCount", mock.Anything).Return(big.NewInt(0), nil)

		result, err := newListProposals(gov, 1, usecase.NopProgress{}).Run(ctx)
		require.NoError(t, err)

		assert.Empty(t, result.Proposals)
		assert.Empty(t, result.Failures)
		gov.AssertNotCalled(t, "ReadProposalCore", mock.Anything, mock.Anything)
	})

	t.Run("nil count aggregates nothing", func(t *testing.T) {
		gov := &MockGovernorReader{}

		result, err := newListProposals(gov, 1, usecase.NopProgress{}).Aggregate(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, result.Proposals)
		gov.AssertNotCalled(t, "ReadProposalCore", mock.Anything, mock.Anything)
	})

	t.Run("count failure is surfaced without a partial listing", func(t *testing.T) {
		gov := &MockGovernorReader{}
		gov.On("ReadProposalCount", mock.Anything).Return(nil, errors.New("connection refused"))

		result, err := newListProposals(gov, 1, usecase.NopProgress{}).Run(ctx)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrProposalCountUnavailable)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("count beyond uint64 is rejected", func(t *testing.T) {
		huge := new(big.Int).Lsh(big.NewInt(1), 70)
		gov := &MockGovernorReader{}
		gov.On("ReadProposalCount", mock.Anything).Return(huge, nil)

		_, err := newListProposals(gov, 1, usecase.NopProgress{}).Run(ctx)
		assert.ErrorIs(t, err, domain.ErrInvalidProposalCount)
		gov.AssertNotCalled(t, "ReadProposalCore", mock.Anything, mock.Anything)
	})

	t.Run("parallel reads keep ascending order", func(t *testing.T) {
		gov := &MockGovernorReader{}
		gov.On("ReadProposalCount", mock.Anything).Return(big.NewInt(12), nil)
		for i := int64(1); i <= 12; i++ {
			if i == 5 || i == 9 {
				gov.On("ReadProposalCore", mock.Anything, idEq(i)).Return(nil, errors.New("boom"))
				continue
			}
			gov.expectProposal(i, models.ProposalStateActive)
		}

		result, err := newListProposals(gov, 4, usecase.NopProgress{}).Run(ctx)
		require.NoError(t, err)

		assert.Equal(t, []int64{1, 2, 3, 4, 6, 7, 8, 10, 11, 12}, ids(result.Proposals))
		assert.Len(t, result.Failures, 2)
		gov.AssertNumberOfCalls(t, "ReadProposalCore", 12)
	})

	t.Run("same state yields the same sequence", func(t *testing.T) {
		gov := &MockGovernorReader{}
		gov.On("ReadProposalCount", mock.Anything).Return(big.NewInt(2), nil)
		gov.expectProposal(1, models.ProposalStatePending)
		gov.expectProposal(2, models.ProposalStateExecuted)

		uc := newListProposals(gov, 1, usecase.NopProgress{})
		first, err := uc.Run(ctx)
		require.NoError(t, err)
		second, err := uc.Run(ctx)
		require.NoError(t, err)

		assert.Equal(t, first.Proposals, second.Proposals)
	})
}

func TestProposalListResultIDs(t *testing.T) {
	result := &usecase.ProposalListResult{Count: big.NewInt(3)}
	got := result.IDs()
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].String())
	assert.Equal(t, "3", got[2].String())

	assert.Empty(t, (&usecase.ProposalListResult{}).IDs())
}

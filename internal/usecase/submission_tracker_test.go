package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/grantdao/grantdao-cli/internal/domain"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/grantdao/grantdao-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type trackerFixture struct {
	writer  *MockGovernorWriter
	watcher *MockTransactionWatcher
	voted   *usecase.VotedSet
	history *memoryHistory
	tracker *usecase.SubmissionTracker
}

func newTrackerFixture(accounts usecase.AccountProvider, timeout time.Duration) *trackerFixture {
	f := &trackerFixture{
		writer:  &MockGovernorWriter{},
		watcher: &MockTransactionWatcher{},
		voted:   usecase.NewVotedSet(),
		history: &memoryHistory{},
	}
	cfg := &config.RuntimeConfig{
		Network:             &config.Network{Name: "anvil", ChainID: 31337},
		Contracts:           config.Contracts{Governor: governorAddr},
		PollInterval:        time.Millisecond,
		ConfirmationTimeout: timeout,
	}
	f.tracker = usecase.NewSubmissionTracker(cfg, f.writer, f.watcher, accounts, f.voted, f.history, discardLogger())
	return f
}

func TestSubmissionTracker(t *testing.T) {
	ctx := context.Background()

	t.Run("no bound account submits nothing", func(t *testing.T) {
		f := newTrackerFixture(disconnected, time.Second)

		session, err := f.tracker.CastVote(ctx, big.NewInt(5), models.SupportFor)
		assert.Nil(t, session)
		assert.ErrorIs(t, err, domain.ErrNotConnected)
		assert.Equal(t, models.PhaseIdle, f.tracker.Phase())
		f.writer.AssertNotCalled(t, "SubmitVote", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid support is rejected before submission", func(t *testing.T) {
		f := newTrackerFixture(connected, time.Second)

		_, err := f.tracker.CastVote(ctx, big.NewInt(1), models.VoteSupport(3))
		assert.ErrorIs(t, err, domain.ErrInvalidSupport)
		f.writer.AssertNotCalled(t, "SubmitVote", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("confirmed vote marks the proposal as voted", func(t *testing.T) {
		f := newTrackerFixture(connected, time.Second)
		f.writer.On("SubmitVote", mock.Anything, idEq(1), models.SupportFor).Return(txHash, nil)
		f.watcher.On("CheckConfirmation", mock.Anything, txHash).Return(models.Confirmation{}, nil).Twice()
		f.watcher.On("CheckConfirmation", mock.Anything, txHash).Return(models.Confirmation{Confirmed: true, BlockNumber: 42}, nil)

		session, err := f.tracker.CastVote(ctx, big.NewInt(1), models.SupportFor)
		require.NoError(t, err)

		assert.Equal(t, models.PhaseDone, session.Phase)
		require.NotNil(t, session.Handle)
		assert.Equal(t, txHash, *session.Handle)
		assert.Equal(t, uint64(42), session.BlockNumber)
		assert.NotNil(t, session.ConfirmedAt)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, voterAddr, session.Voter)

		assert.True(t, f.voted.HasVoted(big.NewInt(1), voterAddr))
		assert.Equal(t, models.PhaseDone, f.tracker.Phase())
		f.watcher.AssertNumberOfCalls(t, "CheckConfirmation", 3)

		records, _ := f.history.List(ctx)
		require.Len(t, records, 1)
		assert.Equal(t, models.PhaseDone, records[0].Phase)
		assert.Equal(t, "1", records[0].ProposalID)
		assert.Equal(t, uint64(31337), records[0].ChainID)
		assert.Equal(t, governorAddr.Hex(), records[0].Governor)
		assert.Equal(t, txHash.Hex(), records[0].TxHash)
	})

	t.Run("transient poll errors keep polling", func(t *testing.T) {
		f := newTrackerFixture(connected, time.Second)
		f.writer.On("SubmitVote", mock.Anything, idEq(2), models.SupportAbstain).Return(txHash, nil)
		f.watcher.On("CheckConfirmation", mock.Anything, txHash).Return(models.Confirmation{}, errors.New("header not found")).Once()
		f.watcher.On("CheckConfirmation", mock.Anything, txHash).Return(models.Confirmation{Confirmed: true, BlockNumber: 7}, nil)

		session, err := f.tracker.CastVote(ctx, big.NewInt(2), models.SupportAbstain)
		require.NoError(t, err)
		assert.Equal(t, models.PhaseDone, session.Phase)
	})

	t.Run("rejection resets to idle and keeps the error", func(t *testing.T) {
		f := newTrackerFixture(connected, time.Second)
		f.writer.On("SubmitVote", mock.Anything, idEq(3), models.SupportAgainst).Return(txHash, errors.New("user denied"))

		session, err := f.tracker.CastVote(ctx, big.NewInt(3), models.SupportAgainst)
		assert.ErrorIs(t, err, domain.ErrSubmissionRejected)
		assert.Contains(t, err.Error(), "user denied")
		require.NotNil(t, session)
		assert.Equal(t, models.PhaseIdle, session.Phase)
		assert.Nil(t, session.Handle)

		assert.Equal(t, models.PhaseIdle, f.tracker.Phase())
		assert.Nil(t, f.tracker.LastSession())
		require.Error(t, f.tracker.LastError())
		assert.Contains(t, f.tracker.LastError().Error(), "user denied")
		assert.False(t, f.voted.HasVoted(big.NewInt(3), voterAddr))
		f.watcher.AssertNotCalled(t, "CheckConfirmation", mock.Anything, mock.Anything)

		records, _ := f.history.List(ctx)
		require.Len(t, records, 1)
		assert.Equal(t, models.PhaseFailed, records[0].Phase)
		assert.Equal(t, "user denied", records[0].Error)
	})

	t.Run("reverted vote fails", func(t *testing.T) {
		f := newTrackerFixture(connected, time.Second)
		f.writer.On("SubmitVote", mock.Anything, idEq(4), models.SupportFor).Return(txHash, nil)
		f.watcher.On("CheckConfirmation", mock.Anything, txHash).Return(models.Confirmation{Reverted: true, BlockNumber: 9}, nil)

		session, err := f.tracker.CastVote(ctx, big.NewInt(4), models.SupportFor)
		assert.ErrorIs(t, err, domain.ErrTransactionReverted)
		assert.Equal(t, models.PhaseFailed, session.Phase)
		assert.Equal(t, models.PhaseFailed, f.tracker.Phase())
		assert.ErrorIs(t, f.tracker.LastError(), domain.ErrTransactionReverted)
		assert.False(t, f.voted.HasVoted(big.NewInt(4), voterAddr))
	})

	t.Run("unconfirmed vote times out", func(t *testing.T) {
		f := newTrackerFixture(connected, 20*time.Millisecond)
		f.writer.On("SubmitVote", mock.Anything, idEq(6), models.SupportFor).Return(txHash, nil)
		f.watcher.On("CheckConfirmation", mock.Anything, txHash).Return(models.Confirmation{}, nil)

		session, err := f.tracker.CastVote(ctx, big.NewInt(6), models.SupportFor)
		assert.ErrorIs(t, err, domain.ErrConfirmationTimeout)
		assert.Equal(t, models.PhaseFailed, session.Phase)

		// A terminal session does not block the next vote
		f.writer.On("SubmitVote", mock.Anything, idEq(7), models.SupportFor).Return(txHash, errors.New("nonce too low"))
		_, err = f.tracker.CastVote(ctx, big.NewInt(7), models.SupportFor)
		assert.ErrorIs(t, err, domain.ErrSubmissionRejected)
	})

	t.Run("second vote while one is in flight is refused", func(t *testing.T) {
		f := newTrackerFixture(connected, time.Second)
		release := make(chan time.Time)
		f.writer.On("SubmitVote", mock.Anything, idEq(1), models.SupportFor).WaitUntil(release).Return(txHash, nil)
		f.watcher.On("CheckConfirmation", mock.Anything, txHash).Return(models.Confirmation{Confirmed: true, BlockNumber: 1}, nil)

		done := make(chan error, 1)
		go func() {
			_, err := f.tracker.CastVote(ctx, big.NewInt(1), models.SupportFor)
			done <- err
		}()

		require.Eventually(t, func() bool {
			return f.tracker.Phase() == models.PhasePending
		}, time.Second, time.Millisecond)

		_, err := f.tracker.CastVote(ctx, big.NewInt(2), models.SupportAgainst)
		assert.ErrorIs(t, err, domain.ErrSubmissionInFlight)
		f.writer.AssertNumberOfCalls(t, "SubmitVote", 1)

		close(release)
		require.NoError(t, <-done)
		assert.Equal(t, models.PhaseDone, f.tracker.Phase())
	})

	t.Run("reset returns to idle", func(t *testing.T) {
		f := newTrackerFixture(connected, time.Second)
		f.writer.On("SubmitVote", mock.Anything, idEq(8), models.SupportFor).Return(txHash, nil)
		f.watcher.On("CheckConfirmation", mock.Anything, txHash).Return(models.Confirmation{Confirmed: true}, nil)

		_, err := f.tracker.CastVote(ctx, big.NewInt(8), models.SupportFor)
		require.NoError(t, err)
		require.NotNil(t, f.tracker.LastSession())

		f.tracker.Reset()
		assert.Equal(t, models.PhaseIdle, f.tracker.Phase())
		assert.Nil(t, f.tracker.LastSession())
		// Voted flag survives a reset
		assert.True(t, f.voted.HasVoted(big.NewInt(8), voterAddr))
	})
}

func TestVotedSetIsMonotonic(t *testing.T) {
	s := usecase.NewVotedSet()
	id := big.NewInt(11)

	assert.False(t, s.HasVoted(id, voterAddr))
	s.Observe(id, voterAddr, false)
	assert.False(t, s.HasVoted(id, voterAddr))

	s.Observe(id, voterAddr, true)
	assert.True(t, s.HasVoted(id, voterAddr))

	s.Observe(id, voterAddr, false)
	assert.True(t, s.HasVoted(id, voterAddr))
	assert.True(t, s.HasVoted(big.NewInt(11), voterAddr))
	assert.False(t, s.HasVoted(id, governorAddr))
	assert.False(t, s.HasVoted(nil, voterAddr))
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/grantdao/grantdao-cli/internal/domain"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
)

// DefaultConfirmationTimeout bounds how long a submitted vote may stay unconfirmed
const DefaultConfirmationTimeout = 5 * time.Minute

// DefaultPollInterval is the receipt polling period when none is configured
const DefaultPollInterval = 2 * time.Second

// SubmissionTracker owns the single vote-submission slot shared by every
// proposal in a listing. At most one session is Pending or Confirming at a time.
type SubmissionTracker struct {
	config   *config.RuntimeConfig
	writer   GovernorWriter
	watcher  TransactionWatcher
	accounts AccountProvider
	voted    *VotedSet
	history  VoteHistoryStore
	log      *slog.Logger

	mu      sync.Mutex
	session *models.SubmissionSession
	lastErr error
}

// NewSubmissionTracker creates a new SubmissionTracker
func NewSubmissionTracker(
	cfg *config.RuntimeConfig,
	writer GovernorWriter,
	watcher TransactionWatcher,
	accounts AccountProvider,
	voted *VotedSet,
	history VoteHistoryStore,
	log *slog.Logger,
) *SubmissionTracker {
	return &SubmissionTracker{
		config:   cfg,
		writer:   writer,
		watcher:  watcher,
		accounts: accounts,
		voted:    voted,
		history:  history,
		log:      log,
	}
}

// CastVote submits a vote and blocks until it is confirmed, reverted or times out.
// The returned session is a copy of the final state.
func (t *SubmissionTracker) CastVote(ctx context.Context, id *big.Int, support models.VoteSupport) (*models.SubmissionSession, error) {
	if !support.Valid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidSupport, support)
	}
	voter, ok := t.accounts.CurrentAccount()
	if !ok {
		return nil, domain.ErrNotConnected
	}

	t.mu.Lock()
	if t.session != nil && t.session.Phase.InFlight() {
		t.mu.Unlock()
		return nil, domain.ErrSubmissionInFlight
	}
	session := &models.SubmissionSession{
		ID:         uuid.NewString(),
		ProposalID: new(big.Int).Set(id),
		Support:    support,
		Voter:      voter,
		Phase:      models.PhasePending,
		StartedAt:  time.Now(),
	}
	t.session = session
	t.lastErr = nil
	t.mu.Unlock()

	t.log.Debug("submitting vote", "session", session.ID, "id", id.String(), "support", support.String(), "voter", voter.Hex())

	hash, err := t.writer.SubmitVote(ctx, id, support)
	if err != nil {
		t.mu.Lock()
		if t.session == session {
			t.session = nil
		}
		t.lastErr = err
		session.Phase = models.PhaseIdle
		session.Err = err
		result := session.Clone()
		t.mu.Unlock()

		t.record(ctx, result, models.PhaseFailed)
		return result, fmt.Errorf("%w: %w", domain.ErrSubmissionRejected, err)
	}

	t.update(session, func(s *models.SubmissionSession) {
		s.Handle = &hash
		s.Phase = models.PhaseConfirming
	})

	conf, err := t.awaitConfirmation(ctx, hash)
	switch {
	case err != nil:
		t.update(session, func(s *models.SubmissionSession) {
			s.Phase = models.PhaseFailed
			s.Err = err
		})
	case conf.Reverted:
		err = fmt.Errorf("%w: %s", domain.ErrTransactionReverted, hash.Hex())
		t.update(session, func(s *models.SubmissionSession) {
			s.Phase = models.PhaseFailed
			s.BlockNumber = conf.BlockNumber
			s.Err = err
		})
	default:
		t.voted.MarkVoted(id, voter)
		now := time.Now()
		t.update(session, func(s *models.SubmissionSession) {
			s.Phase = models.PhaseDone
			s.BlockNumber = conf.BlockNumber
			s.ConfirmedAt = &now
		})
	}

	t.mu.Lock()
	if err != nil && t.session == session {
		t.lastErr = err
	}
	result := session.Clone()
	t.mu.Unlock()

	t.record(ctx, result, result.Phase)
	return result, err
}

// awaitConfirmation polls until the transaction is mined or the bound elapses.
// Poll errors are treated as transient.
func (t *SubmissionTracker) awaitConfirmation(ctx context.Context, hash common.Hash) (models.Confirmation, error) {
	return WaitForConfirmation(ctx, t.watcher, hash, t.pollInterval(), t.confirmationTimeout(), t.log)
}

func (t *SubmissionTracker) update(session *models.SubmissionSession, fn func(s *models.SubmissionSession)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(session)
}

func (t *SubmissionTracker) record(ctx context.Context, s *models.SubmissionSession, phase models.SubmissionPhase) {
	if t.history == nil {
		return
	}
	rec := &models.VoteRecord{
		SessionID:   s.ID,
		ProposalID:  s.ProposalID.String(),
		Support:     s.Support,
		Voter:       s.Voter.Hex(),
		Phase:       phase,
		BlockNumber: s.BlockNumber,
		SubmittedAt: s.StartedAt,
		ConfirmedAt: s.ConfirmedAt,
	}
	if t.config != nil {
		if t.config.Network != nil {
			rec.ChainID = t.config.Network.ChainID
		}
		rec.Governor = t.config.Contracts.Governor.Hex()
	}
	if s.Handle != nil {
		rec.TxHash = s.Handle.Hex()
	}
	if s.Err != nil {
		rec.Error = s.Err.Error()
	}
	// History is an audit trail; a write failure must not change the vote outcome
	if err := t.history.Append(context.WithoutCancel(ctx), rec); err != nil {
		t.log.Warn("failed to record vote", "session", s.ID, "error", err)
	}
}

// Phase returns the phase of the current session, or idle when there is none
func (t *SubmissionTracker) Phase() models.SubmissionPhase {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.session == nil {
		return models.PhaseIdle
	}
	return t.session.Phase
}

// LastSession returns a copy of the current or most recent session, if any
func (t *SubmissionTracker) LastSession() *models.SubmissionSession {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.session.Clone()
}

// LastError returns the error of the most recent failed or rejected submission
func (t *SubmissionTracker) LastError() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}

// Account returns the account votes are cast from, if one is bound
func (t *SubmissionTracker) Account() (common.Address, bool) {
	return t.accounts.CurrentAccount()
}

// Reset drops the current session and error so the tracker reads as idle
func (t *SubmissionTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.session = nil
	t.lastErr = nil
}

func (t *SubmissionTracker) pollInterval() time.Duration {
	if t.config == nil || t.config.PollInterval <= 0 {
		return DefaultPollInterval
	}
	return t.config.PollInterval
}

func (t *SubmissionTracker) confirmationTimeout() time.Duration {
	if t.config == nil || t.config.ConfirmationTimeout <= 0 {
		return DefaultConfirmationTimeout
	}
	return t.config.ConfirmationTimeout
}

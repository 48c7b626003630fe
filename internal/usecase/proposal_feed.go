package usecase

import (
	"context"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/grantdao/grantdao-cli/internal/domain"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
)

// FeedSnapshot is the listing state of a ProposalFeed at one point in time
type FeedSnapshot struct {
	Proposals  []*models.Proposal
	Failures   []*domain.ProposalReadError
	Count      *big.Int
	Err        error
	Generation uint64
	LoadedAt   time.Time
	Loaded     bool
}

// ProposalFeed keeps the proposal listing for a long-lived view. It re-runs
// the aggregation on first load, when proposalCount changes, or on demand, and
// drops the result of any pass that was overtaken by a newer one.
type ProposalFeed struct {
	list     *ListProposals
	governor GovernorReader
	accounts AccountProvider
	voted    *VotedSet
	log      *slog.Logger

	mu         sync.Mutex
	generation uint64
	snapshot   FeedSnapshot
}

// NewProposalFeed creates a new ProposalFeed
func NewProposalFeed(list *ListProposals, governor GovernorReader, accounts AccountProvider, voted *VotedSet, log *slog.Logger) *ProposalFeed {
	return &ProposalFeed{
		list:     list,
		governor: governor,
		accounts: accounts,
		voted:    voted,
		log:      log,
	}
}

// Refresh reads proposalCount and re-aggregates when needed. The returned
// snapshot is the feed's state after the call, whether or not this pass applied.
func (f *ProposalFeed) Refresh(ctx context.Context, force bool) (FeedSnapshot, error) {
	count, err := f.list.Count(ctx)

	f.mu.Lock()
	if err != nil {
		// Error state: no proposals shown, and any pass still running is void
		f.generation++
		f.snapshot = FeedSnapshot{
			Err:        err,
			Generation: f.generation,
			LoadedAt:   time.Now(),
			Loaded:     true,
		}
		snap := f.snapshot
		f.mu.Unlock()
		return snap, err
	}

	if !force && f.snapshot.Loaded && f.snapshot.Err == nil &&
		f.snapshot.Count != nil && f.snapshot.Count.Cmp(count) == 0 {
		snap := f.snapshot
		f.mu.Unlock()
		f.refreshVoted(ctx, snap.Proposals)
		return snap, nil
	}

	f.generation++
	gen := f.generation
	f.mu.Unlock()

	result, err := f.list.Aggregate(ctx, count)
	if err != nil {
		return f.applyError(gen, err)
	}
	if ctx.Err() != nil {
		// Reads failed because the caller went away, not because the proposals are bad
		return f.Snapshot(), ctx.Err()
	}

	f.refreshVoted(ctx, result.Proposals)

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.generation {
		f.log.Debug("discarding stale proposal pass", "generation", gen, "latest", f.generation)
		return f.snapshot, nil
	}
	f.snapshot = FeedSnapshot{
		Proposals:  result.Proposals,
		Failures:   result.Failures,
		Count:      result.Count,
		Generation: gen,
		LoadedAt:   time.Now(),
		Loaded:     true,
	}
	return f.snapshot, nil
}

func (f *ProposalFeed) applyError(gen uint64, err error) (FeedSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.generation {
		return f.snapshot, nil
	}
	f.snapshot = FeedSnapshot{
		Err:        err,
		Generation: gen,
		LoadedAt:   time.Now(),
		Loaded:     true,
	}
	return f.snapshot, err
}

// refreshVoted folds hasVoted reads for the bound account into the voted set
func (f *ProposalFeed) refreshVoted(ctx context.Context, proposals []*models.Proposal) {
	voter, ok := f.accounts.CurrentAccount()
	if !ok {
		return
	}
	for _, p := range proposals {
		if f.voted.HasVoted(p.ID, voter) {
			continue
		}
		voted, err := f.governor.ReadHasVoted(ctx, p.ID, voter)
		if err != nil {
			f.log.Warn("failed to read hasVoted", "id", p.ID.String(), "voter", voter.Hex(), "error", err)
			continue
		}
		f.voted.Observe(p.ID, voter, voted)
	}
}

// Load reads one proposal outside the listing and folds in whether the bound
// account has voted on it
func (f *ProposalFeed) Load(ctx context.Context, id *big.Int) (*models.Proposal, error) {
	p, err := f.list.reader.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	f.refreshVoted(ctx, []*models.Proposal{p})
	return p, nil
}

// Snapshot returns the current listing state
func (f *ProposalFeed) Snapshot() FeedSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot
}

// HasVoted reports whether the bound account is known to have voted on id
func (f *ProposalFeed) HasVoted(id *big.Int) bool {
	voter, ok := f.accounts.CurrentAccount()
	if !ok {
		return false
	}
	return f.voted.HasVoted(id, voter)
}

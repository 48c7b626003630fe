package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/grantdao/grantdao-cli/internal/domain"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// ProposalListResult contains the result of listing proposals
type ProposalListResult struct {
	// Count is the governor's proposalCount at the time of the pass
	Count *big.Int
	// Proposals holds every successfully read proposal, ascending by id
	Proposals []*models.Proposal
	// Failures holds one entry per id that could not be read
	Failures []*domain.ProposalReadError
}

// IDs returns 1..Count, the ids the governor has issued
func (r *ProposalListResult) IDs() []*big.Int {
	if r.Count == nil || !r.Count.IsUint64() {
		return nil
	}
	return lo.Times(int(r.Count.Uint64()), func(i int) *big.Int {
		return big.NewInt(int64(i) + 1)
	})
}

// ListProposals is the use case for enumerating every proposal the governor knows about
type ListProposals struct {
	config   *config.RuntimeConfig
	governor GovernorReader
	reader   *ProposalReader
	sink     ProgressSink
}

// NewListProposals creates a new ListProposals use case
func NewListProposals(cfg *config.RuntimeConfig, governor GovernorReader, reader *ProposalReader, sink ProgressSink) *ListProposals {
	return &ListProposals{
		config:   cfg,
		governor: governor,
		reader:   reader,
		sink:     sink,
	}
}

// SetSink replaces the progress sink, e.g. when a full-screen view owns the terminal
func (uc *ListProposals) SetSink(sink ProgressSink) {
	uc.sink = sink
}

// Count reads proposalCount. Failures wrap domain.ErrProposalCountUnavailable.
func (uc *ListProposals) Count(ctx context.Context) (*big.Int, error) {
	count, err := uc.governor.ReadProposalCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProposalCountUnavailable, err)
	}
	if count == nil {
		count = new(big.Int)
	}
	if err := validateCount(count); err != nil {
		return nil, err
	}
	return count, nil
}

// Run reads the proposal count and aggregates every id up to it
func (uc *ListProposals) Run(ctx context.Context) (*ProposalListResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading proposal count",
		Spinner: true,
	})

	count, err := uc.Count(ctx)
	if err != nil {
		return nil, err
	}

	result, err := uc.Aggregate(ctx, count)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Aggregate reads ids 1..count, one attempt each. Ids whose reads fail are
// left out of Proposals and reported in Failures; the rest keep ascending order.
func (uc *ListProposals) Aggregate(ctx context.Context, count *big.Int) (*ProposalListResult, error) {
	result := &ProposalListResult{Count: new(big.Int)}
	if count == nil || count.Sign() == 0 {
		uc.complete(ctx, 0)
		return result, nil
	}
	if err := validateCount(count); err != nil {
		return nil, err
	}
	result.Count.Set(count)

	n := count.Uint64()
	if n > uint64(maxInt) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidProposalCount, count)
	}
	ids := result.IDs()

	slots := make([]*models.Proposal, len(ids))
	failures := make([]*domain.ProposalReadError, len(ids))

	read := func(i int) {
		p, err := uc.reader.Fetch(ctx, ids[i])
		if err != nil {
			var readErr *domain.ProposalReadError
			if !errors.As(err, &readErr) {
				readErr = &domain.ProposalReadError{ProposalID: ids[i], Op: "fetch", Err: err}
			}
			failures[i] = readErr
			return
		}
		slots[i] = p
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "reading",
		Total:   len(ids),
		Message: fmt.Sprintf("Reading %d proposals", len(ids)),
		Spinner: true,
	})

	if workers := uc.concurrency(); workers > 1 {
		var g errgroup.Group
		g.SetLimit(workers)
		for i := range ids {
			g.Go(func() error {
				read(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range ids {
			read(i)
			uc.sink.OnProgress(ctx, ProgressEvent{
				Stage:   "reading",
				Current: i + 1,
				Total:   len(ids),
				Message: fmt.Sprintf("Read proposal %s", ids[i]),
				Spinner: true,
			})
		}
	}

	result.Proposals = lo.Compact(slots)
	result.Failures = lo.Compact(failures)

	uc.complete(ctx, len(result.Proposals))
	return result, nil
}

func (uc *ListProposals) complete(ctx context.Context, n int) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: n,
		Total:   n,
		Message: "Proposals loaded",
	})
}

func (uc *ListProposals) concurrency() int {
	if uc.config == nil || uc.config.ReadConcurrency < 1 {
		return 1
	}
	return uc.config.ReadConcurrency
}

const maxInt = int(^uint(0) >> 1)

func validateCount(count *big.Int) error {
	if count.Sign() < 0 || !count.IsUint64() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidProposalCount, count)
	}
	return nil
}

package usecase

import (
	"context"
	"log/slog"
	"math/big"

	"github.com/grantdao/grantdao-cli/internal/domain"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
)

// ProposalReader fetches and merges the three governor reads for one proposal id
type ProposalReader struct {
	governor GovernorReader
	log      *slog.Logger
}

// NewProposalReader creates a new ProposalReader
func NewProposalReader(governor GovernorReader, log *slog.Logger) *ProposalReader {
	return &ProposalReader{
		governor: governor,
		log:      log,
	}
}

// Fetch reads proposals(id), state(id) and proposalVotes(id) and merges them.
// The first failing read is logged and returned as a *domain.ProposalReadError.
func (r *ProposalReader) Fetch(ctx context.Context, id *big.Int) (*models.Proposal, error) {
	core, err := r.governor.ReadProposalCore(ctx, id)
	if err != nil {
		return nil, r.fail(id, "proposals", err)
	}

	state, err := r.governor.ReadProposalState(ctx, id)
	if err != nil {
		return nil, r.fail(id, "state", err)
	}

	tally, err := r.governor.ReadProposalVotes(ctx, id)
	if err != nil {
		return nil, r.fail(id, "proposalVotes", err)
	}

	return models.NewProposal(id, core, state, tally), nil
}

func (r *ProposalReader) fail(id *big.Int, op string, err error) error {
	r.log.Warn("failed to read proposal", "id", id.String(), "read", op, "error", err)
	return &domain.ProposalReadError{
		ProposalID: new(big.Int).Set(id),
		Op:         op,
		Err:        err,
	}
}

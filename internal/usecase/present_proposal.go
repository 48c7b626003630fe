package usecase

import (
	"math/big"

	"github.com/grantdao/grantdao-cli/internal/domain/models"
)

var hundred = big.NewInt(100)

// PresentProposal derives everything a view shows for one proposal.
// It has no side effects and reads nothing beyond its arguments.
func PresentProposal(p *models.Proposal, phase models.SubmissionPhase, hasVoted bool) *models.ProposalDisplay {
	total := p.TotalVotes()

	return &models.ProposalDisplay{
		Proposal:        p,
		Title:           p.Title(),
		StateLabel:      p.State.String(),
		StateCategory:   p.State.Category(),
		TotalVotes:      total,
		ForPct:          percentOf(p.ForVotes, total),
		AgainstPct:      percentOf(p.AgainstVotes, total),
		AbstainPct:      percentOf(p.AbstainVotes, total),
		HasVoted:        hasVoted,
		IsVotable:       p.State.AcceptsVotes() && !hasVoted,
		ActionsDisabled: phase.InFlight(),
	}
}

// percentOf returns floor(part*100/total), or 0 when total is zero
func percentOf(part, total *big.Int) int {
	if part == nil || total.Sign() == 0 {
		return 0
	}
	pct := new(big.Int).Mul(part, hundred)
	pct.Quo(pct, total)
	return int(pct.Int64())
}

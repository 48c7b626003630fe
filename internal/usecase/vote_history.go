package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/samber/lo"
)

// ListVoteHistoryParams filters the vote history
type ListVoteHistoryParams struct {
	ProposalID string
	AllChains  bool
}

// ListVoteHistory is the use case for reading recorded vote submissions
type ListVoteHistory struct {
	config *config.RuntimeConfig
	store  VoteHistoryStore
}

// NewListVoteHistory creates a new ListVoteHistory use case
func NewListVoteHistory(cfg *config.RuntimeConfig, store VoteHistoryStore) *ListVoteHistory {
	return &ListVoteHistory{
		config: cfg,
		store:  store,
	}
}

// Run returns matching records, newest first
func (uc *ListVoteHistory) Run(ctx context.Context, params ListVoteHistoryParams) ([]*models.VoteRecord, error) {
	records, err := uc.store.List(ctx)
	if err != nil {
		return nil, err
	}

	records = lo.Filter(records, func(r *models.VoteRecord, _ int) bool {
		if !params.AllChains && uc.config.Network != nil && r.ChainID != uc.config.Network.ChainID {
			return false
		}
		if !params.AllChains && !strings.EqualFold(r.Governor, uc.config.Contracts.Governor.Hex()) {
			return false
		}
		return params.ProposalID == "" || r.ProposalID == params.ProposalID
	})

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SubmittedAt.After(records[j].SubmittedAt)
	})
	return records, nil
}

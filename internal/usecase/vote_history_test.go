package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/grantdao/grantdao-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListVoteHistory(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	store := &memoryHistory{}
	for _, r := range []*models.VoteRecord{
		{SessionID: "a", ChainID: 31337, Governor: governorAddr.Hex(), ProposalID: "1", SubmittedAt: base},
		{SessionID: "b", ChainID: 31337, Governor: governorAddr.Hex(), ProposalID: "2", SubmittedAt: base.Add(time.Hour)},
		{SessionID: "c", ChainID: 1, Governor: governorAddr.Hex(), ProposalID: "1", SubmittedAt: base.Add(2 * time.Hour)},
		{SessionID: "d", ChainID: 31337, Governor: voterAddr.Hex(), ProposalID: "1", SubmittedAt: base.Add(3 * time.Hour)},
	} {
		require.NoError(t, store.Append(ctx, r))
	}

	cfg := &config.RuntimeConfig{
		Network:   &config.Network{ChainID: 31337},
		Contracts: config.Contracts{Governor: governorAddr},
	}
	uc := usecase.NewListVoteHistory(cfg, store)

	sessions := func(records []*models.VoteRecord) []string {
		out := []string{}
		for _, r := range records {
			out = append(out, r.SessionID)
		}
		return out
	}

	records, err := uc.Run(ctx, usecase.ListVoteHistoryParams{})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, sessions(records))

	records, err = uc.Run(ctx, usecase.ListVoteHistoryParams{ProposalID: "1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, sessions(records))

	records, err = uc.Run(ctx, usecase.ListVoteHistoryParams{AllChains: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "b", "a"}, sessions(records))
}

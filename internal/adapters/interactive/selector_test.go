package interactive

import (
	"context"
	"math/big"
	"testing"

	"github.com/fatih/color"
	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProposals() []*models.Proposal {
	return []*models.Proposal{
		{ID: big.NewInt(1), State: models.ProposalStateActive, Description: "Fund the docs sprint\nDetails follow"},
		{ID: big.NewInt(2), State: models.ProposalStateSucceeded, Description: "Community hackathon prizes"},
	}
}

func TestSelectProposal(t *testing.T) {
	ctx := context.Background()

	t.Run("single proposal needs no prompt", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})
		p, err := s.SelectProposal(ctx, testProposals()[:1], "Select")
		require.NoError(t, err)
		assert.Equal(t, int64(1), p.ID.Int64())
	})

	t.Run("empty list", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		_, err := s.SelectProposal(ctx, nil, "Select")
		assert.Error(t, err)
	})

	t.Run("non-interactive with several candidates", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})
		_, err := s.SelectProposal(ctx, testProposals(), "Select")
		assert.ErrorIs(t, err, ErrNonInteractive)
	})
}

func TestConfirmNonInteractive(t *testing.T) {
	s := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})
	ok, err := s.Confirm(context.Background(), "Cast vote")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNonInteractive)
}

func TestFormatProposalOptionsAndSearch(t *testing.T) {
	color.NoColor = true
	options := formatProposalOptions(testProposals())
	require.Len(t, options, 2)
	assert.Equal(t, "#1 [Active] Fund the docs sprint", options[0])

	search := createFuzzySearchFunc(options)
	assert.True(t, search("", 0))
	assert.True(t, search("docs", 0))
	assert.False(t, search("zzz", 1))
	assert.True(t, search("hckthn", 1))
}

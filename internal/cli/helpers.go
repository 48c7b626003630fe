package cli

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/grantdao/grantdao-cli/internal/app"
	"github.com/grantdao/grantdao-cli/internal/cli/render"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/grantdao/grantdao-cli/internal/usecase"
)

// tallyDecimals is the governance token's precision used to render vote tallies
const tallyDecimals = models.EtherDecimals

// outputFormat resolves --output against the global --json flag
func outputFormat(a *app.App, flag string) (render.Format, error) {
	format, err := render.ParseFormat(flag)
	if err != nil {
		return "", err
	}
	if a.Config.JSON && format == render.FormatTable {
		return render.FormatJSON, nil
	}
	return format, nil
}

// parseProposalID accepts a positive decimal id, optionally prefixed with '#'
func parseProposalID(s string) (*big.Int, error) {
	id, ok := new(big.Int).SetString(strings.TrimPrefix(strings.TrimSpace(s), "#"), 10)
	if !ok || id.Sign() <= 0 {
		return nil, fmt.Errorf("invalid proposal id %q", s)
	}
	return id, nil
}

// present builds display models using the tracker's phase and the voted set
func present(a *app.App, proposals []*models.Proposal) []*models.ProposalDisplay {
	phase := a.Tracker.Phase()
	displays := make([]*models.ProposalDisplay, 0, len(proposals))
	for _, p := range proposals {
		displays = append(displays, usecase.PresentProposal(p, phase, a.ProposalFeed.HasVoted(p.ID)))
	}
	return displays
}

// stopProgress halts a running spinner before normal output is written
func stopProgress(sink usecase.ProgressSink) {
	if s, ok := sink.(interface{ Stop() }); ok {
		s.Stop()
	}
}

package cli

import (
	"errors"
	"fmt"

	"github.com/grantdao/grantdao-cli/internal/app"
	"github.com/grantdao/grantdao-cli/internal/cli/render"
	"github.com/grantdao/grantdao-cli/internal/domain"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/grantdao/grantdao-cli/internal/usecase"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// errAlreadyVoted is returned when the bound account has a recorded vote on the proposal
var errAlreadyVoted = errors.New("already voted on this proposal")

// NewVoteCmd creates the vote command
func NewVoteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "vote [id] <for|against|abstain>",
		Short: "Cast a vote on an active proposal",
		Long: `Cast a vote with the configured account and wait for it to be mined.

Without an id, choose among the active proposals you have not voted on.
Only one vote is submitted at a time; the command returns once the
transaction is confirmed, reverts or the confirmation timeout elapses.`,
		Example: `  grantdao vote 3 for
  grantdao vote against
  grantdao vote 3 abstain --yes`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			defer stopProgress(a.Sink)

			support, err := models.ParseVoteSupport(args[len(args)-1])
			if err != nil {
				return fmt.Errorf("%w: %w", domain.ErrInvalidSupport, err)
			}
			if _, ok := a.Tracker.Account(); !ok {
				return domain.ErrNotConnected
			}

			var p *models.Proposal
			if len(args) == 2 {
				id, err := parseProposalID(args[0])
				if err != nil {
					return err
				}
				if p, err = a.ProposalFeed.Load(cmd.Context(), id); err != nil {
					return err
				}
			} else {
				votable := func(p *models.Proposal) bool {
					return p.State.AcceptsVotes() && !a.ProposalFeed.HasVoted(p.ID)
				}
				if p, err = selectProposal(cmd, a, votable, "Select a proposal to vote on"); err != nil {
					return err
				}
			}
			stopProgress(a.Sink)

			if err := checkVotable(a, p); err != nil {
				return err
			}

			if !yes && !a.Config.NonInteractive {
				ok, err := a.Selector.Confirm(cmd.Context(), fmt.Sprintf("Vote %s on #%s %q", support, p.ID, p.Title()))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Vote cancelled")
					return nil
				}
			}

			a.Sink.OnProgress(cmd.Context(), usecase.ProgressEvent{
				Stage:   "submitting",
				Message: fmt.Sprintf("Casting vote on #%s", p.ID),
				Spinner: true,
			})
			session, err := a.Tracker.CastVote(cmd.Context(), p.ID, support)
			stopProgress(a.Sink)
			if session != nil {
				if a.Config.JSON {
					if werr := render.WriteJSON(cmd.OutOrStdout(), session); werr != nil {
						return werr
					}
				} else if werr := render.NewSessionRenderer(cmd.OutOrStdout()).Render(session); werr != nil {
					return werr
				}
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// checkVotable rejects proposals that cannot take the bound account's vote
func checkVotable(a *app.App, p *models.Proposal) error {
	if !p.State.AcceptsVotes() {
		return fmt.Errorf("%w: proposal #%s is %s", domain.ErrProposalNotActive, p.ID, p.State)
	}
	if a.ProposalFeed.HasVoted(p.ID) {
		return fmt.Errorf("proposal #%s: %w", p.ID, errAlreadyVoted)
	}
	return nil
}

// selectProposal loads the listing and prompts for one proposal matching keep
func selectProposal(cmd *cobra.Command, a *app.App, keep func(*models.Proposal) bool, prompt string) (*models.Proposal, error) {
	snap, err := a.ProposalFeed.Refresh(cmd.Context(), true)
	if err != nil {
		return nil, err
	}
	stopProgress(a.Sink)

	candidates := snap.Proposals
	if keep != nil {
		candidates = lo.Filter(candidates, func(p *models.Proposal, _ int) bool { return keep(p) })
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no matching proposals: %w", domain.ErrNotFound)
	}
	return a.Selector.SelectProposal(cmd.Context(), candidates, prompt)
}

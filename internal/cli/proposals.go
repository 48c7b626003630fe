package cli

import (
	"fmt"
	"io"
	"math/big"

	"github.com/grantdao/grantdao-cli/internal/cli/render"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// NewProposalsCmd creates the proposals command
func NewProposalsCmd() *cobra.Command {
	var (
		output  string
		state   string
		idsOnly bool
	)

	cmd := &cobra.Command{
		Use:     "proposals",
		Aliases: []string{"ls", "list"},
		Short:   "List governor proposals",
		Long: `List every proposal the governor has recorded, newest last.

Each id is read once; proposals whose reads fail are reported after the
table instead of failing the whole listing.`,
		Example: `  # List all proposals
  grantdao proposals

  # Only proposals open for voting, as YAML
  grantdao proposals --state active -o yaml

  # Read with 8 concurrent requests
  grantdao proposals --concurrency 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			defer stopProgress(a.Sink)

			format, err := outputFormat(a, output)
			if err != nil {
				return err
			}

			var filter *models.ProposalState
			if state != "" {
				s, ok := models.ParseProposalState(state)
				if !ok {
					return fmt.Errorf("unknown proposal state %q", state)
				}
				filter = &s
			}

			snap, err := a.ProposalFeed.Refresh(cmd.Context(), true)
			if err != nil {
				return err
			}
			stopProgress(a.Sink)

			proposals := snap.Proposals
			if filter != nil {
				proposals = lo.Filter(proposals, func(p *models.Proposal, _ int) bool {
					return p.State == *filter
				})
			}

			out := cmd.OutOrStdout()
			if idsOnly {
				writeProposalIDs(out, snap.Count, proposals)
				return nil
			}

			displays := present(a, proposals)
			if format != render.FormatTable {
				return render.WriteStructured(out, format, render.NewProposalListView(snap.Count.String(), displays, snap.Failures))
			}
			return render.NewProposalsRenderer(out, tallyDecimals).RenderList(displays, snap.Failures)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json, yaml)")
	cmd.Flags().StringVar(&state, "state", "", "Only show proposals in this state (e.g. active, succeeded)")
	cmd.Flags().BoolVar(&idsOnly, "ids", false, "Print proposal ids only")
	cmd.Flags().Int("concurrency", 0, "Concurrent proposal reads (default settings.read_concurrency)")

	return cmd
}

// writeProposalIDs prints the governor's proposal count followed by one id per line
func writeProposalIDs(out io.Writer, count *big.Int, proposals []*models.Proposal) {
	fmt.Fprintf(out, "Proposal count: %s\n", count)
	for _, p := range proposals {
		fmt.Fprintln(out, p.ID)
	}
}

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show one proposal with its tallies and actions",
		Long: `Show a single proposal. Without an id, pick one from the list
interactively.`,
		Example: `  grantdao show 3
  grantdao show 3 --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			defer stopProgress(a.Sink)

			format, err := outputFormat(a, output)
			if err != nil {
				return err
			}

			var p *models.Proposal
			if len(args) == 1 {
				id, err := parseProposalID(args[0])
				if err != nil {
					return err
				}
				if p, err = a.ProposalFeed.Load(cmd.Context(), id); err != nil {
					return err
				}
			} else {
				if p, err = selectProposal(cmd, a, nil, "Select a proposal"); err != nil {
					return err
				}
			}
			stopProgress(a.Sink)

			display := present(a, []*models.Proposal{p})[0]
			if format != render.FormatTable {
				return render.WriteStructured(cmd.OutOrStdout(), format, render.NewProposalView(display))
			}
			return render.NewProposalsRenderer(cmd.OutOrStdout(), tallyDecimals).RenderDetail(display)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json, yaml)")
	return cmd
}

package cli

import (
	"github.com/grantdao/grantdao-cli/internal/cli/render"
	"github.com/grantdao/grantdao-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewVotesCmd creates the votes command
func NewVotesCmd() *cobra.Command {
	var (
		proposal  string
		allChains bool
	)

	cmd := &cobra.Command{
		Use:   "votes",
		Short: "Show votes submitted from this machine",
		Long: `Show the local record of vote submissions, newest first. By default only
votes on the current network's governor are listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListVoteHistoryParams{AllChains: allChains}
			if proposal != "" {
				id, err := parseProposalID(proposal)
				if err != nil {
					return err
				}
				params.ProposalID = id.String()
			}

			records, err := a.ListVoteHistory.Run(cmd.Context(), params)
			if err != nil {
				return err
			}
			if a.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), records)
			}
			return render.NewVoteHistoryRenderer(cmd.OutOrStdout()).Render(records)
		},
	}

	cmd.Flags().StringVar(&proposal, "proposal", "", "Only show votes on this proposal id")
	cmd.Flags().BoolVar(&allChains, "all", false, "Include votes on other networks and governors")
	return cmd
}

package cli

import (
	"github.com/grantdao/grantdao-cli/internal/cli/render"
	"github.com/grantdao/grantdao-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewSyncCmd creates the sync command
func NewSyncCmd() *cobra.Command {
	var (
		script string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Copy deployed contract addresses from a Foundry broadcast into .env",
		Long: `Read broadcast/<script>/<chainId>/run-latest.json for the current network
and write GRANT_TOKEN, TIMELOCK, GOVERNOR and TREASURY into the project's .env.
Other .env entries are left untouched.`,
		Example: `  grantdao sync
  grantdao sync --script DeployLocal.s.sol --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := a.SyncAddresses.Run(cmd.Context(), usecase.SyncAddressesParams{
				Script: script,
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}
			if a.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), result)
			}
			return render.NewSyncRenderer(cmd.OutOrStdout(), dryRun).Render(result)
		},
	}

	cmd.Flags().StringVar(&script, "script", usecase.DefaultDeployScript, "Deploy script whose broadcast to read")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the addresses without writing .env")
	return cmd
}

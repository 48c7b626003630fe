package cli

import (
	"github.com/grantdao/grantdao-cli/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewBalancesCmd creates the balances command
func NewBalancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show treasury and account balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			defer stopProgress(a.Sink)

			balances, err := a.ShowBalances.Run(cmd.Context())
			stopProgress(a.Sink)
			if err != nil {
				return err
			}
			if a.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), balances)
			}
			return render.NewBalancesRenderer(cmd.OutOrStdout()).Render(balances)
		},
	}
}

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the RPC connection and chain id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}

			status, err := a.NetworkStatus.Run(cmd.Context())
			if err != nil {
				return err
			}
			if a.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), status)
			}
			return render.NewStatusRenderer(cmd.OutOrStdout()).Render(status)
		},
	}
}

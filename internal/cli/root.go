package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/grantdao/grantdao-cli/internal/app"
	"github.com/grantdao/grantdao-cli/internal/config"
	"github.com/grantdao/grantdao-cli/internal/domain"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// skipAppInit lists commands that run without configuration or RPC access
var skipAppInit = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
}

// noTimeout lists long-running commands that ignore the global timeout
var noTimeout = map[string]bool{
	"dashboard": true,
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "grantdao",
		Short: "Browse, vote on and propose grants in a GrantDAO governor",
		Long: `grantdao reads proposals from a GrantDAO governor, casts votes with
a configured account and proposes ETH or ERC20 grants from the treasury.

Networks and contract addresses are read from grantdao.toml, falling back to
a local Anvil deployment whose addresses come from .env (see 'grantdao sync').`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipAppInit[cmd.Name()] {
				return nil
			}

			projectRoot := config.FindProjectRoot()
			v := config.SetupViper(projectRoot, cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 && !noTimeout[cmd.Name()] {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a, err := getApp(cmd); err == nil {
				a.Close()
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network from grantdao.toml to use (defaults to settings.default_network)")
	rootCmd.PersistentFlags().String("rpc-url", "", "Override the network's RPC URL")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output machine-readable JSON")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Abort the command after this long (default 10m)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "governance",
		Title: "Governance Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	for _, cmd := range []*cobra.Command{
		NewProposalsCmd(),
		NewShowCmd(),
		NewVoteCmd(),
		NewProposeCmd(),
		NewDashboardCmd(),
		NewVotesCmd(),
	} {
		cmd.GroupID = "governance"
		rootCmd.AddCommand(cmd)
	}

	for _, cmd := range []*cobra.Command{
		NewBalancesCmd(),
		NewStatusCmd(),
		NewSyncCmd(),
	} {
		cmd.GroupID = "management"
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	if cmd.Context() == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}

// hint returns a follow-up suggestion for well-known failures
func hint(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotConnected):
		return "Set PRIVATE_KEY (or [account] private_key in grantdao.toml) to sign transactions"
	case errors.Is(err, domain.ErrProposalCountUnavailable):
		return "Check that the node is running and the governor address is correct (grantdao status)"
	case errors.Is(err, domain.ErrNetworkMismatch):
		return "Switch the node or pass --network for the chain you are connected to"
	default:
		return ""
	}
}

// PrintError writes a failed command's error and any hint for it
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if h := hint(err); h != "" {
		fmt.Fprintf(w, "Hint: %s\n", h)
	}
}

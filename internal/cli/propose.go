package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/grantdao/grantdao-cli/internal/app"
	"github.com/grantdao/grantdao-cli/internal/cli/render"
	"github.com/grantdao/grantdao-cli/internal/domain"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/grantdao/grantdao-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// NewProposeCmd creates the propose command group
func NewProposeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "propose",
		Short: "Propose a grant paid from the treasury",
		Long: `Submit a governor proposal that pays a grant from the treasury once it
passes. ETH grants send value to the recipient; ERC20 grants call transfer on
the token.`,
	}

	cmd.AddCommand(newProposeGrantCmd(models.GrantKindETH))
	cmd.AddCommand(newProposeGrantCmd(models.GrantKindERC20))
	return cmd
}

func newProposeGrantCmd(kind models.GrantKind) *cobra.Command {
	var (
		recipient   string
		amount      string
		description string
		token       string
		decimals    uint8
		yes         bool
	)

	cmd := &cobra.Command{
		Use:   string(kind),
		Short: fmt.Sprintf("Propose an %s grant", map[models.GrantKind]string{models.GrantKindETH: "ETH", models.GrantKindERC20: "ERC20"}[kind]),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			defer stopProgress(a.Sink)

			params := usecase.CreateGrantParams{
				Kind:        kind,
				Recipient:   recipient,
				Amount:      amount,
				Description: description,
				Token:       token,
				Decimals:    decimals,
			}
			if kind == models.GrantKindERC20 {
				if params.Token, err = grantToken(token, a.Config.Contracts.GrantToken); err != nil {
					return err
				}
			}

			// Validate before prompting so a typo never reaches the confirmation
			actions, err := usecase.BuildGrantActions(params)
			if err != nil {
				return err
			}
			if ok, err := confirmGrant(cmd, a, actions, yes); err != nil || !ok {
				return err
			}

			result, err := a.CreateGrant.Run(cmd.Context(), params)
			stopProgress(a.Sink)
			if err != nil {
				return err
			}
			if a.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), result)
			}
			return render.NewGrantRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVar(&recipient, "recipient", "", "Address receiving the grant")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount in whole units (e.g. 1.5)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Proposal description; the first line becomes the title")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("recipient")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("description")
	if kind == models.GrantKindERC20 {
		cmd.Flags().StringVar(&token, "token", "", "ERC20 token address (defaults to the DAO's grant token)")
		cmd.Flags().Uint8Var(&decimals, "decimals", models.EtherDecimals, "Token decimals")
	}

	return cmd
}

// grantToken picks the --token flag, falling back to the configured grant token
func grantToken(flag string, configured common.Address) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if configured == (common.Address{}) {
		return "", fmt.Errorf("%w: no --token given and grant_token is not configured: %w", domain.ErrInvalidGrant, domain.ErrInvalidAddress)
	}
	return configured.Hex(), nil
}

func confirmGrant(cmd *cobra.Command, a *app.App, actions *models.ProposalActions, yes bool) (bool, error) {
	if yes || a.Config.NonInteractive {
		return true, nil
	}
	out := cmd.OutOrStdout()
	for i, target := range actions.Targets {
		fmt.Fprintf(out, "  → %s value %s\n", target.Hex(), actions.Values[i])
	}
	ok, err := a.Selector.Confirm(cmd.Context(), "Submit this proposal")
	if err != nil {
		return false, err
	}
	if !ok {
		fmt.Fprintln(out, "Proposal cancelled")
	}
	return ok, nil
}

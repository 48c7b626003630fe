package usecase

import (
	"context"
	"fmt"

	"github.com/grantdao/grantdao-cli/internal/domain/config"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
)

// ShowBalances is the use case for the treasury and account overview
type ShowBalances struct {
	config   *config.RuntimeConfig
	native   BalanceReader
	token    TokenReader
	accounts AccountProvider
	sink     ProgressSink
}

// NewShowBalances creates a new ShowBalances use case
func NewShowBalances(cfg *config.RuntimeConfig, native BalanceReader, token TokenReader, accounts AccountProvider, sink ProgressSink) *ShowBalances {
	return &ShowBalances{
		config:   cfg,
		native:   native,
		token:    token,
		accounts: accounts,
		sink:     sink,
	}
}

// Run reads the treasury balance and, when an account is bound, the account's
// native balance, token balance and voting power.
func (uc *ShowBalances) Run(ctx context.Context) (*models.Balances, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Reading balances",
		Spinner: true,
	})

	info, err := uc.token.TokenInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read token info: %w", err)
	}

	treasury := uc.config.Contracts.Treasury
	treasuryBalance, err := uc.native.BalanceAt(ctx, treasury)
	if err != nil {
		return nil, fmt.Errorf("failed to read treasury balance: %w", err)
	}

	balances := &models.Balances{
		Token:           info,
		Treasury:        treasury,
		TreasuryBalance: treasuryBalance,
	}

	if account, ok := uc.accounts.CurrentAccount(); ok {
		balances.Account = &account
		if balances.AccountBalance, err = uc.native.BalanceAt(ctx, account); err != nil {
			return nil, fmt.Errorf("failed to read account balance: %w", err)
		}
		if balances.TokenBalance, err = uc.token.BalanceOf(ctx, account); err != nil {
			return nil, fmt.Errorf("failed to read token balance: %w", err)
		}
		if balances.VotingPower, err = uc.token.GetVotes(ctx, account); err != nil {
			return nil, fmt.Errorf("failed to read voting power: %w", err)
		}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Message: "Balances loaded",
	})
	return balances, nil
}

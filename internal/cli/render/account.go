package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
)

var (
	labelStyle   = color.New(color.FgWhite, color.Faint)
	addressStyle = color.New(color.FgWhite)
	okStyle      = color.New(color.FgGreen)
	badStyle     = color.New(color.FgRed)
)

// BalancesRenderer renders treasury and account holdings
type BalancesRenderer struct {
	out io.Writer
}

// NewBalancesRenderer creates a new balances renderer
func NewBalancesRenderer(out io.Writer) *BalancesRenderer {
	return &BalancesRenderer{out: out}
}

// Render implements Renderer
func (r *BalancesRenderer) Render(b *models.Balances) error {
	symbol := b.Token.Symbol
	if symbol == "" {
		symbol = "tokens"
	}

	fmt.Fprintln(r.out, headerStyle.Sprint("💰 Treasury"))
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("Address:"), addressStyle.Sprint(b.Treasury.Hex()))
	fmt.Fprintf(r.out, "  %s %s ETH\n", labelStyle.Sprint("Balance:"), models.FormatEther(b.TreasuryBalance))
	fmt.Fprintln(r.out)

	if b.Account == nil {
		fmt.Fprintln(r.out, FormatWarning("No account configured; set PRIVATE_KEY to vote and propose"))
		return nil
	}

	fmt.Fprintln(r.out, headerStyle.Sprint("👤 Account"))
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("Address:     "), addressStyle.Sprint(b.Account.Hex()))
	fmt.Fprintf(r.out, "  %s %s ETH\n", labelStyle.Sprint("Balance:     "), models.FormatEther(b.AccountBalance))
	fmt.Fprintf(r.out, "  %s %s %s\n", labelStyle.Sprint("Tokens:      "), FormatTokens(b.TokenBalance, b.Token.Decimals), symbol)
	fmt.Fprintf(r.out, "  %s %s %s\n", labelStyle.Sprint("Voting power:"), FormatTokens(b.VotingPower, b.Token.Decimals), symbol)
	if b.VotingPower != nil && b.VotingPower.Sign() == 0 && b.TokenBalance != nil && b.TokenBalance.Sign() > 0 {
		fmt.Fprintln(r.out, FormatWarning("Tokens are not delegated; delegate to yourself to gain voting power"))
	}
	return nil
}

// StatusRenderer renders the connected chain's status
type StatusRenderer struct {
	out io.Writer
}

// NewStatusRenderer creates a new status renderer
func NewStatusRenderer(out io.Writer) *StatusRenderer {
	return &StatusRenderer{out: out}
}

// Render implements Renderer
func (r *StatusRenderer) Render(s *models.ChainStatus) error {
	fmt.Fprintf(r.out, "🌐 %s %s\n", headerStyle.Sprint(s.Network), labelStyle.Sprint(s.RPCURL))
	fmt.Fprintf(r.out, "  %s %d\n", labelStyle.Sprint("Chain ID:    "), s.ChainID)
	fmt.Fprintf(r.out, "  %s %d\n", labelStyle.Sprint("Latest block:"), s.LatestBlock)

	if s.Mismatch {
		fmt.Fprintln(r.out, badStyle.Sprintf("  ✗ Connected to chain %d but %s expects %d", s.ChainID, s.Network, s.ExpectedChainID))
		return nil
	}
	fmt.Fprintln(r.out, okStyle.Sprint("  ✓ Connected"))
	return nil
}

var (
	_ Renderer[*models.Balances]    = (*BalancesRenderer)(nil)
	_ Renderer[*models.ChainStatus] = (*StatusRenderer)(nil)
)

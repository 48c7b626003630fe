package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/grantdao/grantdao-cli/internal/usecase"
)

// SyncRenderer handles rendering of address sync results
type SyncRenderer struct {
	out    io.Writer
	dryRun bool
}

// NewSyncRenderer creates a new sync renderer
func NewSyncRenderer(out io.Writer, dryRun bool) *SyncRenderer {
	return &SyncRenderer{
		out:    out,
		dryRun: dryRun,
	}
}

// Render implements Renderer
func (r *SyncRenderer) Render(result *usecase.SyncAddressesResult) error {
	fmt.Fprintf(r.out, "Reading %s\n\n", labelStyle.Sprint(result.BroadcastPath))

	keys := make([]string, 0, len(result.Values))
	for k := range result.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(r.out, "  %-12s %s\n", k, addressStyle.Sprint(result.Values[k]))
	}
	for _, name := range result.Missing {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s not found in broadcast", name)))
	}
	fmt.Fprintln(r.out)

	if r.dryRun {
		fmt.Fprintln(r.out, "Dry run: .env not modified")
		return nil
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Updated %s", result.EnvPath)))
	return nil
}

// GrantRenderer renders a submitted grant proposal
type GrantRenderer struct {
	out io.Writer
}

// NewGrantRenderer creates a new grant renderer
func NewGrantRenderer(out io.Writer) *GrantRenderer {
	return &GrantRenderer{out: out}
}

// Render implements Renderer
func (r *GrantRenderer) Render(result *usecase.CreateGrantResult) error {
	fmt.Fprintln(r.out, FormatSuccess("Grant proposal submitted"))
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("Transaction:"), result.Outcome.TxHash.Hex())
	fmt.Fprintf(r.out, "  %s %d\n", labelStyle.Sprint("Block:      "), result.Outcome.BlockNumber)
	for i, target := range result.Actions.Targets {
		fmt.Fprintf(r.out, "  %s %s (value %s)\n", labelStyle.Sprint("Target:     "), target.Hex(), bigString(result.Actions.Values[i]))
	}
	return nil
}

var (
	_ Renderer[*usecase.SyncAddressesResult] = (*SyncRenderer)(nil)
	_ Renderer[*usecase.CreateGrantResult]   = (*GrantRenderer)(nil)
)

package render

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fatih/color"
	"github.com/grantdao/grantdao-cli/internal/domain"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	idStyle      = color.New(color.FgWhite, color.Bold)
	faintStyle   = color.New(color.Faint)
	forStyle     = color.New(color.FgGreen)
	againstStyle = color.New(color.FgRed)
	abstainStyle = color.New(color.FgWhite)
	votedStyle   = color.New(color.FgCyan)
	headerStyle  = color.New(color.Bold, color.FgHiWhite)
)

// ProposalView is the serialized form of a presented proposal
type ProposalView struct {
	ID          string         `json:"id" yaml:"id"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	State       string         `json:"state" yaml:"state"`
	Category    string         `json:"category" yaml:"category"`
	Proposer    string         `json:"proposer" yaml:"proposer"`
	StartBlock  string         `json:"startBlock" yaml:"startBlock"`
	EndBlock    string         `json:"endBlock" yaml:"endBlock"`
	Votes       VoteTallyView  `json:"votes" yaml:"votes"`
	Requested   string         `json:"requestedEth" yaml:"requestedEth"`
	Actions     []ActionView   `json:"actions" yaml:"actions"`
	HasVoted    bool           `json:"hasVoted" yaml:"hasVoted"`
	Votable     bool           `json:"votable" yaml:"votable"`
	Disabled    bool           `json:"actionsDisabled" yaml:"actionsDisabled"`
	Percentages PercentageView `json:"percentages" yaml:"percentages"`
}

// VoteTallyView holds raw tallies as decimal strings
type VoteTallyView struct {
	For     string `json:"for" yaml:"for"`
	Against string `json:"against" yaml:"against"`
	Abstain string `json:"abstain" yaml:"abstain"`
	Total   string `json:"total" yaml:"total"`
}

// PercentageView holds the truncated integer shares
type PercentageView struct {
	For     int `json:"for" yaml:"for"`
	Against int `json:"against" yaml:"against"`
	Abstain int `json:"abstain" yaml:"abstain"`
}

// ActionView is one target/value/calldata triple
type ActionView struct {
	Target   string `json:"target" yaml:"target"`
	Value    string `json:"value" yaml:"value"`
	Calldata string `json:"calldata" yaml:"calldata"`
}

// FailureView reports an id whose reads failed
type FailureView struct {
	ID    string `json:"id" yaml:"id"`
	Op    string `json:"op" yaml:"op"`
	Error string `json:"error" yaml:"error"`
}

// ProposalListView is the serialized form of a proposal listing
type ProposalListView struct {
	Count     string         `json:"count" yaml:"count"`
	Proposals []ProposalView `json:"proposals" yaml:"proposals"`
	Failures  []FailureView  `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// NewProposalView converts a display model into its serialized form
func NewProposalView(d *models.ProposalDisplay) ProposalView {
	p := d.Proposal
	view := ProposalView{
		ID:          p.ID.String(),
		Title:       d.Title,
		Description: p.Description,
		State:       d.StateLabel,
		Category:    string(d.StateCategory),
		Proposer:    p.Proposer.Hex(),
		StartBlock:  bigString(p.StartBlock),
		EndBlock:    bigString(p.EndBlock),
		Votes: VoteTallyView{
			For:     bigString(p.ForVotes),
			Against: bigString(p.AgainstVotes),
			Abstain: bigString(p.AbstainVotes),
			Total:   bigString(d.TotalVotes),
		},
		Requested: models.FormatEther(p.RequestedValue()),
		HasVoted:  d.HasVoted,
		Votable:   d.IsVotable,
		Disabled:  d.ActionsDisabled,
		Percentages: PercentageView{
			For:     d.ForPct,
			Against: d.AgainstPct,
			Abstain: d.AbstainPct,
		},
	}
	for i, target := range p.Targets {
		action := ActionView{Target: target.Hex(), Value: "0", Calldata: "0x"}
		if i < len(p.Values) {
			action.Value = bigString(p.Values[i])
		}
		if i < len(p.Calldatas) {
			action.Calldata = hexutil.Encode(p.Calldatas[i])
		}
		view.Actions = append(view.Actions, action)
	}
	return view
}

// NewProposalListView converts a listing into its serialized form
func NewProposalListView(count string, displays []*models.ProposalDisplay, failures []*domain.ProposalReadError) ProposalListView {
	view := ProposalListView{
		Count:     count,
		Proposals: make([]ProposalView, 0, len(displays)),
	}
	for _, d := range displays {
		view.Proposals = append(view.Proposals, NewProposalView(d))
	}
	for _, f := range failures {
		view.Failures = append(view.Failures, FailureView{
			ID:    bigString(f.ProposalID),
			Op:    f.Op,
			Error: f.Err.Error(),
		})
	}
	return view
}

// ProposalsRenderer renders proposal lists and details
type ProposalsRenderer struct {
	out      io.Writer
	decimals uint8
}

// NewProposalsRenderer creates a new proposals renderer. Tallies are shown in
// whole tokens of the given decimals.
func NewProposalsRenderer(out io.Writer, decimals uint8) *ProposalsRenderer {
	return &ProposalsRenderer{
		out:      out,
		decimals: decimals,
	}
}

// RenderList renders proposals as a table followed by any read failures
func (r *ProposalsRenderer) RenderList(displays []*models.ProposalDisplay, failures []*domain.ProposalReadError) error {
	if len(displays) == 0 && len(failures) == 0 {
		fmt.Fprintln(r.out, "No proposals found")
		return nil
	}

	if len(displays) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(r.out)
		t.SetStyle(table.StyleLight)
		t.Style().Options.DrawBorder = false
		t.Style().Options.SeparateColumns = false
		t.Style().Options.SeparateRows = false
		t.Style().Box.PaddingRight = "   "

		t.AppendHeader(table.Row{"ID", "STATE", "TITLE", "FOR", "AGAINST", "ABSTAIN", "REQUESTED", ""})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 3, WidthMax: 48},
			{Number: 4, Align: text.AlignRight},
			{Number: 5, Align: text.AlignRight},
			{Number: 6, Align: text.AlignRight},
			{Number: 7, Align: text.AlignRight},
		})

		for _, d := range displays {
			t.AppendRow(table.Row{
				idStyle.Sprintf("#%s", d.Proposal.ID),
				StateBadge(d.StateLabel, d.StateCategory),
				truncate(d.Title, 48),
				forStyle.Sprintf("%d%%", d.ForPct),
				againstStyle.Sprintf("%d%%", d.AgainstPct),
				abstainStyle.Sprintf("%d%%", d.AbstainPct),
				models.FormatEther(d.Proposal.RequestedValue()) + " ETH",
				voteMarker(d),
			})
		}
		t.Render()
	}

	r.renderFailures(failures)
	return nil
}

func (r *ProposalsRenderer) renderFailures(failures []*domain.ProposalReadError) {
	if len(failures) == 0 {
		return
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%d proposal(s) could not be read:", len(failures))))
	for _, f := range failures {
		fmt.Fprintf(r.out, "  #%s %s: %v\n", bigString(f.ProposalID), f.Op, f.Err)
	}
}

// RenderDetail renders one proposal card
func (r *ProposalsRenderer) RenderDetail(d *models.ProposalDisplay) error {
	p := d.Proposal

	fmt.Fprintf(r.out, "%s %s\n", idStyle.Sprintf("Proposal #%s", p.ID), StateBadge("["+d.StateLabel+"]", d.StateCategory))
	fmt.Fprintln(r.out, headerStyle.Sprint(d.Title))
	fmt.Fprintln(r.out)

	fmt.Fprintf(r.out, "  Proposer:   %s\n", p.Proposer.Hex())
	fmt.Fprintf(r.out, "  Voting:     blocks %s → %s\n", bigString(p.StartBlock), bigString(p.EndBlock))
	fmt.Fprintf(r.out, "  Requested:  %s ETH\n", models.FormatEther(p.RequestedValue()))
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, headerStyle.Sprint("Votes"))
	fmt.Fprintf(r.out, "  %s %s  %s\n", forStyle.Sprint("For:    "), bar(d.ForPct, forStyle), r.tally(p.ForVotes, d.ForPct))
	fmt.Fprintf(r.out, "  %s %s  %s\n", againstStyle.Sprint("Against:"), bar(d.AgainstPct, againstStyle), r.tally(p.AgainstVotes, d.AgainstPct))
	fmt.Fprintf(r.out, "  %s %s  %s\n", abstainStyle.Sprint("Abstain:"), bar(d.AbstainPct, abstainStyle), r.tally(p.AbstainVotes, d.AbstainPct))
	fmt.Fprintf(r.out, "  Total:    %s\n", FormatTokens(d.TotalVotes, r.decimals))
	fmt.Fprintln(r.out)

	if len(p.Targets) > 0 {
		fmt.Fprintln(r.out, headerStyle.Sprint("Actions"))
		for _, a := range NewProposalView(d).Actions {
			fmt.Fprintf(r.out, "  → %s  value %s  data %s\n", a.Target, a.Value, faintStyle.Sprint(truncate(a.Calldata, 42)))
		}
		fmt.Fprintln(r.out)
	}

	if body := strings.TrimSpace(strings.TrimPrefix(p.Description, d.Title)); body != "" {
		fmt.Fprintln(r.out, headerStyle.Sprint("Description"))
		for _, line := range strings.Split(body, "\n") {
			fmt.Fprintf(r.out, "  %s\n", line)
		}
		fmt.Fprintln(r.out)
	}

	switch {
	case d.HasVoted:
		fmt.Fprintln(r.out, votedStyle.Sprint("✓ You have voted on this proposal"))
	case d.IsVotable:
		fmt.Fprintf(r.out, "Vote with: grantdao vote %s <for|against|abstain>\n", p.ID)
	}
	return nil
}

func (r *ProposalsRenderer) tally(v *big.Int, pct int) string {
	return fmt.Sprintf("%3d%%  %s", pct, faintStyle.Sprint(FormatTokens(v, r.decimals)))
}

func voteMarker(d *models.ProposalDisplay) string {
	switch {
	case d.HasVoted:
		return votedStyle.Sprint("✓ voted")
	case d.IsVotable:
		return color.New(color.FgYellow).Sprint("● open")
	default:
		return ""
	}
}

// bar draws a 20-cell percentage bar
func bar(pct int, c *color.Color) string {
	const width = 20
	filled := min(max(pct*width/100, 0), width)
	return c.Sprint(strings.Repeat("█", filled)) + faintStyle.Sprint(strings.Repeat("░", width-filled))
}

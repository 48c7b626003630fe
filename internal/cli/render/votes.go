package render

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var phaseStyles = map[models.SubmissionPhase]*color.Color{
	models.PhasePending:    color.New(color.FgYellow),
	models.PhaseConfirming: color.New(color.FgYellow),
	models.PhaseDone:       color.New(color.FgGreen),
	models.PhaseFailed:     color.New(color.FgRed),
}

// PhaseLabel renders a submission phase as a colored title-case word
func PhaseLabel(phase models.SubmissionPhase) string {
	label := cases.Title(language.English).String(string(phase))
	if c, ok := phaseStyles[phase]; ok {
		return c.Sprint(label)
	}
	return label
}

// VoteHistoryRenderer renders recorded vote submissions
type VoteHistoryRenderer struct {
	out io.Writer
}

// NewVoteHistoryRenderer creates a new vote history renderer
func NewVoteHistoryRenderer(out io.Writer) *VoteHistoryRenderer {
	return &VoteHistoryRenderer{out: out}
}

// Render implements Renderer
func (r *VoteHistoryRenderer) Render(records []*models.VoteRecord) error {
	if len(records) == 0 {
		fmt.Fprintln(r.out, "No votes recorded")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box.PaddingRight = "   "
	t.AppendHeader(table.Row{"PROPOSAL", "VOTE", "STATUS", "TX", "WHEN"})

	for _, rec := range records {
		status := PhaseLabel(rec.Phase)
		if rec.Error != "" {
			status += " " + faintStyle.Sprint(truncate(rec.Error, 40))
		}
		tx := rec.TxHash
		if tx == "" {
			tx = "-"
		} else {
			tx = truncate(tx, 14)
		}
		t.AppendRow(table.Row{
			idStyle.Sprintf("#%s", rec.ProposalID),
			rec.Support.String(),
			status,
			tx,
			humanize.Time(rec.SubmittedAt),
		})
	}
	t.Render()
	return nil
}

// SessionRenderer renders the outcome of a vote submission
type SessionRenderer struct {
	out io.Writer
}

// NewSessionRenderer creates a new session renderer
func NewSessionRenderer(out io.Writer) *SessionRenderer {
	return &SessionRenderer{out: out}
}

// Render implements Renderer
func (r *SessionRenderer) Render(s *models.SubmissionSession) error {
	switch s.Phase {
	case models.PhaseDone:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Voted %s on proposal #%s", s.Support, s.ProposalID)))
	case models.PhaseFailed:
		fmt.Fprintln(r.out, FormatError(fmt.Sprintf("Vote on proposal #%s failed", s.ProposalID)))
	default:
		fmt.Fprintf(r.out, "Vote on proposal #%s: %s\n", s.ProposalID, PhaseLabel(s.Phase))
	}
	if s.Handle != nil {
		fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("Transaction:"), s.Handle.Hex())
	}
	if s.BlockNumber > 0 {
		fmt.Fprintf(r.out, "  %s %d\n", labelStyle.Sprint("Block:      "), s.BlockNumber)
	}
	return nil
}

var (
	_ Renderer[[]*models.VoteRecord]      = (*VoteHistoryRenderer)(nil)
	_ Renderer[*models.SubmissionSession] = (*SessionRenderer)(nil)
)

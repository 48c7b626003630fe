package cli

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/grantdao/grantdao-cli/internal/adapters/progress"
	"github.com/grantdao/grantdao-cli/internal/cli/render"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
	"github.com/grantdao/grantdao-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// proposalSource is the part of ProposalFeed the dashboard reads
type proposalSource interface {
	Refresh(ctx context.Context, force bool) (usecase.FeedSnapshot, error)
	HasVoted(id *big.Int) bool
}

// voteSubmitter is the part of SubmissionTracker the dashboard drives
type voteSubmitter interface {
	CastVote(ctx context.Context, id *big.Int, support models.VoteSupport) (*models.SubmissionSession, error)
	Phase() models.SubmissionPhase
	LastSession() *models.SubmissionSession
	LastError() error
	Reset()
}

type (
	tickMsg     time.Time
	snapshotMsg struct {
		snap usecase.FeedSnapshot
	}
	voteDoneMsg struct {
		session *models.SubmissionSession
		err     error
	}
)

var (
	titleStyle  = color.New(color.FgCyan, color.Bold)
	cursorStyle = color.New(color.FgCyan)
	helpStyle   = color.New(color.FgYellow)
	dimStyle    = color.New(color.Faint)
	errStyle    = color.New(color.FgRed)
	okStyle     = color.New(color.FgGreen)
)

// dashboardModel is the bubbletea model for the live proposal dashboard
type dashboardModel struct {
	ctx      context.Context
	feed     proposalSource
	tracker  voteSubmitter
	interval time.Duration
	header   string

	snap        usecase.FeedSnapshot
	displays    []*models.ProposalDisplay
	cursor      int
	refreshing  bool
	voting      bool
	lastRefresh time.Time
	status      string
	quitting    bool
}

func newDashboardModel(ctx context.Context, feed proposalSource, tracker voteSubmitter, interval time.Duration, header string) dashboardModel {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return dashboardModel{
		ctx:      ctx,
		feed:     feed,
		tracker:  tracker,
		interval: interval,
		header:   header,
	}
}

// Init starts the first load and the clock
func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.refresh(true), tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m dashboardModel) refresh(force bool) tea.Cmd {
	return func() tea.Msg {
		snap, _ := m.feed.Refresh(m.ctx, force)
		return snapshotMsg{snap: snap}
	}
}

func (m dashboardModel) castVote(id *big.Int, support models.VoteSupport) tea.Cmd {
	return func() tea.Msg {
		session, err := m.tracker.CastVote(m.ctx, id, support)
		return voteDoneMsg{session: session, err: err}
	}
}

// Update handles messages and updates the model
func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		cmds := []tea.Cmd{tick()}
		if !m.refreshing && time.Time(msg).Sub(m.lastRefresh) >= m.interval {
			m.refreshing = true
			cmds = append(cmds, m.refresh(false))
		}
		m.rebuild()
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.refreshing = false
		m.lastRefresh = time.Now()
		// The feed already drops overtaken passes; never step back a generation here either
		if msg.snap.Generation >= m.snap.Generation {
			m.snap = msg.snap
		}
		m.rebuild()
		return m, nil

	case voteDoneMsg:
		m.voting = false
		switch {
		case msg.err != nil:
			m.status = errStyle.Sprintf("Vote failed: %v", msg.err)
		case msg.session != nil:
			m.status = okStyle.Sprintf("Voted %s on #%s in block %d", msg.session.Support, msg.session.ProposalID, msg.session.BlockNumber)
		}
		m.rebuild()
		m.refreshing = true
		return m, m.refresh(true)
	}

	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.displays)-1 {
			m.cursor++
		}
	case "r":
		m.refreshing = true
		return m, m.refresh(true)
	case "c":
		if !m.tracker.Phase().InFlight() {
			m.tracker.Reset()
			m.status = ""
			m.rebuild()
		}
	case "f", "a", "x":
		return m.startVote(map[string]models.VoteSupport{
			"f": models.SupportFor,
			"a": models.SupportAgainst,
			"x": models.SupportAbstain,
		}[msg.String()])
	}
	return m, nil
}

func (m dashboardModel) startVote(support models.VoteSupport) (tea.Model, tea.Cmd) {
	d := m.selected()
	if d == nil {
		return m, nil
	}
	if d.ActionsDisabled {
		m.status = helpStyle.Sprint("A vote is already being submitted")
		return m, nil
	}
	if !d.IsVotable {
		m.status = helpStyle.Sprintf("Proposal #%s is not open for your vote", d.Proposal.ID)
		return m, nil
	}

	m.voting = true
	m.status = fmt.Sprintf("Submitting %s vote on #%s…", support, d.Proposal.ID)
	m.rebuild()
	return m, m.castVote(d.Proposal.ID, support)
}

func (m *dashboardModel) selected() *models.ProposalDisplay {
	if m.cursor < 0 || m.cursor >= len(m.displays) {
		return nil
	}
	return m.displays[m.cursor]
}

// rebuild re-derives display models from the snapshot and the tracker
func (m *dashboardModel) rebuild() {
	phase := m.tracker.Phase()
	if m.voting && !phase.InFlight() {
		// The submission was started but the tracker has not taken the slot yet
		phase = models.PhasePending
	}
	displays := make([]*models.ProposalDisplay, 0, len(m.snap.Proposals))
	for _, p := range m.snap.Proposals {
		displays = append(displays, usecase.PresentProposal(p, phase, m.feed.HasVoted(p.ID)))
	}
	m.displays = displays
	if m.cursor >= len(m.displays) {
		m.cursor = max(len(m.displays)-1, 0)
	}
}

// View renders the UI
func (m dashboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Sprint("GrantDAO proposals"))
	if m.header != "" {
		b.WriteString("  " + dimStyle.Sprint(m.header))
	}
	b.WriteString("\n\n")

	switch {
	case !m.snap.Loaded:
		b.WriteString("Loading proposals…\n")
	case m.snap.Err != nil:
		b.WriteString(errStyle.Sprintf("Failed to load proposals: %v\n", m.snap.Err))
	case len(m.displays) == 0:
		b.WriteString("No proposals yet\n")
	default:
		m.writeList(&b)
	}

	if n := len(m.snap.Failures); n > 0 {
		b.WriteString(helpStyle.Sprintf("\n%d proposal(s) could not be read\n", n))
	}

	b.WriteString("\n")
	if phase := m.tracker.Phase(); phase != models.PhaseIdle {
		b.WriteString(fmt.Sprintf("Vote: %s\n", render.PhaseLabel(phase)))
	}
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	if m.refreshing {
		b.WriteString(dimStyle.Sprint("refreshing…\n"))
	}
	b.WriteString(helpStyle.Sprint("↑/↓: move  f/a/x: vote for/against/abstain  r: refresh  c: clear  q: quit\n"))
	return b.String()
}

func (m dashboardModel) writeList(b *strings.Builder) {
	for i, d := range m.displays {
		cursor := " "
		if i == m.cursor {
			cursor = cursorStyle.Sprint("▸")
		}
		marker := " "
		switch {
		case d.HasVoted:
			marker = okStyle.Sprint("✓")
		case d.IsVotable:
			marker = helpStyle.Sprint("●")
		}
		title := d.Title
		if r := []rune(title); len(r) > 40 {
			title = string(r[:39]) + "…"
		}
		fmt.Fprintf(b, "%s %s #%-4s %-10s %-40s  for %3d%%  against %3d%%  abstain %3d%%\n",
			cursor, marker, d.Proposal.ID, render.StateBadge(d.StateLabel, d.StateCategory), title,
			d.ForPct, d.AgainstPct, d.AbstainPct)
	}
}

// NewDashboardCmd creates the dashboard command
func NewDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Live view of proposals with in-place voting",
		Long: `Open a terminal dashboard that keeps the proposal list current and lets
you vote on the selected proposal. The list reloads when the proposal count
changes, after each vote and on 'r'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			if a.Config.NonInteractive || a.Config.JSON {
				return fmt.Errorf("dashboard needs an interactive terminal")
			}

			header := a.Config.Network.Name
			if voter, ok := a.Tracker.Account(); ok {
				header += " · " + voter.Hex()
			} else {
				header += " · read-only"
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			// The feed reports its own progress through the view
			a.ListProposals.SetSink(progress.NewNopSink())

			model := newDashboardModel(ctx, a.ProposalFeed, a.Tracker, a.Config.RefreshInterval, header)
			if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("dashboard failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Duration("refresh", 0, "How often to check for new proposals (default settings.refresh_interval)")
	return cmd
}

package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/grantdao/grantdao-cli/internal/usecase"
)

// stageLabels names the stages shown in the spinner trail, in display order
var stageLabels = map[string]string{
	"loading":    "Loading",
	"reading":    "Reading",
	"submitting": "Submitting",
	"confirming": "Confirming",
	"complete":   "Done",
}

// SpinnerProgressReporter implements progress reporting with a spinner
type SpinnerProgressReporter struct {
	mu             sync.Mutex
	spinner        *spinner.Spinner
	out            io.Writer
	stages         []stageInfo
	currentStage   string
	stageStartTime time.Time
}

type stageInfo struct {
	Stage     string
	StartTime time.Time
	EndTime   time.Time
	Status    string
	Message   string
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter on stderr
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	return newSpinnerProgressReporter(os.Stderr)
}

func newSpinnerProgressReporter(out io.Writer) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     out,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(_ context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.Stage != "" && event.Stage != r.currentStage {
		r.enterStage(event.Stage)
	}
	if len(r.stages) > 0 {
		r.stages[len(r.stages)-1].Message = event.Message
	}

	if !event.Spinner {
		if r.spinner.Active() {
			r.spinner.Stop()
		}
		return
	}
	if !r.spinner.Active() {
		r.spinner.Start()
	}
	r.spinner.Suffix = " " + r.display(event)
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.printPaused(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.printPaused(color.New(color.FgRed), message)
}

func (r *SpinnerProgressReporter) printPaused(c *color.Color, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	_, _ = c.Fprintln(r.out, message)

	if wasActive {
		r.spinner.Start()
	}
}

func (r *SpinnerProgressReporter) enterStage(stage string) {
	now := time.Now()
	if len(r.stages) > 0 {
		idx := len(r.stages) - 1
		r.stages[idx].EndTime = now
		r.stages[idx].Status = "completed"
	}

	r.currentStage = stage
	r.stageStartTime = now
	r.stages = append(r.stages, stageInfo{
		Stage:     stage,
		StartTime: now,
		Status:    "running",
	})
}

// display renders the stage trail followed by the current message and counter
func (r *SpinnerProgressReporter) display(event usecase.ProgressEvent) string {
	var display string
	for _, stage := range r.stages {
		label, ok := stageLabels[stage.Stage]
		if !ok {
			continue
		}

		var icon string
		var stageColor *color.Color
		switch stage.Status {
		case "completed":
			icon = "✓"
			stageColor = color.New(color.FgGreen)
		case "running":
			icon = "●"
			stageColor = color.New(color.FgYellow)
		default:
			icon = "○"
			stageColor = color.New(color.FgWhite)
		}

		duration := ""
		if !stage.EndTime.IsZero() {
			duration = fmt.Sprintf(" (%s)", stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond))
		}

		if display != "" {
			display += " → "
		}
		display += fmt.Sprintf("%s %s%s", icon, stageColor.Sprint(label), duration)
	}

	if event.Message != "" {
		display += "  " + event.Message
	}
	if event.Total > 0 && event.Current > 0 {
		display += fmt.Sprintf(" [%d/%d]", event.Current, event.Total)
	}
	return display
}

// Stop halts the spinner if it is still running
func (r *SpinnerProgressReporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)

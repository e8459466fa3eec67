package progress

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/trebuchet-org/orbit-deploy/internal/usecase"
)

var (
	phaseStyle = color.New(color.Bold, color.FgHiWhite)
	okStyle    = color.New(color.FgGreen)
	errStyle   = color.New(color.FgRed)
	infoStyle  = color.New(color.Faint)
)

// DeploySink renders phase progress on stderr, spinning while a transaction
// waits for confirmation.
type DeploySink struct {
	spinner *spinner.Spinner
}

// NewDeploySink creates the interactive progress sink.
func NewDeploySink() *DeploySink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.HideCursor = false
	return &DeploySink{spinner: s}
}

// OnProgress renders one progress event.
func (r *DeploySink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		r.spinner.Suffix = fmt.Sprintf(" [%s] %s", event.Phase, event.Message)
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}

	if r.spinner.Active() {
		r.spinner.Stop()
	}

	switch event.Stage {
	case usecase.StageConfirmed, usecase.StageContracts:
		fmt.Fprintf(os.Stderr, "%s %s\n", okStyle.Sprint("✓"), event.Message)
	default:
		fmt.Fprintf(os.Stderr, "%s %s\n", phaseStyle.Sprintf("[%s]", event.Phase), event.Message)
	}
}

// Info prints an informational line.
func (r *DeploySink) Info(message string) {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
	fmt.Fprintln(os.Stderr, infoStyle.Sprint(message))
}

// Error prints an error line.
func (r *DeploySink) Error(message string) {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", errStyle.Sprint("✗"), message)
}

var _ usecase.ProgressSink = (*DeploySink)(nil)

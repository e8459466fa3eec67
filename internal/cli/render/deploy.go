package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/trebuchet-org/orbit-deploy/internal/domain"
	"github.com/trebuchet-org/orbit-deploy/internal/domain/config"
)

var (
	headerStyle  = color.New(color.Bold, color.FgHiWhite)
	okStyle      = color.New(color.FgGreen)
	failStyle    = color.New(color.FgRed)
	skippedStyle = color.New(color.FgYellow)
	faintStyle   = color.New(color.Faint)
)

// DeployRenderer renders the outcome of a deployment run and optionally
// writes the machine-readable result artifact.
type DeployRenderer struct {
	out        io.Writer
	outputPath string
}

// NewDeployRenderer creates a renderer writing to stdout.
func NewDeployRenderer(cfg *config.RuntimeConfig) *DeployRenderer {
	return &DeployRenderer{
		out:        os.Stdout,
		outputPath: cfg.OutputPath,
	}
}

// Render prints the run summary: phase outcomes, then the deployed core
// contract addresses when the deployment phase produced any.
func (r *DeployRenderer) Render(result *domain.DeploymentResult) error {
	fmt.Fprintln(r.out)
	headerStyle.Fprintf(r.out, "Chain %d (owner %s)\n", result.ChainID, result.Owner)

	for _, phase := range result.Phases {
		switch phase.Status {
		case domain.PhaseSucceeded:
			fmt.Fprintf(r.out, "  %s %-10s tx %s\n", okStyle.Sprint("✓"), phase.Phase, phase.TxHash)
		case domain.PhaseFailed:
			fmt.Fprintf(r.out, "  %s %-10s %v\n", failStyle.Sprint("✗"), phase.Phase, phase.Err)
		case domain.PhaseSkipped:
			reason := "not configured"
			if phase.Err != nil {
				reason = phase.Err.Error()
			}
			fmt.Fprintf(r.out, "  %s %-10s skipped (%s)\n", skippedStyle.Sprint("-"), phase.Phase, reason)
		}
	}

	if result.Contracts != nil {
		fmt.Fprintln(r.out)
		r.renderContracts(result.Contracts)
	}

	if r.outputPath != "" {
		if err := r.writeArtifact(result); err != nil {
			return err
		}
		fmt.Fprintln(r.out, faintStyle.Sprintf("Result written to %s", r.outputPath))
	}

	return nil
}

func (r *DeployRenderer) renderContracts(contracts *domain.CoreContracts) {
	rows := []struct {
		name string
		addr fmt.Stringer
	}{
		{"Rollup", contracts.Rollup},
		{"Inbox", contracts.Inbox},
		{"Outbox", contracts.Outbox},
		{"Bridge", contracts.Bridge},
		{"SequencerInbox", contracts.SequencerInbox},
		{"RollupEventInbox", contracts.RollupEventInbox},
		{"ChallengeManager", contracts.ChallengeManager},
		{"AdminProxy", contracts.AdminProxy},
		{"UpgradeExecutor", contracts.UpgradeExecutor},
		{"ValidatorWalletCreator", contracts.ValidatorWalletCreator},
		{"NativeToken", contracts.NativeToken},
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Contract", "Address"})
	t.AppendRows(lo.Map(rows, func(row struct {
		name string
		addr fmt.Stringer
	}, _ int) table.Row {
		return table.Row{row.name, row.addr.String()}
	}))
	t.Render()
}

func (r *DeployRenderer) writeArtifact(result *domain.DeploymentResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result artifact: %w", err)
	}
	if err := os.WriteFile(r.outputPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing result artifact: %w", err)
	}
	return nil
}

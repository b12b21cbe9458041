package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/tinyforest/internal/config"
	"github.com/rshade/tinyforest/internal/tui"
)

// NewDashboardCmd creates the "dashboard" subcommand.
//
// The dashboard needs a terminal on stdin and stdout. Otherwise, or with
// --plain, it prints the static estimate table for the same inputs.
func NewDashboardCmd() *cobra.Command {
	var (
		params EstimateParams
		plain  bool
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Explore the estimate interactively",
		Long: `Open an interactive dashboard with a number field and slider for each input.
Results update as soon as an input changes.

Keys: up/down or k/j select an input, left/right or h/l move its slider,
enter edits the number, m shows the methodology, r resets, q quits.`,
		Example: `  # Start from the configured inputs
  tinyforest dashboard

  # Start from a different tree
  tinyforest dashboard --diameter 20 --age 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode := tui.DetectOutputMode(os.Stdin, os.Stdout)
			if plain || mode != tui.OutputModeInteractive {
				logger.Debug().Ctx(cmd.Context()).
					Stringer("output_mode", mode).
					Bool("plain", plain).
					Msg("dashboard unavailable, rendering static estimate")
				return executeEstimateWithFormat(cmd, params, config.OutputTable)
			}
			return runDashboard(cmd, params)
		},
	}

	addInputFlags(cmd, &params)
	cmd.Flags().BoolVar(&plain, "plain", false, "print the static estimate instead of the interactive dashboard")

	return cmd
}

// runDashboard starts the Bubble Tea program.
func runDashboard(cmd *cobra.Command, params EstimateParams) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	inputs := resolveInputs(cmd, cfg, params)
	if err := config.ValidateInputs(inputs); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	assumptions, err := cfg.Assumptions.ToAssumptions()
	if err != nil {
		return fmt.Errorf("invalid assumptions: %w", err)
	}

	model := tui.NewDashboardModel(ctx, tui.DashboardOptions{
		Inputs:            inputs,
		Assumptions:       assumptions,
		ShowEquivalencies: cfg.Output.ShowEquivalencies,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

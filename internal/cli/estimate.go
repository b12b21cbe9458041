package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/tinyforest/internal/config"
	"github.com/rshade/tinyforest/internal/forest"
	"github.com/rshade/tinyforest/internal/tui"
)

// zeroAgeMessage is shown when the tree age is zero.
const zeroAgeMessage = "please enter a non-zero age for the tree"

// EstimateParams holds the parameters for the estimate command execution.
// Exported for testing.
type EstimateParams struct {
	DiameterCm float64
	HeightM    float64
	AgeYears   float64
	Forests    int
	Employees  int
	Output     string
	Explain    bool
}

// Flag names shared by estimate and dashboard.
const (
	flagDiameter  = "diameter"
	flagHeight    = "height"
	flagAge       = "age"
	flagForests   = "forests"
	flagEmployees = "employees"
	flagOutput    = "output"
)

// NewEstimateCmd creates the "estimate" subcommand.
//
// Inputs default to the configured values and are validated against the
// dashboard bounds. A tree age of zero fails with forest.ErrInvalidAge.
func NewEstimateCmd() *cobra.Command {
	var params EstimateParams

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate annual CO2 capture against employee emissions",
		Long: `Estimate the CO2 captured each year by a number of tiny forests and compare it
with the emissions of an organisation's employees.

Unset flags take their value from the inputs section of the configuration.`,
		Example: `  # Default inputs
  tinyforest estimate

  # Custom tree and organisation
  tinyforest estimate --diameter 25 --height 12.5 --age 8 --forests 20 --employees 300

  # Machine-readable output with the intermediate steps
  tinyforest estimate --output json --explain`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeEstimate(cmd, params)
		},
	}

	addInputFlags(cmd, &params)
	cmd.Flags().StringVarP(&params.Output, flagOutput, "o", config.OutputTable, "Output format (table, json, yaml)")
	cmd.Flags().BoolVar(&params.Explain, "explain", false, "include every intermediate step of the capture estimate")

	return cmd
}

// addInputFlags registers the five input flags with their built-in defaults.
func addInputFlags(cmd *cobra.Command, params *EstimateParams) {
	b := config.BoundFor
	cmd.Flags().Float64Var(&params.DiameterCm, flagDiameter, b(config.InputDiameter).Default,
		"trunk diameter of the representative tree in centimetres (0-100)")
	cmd.Flags().Float64Var(&params.HeightM, flagHeight, b(config.InputHeight).Default,
		"height of the representative tree in metres (0-50)")
	cmd.Flags().Float64Var(&params.AgeYears, flagAge, b(config.InputAge).Default,
		"age of the representative tree in years (0-100, must be non-zero)")
	cmd.Flags().IntVar(&params.Forests, flagForests, int(b(config.InputForests).Default),
		"number of tiny forests of 600 trees each (0-1000)")
	cmd.Flags().IntVar(&params.Employees, flagEmployees, int(b(config.InputEmployees).Default),
		"number of employees (0-1000)")
}

// resolveInputs starts from the configured inputs and applies the flags the
// user set explicitly.
func resolveInputs(cmd *cobra.Command, cfg *config.Config, params EstimateParams) config.InputsConfig {
	in := cfg.Inputs
	flags := cmd.Flags()
	if flags.Changed(flagDiameter) {
		in.DiameterCm = params.DiameterCm
	}
	if flags.Changed(flagHeight) {
		in.HeightM = params.HeightM
	}
	if flags.Changed(flagAge) {
		in.AgeYears = params.AgeYears
	}
	if flags.Changed(flagForests) {
		in.ForestCount = params.Forests
	}
	if flags.Changed(flagEmployees) {
		in.EmployeeCount = params.Employees
	}
	return in
}

// ValidateOutputFormat checks that format is table, json or yaml.
// Exported for testing.
func ValidateOutputFormat(format string) error {
	if err := config.Validator().Var(format, "oneof=table json yaml"); err != nil {
		return fmt.Errorf("unsupported output format %q (want table, json or yaml)", format)
	}
	return nil
}

// executeEstimate runs the estimate command. The output format comes from
// --output when given and from the configuration otherwise.
func executeEstimate(cmd *cobra.Command, params EstimateParams) error {
	output := params.Output
	if !cmd.Flags().Changed(flagOutput) {
		output = config.GetGlobalConfig().Output.DefaultFormat
	}
	return executeEstimateWithFormat(cmd, params, output)
}

// executeEstimateWithFormat computes the estimate and renders it as output.
func executeEstimateWithFormat(cmd *cobra.Command, params EstimateParams, output string) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	if err := ValidateOutputFormat(output); err != nil {
		return err
	}

	inputs := resolveInputs(cmd, cfg, params)
	if err := config.ValidateInputs(inputs); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	assumptions, err := cfg.Assumptions.ToAssumptions()
	if err != nil {
		return fmt.Errorf("invalid assumptions: %w", err)
	}

	result, err := forest.Estimate(inputs.ToInputs(), assumptions)
	if err != nil {
		if errors.Is(err, forest.ErrInvalidAge) {
			return fmt.Errorf("%s: %w", zeroAgeMessage, err)
		}
		return fmt.Errorf("estimating capture: %w", err)
	}

	logger.Debug().Ctx(ctx).
		Interface("inputs", inputs).
		Float64("captured_kg_per_year", result.CapturedKgPerYear).
		Float64("emissions_kg_per_year", result.EmissionsKgPerYear).
		Bool("ratio_defined", result.Ratio.Defined).
		Msg("estimate complete")

	report := newEstimateReport(inputs.ToInputs(), assumptions, result, reportOptions{
		explain:           params.Explain,
		showEquivalencies: cfg.Output.ShowEquivalencies,
	})
	return renderReport(cmd.OutOrStdout(), output, report)
}

// renderReport writes the report in the requested format.
func renderReport(w io.Writer, format string, report EstimateReport) error {
	switch format {
	case config.OutputJSON:
		return renderReportJSON(w, report)
	case config.OutputYAML:
		return renderReportYAML(w, report)
	default:
		return renderReportTable(w, report, writerWidth(w))
	}
}

// writerWidth returns the terminal width when w is a terminal.
func writerWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return tui.TerminalWidth(nil)
	}
	return tui.TerminalWidth(f)
}

package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/tinyforest/internal/config"
	"github.com/rshade/tinyforest/internal/logging"
)

// annotationConfigOptional marks commands that still run when the
// configuration file cannot be loaded, so a broken file can be inspected
// or replaced.
const annotationConfigOptional = "config-optional"

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the tinyforest CLI.
// It loads configuration, wires up logging and tracing, and registers the
// estimate, dashboard, methodology and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:   "tinyforest",
		Short: "Estimate the CO2 captured by tiny forests",
		Long: `tinyforest estimates how much CO2 a number of tiny forests capture each year
and compares it with the emissions of an organisation's employees.`,
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult, nil)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "configuration overlay file merged over ~/.tinyforest/config.yaml")
	cmd.AddCommand(NewEstimateCmd(), NewDashboardCmd(), NewMethodologyCmd(), newConfigCmd())
	cleanupOnError(cmd, &logResult)

	return cmd
}

// cleanupOnError wraps the RunE of cmd and its subcommands so that a failing
// command still closes the log file. Cobra skips PersistentPostRunE when
// RunE returns an error.
func cleanupOnError(cmd *cobra.Command, logResult **logging.LogPathResult) {
	for _, sub := range cmd.Commands() {
		cleanupOnError(sub, logResult)
	}
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		err := run(c, args)
		if err != nil {
			_ = cleanupLogging(c, *logResult, err)
		}
		return err
	}
}

const rootCmdExample = `  # Estimate with the default inputs
  tinyforest estimate

  # Twenty forests of 25 cm, 12 m, 8 year old trees for 300 employees
  tinyforest estimate --diameter 25 --height 12 --age 8 --forests 20 --employees 300

  # Show every intermediate step as JSON
  tinyforest estimate --explain --output json

  # Explore interactively
  tinyforest dashboard

  # Create ~/.tinyforest/config.yaml
  tinyforest config init`

// loadConfig reads the configuration and installs it as the global config.
func loadConfig(cmd *cobra.Command) error {
	overlay, _ := cmd.Flags().GetString("config")

	cfg, err := config.LoadWithOverlay(overlay)
	if err != nil {
		if !isConfigOptional(cmd) {
			return fmt.Errorf("loading configuration: %w", err)
		}
		cmd.PrintErrf("Warning: %v; using defaults\n", err)
		cfg = config.Default()
	}
	config.SetGlobalConfig(cfg)
	return nil
}

func isConfigOptional(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotationConfigOptional]; ok {
			return true
		}
	}
	return false
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/tinyforest/internal/config"
	"github.com/rshade/tinyforest/internal/greenops"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates ~/.tinyforest/config.yaml, any --config overlay and TINYFOREST_*
environment variables.

This includes:
- YAML syntax
- Schema version compatibility
- Input values within the dashboard bounds
- Carbon units and output formats`,
		Example: `  # Validate current configuration
  tinyforest config validate

  # Validate an overlay file on top of it
  tinyforest config validate --config ./team.yaml --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	overlay, _ := cmd.Flags().GetString("config")

	cfg, err := config.LoadWithOverlay(overlay)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg, overlay)
	}
	return nil
}

func printVerboseDetails(cmd *cobra.Command, cfg *config.Config, overlay string) {
	path, _ := config.Path()
	cmd.Printf("\nConfiguration file: %s\n", path)
	if overlay != "" {
		cmd.Printf("Overlay file: %s\n", overlay)
	}
	cmd.Printf("Schema version: %s\n", cfg.SchemaVersion)

	perCapita := cfg.Assumptions.EmissionsPerCapita
	cmd.Printf("Trees per forest: %d\n", cfg.Assumptions.TreesPerForest)
	if eq, err := greenops.CalculateQuantity(perCapita); err == nil && !eq.IsEmpty {
		cmd.Printf("Emissions per employee: %g kg CO2e/year %s\n", eq.InputKg, eq.CompactText)
	} else {
		cmd.Printf("Emissions per employee: %g %s/year\n", perCapita.Value, perCapita.Unit)
	}
	cmd.Printf("Default output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("Log level: %s\n", cfg.Logging.Level)
}

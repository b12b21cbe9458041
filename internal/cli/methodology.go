package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/tinyforest/internal/methodology"
)

// NewMethodologyCmd creates the "methodology" subcommand, which prints the
// calculation methodology document verbatim.
func NewMethodologyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methodology",
		Short: "Show how the estimate is calculated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), methodology.Document())
			return err
		},
	}
}

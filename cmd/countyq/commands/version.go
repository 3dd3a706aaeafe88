package commands

import (
	"github.com/spf13/cobra"

	"github.com/satishbabariya/countyq/internal/version"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Display build and runtime information for the countyq CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return version.Current().Write(cmd.OutOrStdout())
		},
	}
}

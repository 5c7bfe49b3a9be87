package commands

import (
	"fmt"
	"runtime"

	"github.com/leapstack-labs/datatypes/pkg/datatype"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the datatypes version, the Go version it was built with and the registered backends.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "datatypes v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Built with %s, backends: %v\n", runtime.Version(), datatype.List())
		},
	}
}

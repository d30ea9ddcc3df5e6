package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the dashboard command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "dashboard",
		Short:        "Doctor dashboard API server",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config-dir", ".", "directory containing config.yaml")

	root.AddCommand(newServeCommand())
	root.AddCommand(newExportCommand())
	return root
}

package commands

import (
	"github.com/emberworks/kindling"
	"github.com/emberworks/kindling/internal/output"
	"github.com/spf13/cobra"
)

// RootCmd creates the root command for the kindling CLI.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "kindling",
		Short: "Template-driven project scaffolding",
		Long: `Kindling turns a name and a generator type into ready-to-edit files.

• Scaffold components, services, models or whole projects
• Register your own templates as YAML manifests
• Review diffs before overwriting anything`,
		Version: kindling.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}

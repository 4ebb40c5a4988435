package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/emberworks/kindling/internal/casing"
	"github.com/emberworks/kindling/internal/config"
	"github.com/emberworks/kindling/internal/engine"
	"github.com/emberworks/kindling/internal/output"
	"github.com/spf13/cobra"
)

// NewCmd creates the 'new' command: a project-type generate into a fresh
// directory named after the project.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Create a new project skeleton",
		Long: `Creates a new project directory with:
• A README and entry point
• A kindling.yml for custom templates

Example:
  kindling new MyApp`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			name := args[0]
			dir := casing.Kebab(name)

			if _, err := os.Stat(dir); err == nil {
				output.Error(fmt.Sprintf("directory %s already exists", dir))
				os.Exit(1)
			}

			reg, err := buildRegistry(config.Defaults())
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			eng := engine.New(reg, engine.WithOutput(cmd.OutOrStdout()))
			rep, err := eng.Run(context.Background(), engine.Request{
				Type:      "project",
				RawName:   name,
				OutputDir: dir,
			})
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			if !rep.OK() {
				fmt.Fprint(cmd.OutOrStdout(), "\n"+rep.Summary())
				os.Exit(1)
			}

			output.Success(fmt.Sprintf("Created project: %s", dir))
			output.Info("Next steps:")
			output.Step(fmt.Sprintf("cd %s", dir))
			output.Step("kindling generate model Example")
		},
	}

	return cmd
}

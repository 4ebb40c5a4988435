package commands

import (
	"fmt"
	"os"

	"github.com/emberworks/kindling/internal/config"
	"github.com/emberworks/kindling/internal/output"
	"github.com/spf13/cobra"
)

// ListCmd creates the 'list' command showing registered generator types.
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered generator types",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(".")
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			reg, err := buildRegistry(cfg)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			output.Info("Registered generator types:")
			for _, name := range reg.Types() {
				def, err := reg.Resolve(name)
				if err != nil {
					continue
				}
				files := "file"
				if len(def.Files) != 1 {
					files = "files"
				}
				output.Step(fmt.Sprintf("%-12s %d %s", name, len(def.Files), files))
			}
		},
	}
}

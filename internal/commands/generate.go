package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/emberworks/kindling/internal/config"
	"github.com/emberworks/kindling/internal/conflict"
	"github.com/emberworks/kindling/internal/engine"
	"github.com/emberworks/kindling/internal/output"
	"github.com/emberworks/kindling/internal/prompt"
	"github.com/spf13/cobra"
)

// GenerateCmd creates the 'generate' command.
func GenerateCmd() *cobra.Command {
	var force, skip, diff, dryRun, yes bool
	var outDir string

	cmd := &cobra.Command{
		Use:   "generate [type] [name]",
		Short: "Generate files from a registered template",
		Long: `Generate files from a registered template type.

Built-in types:
  component  - UI component plus test file
  service    - Service layer plus test file
  model      - Domain entity
  project    - Fresh project skeleton

Custom types come from YAML manifests in the templates directory
(templates.dir in kindling.yml, default .kindling/templates).

Missing arguments are prompted for when running in a terminal.

Examples:
  kindling generate model UserAccount
  kindling generate component Button --out web/src
  kindling generate service Billing --dry-run
  kindling generate model UserAccount --diff`,
		Args: cobra.MaximumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			req := engine.Request{
				OutputDir: outDir,
				Force:     force,
				DryRun:    dryRun,
			}
			if len(args) > 0 {
				req.Type = args[0]
			}
			if len(args) > 1 {
				req.RawName = args[1]
			}

			cfg, err := config.Load(".")
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			if req.OutputDir == "" {
				req.OutputDir = cfg.OutputDir
			}

			reg, err := buildRegistry(cfg)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			interactive := !yes && prompt.Interactive()
			if diff && !interactive {
				output.Error("--diff needs a terminal to review the diff")
				os.Exit(1)
			}

			opts := []engine.Option{engine.WithOutput(cmd.OutOrStdout())}
			if interactive {
				opts = append(opts, engine.WithCollector(prompt.NewCollector(prompt.NewTerminal())))
			}

			// Without a resolver the engine fails collisions outright, which
			// is the safe default for scripted runs. --skip works without a
			// terminal, so it always gets one.
			if interactive || skip {
				resolver, err := conflict.NewResolver(force, skip, diff)
				if err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				opts = append(opts, engine.WithResolver(resolver))
			}

			eng := engine.New(reg, opts...)

			output.Verbose(fmt.Sprintf("Generating %s: %s (dry-run=%v, force=%v)", req.Type, req.RawName, dryRun, force))

			rep, err := eng.Run(context.Background(), req)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			fmt.Fprint(cmd.OutOrStdout(), "\n"+rep.Summary())

			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), "Dry-run complete. Run without --dry-run to create files.")
			}
			if !rep.OK() {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: output.dir from kindling.yml, else current directory)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files without asking")
	cmd.Flags().BoolVar(&skip, "skip", false, "Skip existing files without asking")
	cmd.Flags().BoolVar(&diff, "diff", false, "Show a diff before deciding on conflicts")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report intended actions without writing files")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Never prompt; fail on missing input or collisions")

	return cmd
}

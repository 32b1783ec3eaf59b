package cli

import (
	"github.com/spf13/cobra"

	"bootplan/internal/app"
)

func newPlanCmd(global *globalOptions) *cobra.Command {
	var (
		format    string
		stageView bool
		down      bool
		targets   []string
	)

	cmd := &cobra.Command{
		Use:   "plan [PATH...]",
		Short: "Compute and render the startup plan",
		Long: `Compute a deterministic startup order for the services declared in the
given manifest files or directory trees (default: the current directory).

Examples:
  bootplan plan                        # plan the manifests under .
  bootplan plan deploy/ --format table # render as a table
  bootplan plan --target api           # only api and what it needs
  bootplan plan --down                 # shutdown order
  bootplan plan --stages               # parallel-safe waves`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := global.newApp()
			if err != nil {
				return err
			}
			return a.Plan(cmd.Context(), app.PlanOptions{
				Paths:     args,
				Format:    format,
				StageView: stageView,
				Down:      down,
				Targets:   targets,
			}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format. Options: 'text', 'table', 'json', 'dot', 'script'.")
	cmd.Flags().BoolVar(&stageView, "stages", false, "Render the plan as parallel-safe stages.")
	cmd.Flags().BoolVar(&down, "down", false, "Render the shutdown order (reverse of startup).")
	cmd.Flags().StringArrayVar(&targets, "target", nil, "Plan only this service and its transitive dependencies. Repeatable.")

	return cmd
}

package cli

import (
	"github.com/spf13/cobra"
)

func newWindowsCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "windows [PATH...]",
		Short: "Show the merged fleet-wide maintenance windows",
		Long: `Collect every service's declared maintenance windows, coalesce the
overlapping ranges, and print the fleet-wide quiet periods one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := global.newApp()
			if err != nil {
				return err
			}
			return a.Windows(cmd.Context(), args, cmd.OutOrStdout())
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"
)

func newDiffCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Report drift between two manifest trees",
		Long: `Compare two manifest files or directory trees and print one line per
detected change. Follows the diff(1) exit-code contract: 0 when the
manifests match, 1 on drift, 2 when either side fails to load.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := global.newApp()
			if err != nil {
				return err
			}
			drifted, err := a.Diff(cmd.Context(), args[0], args[1], cmd.OutOrStdout())
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			if drifted {
				return &ExitError{Code: 1}
			}
			return nil
		},
	}
}

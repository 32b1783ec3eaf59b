package cli

import (
	"github.com/spf13/cobra"
)

func newValidateCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [PATH...]",
		Short: "Validate manifests and run lint rules",
		Long: `Load the given manifests, run structural validation (duplicate names,
unknown dependencies, self-references) and the lint rule set, and print
one line per finding. Exits 1 when error-level findings exist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := global.newApp()
			if err != nil {
				return err
			}
			clean, err := a.Validate(cmd.Context(), args, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !clean {
				return &ExitError{Code: 1}
			}
			return nil
		},
	}
}

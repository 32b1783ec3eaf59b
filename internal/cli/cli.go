package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bootplan/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// globalOptions holds the flags shared by every command.
type globalOptions struct {
	logLevel  string
	logFormat string
	logW      io.Writer
}

// newApp validates the global flags and wires an App whose log output
// goes to stderr, keeping stdout clean for rendered plans.
func (g *globalOptions) newApp() (*app.App, error) {
	level := strings.ToLower(g.logLevel)
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return nil, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	format := strings.ToLower(g.logFormat)
	if format != "text" && format != "json" {
		return nil, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	return app.New(g.logW, level, format), nil
}

// NewRootCmd builds the bootplan command tree. Rendered output goes to
// outW, logs and usage errors to errW.
func NewRootCmd(version string, outW, errW io.Writer) *cobra.Command {
	global := &globalOptions{logW: errW}

	root := &cobra.Command{
		Use:   "bootplan",
		Short: "Deterministic startup planning for service fleets",
		Long: `bootplan reads service dependency manifests (HCL or YAML), resolves a
deterministic startup order via topological sorting, and renders the
resulting plan for operators or automation.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(errW)

	root.PersistentFlags().StringVar(&global.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	root.PersistentFlags().StringVar(&global.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	root.AddCommand(
		newPlanCmd(global),
		newValidateCmd(global),
		newDiffCmd(global),
		newWindowsCmd(global),
	)

	return root
}

package app

import (
	"context"
	"fmt"
	"io"

	"bootplan/internal/config"
	"bootplan/internal/lint"
)

// Validate loads the manifests, runs structural validation plus the lint
// rules, and writes one line per finding to outW. It returns true when
// the manifest is clean; a non-nil error means loading itself failed.
func (a *App) Validate(ctx context.Context, paths []string, outW io.Writer) (bool, error) {
	manifest, err := a.loadManifest(ctx, paths)
	if err != nil {
		return false, err
	}

	clean := true

	if err := config.Validate(manifest); err != nil {
		clean = false
		for _, problem := range flatten(err) {
			fmt.Fprintf(outW, "error: %s\n", problem)
		}
	}

	for _, issue := range lint.Run(manifest) {
		if issue.Severity == lint.SeverityError {
			clean = false
		}
		fmt.Fprintln(outW, issue)
	}

	if clean {
		fmt.Fprintf(outW, "ok: %d services validated\n", len(manifest.Services))
	}
	a.logger.Info("Validation finished.", "clean", clean)
	return clean, nil
}

// flatten unwraps an errors.Join result into its component messages.
func flatten(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}

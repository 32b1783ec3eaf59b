package app

import (
	"context"
	"fmt"
	"io"

	"bootplan/internal/window"
)

// Windows merges every service's declared maintenance windows into the
// fleet-wide quiet periods and writes them to outW, one range per line.
func (a *App) Windows(ctx context.Context, paths []string, outW io.Writer) error {
	manifest, err := a.loadManifest(ctx, paths)
	if err != nil {
		return err
	}

	var all []window.Window
	for _, svc := range manifest.Services {
		all = append(all, svc.Maintenance...)
	}

	merged := window.Merge(all)
	if len(merged) == 0 {
		fmt.Fprintln(outW, "no maintenance windows declared")
		return nil
	}
	for _, w := range merged {
		fmt.Fprintln(outW, w)
	}

	a.logger.Info("Windows merged.", "declared", len(all), "merged", len(merged))
	return nil
}

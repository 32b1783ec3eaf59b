package app

import (
	"context"
	"fmt"
	"io"

	"bootplan/internal/drift"
)

// Diff loads two manifest trees and reports the drift between them, one
// change per line. It returns true when drift was found; a non-nil error
// means one of the sides failed to load.
func (a *App) Diff(ctx context.Context, oldPath, newPath string, outW io.Writer) (bool, error) {
	oldManifest, err := a.loadManifest(ctx, []string{oldPath})
	if err != nil {
		return false, fmt.Errorf("loading %s: %w", oldPath, err)
	}
	newManifest, err := a.loadManifest(ctx, []string{newPath})
	if err != nil {
		return false, fmt.Errorf("loading %s: %w", newPath, err)
	}

	changes := drift.Compare(oldManifest, newManifest)
	for _, change := range changes {
		fmt.Fprintln(outW, change)
	}

	a.logger.Info("Diff finished.", "changes", len(changes))
	return len(changes) > 0, nil
}

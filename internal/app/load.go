package app

import (
	"context"
	"fmt"
	"strings"

	"bootplan/internal/config"
	"bootplan/internal/fsutil"
	"bootplan/internal/hcl"
	"bootplan/internal/yaml"
)

// manifestExtensions lists the file suffixes the loader dispatch knows.
var manifestExtensions = []string{".hcl", ".yaml", ".yml"}

// loadManifest discovers manifest files under the given paths (files or
// directory trees), dispatches each to its format loader by extension,
// and merges the results in discovery order. Paths default to the
// current directory. Structural validation is the caller's job; the
// commands differ in how they surface findings.
func (a *App) loadManifest(ctx context.Context, paths []string) (*config.Manifest, error) {
	ctx = a.withLogger(ctx)
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var files []string
	seen := make(map[string]struct{})
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, manifestExtensions...)
		if err != nil {
			return nil, fmt.Errorf("manifest discovery failed: %w", err)
		}
		for _, f := range found {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			files = append(files, f)
		}
	}
	a.logger.Debug("Manifest files discovered.", "count", len(files))

	hclLoader := hcl.NewLoader()
	yamlLoader := yaml.NewLoader()

	parts := make([]*config.Manifest, 0, len(files))
	for _, file := range files {
		var loader config.Loader
		switch {
		case strings.HasSuffix(file, ".hcl"):
			loader = hclLoader
		default:
			loader = yamlLoader
		}
		part, err := loader.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}

	manifest := config.Merge(parts...)
	a.logger.Info("Manifests loaded.", "files", len(files), "services", len(manifest.Services))
	return manifest, nil
}

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"bootplan/internal/config"
	"bootplan/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// serviceBlock mirrors one `service "name" { ... }` block.
type serviceBlock struct {
	Name        string         `hcl:"name,label"`
	Description string         `hcl:"description,optional"`
	Command     string         `hcl:"command,optional"`
	DependsOn   []string       `hcl:"depends_on,optional"`
	Labels      hcl.Expression `hcl:"labels,optional"`
	Maintenance []string       `hcl:"maintenance,optional"`
}

// fileRoot decodes all top-level blocks from one manifest file.
type fileRoot struct {
	Services []*serviceBlock `hcl:"service,block"`
	Remain   hcl.Body        `hcl:",remain"`
}

// Load parses the given HCL files and translates their service blocks
// into the manifest model, preserving declaration order across files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "file_count", len(paths))

	manifest := &config.Manifest{}
	parser := hclparse.NewParser()

	for _, path := range paths {
		hclFile, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
		}

		for _, block := range root.Services {
			svc, err := l.translateService(block)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			manifest.Services = append(manifest.Services, svc)
		}
	}

	logger.Debug("HCL loading complete.", "services", len(manifest.Services))
	return manifest, nil
}

// Package yaml provides the YAML implementation of the config.Loader
// interface, mirroring the HCL schema one to one under a top-level
// `services:` list.
package yaml

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	yamlv3 "gopkg.in/yaml.v3"

	"bootplan/internal/config"
	"bootplan/internal/ctxlog"
	"bootplan/internal/window"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

type serviceDoc struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Command     string            `yaml:"command"`
	DependsOn   []string          `yaml:"depends_on"`
	Labels      map[string]string `yaml:"labels"`
	Maintenance []string          `yaml:"maintenance"`
}

type fileDoc struct {
	Services []serviceDoc `yaml:"services"`
}

// Load parses the given YAML files and translates their service entries
// into the manifest model, preserving declaration order across files.
// Unknown fields are rejected so typos surface at load time.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "file_count", len(paths))

	manifest := &config.Manifest{}
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		dec := yamlv3.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)

		var doc fileDoc
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}

		for _, entry := range doc.Services {
			svc, err := translateService(entry)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			manifest.Services = append(manifest.Services, svc)
		}
	}

	logger.Debug("YAML loading complete.", "services", len(manifest.Services))
	return manifest, nil
}

func translateService(entry serviceDoc) (*config.Service, error) {
	svc := &config.Service{
		Name:        entry.Name,
		Description: entry.Description,
		Command:     entry.Command,
		DependsOn:   entry.DependsOn,
		Labels:      entry.Labels,
	}
	if len(svc.Labels) == 0 {
		svc.Labels = nil
	}

	for _, raw := range entry.Maintenance {
		w, err := window.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("service %q: %w", entry.Name, err)
		}
		svc.Maintenance = append(svc.Maintenance, w)
	}
	return svc, nil
}

package config

import (
	"bootplan/internal/window"
)

// Manifest is the merged view of every loaded manifest file. Service
// declaration order is preserved end to end; it drives the deterministic
// seeding of the resolver.
type Manifest struct {
	Services []*Service
}

// Service is the format-agnostic representation of one `service` block.
type Service struct {
	Name        string
	Description string
	Command     string
	DependsOn   []string
	Labels      map[string]string
	Maintenance []window.Window
}

// Service returns the named service, or nil when it is not declared.
func (m *Manifest) Service(name string) *Service {
	for _, svc := range m.Services {
		if svc.Name == name {
			return svc
		}
	}
	return nil
}

// Names lists the declared service names in declaration order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Services))
	for _, svc := range m.Services {
		names = append(names, svc.Name)
	}
	return names
}

// Merge concatenates manifests in argument order into a single Manifest.
// Duplicate definitions across files are left in place for Validate to
// reject.
func Merge(manifests ...*Manifest) *Manifest {
	merged := &Manifest{}
	for _, m := range manifests {
		if m == nil {
			continue
		}
		merged.Services = append(merged.Services, m.Services...)
	}
	return merged
}

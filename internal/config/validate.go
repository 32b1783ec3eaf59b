package config

import (
	"errors"
	"fmt"
)

// Validate checks the merged manifest for structural problems and
// collects every finding rather than stopping at the first: empty or
// duplicate service names, depends_on references to undeclared services,
// and self-references. A non-nil result wraps one error per finding.
func Validate(m *Manifest) error {
	var problems []error

	declared := make(map[string]struct{}, len(m.Services))
	for _, svc := range m.Services {
		if svc.Name == "" {
			problems = append(problems, errors.New("service with empty name"))
			continue
		}
		if _, ok := declared[svc.Name]; ok {
			problems = append(problems, fmt.Errorf("service %q declared more than once", svc.Name))
			continue
		}
		declared[svc.Name] = struct{}{}
	}

	for _, svc := range m.Services {
		for _, dep := range svc.DependsOn {
			if dep == svc.Name {
				problems = append(problems, fmt.Errorf("service %q depends on itself", svc.Name))
				continue
			}
			if _, ok := declared[dep]; !ok {
				problems = append(problems, fmt.Errorf("service %q depends on undeclared service %q", svc.Name, dep))
			}
		}
	}

	return errors.Join(problems...)
}

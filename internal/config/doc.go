// Package config defines the unified, format-agnostic representation of
// a service dependency manifest, plus the Loader interface that the
// format-specific packages (hcl, yaml) implement.
package config

// Package hcl provides the HCL implementation of the config.Loader
// interface. It parses manifest files with hclparse, decodes the
// `service` blocks with gohcl, and binds cty attribute values into the
// format-agnostic config model.
package hcl

package config

import "context"

// Loader abstracts a manifest file format. Implementations parse the
// given files and translate them into the format-agnostic model without
// validating cross-service references; that is Validate's job once all
// files are merged.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Manifest, error)
}

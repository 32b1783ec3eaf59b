// Package app wires the planner together: it owns the logger, dispatches
// manifest files to the format loaders, and implements the per-command
// operations (Plan, Validate, Diff, Windows) on top of the dag resolver
// and the renderers.
package app

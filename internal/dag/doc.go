// Package dag computes deterministic processing orders for directed
// dependency graphs. Given a declared node set and a list of
// provider→dependant edges it produces a topological order (Kahn's
// algorithm), parallel-safe stages, or a typed error when the input is
// malformed or cyclic.
package dag

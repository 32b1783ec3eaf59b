package dag

import (
	"fmt"
	"strings"
)

// ConfigError reports input that cannot form a valid graph: an edge
// endpoint missing from the declared node set, or a node declared twice.
// Edge is nil for duplicate-node errors.
type ConfigError struct {
	Node string
	Edge *Edge
}

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	if e.Edge != nil {
		return fmt.Sprintf("unknown node %q referenced by edge %s -> %s", e.Node, e.Edge.From, e.Edge.To)
	}
	return fmt.Sprintf("duplicate node %q", e.Node)
}

// CycleError reports that the graph is not a DAG. Nodes holds every node
// that never reached zero in-degree, in declaration order; each of them
// either sits on a cycle or depends on one.
type CycleError struct {
	Nodes []string
}

// Error implements the error interface for CycleError.
func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle involving nodes: %s", strings.Join(e.Nodes, ", "))
}

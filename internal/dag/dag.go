package dag

// Edge is a directed dependency: To cannot start until From has started.
type Edge struct {
	From string // provider
	To   string // dependant
}

// graph holds the adjacency and in-degree tables for one resolution pass.
// Dependant lists keep edge insertion order so identical input always
// walks the graph the same way.
type graph struct {
	dependants map[string][]string
	indegree   map[string]int
}

// build validates the node set and edge list and derives the adjacency
// and in-degree tables. Parallel duplicate edges are deduplicated so they
// never double-count in-degree.
func build(nodes []string, edges []Edge) (*graph, error) {
	declared := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if _, ok := declared[n]; ok {
			return nil, &ConfigError{Node: n}
		}
		declared[n] = struct{}{}
	}

	g := &graph{
		dependants: make(map[string][]string, len(nodes)),
		indegree:   make(map[string]int, len(nodes)),
	}
	for _, n := range nodes {
		g.indegree[n] = 0
	}

	seen := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		e := e
		if _, ok := declared[e.From]; !ok {
			return nil, &ConfigError{Node: e.From, Edge: &e}
		}
		if _, ok := declared[e.To]; !ok {
			return nil, &ConfigError{Node: e.To, Edge: &e}
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}

		g.dependants[e.From] = append(g.dependants[e.From], e.To)
		g.indegree[e.To]++
	}

	return g, nil
}

// Resolve computes one valid processing order for the declared nodes:
// every provider appears strictly before all of its direct and transitive
// dependants. The order is deterministic: zero-in-degree nodes are
// processed FIFO in declaration order, so identical input always yields
// an identical order. An empty node set resolves to an empty order.
//
// Resolve returns a *ConfigError when an edge references an undeclared
// node or a node is declared twice, and a *CycleError when the graph is
// not a DAG. Inputs are never mutated.
func Resolve(nodes []string, edges []Edge) ([]string, error) {
	g, err := build(nodes, edges)
	if err != nil {
		return nil, err
	}

	queue := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if g.indegree[n] == 0 {
			queue = append(queue, n)
		}
	}

	order := make([]string, 0, len(nodes))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)

		for _, d := range g.dependants[n] {
			g.indegree[d]--
			if g.indegree[d] == 0 {
				queue = append(queue, d)
			}
		}
	}

	if len(order) != len(nodes) {
		return nil, &CycleError{Nodes: unresolved(nodes, g.indegree)}
	}
	return order, nil
}

// Stages groups the topological order into parallel-safe waves: stage N
// holds every node whose providers all sit in stages before N.
// Concatenating the stages yields a valid topological order. Validation
// and cycle semantics match Resolve.
func Stages(nodes []string, edges []Edge) ([][]string, error) {
	g, err := build(nodes, edges)
	if err != nil {
		return nil, err
	}

	remaining := len(nodes)
	done := make(map[string]struct{}, len(nodes))
	var stages [][]string

	for remaining > 0 {
		var wave []string
		for _, n := range nodes {
			if _, ok := done[n]; ok {
				continue
			}
			if g.indegree[n] == 0 {
				wave = append(wave, n)
			}
		}
		if len(wave) == 0 {
			return nil, &CycleError{Nodes: unresolved(nodes, g.indegree)}
		}

		for _, n := range wave {
			done[n] = struct{}{}
			for _, d := range g.dependants[n] {
				g.indegree[d]--
			}
		}
		stages = append(stages, wave)
		remaining -= len(wave)
	}

	return stages, nil
}

// Reverse returns a reversed copy of order, for shutdown planning. The
// input slice is left untouched.
func Reverse(order []string) []string {
	out := make([]string, len(order))
	for i, n := range order {
		out[len(order)-1-i] = n
	}
	return out
}

// Subgraph narrows the graph to the given targets plus their transitive
// providers, answering "what must start for these". Node declaration
// order and edge order are preserved in the result. An unknown target is
// a *ConfigError.
func Subgraph(nodes []string, edges []Edge, targets []string) ([]string, []Edge, error) {
	g, err := build(nodes, edges)
	if err != nil {
		return nil, nil, err
	}

	// Reverse adjacency: dependant → providers.
	providers := make(map[string][]string, len(nodes))
	for from, tos := range g.dependants {
		for _, to := range tos {
			providers[to] = append(providers[to], from)
		}
	}

	keep := make(map[string]struct{}, len(targets))
	var walk func(n string)
	walk = func(n string) {
		if _, ok := keep[n]; ok {
			return
		}
		keep[n] = struct{}{}
		for _, p := range providers[n] {
			walk(p)
		}
	}
	for _, t := range targets {
		if _, ok := g.indegree[t]; !ok {
			return nil, nil, &ConfigError{Node: t}
		}
		walk(t)
	}

	subNodes := make([]string, 0, len(keep))
	for _, n := range nodes {
		if _, ok := keep[n]; ok {
			subNodes = append(subNodes, n)
		}
	}
	var subEdges []Edge
	for _, e := range edges {
		if _, okFrom := keep[e.From]; !okFrom {
			continue
		}
		if _, okTo := keep[e.To]; okTo {
			subEdges = append(subEdges, e)
		}
	}
	return subNodes, subEdges, nil
}

// unresolved lists, in declaration order, the nodes whose in-degree never
// reached zero.
func unresolved(nodes []string, indegree map[string]int) []string {
	var stuck []string
	for _, n := range nodes {
		if indegree[n] > 0 {
			stuck = append(stuck, n)
		}
	}
	return stuck
}

package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Linear(t *testing.T) {
	nodes := []string{"db", "cache", "api"}
	edges := []Edge{
		{From: "db", To: "api"},
		{From: "cache", To: "api"},
	}

	order, err := Resolve(nodes, edges)

	require.NoError(t, err)
	assert.Equal(t, []string{"db", "cache", "api"}, order)
}

func TestResolve_ProvidersPrecedeDependants(t *testing.T) {
	// A depends on B and D, B depends on C.
	nodes := []string{"A", "B", "C", "D"}
	edges := []Edge{
		{From: "C", To: "B"},
		{From: "B", To: "A"},
		{From: "D", To: "A"},
	}

	order, err := Resolve(nodes, edges)

	require.NoError(t, err)
	require.Len(t, order, 4)
	pos := make(map[string]int, len(order))
	for i, n := range order {
		pos[n] = i
	}
	assert.Less(t, pos["C"], pos["B"])
	assert.Less(t, pos["B"], pos["A"])
	assert.Less(t, pos["D"], pos["A"])
	assert.NotEqual(t, "A", order[0])
}

func TestResolve_Deterministic(t *testing.T) {
	nodes := []string{"c", "a", "b", "d"}
	edges := []Edge{
		{From: "c", To: "d"},
		{From: "a", To: "d"},
	}

	first, err := Resolve(nodes, edges)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Resolve(nodes, edges)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	// Zero-in-degree nodes come out in declaration order.
	assert.Equal(t, []string{"c", "a", "b", "d"}, first)
}

func TestResolve_EmptyInput(t *testing.T) {
	order, err := Resolve(nil, nil)

	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestResolve_DuplicateEdgesAreIdempotent(t *testing.T) {
	nodes := []string{"a", "b"}
	edges := []Edge{
		{From: "a", To: "b"},
		{From: "a", To: "b"},
		{From: "a", To: "b"},
	}

	order, err := Resolve(nodes, edges)

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestResolve_UnknownEdgeEndpoint(t *testing.T) {
	order, err := Resolve([]string{"A"}, []Edge{{From: "A", To: "B"}})

	require.Error(t, err)
	assert.Nil(t, order)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "B", cfgErr.Node)
	require.NotNil(t, cfgErr.Edge)
	assert.Equal(t, Edge{From: "A", To: "B"}, *cfgErr.Edge)
}

func TestResolve_DuplicateNode(t *testing.T) {
	_, err := Resolve([]string{"a", "b", "a"}, nil)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "a", cfgErr.Node)
	assert.Nil(t, cfgErr.Edge)
}

func TestResolve_CycleDetected(t *testing.T) {
	nodes := []string{"X", "Y", "Z"}
	edges := []Edge{
		{From: "X", To: "Y"},
		{From: "Y", To: "Z"},
		{From: "Z", To: "X"},
	}

	order, err := Resolve(nodes, edges)

	require.Error(t, err)
	assert.Nil(t, order)
	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"X", "Y", "Z"}, cycleErr.Nodes)
}

func TestResolve_CycleReportsOnlyStuckNodes(t *testing.T) {
	// "ok" sits outside the loop and must not be implicated.
	nodes := []string{"ok", "p", "q"}
	edges := []Edge{
		{From: "p", To: "q"},
		{From: "q", To: "p"},
	}

	_, err := Resolve(nodes, edges)

	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"p", "q"}, cycleErr.Nodes)
}

func TestResolve_DoesNotMutateInputs(t *testing.T) {
	nodes := []string{"b", "a"}
	edges := []Edge{{From: "b", To: "a"}}

	_, err := Resolve(nodes, edges)

	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, nodes)
	assert.Equal(t, []Edge{{From: "b", To: "a"}}, edges)
}

func TestStages_Waves(t *testing.T) {
	nodes := []string{"db", "cache", "api", "worker", "lb"}
	edges := []Edge{
		{From: "db", To: "api"},
		{From: "cache", To: "api"},
		{From: "db", To: "worker"},
		{From: "api", To: "lb"},
	}

	stages, err := Stages(nodes, edges)

	require.NoError(t, err)
	require.Len(t, stages, 3)
	assert.Equal(t, []string{"db", "cache"}, stages[0])
	assert.Equal(t, []string{"api", "worker"}, stages[1])
	assert.Equal(t, []string{"lb"}, stages[2])
}

func TestStages_Cycle(t *testing.T) {
	nodes := []string{"a", "b"}
	edges := []Edge{
		{From: "a", To: "b"},
		{From: "b", To: "a"},
	}

	stages, err := Stages(nodes, edges)

	assert.Nil(t, stages)
	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"a", "b"}, cycleErr.Nodes)
}

func TestReverse(t *testing.T) {
	order := []string{"db", "api", "lb"}

	down := Reverse(order)

	assert.Equal(t, []string{"lb", "api", "db"}, down)
	assert.Equal(t, []string{"db", "api", "lb"}, order)
}

func TestSubgraph_TransitiveProviders(t *testing.T) {
	nodes := []string{"db", "cache", "api", "worker", "lb"}
	edges := []Edge{
		{From: "db", To: "api"},
		{From: "cache", To: "api"},
		{From: "db", To: "worker"},
		{From: "api", To: "lb"},
	}

	subNodes, subEdges, err := Subgraph(nodes, edges, []string{"lb"})

	require.NoError(t, err)
	assert.Equal(t, []string{"db", "cache", "api", "lb"}, subNodes)
	assert.Equal(t, []Edge{
		{From: "db", To: "api"},
		{From: "cache", To: "api"},
		{From: "api", To: "lb"},
	}, subEdges)
}

func TestSubgraph_UnknownTarget(t *testing.T) {
	_, _, err := Subgraph([]string{"a"}, nil, []string{"ghost"})

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "ghost", cfgErr.Node)
}

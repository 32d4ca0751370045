package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mstviz/core"
	"github.com/katalvlaran/mstviz/prim_kruskal"
	"github.com/stretchr/testify/require"
)

// squareEdges is the 4-cycle 1-2-3-4-1 with weights 1,2,3,4.
// Its MST is {(1,2),(2,3),(3,4)} with total weight 6.
func squareEdges() []core.Edge {
	return []core.Edge{
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 2},
		{U: 3, V: 4, Weight: 3},
		{U: 1, V: 4, Weight: 4},
	}
}

// buildConnected returns n nodes and m edges with pairwise distinct weights.
//   - First, a random spanning chain guarantees connectivity.
//   - Then extra random edges (parallel edges and loops allowed) fill up to m.
//   - Weights are a permutation of 1..m, so the MST is unique.
//
// The generator is seeded, so the same arguments always give the same graph.
func buildConnected(n, m int, seed int64) []core.Edge {
	r := rand.New(rand.NewSource(seed))
	weights := r.Perm(m)
	order := r.Perm(n)

	edges := make([]core.Edge, 0, m)
	for i := 1; i < n; i++ {
		edges = append(edges, core.Edge{U: order[i-1] + 1, V: order[i] + 1})
	}
	for len(edges) < m {
		edges = append(edges, core.Edge{U: r.Intn(n) + 1, V: r.Intn(n) + 1})
	}
	for i := range edges {
		edges[i].Weight = float64(weights[i] + 1)
	}

	return edges
}

// statuses extracts the status column of a trace.
func statuses(tr prim_kruskal.Trace) []prim_kruskal.Status {
	out := make([]prim_kruskal.Status, len(tr.Steps))
	for i, s := range tr.Steps {
		out[i] = s.Status
	}

	return out
}

// edgeIDs extracts the ids of an edge list.
func edgeIDs(edges []core.IndexedEdge) []int {
	ids := make([]int, len(edges))
	for i, e := range edges {
		ids[i] = e.ID
	}

	return ids
}

// requireValid asserts the full step-sequence contract.
func requireValid(t *testing.T, tr prim_kruskal.Trace) {
	t.Helper()
	require.NoError(t, tr.Validate())
}

package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstviz/core"
	"github.com/katalvlaran/mstviz/prim_kruskal"
	"github.com/katalvlaran/mstviz/render"
)

func squareEdges() []core.Edge {
	return []core.Edge{
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 2},
		{U: 3, V: 4, Weight: 3},
		{U: 1, V: 4, Weight: 4},
	}
}

// triangleTail has one rejection: (1,3) closes the triangle 1-2-3.
func triangleTail() prim_kruskal.Trace {
	return prim_kruskal.BuildKruskalTrace(4, []core.Edge{
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 2},
		{U: 1, V: 3, Weight: 3},
		{U: 3, V: 4, Weight: 4},
	})
}

func states(es []render.EdgeState) []render.State {
	out := make([]render.State, len(es))
	for i, e := range es {
		out[i] = e.State
	}
	return out
}

func TestEdgeStates_Kruskal(t *testing.T) {
	tr := triangleTail()
	P, E, S, R := render.StatePending, render.StateExamining, render.StateSelected, render.StateRejected

	assert.Equal(t, []render.State{P, P, P, P}, states(render.EdgeStates(tr, -1)))
	assert.Equal(t, []render.State{P, P, P, P}, states(render.EdgeStates(tr, 0)))
	assert.Equal(t, []render.State{E, P, P, P}, states(render.EdgeStates(tr, 1)))
	assert.Equal(t, []render.State{S, P, P, P}, states(render.EdgeStates(tr, 2)))
	assert.Equal(t, []render.State{S, S, E, P}, states(render.EdgeStates(tr, 5)))
	assert.Equal(t, []render.State{S, S, R, P}, states(render.EdgeStates(tr, 6)))
	assert.Equal(t, []render.State{S, S, R, S}, states(render.EdgeStates(tr, 99)))
}

func TestEdgeStates_Prim(t *testing.T) {
	tr := prim_kruskal.BuildPrimTrace(4, squareEdges())
	P, C, S := render.StatePending, render.StateCandidate, render.StateSelected

	// Step 3: node 1 committed, nodes 2 and 4 on the frontier.
	assert.Equal(t, []render.State{C, P, P, C}, states(render.EdgeStates(tr, 3)))
	// Step 7: node 4 found a lighter link through 3; edge 4 is demoted.
	assert.Equal(t, []render.State{S, S, C, P}, states(render.EdgeStates(tr, 7)))
	assert.Equal(t, []render.State{S, S, S, P}, states(render.EdgeStates(tr, tr.Len()-1)))
}

func TestEdgeStates_Empty(t *testing.T) {
	tr := prim_kruskal.BuildKruskalTrace(0, nil)
	assert.Empty(t, render.EdgeStates(tr, 5))

	out, err := render.ToDOT(tr, 5)
	require.NoError(t, err)
	assert.Contains(t, out, "graph mst")
	assert.Contains(t, render.EdgeTable(tr, 0), "Status", "an empty table still renders its header")
}

func TestState_Label(t *testing.T) {
	assert.Equal(t, "Pending", render.StatePending.Label())
	assert.Equal(t, "Examining...", render.StateExamining.Label())
	assert.Equal(t, "Selected", render.StateSelected.Label())
	assert.Equal(t, "Rejected", render.StateRejected.Label())
	assert.Equal(t, "Candidate", render.StateCandidate.Label())
}

func TestEdgeTable(t *testing.T) {
	out := render.EdgeTable(triangleTail(), 6)
	for _, want := range []string{"#", "Edge", "Weight", "Status", "(1, 3)", "Rejected", "Selected", "Pending"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Examining")
}

func TestStateTable(t *testing.T) {
	k := prim_kruskal.BuildKruskalTrace(4, []core.Edge{{U: 1, V: 2, Weight: 5}})
	final, _ := k.Final()
	out := render.StateTable(final)
	assert.Contains(t, out, "Node")
	assert.Contains(t, out, "Parent")

	p := prim_kruskal.BuildPrimTrace(4, []core.Edge{{U: 1, V: 2, Weight: 5}})
	final, _ = p.Final()
	out = render.StateTable(final)
	assert.Contains(t, out, "Dist")
	assert.Contains(t, out, "Visited")
	assert.Contains(t, out, "∞")
	assert.Contains(t, out, "✓")
	assert.NotContains(t, out, "unreachable")

	assert.Equal(t, "", render.StateTable(prim_kruskal.Step{}))
}

func TestToDOT(t *testing.T) {
	out, err := render.ToDOT(triangleTail(), 6)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "graph mst"), out)
	for v := 1; v <= 4; v++ {
		assert.Contains(t, out, "label=\""+string(rune('0'+v))+"\"")
	}
	assert.Contains(t, out, "--")
	assert.NotContains(t, out, "->")
	assert.Contains(t, out, "dashed", "rejected edge")
	assert.Contains(t, out, `"#2ecc71"`, "accepted edges")
	assert.Contains(t, out, `"#e74c3c"`, "rejected edge colour")
	assert.Equal(t, 4, strings.Count(out, "--"), "one DOT edge per graph edge")
}

// TestToDOT_KruskalParentColour merges two rank-1 trees so node 4 keeps
// parent 3 while its root is 1: the fill follows the recorded parent.
func TestToDOT_KruskalParentColour(t *testing.T) {
	tr := prim_kruskal.BuildKruskalTrace(4, []core.Edge{
		{U: 1, V: 2, Weight: 1},
		{U: 3, V: 4, Weight: 2},
		{U: 2, V: 4, Weight: 3},
	})
	require.Equal(t, []int{0, 1, 1, 1, 3}, tr.Steps[6].DSU)

	out, err := render.ToDOT(tr, 6)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, `fillcolor="#9b59b6"`), "nodes 1, 2 and 3 have parent 1")
	assert.Equal(t, 1, strings.Count(out, `fillcolor="#e74c3c"`), "node 4 has parent 3")
}

func TestToDOT_PrimVisited(t *testing.T) {
	tr := prim_kruskal.BuildPrimTrace(4, squareEdges())
	out, err := render.ToDOT(tr, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, `fillcolor="#2ecc71"`), "only node 1 is committed")
}

func TestRenderSVG(t *testing.T) {
	dot, err := render.ToDOT(prim_kruskal.BuildKruskalTrace(4, squareEdges()), 3)
	require.NoError(t, err)

	svg, err := render.RenderSVG(dot)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

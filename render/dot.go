package render

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/mstviz/prim_kruskal"
)

const graphName = "mst"

// palette colours Kruskal nodes by their union-find parent.
var palette = []string{"#3498db", "#9b59b6", "#e67e22", "#e74c3c", "#1abc9c", "#2ecc71", "#f1c40f", "#34495e"}

// Edge colours by state.
const (
	dotPending   = "#bdc3c7"
	dotSelected  = "#2ecc71"
	dotExamining = "#f1c40f"
	dotRejected  = "#e74c3c"
	dotCandidate = "#3498db"
	dotVisited   = "#2ecc71"
)

// ToDOT builds an undirected Graphviz graph of tr as it looks after step upTo.
//
//   - Nodes 1..N; Kruskal steps fill each node with the colour of its
//     union-find parent as recorded in the snapshot (roots, parent[v] == v,
//     get a bold outline), Prim steps fill committed nodes green.
//   - Edges are labelled with their weight. Accepted edges are bold green,
//     rejected ones red and dashed, Prim candidates blue, the edge of the
//     current step yellow while it is under examination.
//
// The result is deterministic for a given trace and step.
func ToDOT(tr prim_kruskal.Trace, upTo int) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", fmt.Errorf("ToDOT: %w", err)
	}
	if err := g.SetDir(false); err != nil {
		return "", fmt.Errorf("ToDOT: %w", err)
	}
	if err := g.AddAttr(graphName, "bgcolor", "transparent"); err != nil {
		return "", fmt.Errorf("ToDOT: %w", err)
	}

	var step prim_kruskal.Step
	if i := clampStep(tr, upTo); i >= 0 {
		step = tr.Steps[i]
	}

	for v := 1; v <= tr.Nodes; v++ {
		if err := g.AddNode(graphName, strconv.Itoa(v), nodeAttrs(step, v)); err != nil {
			return "", fmt.Errorf("ToDOT: node %d: %w", v, err)
		}
	}

	current := 0
	if step.EdgeInfo != nil && step.Status != prim_kruskal.StatusFinal {
		current = step.EdgeInfo.ID
	}
	for _, es := range EdgeStates(tr, upTo) {
		attrs := edgeAttrs(es, es.Edge.ID == current)
		if err := g.AddEdge(strconv.Itoa(es.Edge.U), strconv.Itoa(es.Edge.V), false, attrs); err != nil {
			return "", fmt.Errorf("ToDOT: edge %d: %w", es.Edge.ID, err)
		}
	}

	return g.String(), nil
}

func nodeAttrs(step prim_kruskal.Step, v int) map[string]string {
	attrs := map[string]string{
		"label":     strconv.Quote(strconv.Itoa(v)),
		"shape":     "circle",
		"style":     "filled",
		"fillcolor": "white",
	}
	switch {
	case v < len(step.DSU):
		parent := step.DSU[v]
		attrs["fillcolor"] = strconv.Quote(palette[parent%len(palette)])
		attrs["fontcolor"] = "white"
		if parent == v {
			attrs["penwidth"] = "3"
		}
	case step.Prim != nil && v < len(step.Prim.Visited) && step.Prim.Visited[v]:
		attrs["fillcolor"] = strconv.Quote(dotVisited)
		if v == step.SelectedNode {
			attrs["penwidth"] = "3"
		}
	}

	return attrs
}

func edgeAttrs(es EdgeState, current bool) map[string]string {
	color, width := dotPending, "1"
	style := "solid"
	switch es.State {
	case StateSelected:
		color, width = dotSelected, "3"
	case StateRejected:
		color, style = dotRejected, "dashed"
	case StateExamining:
		color = dotExamining
	case StateCandidate:
		color = dotCandidate
	}
	if current {
		width = "3"
		if es.State != StateRejected && es.State != StateSelected {
			color = dotExamining
		}
	}

	return map[string]string{
		"label":    strconv.Quote(strconv.FormatFloat(es.Edge.Weight, 'g', -1, 64)),
		"color":    strconv.Quote(color),
		"penwidth": width,
		"style":    style,
	}
}

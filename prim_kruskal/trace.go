package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/mstviz/core"
	"github.com/katalvlaran/mstviz/dsu"
)

// Trace is the complete, ordered step sequence of one build plus the sorted
// edge table its steps refer to.
//
// A Trace is created once per build and never modified afterwards; it is
// safe to share between goroutines as long as nobody writes to it.
type Trace struct {
	// Method is MethodKruskal or MethodPrim.
	Method string `json:"method" yaml:"method"`

	// Nodes is N, the node count of the source graph.
	Nodes int `json:"nodes" yaml:"nodes"`

	// Steps is the append-only log, INITIAL first and FINAL last.
	Steps []Step `json:"steps" yaml:"steps"`

	// SortedEdges lists the graph's edges by ascending weight; ID = index+1.
	SortedEdges []core.IndexedEdge `json:"sortedEdges" yaml:"sortedEdges"`
}

// emptyTrace is the result for a graph with no nodes or no edges.
func emptyTrace(method string, n int) Trace {
	if n < 0 {
		n = 0
	}

	return Trace{
		Method:      method,
		Nodes:       n,
		Steps:       []Step{},
		SortedEdges: []core.IndexedEdge{},
	}
}

// Len returns the number of steps.
func (t Trace) Len() int { return len(t.Steps) }

// Empty reports whether the trace has no steps.
func (t Trace) Empty() bool { return len(t.Steps) == 0 }

// At returns step i and whether i is in range.
func (t Trace) At(i int) (Step, bool) {
	if i < 0 || i >= len(t.Steps) {
		return Step{}, false
	}

	return t.Steps[i], true
}

// Final returns the last step, or false for an empty trace.
func (t Trace) Final() (Step, bool) {
	return t.At(len(t.Steps) - 1)
}

// MST returns the accepted edges of the final step.
func (t Trace) MST() []core.IndexedEdge {
	last, ok := t.Final()
	if !ok {
		return nil
	}

	return last.MSTEdges
}

// TotalWeight returns the summed weight of the final accepted edges.
func (t Trace) TotalWeight() float64 {
	return core.TotalWeight(t.MST())
}

// Edge looks up a sorted edge by id.
func (t Trace) Edge(id int) (core.IndexedEdge, bool) {
	if id < 1 || id > len(t.SortedEdges) || t.SortedEdges[id-1].ID != id {
		return core.IndexedEdge{}, false
	}

	return t.SortedEdges[id-1], true
}

// Validate checks the step-sequence contract:
//
//  1. Steps is empty iff SortedEdges is empty.
//  2. The first step is INITIAL and the last step is FINAL.
//  3. Every EdgeInfo and accepted edge names an id of SortedEdges with the
//     same endpoints and weight.
//  4. Every step carries the snapshot of its method, shaped for Nodes:
//     DSU has Nodes+1 entries in 0..Nodes; Dist, Parent and Visited have
//     Nodes+1 entries and every Parent is -1 or in 1..Nodes.
//  5. No two steps share DSU, frontier or accepted-edge storage.
//  6. The final accepted edges form a forest over 1..Nodes.
//
// Errors wrap ErrContractViolation, ErrUnknownEdge, ErrAliasedSnapshot or ErrCycle.
// Complexity: O(S·(N+M)) for S steps.
func (t Trace) Validate() error {
	// 1. Emptiness must agree with the edge table.
	if len(t.Steps) == 0 {
		if len(t.SortedEdges) != 0 {
			return fmt.Errorf("Validate: no steps for %d edges: %w", len(t.SortedEdges), ErrContractViolation)
		}
		return nil
	}
	if len(t.SortedEdges) == 0 {
		return fmt.Errorf("Validate: %d steps without edges: %w", len(t.Steps), ErrContractViolation)
	}

	// 2. Fixed endpoints of the sequence.
	if s := t.Steps[0].Status; s != StatusInitial {
		return fmt.Errorf("Validate: first step is %s: %w", s, ErrContractViolation)
	}
	if s := t.Steps[len(t.Steps)-1].Status; s != StatusFinal {
		return fmt.Errorf("Validate: last step is %s: %w", s, ErrContractViolation)
	}

	if t.Nodes < 1 {
		return fmt.Errorf("Validate: %d nodes: %w", t.Nodes, ErrContractViolation)
	}
	if t.Method != MethodKruskal && t.Method != MethodPrim {
		return fmt.Errorf("Validate: method %q: %w", t.Method, ErrContractViolation)
	}

	// 3 + 4 + 5. Edge references, snapshot shape and storage ownership, one
	// pass over the steps.
	owners := make(map[any]int)
	claim := func(i int, key any) error {
		if prev, seen := owners[key]; seen {
			return fmt.Errorf("Validate: steps %d and %d: %w", prev, i, ErrAliasedSnapshot)
		}
		owners[key] = i
		return nil
	}
	for i, s := range t.Steps {
		if err := t.checkSnapshot(i, s); err != nil {
			return err
		}
		if s.EdgeInfo != nil {
			if err := t.checkEdge(i, *s.EdgeInfo); err != nil {
				return err
			}
			if err := claim(i, s.EdgeInfo); err != nil {
				return err
			}
		}
		for _, e := range s.MSTEdges {
			if err := t.checkEdge(i, e); err != nil {
				return err
			}
		}
		if len(s.MSTEdges) > 0 {
			if err := claim(i, &s.MSTEdges[0]); err != nil {
				return err
			}
		}
		if len(s.DSU) > 0 {
			if err := claim(i, &s.DSU[0]); err != nil {
				return err
			}
		}
		if p := s.Prim; p != nil {
			if err := claim(i, p); err != nil {
				return err
			}
			if len(p.Dist) > 0 {
				if err := claim(i, &p.Dist[0]); err != nil {
					return err
				}
			}
			if len(p.Parent) > 0 {
				if err := claim(i, &p.Parent[0]); err != nil {
					return err
				}
			}
			if len(p.Visited) > 0 {
				if err := claim(i, &p.Visited[0]); err != nil {
					return err
				}
			}
		}
	}

	// 6. Independent forest check over the final accepted edges.
	forest := dsu.New(t.Nodes)
	for _, e := range t.MST() {
		if !forest.Valid(e.U) || !forest.Valid(e.V) {
			return fmt.Errorf("Validate: edge %d %s outside 1..%d: %w", e.ID, e.Edge, t.Nodes, ErrUnknownEdge)
		}
		if !forest.Union(e.U, e.V) {
			return fmt.Errorf("Validate: edge %d %s: %w", e.ID, e.Edge, ErrCycle)
		}
	}

	return nil
}

// checkEdge verifies that e matches the sorted edge with the same id. The
// orientation may differ: Prim reports relaxations from the committed node.
func (t Trace) checkEdge(step int, e core.IndexedEdge) error {
	ref, ok := t.Edge(e.ID)
	if !ok || !ref.Connects(e.U, e.V) || ref.Weight != e.Weight {
		return fmt.Errorf("Validate: step %d edge %d %s: %w", step, e.ID, e.Edge, ErrUnknownEdge)
	}

	return nil
}

// checkSnapshot verifies that step carries exactly the state of t.Method,
// sized for t.Nodes and holding only node ids a renderer may index with.
func (t Trace) checkSnapshot(step int, s Step) error {
	want := t.Nodes + 1
	switch t.Method {
	case MethodKruskal:
		if s.Prim != nil {
			return fmt.Errorf("Validate: step %d: kruskal step with prim snapshot: %w", step, ErrContractViolation)
		}
		if len(s.DSU) != want {
			return fmt.Errorf("Validate: step %d: dsu has %d entries, want %d: %w", step, len(s.DSU), want, ErrContractViolation)
		}
		for v, p := range s.DSU {
			if p < 0 || p > t.Nodes {
				return fmt.Errorf("Validate: step %d: dsu parent[%d]=%d: %w", step, v, p, ErrContractViolation)
			}
		}
	case MethodPrim:
		p := s.Prim
		if p == nil || s.DSU != nil {
			return fmt.Errorf("Validate: step %d: prim step without prim snapshot: %w", step, ErrContractViolation)
		}
		if len(p.Dist) != want || len(p.Parent) != want || len(p.Visited) != want {
			return fmt.Errorf("Validate: step %d: frontier sizes %d/%d/%d, want %d: %w",
				step, len(p.Dist), len(p.Parent), len(p.Visited), want, ErrContractViolation)
		}
		for v, u := range p.Parent {
			if u != -1 && (u < 1 || u > t.Nodes) {
				return fmt.Errorf("Validate: step %d: prim parent[%d]=%d: %w", step, v, u, ErrContractViolation)
			}
		}
		if s.SelectedNode < 0 || s.SelectedNode > t.Nodes {
			return fmt.Errorf("Validate: step %d: selected node %d: %w", step, s.SelectedNode, ErrContractViolation)
		}
	}

	return nil
}

// Package prim_kruskal provides the Kruskal trace builder.
// It sorts the edges, scans them with a disjoint-set and records every
// examination and decision as a Step.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/mstviz/core"
	"github.com/katalvlaran/mstviz/dsu"
)

// BuildKruskalTrace runs Kruskal's algorithm over n nodes and edges and
// returns the full step sequence.
//
// Edges are assumed valid (1 ≤ u,v ≤ n); core.NewGraph and core.Parse
// guarantee that for graphs built through them.
//
// Steps:
//  1. If n ≤ 0 or there are no edges, return an empty trace; no disjoint-set
//     is constructed.
//  2. core.SortEdges: stable ascending-weight sort, ids 1..M.
//  3. dsu.New(n); emit INITIAL with the singleton snapshot.
//  4. For each sorted edge, unless n-1 edges are already accepted:
//     a. Emit EXAMINING with a snapshot taken before any mutation.
//     b. Find both roots. Different roots: Union, accept the edge, emit
//     SELECTED. Same root: emit REJECTED (cycle), nothing mutates.
//     The decision snapshot is taken after the (non-)mutation, so it shows
//     the path compression done by Find.
//  5. Emit FINAL with the total accepted weight. A disconnected graph yields
//     a partial forest; the log names its tree count but it is not an error.
//
// Stopping at n-1 accepted edges is a policy: edges after that point never
// get an EXAMINING/REJECTED pair.
//
// Complexity: O(M log M + M·α(N)) time; O(S·(N+M)) space for S steps, since
// every step carries full copies.
func BuildKruskalTrace(n int, edges []core.Edge) Trace {
	// 1. Degenerate input: well-defined empty result.
	if n <= 0 || len(edges) == 0 {
		return emptyTrace(MethodKruskal, n)
	}

	// 2. Deterministic edge table shared with Prim.
	sorted := core.SortEdges(edges)

	// 3. Singletons.
	sets := dsu.New(n)
	var (
		mst   = make([]core.IndexedEdge, 0, n-1)
		steps = make([]Step, 0, 2*len(sorted)+2)
	)
	steps = append(steps, Step{
		Status:   StatusInitial,
		Log:      fmt.Sprintf("Kruskal: start. Graph has %d nodes, %d edges.", n, len(sorted)),
		DSU:      sets.Snapshot(),
		MSTEdges: cloneEdges(mst),
	})

	// 4. Scan edges in ascending order.
	for _, e := range sorted {
		if len(mst) == n-1 {
			// Spanning tree complete; the remaining edges cannot improve it.
			break
		}

		// 4a. Before the decision.
		steps = append(steps, Step{
			Status:   StatusExamining,
			Log:      fmt.Sprintf("Kruskal: examining edge [%d] (%d, %d), w=%g.", e.ID, e.U, e.V, e.Weight),
			EdgeInfo: edgeRef(e),
			DSU:      sets.Snapshot(),
			MSTEdges: cloneEdges(mst),
		})

		// 4b. Decide.
		rootU, rootV := sets.Find(e.U), sets.Find(e.V)
		decision := Step{EdgeInfo: edgeRef(e)}
		if rootU != rootV {
			sets.Union(e.U, e.V)
			mst = append(mst, e)
			decision.Status = StatusSelected
			decision.Log = fmt.Sprintf("Kruskal: ACCEPT edge (%d, %d). Merge sets %d and %d.", e.U, e.V, rootU, rootV)
		} else {
			decision.Status = StatusRejected
			decision.Log = fmt.Sprintf("Kruskal: REJECT edge (%d, %d). Creates a cycle (same root %d).", e.U, e.V, rootU)
		}
		decision.DSU = sets.Snapshot()
		decision.MSTEdges = cloneEdges(mst)
		steps = append(steps, decision)
	}

	// 5. Summary.
	log := fmt.Sprintf("Kruskal: done. Total MST weight: %g.", core.TotalWeight(mst))
	if len(mst) < n-1 {
		log += fmt.Sprintf(" Graph is disconnected: the forest has %d trees.", sets.Sets())
	}
	steps = append(steps, Step{
		Status:   StatusFinal,
		Log:      log,
		DSU:      sets.Snapshot(),
		MSTEdges: cloneEdges(mst),
	})

	return Trace{
		Method:      MethodKruskal,
		Nodes:       n,
		Steps:       steps,
		SortedEdges: sorted,
	}
}

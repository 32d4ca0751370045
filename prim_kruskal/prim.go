// Package prim_kruskal provides the Prim trace builder.
// It grows a tree from node 1 with a linear-scan frontier and records every
// node commitment and distance update as a Step.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/mstviz/core"
)

// PrimRoot is the fixed starting node of every Prim trace.
const PrimRoot = 1

// neighbor is one adjacency entry. id is the sorted edge id, carried so that
// a committed node's tree edge is recovered exactly, even among parallel
// edges of identical weight.
type neighbor struct {
	to     int
	weight float64
	id     int
}

// frontier is Prim's mutable state for one build.
type frontier struct {
	dist    []Distance
	parent  []int
	visited []bool
	via     []int // sorted edge id that set dist[i]; 0 = none
}

func newFrontier(n int) *frontier {
	f := &frontier{
		dist:    make([]Distance, n+1),
		parent:  make([]int, n+1),
		visited: make([]bool, n+1),
		via:     make([]int, n+1),
	}
	for i := range f.dist {
		f.dist[i] = Unreachable
		f.parent[i] = -1
	}

	return f
}

// snapshot returns a deep copy of the observable frontier arrays.
func (f *frontier) snapshot() *PrimSnapshot {
	return &PrimSnapshot{
		Dist:    append([]Distance(nil), f.dist...),
		Parent:  append([]int(nil), f.parent...),
		Visited: append([]bool(nil), f.visited...),
	}
}

// closest returns the unvisited node with the smallest finite distance, or
// -1 when every unvisited node is unreachable. Ties go to the lowest id.
// Complexity: O(N).
func (f *frontier) closest() (int, Distance) {
	u, best := -1, Unreachable
	for i := 1; i < len(f.dist); i++ {
		if !f.visited[i] && f.dist[i] < best {
			u, best = i, f.dist[i]
		}
	}

	return u, best
}

// BuildPrimTrace runs Prim's algorithm from node 1 over n nodes and edges
// and returns the full step sequence.
//
// Steps:
//  1. If n ≤ 0 or there are no edges, return an empty trace.
//  2. core.SortEdges (same ids as Kruskal); build an undirected adjacency
//     list by walking the sorted edges in order and adding both directions.
//  3. dist[1]=0, every other dist=+Inf, parent=-1, visited=false; emit INITIAL.
//  4. Up to n times:
//     a. Linear scan for the unvisited node u with the smallest finite
//     dist; none left means the rest is unreachable, stop.
//     b. Commit u. If it has a parent, its tree edge (by id) is accepted.
//     Emit SELECTED_NODE.
//     c. For each neighbor v of u, unvisited, with w < dist[v]: set
//     dist[v]=w, parent[v]=u and emit one UPDATE_DIST for this relaxation.
//  5. Emit FINAL with the total accepted weight; unreachable nodes are
//     counted in the log.
//
// Self-loops and heavier parallel edges never relax: the committed endpoint
// is visited, or the weight is not strictly smaller.
//
// Complexity: O(N² + M log M) time; O(S·(N+M)) space for S steps.
func BuildPrimTrace(n int, edges []core.Edge) Trace {
	// 1. Degenerate input.
	if n <= 0 || len(edges) == 0 {
		return emptyTrace(MethodPrim, n)
	}

	// 2. Edge table and adjacency, both in sorted order.
	sorted := core.SortEdges(edges)
	adj := make([][]neighbor, n+1)
	for _, e := range sorted {
		adj[e.U] = append(adj[e.U], neighbor{to: e.V, weight: e.Weight, id: e.ID})
		adj[e.V] = append(adj[e.V], neighbor{to: e.U, weight: e.Weight, id: e.ID})
	}

	// 3. Root the tree at node 1.
	f := newFrontier(n)
	f.dist[PrimRoot] = 0
	var (
		mst   = make([]core.IndexedEdge, 0, n-1)
		steps = make([]Step, 0, n+len(sorted)+2)
	)
	steps = append(steps, Step{
		Status:   StatusInitial,
		Log:      fmt.Sprintf("Prim: start from node %d.", PrimRoot),
		Prim:     f.snapshot(),
		MSTEdges: cloneEdges(mst),
	})

	// 4. Grow the tree one node per iteration.
	for count := 0; count < n; count++ {
		// 4a. O(N) scan, no priority queue.
		u, d := f.closest()
		if u == -1 {
			break
		}

		// 4b. Commit u and its tree edge.
		f.visited[u] = true
		var info *core.IndexedEdge
		if f.parent[u] != -1 {
			e := sorted[f.via[u]-1]
			mst = append(mst, e)
			info = edgeRef(e)
		}
		steps = append(steps, Step{
			Status:       StatusSelectedNode,
			Log:          fmt.Sprintf("Prim: selected node %d (min dist: %s). Added to MST.", u, d),
			EdgeInfo:     info,
			Prim:         f.snapshot(),
			MSTEdges:     cloneEdges(mst),
			SelectedNode: u,
		})

		// 4c. Relax neighbors, one step per improvement.
		for _, nb := range adj[u] {
			v, w := nb.to, Distance(nb.weight)
			if f.visited[v] || w >= f.dist[v] {
				continue
			}
			f.dist[v] = w
			f.parent[v] = u
			f.via[v] = nb.id
			steps = append(steps, Step{
				Status:       StatusUpdateDist,
				Log:          fmt.Sprintf("Prim: updating node %d: dist reduced to %s via parent %d.", v, w, u),
				EdgeInfo:     edgeRef(core.IndexedEdge{ID: nb.id, Edge: core.Edge{U: u, V: v, Weight: nb.weight}}),
				Prim:         f.snapshot(),
				MSTEdges:     cloneEdges(mst),
				SelectedNode: u,
			})
		}
	}

	// 5. Summary.
	final := f.snapshot()
	log := fmt.Sprintf("Prim: done. Total MST weight: %g.", core.TotalWeight(mst))
	if unreachable := final.Unreachable(); len(unreachable) > 0 {
		log += fmt.Sprintf(" Graph is disconnected: %d node(s) unreachable from node %d.", len(unreachable), PrimRoot)
	}
	steps = append(steps, Step{
		Status:   StatusFinal,
		Log:      log,
		Prim:     final,
		MSTEdges: cloneEdges(mst),
	})

	return Trace{
		Method:      MethodPrim,
		Nodes:       n,
		Steps:       steps,
		SortedEdges: sorted,
	}
}

// Package prim_kruskal runs Kruskal's and Prim's minimum-spanning-tree
// algorithms and records each run as a replayable step trace.
//
// What & Why
//
//   - What is a trace?
//     An ordered, immutable list of Steps. Each Step holds the decision taken
//     (Status), a human-readable Log line, the edge under consideration, a
//     full copy of the algorithm state and the edges accepted so far.
//
//   - Why full copies?
//     A player scrubs forward and backward through a trace like a debugger.
//     Copying the union-find parent array or the Prim frontier at every step
//     trades memory for the guarantee that no later mutation can rewrite an
//     earlier step.
//
// Builders Provided
//
//   - BuildKruskalTrace(n int, edges []core.Edge) Trace
//
//   - Strategy: stable-sort edges by weight, scan them with a dsu.DisjointSet,
//     emit EXAMINING before and SELECTED/REJECTED after every decision, stop
//     once n-1 edges are accepted.
//
//   - Complexity: O(M log M + M·α(N)) time.
//
//   - BuildPrimTrace(n int, edges []core.Edge) Trace
//
//   - Strategy: grow a tree from node 1. Each round picks the unvisited node
//     with the smallest finite distance by linear scan (O(N) per round, no
//     heap), emits SELECTED_NODE, then one UPDATE_DIST per improved neighbor.
//
//   - Complexity: O(N² + M log M) time.
//
// Both builders share one edge table: core.SortEdges assigns ids 1..M by a
// stable ascending-weight sort, so an edge has the same id in both traces.
//
// Contract
//
//	Every Trace satisfies:
//
//	- Steps is empty iff the input has no nodes or no edges.
//	- Steps[0].Status == StatusInitial, Steps[last].Status == StatusFinal.
//	- No two Steps share slice or pointer storage.
//	- Every EdgeInfo.ID is present in SortedEdges.
//	- The final MSTEdges form a forest.
//
//	Trace.Validate checks all of it and reports violations with wrapped
//	sentinels (ErrContractViolation, ErrUnknownEdge, ErrAliasedSnapshot,
//	ErrCycle).
//
// Disconnected graphs are not errors. Kruskal's FINAL step holds the partial
// forest; Prim's FINAL step leaves the unreachable nodes at dist=+Inf,
// visited=false. Both logs say so.
//
// Distances
//
//	Distance is a float64 whose +Inf value (Unreachable) renders as
//	"unreachable" in String, JSON and YAML.
//
// Dispatch
//
//	Compute(g, DefaultOptions(WithMethod(MethodPrim))) picks a builder by name.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal

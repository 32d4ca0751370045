// Package core provides the immutable weighted graph that every MST trace is
// computed from, together with the text format used to load it.
//
// The Graph G = (V,E) is small:
//
//   - Nodes are the integers 1..N (index 0 is never a node).
//   - Edges are an ordered list of Edge{U, V, Weight}; input order matters,
//     because it breaks ties when edges are sorted by weight.
//   - Parallel edges and self-loops are accepted. Neither can ever enter a
//     spanning tree, and both MST algorithms reject them on their own.
//   - A Graph never changes after NewGraph/Parse returns; every accessor that
//     exposes a slice returns a fresh copy.
//
// Why a dedicated type instead of a general graph library?
//
//   - Traces refer to edges by a numeric ID that is stable between Kruskal and
//     Prim. That ID is defined here, by SortEdges, and nowhere else.
//   - The trace builders assume 1 ≤ u,v ≤ N. NewGraph is the single place where
//     that precondition is enforced.
//
// Sorting:
//
//	SortEdges(edges) []IndexedEdge
//	    Stable sort by ascending Weight; IDs 1..M follow the sorted order, so
//	    equal weights keep their relative input order.
//	    Complexity: O(M log M) time, O(M) space.
//
// Text format:
//
//	N M
//	u v weight
//	...
//
// The first non-blank line carries the node count N and the declared edge
// count M (informational only, never checked). Each following line is one
// edge. Parse filters malformed lines by default (non-numeric fields, missing
// fields, NaN weights, endpoints outside 1..N) and counts them in
// Graph.Skipped; WithStrict turns the first such line into ErrMalformedLine.
// Format writes the same format back.
//
// Errors:
//
//	ErrInvalidNodeCount - N is missing, non-integer or < 1.
//	ErrMissingHeader    - the input holds no non-blank line.
//	ErrMalformedLine    - strict parsing met a line it would otherwise skip.
//	ErrEndpointRange    - NewGraph received an edge outside 1..N.
//	ErrBadWeight        - NewGraph received a NaN or infinite weight.
package core

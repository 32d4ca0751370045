package core

import (
	"sort"
)

// SortEdges returns the edges ordered by ascending weight and numbered 1..M.
//
// Steps:
//  1. Copy edges so the caller's slice is never reordered.
//  2. sort.SliceStable by Weight: equal weights keep their input order, which
//     makes IDs reproducible across runs and identical for Kruskal and Prim.
//  3. Assign IDs in sorted order, starting at 1.
//
// A nil or empty input yields an empty, non-nil slice.
// Complexity: O(M log M) time, O(M) space.
func SortEdges(edges []Edge) []IndexedEdge {
	sorted := make([]IndexedEdge, len(edges))
	for i, e := range edges {
		sorted[i] = IndexedEdge{Edge: e}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	for i := range sorted {
		sorted[i].ID = i + 1
	}

	return sorted
}

// SortedEdges is SortEdges applied to g's edges.
func (g *Graph) SortedEdges() []IndexedEdge {
	if g == nil {
		return []IndexedEdge{}
	}

	return SortEdges(g.edges)
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []IndexedEdge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}

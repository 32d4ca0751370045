// Package dsu provides the disjoint-set (union-find) structure behind the
// Kruskal trace builder.
//
// What & Why
//
//   - A DisjointSet tracks a partition of the nodes 1..n into trees. Each tree
//     is a set; its root is the set's canonical representative.
//   - Kruskal asks one question per edge: are both endpoints already in the
//     same tree? Union answers it and merges the trees when they are not.
//
// Layout
//
//	parent[0..n], rank[0..n]
//	index 0 is an unused sentinel so that node i lives at index i.
//
// Operations
//
//   - New(n): n+1 singletons, every rank 0.
//   - Find(i): root of i, with full path compression. The parent array
//     changes; the partition never does.
//   - Union(i, j): union by rank. The lower-rank root goes under the
//     higher-rank root; on a tie j's root goes under i's root and i's root
//     gains one rank. Returns false, without touching anything, when i and j
//     already share a root (the cycle signal).
//   - Snapshot(): a copy of parent that may be kept forever.
//
// Complexity: Find and Union run in amortized O(α(n)); Snapshot is O(n).
//
// A DisjointSet is not safe for concurrent use; the trace builder owns its
// instance for the duration of one build.
package dsu

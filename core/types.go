// Package core defines the Graph, Edge and IndexedEdge types shared by the
// trace builders, the renderers and the outer surfaces.
//
// This file declares the types, sentinel errors and the NewGraph constructor.
package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for graph construction and parsing.
var (
	// ErrInvalidNodeCount indicates that N is missing, not an integer, or < 1.
	ErrInvalidNodeCount = errors.New("core: invalid number of nodes")

	// ErrMissingHeader indicates that the input contained no header line.
	ErrMissingHeader = errors.New("core: missing header line")

	// ErrMalformedLine indicates that strict parsing met an unusable edge line.
	ErrMalformedLine = errors.New("core: malformed edge line")

	// ErrEndpointRange indicates an edge endpoint outside 1..N.
	ErrEndpointRange = errors.New("core: edge endpoint out of range")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")
)

// Edge is an undirected, weighted connection between two 1-indexed nodes.
type Edge struct {
	// U is one endpoint (1..N).
	U int `json:"u" yaml:"u"`

	// V is the other endpoint (1..N). U == V is a self-loop.
	V int `json:"v" yaml:"v"`

	// Weight is the edge cost. Any finite real number.
	Weight float64 `json:"weight" yaml:"weight"`
}

// String renders the edge as "(u, v, w)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d, %g)", e.U, e.V, e.Weight)
}

// Connects reports whether e joins a and b, in either orientation.
func (e Edge) Connects(a, b int) bool {
	return (e.U == a && e.V == b) || (e.U == b && e.V == a)
}

// IndexedEdge is an Edge annotated with its position in the ascending-weight
// order. ID is the join key between a trace and any edge table.
type IndexedEdge struct {
	// ID is 1-based and unique within one SortEdges result.
	ID int `json:"id" yaml:"id"`

	Edge `yaml:",inline"`
}

// GraphOption configures a Graph before validation.
type GraphOption func(g *Graph)

// WithDeclaredEdges records the edge count announced by a header line.
// It is informational only and never compared with len(edges).
func WithDeclaredEdges(m int) GraphOption {
	return func(g *Graph) { g.declared = m }
}

// withSkipped records how many input lines the parser filtered out.
func withSkipped(n int) GraphOption {
	return func(g *Graph) { g.skipped = n }
}

// Graph is an immutable node count plus an ordered edge list.
//
// The zero value is an empty graph (N = 0, no edges); both trace builders
// return an empty trace for it.
type Graph struct {
	n        int    // node count, nodes are 1..n
	edges    []Edge // input order preserved
	declared int    // M from the header, -1 when unknown
	skipped  int    // filtered input lines
}

// NewGraph validates edges against n and returns an immutable Graph.
//
// Steps:
//  1. n must be ≥ 1, else ErrInvalidNodeCount.
//  2. Every edge must satisfy 1 ≤ U,V ≤ n (ErrEndpointRange) and carry a
//     finite weight (ErrBadWeight). The error names the offending index.
//  3. The edge slice is copied; later changes by the caller are not observed.
//
// Complexity: O(M) time, O(M) space.
func NewGraph(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrInvalidNodeCount)
	}
	for i, e := range edges {
		if e.U < 1 || e.U > n || e.V < 1 || e.V > n {
			return nil, fmt.Errorf("NewGraph: edge %d %s with n=%d: %w", i, e, n, ErrEndpointRange)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("NewGraph: edge %d %s: %w", i, e, ErrBadWeight)
		}
	}

	g := &Graph{
		n:        n,
		edges:    append([]Edge(nil), edges...),
		declared: -1,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// N returns the node count.
func (g *Graph) N() int {
	if g == nil {
		return 0
	}

	return g.n
}

// M returns the actual number of edges.
func (g *Graph) M() int {
	if g == nil {
		return 0
	}

	return len(g.edges)
}

// DeclaredEdges returns the header edge count, or -1 when none was given.
func (g *Graph) DeclaredEdges() int {
	if g == nil {
		return -1
	}

	return g.declared
}

// Skipped returns how many edge lines the parser filtered out.
func (g *Graph) Skipped() int {
	if g == nil {
		return 0
	}

	return g.skipped
}

// Edges returns a copy of the edge list in input order.
// Complexity: O(M).
func (g *Graph) Edges() []Edge {
	if g == nil {
		return nil
	}

	return append([]Edge(nil), g.edges...)
}

// Empty reports whether the graph has no nodes or no edges, the case in
// which no trace is produced.
func (g *Graph) Empty() bool {
	return g.N() <= 0 || g.M() == 0
}

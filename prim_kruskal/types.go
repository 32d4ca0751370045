// Package prim_kruskal defines configuration options and sentinel errors for
// MST trace computation. It supports selecting between the Kruskal and Prim
// trace builders via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mstviz/core"
)

// ErrNilGraph indicates that Compute received a nil graph.
var ErrNilGraph = errors.New("prim_kruskal: nil graph")

// ErrUnknownMethod indicates an MST method name other than MethodKruskal or MethodPrim.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// ErrContractViolation indicates that a Trace breaks the step-sequence contract
// (first step INITIAL, last step FINAL, non-empty iff edges exist).
var ErrContractViolation = errors.New("prim_kruskal: trace contract violated")

// ErrUnknownEdge indicates that a step references an edge id missing from
// the trace's sorted edge table, or an edge that does not match it.
var ErrUnknownEdge = errors.New("prim_kruskal: step references unknown edge")

// ErrAliasedSnapshot indicates that two steps share snapshot storage.
var ErrAliasedSnapshot = errors.New("prim_kruskal: snapshot shared between steps")

// ErrCycle indicates that the accepted edges of the final step contain a cycle.
var ErrCycle = errors.New("prim_kruskal: accepted edges contain a cycle")

// MethodPrim selects Prim's algorithm (grow from node 1 with a linear-scan frontier).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Methods lists the supported method names in a stable order.
func Methods() []string {
	return []string{MethodKruskal, MethodPrim}
}

// ParseMethod normalizes a method name (case-insensitive, surrounding space
// ignored) and rejects unknown ones with ErrUnknownMethod.
func ParseMethod(s string) (string, error) {
	switch m := strings.ToLower(strings.TrimSpace(s)); m {
	case MethodKruskal, MethodPrim:
		return m, nil
	default:
		return "", fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
	}
}

// MSTOptions configures which trace builder to run.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Prim is always rooted at node 1.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal, then applies opts in order.
//
// Complexity: O(len(opts)).
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{Method: MethodKruskal}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the trace builder based on opts.Method.
//
//	– If opts.Method == MethodKruskal: BuildKruskalTrace(g.N(), g.Edges()).
//	– If opts.Method == MethodPrim:    BuildPrimTrace(g.N(), g.Edges()).
//	– Otherwise:                        ErrUnknownMethod.
//
// Returns:
//
//	Trace: the full, immutable step sequence (empty when g has no edges).
//	error: ErrNilGraph or ErrUnknownMethod; the builders themselves never fail.
func Compute(g *core.Graph, opts MSTOptions) (Trace, error) {
	if g == nil {
		return Trace{}, ErrNilGraph
	}

	// Dispatch by method name
	switch opts.Method {
	case MethodKruskal:
		return BuildKruskalTrace(g.N(), g.Edges()), nil
	case MethodPrim:
		return BuildPrimTrace(g.N(), g.Edges()), nil
	default:
		// Unknown method name
		return Trace{}, fmt.Errorf("Compute: method %q: %w", opts.Method, ErrUnknownMethod)
	}
}

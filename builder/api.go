// SPDX-License-Identifier: MIT
// Package: mstviz/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order over one draft, validates once through core.NewGraph.
//   - Functional options resolve into a builderConfig passed by value.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstviz/core"
)

// Constructor adds nodes and edges to a draft using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit edges in a stable, documented order.
//   - Draw weights only through cfg.weight().
type Constructor func(d *draft, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the validated graph.
//
// Constructors share node ids: Path(4) and Cycle(4) composed together place
// both shapes on nodes 1..4. The resulting N is the largest node count any
// constructor asked for.
//
// Errors:
//   - ErrConstructFailed for a nil constructor or when no constructor is given.
//   - Constructor errors wrapped with "BuildGraph: %w"; branch with errors.Is
//     against ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor + O(M) validation.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if len(cons) == 0 {
		return nil, fmt.Errorf("BuildGraph: no constructors: %w", ErrConstructFailed)
	}

	cfg := newBuilderConfig(bopts...)
	d := &draft{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.NewGraph(d.n, d.edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// draft is a graph under construction.
type draft struct {
	n     int
	edges []core.Edge
}

// grow makes sure nodes 1..n exist.
func (d *draft) grow(n int) {
	if n > d.n {
		d.n = n
	}
}

// connect appends the undirected edge u-v with the next configured weight.
func (d *draft) connect(cfg builderConfig, u, v int) {
	d.edges = append(d.edges, core.Edge{U: u, V: v, Weight: cfg.weight()})
}

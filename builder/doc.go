// Package builder generates weighted test and demo graphs for the MST trace
// builders, in the same functional-options style used across mstviz.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...) resolves options once, runs constructors in
//     order over a shared node set 1..N and returns an immutable *core.Graph.
//   - Topologies (Constructor implementations):
//     – Path, Cycle, Star, Wheel, Complete, Grid: fixed shapes.
//     – RandomSparse(n, p): each pair {i,j} with probability p.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:     constant DefaultEdgeWeight.
//     – ConstantWeightFn:    fixed user-provided value.
//     – UniformWeightFn:     uniform ∼U[min,max).
//     – NormalWeightFn:      Gaussian ∼N(mean,stddev), clipped at 0.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//   - Options: WithSeed, WithRand, WithWeightFn, WithConstantWeight,
//     WithUniformWeight, WithNormalWeight, WithExponentialWeight,
//     WithIntegerWeights.
//
// Composition overlays: BuildGraph(nil, Path(6), RandomSparse(6, 0.3)) gives
// a connected random graph, because both constructors draw on nodes 1..6 and
// the path guarantees a spanning chain. Parallel edges are kept; they are
// meaningful input for the trace builders.
//
// Guarantees:
//
//   - Deterministic: same options, seed and constructor order ⇒ identical graph.
//   - Option constructors panic on meaningless input (programmer error);
//     constructors return wrapped sentinel errors and never panic.
//
// Integer weights (WithIntegerWeights) produce ties on purpose: they exercise
// the stable tie-break of core.SortEdges.
package builder

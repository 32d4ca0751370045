// SPDX-License-Identifier: MIT
// Package: mstviz/builder
//
// impl_random_sparse.go: RandomSparse(n, p).
//
// Canonical model:
//   • Erdős–Rényi-like: include each unordered pair {i,j}, i<j, independently
//     with probability p. Trials run i ascending, then j ascending.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • The RNG is required only for 0 < p < 1 (else ErrNeedRandSource);
//     p = 0 adds no edge, p = 1 adds every pair.
//   • A weight is drawn right after each successful trial, so the edge set
//     and the weights come from one deterministic RNG stream.

package builder

import "fmt"

// RandomSparse returns a Constructor that samples a random graph over nodes
// 1..n with edge probability p. The result may be disconnected; compose with
// Path(n) for a connected one.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		d.grow(n)
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				switch {
				case p == MinProbability:
					continue
				case p == MaxProbability:
					d.connect(cfg, i, j)
				case cfg.rng.Float64() < p:
					d.connect(cfg, i, j)
				}
			}
		}

		return nil
	}
}

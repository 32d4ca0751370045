// SPDX-License-Identifier: MIT
// Package: mstviz/builder
//
// impl_complete.go: Complete(n) and Grid(rows, cols).

package builder

import "fmt"

// Complete returns a Constructor for K_n: every pair i<j once, i ascending
// then j ascending. n = 1 yields a single node and no edges.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		d.grow(n)
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				d.connect(cfg, i, j)
			}
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols 4-neighbourhood grid. Cell
// (r, c), 0-based, is node r*cols + c + 1. For each cell in row-major order
// the right edge is emitted before the down edge.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		node := func(r, c int) int { return r*cols + c + 1 }

		d.grow(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					d.connect(cfg, node(r, c), node(r, c+1))
				}
				if r+1 < rows {
					d.connect(cfg, node(r, c), node(r+1, c))
				}
			}
		}

		return nil
	}
}

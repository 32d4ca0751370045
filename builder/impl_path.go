// SPDX-License-Identifier: MIT
// Package: mstviz/builder
//
// impl_path.go: Path(n) and Cycle(n).
//
// Contract:
//   • Path:  n ≥ 2, edges (1,2), (2,3), …, (n-1,n) in that order.
//   • Cycle: n ≥ 3, the path plus the closing edge (n,1).

package builder

// Path returns a Constructor for the simple path P_n over nodes 1..n.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		d.grow(n)
		for i := 1; i < n; i++ {
			d.connect(cfg, i, i+1)
		}

		return nil
	}
}

// Cycle returns a Constructor for the simple cycle C_n over nodes 1..n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		d.grow(n)
		for i := 1; i < n; i++ {
			d.connect(cfg, i, i+1)
		}
		d.connect(cfg, n, 1)

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: mstviz/builder
//
// impl_star.go: Star(n) and Wheel(n).
//
// Canonical definitions:
//   • Star:  hub 1 with leaves 2..n (n ≥ 2), spokes in leaf order.
//   • Wheel: rim cycle over 1..n-1 plus hub n (n ≥ 4). Rim edges first, in
//     Cycle(n-1) order, then spokes (n,1), …, (n,n-1).

package builder

// Star returns a Constructor for the star S_n with hub 1.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		d.grow(n)
		for leaf := 2; leaf <= n; leaf++ {
			d.connect(cfg, 1, leaf)
		}

		return nil
	}
}

// Wheel returns a Constructor for the wheel W_n = C_{n-1} + hub n.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		if err := Cycle(n-1)(d, cfg); err != nil {
			return err
		}
		d.grow(n)
		for rim := 1; rim < n; rim++ {
			d.connect(cfg, n, rim)
		}

		return nil
	}
}

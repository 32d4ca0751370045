package dsu

// DisjointSet is a fixed-size union-find over the elements 0..n.
type DisjointSet struct {
	parent []int
	rank   []int
}

// New returns a DisjointSet holding n+1 singleton sets {0}, {1}, ..., {n}.
// A negative n is treated as 0.
// Complexity: O(n).
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n+1),
		rank:   make([]int, n+1),
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns n, the largest valid element.
func (d *DisjointSet) Len() int {
	return len(d.parent) - 1
}

// Valid reports whether i is an element of d, i.e. 0 ≤ i ≤ n.
func (d *DisjointSet) Valid(i int) bool {
	return i >= 0 && i < len(d.parent)
}

// Find returns the root of i's set and points every node on the walked path
// directly at that root.
//
// i must satisfy Valid(i); an out-of-range element panics with the usual
// index-out-of-range runtime error.
//
// Steps:
//  1. Walk parent links up to the root.
//  2. Walk the path again, re-pointing each node to the root.
//
// The resulting parent array equals that of the recursive formulation, but
// the walk needs no stack.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Find(i int) int {
	root := i
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for i != root {
		next := d.parent[i]
		d.parent[i] = root
		i = next
	}

	return root
}

// Union merges the sets of i and j and reports whether a merge happened.
//
// When both elements already share a root the structure is left exactly as
// Find left it and false is returned.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Union(i, j int) bool {
	rootI := d.Find(i)
	rootJ := d.Find(j)
	if rootI == rootJ {
		return false
	}

	switch {
	case d.rank[rootI] < d.rank[rootJ]:
		d.parent[rootI] = rootJ
	case d.rank[rootI] > d.rank[rootJ]:
		d.parent[rootJ] = rootI
	default:
		d.parent[rootJ] = rootI
		d.rank[rootI]++
	}

	return true
}

// Connected reports whether i and j share a set.
func (d *DisjointSet) Connected(i, j int) bool {
	return d.Find(i) == d.Find(j)
}

// Sets returns the number of disjoint sets among the elements 1..n.
// The sentinel 0 is not counted. Sets only reads the structure.
// Complexity: O(n).
func (d *DisjointSet) Sets() int {
	count := 0
	for i := 1; i < len(d.parent); i++ {
		if d.parent[i] == i {
			count++
		}
	}

	return count
}

// Snapshot returns a copy of the parent array. Later Find or Union calls
// never change a returned snapshot.
// Complexity: O(n).
func (d *DisjointSet) Snapshot() []int {
	return append([]int(nil), d.parent...)
}

// Ranks returns a copy of the rank array.
// Complexity: O(n).
func (d *DisjointSet) Ranks() []int {
	return append([]int(nil), d.rank...)
}

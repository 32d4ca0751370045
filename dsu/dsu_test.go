package dsu_test

import (
	"testing"

	"github.com/katalvlaran/mstviz/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Singletons(t *testing.T) {
	d := dsu.New(4)
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, d.Snapshot())
	assert.Equal(t, []int{0, 0, 0, 0, 0}, d.Ranks())
	assert.Equal(t, 4, d.Sets())

	for i := 0; i <= 4; i++ {
		assert.Equal(t, i, d.Find(i))
	}
}

func TestNew_NonPositive(t *testing.T) {
	d := dsu.New(-3)
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, []int{0}, d.Snapshot())
	assert.Zero(t, d.Sets())
}

func TestValid(t *testing.T) {
	d := dsu.New(3)
	assert.True(t, d.Valid(0))
	assert.True(t, d.Valid(3))
	assert.False(t, d.Valid(4))
	assert.False(t, d.Valid(-1))
	assert.Panics(t, func() { d.Find(4) })
}

// TestUnion_ByRank pins the exact parent/rank layout after each merge.
func TestUnion_ByRank(t *testing.T) {
	d := dsu.New(4)

	// Tie: 2 goes under 1, rank[1] becomes 1.
	require.True(t, d.Union(1, 2))
	assert.Equal(t, []int{0, 1, 1, 3, 4}, d.Snapshot())
	assert.Equal(t, []int{0, 1, 0, 0, 0}, d.Ranks())

	// Lower rank root 3 goes under higher rank root 1, even as first argument.
	require.True(t, d.Union(3, 2))
	assert.Equal(t, []int{0, 1, 1, 1, 4}, d.Snapshot())
	assert.Equal(t, []int{0, 1, 0, 0, 0}, d.Ranks())

	// Higher rank root 1 absorbs 4.
	require.True(t, d.Union(1, 4))
	assert.Equal(t, []int{0, 1, 1, 1, 1}, d.Snapshot())
	assert.Equal(t, 1, d.Sets())
}

// TestUnion_SameSet verifies the cycle signal leaves the structure untouched.
func TestUnion_SameSet(t *testing.T) {
	d := dsu.New(3)
	require.True(t, d.Union(1, 2))
	require.True(t, d.Union(2, 3))
	before := d.Snapshot()
	ranks := d.Ranks()

	assert.False(t, d.Union(3, 1))
	assert.False(t, d.Union(2, 2))
	assert.Equal(t, before, d.Snapshot())
	assert.Equal(t, ranks, d.Ranks())
}

// TestFind_PathCompression builds a chain by hand-picked unions and checks
// that one Find flattens it without changing the partition.
func TestFind_PathCompression(t *testing.T) {
	d := dsu.New(8)
	// Two rank-1 trees {1,2} and {3,4}, merged: 3 under 1, rank[1]=2.
	d.Union(1, 2)
	d.Union(3, 4)
	d.Union(1, 3)
	// Two more rank-1 trees merged into a rank-2 tree rooted at 5.
	d.Union(5, 6)
	d.Union(7, 8)
	d.Union(5, 7)
	// Equal rank 2: 5 goes under 1, so 8 -> 7 -> 5 -> 1.
	d.Union(1, 5)
	require.Equal(t, []int{0, 1, 1, 1, 3, 1, 5, 5, 7}, d.Snapshot())

	assert.Equal(t, 1, d.Find(8))
	assert.Equal(t, []int{0, 1, 1, 1, 3, 1, 5, 1, 1}, d.Snapshot())
	assert.Equal(t, 1, d.Sets())
	for i := 1; i <= 8; i++ {
		assert.True(t, d.Connected(1, i))
	}
}

// TestSnapshot_Isolation verifies snapshots are independent copies.
func TestSnapshot_Isolation(t *testing.T) {
	d := dsu.New(3)
	snap := d.Snapshot()
	d.Union(1, 2)
	assert.Equal(t, []int{0, 1, 2, 3}, snap)

	snap[1] = 99
	assert.Equal(t, 1, d.Find(1))
}

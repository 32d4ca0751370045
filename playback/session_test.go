package playback_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstviz/core"
	"github.com/katalvlaran/mstviz/playback"
	"github.com/katalvlaran/mstviz/prim_kruskal"
)

// squareTrace is the 8-step Kruskal trace of the weighted 4-cycle.
func squareTrace() prim_kruskal.Trace {
	return prim_kruskal.BuildKruskalTrace(4, []core.Edge{
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 2},
		{U: 3, V: 4, Weight: 3},
		{U: 1, V: 4, Weight: 4},
	})
}

func TestSession_Navigation(t *testing.T) {
	s := playback.New(squareTrace())
	require.Equal(t, 8, s.Len())
	assert.NotEqual(t, uuid.Nil, s.ID())

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, prim_kruskal.StatusInitial, cur.Status)
	assert.Equal(t, 0, s.Position())
	assert.True(t, s.AtStart())
	assert.False(t, s.AtEnd())

	// Retreat at the start is a no-op.
	step, ok := s.Retreat()
	assert.False(t, ok)
	assert.Equal(t, prim_kruskal.StatusInitial, step.Status)

	step, ok = s.Advance()
	require.True(t, ok)
	assert.Equal(t, prim_kruskal.StatusExamining, step.Status)
	assert.Equal(t, 1, s.Position())

	for i := 0; i < 6; i++ {
		_, ok = s.Advance()
		require.True(t, ok)
	}
	assert.True(t, s.AtEnd())
	step, ok = s.Advance()
	assert.False(t, ok)
	assert.Equal(t, prim_kruskal.StatusFinal, step.Status)
	assert.Equal(t, 7, s.Position())

	step, ok = s.Retreat()
	require.True(t, ok)
	assert.Equal(t, prim_kruskal.StatusSelected, step.Status)

	step, ok = s.Reset()
	require.True(t, ok)
	assert.Equal(t, prim_kruskal.StatusInitial, step.Status)
	assert.Equal(t, 0, s.Position())
}

func TestSession_Seek(t *testing.T) {
	s := playback.New(squareTrace())

	step, err := s.Seek(6)
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.StatusSelected, step.Status)
	assert.Equal(t, 6, s.Position())

	for _, i := range []int{-1, 8, 100} {
		_, err = s.Seek(i)
		assert.ErrorIs(t, err, playback.ErrOutOfRange)
		assert.Equal(t, 6, s.Position(), "a failed seek leaves the cursor")
	}
}

func TestSession_Empty(t *testing.T) {
	s := playback.New(prim_kruskal.BuildPrimTrace(3, nil))

	assert.Equal(t, -1, s.Position())
	assert.True(t, s.AtStart())
	assert.True(t, s.AtEnd())

	_, ok := s.Current()
	assert.False(t, ok)
	_, ok = s.Advance()
	assert.False(t, ok)
	_, ok = s.Retreat()
	assert.False(t, ok)
	_, ok = s.Reset()
	assert.False(t, ok)
	_, err := s.Seek(0)
	assert.ErrorIs(t, err, playback.ErrEmptyTrace)
}

// TestSession_IDsDiffer verifies each session gets its own identifier.
func TestSession_IDsDiffer(t *testing.T) {
	tr := squareTrace()
	assert.NotEqual(t, playback.New(tr).ID(), playback.New(tr).ID())
}

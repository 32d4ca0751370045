package playback_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstviz/playback"
	"github.com/katalvlaran/mstviz/prim_kruskal"
)

func TestClampInterval(t *testing.T) {
	assert.Equal(t, playback.MinInterval, playback.ClampInterval(0))
	assert.Equal(t, playback.MinInterval, playback.ClampInterval(-time.Second))
	assert.Equal(t, playback.MaxInterval, playback.ClampInterval(time.Minute))
	assert.Equal(t, 300*time.Millisecond, playback.ClampInterval(300*time.Millisecond))

	p := playback.NewPlayer(playback.New(squareTrace()), time.Hour)
	assert.Equal(t, playback.MaxInterval, p.Interval)
	p.SetInterval(time.Millisecond)
	assert.Equal(t, playback.MinInterval, p.Interval)
}

// TestPlayer_RunToEnd plays the whole trace at the fastest speed.
func TestPlayer_RunToEnd(t *testing.T) {
	s := playback.New(squareTrace())
	p := playback.NewPlayer(s, playback.MinInterval)

	var seen []prim_kruskal.Status
	err := p.Run(context.Background(), func(step prim_kruskal.Step) {
		seen = append(seen, step.Status)
	})
	require.NoError(t, err)

	assert.Len(t, seen, 7, "every step after INITIAL is delivered once")
	assert.Equal(t, prim_kruskal.StatusFinal, seen[len(seen)-1])
	assert.True(t, s.AtEnd())

	// Already at the end: returns at once without callbacks.
	called := false
	require.NoError(t, p.Run(context.Background(), func(prim_kruskal.Step) { called = true }))
	assert.False(t, called)
}

func TestPlayer_Cancel(t *testing.T) {
	s := playback.New(squareTrace())
	p := playback.NewPlayer(s, playback.MaxInterval)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := p.Run(ctx, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 0, s.Position())
}

func TestPlayer_Empty(t *testing.T) {
	p := playback.NewPlayer(playback.New(prim_kruskal.Trace{}), 0)
	assert.ErrorIs(t, p.Run(context.Background(), nil), playback.ErrEmptyTrace)

	var nilSession playback.Player
	assert.ErrorIs(t, nilSession.Run(context.Background(), nil), playback.ErrEmptyTrace)
}

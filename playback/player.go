package playback

import (
	"context"
	"time"

	"github.com/katalvlaran/mstviz/prim_kruskal"
)

// Interval bounds and default for automatic playback.
const (
	MinInterval     = 50 * time.Millisecond
	MaxInterval     = 5 * time.Second
	DefaultInterval = 500 * time.Millisecond
)

// ClampInterval limits d to [MinInterval, MaxInterval].
func ClampInterval(d time.Duration) time.Duration {
	switch {
	case d < MinInterval:
		return MinInterval
	case d > MaxInterval:
		return MaxInterval
	default:
		return d
	}
}

// Player advances a Session automatically.
type Player struct {
	Session  *Session
	Interval time.Duration
}

// NewPlayer returns a Player over s with a clamped interval.
func NewPlayer(s *Session, interval time.Duration) *Player {
	return &Player{Session: s, Interval: ClampInterval(interval)}
}

// SetInterval changes the tick interval, clamped to the allowed range.
// It takes effect on the next Run.
func (p *Player) SetInterval(d time.Duration) {
	p.Interval = ClampInterval(d)
}

// Run advances the session once per tick and calls fn with every new step.
//
// It returns nil when the last step has been delivered (immediately, if the
// cursor is already there), ctx.Err() on cancellation, or ErrEmptyTrace.
// The session must not be used by other goroutines while Run is active.
func (p *Player) Run(ctx context.Context, fn func(prim_kruskal.Step)) error {
	if p.Session == nil || p.Session.Len() == 0 {
		return ErrEmptyTrace
	}

	ticker := time.NewTicker(ClampInterval(p.Interval))
	defer ticker.Stop()

	for !p.Session.AtEnd() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if step, ok := p.Session.Advance(); ok && fn != nil {
				fn(step)
			}
		}
	}

	return nil
}

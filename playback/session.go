package playback

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/mstviz/prim_kruskal"
)

// ErrOutOfRange indicates a Seek outside 0..Len()-1.
var ErrOutOfRange = errors.New("playback: step index out of range")

// ErrEmptyTrace indicates an operation that needs at least one step.
var ErrEmptyTrace = errors.New("playback: trace has no steps")

// Session is a cursor over the steps of one trace.
//
// The cursor starts on step 0 (INITIAL). For an empty trace Position is -1
// and every move reports false.
type Session struct {
	id    uuid.UUID
	trace prim_kruskal.Trace
	pos   int
}

// New returns a Session positioned on the first step of tr.
func New(tr prim_kruskal.Trace) *Session {
	s := &Session{id: uuid.New(), trace: tr}
	s.pos = s.first()

	return s
}

func (s *Session) first() int {
	if s.trace.Empty() {
		return -1
	}

	return 0
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Trace returns the trace being replayed.
func (s *Session) Trace() prim_kruskal.Trace { return s.trace }

// Len returns the number of steps.
func (s *Session) Len() int { return s.trace.Len() }

// Position returns the index of the current step, or -1 for an empty trace.
func (s *Session) Position() int { return s.pos }

// AtStart reports whether no earlier step exists.
func (s *Session) AtStart() bool { return s.pos <= 0 }

// AtEnd reports whether no later step exists.
func (s *Session) AtEnd() bool { return s.pos >= s.trace.Len()-1 }

// Current returns the step under the cursor.
func (s *Session) Current() (prim_kruskal.Step, bool) {
	return s.trace.At(s.pos)
}

// Advance moves one step forward. At the last step the cursor stays put and
// ok is false.
func (s *Session) Advance() (step prim_kruskal.Step, ok bool) {
	if s.AtEnd() {
		step, _ = s.Current()
		return step, false
	}
	s.pos++

	return s.Current()
}

// Retreat moves one step back. At the first step the cursor stays put and
// ok is false.
func (s *Session) Retreat() (step prim_kruskal.Step, ok bool) {
	if s.AtStart() {
		step, _ = s.Current()
		return step, false
	}
	s.pos--

	return s.Current()
}

// Reset moves the cursor back to the INITIAL step.
func (s *Session) Reset() (prim_kruskal.Step, bool) {
	s.pos = s.first()

	return s.Current()
}

// Seek moves the cursor to step i.
func (s *Session) Seek(i int) (prim_kruskal.Step, error) {
	if s.trace.Empty() {
		return prim_kruskal.Step{}, ErrEmptyTrace
	}
	if i < 0 || i >= s.trace.Len() {
		return prim_kruskal.Step{}, fmt.Errorf("Seek(%d) with %d steps: %w", i, s.trace.Len(), ErrOutOfRange)
	}
	s.pos = i
	step, _ := s.Current()

	return step, nil
}

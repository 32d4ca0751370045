// Package playback steps through a prim_kruskal.Trace like a debugger.
//
// A Session is a cursor over one immutable trace: Advance, Retreat, Reset
// and Seek move it, Current reads it. Sessions are cheap, carry a uuid for
// correlation in logs, and are owned by a single goroutine.
//
// A Player drives a Session on a ticker, one step per interval, until the
// last step or until its context is cancelled. Intervals are clamped to
// [MinInterval, MaxInterval].
package playback

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package debounce rate-limits free-text query input.
// Implements: prd003-input (R1-R3).
package debounce

import (
	"strings"
	"sync"
	"time"
)

// DefaultWindow is the quiescence window applied when none is configured.
const DefaultWindow = 300 * time.Millisecond

// Normalize returns the canonical form of a raw query: trimmed and
// lowercased. Every emission passes through this, matching the
// pre-lowered search blobs the filter compares against.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Input collapses a stream of keystrokes into at most one normalized
// query emission per quiescence window. Each keystroke cancels and
// restarts a single pending timer, so a superseded value never fires;
// the last keystroke always eventually produces exactly one emission.
type Input struct {
	mu      sync.Mutex
	window  time.Duration
	emit    func(string)
	timer   *time.Timer
	pending string
	gen     uint64
}

// NewInput returns an Input that calls emit with the normalized query
// once the window elapses without further keystrokes. A non-positive
// window uses DefaultWindow. emit may be called from a timer goroutine.
func NewInput(window time.Duration, emit func(string)) *Input {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Input{window: window, emit: emit}
}

// Type records a keystroke. The raw value replaces any pending value
// and restarts the quiescence timer. At most one timer is pending at
// a time.
func (in *Input) Type(raw string) {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.pending = Normalize(raw)
	in.gen++
	gen := in.gen

	if in.timer != nil {
		in.timer.Stop()
	}
	in.timer = time.AfterFunc(in.window, func() { in.fire(gen) })
}

// fire emits the pending value unless a newer keystroke superseded it.
// The generation check covers the race where a timer goroutine has
// already started when Stop is called.
func (in *Input) fire(gen uint64) {
	in.mu.Lock()
	if gen != in.gen {
		in.mu.Unlock()
		return
	}
	q := in.pending
	in.timer = nil
	in.mu.Unlock()

	in.emit(q)
}

// Clear cancels any pending emission and emits the empty query
// immediately. The explicit clear affordance bypasses the window so
// the listing returns to the unfiltered state without waiting.
func (in *Input) Clear() {
	in.mu.Lock()
	in.gen++
	if in.timer != nil {
		in.timer.Stop()
		in.timer = nil
	}
	in.pending = ""
	in.mu.Unlock()

	in.emit("")
}

// Flush emits the pending value immediately, cancelling the timer.
// Used when the user submits explicitly (Enter) rather than pausing.
func (in *Input) Flush() {
	in.mu.Lock()
	in.gen++
	if in.timer != nil {
		in.timer.Stop()
		in.timer = nil
	}
	q := in.pending
	in.mu.Unlock()

	in.emit(q)
}

// Stop cancels any pending emission without emitting. Used on session
// teardown.
func (in *Input) Stop() {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.gen++
	if in.timer != nil {
		in.timer.Stop()
		in.timer = nil
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWindow = 40 * time.Millisecond

// recorder collects emissions on a buffered channel so tests can
// assert exact emission counts without races.
func recorder() (chan string, func(string)) {
	ch := make(chan string, 16)
	return ch, func(q string) { ch <- q }
}

// receive waits up to timeout for one emission.
func receive(t *testing.T, ch chan string, timeout time.Duration) (string, bool) {
	t.Helper()
	select {
	case q := <-ch:
		return q, true
	case <-time.After(timeout):
		return "", false
	}
}

func TestTypeSingleEmissionForRapidKeystrokes(t *testing.T) {
	ch, emit := recorder()
	in := NewInput(testWindow, emit)

	// Five keystrokes inside the quiescence window: exactly one
	// emission, carrying the final value.
	for _, raw := range []string{"W", "Wa", "Wav", "Wave", "Waves"} {
		in.Type(raw)
	}

	q, ok := receive(t, ch, 500*time.Millisecond)
	require.True(t, ok, "the last keystroke must eventually emit")
	assert.Equal(t, "waves", q)

	_, extra := receive(t, ch, 2*testWindow)
	assert.False(t, extra, "superseded keystrokes must not emit")
}

func TestTypeEmitsAgainAfterQuiescence(t *testing.T) {
	ch, emit := recorder()
	in := NewInput(testWindow, emit)

	in.Type("first")
	q, ok := receive(t, ch, 500*time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, "first", q)

	in.Type("second")
	q, ok = receive(t, ch, 500*time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, "second", q)
}

func TestTypeNormalizesEmission(t *testing.T) {
	ch, emit := recorder()
	in := NewInput(testWindow, emit)

	in.Type("  Coastal EROSION ")
	q, ok := receive(t, ch, 500*time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, "coastal erosion", q)
}

func TestClearEmitsImmediately(t *testing.T) {
	ch, emit := recorder()
	in := NewInput(testWindow, emit)

	in.Type("pending")
	in.Clear()

	// Clear bypasses the window: the empty emission is synchronous.
	q, ok := receive(t, ch, time.Millisecond)
	require.True(t, ok, "clear should emit without waiting")
	assert.Equal(t, "", q)

	_, extra := receive(t, ch, 2*testWindow)
	assert.False(t, extra, "the cancelled keystroke must not emit afterwards")
}

func TestFlushEmitsPendingImmediately(t *testing.T) {
	ch, emit := recorder()
	in := NewInput(testWindow, emit)

	in.Type("submit me")
	in.Flush()

	q, ok := receive(t, ch, time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, "submit me", q)

	_, extra := receive(t, ch, 2*testWindow)
	assert.False(t, extra)
}

func TestStopCancelsWithoutEmitting(t *testing.T) {
	ch, emit := recorder()
	in := NewInput(testWindow, emit)

	in.Type("doomed")
	in.Stop()

	_, got := receive(t, ch, 2*testWindow)
	assert.False(t, got, "stopped input must not emit")
}

func TestNewInputDefaultWindow(t *testing.T) {
	in := NewInput(0, func(string) {})
	assert.Equal(t, DefaultWindow, in.window)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Wave", "wave"},
		{"  spaced  ", "spaced"},
		{"MIXED Case Query", "mixed case query"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

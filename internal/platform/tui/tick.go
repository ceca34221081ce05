// Package tui provides the Bubble Tea front end for the runner.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the simulated time of one tick so a stalled terminal
// does not fling the course forward.
const maxFrameDelta = 100 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick. Loop tags the tick
// chain that produced it, so a chain left over from a previous game is
// ignored instead of doubling the rate.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopIDs atomic.Uint64

// nextLoopID returns a fresh tick chain id.
func nextLoopID() uint64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}

// frameClock turns tick timestamps into frame deltas.
type frameClock struct {
	last time.Time
}

// Advance returns the time since the previous tick. The first tick after a
// reset reports zero, which the game treats as one nominal frame.
func (c *frameClock) Advance(t time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	d := t.Sub(c.last)
	c.last = t
	switch {
	case d < 0:
		return 0
	case d > maxFrameDelta:
		return maxFrameDelta
	}
	return d
}

// Reset forgets the previous timestamp.
func (c *frameClock) Reset() {
	c.last = time.Time{}
}

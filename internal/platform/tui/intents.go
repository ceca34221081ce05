package tui

import (
	"time"

	"github.com/vovakirdan/thor-runner/internal/core"
)

// jumpHold is how long one jump key press keeps the jump intent held.
// Terminals report no key release, so auto-repeat refreshes the window
// while the key stays down.
const jumpHold = 150 * time.Millisecond

// intentTracker converts discrete key presses into held intents.
type intentTracker struct {
	hold      time.Duration
	jumpUntil time.Time
	attack    bool
}

func newIntentTracker(hold time.Duration) *intentTracker {
	return &intentTracker{hold: hold}
}

// PressJump opens or extends the jump hold window.
func (t *intentTracker) PressJump(now time.Time) {
	t.jumpUntil = now.Add(t.hold)
}

// PressAttack queues a one-tick attack pulse.
func (t *intentTracker) PressAttack() {
	t.attack = true
}

// Apply sets the intents held at time now. The attack pulse is consumed,
// so the next tick sees a released key and a new press is a fresh edge.
func (t *intentTracker) Apply(frame *core.InputFrame, now time.Time) {
	if now.Before(t.jumpUntil) {
		frame.Set(core.ActionJump)
	}
	if t.attack {
		frame.Set(core.ActionAttack)
		t.attack = false
	}
}

// Reset drops every held intent.
func (t *intentTracker) Reset() {
	t.jumpUntil = time.Time{}
	t.attack = false
}

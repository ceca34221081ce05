package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - held while the jump intent is active
	ActionAttack         // Z, X - held while the attack intent is active
	ActionConfirm        // Enter - start a session from the title screen
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart after game over or victory
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause
	ActionMute           // M - toggle sound effects
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionAttack:
		return "Attack"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionMute:
		return "Mute"
	default:
		return "Unknown"
	}
}

// InputFrame is the input sampled for one simulation tick.
// Jump and Attack are level-triggered intents (present while held); the rest
// are one-shot commands. Delta is the wall time since the previous tick.
type InputFrame struct {
	Actions map[Action]bool
	Delta   time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Delta = 0
}

// DeltaMs returns Delta in milliseconds.
func (f InputFrame) DeltaMs() float64 {
	return float64(f.Delta) / float64(time.Millisecond)
}

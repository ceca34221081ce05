package loop

import (
	"github.com/vovakirdan/thor-runner/internal/core"
	"github.com/vovakirdan/thor-runner/internal/games/runner"
)

// Autopilot plays a runner session with a simple reflex: strike ground
// enemies that come within reach and jump the ones it cannot strike in
// time. It restarts terminal sessions only when Restart is set.
type Autopilot struct {
	game *runner.Game

	// Reach is how far ahead of the player, in ticks of travel, an enemy
	// triggers a reaction.
	Reach float64

	attackHeld bool
}

// NewAutopilot creates a pilot for the given game.
func NewAutopilot(g *runner.Game) *Autopilot {
	return &Autopilot{game: g, Reach: 6}
}

// Next picks the intents for the coming frame.
func (a *Autopilot) Next(state core.GameState) core.InputFrame {
	f := core.NewInputFrame()

	switch state.Phase {
	case core.PhaseIdle:
		f.Set(core.ActionConfirm)
		return f
	case core.PhaseRunning:
	default:
		return f
	}

	p := a.game.Player()
	body := p.Bounds()
	reach := state.Speed * a.Reach

	// Release the attack key every other frame so the next press is an edge.
	if a.attackHeld {
		a.attackHeld = false
		return f
	}

	for _, e := range a.game.Director().Enemies() {
		gap := e.Pos.X - body.Right()
		if e.Pos.X+e.W < body.X || gap > reach {
			continue
		}
		if !p.Attacking {
			f.Set(core.ActionAttack)
			a.attackHeld = true
		}
		return f
	}

	return f
}

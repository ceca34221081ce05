package runner

import (
	"github.com/vovakirdan/thor-runner/internal/config"
	"github.com/vovakirdan/thor-runner/internal/core"
)

// Outcome is what one resolution pass found.
type Outcome struct {
	Points int  // Score gained this tick
	Coins  int  // Coins collected
	Kills  int  // Enemies destroyed by an attack
	Hit    bool // Player touched an enemy without attacking
	Caught bool // Player reached the chase antagonist
}

// Resolver tests the player against the director's collections. It only
// flags obstacles for deletion; it never adds or removes entries.
type Resolver struct {
	scoring config.ScoringConfig
}

// NewResolver creates a resolver with the given point values.
func NewResolver(scoring config.ScoringConfig) Resolver {
	return Resolver{scoring: scoring}
}

// touches reports whether two boxes are closer, center to center, than
// their half-widths combined minus padding.
func touches(a, b core.RectF, padding float64) bool {
	return core.Distance(a.Center(), b.Center()) < a.W/2+b.W/2-padding
}

// Resolve runs enemies, then coins, then the antagonist. A hit ends the
// pass immediately so nothing after it is collected.
func (r Resolver) Resolve(p *Player, d *Director) Outcome {
	var out Outcome
	body := p.Bounds()

	enemies := d.Enemies()
	for i := range enemies {
		e := &enemies[i]
		if e.Expired() || !touches(e.Bounds(), body, e.Padding) {
			continue
		}
		if !p.Attacking {
			out.Hit = true
			return out
		}
		e.MarkedForDeletion = true
		out.Kills++
		out.Points += r.scoring.Enemy
	}

	coins := d.Coins()
	for i := range coins {
		c := &coins[i]
		if c.Expired() || !touches(c.Bounds(), body, c.Padding) {
			continue
		}
		c.MarkedForDeletion = true
		out.Coins++
		out.Points += r.scoring.Coin
	}

	antagonists := d.Antagonists()
	for i := range antagonists {
		a := &antagonists[i]
		if !a.Expired() && touches(a.Bounds(), body, a.Padding) {
			out.Caught = true
			break
		}
	}

	return out
}

// Trickle returns the passive points earned on the given frame.
func (r Resolver) Trickle(frame int) int {
	if r.scoring.TrickleEvery <= 0 || frame <= 0 || frame%r.scoring.TrickleEvery != 0 {
		return 0
	}
	return r.scoring.Trickle
}

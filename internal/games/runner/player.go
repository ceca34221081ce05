package runner

import (
	"github.com/vovakirdan/thor-runner/internal/config"
	"github.com/vovakirdan/thor-runner/internal/core"
)

// Intent is the normalized input the simulation reads each tick.
type Intent struct {
	Jump   bool // Held
	Attack bool // Held; attacks trigger on the press edge
}

// Player is the protagonist's physics body.
//
// OnGround is true iff, after the current tick's integration, the feet rest
// on the floor line or on a platform top. VY is zero whenever grounded.
type Player struct {
	Pos         core.Vec2 // Top-left corner
	W, H        float64
	VY          float64 // Vertical velocity, positive = down
	Weight      float64 // Gravity added per airborne tick
	JumpPower   float64 // Initial jump velocity (negative)
	OnGround    bool
	Attacking   bool
	AttackTimer int

	attackTicks int
	prevAttack  bool
	floorY      float64
}

// NewPlayer creates a player standing on the floor.
func NewPlayer(cfg config.RunnerConfig) Player {
	p := Player{
		W:           cfg.Player.Width,
		H:           cfg.Player.Height,
		Weight:      cfg.Physics.Gravity,
		JumpPower:   cfg.Physics.JumpImpulse,
		attackTicks: cfg.Player.AttackTicks,
		floorY:      cfg.Field.FloorY(),
	}
	p.Pos.X = cfg.Player.X
	p.Reset()
	return p
}

// Reset puts the player back on the floor, idle.
func (p *Player) Reset() {
	p.Pos.Y = p.groundY()
	p.VY = 0
	p.OnGround = true
	p.Attacking = false
	p.AttackTimer = 0
	p.prevAttack = false
}

// groundY is the top-left y at which the feet touch the floor line.
func (p *Player) groundY() float64 {
	return p.floorY - p.H
}

// Bounds returns the player's bounding box.
func (p *Player) Bounds() core.RectF {
	return core.NewRectF(p.Pos.X, p.Pos.Y, p.W, p.H)
}

// Update advances the player by one tick and reports whether it took off.
// Platforms are tested in slice order; when several match, the last wins.
func (p *Player) Update(in Intent, platforms []Obstacle) (jumped bool) {
	p.updateAttack(in.Attack)

	if in.Jump && p.OnGround {
		p.VY = p.JumpPower
		p.OnGround = false
		jumped = true
	}

	// Move first, then apply gravity for the next tick.
	prevFeet := p.Pos.Y + p.H
	move := p.VY
	p.Pos.Y += move
	if !p.OnGround {
		p.VY += p.Weight
	} else {
		p.VY = 0
	}

	p.land(prevFeet, move, platforms)
	return jumped
}

// updateAttack counts down an active attack and starts a new one on the
// press edge of the attack intent.
func (p *Player) updateAttack(held bool) {
	if p.Attacking {
		p.AttackTimer--
		if p.AttackTimer <= 0 {
			p.Attacking = false
			p.AttackTimer = 0
		}
	}

	if held && !p.prevAttack && !p.Attacking {
		p.Attacking = true
		p.AttackTimer = p.attackTicks
	}
	p.prevAttack = held
}

// land resolves the floor and platform contacts after integration.
func (p *Player) land(prevFeet, move float64, platforms []Obstacle) {
	p.OnGround = false

	if p.Pos.Y >= p.groundY() {
		p.Pos.Y = p.groundY()
		p.VY = 0
		p.OnGround = true
		return
	}

	// Only a downward (or resting) crossing can land on a platform.
	if move < 0 {
		return
	}

	feet := p.Pos.Y + p.H
	body := p.Bounds()
	for i := range platforms {
		top := platforms[i].Bounds()
		if prevFeet <= top.Bottom() && feet >= top.Y && body.OverlapsX(top) {
			p.Pos.Y = top.Y - p.H
			p.VY = 0
			p.OnGround = true
		}
	}
}

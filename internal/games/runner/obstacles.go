package runner

import "github.com/vovakirdan/thor-runner/internal/core"

// Kind tags an obstacle's variant.
type Kind uint8

const (
	KindEnemy Kind = iota
	KindCoin
	KindPlatform
	KindBird
	KindAntagonist
	KindDeity
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEnemy:
		return "enemy"
	case KindCoin:
		return "coin"
	case KindPlatform:
		return "platform"
	case KindBird:
		return "bird"
	case KindAntagonist:
		return "antagonist"
	case KindDeity:
		return "deity"
	default:
		return "unknown"
	}
}

// BirdDir is a bird's flight direction.
type BirdDir uint8

const (
	BirdLeftward BirdDir = iota
	BirdRightward
)

// UpdateContext carries the per-tick shared state obstacles need.
type UpdateContext struct {
	Speed   float64 // Current scroll speed, units per tick
	DeltaMs float64 // Wall time since the previous tick
	FieldW  float64
}

// Entity is the contract every obstacle variant fulfils.
type Entity interface {
	Advance(ctx UpdateContext)
	Expired() bool
	Bounds() core.RectF
	Kind() Kind
}

var _ Entity = (*Obstacle)(nil)

// Obstacle is a tagged variant over every non-player entity. Values live
// directly in the director's per-kind slices.
type Obstacle struct {
	kind    Kind
	Pos     core.Vec2 // Top-left corner
	W, H    float64
	Padding float64 // Subtracted from the collision radius sum

	Variant int     // Enemy: index into the configured variants
	Dir     BirdDir // Bird only
	Flight  float64 // Bird only: own flight speed
	Night   bool    // Deity only: the night deity when true

	MarkedForDeletion bool
}

// Advance moves the obstacle for one tick and flags it once it has left the field.
func (o *Obstacle) Advance(ctx UpdateContext) {
	switch {
	case o.kind == KindBird && o.Dir == BirdRightward:
		o.Pos.X += o.Flight
	case o.kind == KindBird:
		// Leftward birds move at half the scroll speed plus their own.
		o.Pos.X -= o.Flight + ctx.Speed/2
	default:
		o.Pos.X -= ctx.Speed
	}

	if o.Pos.X < -o.W {
		o.MarkedForDeletion = true
	}
	if o.kind == KindBird && o.Dir == BirdRightward && o.Pos.X > ctx.FieldW {
		o.MarkedForDeletion = true
	}
}

// Expired reports whether the obstacle should be dropped.
func (o *Obstacle) Expired() bool {
	return o.MarkedForDeletion
}

// Bounds returns the obstacle's bounding box.
func (o *Obstacle) Bounds() core.RectF {
	return core.NewRectF(o.Pos.X, o.Pos.Y, o.W, o.H)
}

// Center returns the center of the bounding box.
func (o *Obstacle) Center() core.Vec2 {
	return o.Bounds().Center()
}

// advanceAll advances every obstacle in the slice.
func advanceAll(obs []Obstacle, ctx UpdateContext) {
	for i := range obs {
		obs[i].Advance(ctx)
	}
}

// cull drops expired obstacles in place, keeping order.
func cull(obs []Obstacle) []Obstacle {
	kept := obs[:0]
	for _, o := range obs {
		if !o.Expired() {
			kept = append(kept, o)
		}
	}
	return kept
}

// Kind returns the obstacle's variant tag.
func (o *Obstacle) Kind() Kind {
	return o.kind
}

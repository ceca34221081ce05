package runner

import (
	"math/rand"

	"github.com/vovakirdan/thor-runner/internal/config"
	"github.com/vovakirdan/thor-runner/internal/core"
)

// Enemy variant indices into config.RunnerConfig.Enemies.
const (
	VariantDraugr  = 0
	VariantTroll   = 1
	VariantArmored = 2
)

// Deity geometry. Deities drift across the upper sky and never collide.
const (
	deitySize = 70
	deityY    = 30
)

// Coin placement relative to the pattern's anchor.
const (
	coinLift    = 40 // Gap between a platform top and the coins above it
	coinEdgeGap = 5
	arcStep     = 50
	arcLow      = 150
	arcHigh     = 190
)

// pattern is one of the weighted spawn layouts.
type pattern int

const (
	patternGroundEnemy pattern = iota
	patternLowPlatform
	patternHighPlatform
	patternCoinArc
)

// Director owns every obstacle collection and decides what spawns when.
// All randomness comes from one seeded source, so the same seed and the
// same per-tick inputs reproduce a run exactly.
type Director struct {
	cfg config.RunnerConfig
	rng *rand.Rand

	enemies     []Obstacle
	coins       []Obstacle
	platforms   []Obstacle
	birds       []Obstacle
	antagonists []Obstacle
	deities     []Obstacle

	spawnTimer  float64 // ms accumulated toward the next pattern
	spawnJitter float64
	birdTimer   float64
	birdWait    float64
	night       bool
}

// NewDirector creates a director with empty collections.
func NewDirector(cfg config.RunnerConfig, seed int64) *Director {
	d := &Director{cfg: cfg}
	d.Reset(seed)
	return d
}

// Reset empties every collection, zeroes the timers and reseeds the source.
func (d *Director) Reset(seed int64) {
	d.rng = rand.New(rand.NewSource(seed))
	d.enemies = d.enemies[:0]
	d.coins = d.coins[:0]
	d.platforms = d.platforms[:0]
	d.birds = d.birds[:0]
	d.antagonists = d.antagonists[:0]
	d.deities = d.deities[:0]

	d.spawnTimer = 0
	d.spawnJitter = d.nextJitter()
	d.birdTimer = 0
	d.birdWait = d.nextBirdWait()
	d.night = false
}

// Enemies returns the live enemies. The resolver may flag entries for deletion.
func (d *Director) Enemies() []Obstacle { return d.enemies }

// Coins returns the live coins.
func (d *Director) Coins() []Obstacle { return d.coins }

// Platforms returns the live platforms in spawn order.
func (d *Director) Platforms() []Obstacle { return d.platforms }

// Birds returns the live birds.
func (d *Director) Birds() []Obstacle { return d.birds }

// Antagonists returns the live chase antagonist, if any.
func (d *Director) Antagonists() []Obstacle { return d.antagonists }

// Deities returns the live deities.
func (d *Director) Deities() []Obstacle { return d.deities }

// Count returns the number of live obstacles across all collections.
func (d *Director) Count() int {
	return len(d.enemies) + len(d.coins) + len(d.platforms) +
		len(d.birds) + len(d.antagonists) + len(d.deities)
}

// Update runs the spawners for this tick, then advances every collection,
// then drops everything flagged for deletion.
func (d *Director) Update(ctx UpdateContext, score int) {
	if d.spawnTimer > d.cfg.Spawner.BaseIntervalMs+d.spawnJitter {
		d.spawnPattern(d.pickPattern())
		d.spawnTimer = 0
		d.spawnJitter = d.nextJitter()
	} else {
		d.spawnTimer += ctx.DeltaMs
	}

	d.birdTimer += ctx.DeltaMs
	if d.birdTimer > d.birdWait {
		d.spawnBird()
		d.birdTimer = 0
		d.birdWait = d.nextBirdWait()
	}

	if d.cfg.Win.Policy == config.WinByAntagonist &&
		score >= d.cfg.Win.AntagonistScore && len(d.antagonists) == 0 {
		d.spawnAntagonist()
	}

	if night := d.cfg.Sky.IsNight(score); night != d.night {
		d.night = night
		d.spawnDeity(night)
	}

	advanceAll(d.enemies, ctx)
	advanceAll(d.coins, ctx)
	advanceAll(d.platforms, ctx)
	advanceAll(d.birds, ctx)
	advanceAll(d.antagonists, ctx)
	advanceAll(d.deities, ctx)

	d.Sweep()
}

// Sweep drops every obstacle flagged for deletion.
func (d *Director) Sweep() {
	d.enemies = cull(d.enemies)
	d.coins = cull(d.coins)
	d.platforms = cull(d.platforms)
	d.birds = cull(d.birds)
	d.antagonists = cull(d.antagonists)
	d.deities = cull(d.deities)
}

func (d *Director) nextJitter() float64 {
	s := d.cfg.Spawner
	return s.MinJitterMs + d.rng.Float64()*(s.MaxJitterMs-s.MinJitterMs)
}

func (d *Director) nextBirdWait() float64 {
	b := d.cfg.Birds
	return b.MinIntervalMs + d.rng.Float64()*(b.MaxIntervalMs-b.MinIntervalMs)
}

// pickPattern samples the cumulative weight table.
func (d *Director) pickPattern() pattern {
	w := d.cfg.Spawner.Patterns
	r := d.rng.Float64() * w.Total()

	switch {
	case r < w.GroundEnemy:
		return patternGroundEnemy
	case r < w.GroundEnemy+w.LowPlatform:
		return patternLowPlatform
	case r < w.GroundEnemy+w.LowPlatform+w.HighPlatform:
		return patternHighPlatform
	default:
		return patternCoinArc
	}
}

// spawnPattern lays out one pattern just beyond the right edge.
func (d *Director) spawnPattern(p pattern) {
	x := d.cfg.Field.Width
	floor := d.cfg.Field.FloorY()
	pc := d.cfg.Platforms

	switch p {
	case patternGroundEnemy:
		d.addEnemy(d.rng.Intn(2), x, floor)

	case patternLowPlatform:
		top := floor - pc.LowHeight
		d.addPlatform(x, top)
		d.addCoin(x+coinEdgeGap, top-coinLift)
		d.addCoin(x+pc.Width-d.cfg.Coin.Size-coinEdgeGap, top-coinLift)
		if d.rng.Float64() < d.cfg.Spawner.ArmoredChance {
			w := d.variant(VariantArmored).Width
			d.addEnemy(VariantArmored, x+(pc.Width-w)/2, top)
		}

	case patternHighPlatform:
		top := floor - pc.HighHeight
		d.addPlatform(x, top)
		d.addEnemy(d.rng.Intn(2), x+d.cfg.Spawner.UnderPlatformLead, floor)
		d.addCoin(x+(pc.Width-d.cfg.Coin.Size)/2, top-coinLift)

	case patternCoinArc:
		d.addCoin(x, floor-arcLow)
		d.addCoin(x+arcStep, floor-arcHigh)
		d.addCoin(x+2*arcStep, floor-arcLow)
	}
}

func (d *Director) variant(i int) config.EnemyVariant {
	if i < 0 || i >= len(d.cfg.Enemies) {
		i = 0
	}
	return d.cfg.Enemies[i]
}

// addEnemy places an enemy whose feet rest on standY.
func (d *Director) addEnemy(variant int, x, standY float64) {
	v := d.variant(variant)
	d.enemies = append(d.enemies, Obstacle{
		kind:    KindEnemy,
		Pos:     core.Vec2{X: x, Y: standY - v.Height},
		W:       v.Width,
		H:       v.Height,
		Padding: v.Padding,
		Variant: variant,
	})
}

func (d *Director) addCoin(x, y float64) {
	size := d.cfg.Coin.Size
	d.coins = append(d.coins, Obstacle{
		kind: KindCoin,
		Pos:  core.Vec2{X: x, Y: y},
		W:    size,
		H:    size,
	})
}

func (d *Director) addPlatform(x, top float64) {
	d.platforms = append(d.platforms, Obstacle{
		kind: KindPlatform,
		Pos:  core.Vec2{X: x, Y: top},
		W:    d.cfg.Platforms.Width,
		H:    d.cfg.Platforms.Thickness,
	})
}

// spawnBird launches a bird from the edge matching its direction.
func (d *Director) spawnBird() {
	b := d.cfg.Birds
	dir := BirdDir(d.rng.Intn(2))
	y := d.rng.Float64() * (d.cfg.Field.Height*2/3 - b.Height)

	x := d.cfg.Field.Width
	if dir == BirdRightward {
		x = -b.Width
	}

	d.birds = append(d.birds, Obstacle{
		kind:   KindBird,
		Pos:    core.Vec2{X: x, Y: y},
		W:      b.Width,
		H:      b.Height,
		Dir:    dir,
		Flight: b.FlightSpeed,
	})
}

func (d *Director) spawnAntagonist() {
	a := d.cfg.Antagonist
	d.antagonists = append(d.antagonists, Obstacle{
		kind:    KindAntagonist,
		Pos:     core.Vec2{X: d.cfg.Field.Width, Y: d.cfg.Field.FloorY() - a.Height},
		W:       a.Width,
		H:       a.Height,
		Padding: a.Padding,
	})
}

func (d *Director) spawnDeity(night bool) {
	d.deities = append(d.deities, Obstacle{
		kind:  KindDeity,
		Pos:   core.Vec2{X: d.cfg.Field.Width, Y: deityY},
		W:     deitySize,
		H:     deitySize,
		Night: night,
	})
}

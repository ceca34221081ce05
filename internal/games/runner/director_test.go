package runner

import (
	"testing"

	"github.com/vovakirdan/thor-runner/internal/config"
)

// quietConfig never fires the pattern or bird spawners on its own.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawner.BaseIntervalMs = 1e12
	cfg.Birds.MinIntervalMs = 1e12
	cfg.Birds.MaxIntervalMs = 1e12
	return cfg
}

func tickCtx() UpdateContext {
	return UpdateContext{Speed: 4.5, DeltaMs: 1000.0 / 60, FieldW: 800}
}

func TestDirectorEnemyScrollAndCull(t *testing.T) {
	d := NewDirector(quietConfig(), 1)
	d.addEnemy(VariantDraugr, 800, 400)

	for i := 0; i < 100; i++ {
		d.Update(tickCtx(), 0)
	}
	if len(d.Enemies()) != 1 {
		t.Fatalf("enemy should still be present after 100 ticks")
	}
	if x := d.Enemies()[0].Pos.X; x != 350 {
		t.Errorf("x after 100 ticks = %v, want 350", x)
	}

	// 800 - 4.5*188 = -46: still inside -width.
	for i := 100; i < 188; i++ {
		d.Update(tickCtx(), 0)
	}
	if len(d.Enemies()) != 1 {
		t.Fatalf("enemy at x=%v removed too early", -46.0)
	}

	d.Update(tickCtx(), 0)
	if len(d.Enemies()) != 0 {
		t.Errorf("enemy past -width should be culled")
	}
}

func TestDirectorSpawnTimer(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Birds.MinIntervalMs = 1e12
	cfg.Birds.MaxIntervalMs = 1e12
	d := NewDirector(cfg, 7)

	// Maximum wait is base + max jitter = 2400ms; a tick lands on the spawn
	// only after the timer exceeds it.
	ticks := 0
	for d.Count() == 0 && ticks < 1000 {
		d.Update(tickCtx(), 0)
		ticks++
	}
	if d.Count() == 0 {
		t.Fatal("nothing spawned within 1000 ticks")
	}
	elapsed := float64(ticks-1) * tickCtx().DeltaMs
	if elapsed < cfg.Spawner.BaseIntervalMs+cfg.Spawner.MinJitterMs {
		t.Errorf("spawned after %.0fms, before the minimum interval", elapsed)
	}
	if d.spawnTimer != 0 {
		t.Errorf("timer should reset after a spawn, got %v", d.spawnTimer)
	}
}

func TestDirectorPatterns(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	floor := cfg.Field.FloorY()

	t.Run("ground enemy", func(t *testing.T) {
		d := NewDirector(cfg, 1)
		d.spawnPattern(patternGroundEnemy)
		if len(d.Enemies()) != 1 || d.Count() != 1 {
			t.Fatalf("want one enemy, got %d obstacles", d.Count())
		}
		e := d.Enemies()[0]
		if e.Variant != VariantDraugr && e.Variant != VariantTroll {
			t.Errorf("ground enemy variant = %d", e.Variant)
		}
		if e.Bounds().Bottom() != floor {
			t.Errorf("enemy should stand on the floor, bottom=%v", e.Bounds().Bottom())
		}
	})

	t.Run("low platform", func(t *testing.T) {
		d := NewDirector(cfg, 1)
		d.spawnPattern(patternLowPlatform)
		if len(d.Platforms()) != 1 || len(d.Coins()) != 2 {
			t.Fatalf("want 1 platform and 2 coins, got %d/%d", len(d.Platforms()), len(d.Coins()))
		}
		top := d.Platforms()[0].Pos.Y
		if top != floor-cfg.Platforms.LowHeight {
			t.Errorf("platform top = %v", top)
		}
		for _, e := range d.Enemies() {
			if e.Variant != VariantArmored || e.Bounds().Bottom() != top {
				t.Errorf("rider should be armored and on the platform: %+v", e)
			}
		}
	})

	t.Run("high platform", func(t *testing.T) {
		d := NewDirector(cfg, 1)
		d.spawnPattern(patternHighPlatform)
		if len(d.Platforms()) != 1 || len(d.Enemies()) != 1 || len(d.Coins()) != 1 {
			t.Fatalf("unexpected layout: %d platforms, %d enemies, %d coins",
				len(d.Platforms()), len(d.Enemies()), len(d.Coins()))
		}
		plat := d.Platforms()[0]
		e := d.Enemies()[0]
		if e.Pos.X != plat.Pos.X+cfg.Spawner.UnderPlatformLead {
			t.Errorf("enemy should trail the platform edge: %v vs %v", e.Pos.X, plat.Pos.X)
		}
		if d.Coins()[0].Bounds().Bottom() >= plat.Pos.Y {
			t.Error("coin should sit above the platform")
		}
	})

	t.Run("coin arc", func(t *testing.T) {
		d := NewDirector(cfg, 1)
		d.spawnPattern(patternCoinArc)
		coins := d.Coins()
		if len(coins) != 3 || len(d.Enemies()) != 0 {
			t.Fatalf("want 3 coins and no enemy")
		}
		if !(coins[1].Pos.Y < coins[0].Pos.Y && coins[0].Pos.Y == coins[2].Pos.Y) {
			t.Errorf("coins should form an arc: %v %v %v", coins[0].Pos, coins[1].Pos, coins[2].Pos)
		}
	})
}

func TestDirectorPatternWeights(t *testing.T) {
	d := NewDirector(config.DefaultRunnerConfig(), 42)

	counts := map[pattern]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[d.pickPattern()]++
	}

	want := map[pattern]float64{
		patternGroundEnemy:  0.3,
		patternLowPlatform:  0.3,
		patternHighPlatform: 0.2,
		patternCoinArc:      0.2,
	}
	for p, w := range want {
		got := float64(counts[p]) / n
		if got < w-0.02 || got > w+0.02 {
			t.Errorf("pattern %d frequency = %.3f, want ~%.2f", p, got, w)
		}
	}
}

func TestDirectorBirds(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawner.BaseIntervalMs = 1e12
	d := NewDirector(cfg, 3)

	seen := 0
	for i := 0; i < 60*30; i++ {
		d.Update(tickCtx(), 0)
		if d.birdTimer == 0 {
			seen++
		}
		for _, b := range d.Birds() {
			if b.Pos.Y < 0 || b.Bounds().Bottom() > cfg.Field.Height*2/3 {
				t.Fatalf("bird outside the upper two-thirds: y=%v", b.Pos.Y)
			}
		}
	}
	// 30 seconds at one bird per 4-8 seconds.
	if seen < 3 || seen > 8 {
		t.Errorf("spawned %d birds in 30s", seen)
	}
}

func TestDirectorAntagonist(t *testing.T) {
	cfg := quietConfig()

	d := NewDirector(cfg, 1)
	d.Update(tickCtx(), 499)
	if len(d.Antagonists()) != 0 {
		t.Error("antagonist should not appear below 500")
	}

	d.Update(tickCtx(), 500)
	d.Update(tickCtx(), 510)
	if len(d.Antagonists()) != 1 {
		t.Errorf("want exactly one live antagonist, got %d", len(d.Antagonists()))
	}

	cfg.Win.Policy = config.WinByScore
	classic := NewDirector(cfg, 1)
	classic.Update(tickCtx(), 800)
	if len(classic.Antagonists()) != 0 {
		t.Error("score policy never spawns the antagonist")
	}
}

func TestDirectorDeityOnSkyFlip(t *testing.T) {
	d := NewDirector(quietConfig(), 1)

	d.Update(tickCtx(), 150)
	if len(d.Deities()) != 0 {
		t.Fatal("no deity before the first flip")
	}

	d.Update(tickCtx(), 200)
	if len(d.Deities()) != 1 || !d.Deities()[0].Night {
		t.Fatal("night flip should spawn the night deity")
	}

	d.Update(tickCtx(), 210)
	if len(d.Deities()) != 1 {
		t.Error("no extra deity without a flip")
	}

	d.Update(tickCtx(), 400)
	if len(d.Deities()) != 2 || d.Deities()[1].Night {
		t.Error("day flip should spawn the day deity")
	}
}

func TestDirectorResetIdempotent(t *testing.T) {
	d := NewDirector(config.DefaultRunnerConfig(), 5)
	for i := 0; i < 600; i++ {
		d.Update(tickCtx(), 600)
	}
	if d.Count() == 0 {
		t.Fatal("expected obstacles before reset")
	}

	d.Reset(5)
	once := *d
	d.Reset(5)

	if d.Count() != 0 {
		t.Errorf("collections not empty after reset: %d", d.Count())
	}
	if d.spawnTimer != once.spawnTimer || d.spawnJitter != once.spawnJitter ||
		d.birdTimer != once.birdTimer || d.birdWait != once.birdWait || d.night != once.night {
		t.Error("second reset changed timer state")
	}
}

func TestDirectorDeterministic(t *testing.T) {
	a := NewDirector(config.DefaultRunnerConfig(), 99)
	b := NewDirector(config.DefaultRunnerConfig(), 99)

	for i := 0; i < 3000; i++ {
		a.Update(tickCtx(), i/6)
		b.Update(tickCtx(), i/6)
	}

	if a.Count() != b.Count() {
		t.Fatalf("counts differ: %d vs %d", a.Count(), b.Count())
	}
	for i, e := range a.Enemies() {
		if e != b.Enemies()[i] {
			t.Errorf("enemy %d differs: %+v vs %+v", i, e, b.Enemies()[i])
		}
	}
}

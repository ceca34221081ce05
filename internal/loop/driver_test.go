package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/thor-runner/internal/config"
	"github.com/vovakirdan/thor-runner/internal/core"
	"github.com/vovakirdan/thor-runner/internal/games/runner"
)

// countdownGame ends after a fixed number of running frames.
type countdownGame struct {
	left   int
	phase  core.Phase
	deltas []time.Duration
}

func (g *countdownGame) ID() string               { return "countdown" }
func (g *countdownGame) Title() string            { return "Countdown" }
func (g *countdownGame) Reset(core.RuntimeConfig) {}
func (g *countdownGame) Render(*core.Screen)      {}
func (g *countdownGame) State() core.GameState    { return core.GameState{Phase: g.phase} }

func (g *countdownGame) Step(in core.InputFrame) core.StepResult {
	g.deltas = append(g.deltas, in.Delta)
	var events []core.Event
	switch g.phase {
	case core.PhaseIdle:
		if in.Has(core.ActionConfirm) {
			g.phase = core.PhaseRunning
			events = append(events, core.GameStartedEvent{})
		}
	case core.PhaseRunning:
		g.left--
		events = append(events, core.JumpedEvent{})
		if g.left <= 0 {
			g.phase = core.PhaseGameOver
			events = append(events, core.GameOverEvent{})
		}
	}
	return core.StepResult{State: g.State(), Events: events}
}

func TestDriverRunsUntilTerminal(t *testing.T) {
	g := &countdownGame{left: 10}
	var events []core.Event
	d := NewDriver(g, WithEventHandler(func(e core.Event) { events = append(events, e) }))

	res, err := d.Run(context.Background(), 0)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.State.Phase != core.PhaseGameOver {
		t.Errorf("phase = %v, want over", res.State.Phase)
	}
	// One idle frame to start, then ten running ones.
	if res.Frames != 11 || res.Jumps != 10 {
		t.Errorf("frames=%d jumps=%d", res.Frames, res.Jumps)
	}
	if _, ok := events[len(events)-1].(core.GameOverEvent); !ok {
		t.Errorf("last event = %T, want GameOverEvent", events[len(events)-1])
	}
	if d.Running() {
		t.Error("driver should not be running after Run returns")
	}
}

func TestDriverFrameBudget(t *testing.T) {
	g := &countdownGame{left: 1000}
	res, err := NewDriver(g).Run(context.Background(), 25)
	if err != nil {
		t.Fatal(err)
	}
	if res.Frames != 25 || res.State.Phase != core.PhaseRunning {
		t.Errorf("frames=%d phase=%v", res.Frames, res.State.Phase)
	}
}

func TestDriverFixedDelta(t *testing.T) {
	g := &countdownGame{left: 3}
	if _, err := NewDriver(g, WithClock(NewFixedClock(50))).Run(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	for i, dt := range g.deltas {
		if dt != 20*time.Millisecond {
			t.Errorf("frame %d delta = %v, want 20ms", i, dt)
		}
	}
}

func TestDriverCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := &countdownGame{left: 1000}

	d := NewDriver(g, WithFrameHandler(func(r core.StepResult) {
		if g.left == 990 {
			cancel()
		}
	}))
	res, err := d.Run(ctx, 0)

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if res.Frames != 11 {
		t.Errorf("frames = %d, want 11", res.Frames)
	}
}

func TestDriverStop(t *testing.T) {
	g := &countdownGame{left: 1000}
	var d *Driver
	d = NewDriver(g, WithFrameHandler(func(core.StepResult) {
		if g.left == 995 {
			d.Stop()
		}
	}))

	res, err := d.Run(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Frames != 6 {
		t.Errorf("frames = %d, want 6", res.Frames)
	}
}

func TestWallClock(t *testing.T) {
	now := time.Unix(0, 0)
	c := newWallClock(func() time.Time { return now })

	now = now.Add(16 * time.Millisecond)
	if got := c.Delta(); got != 16*time.Millisecond {
		t.Errorf("Delta = %v", got)
	}
	now = now.Add(40 * time.Millisecond)
	if got := c.Delta(); got != 40*time.Millisecond {
		t.Errorf("Delta = %v", got)
	}
}

func TestAutopilotDeterministic(t *testing.T) {
	run := func() Result {
		g := runner.NewWithConfig(config.DefaultRunnerConfig())
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
		res, err := NewDriver(g, WithPilot(NewAutopilot(g))).Run(context.Background(), 3000)
		if err != nil {
			t.Fatal(err)
		}
		return res
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("autopilot runs diverged: %+v vs %+v", a, b)
	}
	if a.State.Frames == 0 {
		t.Error("autopilot should start the session")
	}
}

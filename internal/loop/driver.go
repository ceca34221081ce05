package loop

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/vovakirdan/thor-runner/internal/core"
	"github.com/vovakirdan/thor-runner/internal/registry"
)

// Pilot decides the intents for the next frame from the current state.
type Pilot interface {
	Next(state core.GameState) core.InputFrame
}

// IdlePilot starts the session and then never touches the controls.
type IdlePilot struct{}

// Next confirms on the title screen and sends nothing afterwards.
func (IdlePilot) Next(state core.GameState) core.InputFrame {
	f := core.NewInputFrame()
	if state.Phase == core.PhaseIdle {
		f.Set(core.ActionConfirm)
	}
	return f
}

// Result summarizes a finished run.
type Result struct {
	State  core.GameState
	Frames int // Frames stepped by the driver, including idle ones
	Jumps  int
	Coins  int
	Kills  int
}

// Driver steps a game one frame at a time. Each frame runs Step and then
// the optional render hook, never overlapping the next frame.
type Driver struct {
	game    registry.Game
	clock   Clock
	pilot   Pilot
	pace    time.Duration
	onEvent func(core.Event)
	onFrame func(core.StepResult)

	running atomic.Bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithClock sets the frame delta source. The default is a 60 Hz FixedClock.
func WithClock(c Clock) Option {
	return func(d *Driver) { d.clock = c }
}

// WithPilot sets the intent source. The default is IdlePilot.
func WithPilot(p Pilot) Option {
	return func(d *Driver) { d.pilot = p }
}

// WithPace sleeps so frames are at least interval apart.
func WithPace(interval time.Duration) Option {
	return func(d *Driver) { d.pace = interval }
}

// WithEventHandler receives every session event in order.
func WithEventHandler(fn func(core.Event)) Option {
	return func(d *Driver) { d.onEvent = fn }
}

// WithFrameHandler is called after every Step.
func WithFrameHandler(fn func(core.StepResult)) Option {
	return func(d *Driver) { d.onFrame = fn }
}

// NewDriver creates a driver for a game that has already been Reset.
func NewDriver(g registry.Game, opts ...Option) *Driver {
	d := &Driver{
		game:  g,
		clock: NewFixedClock(60),
		pilot: IdlePilot{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Stop asks the loop to end before its next frame.
func (d *Driver) Stop() {
	d.running.Store(false)
}

// Running reports whether Run is looping.
func (d *Driver) Running() bool {
	return d.running.Load()
}

// Run steps the game until the session reaches a terminal phase, maxFrames
// frames have run (0 means no limit), Stop is called or ctx is done.
func (d *Driver) Run(ctx context.Context, maxFrames int) (Result, error) {
	var res Result
	d.running.Store(true)
	defer d.running.Store(false)

	var ticker *time.Ticker
	if d.pace > 0 {
		ticker = time.NewTicker(d.pace)
		defer ticker.Stop()
	}

	state := d.game.State()
	for {
		if !d.running.Load() {
			break
		}
		if err := ctx.Err(); err != nil {
			res.State = state
			return res, fmt.Errorf("loop: run cancelled after %d frames: %w", res.Frames, err)
		}
		if maxFrames > 0 && res.Frames >= maxFrames {
			break
		}

		in := d.pilot.Next(state)
		in.Delta = d.clock.Delta()

		step := d.game.Step(in)
		state = step.State
		res.Frames++
		d.tally(&res, step.Events)

		if d.onFrame != nil {
			d.onFrame(step)
		}
		if state.Phase.Terminal() {
			break
		}

		if ticker != nil {
			select {
			case <-ticker.C:
			case <-ctx.Done():
			}
		}
	}

	res.State = state
	return res, nil
}

func (d *Driver) tally(res *Result, events []core.Event) {
	for _, e := range events {
		switch e.(type) {
		case core.JumpedEvent:
			res.Jumps++
		case core.CoinCollectedEvent:
			res.Coins++
		case core.EnemyDefeatedEvent:
			res.Kills++
		}
		if d.onEvent != nil {
			d.onEvent(e)
		}
	}
}

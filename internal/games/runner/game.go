// Package runner implements Thor Runner: an auto-scrolling action runner in
// which Thor jumps over or strikes down enemies, collects coins, lands on
// platforms and finally chases down Loki.
//
// The simulation runs on a fixed 800x450 logical field and never touches
// the terminal; the platform projects it through core.Surface.
package runner

import (
	"github.com/vovakirdan/thor-runner/internal/config"
	"github.com/vovakirdan/thor-runner/internal/core"
	"github.com/vovakirdan/thor-runner/internal/registry"
)

// Registry IDs for the two variants.
const (
	IDThor    = "thor"
	IDClassic = "thor_classic"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var plainGraphics bool

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// configured values.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetPlainGraphics switches every sprite to its flat fallback box.
func SetPlainGraphics(plain bool) {
	plainGraphics = plain
}

// Game is one runner session: the player, the director, the resolver and
// the phase machine tying them together.
type Game struct {
	id      string
	title   string
	classic bool
	pinned  *config.RunnerConfig // Skips loading when set

	runtime  core.RuntimeConfig
	cfg      config.RunnerConfig
	player   Player
	director *Director
	resolver Resolver
	ramp     *config.SpeedRamp
	sprites  spriteSet

	phase  core.Phase
	paused bool
	score  int
	frames int
	overMs float64 // Time spent in GameOver, for the restart cooldown
	runs   int64   // Sessions started since Reset, offsets the seed

	events []core.Event
}

// New creates the canonical variant: touch Loki to win.
func New() *Game {
	return &Game{id: IDThor, title: "Thor Runner"}
}

// NewClassic creates the variant that is won by reaching a score target.
func NewClassic() *Game {
	return &Game{id: IDClassic, title: "Thor Runner Classic", classic: true}
}

// NewWithConfig creates a game that always uses cfg instead of loading one.
func NewWithConfig(cfg config.RunnerConfig) *Game {
	g := New()
	g.pinned = &cfg
	if cfg.Win.Policy == config.WinByScore {
		g.classic = true
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Description returns a one-line summary for menus and listings.
func (g *Game) Description() string {
	if g.classic {
		return "Survive until 300 points"
	}
	return "Reach 500 points, then catch Loki"
}

// Reset loads the configuration and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	if plainGraphics {
		g.sprites = plainSprites()
	} else {
		g.sprites = glyphSprites()
	}

	g.resolver = NewResolver(g.cfg.Scoring)
	g.ramp = config.NewSpeedRamp(g.cfg.Difficulty, g.cfg.Physics.BaseSpeed)
	g.player = NewPlayer(g.cfg)
	g.director = NewDirector(g.cfg, runtime.Seed)
	g.runs = 0
	g.resetSession()
	g.phase = core.PhaseIdle
}

func (g *Game) loadConfig() config.RunnerConfig {
	if g.pinned != nil {
		return *g.pinned
	}

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	if g.classic {
		cfg.Win.Policy = config.WinByScore
	}
	return cfg
}

// resetSession restores every piece of per-run state.
func (g *Game) resetSession() {
	g.player.Reset()
	g.director.Reset(g.runtime.Seed + g.runs)
	g.ramp.Reset()
	g.score = 0
	g.frames = 0
	g.overMs = 0
	g.paused = false
}

// Start begins a session from the title screen. It is a no-op in any
// other phase.
func (g *Game) Start() {
	if g.phase != core.PhaseIdle {
		return
	}
	g.phase = core.PhaseRunning
	g.emit(core.GameStartedEvent{})
}

// Restart begins a fresh session from a terminal phase. GameOver enforces
// the cooldown; Won does not. Reports whether the restart happened.
func (g *Game) Restart() bool {
	switch g.phase {
	case core.PhaseGameOver:
		if g.overMs < g.cfg.Session.RestartCooldownMs {
			return false
		}
	case core.PhaseWon:
	default:
		return false
	}

	g.runs++
	g.resetSession()
	g.phase = core.PhaseRunning
	g.emit(core.GameStartedEvent{})
	return true
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	dt := g.deltaMs(in)

	switch g.phase {
	case core.PhaseIdle:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			g.Start()
		}

	case core.PhaseRunning:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			g.tick(in, dt)
		}

	case core.PhaseGameOver:
		g.overMs += dt
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.Restart()
		}

	case core.PhaseWon:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.Restart()
		}
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// deltaMs falls back to one nominal tick when the frame carries no timing.
func (g *Game) deltaMs(in core.InputFrame) float64 {
	if dt := in.DeltaMs(); dt > 0 {
		return dt
	}
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1000 / float64(rate)
}

// tick runs one Running frame: player, director, resolver, then the score
// bookkeeping that may end the session.
func (g *Game) tick(in core.InputFrame, dt float64) {
	g.frames++

	intent := Intent{Jump: in.Has(core.ActionJump), Attack: in.Has(core.ActionAttack)}
	if g.player.Update(intent, g.director.Platforms()) {
		g.emit(core.JumpedEvent{})
	}

	g.director.Update(UpdateContext{
		Speed:   g.ramp.Speed(),
		DeltaMs: dt,
		FieldW:  g.cfg.Field.Width,
	}, g.score)

	out := g.resolver.Resolve(&g.player, g.director)
	g.director.Sweep()

	if out.Hit {
		g.phase = core.PhaseGameOver
		g.overMs = 0
		g.emit(core.GameOverEvent{FinalScore: g.score})
		return
	}

	for i := 0; i < out.Kills; i++ {
		g.emit(core.EnemyDefeatedEvent{})
	}
	for i := 0; i < out.Coins; i++ {
		g.emit(core.CoinCollectedEvent{})
	}

	if gained := out.Points + g.resolver.Trickle(g.frames); gained > 0 {
		g.score += gained
		g.emit(core.ScoreChangedEvent{Score: g.score})
		g.ramp.Observe(g.score)
	}

	won := out.Caught
	if g.cfg.Win.Policy == config.WinByScore && g.score >= g.cfg.Win.ScoreTarget {
		won = true
	}
	if won {
		g.phase = core.PhaseWon
		g.emit(core.GameWonEvent{FinalScore: g.score})
	}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	speed := 0.0
	if g.ramp != nil {
		speed = g.ramp.Speed()
	}
	return core.GameState{
		Score:  g.score,
		Phase:  g.phase,
		Paused: g.paused,
		Frames: g.frames,
		Speed:  speed,
	}
}

// Player returns a copy of the player body.
func (g *Game) Player() Player {
	return g.player
}

// Director exposes the level director for inspection.
func (g *Game) Director() *Director {
	return g.director
}

// Config returns the configuration in effect.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// IsNight reports whether the sky is in its night span.
func (g *Game) IsNight() bool {
	return g.cfg.Sky.IsNight(g.score)
}

// Register both variants with the registry
func init() {
	registry.Register(IDThor, func() registry.Game {
		return New()
	})
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
}

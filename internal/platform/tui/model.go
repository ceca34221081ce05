package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/thor-runner/internal/core"
	"github.com/vovakirdan/thor-runner/internal/registry"
	"github.com/vovakirdan/thor-runner/internal/sound"
	"github.com/vovakirdan/thor-runner/internal/storage"
)

// Options configures a GameModel.
type Options struct {
	// Sound plays effects for session events. Nil means silent.
	Sound *sound.Manager

	// Logger receives session lifecycle messages. Nil discards them.
	Logger *log.Logger

	// Standalone makes the back key quit the program instead of
	// returning to a menu.
	Standalone bool

	// ScreenshotDir is where ctrl+s writes screen dumps.
	// Defaults to ~/.thor-runner/screenshots.
	ScreenshotDir string
}

// GameModel is the Bubble Tea model running one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	intents    *intentTracker
	clock      *frameClock
	loop       uint64
	inputFrame core.InputFrame
	gameState  core.GameState
	sound      *sound.Manager
	logger     *log.Logger
	standalone bool
	shotDir    string
	now        func() time.Time
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current terminal phase has been recorded
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	snd := opts.Sound
	if snd == nil {
		snd = sound.NewManager(sound.NullSink{}, 0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			shotDir = filepath.Join(home, ".thor-runner", "screenshots")
		}
	}

	game.Reset(cfg)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		intents:    newIntentTracker(jumpHold),
		clock:      &frameClock{},
		loop:       nextLoopID(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		sound:      snd,
		logger:     logger,
		standalone: opts.Standalone,
		shotDir:    shotDir,
		now:        time.Now,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The field is logical, so a resize only changes the projection.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionJump:
		m.intents.PressJump(m.now())
	case core.ActionAttack:
		m.intents.PressAttack()
	case core.ActionMute:
		muted := m.sound.ToggleMute()
		m.logger.Debug("sound toggled", "muted", muted)
	case core.ActionBack:
		if m.gameState.Phase == core.PhaseRunning && !m.gameState.Paused {
			break
		}
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick runs one simulation step.
func (m GameModel) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	m.inputFrame.Delta = m.clock.Advance(t)
	m.intents.Apply(&m.inputFrame, t)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.sound.Handle(result.Events...)

	for _, e := range result.Events {
		switch e := e.(type) {
		case core.GameStartedEvent:
			// The key that started the run must not also jump on its first frame.
			m.intents.Reset()
			m.runSaved = false
			m.logger.Debug("run started", "game", m.game.ID())
		case core.GameOverEvent:
			m.logger.Info("run over", "game", m.game.ID(), "score", e.FinalScore)
		case core.GameWonEvent:
			m.logger.Info("run won", "game", m.game.ID(), "score", e.FinalScore)
		}
	}

	if m.gameState.Phase.Terminal() && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveRun records the finished run. Failures are logged and ignored.
func (m GameModel) saveRun() {
	if m.store == nil || m.gameState.Score == 0 {
		return
	}

	outcome := storage.OutcomeOver
	if m.gameState.Phase == core.PhaseWon {
		outcome = storage.OutcomeWon
	}
	_, err := m.store.SaveRun(storage.RunEntry{
		GameID:  m.game.ID(),
		Score:   m.gameState.Score,
		Outcome: outcome,
		Frames:  m.gameState.Frames,
		Speed:   m.gameState.Speed,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot writes the current screen to a timestamped text file.
func (m GameModel) saveScreenshot() (string, error) {
	if m.shotDir == "" {
		return "", fmt.Errorf("tui: no screenshot directory")
	}

	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot directory: %w", err)
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.sound.Muted() {
		label := " MUTED "
		m.screen.DrawText(m.screen.Width()-len(label)-1, 0, label, core.ColorGray)
	}

	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	opts.Standalone = true
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

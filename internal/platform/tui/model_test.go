package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/thor-runner/internal/core"
	"github.com/vovakirdan/thor-runner/internal/sound"
	"github.com/vovakirdan/thor-runner/internal/storage"
)

// scriptedGame records the frames it is stepped with and ends when told.
type scriptedGame struct {
	startIdle bool // Wait on the title screen for jump or confirm
	frames    []core.InputFrame
	state     core.GameState
	endAt     int
	endIn     core.Phase
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.frames = nil
	g.state = core.GameState{Phase: core.PhaseRunning}
	if g.startIdle {
		g.state.Phase = core.PhaseIdle
	}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	cp := core.NewInputFrame()
	for a := range in.Actions {
		cp.Set(a)
	}
	cp.Delta = in.Delta
	g.frames = append(g.frames, cp)

	var events []core.Event
	if g.state.Phase == core.PhaseIdle && (in.Has(core.ActionJump) || in.Has(core.ActionConfirm)) {
		g.state.Phase = core.PhaseRunning
		return core.StepResult{State: g.state, Events: []core.Event{core.GameStartedEvent{}}}
	}
	if g.state.Phase == core.PhaseRunning {
		g.state.Frames++
		g.state.Score += 10
		if g.endAt > 0 && g.state.Frames >= g.endAt {
			g.state.Phase = g.endIn
			events = append(events, core.GameOverEvent{FinalScore: g.state.Score})
		}
	}
	return core.StepResult{State: g.state, Events: events}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted", core.ColorWhite)
}

func (g *scriptedGame) State() core.GameState { return g.state }

func newTestModel(t *testing.T, g *scriptedGame, store *storage.Store) GameModel {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
	return NewGameModel(g, store, cfg, Options{ScreenshotDir: t.TempDir()})
}

func send(m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(GameModel), cmd
}

func tick(m GameModel, at time.Time) GameModel {
	m, _ = send(m, TickMsg{Time: at, Loop: m.loop})
	return m
}

func TestGameModelJumpHeldAcrossTicks(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil)

	base := time.Now()
	m.now = func() time.Time { return base }
	m, _ = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	m = tick(m, base.Add(16*time.Millisecond))
	m = tick(m, base.Add(32*time.Millisecond))
	m = tick(m, base.Add(300*time.Millisecond))

	if len(g.frames) != 3 {
		t.Fatalf("stepped %d times, want 3", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionJump) || !g.frames[1].Has(core.ActionJump) {
		t.Error("jump should be held for the ticks inside the hold window")
	}
	if g.frames[2].Has(core.ActionJump) {
		t.Error("jump should be released after the hold window")
	}
	if g.frames[1].Delta != 16*time.Millisecond {
		t.Errorf("second frame delta = %v, want 16ms", g.frames[1].Delta)
	}
}

func TestGameModelStartKeyDoesNotJump(t *testing.T) {
	g := &scriptedGame{startIdle: true}
	m := newTestModel(t, g, nil)

	base := time.Now()
	m.now = func() time.Time { return base }
	m, _ = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	m = tick(m, base.Add(16*time.Millisecond))
	if m.State().Phase != core.PhaseRunning {
		t.Fatalf("phase = %v, want running", m.State().Phase)
	}
	m = tick(m, base.Add(32*time.Millisecond))

	if !g.frames[0].Has(core.ActionJump) {
		t.Error("the start tick should see the jump press")
	}
	if g.frames[1].Has(core.ActionJump) {
		t.Error("the first running tick should not inherit the start press")
	}
}

func TestGameModelOneShotActionsLastOneTick(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil)

	m, _ = send(m, runeKey("p"))
	m, _ = send(m, runeKey("z"))
	base := time.Now()
	m = tick(m, base)
	m = tick(m, base.Add(16*time.Millisecond))

	if !g.frames[0].Has(core.ActionPause) || !g.frames[0].Has(core.ActionAttack) {
		t.Error("first tick should carry pause and attack")
	}
	if g.frames[1].Has(core.ActionPause) || g.frames[1].Has(core.ActionAttack) {
		t.Error("second tick should be clear")
	}
}

func TestGameModelIgnoresStaleTickChain(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil)

	m, cmd := send(m, TickMsg{Time: time.Now(), Loop: m.loop + 1000})
	if cmd != nil || len(g.frames) != 0 {
		t.Error("a tick from another loop should be dropped")
	}
}

func TestGameModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{endAt: 3, endIn: core.PhaseGameOver}
	m := newTestModel(t, g, store)

	base := time.Now()
	for i := range 6 {
		m = tick(m, base.Add(time.Duration(i)*16*time.Millisecond))
	}

	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	if runs[0].Score != 30 || runs[0].Outcome != storage.OutcomeOver || runs[0].Frames != 3 {
		t.Errorf("saved run = %+v", runs[0])
	}
}

func TestGameModelBack(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil)

	// Back is ignored mid-run.
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while running")
	}

	g.state.Phase = core.PhaseGameOver
	m.gameState = g.state
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should return to menu after game over")
	}

	standalone := newTestModel(t, &scriptedGame{}, nil)
	standalone.standalone = true
	standalone.gameState.Phase = core.PhaseWon
	standalone, cmd := send(standalone, tea.KeyMsg{Type: tea.KeyEsc})
	if !standalone.IsQuitting() || cmd == nil {
		t.Error("back should quit a standalone game")
	}
}

func TestGameModelMuteAndScreenshot(t *testing.T) {
	g := &scriptedGame{}
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
	dir := t.TempDir()
	mgr := sound.NewManager(sound.NullSink{}, 0.5)
	m := NewGameModel(g, nil, cfg, Options{Sound: mgr, ScreenshotDir: dir})

	m, _ = send(m, runeKey("m"))
	if !mgr.Muted() {
		t.Error("m should mute")
	}
	if !strings.Contains(m.View(), "MUTED") {
		t.Error("view should show the mute label")
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "scripted_") {
		t.Fatalf("screenshot files = %v", entries)
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "scripted") {
		t.Errorf("screenshot content = %q", data)
	}
}

func TestGameModelResizeKeepsSession(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil)
	m = tick(m, time.Now())

	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
	if g.state.Frames != 1 {
		t.Error("resize should not reset the game")
	}
}

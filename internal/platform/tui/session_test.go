package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/thor-runner/internal/core"
	"github.com/vovakirdan/thor-runner/internal/registry"
)

func init() {
	registry.Register("scripted", func() registry.Game { return &scriptedGame{} })
}

func sessionSend(m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func newTestSession() SessionModel {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	return NewSessionModel(nil, cfg, nil)
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession()

	m, cmd := sessionSend(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatal("enter should start the selected game")
	}
	if cmd == nil {
		t.Error("starting a game should schedule the first tick")
	}
	if m.gameModel.standalone {
		t.Error("session games must return to the menu, not quit")
	}

	m.gameModel.gameState.Phase = core.PhaseGameOver
	m, _ = sessionSend(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.gameModel != nil {
		t.Error("back after game over should return to the menu")
	}
	if m.quitting {
		t.Error("returning to the menu must not quit the session")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := newTestSession()

	m, _ = sessionSend(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScoreboard {
		t.Fatal("tab should open the run history")
	}
	if m.View() == "" {
		t.Error("scoreboard view should not be empty")
	}

	m, _ = sessionSend(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Error("esc should go back to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession()
	m, cmd := sessionSend(m, runeKey("q"))
	if !m.quitting || cmd == nil {
		t.Error("q should quit the session")
	}
	if m.View() != "" {
		t.Error("quit session renders nothing")
	}
}

package main

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/thor-runner/internal/core"
	"github.com/vovakirdan/thor-runner/internal/games/runner"
)

func TestSimSummary(t *testing.T) {
	var s simSummary
	s.add(core.GameState{Score: 120, Phase: core.PhaseGameOver})
	s.add(core.GameState{Score: 640, Phase: core.PhaseWon})
	s.add(core.GameState{Score: 40, Phase: core.PhaseRunning})

	if s.runs != 3 || s.wins != 1 || s.over != 1 {
		t.Errorf("counts = %+v", s)
	}
	if s.best != 640 {
		t.Errorf("best = %d, want 640", s.best)
	}
	if got := s.average(); got != 800.0/3 {
		t.Errorf("average = %v, want %v", got, 800.0/3)
	}
	if (simSummary{}).average() != 0 {
		t.Error("empty summary average should be 0")
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	flagFPS, flagSimFrames, flagSimRealtime = 60, 2000, false
	logger := log.New(io.Discard)

	a, err := simulate(context.Background(), logger, runner.IDThor, 11)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	b, err := simulate(context.Background(), logger, runner.IDThor, 11)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	if a.Frames == 0 {
		t.Fatal("no frames were simulated")
	}
	if a.State != b.State || a.Jumps != b.Jumps || a.Coins != b.Coins || a.Kills != b.Kills {
		t.Errorf("same seed diverged: %+v vs %+v", a, b)
	}
}

func TestSimulateUnknownVariant(t *testing.T) {
	if _, err := simulate(context.Background(), log.New(io.Discard), "nope", 1); err == nil {
		t.Error("unknown variant should fail")
	}
}

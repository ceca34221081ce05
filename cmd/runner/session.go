package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/thor-runner/internal/config"
	"github.com/vovakirdan/thor-runner/internal/core"
	"github.com/vovakirdan/thor-runner/internal/platform/tui"
	"github.com/vovakirdan/thor-runner/internal/sound"
	"github.com/vovakirdan/thor-runner/internal/storage"
)

// effectsVolume is the master volume for sound effects.
const effectsVolume = 0.4

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// checkConfig reports a broken --config file before the alt screen hides
// the message. The game itself falls back to defaults.
func checkConfig() {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Warning: unknown difficulty %q (using configured values)\n", flagDifficulty)
	}
	if flagConfig == "" {
		return
	}
	if _, err := config.LoadRunner(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
}

// openStore opens the run history, degrading to no history on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		return nil
	}
	return store
}

// openLogger returns a file logger when --log is set. The alt screen owns
// stdout, so interactive commands never log to the terminal.
func openLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(flagLogPath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "thor-runner",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// openSound returns an effects manager on the system speaker, or a silent
// one when no audio device is available.
func openSound(logger *log.Logger) *sound.Manager {
	var sink sound.Sink = sound.NullSink{}
	if !flagMute {
		if speaker, err := sound.OpenSpeaker(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			sink = speaker
		}
	}

	mgr := sound.NewManager(sink, effectsVolume)
	mgr.SetMuted(flagMute)
	return mgr
}

// interactiveOptions wires logging and sound for play and menu.
func interactiveOptions() (tui.Options, func(), error) {
	logger, closeLog, err := openLogger()
	if err != nil {
		return tui.Options{}, nil, err
	}
	return tui.Options{
		Sound:  openSound(logger),
		Logger: logger,
	}, closeLog, nil
}

package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the session state machine position.
type Phase int

const (
	PhaseIdle     Phase = iota // Title screen, waiting for start
	PhaseRunning               // Simulation active
	PhaseGameOver              // Player was hit (terminal)
	PhaseWon                   // Win condition reached (terminal)
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends a session.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseWon
}

// GameState is the externally visible state of a game.
type GameState struct {
	Score  int
	Phase  Phase
	Paused bool
	Frames int     // Simulation ticks since session start
	Speed  float64 // Current scroll speed
}

// StepResult is returned by Game.Step() after each simulation tick.
// Events are in the order they happened during the tick.
type StepResult struct {
	State  GameState
	Events []Event
}

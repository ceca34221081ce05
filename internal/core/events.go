package core

// Event is something the simulation reports to the presentation layer.
// The UI owns every reaction (sound, screens, persistence).
type Event interface {
	gameEvent()
}

// GameStartedEvent is emitted when a session enters Running.
type GameStartedEvent struct{}

func (GameStartedEvent) gameEvent() {}

// ScoreChangedEvent carries the new score after any change.
type ScoreChangedEvent struct {
	Score int
}

func (ScoreChangedEvent) gameEvent() {}

// GameOverEvent is emitted when the player is hit.
type GameOverEvent struct {
	FinalScore int
}

func (GameOverEvent) gameEvent() {}

// GameWonEvent is emitted when the win condition is reached.
type GameWonEvent struct {
	FinalScore int
}

func (GameWonEvent) gameEvent() {}

// JumpedEvent is emitted on takeoff.
type JumpedEvent struct{}

func (JumpedEvent) gameEvent() {}

// CoinCollectedEvent is emitted per coin picked up.
type CoinCollectedEvent struct{}

func (CoinCollectedEvent) gameEvent() {}

// EnemyDefeatedEvent is emitted per enemy destroyed by an attack.
type EnemyDefeatedEvent struct{}

func (EnemyDefeatedEvent) gameEvent() {}

package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration. It mirrors
// defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Field: FieldConfig{
			Width:       800,
			Height:      450,
			FloorOffset: 50,
		},
		Physics: PhysicsConfig{
			Gravity:     0.8,
			JumpImpulse: -17,
			BaseSpeed:   4.5,
		},
		Player: PlayerConfig{
			X:           100,
			Width:       64,
			Height:      64,
			AttackTicks: 20,
		},
		Enemies: []EnemyVariant{
			{Name: "draugr", Width: 50, Height: 50, Padding: 10},
			{Name: "troll", Width: 70, Height: 70, Padding: 15},
			{Name: "armored", Width: 56, Height: 56, Padding: 12},
		},
		Coin: CoinConfig{
			Size: 30,
		},
		Platforms: PlatformConfig{
			Width:      160,
			Thickness:  20,
			LowHeight:  110,
			HighHeight: 180,
		},
		Spawner: SpawnerConfig{
			BaseIntervalMs: 1200,
			MinJitterMs:    400,
			MaxJitterMs:    1200,
			Patterns: PatternWeights{
				GroundEnemy:  0.3,
				LowPlatform:  0.3,
				HighPlatform: 0.2,
				CoinArc:      0.2,
			},
			ArmoredChance:     0.4,
			UnderPlatformLead: 80,
		},
		Birds: BirdConfig{
			MinIntervalMs: 4000,
			MaxIntervalMs: 8000,
			Width:         40,
			Height:        24,
			FlightSpeed:   3,
		},
		Antagonist: AntagonistConfig{
			Width:   60,
			Height:  80,
			Padding: 20,
		},
		Scoring: ScoringConfig{
			Coin:         5,
			Enemy:        10,
			TrickleEvery: 60,
			Trickle:      1,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			ThresholdStep: 100,
			Multiplier:    1.1,
			MaxSpeed:      12,
		},
		Win: WinConfig{
			Policy:          WinByAntagonist,
			ScoreTarget:     300,
			AntagonistScore: 500,
		},
		Session: SessionConfig{
			RestartCooldownMs: 500,
		},
		Sky: SkyConfig{
			DayNightPeriod: 200,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}

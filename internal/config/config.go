// Package config provides YAML/TOML runner configuration loading, difficulty
// presets and the score-driven speed ramp.
package config

// RunnerConfig contains all configuration for the runner.
type RunnerConfig struct {
	Field      FieldConfig      `yaml:"field" toml:"field"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Enemies    []EnemyVariant   `yaml:"enemies" toml:"enemies"`
	Coin       CoinConfig       `yaml:"coin" toml:"coin"`
	Platforms  PlatformConfig   `yaml:"platforms" toml:"platforms"`
	Spawner    SpawnerConfig    `yaml:"spawner" toml:"spawner"`
	Birds      BirdConfig       `yaml:"birds" toml:"birds"`
	Antagonist AntagonistConfig `yaml:"antagonist" toml:"antagonist"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Win        WinConfig        `yaml:"win" toml:"win"`
	Session    SessionConfig    `yaml:"session" toml:"session"`
	Sky        SkyConfig        `yaml:"sky" toml:"sky"`
}

// FieldConfig defines the logical play field.
type FieldConfig struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	FloorOffset float64 `yaml:"floor_offset" toml:"floor_offset"` // Distance from bottom edge to the floor line
}

// FloorY returns the y coordinate of the floor line.
func (f FieldConfig) FloorY() float64 {
	return f.Height - f.FloorOffset
}

// PhysicsConfig defines per-tick physics constants.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity"`           // Added to vertical velocity each airborne tick
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"` // Negative = upward
	BaseSpeed   float64 `yaml:"base_speed" toml:"base_speed"`     // Initial scroll speed
}

// PlayerConfig defines the protagonist's body.
type PlayerConfig struct {
	X           float64 `yaml:"x" toml:"x"`
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	AttackTicks int     `yaml:"attack_ticks" toml:"attack_ticks"`
}

// EnemyVariant selects an enemy's size and collision padding.
type EnemyVariant struct {
	Name    string  `yaml:"name" toml:"name"`
	Width   float64 `yaml:"width" toml:"width"`
	Height  float64 `yaml:"height" toml:"height"`
	Padding float64 `yaml:"padding" toml:"padding"`
}

// CoinConfig defines coin size.
type CoinConfig struct {
	Size float64 `yaml:"size" toml:"size"`
}

// PlatformConfig defines platform geometry. Heights are measured from the
// floor line to the platform top.
type PlatformConfig struct {
	Width      float64 `yaml:"width" toml:"width"`
	Thickness  float64 `yaml:"thickness" toml:"thickness"`
	LowHeight  float64 `yaml:"low_height" toml:"low_height"`
	HighHeight float64 `yaml:"high_height" toml:"high_height"`
}

// PatternWeights are the relative odds of each spawn pattern.
type PatternWeights struct {
	GroundEnemy  float64 `yaml:"ground_enemy" toml:"ground_enemy"`
	LowPlatform  float64 `yaml:"low_platform" toml:"low_platform"`
	HighPlatform float64 `yaml:"high_platform" toml:"high_platform"`
	CoinArc      float64 `yaml:"coin_arc" toml:"coin_arc"`
}

// Total returns the sum of all weights.
func (w PatternWeights) Total() float64 {
	return w.GroundEnemy + w.LowPlatform + w.HighPlatform + w.CoinArc
}

// SpawnerConfig defines the main obstacle spawner.
type SpawnerConfig struct {
	BaseIntervalMs    float64        `yaml:"base_interval_ms" toml:"base_interval_ms"`
	MinJitterMs       float64        `yaml:"min_jitter_ms" toml:"min_jitter_ms"`
	MaxJitterMs       float64        `yaml:"max_jitter_ms" toml:"max_jitter_ms"`
	Patterns          PatternWeights `yaml:"patterns" toml:"patterns"`
	ArmoredChance     float64        `yaml:"armored_chance" toml:"armored_chance"`           // Odds of an enemy riding a low platform
	UnderPlatformLead float64        `yaml:"under_platform_lead" toml:"under_platform_lead"` // How far behind a high platform's edge its enemy spawns
}

// BirdConfig defines the ambient bird spawner.
type BirdConfig struct {
	MinIntervalMs float64 `yaml:"min_interval_ms" toml:"min_interval_ms"`
	MaxIntervalMs float64 `yaml:"max_interval_ms" toml:"max_interval_ms"`
	Width         float64 `yaml:"width" toml:"width"`
	Height        float64 `yaml:"height" toml:"height"`
	FlightSpeed   float64 `yaml:"flight_speed" toml:"flight_speed"`
}

// AntagonistConfig defines the chase antagonist.
type AntagonistConfig struct {
	Width   float64 `yaml:"width" toml:"width"`
	Height  float64 `yaml:"height" toml:"height"`
	Padding float64 `yaml:"padding" toml:"padding"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	Coin         int `yaml:"coin" toml:"coin"`
	Enemy        int `yaml:"enemy" toml:"enemy"`
	TrickleEvery int `yaml:"trickle_every" toml:"trickle_every"` // Frames between passive points
	Trickle      int `yaml:"trickle" toml:"trickle"`
}

// DifficultyConfig defines the speed ramp.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled" toml:"enabled"`
	ThresholdStep int     `yaml:"threshold_step" toml:"threshold_step"`
	Multiplier    float64 `yaml:"multiplier" toml:"multiplier"`
	MaxSpeed      float64 `yaml:"max_speed" toml:"max_speed"`
}

// WinPolicy selects how a session is won.
type WinPolicy string

const (
	WinByAntagonist WinPolicy = "antagonist" // Touch the chase antagonist once it appears
	WinByScore      WinPolicy = "score"      // Reach a fixed score
)

// WinConfig defines the win condition.
type WinConfig struct {
	Policy          WinPolicy `yaml:"policy" toml:"policy"`
	ScoreTarget     int       `yaml:"score_target" toml:"score_target"`
	AntagonistScore int       `yaml:"antagonist_score" toml:"antagonist_score"`
}

// SessionConfig defines session flow timings.
type SessionConfig struct {
	RestartCooldownMs float64 `yaml:"restart_cooldown_ms" toml:"restart_cooldown_ms"`
}

// SkyConfig defines the day/night cycle.
type SkyConfig struct {
	DayNightPeriod int `yaml:"day_night_period" toml:"day_night_period"` // Score span of each day or night
}

// IsNight reports whether the given score falls into a night span.
func (s SkyConfig) IsNight(score int) bool {
	if s.DayNightPeriod <= 0 {
		return false
	}
	return (score/s.DayNightPeriod)%2 == 1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

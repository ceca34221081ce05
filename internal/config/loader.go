package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const configFile = "runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.thor-runner/configs/runner.yaml ->
// ./configs/runner.yaml -> embedded default. Files are decoded over the
// defaults, so partial files only override what they mention.
func LoadRunner(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Search paths are best-effort: unreadable or invalid files fall through.
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes a YAML or TOML file (chosen by extension) over the defaults.
func loadFile(path string) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".thor-runner", "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, errors.New("field size must be positive"))
	}
	if c.Field.FloorOffset < 0 || c.Field.FloorOffset >= c.Field.Height {
		errs = append(errs, errors.New("floor_offset must be inside the field"))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, errors.New("jump_impulse must be negative (upward)"))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, errors.New("gravity must be positive"))
	}
	if len(c.Enemies) < 2 {
		errs = append(errs, errors.New("at least two enemy variants are required"))
	}
	if c.Spawner.Patterns.Total() <= 0 {
		errs = append(errs, errors.New("spawn pattern weights must not all be zero"))
	}
	if c.Spawner.MaxJitterMs < c.Spawner.MinJitterMs {
		errs = append(errs, errors.New("max_jitter_ms must be >= min_jitter_ms"))
	}
	if c.Birds.MaxIntervalMs < c.Birds.MinIntervalMs {
		errs = append(errs, errors.New("birds max_interval_ms must be >= min_interval_ms"))
	}
	if c.Scoring.TrickleEvery <= 0 {
		errs = append(errs, errors.New("trickle_every must be positive"))
	}
	if c.Difficulty.Enabled && c.Difficulty.ThresholdStep <= 0 {
		errs = append(errs, errors.New("threshold_step must be positive"))
	}
	switch c.Win.Policy {
	case WinByAntagonist, WinByScore:
	default:
		errs = append(errs, fmt.Errorf("unknown win policy %q", c.Win.Policy))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Physics.BaseSpeed = 4.0
		cfg.Difficulty.MaxSpeed = 10
		cfg.Spawner.BaseIntervalMs = 1500
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Physics.BaseSpeed = 5.5
		cfg.Difficulty.MaxSpeed = 14
		cfg.Spawner.BaseIntervalMs = 1000
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}

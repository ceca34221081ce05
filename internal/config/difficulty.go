package config

import "math"

// SpeedRamp scales the scroll speed each time the score crosses a threshold.
type SpeedRamp struct {
	cfg   DifficultyConfig
	base  float64
	speed float64
	next  int
}

// NewSpeedRamp creates a ramp starting at base speed.
func NewSpeedRamp(cfg DifficultyConfig, base float64) *SpeedRamp {
	r := &SpeedRamp{cfg: cfg, base: base}
	r.Reset()
	return r
}

// Reset returns to the base speed and the first threshold.
func (r *SpeedRamp) Reset() {
	r.speed = r.base
	if r.cfg.MaxSpeed > 0 {
		r.speed = math.Min(r.base, r.cfg.MaxSpeed)
	}
	r.next = r.cfg.ThresholdStep
}

// Speed returns the current scroll speed.
func (r *SpeedRamp) Speed() float64 {
	return r.speed
}

// NextThreshold returns the score that triggers the next step.
func (r *SpeedRamp) NextThreshold() int {
	return r.next
}

// IsEnabled returns whether the ramp reacts to score.
func (r *SpeedRamp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.ThresholdStep > 0
}

// Observe applies at most one speed step for the given score and reports
// whether it did. The next threshold moves to the next step strictly above
// score, so a single jump across several thresholds scales only once.
func (r *SpeedRamp) Observe(score int) bool {
	if !r.IsEnabled() || score < r.next {
		return false
	}

	r.speed *= r.cfg.Multiplier
	if r.cfg.MaxSpeed > 0 && r.speed > r.cfg.MaxSpeed {
		r.speed = r.cfg.MaxSpeed
	}

	step := r.cfg.ThresholdStep
	r.next = (score/step + 1) * step
	return true
}

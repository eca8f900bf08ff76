package config

// DifficultyManager calculates the score-driven speed multiplier and spawn
// interval. Both are pure functions of score.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Speed returns the global speed multiplier for the given score.
// It grows by SpeedStep every SpeedEvery points.
func (d *DifficultyManager) Speed(score int) float64 {
	if !d.cfg.Enabled || d.cfg.SpeedEvery <= 0 || score <= 0 {
		return d.cfg.InitialSpeed
	}
	steps := score / d.cfg.SpeedEvery
	return d.cfg.InitialSpeed + float64(steps)*d.cfg.SpeedStep
}

// SpawnInterval returns the spawn interval in milliseconds for the given score.
// It shrinks by IntervalStep every IntervalEvery points, floored at MinInterval.
func (d *DifficultyManager) SpawnInterval(score int) int {
	interval := d.cfg.InitialInterval
	if d.cfg.Enabled && d.cfg.IntervalEvery > 0 && score > 0 {
		steps := score / d.cfg.IntervalEvery
		interval -= steps * d.cfg.IntervalStep
	}
	return max(d.cfg.MinInterval, interval)
}

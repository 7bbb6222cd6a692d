package config

import "math"

// DifficultyManager derives the current level and gravity from cleared lines.
type DifficultyManager struct {
	cfg        DifficultyConfig
	startLevel int
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	if cfg.MaxLevel < 1 {
		cfg.MaxLevel = 1
	}
	if cfg.LinesPerLevel < 1 {
		cfg.LinesPerLevel = 10
	}
	d := &DifficultyManager{cfg: cfg}
	d.SetStartLevel(cfg.StartLevel)
	return d
}

// SetStartLevel overrides the starting level (clamped to 1..MaxLevel).
func (d *DifficultyManager) SetStartLevel(level int) {
	d.startLevel = min(max(level, 1), d.cfg.MaxLevel)
}

// StartLevel returns the level a new game begins at.
func (d *DifficultyManager) StartLevel() int {
	return d.startLevel
}

// SetEnabled enables or disables level progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether level progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the level for the given number of cleared lines.
// Levels keep counting past MaxLevel for scoring; gravity caps separately.
func (d *DifficultyManager) Level(lines int) int {
	if !d.cfg.Enabled || lines <= 0 {
		return d.startLevel
	}
	return d.startLevel + lines/d.cfg.LinesPerLevel
}

// GravitySeconds returns how long a piece takes to fall one row at a level.
// Follows the guideline curve (0.8 - (level-1) * 0.007) ^ (level-1).
func (d *DifficultyManager) GravitySeconds(level int) float64 {
	level = min(max(level, 1), d.cfg.MaxLevel)
	return math.Pow(0.8-float64(level-1)*0.007, float64(level-1))
}

// GravityTicks converts gravity to simulation ticks at the given tick rate.
// Never returns less than one tick.
func (d *DifficultyManager) GravityTicks(level, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := int(math.Round(d.GravitySeconds(level) * float64(tickRate)))
	return max(ticks, 1)
}

// MsToTicks converts a millisecond duration to simulation ticks (rounded up).
func MsToTicks(ms, tickRate int) int {
	if ms <= 0 {
		return 0
	}
	if tickRate <= 0 {
		tickRate = 60
	}
	return (ms*tickRate + 999) / 1000
}

// Package config provides YAML-based game configuration loading and
// difficulty management for the game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration value is out of range.
var ErrInvalid = errors.New("invalid config")

// TetrisConfig contains all tunable parameters of the game.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Preview    PreviewConfig    `yaml:"preview"`
	Effects    EffectsConfig    `yaml:"effects"`
}

// BoardConfig defines the playfield dimensions in cells.
type BoardConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`      // Visible rows
	HiddenRows int `yaml:"hidden_rows"` // Spawn rows above the visible field
}

// TimingConfig defines lock delay and key repeat timings.
type TimingConfig struct {
	LockDelayMS   int `yaml:"lock_delay_ms"`
	MaxLockResets int `yaml:"max_lock_resets"`
	DASMS         int `yaml:"das_ms"` // Delay before auto-shift starts (desktop)
	ARRMS         int `yaml:"arr_ms"` // Auto-repeat interval (desktop)
}

// ScoringConfig defines base points awarded per action.
// Line clear values are multiplied by the current level.
type ScoringConfig struct {
	Single   int `yaml:"single"`
	Double   int `yaml:"double"`
	Triple   int `yaml:"triple"`
	Tetris   int `yaml:"tetris"`
	SoftDrop int `yaml:"soft_drop"` // Per row
	HardDrop int `yaml:"hard_drop"` // Per row
}

// LineClear returns the base points for clearing n lines at once.
func (s ScoringConfig) LineClear(n int) int {
	switch {
	case n <= 0:
		return 0
	case n == 1:
		return s.Single
	case n == 2:
		return s.Double
	case n == 3:
		return s.Triple
	default:
		return s.Tetris
	}
}

// DifficultyConfig defines the level progression system.
type DifficultyConfig struct {
	Enabled       bool `yaml:"enabled"`         // false = level never increases
	StartLevel    int  `yaml:"start_level"`     // 1..MaxLevel
	LinesPerLevel int  `yaml:"lines_per_level"` // Lines needed per level up
	MaxLevel      int  `yaml:"max_level"`       // Gravity stops speeding up here
	MarathonGoal  int  `yaml:"marathon_goal"`   // Lines to win marathon mode
}

// PreviewConfig toggles player aids.
type PreviewConfig struct {
	NextCount int  `yaml:"next_count"`
	Ghost     bool `yaml:"ghost"`
	Hold      bool `yaml:"hold"`
}

// EffectsConfig controls decorative particles.
type EffectsConfig struct {
	Enabled      bool `yaml:"enabled"`
	MaxParticles int  `yaml:"max_particles"`
	BubbleEvery  int  `yaml:"bubble_every"` // Ticks between ambient bubbles
	BurstSize    int  `yaml:"burst_size"`   // Particles per cleared row
}

// Validate checks that all values are within playable ranges.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Board.Width < 4 || c.Board.Width > 30:
		return fmt.Errorf("config: board.width %d not in [4,30]: %w", c.Board.Width, ErrInvalid)
	case c.Board.Height < 8 || c.Board.Height > 40:
		return fmt.Errorf("config: board.height %d not in [8,40]: %w", c.Board.Height, ErrInvalid)
	case c.Board.HiddenRows < 2 || c.Board.HiddenRows > 4:
		return fmt.Errorf("config: board.hidden_rows %d not in [2,4]: %w", c.Board.HiddenRows, ErrInvalid)
	case c.Timing.LockDelayMS < 0:
		return fmt.Errorf("config: timing.lock_delay_ms must not be negative: %w", ErrInvalid)
	case c.Timing.MaxLockResets < 0:
		return fmt.Errorf("config: timing.max_lock_resets must not be negative: %w", ErrInvalid)
	case c.Timing.DASMS < 0 || c.Timing.ARRMS < 0:
		return fmt.Errorf("config: das_ms/arr_ms must not be negative: %w", ErrInvalid)
	case c.Difficulty.MaxLevel < 1:
		return fmt.Errorf("config: difficulty.max_level must be positive: %w", ErrInvalid)
	case c.Difficulty.StartLevel < 1 || c.Difficulty.StartLevel > c.Difficulty.MaxLevel:
		return fmt.Errorf("config: difficulty.start_level %d not in [1,%d]: %w",
			c.Difficulty.StartLevel, c.Difficulty.MaxLevel, ErrInvalid)
	case c.Difficulty.LinesPerLevel < 1:
		return fmt.Errorf("config: difficulty.lines_per_level must be positive: %w", ErrInvalid)
	case c.Difficulty.MarathonGoal < 1:
		return fmt.Errorf("config: difficulty.marathon_goal must be positive: %w", ErrInvalid)
	case c.Preview.NextCount < 0 || c.Preview.NextCount > 5:
		return fmt.Errorf("config: preview.next_count %d not in [0,5]: %w", c.Preview.NextCount, ErrInvalid)
	case c.Effects.MaxParticles < 0 || c.Effects.BubbleEvery < 0 || c.Effects.BurstSize < 0:
		return fmt.Errorf("config: effects values must not be negative: %w", ErrInvalid)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a string to a preset. Empty input means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q: %w", s, ErrInvalid)
	}
}

// StartLevelForPreset returns the starting level for a difficulty preset.
// The fixed preset keeps the configured start level.
func StartLevelForPreset(preset DifficultyPreset, configured int) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 10
	default:
		return configured
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
// Kept in sync with defaults/tetris.yaml.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:      10,
			Height:     20,
			HiddenRows: 2,
		},
		Timing: TimingConfig{
			LockDelayMS:   500,
			MaxLockResets: 15,
			DASMS:         170,
			ARRMS:         50,
		},
		Scoring: ScoringConfig{
			Single:   100,
			Double:   300,
			Triple:   500,
			Tetris:   800,
			SoftDrop: 1,
			HardDrop: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			StartLevel:    1,
			LinesPerLevel: 10,
			MaxLevel:      20,
			MarathonGoal:  150,
		},
		Preview: PreviewConfig{
			NextCount: 3,
			Ghost:     true,
			Hold:      true,
		},
		Effects: EffectsConfig{
			Enabled:      true,
			MaxParticles: 48,
			BubbleEvery:  20,
			BurstSize:    6,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}

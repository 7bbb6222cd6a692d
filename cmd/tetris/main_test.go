package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/plastic-tetris/internal/config"
	"github.com/vovakirdan/plastic-tetris/internal/storage"
)

func TestGameIDFor(t *testing.T) {
	id, err := gameIDFor(nil)
	require.NoError(t, err)
	assert.Equal(t, "tetris", id)

	id, err = gameIDFor([]string{"marathon"})
	require.NoError(t, err)
	assert.Equal(t, "tetris", id)

	id, err = gameIDFor([]string{"endless"})
	require.NoError(t, err)
	assert.Equal(t, "tetris_endless", id)

	_, err = gameIDFor([]string{"sprint"})
	assert.Error(t, err)
}

func TestLoadGameConfigRejectsBadFlags(t *testing.T) {
	t.Cleanup(func() {
		flagDifficulty, flagLevel = "", 0
	})

	flagDifficulty = "brutal"
	_, err := loadGameConfig()
	assert.ErrorIs(t, err, config.ErrInvalid)

	flagDifficulty = "fixed"
	flagLevel = 99
	_, err = loadGameConfig()
	assert.ErrorIs(t, err, config.ErrInvalid)

	flagLevel = 3
	cfg, err := loadGameConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Difficulty.Enabled)
}

func TestScoresCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveScore("tetris", 4200)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	t.Cleanup(func() { flagDBPath, flagClearScores = storage.DefaultPath, false })
	flagDBPath = dbPath

	var out bytes.Buffer
	scoresCmd.SetOut(&out)
	require.NoError(t, runScores(scoresCmd, nil))
	assert.Contains(t, out.String(), "4200")

	out.Reset()
	flagClearScores = true
	require.NoError(t, runScores(scoresCmd, nil))
	assert.Contains(t, out.String(), "Scores cleared.")

	store, err = storage.Open(dbPath)
	require.NoError(t, err)
	defer store.Close()
	best, err := store.HighScore("tetris")
	require.NoError(t, err)
	assert.Zero(t, best)
}

func TestListCommand(t *testing.T) {
	var out bytes.Buffer
	listCmd.SetOut(&out)
	runList(listCmd, nil)
	assert.Contains(t, out.String(), "tetris_endless")
	assert.Contains(t, out.String(), "Plastic Pollution Tetris")
}

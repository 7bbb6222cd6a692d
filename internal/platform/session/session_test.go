package session

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/plastic-tetris/internal/core"
	"github.com/vovakirdan/plastic-tetris/internal/storage"
)

// scriptedGame ends the run when it sees ActionQuit and restarts on ActionRestart.
type scriptedGame struct {
	resets  int
	resized [2]int
	cfg     core.RuntimeConfig
	state   core.GameState
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.cfg = cfg
	g.state = core.GameState{}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	var events []core.Event
	switch {
	case in.Has(core.ActionHardDrop):
		g.state.Score += 100
		events = append(events, core.Event{Kind: core.EventHardDrop, Value: 10})
	case in.Has(core.ActionQuit):
		g.state.GameOver = true
		events = append(events, core.Event{Kind: core.EventGameOver, Value: g.state.Score})
	case in.Has(core.ActionRestart) && g.state.GameOver:
		g.state = core.GameState{}
	}
	return core.StepResult{State: g.state, Events: events}
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState   { return g.state }

type resizableGame struct {
	scriptedGame
}

func (g *resizableGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func playRun(s *Session, drops int) {
	for range drops {
		s.Step(frame(core.ActionHardDrop))
	}
	s.Step(frame(core.ActionQuit))
}

func TestStartSeedsFromClock(t *testing.T) {
	g := &scriptedGame{}
	s := New(g, nil, core.DefaultConfig(), nil)
	s.Start()

	assert.Equal(t, 1, g.resets)
	assert.NotZero(t, g.cfg.Seed)
	assert.Equal(t, g.cfg.Seed, s.Config().Seed)
}

func TestStartKeepsExplicitSeed(t *testing.T) {
	g := &scriptedGame{}
	cfg := core.DefaultConfig()
	cfg.Seed = 77
	New(g, nil, cfg, nil).Start()
	assert.Equal(t, int64(77), g.cfg.Seed)
}

func TestStartLoadsBest(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveScore("scripted", 1500)
	require.NoError(t, err)

	g := &scriptedGame{}
	s := New(g, store, core.DefaultConfig(), nil)
	s.Start()

	assert.Equal(t, 1500, s.Best())
	assert.Equal(t, 1500, g.cfg.HighScore, "game gets the best for its HUD")
}

func TestScoreSavedOnce(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{}
	s := New(g, store, core.DefaultConfig(), nil)
	s.Start()

	playRun(s, 3)
	assert.True(t, s.State().GameOver)
	assert.True(t, s.NewRecord())
	assert.Equal(t, 300, s.Best())

	// Later game over ticks do not save again
	store.ClearScores("scripted")
	s.Step(frame())
	high, err := store.HighScore("scripted")
	require.NoError(t, err)
	assert.Zero(t, high)
}

func TestLowerScoreIsNotARecord(t *testing.T) {
	store := openStore(t)
	store.SaveScore("scripted", 1000)

	s := New(&scriptedGame{}, store, core.DefaultConfig(), nil)
	s.Start()
	playRun(s, 2)

	assert.False(t, s.NewRecord())
	assert.Equal(t, 1000, s.Best())
}

func TestRestartRearmsSave(t *testing.T) {
	store := openStore(t)
	s := New(&scriptedGame{}, store, core.DefaultConfig(), nil)
	s.Start()

	playRun(s, 1)
	require.Equal(t, 100, s.Best())

	s.Step(frame(core.ActionRestart))
	assert.False(t, s.State().GameOver)
	assert.False(t, s.NewRecord())

	playRun(s, 4)
	assert.True(t, s.NewRecord())
	high, err := store.HighScore("scripted")
	require.NoError(t, err)
	assert.Equal(t, 400, high)
}

func TestWithoutStore(t *testing.T) {
	s := New(&scriptedGame{}, nil, core.DefaultConfig(), nil)
	s.Start()
	playRun(s, 2)

	assert.True(t, s.NewRecord())
	assert.Equal(t, 200, s.Best(), "best is tracked in memory")
}

func TestEventsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	s := New(&scriptedGame{}, nil, core.DefaultConfig(), logger)
	s.Start()
	playRun(s, 1)

	out := buf.String()
	assert.Contains(t, out, "hard_drop")
	assert.Contains(t, out, "run ended")
}

func TestResize(t *testing.T) {
	g := &resizableGame{}
	s := New(g, nil, core.DefaultConfig(), nil)
	s.Start()

	s.Resize(120, 40)
	assert.Equal(t, [2]int{120, 40}, g.resized)
	assert.Equal(t, 1, g.resets, "resizable games keep their run")

	plain := &scriptedGame{}
	s = New(plain, nil, core.DefaultConfig(), nil)
	s.Start()
	s.Resize(100, 30)
	assert.Equal(t, 2, plain.resets)
	assert.Equal(t, 100, plain.cfg.ScreenW)
}

func TestRender(t *testing.T) {
	s := New(&scriptedGame{}, nil, core.DefaultConfig(), nil)
	s.Start()
	screen := core.NewScreen(20, 2)
	s.Render(screen)
	assert.Contains(t, screen.Row(0), "scripted")
}

// Package session runs a game for a front end: it seeds and resets the
// game, tracks the stored best score, saves the score once per finished
// run and logs gameplay events.
package session

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/plastic-tetris/internal/core"
	"github.com/vovakirdan/plastic-tetris/internal/registry"
	"github.com/vovakirdan/plastic-tetris/internal/storage"
)

// Session drives one game instance. It is not safe for concurrent use;
// front ends call it from their update loop.
type Session struct {
	game   registry.Game
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig

	state      core.GameState
	best       int
	scoreSaved bool // Whether the score has been saved for the current game over
	newRecord  bool
}

// New creates a session. store and logger may be nil.
func New(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	return &Session{
		game:   game,
		store:  store,
		logger: logger,
		config: cfg,
	}
}

// Start seeds and resets the game. A zero seed is replaced by the clock.
func (s *Session) Start() {
	if s.config.Seed == 0 {
		s.config.Seed = time.Now().UnixNano()
	}
	s.loadBest()
	s.config.HighScore = s.best
	s.game.Reset(s.config)
	s.state = s.game.State()
	s.scoreSaved = false
	s.newRecord = false

	s.logger.Debug("session started",
		"game", s.game.ID(),
		"seed", s.config.Seed,
		"best", s.best,
		"screen", [2]int{s.config.ScreenW, s.config.ScreenH},
	)
}

// Step advances the game one tick and handles score bookkeeping.
func (s *Session) Step(frame core.InputFrame) core.StepResult {
	prev := s.state
	result := s.game.Step(frame)
	s.state = result.State

	for _, e := range result.Events {
		s.logger.Debug("event", "game", s.game.ID(), "kind", e.Kind, "value", e.Value)
	}

	switch {
	case s.state.GameOver && !s.scoreSaved:
		s.saveScore()
	case prev.GameOver && !s.state.GameOver:
		// A new run started from the game over screen
		s.scoreSaved = false
		s.newRecord = false
		s.loadBest()
	}

	return result
}

// saveScore stores the finished run's score once.
func (s *Session) saveScore() {
	s.scoreSaved = true
	score := s.state.Score

	saved, err := s.store.SaveScore(s.game.ID(), score)
	if err != nil && !errors.Is(err, storage.ErrNotOpen) {
		s.logger.Warn("could not save score", "game", s.game.ID(), "error", err)
	}
	if saved || score > s.best {
		s.best = score
		s.newRecord = true
	}

	s.logger.Info("run ended",
		"game", s.game.ID(),
		"score", score,
		"record", s.newRecord,
	)
}

func (s *Session) loadBest() {
	best, err := s.store.HighScore(s.game.ID())
	switch {
	case errors.Is(err, storage.ErrNotOpen):
		// Without a store the best only lives for this process
		return
	case err != nil:
		s.logger.Warn("could not load high score", "game", s.game.ID(), "error", err)
		return
	}
	s.best = best
}

// Resize adapts the game to a new screen size. Games that cannot resize in
// place are reset unless they are showing a finished run.
func (s *Session) Resize(w, h int) {
	s.config.ScreenW = w
	s.config.ScreenH = h
	if r, ok := s.game.(registry.Resizer); ok {
		r.Resize(w, h)
		return
	}
	if !s.state.GameOver {
		s.config.HighScore = s.best
		s.game.Reset(s.config)
		s.state = s.game.State()
	}
}

// Render draws the game into dst.
func (s *Session) Render(dst *core.Screen) {
	s.game.Render(dst)
}

// Game returns the running game.
func (s *Session) Game() registry.Game {
	return s.game
}

// Config returns the runtime config in use, including the chosen seed.
func (s *Session) Config() core.RuntimeConfig {
	return s.config
}

// State returns the state after the last step.
func (s *Session) State() core.GameState {
	return s.state
}

// Best returns the best known score for the game.
func (s *Session) Best() int {
	return s.best
}

// NewRecord reports whether the last finished run set a new best.
func (s *Session) NewRecord() bool {
	return s.newRecord
}

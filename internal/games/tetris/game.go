// Package tetris implements Plastic Pollution Tetris: a falling-block
// puzzle where every piece is a bit of ocean debris and every cleared line
// scoops it out of the sea.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/plastic-tetris/internal/config"
	"github.com/vovakirdan/plastic-tetris/internal/core"
	"github.com/vovakirdan/plastic-tetris/internal/effects"
	"github.com/vovakirdan/plastic-tetris/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeMarathon Mode = "marathon" // Win after the configured number of lines
	ModeEndless  Mode = "endless"  // Play until the stack tops out
)

// Phase is the game's state machine position.
type Phase string

const (
	PhaseTitle    Phase = "title"
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "game_over"
	PhaseWon      Phase = "won"
)

// effectsSeedSalt separates the particle RNG stream from the piece stream.
const effectsSeedSalt = 0x0cea

// Package-level settings applied on the next Reset (set from the CLI).
var (
	configPath         string
	difficultyPreset   = config.DifficultyNormal
	selectedStartLevel int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. An empty name means
// normal; unknown names leave the loaded config untouched.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetStartLevel overrides the starting level. 0 keeps the configured one.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// Game implements the falling-block game.
type Game struct {
	mode       Mode
	override   *config.TetrisConfig
	cfg        config.TetrisConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig

	rng       *rand.Rand
	bag       *Bag
	board     *Board
	particles *effects.System

	phase    Phase
	tick     uint64
	active   Piece
	queue    []Kind
	hold     Kind
	holdUsed bool

	score        int
	lines        int
	level        int
	highScore    int
	plasticItems int
	plasticGrams int
	lastClear    int // Lines cleared by the most recent lock
	clearFlash   int // Ticks left to show the clear banner

	gravityTicks int
	fallCounter  int
	lockTicks    int
	lockCounter  int
	lockResets   int
	lowestY      int  // Deepest row the active piece has reached
	landed       bool // Touched the stack at lowestY; the lock timer keeps running

	fact     string
	layout   layout
	tooSmall bool
	events   []core.Event
}

// New creates a marathon mode game.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewEndless creates an endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(mode Mode, cfg config.TetrisConfig) *Game {
	return &Game{mode: mode, override: &cfg}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "tetris_endless"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Plastic Pollution Tetris (Endless)"
	}
	return "Plastic Pollution Tetris"
}

// Description returns a one-line summary of the mode.
func (g *Game) Description() string {
	if g.mode == ModeEndless {
		return "Keep the ocean clean for as long as you can"
	}
	return "Clear the marathon goal of lines to clean the bay"
}

// Reset loads configuration and prepares a fresh run on the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.highScore = runtime.HighScore

	if g.override != nil {
		g.cfg = *g.override
	} else {
		cfg, err := config.Load(configPath)
		if err != nil {
			cfg = config.DefaultTetrisConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	if selectedStartLevel > 0 {
		g.difficulty.SetStartLevel(selectedStartLevel)
	}
	g.lockTicks = config.MsToTicks(g.cfg.Timing.LockDelayMS, runtime.TickRate)

	g.particles = effects.New(runtime.Seed^effectsSeedSalt, g.effectsConfig())
	g.Resize(runtime.ScreenW, runtime.ScreenH)
	g.newRun(runtime.Seed)
}

func (g *Game) effectsConfig() effects.Config {
	if !g.cfg.Effects.Enabled {
		return effects.Config{}
	}
	return effects.Config{
		MaxParticles: g.cfg.Effects.MaxParticles,
		BubbleEvery:  g.cfg.Effects.BubbleEvery,
		BurstSize:    g.cfg.Effects.BurstSize,
	}
}

// Resize adapts the layout to new screen dimensions without ending the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.layout = computeLayout(g.cfg, w, h)
	g.tooSmall = w < g.layout.minW || h < g.layout.minH
	if g.particles != nil {
		g.particles.SetArea(core.NewRect(0, hudHeight, w, max(h-hudHeight, 0)))
	}
}

// newRun clears all per-run state and returns to the title screen.
func (g *Game) newRun(seed int64) {
	g.highScore = max(g.highScore, g.score)
	g.rng = rand.New(rand.NewSource(seed))
	g.bag = NewBag(g.rng)
	g.board = NewBoard(g.cfg.Board.Width, g.cfg.Board.Height, g.cfg.Board.HiddenRows)
	if g.particles != nil {
		g.particles.Reset()
	}

	g.phase = PhaseTitle
	g.tick = 0
	g.active = Piece{}
	g.hold = KindNone
	g.holdUsed = false
	g.score = 0
	g.lines = 0
	g.level = g.difficulty.StartLevel()
	g.plasticItems = 0
	g.plasticGrams = 0
	g.lastClear = 0
	g.clearFlash = 0
	g.fallCounter = 0
	g.lockCounter = 0
	g.lockResets = 0
	g.lowestY = 0
	g.landed = false
	g.gravityTicks = g.difficulty.GravityTicks(g.level, g.runtime.TickRate)
	g.fact = Fact(g.level)

	g.queue = g.queue[:0]
	for range max(g.cfg.Preview.NextCount, 1) {
		g.queue = append(g.queue, g.bag.Next())
	}
}

// startRun leaves the title screen and spawns the first piece.
func (g *Game) startRun() {
	g.phase = PhasePlaying
	g.spawnNext()
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.events = nil
	if g.tooSmall {
		return g.result()
	}
	g.tick++

	if g.phase != PhasePaused {
		g.particles.Update()
	}
	if g.clearFlash > 0 {
		g.clearFlash--
	}

	switch g.phase {
	case PhaseTitle:
		if input.Has(core.ActionConfirm) || input.Has(core.ActionHardDrop) {
			g.startRun()
		}

	case PhasePaused:
		switch {
		case input.Has(core.ActionPause):
			g.phase = PhasePlaying
		case input.Has(core.ActionBack):
			g.newRun(g.rng.Int63())
		}

	case PhaseGameOver, PhaseWon:
		switch {
		case input.Has(core.ActionRestart):
			g.newRun(g.rng.Int63())
			g.startRun()
		case input.Has(core.ActionBack), input.Has(core.ActionConfirm):
			g.newRun(g.rng.Int63())
		}

	case PhasePlaying:
		if input.Has(core.ActionPause) {
			g.phase = PhasePaused
			break
		}
		g.play(input)
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value})
}

// play applies player input, gravity and lock delay for one tick.
func (g *Game) play(input core.InputFrame) {
	if input.Has(core.ActionHold) && g.cfg.Preview.Hold {
		g.holdPiece()
		if g.phase != PhasePlaying {
			return
		}
	}
	if input.Has(core.ActionLeft) {
		g.tryMove(-1, 0)
	}
	if input.Has(core.ActionRight) {
		g.tryMove(1, 0)
	}
	if input.Has(core.ActionRotateCW) {
		g.tryRotate(1)
	}
	if input.Has(core.ActionRotateCCW) {
		g.tryRotate(-1)
	}
	if input.Has(core.ActionHardDrop) {
		g.hardDrop()
		return
	}
	if input.Has(core.ActionSoftDrop) && g.tryMove(0, 1) {
		g.score += g.cfg.Scoring.SoftDrop
		g.fallCounter = 0
	}

	g.fallCounter++
	if g.fallCounter >= g.gravityTicks {
		g.fallCounter = 0
		if next := g.active.Moved(0, 1); g.board.Fits(next) {
			g.active = next
		}
	}

	// Only reaching a new lowest row gives the piece a fresh timer and
	// fresh resets. Floor kicks that lift it do not.
	if g.active.Y > g.lowestY {
		g.lowestY = g.active.Y
		g.lockCounter = 0
		g.lockResets = 0
		g.landed = false
	}
	grounded := g.grounded()
	if grounded {
		g.landed = true
	}
	if g.landed {
		g.lockCounter++
	}
	if grounded && g.lockCounter >= g.lockTicks {
		g.lockPiece()
	}
}

func (g *Game) grounded() bool {
	return !g.board.Fits(g.active.Moved(0, 1))
}

// tryMove shifts the active piece if the destination is free.
func (g *Game) tryMove(dx, dy int) bool {
	next := g.active.Moved(dx, dy)
	if !g.board.Fits(next) {
		return false
	}
	g.active = next
	g.resetLockDelay()
	return true
}

// tryRotate turns the active piece using the first kick that fits.
func (g *Game) tryRotate(dir int) bool {
	from := g.active.Rot
	turned := g.active.Rotated(dir)
	for _, k := range kicks(g.active.Kind, from, turned.Rot) {
		cand := turned.Moved(k.X, k.Y)
		if g.board.Fits(cand) {
			g.active = cand
			g.resetLockDelay()
			return true
		}
	}
	return false
}

// resetLockDelay restarts the lock timer of a grounded piece, a limited
// number of times per piece.
func (g *Game) resetLockDelay() {
	if g.lockCounter > 0 && g.lockResets < g.cfg.Timing.MaxLockResets {
		g.lockCounter = 0
		g.lockResets++
	}
}

func (g *Game) hardDrop() {
	d := g.board.DropDistance(g.active)
	g.active = g.active.Moved(0, d)
	g.score += d * g.cfg.Scoring.HardDrop
	g.emit(core.EventHardDrop, d)
	g.lockPiece()
}

// holdPiece swaps the active piece into the hold slot, once per piece.
func (g *Game) holdPiece() {
	if g.holdUsed {
		return
	}
	current := g.active.Kind
	if g.hold == KindNone {
		g.hold = current
		g.spawn(g.nextFromQueue())
	} else {
		next := g.hold
		g.hold = current
		g.spawn(next)
	}
	g.holdUsed = true
	g.emit(core.EventHold, int(current))
}

// lockPiece fixes the active piece, clears lines and spawns the next one.
func (g *Game) lockPiece() {
	lockOut := true
	for _, c := range g.active.Cells() {
		if c.Y >= g.board.Hidden() {
			lockOut = false
			break
		}
	}

	if err := g.board.Lock(g.active); err != nil {
		g.gameOver()
		return
	}
	g.emit(core.EventPieceLocked, int(g.active.Kind))

	res := g.board.ClearLines()
	g.lastClear = res.Count()
	if res.Count() > 0 {
		g.scoreClear(res)
	}

	switch {
	case lockOut:
		g.gameOver()
	case g.mode == ModeMarathon && g.lines >= g.cfg.Difficulty.MarathonGoal:
		g.phase = PhaseWon
		g.emit(core.EventGameWon, g.score)
	default:
		g.spawnNext()
	}
}

// scoreClear awards points and plastic for a line clear and handles level ups.
func (g *Game) scoreClear(res ClearResult) {
	n := res.Count()
	g.score += g.cfg.Scoring.LineClear(n) * g.level
	g.lines += n
	g.plasticItems += len(res.Removed)
	for _, k := range res.Removed {
		g.plasticGrams += k.Grams()
	}
	g.clearFlash = g.runtime.TickRate
	g.emit(core.EventLinesCleared, n)

	for _, row := range res.Rows {
		y := g.layout.wellY + 1 + row - g.board.Hidden()
		g.particles.Burst(y, g.layout.wellX-1, g.layout.wellX+g.layout.wellW)
	}

	if level := g.difficulty.Level(g.lines); level > g.level {
		g.level = level
		g.gravityTicks = g.difficulty.GravityTicks(level, g.runtime.TickRate)
		g.fact = Fact(level)
		g.emit(core.EventLevelUp, level)
	}
}

func (g *Game) nextFromQueue() Kind {
	k := g.queue[0]
	g.queue = append(g.queue[1:], g.bag.Next())
	return k
}

func (g *Game) spawnNext() {
	g.holdUsed = false
	g.spawn(g.nextFromQueue())
}

// spawn places a new piece at the top of the hidden rows, dropping it one
// row when possible so it shows up right away. A blocked spawn ends the game.
func (g *Game) spawn(k Kind) {
	p := Piece{Kind: k, X: (g.board.Width() - k.Size()) / 2}
	if !g.board.Fits(p) {
		g.active = p
		g.gameOver()
		return
	}
	if g.board.Fits(p.Moved(0, 1)) {
		p.Y++
	}
	g.active = p
	g.fallCounter = 0
	g.lockCounter = 0
	g.lockResets = 0
	g.lowestY = p.Y
	g.landed = false
}

func (g *Game) gameOver() {
	g.phase = PhaseGameOver
	g.fact = Fact(g.level)
	g.emit(core.EventGameOver, g.score)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver || g.phase == PhaseWon,
		Paused:   g.phase == PhasePaused,
	}
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// best returns the score to show as the record.
func (g *Game) best() int {
	return max(g.highScore, g.score)
}

// ghost returns where the active piece would land.
func (g *Game) ghost() Piece {
	return g.active.Moved(0, g.board.DropDistance(g.active))
}

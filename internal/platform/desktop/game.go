// Package desktop runs a game in an ebiten window. The game still renders
// into a core.Screen; each cell becomes a colored block or a bitmap glyph
// over an ocean gradient, with generated surf playing underneath.
package desktop

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/plastic-tetris/internal/config"
	"github.com/vovakirdan/plastic-tetris/internal/core"
	"github.com/vovakirdan/plastic-tetris/internal/platform/session"
	"github.com/vovakirdan/plastic-tetris/internal/registry"
	"github.com/vovakirdan/plastic-tetris/internal/storage"
)

const (
	WindowTitle  = "Plastic Pollution Tetris"
	WindowWidth  = 1280
	WindowHeight = 720

	cellW = 8
	cellH = 16

	gradientBands = 48
	glyphBaseline = 12 // basicfont.Face7x13 ascent plus padding
)

// Options configures the desktop front end.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Mute   bool
	Timing config.TimingConfig
}

// App adapts a session to ebiten.Game.
type App struct {
	session *session.Session
	screen  *core.Screen
	logger  *log.Logger
	repeat  repeater
	frame   core.InputFrame
	surf    *SurfStream
	player  *audio.Player
	cols    int
	rows    int
}

// NewApp creates the ebiten game for a registered game.
func NewApp(game registry.Game, cfg core.RuntimeConfig, opts Options) *App {
	cfg.ScreenW = WindowWidth / cellW
	cfg.ScreenH = WindowHeight / cellH

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	app := &App{
		session: session.New(game, opts.Store, cfg, logger),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		logger:  logger,
		repeat:  newRepeater(opts.Timing, cfg.TickRate),
		frame:   core.NewInputFrame(),
		cols:    cfg.ScreenW,
		rows:    cfg.ScreenH,
	}
	if !opts.Mute {
		app.surf = NewSurfStream(cfg.Seed)
	}
	return app
}

// Update runs one simulation tick.
func (a *App) Update() error {
	a.frame.Clear()
	if readInput(a.repeat, &a.frame) {
		return ebiten.Termination
	}

	result := a.session.Step(a.frame)
	if a.surf != nil {
		for _, e := range result.Events {
			a.surf.Cue(e)
		}
	}
	return nil
}

// Draw paints the backdrop and the screen cells.
func (a *App) Draw(dst *ebiten.Image) {
	b := dst.Bounds()
	drawOcean(dst, float32(b.Dx()), float32(b.Dy()))

	a.screen.Clear()
	a.session.Render(a.screen)
	for y := 0; y < a.screen.Height(); y++ {
		for x := 0; x < a.screen.Width(); x++ {
			drawCell(dst, x, y, a.screen.GetCell(x, y))
		}
	}
}

// Layout keeps one screen cell per cellW x cellH pixels and resizes the
// game when the window grid changes.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	cols := max(outsideWidth/cellW, 1)
	rows := max(outsideHeight/cellH, 1)
	if cols != a.cols || rows != a.rows {
		a.cols, a.rows = cols, rows
		a.screen.Resize(cols, rows)
		a.session.Resize(cols, rows)
	}
	return cols * cellW, rows * cellH
}

// Session returns the underlying session.
func (a *App) Session() *session.Session {
	return a.session
}

func drawOcean(dst *ebiten.Image, w, h float32) {
	band := h / gradientBands
	for i := 0; i < gradientBands; i++ {
		c := lerp(surfaceColor, abyssColor, float64(i)/float64(gradientBands-1))
		vector.DrawFilledRect(dst, 0, float32(i)*band, w, band+1, c, false)
	}
}

func drawCell(dst *ebiten.Image, x, y int, cell core.Cell) {
	if cell.Rune == ' ' || cell.Rune == 0 {
		return
	}
	px := float32(x * cellW)
	py := float32(y * cellH)
	c := colorFor(cell.Color)

	if alpha, ok := blockAlpha(cell.Rune); ok {
		vector.DrawFilledRect(dst, px, py, cellW, cellH, withAlpha(c, alpha), false)
		return
	}

	const mid = float32(cellW) / 2
	const midY = float32(cellH) / 2
	switch cell.Rune {
	case '▁':
		vector.DrawFilledRect(dst, px, py+cellH-3, cellW, 3, c, false)
	case '─':
		vector.StrokeLine(dst, px, py+midY, px+cellW, py+midY, 1, c, false)
	case '│':
		vector.StrokeLine(dst, px+mid, py, px+mid, py+cellH, 1, c, false)
	case '┌':
		vector.StrokeLine(dst, px+mid, py+midY, px+cellW, py+midY, 1, c, false)
		vector.StrokeLine(dst, px+mid, py+midY, px+mid, py+cellH, 1, c, false)
	case '┐':
		vector.StrokeLine(dst, px, py+midY, px+mid, py+midY, 1, c, false)
		vector.StrokeLine(dst, px+mid, py+midY, px+mid, py+cellH, 1, c, false)
	case '└':
		vector.StrokeLine(dst, px+mid, py+midY, px+cellW, py+midY, 1, c, false)
		vector.StrokeLine(dst, px+mid, py, px+mid, py+midY, 1, c, false)
	case '┘':
		vector.StrokeLine(dst, px, py+midY, px+mid, py+midY, 1, c, false)
		vector.StrokeLine(dst, px+mid, py, px+mid, py+midY, 1, c, false)
	default:
		text.Draw(dst, string(glyphFallback(cell.Rune)), basicfont.Face7x13, int(px), int(py)+glyphBaseline, c)
	}
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	app := NewApp(game, cfg, opts)
	app.session.Start()

	if app.surf != nil {
		player, err := newSurfPlayer(app.surf)
		if err != nil {
			app.logger.Warn("audio disabled", "error", err)
			app.surf = nil
		} else {
			app.player = player
			defer player.Close()
		}
	}

	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.session.Config().TickRate)

	app.logger.Info("window opened", "game", game.ID(), "size", fmt.Sprintf("%dx%d", WindowWidth, WindowHeight))
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}

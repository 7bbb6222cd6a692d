package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/plastic-tetris/internal/config"
	"github.com/vovakirdan/plastic-tetris/internal/core"
	"github.com/vovakirdan/plastic-tetris/internal/platform/session"
	"github.com/vovakirdan/plastic-tetris/internal/registry"
	"github.com/vovakirdan/plastic-tetris/internal/storage"
)

// Options configures a game model.
type Options struct {
	Store  *storage.Store // Optional; nil disables score persistence
	Logger *log.Logger    // Optional; nil discards logs
	Bell   bool           // Ring the terminal bell on line clears
	// BellOut receives the bell character. Defaults to stderr so it does
	// not interleave with Bubble Tea's frame writes on stdout.
	BellOut io.Writer
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	session    *session.Session
	screen     *core.Screen
	keyMapper  *KeyMapper
	logger     *log.Logger
	inputFrame core.InputFrame
	tickRate   int
	bell       bool
	bellOut    io.Writer
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	bellOut := opts.BellOut
	if bellOut == nil {
		bellOut = os.Stderr
	}
	s := session.New(game, opts.Store, cfg, logger)

	return Model{
		session:    s,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keyMapper:  NewKeyMapper(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		tickRate:   s.Config().TickRate,
		bell:       opts.Bell,
		bellOut:    bellOut,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	// The session is a pointer, so the reset survives the value receiver
	m.session.Start()
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.session.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.session.Step(m.inputFrame)

	// Clear input for next frame
	m.inputFrame.Clear()

	next := tickCmd(m.tickRate)
	if m.bell && result.Has(core.EventLinesCleared) {
		return m, tea.Batch(next, bellCmd(m.bellOut))
	}
	return m, next
}

// bellCmd rings the terminal bell.
func bellCmd(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		//nolint:errcheck // Best-effort bell
		io.WriteString(w, "\a")
		return nil
	}
}

// saveScreenshot writes the current screen as plain text under the app
// directory and returns the file path.
func (m Model) saveScreenshot() (string, error) {
	m.session.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, config.AppDirName, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.session.Game().ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Session exposes the running session, mainly for tests and callers that
// want the final score after Run returns.
func (m Model) Session() *session.Session {
	return m.session
}

// Run starts the Bubble Tea program for the game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

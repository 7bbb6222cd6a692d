package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/plastic-tetris/internal/config"
	"github.com/vovakirdan/plastic-tetris/internal/core"
	"github.com/vovakirdan/plastic-tetris/internal/registry"
	"github.com/vovakirdan/plastic-tetris/internal/storage"
)

// menuEntry identifies a row of the title menu.
type menuEntry int

const (
	entryMarathon menuEntry = iota
	entryEndless
	entryDifficulty
	entryScores
	entryQuit
)

var menuEntries = []menuEntry{entryMarathon, entryEndless, entryDifficulty, entryScores, entryQuit}

// gameIDs maps the play entries to registered game IDs.
var gameIDs = map[menuEntry]string{
	entryMarathon: "tetris",
	entryEndless:  "tetris_endless",
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuTagStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("37"))
	menuActive     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuMuted      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor         int
	difficulty     config.DifficultyPreset
	best           map[string]int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       string // Game ID chosen by the player
	openScoreboard bool
}

// NewMenuModel creates a new menu model. The store is only read for the
// best scores shown next to each mode and may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, difficulty config.DifficultyPreset) MenuModel {
	if difficulty == "" {
		difficulty = config.DifficultyNormal
	}

	best := make(map[string]int)
	for _, id := range gameIDs {
		if score, err := store.HighScore(id); err == nil {
			best[id] = score
		}
	}

	return MenuModel{
		difficulty: difficulty,
		best:       best,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if menuEntries[m.cursor] == entryDifficulty {
			m.difficulty = cyclePreset(m.difficulty, -1)
		}

	case MenuActionRight:
		if menuEntries[m.cursor] == entryDifficulty {
			m.difficulty = cyclePreset(m.difficulty, 1)
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch entry := menuEntries[m.cursor]; entry {
		case entryMarathon, entryEndless:
			m.selected = gameIDs[entry]
			return m, tea.Quit
		case entryDifficulty:
			m.difficulty = cyclePreset(m.difficulty, 1)
		case entryScores:
			m.openScoreboard = true
			return m, tea.Quit
		case entryQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// cyclePreset steps through the difficulty presets, wrapping around.
func cyclePreset(p config.DifficultyPreset, dir int) config.DifficultyPreset {
	presets := config.Presets()
	for i, candidate := range presets {
		if candidate == p {
			return presets[(i+dir+len(presets))%len(presets)]
		}
	}
	return config.DifficultyNormal
}

// label returns the text for a menu entry.
func (m MenuModel) label(entry menuEntry) string {
	switch entry {
	case entryMarathon, entryEndless:
		id := gameIDs[entry]
		name := "Marathon"
		if entry == entryEndless {
			name = "Endless"
		}
		if info, ok := registry.Info(id); ok && info.Description != "" {
			name = fmt.Sprintf("%-9s %s", name, menuMuted.Render(info.Description))
		}
		if best := m.best[id]; best > 0 {
			name += menuMuted.Render(fmt.Sprintf("  (best %d)", best))
		}
		return name
	case entryDifficulty:
		return fmt.Sprintf("Difficulty  < %s >", m.difficulty)
	case entryScores:
		return "High scores"
	default:
		return "Quit"
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("P L A S T I C   P O L L U T I O N   T E T R I S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuTagStyle.Render("Clean the ocean, one line at a time"), m.width))
	b.WriteString("\n\n")

	for i, entry := range menuEntries {
		cursor := "  "
		line := m.label(entry)
		if i == m.cursor {
			cursor = "> "
			line = menuActive.Render(line)
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuMuted.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within the given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result converts the final model state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{
		Difficulty: m.difficulty,
		Config:     m.config,
	}
	switch {
	case m.openScoreboard:
		result.WantsScoreboard = true
	case m.selected != "":
		result.GameID = m.selected
	default:
		result.Quit = true
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, difficulty config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(store, cfg, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: difficulty}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/plastic-tetris/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// gameKeys maps key names to in-game actions. Terminals do not report a
// bare shift press, so hold lives on c only.
var gameKeys = map[string]core.Action{
	"left":  core.ActionLeft,
	"h":     core.ActionLeft,
	"a":     core.ActionLeft,
	"right": core.ActionRight,
	"l":     core.ActionRight,
	"d":     core.ActionRight,
	"up":    core.ActionRotateCW,
	"k":     core.ActionRotateCW,
	"w":     core.ActionRotateCW,
	"x":     core.ActionRotateCW,
	"z":     core.ActionRotateCCW,
	"down":  core.ActionSoftDrop,
	"j":     core.ActionSoftDrop,
	"s":     core.ActionSoftDrop,
	" ":     core.ActionHardDrop,
	"c":     core.ActionHold,
	"p":     core.ActionPause,
	"esc":   core.ActionPause,
	"enter": core.ActionConfirm,
	"r":     core.ActionRestart,
	"b":     core.ActionBack,
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	if a, ok := gameKeys[key]; ok {
		return a, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

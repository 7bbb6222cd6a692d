package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/plastic-tetris/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyGameActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey("h"), core.ActionLeft},
		{runeKey("a"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runeKey("l"), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateCW},
		{runeKey("x"), core.ActionRotateCW},
		{runeKey("z"), core.ActionRotateCCW},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionHardDrop},
		{runeKey("c"), core.ActionHold},
		{runeKey("p"), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{runeKey("r"), core.ActionRestart},
		{runeKey("b"), core.ActionBack},
		{runeKey("m"), core.ActionNone},
	}
	for _, tt := range tests {
		got, quit := km.MapKey(tt.msg)
		assert.Equal(t, tt.want, got, "key %q", tt.msg.String())
		assert.False(t, quit, "key %q", tt.msg.String())
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()
	for _, msg := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		action, quit := km.MapKey(msg)
		assert.Equal(t, core.ActionQuit, action)
		assert.True(t, quit)
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	assert.False(t, km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame))
	assert.False(t, km.MapKeyToFrame(runeKey("x"), &frame))
	assert.True(t, frame.Has(core.ActionLeft))
	assert.True(t, frame.Has(core.ActionRotateCW))
	assert.False(t, frame.Has(core.ActionHardDrop))

	assert.True(t, km.MapKeyToFrame(runeKey("q"), &frame))
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("m"), MenuActionNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, km.MapKeyToMenuAction(tt.msg), "key %q", tt.msg.String())
	}
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// gameKeys binds key names, as reported by tea.KeyMsg.String, to actions.
var gameKeys = map[string]core.Action{
	"ctrl+c": core.ActionQuit,
	"q":      core.ActionQuit,

	"up":    core.ActionUp,
	"w":     core.ActionUp,
	"k":     core.ActionUp,
	"down":  core.ActionDown,
	"s":     core.ActionDown,
	"j":     core.ActionDown,
	"left":  core.ActionLeft,
	"a":     core.ActionLeft,
	"h":     core.ActionLeft,
	"right": core.ActionRight,
	"d":     core.ActionRight,
	"l":     core.ActionRight,

	"enter": core.ActionConfirm,
	"p":     core.ActionPause,
	" ":     core.ActionPause,
	"esc":   core.ActionPause,
	"r":     core.ActionRestart,
	"b":     core.ActionBack,
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

var menuKeys = map[string]MenuAction{
	"ctrl+c": MenuActionQuit,
	"q":      MenuActionQuit,
	"up":     MenuActionUp,
	"w":      MenuActionUp,
	"k":      MenuActionUp,
	"down":   MenuActionDown,
	"s":      MenuActionDown,
	"j":      MenuActionDown,
	"enter":  MenuActionSelect,
	" ":      MenuActionSelect,
	"esc":    MenuActionBack,
	"b":      MenuActionBack,
	"tab":    MenuActionScoreboard,
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the action bound to the key (ActionNone when unbound) and
// whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = gameKeys[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToFrame records the key's action in frame and reports a quit
// request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return menuKeys[msg.String()]
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a high-level input action derived from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionConfirm
	ActionRestart
	ActionPause
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit
	case "left", "a", "h":
		return ActionMoveLeft
	case "right", "d", "l":
		return ActionMoveRight
	case " ", "up", "w":
		return ActionJump
	case "enter":
		return ActionConfirm
	case "r":
		return ActionRestart
	case "p", "esc":
		return ActionPause
	}
	return ActionNone
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hblok/starfighter/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a":
		return core.ActionRotateLeft, false
	case "right", "d":
		return core.ActionRotateRight, false
	case "up", "w":
		return core.ActionThrust, false
	case " ":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// IsHeld reports whether an action should persist across frames while the
// key is physically held. Terminals only deliver repeated presses, so held
// actions are tracked with a hold window instead of a single-frame edge.
func (km *KeyMapper) IsHeld(a core.Action) bool {
	switch a {
	case core.ActionRotateLeft, core.ActionRotateRight, core.ActionThrust, core.ActionFire:
		return true
	}
	return false
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// MapKey translates a terminal key press into a flight action.
// ActionNone means the key is not bound.
func MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case " ", "up":
		return core.ActionThrust
	case "left", "a":
		return core.ActionRotateLeft
	case "right", "d":
		return core.ActionRotateRight
	case "down", "s":
		return core.ActionPitchForward
	case "w":
		return core.ActionPitchBack
	case "enter":
		return core.ActionStart
	case "r":
		return core.ActionRestart
	case "p", "esc":
		return core.ActionPause
	case "1":
		return core.ActionEasy
	case "2":
		return core.ActionNormal
	case "3":
		return core.ActionHard
	case "q", "ctrl+c":
		return core.ActionQuit
	}
	return core.ActionNone
}

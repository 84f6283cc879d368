package ui

import "github.com/gdamore/tcell/v2"

// Action is a discrete command decoded from a key press. Mouse aiming is
// handled by the app from raw mouse events; keys cover the menus and the
// keyboard aiming fallback.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionConfirm // start, restart, or fire the keyboard aim
	ActionPause
	ActionSettings
	ActionEasyToggle
	ActionSpeed
	ActionAimLeft
	ActionAimRight
	ActionMoveLeft // easy mode: nudge the launch point
	ActionMoveRight
)

// KeyToAction converts a key event to an action
func KeyToAction(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape:
		return ActionPause
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyLeft:
		return ActionAimLeft
	case tcell.KeyRight:
		return ActionAimRight
	case tcell.KeyTab:
		return ActionSpeed
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return ActionQuit
		case ' ':
			return ActionConfirm
		case 'p', 'P':
			return ActionPause
		case 'o', 'O':
			return ActionSettings
		case 'e', 'E':
			return ActionEasyToggle
		case 'f', 'F':
			return ActionSpeed
		case 'a', 'A':
			return ActionAimLeft
		case 'd', 'D':
			return ActionAimRight
		case 'h', 'H':
			return ActionMoveLeft
		case 'l', 'L':
			return ActionMoveRight
		}
	}
	return ActionNone
}

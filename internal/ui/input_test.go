package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToAction(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		rune rune
		want Action
	}{
		{tcell.KeyEscape, 0, ActionPause},
		{tcell.KeyEnter, 0, ActionConfirm},
		{tcell.KeyLeft, 0, ActionAimLeft},
		{tcell.KeyRight, 0, ActionAimRight},
		{tcell.KeyTab, 0, ActionSpeed},
		{tcell.KeyCtrlC, 0, ActionQuit},
		{tcell.KeyRune, 'q', ActionQuit},
		{tcell.KeyRune, 'Q', ActionQuit},
		{tcell.KeyRune, ' ', ActionConfirm},
		{tcell.KeyRune, 'p', ActionPause},
		{tcell.KeyRune, 'o', ActionSettings},
		{tcell.KeyRune, 'e', ActionEasyToggle},
		{tcell.KeyRune, 'f', ActionSpeed},
		{tcell.KeyRune, 'a', ActionAimLeft},
		{tcell.KeyRune, 'd', ActionAimRight},
		{tcell.KeyRune, 'h', ActionMoveLeft},
		{tcell.KeyRune, 'l', ActionMoveRight},
		{tcell.KeyRune, 'x', ActionNone},
		{tcell.KeyUp, 0, ActionNone},
	}

	for _, tt := range tests {
		got := KeyToAction(tt.key, tt.rune)
		if got != tt.want {
			t.Errorf("KeyToAction(%v, %c) = %v, want %v", tt.key, tt.rune, got, tt.want)
		}
	}
}

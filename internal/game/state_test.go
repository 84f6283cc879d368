package game

import "testing"

func TestTransition_MainFlow(t *testing.T) {
	tests := []struct {
		name  string
		from  State
		event Event
		want  State
		ok    bool
	}{
		{"menu start", StateMenu, EventStart, StateAiming, true},
		{"aim release", StateAiming, EventAimRelease, StateLaunching, true},
		{"launched", StateLaunching, EventLaunched, StateAnimating, true},
		{"turn ended", StateAnimating, EventTurnEnded, StateAiming, true},
		{"game over", StateAnimating, EventGameOver, StateGameOver, true},
		{"restart", StateGameOver, EventRestart, StateMenu, true},
		{"menu cannot launch", StateMenu, EventLaunched, StateMenu, false},
		{"aiming cannot end turn", StateAiming, EventTurnEnded, StateAiming, false},
		{"game over cannot start", StateGameOver, EventStart, StateGameOver, false},
		{"animating cannot release", StateAnimating, EventAimRelease, StateAnimating, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Transition(tt.from, tt.event)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Transition(%v,%v) = (%v,%v), want (%v,%v)",
					tt.from, tt.event, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTransition_IllegalEventKeepsState(t *testing.T) {
	for _, s := range []State{StateMenu, StateAiming, StateLaunching, StateAnimating, StateGameOver} {
		if got, ok := Transition(s, EventRestart); s != StateGameOver && (ok || got != s) {
			t.Errorf("expected restart to be illegal in %v, got (%v,%v)", s, got, ok)
		}
	}
}

func TestState_String(t *testing.T) {
	if StateAiming.String() != "aiming" || StateGameOver.String() != "gameOver" {
		t.Error("unexpected state names")
	}
	if State(99).String() != "unknown" {
		t.Error("expected unknown for out-of-range state")
	}
}

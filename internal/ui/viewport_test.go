package ui

import (
	"testing"

	"github.com/qhalsey/BlitzBallz/internal/physics"
	"github.com/qhalsey/BlitzBallz/internal/vec"
)

func TestViewport_ToScreen(t *testing.T) {
	l := physics.DefaultLayout()
	v := NewViewport(l, 84, 32) // court is 30 rows

	x, y := v.ToScreen(vec.New(0, 0))
	if x != 0 || y != 1 {
		t.Errorf("origin mapped to (%d,%d), want (0,1)", x, y)
	}

	x, y = v.ToScreen(vec.New(l.Width/2, l.Height/2))
	if x != 42 || y != 16 {
		t.Errorf("center mapped to (%d,%d), want (42,16)", x, y)
	}
}

func TestViewport_ToPlayRoundTrip(t *testing.T) {
	l := physics.DefaultLayout()
	v := NewViewport(l, 84, 32)

	p := v.ToPlay(42, 16)
	x, y := v.ToScreen(p)
	if x != 42 || y != 16 {
		t.Errorf("round trip gave (%d,%d), want (42,16)", x, y)
	}
}

func TestViewport_TinyScreenDoesNotDivideByZero(t *testing.T) {
	l := physics.DefaultLayout()
	v := NewViewport(l, 10, 2)
	if v.ScaleY <= 0 {
		t.Errorf("expected positive ScaleY, got %f", v.ScaleY)
	}
}

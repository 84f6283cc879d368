package ui

import (
	"github.com/qhalsey/BlitzBallz/internal/physics"
	"github.com/qhalsey/BlitzBallz/internal/vec"
)

// Viewport maps the fixed play space onto terminal cells. The top row is
// reserved for the HUD and the bottom row for hints; the court fills the
// rest. Terminal cells are roughly twice as tall as wide, so the two axes
// scale independently.
type Viewport struct {
	OffsetY int
	ScaleX  float64
	ScaleY  float64
}

// NewViewport computes the mapping for the given terminal size.
func NewViewport(l physics.Layout, screenW, screenH int) Viewport {
	courtH := screenH - 2
	if courtH < 1 {
		courtH = 1
	}
	return Viewport{
		OffsetY: 1,
		ScaleX:  float64(screenW) / l.Width,
		ScaleY:  float64(courtH) / l.Height,
	}
}

// ToScreen converts a play-space point to a terminal cell.
func (v Viewport) ToScreen(p vec.Vec2) (int, int) {
	return int(p.X * v.ScaleX), int(p.Y*v.ScaleY) + v.OffsetY
}

// ToPlay converts a terminal cell back to play-space coordinates, the
// inverse used for mouse input. Cell centers map back to cell centers.
func (v Viewport) ToPlay(x, y int) vec.Vec2 {
	return vec.Vec2{
		X: (float64(x) + 0.5) / v.ScaleX,
		Y: (float64(y-v.OffsetY) + 0.5) / v.ScaleY,
	}
}

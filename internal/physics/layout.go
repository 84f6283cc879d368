package physics

import "github.com/qhalsey/BlitzBallz/internal/vec"

// Default virtual play-space dimensions. The renderer scales this fixed
// space onto whatever terminal it gets; the core never sees screen cells.
const (
	DefaultWidth   = 420.0
	DefaultHeight  = 600.0
	DefaultColumns = 7
	DefaultLastRow = 8 // row index at which a brick crosses the launch zone
)

// Layout carries the authoritative geometry for every calculation the core
// performs each frame. It is recomputed by the rendering side on resize and
// handed in whole; the core does no layout of its own.
type Layout struct {
	Width        float64 // play area width
	Height       float64 // play area height
	CellW        float64 // grid cell width
	CellH        float64 // grid cell height
	GridTop      float64 // y offset of grid row 0
	LaunchY      float64 // top of the launch zone; balls return here
	BallRadius   float64
	PickupRadius float64
	Scale        float64 // uniform display scale factor
	Columns      int
	LastRow      int // first row index that is no longer playable
}

// DefaultLayout returns the standard 7-column layout.
func DefaultLayout() Layout {
	return NewLayout(DefaultColumns)
}

// NewLayout returns the layout for the given column count. Cells stay
// square, so fewer columns mean bigger bricks and fewer playable rows.
func NewLayout(columns int) Layout {
	cell := DefaultWidth / float64(columns)
	launchY := DefaultHeight - 20
	return Layout{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		CellW:        cell,
		CellH:        cell,
		GridTop:      cell,
		LaunchY:      launchY,
		BallRadius:   8,
		PickupRadius: 15,
		Scale:        1,
		Columns:      columns,
		LastRow:      int((launchY - cell) / cell),
	}
}

// BrickRect returns the unexpanded bounds of the brick cell at col,row.
// Bricks are inset slightly from the cell so neighbours read as separate.
func (l Layout) BrickRect(col, row int) Rect {
	const inset = 2.0
	x := float64(col) * l.CellW
	y := l.GridTop + float64(row)*l.CellH
	return Rect{
		Left:   x + inset,
		Top:    y + inset,
		Right:  x + l.CellW - inset,
		Bottom: y + l.CellH - inset,
	}
}

// PickupCenter returns the center point of the pickup at col,row.
func (l Layout) PickupCenter(col, row int) vec.Vec2 {
	return vec.Vec2{
		X: float64(col)*l.CellW + l.CellW/2,
		Y: l.GridTop + float64(row)*l.CellH + l.CellH/2,
	}
}

// bottomY is the y coordinate at which a ball center counts as returned.
func (l Layout) bottomY() float64 {
	return l.LaunchY - l.BallRadius
}

// Rect is an axis-aligned rectangle in play-space coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Expand grows the rectangle outward by m on all sides.
func (r Rect) Expand(m float64) Rect {
	return Rect{
		Left:   r.Left - m,
		Top:    r.Top - m,
		Right:  r.Right + m,
		Bottom: r.Bottom + m,
	}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p vec.Vec2) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

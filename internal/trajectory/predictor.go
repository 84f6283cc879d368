// Package trajectory computes the aim preview: the multi-bounce path a ball
// would take from the launch point, built on the collision engine's ray
// primitives rather than stepped simulation so the preview is exact and pure.
package trajectory

import (
	"math"

	"github.com/qhalsey/BlitzBallz/internal/physics"
	"github.com/qhalsey/BlitzBallz/internal/vec"
)

const (
	// DefaultMaxBounces caps the preview length.
	DefaultMaxBounces = 4

	// surfaceEps rejects near-zero-distance hits so the path never
	// re-collides with the surface it just left.
	surfaceEps = 1e-3

	// farMultiple sizes the fallback extension when nothing intersects,
	// as a multiple of the play width.
	farMultiple = 4.0

	// capExtension is the length of the final straight segment appended
	// when the bounce cap is reached, so the preview ends in a visible
	// line rather than a bare point.
	capExtension = 80.0
)

// Point is one vertex of the preview path.
type Point struct {
	Pos    vec.Vec2
	Bounce bool
}

// Predictor computes preview paths over a collision engine.
type Predictor struct {
	Engine     *physics.Engine
	MaxBounces int
}

// New creates a predictor with the default bounce cap.
func New(e *physics.Engine) *Predictor {
	return &Predictor{Engine: e, MaxBounces: DefaultMaxBounces}
}

// Predict returns the ordered preview path from origin along dir, bouncing
// off walls and the given brick rectangles. dir is normalized internally; a
// zero direction yields just the origin point. The path always begins with
// the origin and always terminates in a non-bounce point. Pure: repeated
// calls with the same inputs yield the same sequence.
func (p *Predictor) Predict(origin, dir vec.Vec2, bricks []physics.Rect) []Point {
	points := []Point{{Pos: origin}}

	dir = dir.Normalize()
	if dir.IsZero() {
		return points
	}

	pos := origin
	for bounce := 0; bounce < p.MaxBounces; bounce++ {
		hit, found := p.nearestHit(pos, dir, bricks)

		// The bottom boundary terminates the path: the ball returns to
		// the launch zone rather than bouncing.
		if bottomT, ok := p.bottomIntersection(pos, dir); ok {
			if !found || bottomT < hit.Dist {
				points = append(points, Point{Pos: pos.Add(dir.Scale(bottomT))})
				return points
			}
		}

		if !found {
			far := pos.Add(dir.Scale(farMultiple * p.Engine.Layout.Width))
			points = append(points, Point{Pos: far})
			return points
		}

		points = append(points, Point{Pos: hit.Point, Bounce: true})
		dir = dir.Reflect(hit.Normal)
		pos = hit.Point
	}

	// Cap reached: one final straight extension.
	points = append(points, Point{Pos: pos.Add(dir.Scale(capExtension))})
	return points
}

// nearestHit returns the closest forward intersection among the walls and
// every brick, ignoring hits within surfaceEps of the ray origin.
func (p *Predictor) nearestHit(pos, dir vec.Vec2, bricks []physics.Rect) (physics.RayHit, bool) {
	best := physics.RayHit{Dist: math.Inf(1)}
	found := false

	if hit, ok := p.Engine.CastToWalls(pos, dir); ok && hit.Dist > surfaceEps {
		best = hit
		found = true
	}
	for _, r := range bricks {
		hit, ok := p.Engine.CastToRect(pos, dir, r)
		if ok && hit.Dist > surfaceEps && hit.Dist < best.Dist {
			best = hit
			found = true
		}
	}
	return best, found
}

// bottomIntersection returns the forward distance to the bottom boundary
// plane, if the ray crosses it.
func (p *Predictor) bottomIntersection(pos, dir vec.Vec2) (float64, bool) {
	if dir.Y <= 0 {
		return 0, false
	}
	bottom := p.Engine.Layout.LaunchY - p.Engine.Layout.BallRadius
	t := (bottom - pos.Y) / dir.Y
	if t <= surfaceEps {
		return 0, false
	}
	return t, true
}

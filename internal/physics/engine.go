package physics

import (
	"math"

	"github.com/qhalsey/BlitzBallz/internal/vec"
)

const (
	// pushEps keeps a resolved ball clear of the surface it just hit so the
	// next frame cannot re-collide with it.
	pushEps = 1.0
)

// Body is a moving point with a velocity, the physical part of a ball.
type Body struct {
	Pos vec.Vec2
	Vel vec.Vec2 // units per second
}

// Face identifies which side of a brick a ball struck.
type Face int

const (
	FaceNone Face = iota
	FaceLeft
	FaceRight
	FaceTop
	FaceBottom
	FaceCorner
)

// RayHit is the result of a successful ray cast.
type RayHit struct {
	Point  vec.Vec2
	Normal vec.Vec2
	Dist   float64
}

// Engine resolves ball motion against the walls and brick grid. All of its
// methods are total: a miss is a defined result, never an error.
type Engine struct {
	Layout Layout
}

// NewEngine creates an engine over the given layout.
func NewEngine(l Layout) *Engine {
	return &Engine{Layout: l}
}

// Advance integrates the body's position by velocity over dt seconds scaled
// by the speed multiplier. dt is clamped upstream to at most 100ms per frame.
func (e *Engine) Advance(b *Body, dt, speed float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt * speed))
}

// ResolveWalls tests the body against the left, right and top boundaries
// expanded inward by the ball radius. On contact the position is clamped to
// the boundary and the offending velocity component flips sign, a perfect
// elastic reflection. Returns true if any wall was hit. The bottom boundary
// is not a wall; see ReachedBottom.
func (e *Engine) ResolveWalls(b *Body) bool {
	l := e.Layout
	r := l.BallRadius
	hit := false

	if b.Pos.X < r {
		b.Pos.X = r
		b.Vel.X = math.Abs(b.Vel.X)
		hit = true
	}
	if b.Pos.X > l.Width-r {
		b.Pos.X = l.Width - r
		b.Vel.X = -math.Abs(b.Vel.X)
		hit = true
	}
	if b.Pos.Y < r {
		b.Pos.Y = r
		b.Vel.Y = math.Abs(b.Vel.Y)
		hit = true
	}
	return hit
}

// ReachedBottom reports whether the body has returned to the launch zone.
func (e *Engine) ReachedBottom(b *Body) bool {
	return b.Pos.Y >= e.Layout.bottomY()
}

// ResolveBrick tests the body against a brick rectangle expanded by the ball
// radius on all sides and, on contact, reflects the velocity and pushes the
// body out of the collision volume. The returned Face tells the caller which
// side was struck so brick damage is applied exactly once per contact;
// FaceNone means no contact.
func (e *Engine) ResolveBrick(b *Body, brick Rect) Face {
	r := e.Layout.BallRadius
	exp := brick.Expand(r)
	if !exp.Contains(b.Pos) {
		return FaceNone
	}

	outsideX := b.Pos.X < brick.Left || b.Pos.X > brick.Right
	outsideY := b.Pos.Y < brick.Top || b.Pos.Y > brick.Bottom
	if outsideX && outsideY {
		return e.resolveCorner(b, brick)
	}

	// Face hit: the axis with the smaller penetration decides whether the
	// correction is horizontal or vertical, and within that axis the side
	// with the smaller overlap decides the sign.
	overlapLeft := b.Pos.X - exp.Left
	overlapRight := exp.Right - b.Pos.X
	overlapTop := b.Pos.Y - exp.Top
	overlapBottom := exp.Bottom - b.Pos.Y

	minX := math.Min(overlapLeft, overlapRight)
	minY := math.Min(overlapTop, overlapBottom)

	if minX < minY {
		if overlapLeft < overlapRight {
			b.Pos.X = exp.Left - pushEps
			b.Vel.X = -math.Abs(b.Vel.X)
			return FaceLeft
		}
		b.Pos.X = exp.Right + pushEps
		b.Vel.X = math.Abs(b.Vel.X)
		return FaceRight
	}
	if overlapTop < overlapBottom {
		b.Pos.Y = exp.Top - pushEps
		b.Vel.Y = -math.Abs(b.Vel.Y)
		return FaceTop
	}
	b.Pos.Y = exp.Bottom + pushEps
	b.Vel.Y = math.Abs(b.Vel.Y)
	return FaceBottom
}

// resolveCorner handles the diagonal case: the ball center is outside both
// axes of the unexpanded rectangle, so the collision volume is the quarter
// circle around the nearest corner.
func (e *Engine) resolveCorner(b *Body, brick Rect) Face {
	r := e.Layout.BallRadius

	corner := vec.Vec2{X: brick.Left, Y: brick.Top}
	if b.Pos.X > brick.Right {
		corner.X = brick.Right
	}
	if b.Pos.Y > brick.Bottom {
		corner.Y = brick.Bottom
	}

	away := b.Pos.Sub(corner)
	if away.Len() >= r {
		return FaceNone
	}

	// Reflect both components and push the ball out along the line from the
	// corner to the ball center.
	b.Vel.X = -b.Vel.X
	b.Vel.Y = -b.Vel.Y
	dir := away.Normalize()
	if dir.IsZero() {
		dir = vec.Vec2{X: 0, Y: -1}
	}
	b.Pos = corner.Add(dir.Scale(r + pushEps))
	return FaceCorner
}

// PickupOverlaps reports whether the body overlaps a pickup at center, a
// plain circle-circle distance test.
func (e *Engine) PickupOverlaps(b *Body, center vec.Vec2) bool {
	threshold := e.Layout.BallRadius + e.Layout.PickupRadius
	return b.Pos.Sub(center).LenSq() < threshold*threshold
}

// CastToWalls casts a ray from origin along dir against the side and top
// boundaries expanded inward by the ball radius, returning the nearest
// forward intersection. Hits outside the playable vertical range are
// rejected so the cast never selects an unreachable wall segment. A zero or
// receding direction yields no hit.
func (e *Engine) CastToWalls(origin, dir vec.Vec2) (RayHit, bool) {
	l := e.Layout
	r := l.BallRadius
	best := RayHit{Dist: math.Inf(1)}
	found := false

	consider := func(t float64, normal vec.Vec2) {
		if t <= 0 {
			return
		}
		p := origin.Add(dir.Scale(t))
		if p.Y < r || p.Y > l.bottomY() {
			return
		}
		if p.X < r-1e-9 || p.X > l.Width-r+1e-9 {
			return
		}
		if t < best.Dist {
			best = RayHit{Point: p, Normal: normal, Dist: t}
			found = true
		}
	}

	// A direction component of zero cannot cross that axis's planes.
	if dir.X < 0 {
		consider((r-origin.X)/dir.X, vec.Vec2{X: 1, Y: 0})
	} else if dir.X > 0 {
		consider((l.Width-r-origin.X)/dir.X, vec.Vec2{X: -1, Y: 0})
	}
	if dir.Y < 0 {
		consider((r-origin.Y)/dir.Y, vec.Vec2{X: 0, Y: 1})
	}

	return best, found
}

// CastToRect casts a ray against the rectangle expanded by the ball radius,
// the same collision volume ResolveBrick uses, via the closed-form slab
// test. Only forward intersections count.
func (e *Engine) CastToRect(origin, dir vec.Vec2, rect Rect) (RayHit, bool) {
	exp := rect.Expand(e.Layout.BallRadius)

	tEntry := math.Inf(-1)
	tExit := math.Inf(1)
	normal := vec.Vec2{}

	// X slab. A zero component cannot cross this axis's planes; the ray
	// must already be inside the slab or it misses.
	if dir.X != 0 {
		t1 := (exp.Left - origin.X) / dir.X
		t2 := (exp.Right - origin.X) / dir.X
		n := vec.Vec2{X: -1, Y: 0}
		if t1 > t2 {
			t1, t2 = t2, t1
			n = vec.Vec2{X: 1, Y: 0}
		}
		if t1 > tEntry {
			tEntry = t1
			normal = n
		}
		if t2 < tExit {
			tExit = t2
		}
	} else if origin.X < exp.Left || origin.X > exp.Right {
		return RayHit{}, false
	}

	// Y slab.
	if dir.Y != 0 {
		t1 := (exp.Top - origin.Y) / dir.Y
		t2 := (exp.Bottom - origin.Y) / dir.Y
		n := vec.Vec2{X: 0, Y: -1}
		if t1 > t2 {
			t1, t2 = t2, t1
			n = vec.Vec2{X: 0, Y: 1}
		}
		if t1 > tEntry {
			tEntry = t1
			normal = n
		}
		if t2 < tExit {
			tExit = t2
		}
	} else if origin.Y < exp.Top || origin.Y > exp.Bottom {
		return RayHit{}, false
	}

	if tEntry > tExit || tEntry <= 0 {
		return RayHit{}, false
	}

	return RayHit{
		Point:  origin.Add(dir.Scale(tEntry)),
		Normal: normal,
		Dist:   tEntry,
	}, true
}

package trajectory

import (
	"math"
	"testing"

	"github.com/qhalsey/BlitzBallz/internal/physics"
	"github.com/qhalsey/BlitzBallz/internal/vec"
)

func testPredictor() *Predictor {
	return New(physics.NewEngine(physics.DefaultLayout()))
}

func TestPredict_StartsAtOrigin(t *testing.T) {
	p := testPredictor()
	origin := vec.New(210, 560)

	points := p.Predict(origin, vec.New(0, -1), nil)

	if len(points) < 2 {
		t.Fatalf("expected at least 2 points, got %d", len(points))
	}
	if points[0].Pos != origin {
		t.Errorf("expected first point at origin, got (%f,%f)", points[0].Pos.X, points[0].Pos.Y)
	}
	if points[0].Bounce {
		t.Error("expected origin point to be non-bounce")
	}
}

func TestPredict_TerminatesAtReturnZone(t *testing.T) {
	p := testPredictor()
	l := p.Engine.Layout
	origin := vec.New(210, 560)

	// Straight down-left with nothing in the way: exactly the origin and
	// the bottom-boundary intersection, both non-bounce.
	points := p.Predict(origin, vec.New(-1, 1), nil)

	if len(points) != 2 {
		t.Fatalf("expected exactly 2 points, got %d", len(points))
	}
	if points[1].Bounce {
		t.Error("expected bottom termination point to be non-bounce")
	}
	wantY := l.LaunchY - l.BallRadius
	if math.Abs(points[1].Pos.Y-wantY) > 1e-9 {
		t.Errorf("expected termination at y=%f, got %f", wantY, points[1].Pos.Y)
	}
}

func TestPredict_TopWallBounce(t *testing.T) {
	p := testPredictor()
	l := p.Engine.Layout

	points := p.Predict(vec.New(210, 560), vec.New(0, -1), nil)

	// Origin, top-wall bounce, bottom termination
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if !points[1].Bounce {
		t.Error("expected second point to be a bounce")
	}
	if points[1].Pos.Y != l.BallRadius {
		t.Errorf("expected bounce at top boundary y=%f, got %f", l.BallRadius, points[1].Pos.Y)
	}
	if points[2].Bounce {
		t.Error("expected final point to be non-bounce")
	}
}

func TestPredict_BrickBounce(t *testing.T) {
	p := testPredictor()
	l := p.Engine.Layout
	brick := physics.Rect{Left: 180, Top: 100, Right: 240, Bottom: 160}

	points := p.Predict(vec.New(210, 560), vec.New(0, -1), []physics.Rect{brick})

	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	wantY := brick.Bottom + l.BallRadius
	if !points[1].Bounce || points[1].Pos.Y != wantY {
		t.Errorf("expected bounce at expanded brick bottom %f, got %f (bounce=%v)",
			wantY, points[1].Pos.Y, points[1].Bounce)
	}
}

func TestPredict_Deterministic(t *testing.T) {
	p := testPredictor()
	origin := vec.New(150, 560)
	dir := vec.New(0.6, -0.8)
	bricks := []physics.Rect{
		{Left: 60, Top: 120, Right: 120, Bottom: 180},
		{Left: 240, Top: 60, Right: 300, Bottom: 120},
	}

	first := p.Predict(origin, dir, bricks)
	second := p.Predict(origin, dir, bricks)

	if len(first) != len(second) {
		t.Fatalf("expected identical lengths, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("point %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestPredict_BounceCap(t *testing.T) {
	p := testPredictor()

	// A shallow zigzag between the side walls never reaches top or bottom
	// within the cap.
	points := p.Predict(vec.New(210, 300), vec.New(1, -0.05), nil)

	bounces := 0
	for _, pt := range points {
		if pt.Bounce {
			bounces++
		}
	}
	if bounces != p.MaxBounces {
		t.Errorf("expected exactly %d bounces, got %d", p.MaxBounces, bounces)
	}
	last := points[len(points)-1]
	if last.Bounce {
		t.Error("expected path to terminate in a non-bounce point")
	}
	// The cap appends a straight extension, not a bare endpoint
	if len(points) != p.MaxBounces+2 {
		t.Errorf("expected %d points with final extension, got %d", p.MaxBounces+2, len(points))
	}
}

func TestPredict_FarExtensionWhenNoHit(t *testing.T) {
	p := testPredictor()
	l := p.Engine.Layout

	// Dead-horizontal aim from below the playable wall range: the wall
	// casts reject their intersections and there is no bottom crossing.
	origin := vec.New(210, l.LaunchY-2)
	points := p.Predict(origin, vec.New(1, 0), nil)

	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[1].Bounce {
		t.Error("expected far-extension point to be non-bounce")
	}
	wantX := origin.X + farMultiple*l.Width
	if points[1].Pos.X != wantX {
		t.Errorf("expected far extension at x=%f, got %f", wantX, points[1].Pos.X)
	}
}

func TestPredict_ZeroDirection(t *testing.T) {
	p := testPredictor()

	points := p.Predict(vec.New(210, 560), vec.Vec2{}, nil)

	if len(points) != 1 {
		t.Fatalf("expected only the origin for a zero direction, got %d points", len(points))
	}
}

package vec

import (
	"math"
	"testing"
)

func TestVec2_AddSub(t *testing.T) {
	a := New(1.0, 2.0)
	b := New(3.0, -4.0)

	sum := a.Add(b)
	if sum.X != 4.0 || sum.Y != -2.0 {
		t.Errorf("expected (4,-2), got (%f,%f)", sum.X, sum.Y)
	}

	diff := a.Sub(b)
	if diff.X != -2.0 || diff.Y != 6.0 {
		t.Errorf("expected (-2,6), got (%f,%f)", diff.X, diff.Y)
	}
}

func TestVec2_Scale(t *testing.T) {
	v := New(2.0, -3.0).Scale(2.5)
	if v.X != 5.0 || v.Y != -7.5 {
		t.Errorf("expected (5,-7.5), got (%f,%f)", v.X, v.Y)
	}
}

func TestVec2_Dot(t *testing.T) {
	a := New(1.0, 2.0)
	b := New(3.0, 4.0)
	if d := a.Dot(b); d != 11.0 {
		t.Errorf("expected dot 11, got %f", d)
	}

	// Perpendicular vectors have zero dot product
	if d := New(1, 0).Dot(New(0, 1)); d != 0 {
		t.Errorf("expected dot 0 for perpendicular vectors, got %f", d)
	}
}

func TestVec2_Len(t *testing.T) {
	v := New(3.0, 4.0)

	// 3-4-5 triangle
	if v.Len() != 5.0 {
		t.Errorf("expected length 5, got %f", v.Len())
	}
	if v.LenSq() != 25.0 {
		t.Errorf("expected squared length 25, got %f", v.LenSq())
	}
}

func TestVec2_Normalize(t *testing.T) {
	v := New(3.0, 4.0).Normalize()

	if math.Abs(v.Len()-1.0) > 1e-12 {
		t.Errorf("expected unit length, got %f", v.Len())
	}
	if math.Abs(v.X-0.6) > 1e-12 || math.Abs(v.Y-0.8) > 1e-12 {
		t.Errorf("expected (0.6,0.8), got (%f,%f)", v.X, v.Y)
	}
}

func TestVec2_NormalizeZero(t *testing.T) {
	// A zero vector must normalize to zero, not divide by zero
	v := Vec2{}.Normalize()
	if !v.IsZero() {
		t.Errorf("expected zero vector, got (%f,%f)", v.X, v.Y)
	}
}

func TestVec2_Reflect(t *testing.T) {
	// Diagonal velocity reflecting off a vertical wall (normal pointing +x):
	// x component flips, y component unchanged.
	v := New(-2.0, 3.0).Reflect(New(1, 0))
	if v.X != 2.0 || v.Y != 3.0 {
		t.Errorf("expected (2,3), got (%f,%f)", v.X, v.Y)
	}

	// Speed is preserved by reflection
	in := New(-1.5, 2.5)
	out := in.Reflect(New(0, 1))
	if math.Abs(in.Len()-out.Len()) > 1e-12 {
		t.Errorf("expected speed preserved, was %f now %f", in.Len(), out.Len())
	}
}

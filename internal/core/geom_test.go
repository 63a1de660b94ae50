package core

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func vecAlmostEqual(a, b Vec2) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	if got := a.Add(b); !vecAlmostEqual(got, Vec2{X: 4, Y: 2}) {
		t.Errorf("Add() = %v, expected {4 2}", got)
	}
	if got := a.Sub(b); !vecAlmostEqual(got, Vec2{X: 2, Y: 6}) {
		t.Errorf("Sub() = %v, expected {2 6}", got)
	}
	if got := a.Scale(2); !vecAlmostEqual(got, Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale() = %v, expected {6 8}", got)
	}
	if got := a.Length(); !almostEqual(got, 5) {
		t.Errorf("Length() = %f, expected 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	n := v.Normalize()
	if !almostEqual(n.Length(), 1) {
		t.Errorf("Normalize() length = %f, expected 1", n.Length())
	}
	if !vecAlmostEqual(n, Vec2{X: 0.6, Y: 0.8}) {
		t.Errorf("Normalize() = %v, expected {0.6 0.8}", n)
	}
}

func TestVec2NormalizeZero(t *testing.T) {
	n := Vec2{}.Normalize()
	if n != (Vec2{}) {
		t.Errorf("Normalize() of zero vector = %v, expected zero vector", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) {
		t.Error("Normalize() of zero vector produced NaN")
	}
}

func TestVec2Rotate(t *testing.T) {
	v := Vec2{X: 1, Y: 0}

	if got := v.Rotate(math.Pi / 2); !vecAlmostEqual(got, Vec2{X: 0, Y: 1}) {
		t.Errorf("Rotate(pi/2) = %v, expected {0 1}", got)
	}
	if got := v.Rotate(math.Pi); !vecAlmostEqual(got, Vec2{X: -1, Y: 0}) {
		t.Errorf("Rotate(pi) = %v, expected {-1 0}", got)
	}
	if got := v.Rotate(2 * math.Pi); !vecAlmostEqual(got, v) {
		t.Errorf("Rotate(2pi) = %v, expected %v", got, v)
	}
}

func TestDir(t *testing.T) {
	if got := Dir(0); !vecAlmostEqual(got, Vec2{X: 1, Y: 0}) {
		t.Errorf("Dir(0) = %v, expected {1 0}", got)
	}
	if got := Dir(math.Pi / 2); !vecAlmostEqual(got, Vec2{X: 0, Y: 1}) {
		t.Errorf("Dir(pi/2) = %v, expected {0 1}", got)
	}
	if got := Dir(1.234).Length(); !almostEqual(got, 1) {
		t.Errorf("Dir() length = %f, expected 1", got)
	}
}

func TestDistance(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 3, Y: 4}
	if got := Distance(a, b); !almostEqual(got, 5) {
		t.Errorf("Distance() = %f, expected 5", got)
	}
	if got := Distance(b, a); !almostEqual(got, 5) {
		t.Errorf("Distance() (reversed) = %f, expected 5", got)
	}
}

func TestWrap(t *testing.T) {
	const w, h = 1280.0, 960.0

	tests := []struct {
		name     string
		in       Vec2
		expected Vec2
	}{
		{"interior unchanged", Vec2{X: 100, Y: 200}, Vec2{X: 100, Y: 200}},
		{"past right edge", Vec2{X: 1290, Y: 200}, Vec2{X: 10, Y: 200}},
		{"past top edge", Vec2{X: 100, Y: 970}, Vec2{X: 100, Y: 10}},
		{"negative x snaps to extent", Vec2{X: -5, Y: 200}, Vec2{X: w, Y: 200}},
		{"negative y snaps to extent", Vec2{X: 100, Y: -5}, Vec2{X: 100, Y: h}},
		{"exactly zero snaps to extent", Vec2{X: 0, Y: 0}, Vec2{X: w, Y: h}},
		{"exactly at extent wraps to zero", Vec2{X: w, Y: h}, Vec2{X: 0, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Wrap(tc.in, w, h)
			if !vecAlmostEqual(got, tc.expected) {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestWrapIdempotentInterior(t *testing.T) {
	const w, h = 1280.0, 960.0

	points := []Vec2{
		{X: 1, Y: 1},
		{X: 640, Y: 480},
		{X: 1279.5, Y: 959.5},
	}
	for _, p := range points {
		once := Wrap(p, w, h)
		twice := Wrap(once, w, h)
		if !vecAlmostEqual(once, twice) {
			t.Errorf("Wrap not idempotent for %v: %v then %v", p, once, twice)
		}
	}
}

func TestTransform(t *testing.T) {
	// A unit +X point rotated 90 degrees, scaled by 2, moved to (10, 20)
	// should land at (10, 22).
	got := Transform(Vec2{X: 1, Y: 0}, math.Pi/2, 2, Vec2{X: 10, Y: 20})
	if !vecAlmostEqual(got, Vec2{X: 10, Y: 22}) {
		t.Errorf("Transform() = %v, expected {10 22}", got)
	}
}

func TestTransformIdentity(t *testing.T) {
	p := Vec2{X: 0.3, Y: -0.7}
	got := Transform(p, 0, 1, Vec2{})
	if !vecAlmostEqual(got, p) {
		t.Errorf("Transform() identity = %v, expected %v", got, p)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

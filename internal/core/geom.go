// Package core provides fundamental types and utilities for the arcade
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D point or vector in world space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the Euclidean magnitude of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length.
// A zero-length vector normalizes to the zero vector, never NaN.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotate returns v rotated by the given angle in radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Dir returns the unit vector pointing along the given angle in radians.
func Dir(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: cos, Y: sin}
}

// Distance returns the distance between two points.
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Length()
}

// Wrap maps a position onto a toroidal arena of the given extents.
// Per axis: a coordinate that is <= 0 snaps to the axis extent, anything
// else is taken modulo the extent. A coordinate of exactly 0 therefore
// wraps to the far edge; entity displacement never escapes the arena.
func Wrap(p Vec2, w, h float64) Vec2 {
	return Vec2{X: wrapAxis(p.X, w), Y: wrapAxis(p.Y, h)}
}

func wrapAxis(v, extent float64) float64 {
	if v <= 0 {
		return extent
	}
	return math.Mod(v, extent)
}

// Transform rotates a local-space point, applies a uniform scale, and
// translates it by origin. Used both for rendering and for producing final
// shape point lists.
func Transform(p Vec2, rotation, scale float64, origin Vec2) Vec2 {
	return p.Rotate(rotation).Scale(scale).Add(origin)
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

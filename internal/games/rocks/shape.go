package rocks

import (
	"math"

	"github.com/spacerocks/spacerocks/internal/core"
)

// Silhouette derives a rock's closed outline from its seed. The result is a
// pure function of the seed: the generator runs on a throwaway RNG stream so
// two invocations with the same seed produce identical point sequences,
// regardless of session RNG state or draw order.
//
// Vertices: N in [8, 15) at equal angular spacing, radius 0.3 + 0.2*U with a
// 20% chance of an extra -0.2 dent, and an angular jitter of up to pi/8 * U.
// Points live in roughly [-0.5, 0.5] local space; the renderer scales them
// by the rock's size.
func Silhouette(seed uint64) []core.Vec2 {
	rng := core.NewRNG(seed)

	n := 8 + rng.Intn(7)
	points := make([]core.Vec2, 0, n)
	step := 2 * math.Pi / float64(n)

	for i := 0; i < n; i++ {
		radius := 0.3 + 0.2*rng.Float()
		if rng.Float() < 0.2 {
			radius -= 0.2
		}
		angle := float64(i)*step + math.Pi/8*rng.Float()
		points = append(points, core.Dir(angle).Scale(radius))
	}
	return points
}

// shipHull is the player silhouette from the original cabinet art, in local
// space, nose toward +Y.
var shipHull = []core.Vec2{
	{X: -0.4, Y: -0.5},
	{X: 0.0, Y: 0.5},
	{X: 0.4, Y: -0.5},
	{X: 0.3, Y: -0.4},
	{X: -0.3, Y: -0.4},
}

// shipPlume is the thruster flame drawn behind the hull while accelerating.
var shipPlume = []core.Vec2{
	{X: -0.2, Y: -0.45},
	{X: 0.0, Y: -0.85},
	{X: 0.2, Y: -0.45},
}

// saucerStrokes is the alien body as open polylines: lens-shaped hull,
// canopy, and the waistline across the middle.
var saucerStrokes = [][]core.Vec2{
	{
		{X: -0.5, Y: 0.0},
		{X: -0.25, Y: 0.2},
		{X: 0.25, Y: 0.2},
		{X: 0.5, Y: 0.0},
		{X: 0.25, Y: -0.2},
		{X: -0.25, Y: -0.2},
		{X: -0.5, Y: 0.0},
	},
	{
		{X: -0.15, Y: 0.2},
		{X: -0.1, Y: 0.4},
		{X: 0.1, Y: 0.4},
		{X: 0.15, Y: 0.2},
	},
	{
		{X: -0.5, Y: 0.0},
		{X: 0.5, Y: 0.0},
	},
}

// dotShape is a small diamond used for spark particles and projectiles.
var dotShape = []core.Vec2{
	{X: 0, Y: 0.5},
	{X: 0.5, Y: 0},
	{X: 0, Y: -0.5},
	{X: -0.5, Y: 0},
}

// lineShape is a unit vertical segment; line particles rotate and scale it.
var lineShape = []core.Vec2{
	{X: 0, Y: -0.5},
	{X: 0, Y: 0.5},
}

// digitStrokes maps a single base-10 digit to its glyph, a list of open
// polylines in [-0.5, 0.5] local space (y up). Callers must reduce numbers
// to one digit before lookup; the table is only ever indexed with 0..9 by
// construction.
var digitStrokes = [10][][]core.Vec2{
	0: {{{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5}, {X: -0.5, Y: -0.5}}},
	1: {{{X: 0, Y: -0.5}, {X: 0, Y: 0.5}}},
	2: {{{X: -0.5, Y: 0.5}, {X: 0.5, Y: 0.5}, {X: 0.5, Y: 0}, {X: -0.5, Y: 0}, {X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}}},
	3: {
		{{X: -0.5, Y: 0.5}, {X: 0.5, Y: 0.5}, {X: 0.5, Y: -0.5}, {X: -0.5, Y: -0.5}},
		{{X: -0.5, Y: 0}, {X: 0.5, Y: 0}},
	},
	4: {
		{{X: -0.5, Y: 0.5}, {X: -0.5, Y: 0}, {X: 0.5, Y: 0}},
		{{X: 0.5, Y: 0.5}, {X: 0.5, Y: -0.5}},
	},
	5: {{{X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5}, {X: -0.5, Y: 0}, {X: 0.5, Y: 0}, {X: 0.5, Y: -0.5}, {X: -0.5, Y: -0.5}}},
	6: {{{X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5}, {X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0.5, Y: 0}, {X: -0.5, Y: 0}}},
	7: {{{X: -0.5, Y: 0.5}, {X: 0.5, Y: 0.5}, {X: 0.5, Y: -0.5}}},
	8: {
		{{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5}, {X: -0.5, Y: -0.5}},
		{{X: -0.5, Y: 0}, {X: 0.5, Y: 0}},
	},
	9: {{{X: 0.5, Y: 0}, {X: -0.5, Y: 0}, {X: -0.5, Y: 0.5}, {X: 0.5, Y: 0.5}, {X: 0.5, Y: -0.5}, {X: -0.5, Y: -0.5}}},
}

// DigitStrokes returns the glyph strokes for n reduced to a single base-10
// digit. Reducing here keeps the lookup in range by construction.
func DigitStrokes(n int) [][]core.Vec2 {
	if n < 0 {
		n = -n
	}
	return digitStrokes[n%10]
}

package rocks

import (
	"math"
	"strconv"

	"github.com/spacerocks/spacerocks/internal/core"
)

// DrawCall is one vector shape for the renderer: an ordered point list in
// local ~[-0.5, 0.5] space plus the transform to world space. Closed asks
// the renderer to join the final point back to the first, distinguishing
// silhouettes (ship, rocks) from open strokes (digits, saucer body).
type DrawCall struct {
	Points   []core.Vec2
	Origin   core.Vec2
	Rotation float64
	Scale    float64
	Closed   bool
}

// HUD layout in world units, y up from the bottom edge.
const (
	hudDigitScale = 22
	hudDigitStep  = 28
	hudLifeScale  = 14
	hudLifeStep   = 26
	hudMarginX    = 40
	hudMarginY    = 44
)

// DrawList translates the current entity state into ordered draw calls.
// It reads the world but never mutates it; the external renderer applies
// the transforms and rasterizes.
func (w *World) DrawList() []DrawCall {
	calls := make([]DrawCall, 0, 8+len(w.rocks)+len(w.particles)+len(w.projectiles)+2*len(w.aliens))

	calls = append(calls, w.shipCalls()...)

	for i := range w.rocks {
		r := &w.rocks[i]
		calls = append(calls, DrawCall{
			Points: Silhouette(r.Seed),
			Origin: r.Pos,
			Scale:  r.Size.Scale(),
			Closed: true,
		})
	}

	for i := range w.particles {
		p := &w.particles[i]
		switch k := p.Kind.(type) {
		case ParticleLine:
			calls = append(calls, DrawCall{
				Points:   lineShape,
				Origin:   p.Pos,
				Rotation: k.Rot,
				Scale:    k.Length,
			})
		case ParticleDot:
			calls = append(calls, DrawCall{
				Points: dotShape,
				Origin: p.Pos,
				Scale:  k.Radius * 2,
				Closed: true,
			})
		}
	}

	for i := range w.projectiles {
		p := &w.projectiles[i]
		if !p.Live() {
			continue
		}
		calls = append(calls, DrawCall{
			Points: dotShape,
			Origin: p.Pos,
			Scale:  4,
			Closed: true,
		})
	}

	for i := range w.aliens {
		a := &w.aliens[i]
		if a.Removed {
			continue
		}
		for _, stroke := range saucerStrokes {
			calls = append(calls, DrawCall{
				Points: stroke,
				Origin: a.Pos,
				Scale:  a.Size.Radius() * 2,
			})
		}
	}

	calls = append(calls, w.hudCalls()...)
	return calls
}

// shipCalls emits the hull and, while thrusting, a blinking plume.
// A dead ship renders nothing.
func (w *World) shipCalls() []DrawCall {
	if !w.ship.Alive() {
		return nil
	}

	calls := []DrawCall{{
		Points:   shipHull,
		Origin:   w.ship.Pos,
		Rotation: w.ship.Rot,
		Scale:    w.cfg.Ship.Scale,
		Closed:   true,
	}}

	if w.thrusting && math.Mod(w.now, 0.2) < 0.1 {
		calls = append(calls, DrawCall{
			Points:   shipPlume,
			Origin:   w.ship.Pos,
			Rotation: w.ship.Rot,
			Scale:    w.cfg.Ship.Scale,
		})
	}
	return calls
}

// hudCalls emits the score as vector digits and one small hull glyph per
// remaining life, along the top edge of the arena.
func (w *World) hudCalls() []DrawCall {
	var calls []DrawCall

	topY := w.cfg.World.Height - hudMarginY
	digits := strconv.Itoa(w.score)
	for i, ch := range digits {
		for _, stroke := range DigitStrokes(int(ch - '0')) {
			calls = append(calls, DrawCall{
				Points: stroke,
				Origin: core.Vec2{X: hudMarginX + float64(i)*hudDigitStep, Y: topY},
				Scale:  hudDigitScale,
			})
		}
	}

	lifeY := topY - hudMarginY
	for i := 0; i < w.lives; i++ {
		calls = append(calls, DrawCall{
			Points: shipHull,
			Origin: core.Vec2{X: hudMarginX + float64(i)*hudLifeStep, Y: lifeY},
			Scale:  hudLifeScale,
			Closed: true,
		})
	}
	return calls
}

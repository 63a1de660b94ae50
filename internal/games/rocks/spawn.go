package rocks

import (
	"math"

	"github.com/spacerocks/spacerocks/internal/core"
)

// childSpread is the per-child random heading deviation applied when a rock
// fragments, so the two children separate instead of stacking.
const childSpread = 0.5

// spawnRockField populates a fresh wave of big rocks at random positions,
// kept outside the safety radius around the respawn point so a wave never
// materializes on top of the ship.
func (w *World) spawnRockField(n int) {
	center := core.Vec2{X: w.cfg.World.Width / 2, Y: w.cfg.World.Height / 2}

	for i := 0; i < n; i++ {
		pos := center
		for try := 0; try < 32; try++ {
			pos = core.Vec2{
				X: w.rng.Range(0, w.cfg.World.Width),
				Y: w.rng.Range(0, w.cfg.World.Height),
			}
			if core.Distance(pos, center) > w.cfg.Field.SafeRadius {
				break
			}
		}

		speed := RockBig.Speed() * w.rng.Range(0.6, 1.6)
		w.rocks = append(w.rocks, Rock{
			Pos:  pos,
			Vel:  core.Dir(w.rng.Range(0, 2*math.Pi)).Scale(speed),
			Size: RockBig,
			Seed: w.rng.Uint64(),
		})
	}
}

// hitRock destroys a rock: marks it removed, emits debris, and unless the
// rock is Small buffers two children of the next tier down. impactVel is the
// velocity of whatever triggered the hit (ship, alien, or projectile); a
// degenerate vector contributes nothing rather than failing.
func (w *World) hitRock(r *Rock, impactVel core.Vec2) {
	r.Removed = true
	w.sounds.Play(CueRockBreak)

	for i := 0; i < 6; i++ {
		w.particles = append(w.particles, Particle{
			Pos: r.Pos,
			Vel: core.Dir(w.rng.Range(0, 2*math.Pi)).Scale(w.rng.Range(0.5, 2.5)),
			TTL: w.rng.Range(0.4, 1.2),
			Kind: ParticleDot{
				Radius: w.rng.Range(2, 5),
			},
		})
	}

	child, ok := r.Size.Smaller()
	if !ok {
		return
	}

	heading := r.Vel.Normalize()
	impact := impactVel.Normalize().Scale(1.5)
	for i := 0; i < 2; i++ {
		dir := heading.Rotate(w.rng.Range(-childSpread, childSpread))
		w.spawned = append(w.spawned, Rock{
			Pos:  r.Pos,
			Vel:  dir.Scale(child.Speed()).Add(impact),
			Size: child,
			Seed: w.rng.Uint64(),
		})
	}
}

// spawnAlien places a saucer at a random height on a random left/right edge.
func (w *World) spawnAlien(size AlienSize) {
	x := 0.0
	if w.rng.Float() < 0.5 {
		x = w.cfg.World.Width
	}
	w.aliens = append(w.aliens, Alien{
		Pos:      core.Vec2{X: x, Y: w.rng.Range(0, w.cfg.World.Height)},
		Dir:      core.Dir(w.rng.Range(0, 2*math.Pi)),
		Size:     size,
		LastDir:  w.now,
		LastShot: w.now,
	})
}

// shipDebris emits the death burst: a handful of tumbling hull fragments
// plus a shower of sparks at the ship's last position.
func (w *World) shipDebris(pos core.Vec2) {
	for i := 0; i < 5; i++ {
		w.particles = append(w.particles, Particle{
			Pos: pos,
			Vel: core.Dir(w.rng.Range(0, 2*math.Pi)).Scale(w.rng.Range(0.3, 1.8)),
			TTL: w.rng.Range(1.0, 3.0),
			Kind: ParticleLine{
				Rot:    w.rng.Range(0, 2*math.Pi),
				Length: w.rng.Range(8, 22),
			},
		})
	}
	for i := 0; i < 20; i++ {
		w.particles = append(w.particles, Particle{
			Pos: pos,
			Vel: core.Dir(w.rng.Range(0, 2*math.Pi)).Scale(w.rng.Range(0.5, 3.0)),
			TTL: w.rng.Range(0.5, 1.5),
			Kind: ParticleDot{
				Radius: w.rng.Range(1, 4),
			},
		})
	}
}

// fireProjectile spawns a shot ahead of the firer along dir.
func (w *World) fireProjectile(from core.Vec2, dir core.Vec2) {
	w.projectiles = append(w.projectiles, Projectile{
		Pos:       w.wrap(from.Add(dir.Scale(w.cfg.Projectile.MuzzleOffset))),
		Vel:       dir.Scale(w.cfg.Projectile.Speed),
		State:     ProjectileLive{TTL: w.cfg.Projectile.Lifetime},
		SpawnedAt: w.now,
	})
	w.sounds.Play(CueShoot)
}

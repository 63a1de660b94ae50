package rocks

import (
	"math"

	"github.com/spacerocks/spacerocks/internal/core"
)

// Step advances the simulation by one frame of dt elapsed seconds.
//
// The update order is fixed: ship control, rock physics+collisions, particle
// decay, projectile checks, alien behavior, cleanup, death/respawn, and
// progression. Collision outcomes within a frame depend on this order, so it
// must not be rearranged.
//
// Scaling note: rotation and thrust acceleration scale with dt; position
// integration, drag, alien movement, and projectile movement are fixed
// per-frame steps. That mix is deliberate - normalizing everything by dt
// changes the gameplay feel.
func (w *World) Step(in core.InputFrame, dt float64) {
	w.delta = dt
	w.now += dt
	w.frame++

	w.updateShip(in, dt)
	w.updateRocks()
	w.updateParticles(dt)
	w.updateProjectiles(dt)
	w.updateAliens()
	w.cleanup()
	w.updateRespawn()
	w.updateProgression()

	w.lastScore = w.score
}

// updateShip applies steering, thrust, drag, movement, and firing.
// A dead ship ignores input entirely.
func (w *World) updateShip(in core.InputFrame, dt float64) {
	w.thrusting = false
	if !w.ship.Alive() {
		return
	}

	if in.Has(core.ActionTurnLeft) {
		w.ship.Rot -= w.cfg.Ship.TurnRate * dt
	}
	if in.Has(core.ActionTurnRight) {
		w.ship.Rot += w.cfg.Ship.TurnRate * dt
	}

	forward := core.Dir(w.ship.Rot + math.Pi/2)

	if in.Has(core.ActionThrust) {
		w.ship.Vel = w.ship.Vel.Add(forward.Scale(w.cfg.Ship.Accel * dt))
		w.thrusting = true
		// Thrust cue ticks on alternating sub-second intervals while held.
		if int(w.now/0.25) != int((w.now-dt)/0.25) {
			w.sounds.Play(CueThrust)
		}
	}

	w.ship.Vel = w.ship.Vel.Scale(w.cfg.Ship.Drag)
	w.ship.Pos = w.wrap(w.ship.Pos.Add(w.ship.Vel))

	if in.Has(core.ActionFire) {
		w.fireProjectile(w.ship.Pos, forward)
		w.ship.Vel = w.ship.Vel.Sub(forward.Scale(w.cfg.Ship.Recoil))
	}
}

// updateRocks integrates rock motion and, in the same pass, tests each rock
// against the ship, every alien, and every projectile. Children spawned by
// fragmentation go to the side buffer; cleanup appends them after this
// iteration completes.
func (w *World) updateRocks() {
	for i := range w.rocks {
		r := &w.rocks[i]
		r.Pos = w.wrap(r.Pos.Add(r.Vel))
		if r.Removed {
			continue
		}

		radius := r.Size.CollisionRadius()

		if w.ship.Alive() && core.Distance(w.ship.Pos, r.Pos) < radius {
			impact := w.ship.Vel
			w.killShip()
			w.hitRock(r, impact)
			continue
		}

		for j := range w.aliens {
			a := &w.aliens[j]
			if a.Removed {
				continue
			}
			if core.Distance(a.Pos, r.Pos) < radius {
				a.Removed = true
				w.score += r.Size.Score()
				w.hitRock(r, a.Dir.Scale(a.Size.Speed()))
				break
			}
		}
		if r.Removed {
			continue
		}

		for j := range w.projectiles {
			p := &w.projectiles[j]
			if !p.Live() {
				continue
			}
			if core.Distance(p.Pos, r.Pos) < radius {
				p.State = ProjectileDead{}
				w.score += r.Size.Score()
				w.hitRock(r, p.Vel)
				break
			}
		}
	}
}

// updateParticles integrates debris motion and burns lifetime.
func (w *World) updateParticles(dt float64) {
	for i := range w.particles {
		p := &w.particles[i]
		p.Pos = w.wrap(p.Pos.Add(p.Vel))
		p.TTL -= dt
	}
}

// updateProjectiles integrates shots and tests proximity kills against the
// ship and the saucers. Inside the post-spawn grace window a shot cannot
// harm anyone - that is what protects a firer from its own muzzle flash.
func (w *World) updateProjectiles(dt float64) {
	for i := range w.projectiles {
		p := &w.projectiles[i]
		live, ok := p.State.(ProjectileLive)
		if !ok {
			continue
		}

		p.Pos = w.wrap(p.Pos.Add(p.Vel))

		if w.now-p.SpawnedAt > w.cfg.Projectile.Grace {
			if w.ship.Alive() && core.Distance(p.Pos, w.ship.Pos) < w.cfg.Projectile.ShipKillRadius {
				p.State = ProjectileDead{}
				w.killShip()
				continue
			}

			hit := false
			for j := range w.aliens {
				a := &w.aliens[j]
				if a.Removed {
					continue
				}
				if core.Distance(p.Pos, a.Pos) < a.Size.Radius() {
					p.State = ProjectileDead{}
					a.Removed = true
					w.sounds.Play(CueExplosion)
					hit = true
					break
				}
			}
			if hit {
				continue
			}
		}

		live.TTL -= dt
		if live.TTL <= 0 {
			p.State = ProjectileDead{}
		} else {
			p.State = live
		}
	}
}

// updateAliens handles saucer contact kills, wandering, and firing.
// Movement is a fixed per-frame step along the current heading.
func (w *World) updateAliens() {
	for i := range w.aliens {
		a := &w.aliens[i]
		if a.Removed {
			continue
		}

		if w.ship.Alive() && core.Distance(a.Pos, w.ship.Pos) < a.Size.Radius() {
			a.Removed = true
			w.killShip()
			continue
		}

		if w.now > a.LastDir+a.Size.DirChangeEvery() {
			a.LastDir = w.now
			a.Dir = core.Dir(w.rng.Range(0, 2*math.Pi))
		}

		a.Pos = w.wrap(a.Pos.Add(a.Dir.Scale(a.Size.Speed())))

		if w.now > a.LastShot+a.Size.ShootEvery() {
			a.LastShot = w.now
			dir := w.ship.Pos.Sub(a.Pos).Normalize()
			// Coincident positions normalize to zero; skip the shot rather
			// than firing along a NaN direction.
			if dir != (core.Vec2{}) {
				w.fireProjectile(a.Pos, dir)
			}
		}
	}
}

// cleanup appends buffered child rocks, then filters out removed rocks,
// expired particles, dead projectiles, and removed aliens.
func (w *World) cleanup() {
	w.rocks = append(w.rocks, w.spawned...)
	w.spawned = w.spawned[:0]

	rocks := w.rocks[:0]
	for _, r := range w.rocks {
		if !r.Removed {
			rocks = append(rocks, r)
		}
	}
	w.rocks = rocks

	particles := w.particles[:0]
	for _, p := range w.particles {
		if p.TTL > 0 {
			particles = append(particles, p)
		}
	}
	w.particles = particles

	projectiles := w.projectiles[:0]
	for _, p := range w.projectiles {
		if p.Live() {
			projectiles = append(projectiles, p)
		}
	}
	w.projectiles = projectiles

	aliens := w.aliens[:0]
	for _, a := range w.aliens {
		if !a.Removed {
			aliens = append(aliens, a)
		}
	}
	w.aliens = aliens
}

// killShip transitions a live ship to Dead, capturing now and the revive
// time. The death burst is emitted by updateRespawn on the same frame.
func (w *World) killShip() {
	if !w.ship.Alive() {
		return
	}
	w.ship.Status = ShipDead{
		DeathTime:  w.now,
		ReviveTime: w.now + w.cfg.Ship.RespawnGrace,
	}
}

// updateRespawn emits the death burst on the frame the ship died and, once
// the grace period has elapsed, spends a life (or resets the whole session
// when none remain) and respawns the ship at the arena center.
func (w *World) updateRespawn() {
	dead, ok := w.ship.Status.(ShipDead)
	if !ok {
		return
	}

	if dead.DeathTime == w.now {
		w.sounds.Play(CueExplosion)
		w.shipDebris(w.ship.Pos)
	}

	if w.now > dead.ReviveTime {
		if w.lives == 0 {
			w.resetSession()
		} else {
			w.lives--
		}
		w.ship = w.newShip()
	}
}

// updateProgression drives the heartbeat, wave restarts, and the alien
// score thresholds.
func (w *World) updateProgression() {
	if w.ship.Alive() {
		interval := bloopInterval(w.now - w.stageStart)
		if w.now > w.lastBloop+interval {
			w.lastBloop = w.now
			if w.bloop%2 == 0 {
				w.sounds.Play(CueBloopLow)
			} else {
				w.sounds.Play(CueBloopHigh)
			}
			w.bloop++
		}
	}

	if len(w.rocks) == 0 && len(w.aliens) == 0 {
		w.stageStart = w.now
		w.spawnRockField(w.waveRockCount())
	}

	// Each threshold is an independent integer-quotient comparison. A score
	// jump past a whole multiple in one frame spawns at most one saucer per
	// threshold - a documented quirk of the scoring system, kept as is.
	if big := w.cfg.Aliens.BigEvery; big > 0 && w.lastScore/big != w.score/big {
		w.spawnAlien(AlienBig)
	}
	if small := w.cfg.Aliens.SmallEvery; small > 0 && w.lastScore/small != w.score/small {
		w.spawnAlien(AlienSmall)
	}
}

// bloopInterval shortens the heartbeat as the stage drags on, in three
// escalating steps down to a floor.
func bloopInterval(elapsed float64) float64 {
	switch {
	case elapsed > 60:
		return 0.3
	case elapsed > 40:
		return 0.6
	case elapsed > 20:
		return 0.9
	default:
		return 1.2
	}
}

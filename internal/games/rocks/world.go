package rocks

import (
	"github.com/spacerocks/spacerocks/internal/config"
	"github.com/spacerocks/spacerocks/internal/core"
)

// World is the whole session state: simulated time, every entity collection,
// the gameplay RNG stream, and score/lives/wave progression. It is owned and
// mutated exclusively by Step; no other component writes to it.
type World struct {
	cfg    config.RocksConfig
	rng    *core.RNG
	sounds SoundSink

	now   float64 // accumulated simulated time, seconds
	delta float64 // elapsed seconds of the current frame
	frame uint64

	ship        Ship
	rocks       []Rock
	particles   []Particle
	projectiles []Projectile
	aliens      []Alien

	// spawned buffers child rocks created while the rock collection is being
	// iterated; cleanup appends it after the pass completes.
	spawned []Rock

	score     int
	lastScore int // previous frame's score, for threshold-crossing detection
	lives     int

	stageStart float64
	lastBloop  float64
	bloop      int // low/high alternation counter

	thrusting bool // thrust held this frame, drives the plume
}

// NewWorld creates a session with the given tuning and seed. The first rock
// field spawns on the first Step (the wave check sees an empty arena).
func NewWorld(cfg config.RocksConfig, seed uint64, sounds SoundSink) *World {
	if sounds == nil {
		sounds = NopSink{}
	}
	w := &World{
		cfg:    cfg,
		rng:    core.NewRNG(seed),
		sounds: sounds,
		lives:  cfg.Gameplay.Lives,
	}
	w.ship = w.newShip()
	return w
}

// newShip returns a live ship parked at the arena center.
func (w *World) newShip() Ship {
	return Ship{
		Pos:    core.Vec2{X: w.cfg.World.Width / 2, Y: w.cfg.World.Height / 2},
		Status: ShipAlive{},
	}
}

// Score returns the current score.
func (w *World) Score() int { return w.score }

// Lives returns the remaining lives.
func (w *World) Lives() int { return w.lives }

// Now returns the accumulated simulated time in seconds.
func (w *World) Now() float64 { return w.now }

// Ship exposes the ship for rendering and tests.
func (w *World) Ship() *Ship { return &w.ship }

// Rocks exposes the live rock collection.
func (w *World) Rocks() []Rock { return w.rocks }

// Aliens exposes the live alien collection.
func (w *World) Aliens() []Alien { return w.aliens }

// Projectiles exposes the live projectile collection.
func (w *World) Projectiles() []Projectile { return w.projectiles }

// Particles exposes the live particle collection.
func (w *World) Particles() []Particle { return w.particles }

// wrap maps a position onto the arena torus.
func (w *World) wrap(p core.Vec2) core.Vec2 {
	return core.Wrap(p, w.cfg.World.Width, w.cfg.World.Height)
}

// waveRockCount grows the wave with cumulative score, capped.
func (w *World) waveRockCount() int {
	n := w.cfg.Field.BaseCount
	if w.cfg.Field.ScoreDivisor > 0 {
		n += w.score / w.cfg.Field.ScoreDivisor
	}
	return min(n, w.cfg.Field.MaxCount)
}

// resetSession wipes score and lives back to their initial values and
// regenerates the rock field. Used when the last life is lost.
func (w *World) resetSession() {
	w.score = 0
	w.lastScore = 0
	w.lives = w.cfg.Gameplay.Lives
	w.rocks = w.rocks[:0]
	w.aliens = w.aliens[:0]
	w.projectiles = w.projectiles[:0]
	w.stageStart = w.now
	w.spawnRockField(w.waveRockCount())
}

package rocks

import "github.com/spacerocks/spacerocks/internal/core"

// ShipStatus is the ship lifecycle state: alive, or dead and waiting for
// respawn. Consumers must switch exhaustively over the two variants.
type ShipStatus interface {
	shipStatus()
}

// ShipAlive is the normal steerable state.
type ShipAlive struct{}

// ShipDead carries the death timestamp and the time at which the respawn
// step is allowed to bring the ship back.
type ShipDead struct {
	DeathTime  float64
	ReviveTime float64
}

func (ShipAlive) shipStatus() {}
func (ShipDead) shipStatus()  {}

// Ship is the player vessel. One instance, owned by the session; replaced
// wholesale on respawn.
type Ship struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Rot    float64 // radians
	Status ShipStatus
}

// Alive reports whether the ship can collide, fire, and be steered.
func (s *Ship) Alive() bool {
	_, ok := s.Status.(ShipAlive)
	return ok
}

// RockSize is one of the three rock tiers. Each tier fixes the draw scale,
// the effective collision radius, the speed children of this tier spawn
// with, and the score awarded on destruction.
type RockSize int

const (
	RockBig RockSize = iota
	RockMedium
	RockSmall
)

var rockSizes = [...]struct {
	scale     float64 // draw scale fed to the silhouette transform
	collScale float64 // fraction of scale that actually collides
	speed     float64 // units per frame when spawned at this tier
	score     int
}{
	RockBig:    {scale: 75, collScale: 0.4, speed: 1.0, score: 20},
	RockMedium: {scale: 40, collScale: 0.65, speed: 2.2, score: 50},
	RockSmall:  {scale: 20, collScale: 1.0, speed: 3.0, score: 100},
}

// Scale returns the silhouette draw scale in world units.
func (s RockSize) Scale() float64 { return rockSizes[s].scale }

// CollisionRadius returns the effective collision radius in world units.
func (s RockSize) CollisionRadius() float64 {
	return rockSizes[s].scale * rockSizes[s].collScale
}

// Speed returns the base speed for rocks spawned at this tier.
func (s RockSize) Speed() float64 { return rockSizes[s].speed }

// Score returns the points awarded for destroying a rock of this size.
func (s RockSize) Score() int { return rockSizes[s].score }

// Smaller returns the next tier down and true, or false for Small:
// a small rock never fragments further.
func (s RockSize) Smaller() (RockSize, bool) {
	switch s {
	case RockBig:
		return RockMedium, true
	case RockMedium:
		return RockSmall, true
	default:
		return RockSmall, false
	}
}

// String returns a human-readable tier name.
func (s RockSize) String() string {
	switch s {
	case RockBig:
		return "big"
	case RockMedium:
		return "medium"
	case RockSmall:
		return "small"
	default:
		return "unknown"
	}
}

// Rock is an asteroid. Its silhouette is a pure function of Seed; Removed
// rocks are filtered out at the end of the frame.
type Rock struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Size    RockSize
	Seed    uint64
	Removed bool
}

// ParticleKind selects the debris variant: a spinning line fragment or a
// fading dot.
type ParticleKind interface {
	particleKind()
}

// ParticleLine is a hull fragment rendered as a short rotated segment.
type ParticleLine struct {
	Rot    float64
	Length float64
}

// ParticleDot is a spark rendered as a small diamond.
type ParticleDot struct {
	Radius float64
}

func (ParticleLine) particleKind() {}
func (ParticleDot) particleKind()  {}

// Particle is purely cosmetic debris; it expires when TTL reaches zero.
type Particle struct {
	Pos  core.Vec2
	Vel  core.Vec2
	TTL  float64 // seconds
	Kind ParticleKind
}

// ProjectileState is the projectile lifecycle: live with a remaining
// lifetime, or dead and awaiting cleanup.
type ProjectileState interface {
	projectileState()
}

// ProjectileLive carries the remaining lifetime in seconds.
type ProjectileLive struct {
	TTL float64
}

// ProjectileDead marks a spent projectile.
type ProjectileDead struct{}

func (ProjectileLive) projectileState() {}
func (ProjectileDead) projectileState() {}

// Projectile is a shot fired by the ship or an alien. SpawnedAt feeds the
// short grace window that protects the firer from its own shot.
type Projectile struct {
	Pos       core.Vec2
	Vel       core.Vec2
	State     ProjectileState
	SpawnedAt float64
}

// Live reports whether the projectile still flies and collides.
func (p *Projectile) Live() bool {
	_, ok := p.State.(ProjectileLive)
	return ok
}

// AlienSize is one of the two saucer tiers.
type AlienSize int

const (
	AlienBig AlienSize = iota
	AlienSmall
)

var alienSizes = [...]struct {
	radius    float64 // collision radius, world units
	dirEvery  float64 // seconds between heading changes
	fireEvery float64 // seconds between shots
	speed     float64 // units per frame
}{
	AlienBig:   {radius: 40, dirEvery: 0.85, fireEvery: 1.25, speed: 3.0},
	AlienSmall: {radius: 22, dirEvery: 0.35, fireEvery: 0.70, speed: 4.0},
}

// Radius returns the saucer's collision radius.
func (s AlienSize) Radius() float64 { return alienSizes[s].radius }

// DirChangeEvery returns the heading-change interval in seconds.
func (s AlienSize) DirChangeEvery() float64 { return alienSizes[s].dirEvery }

// ShootEvery returns the firing interval in seconds.
func (s AlienSize) ShootEvery() float64 { return alienSizes[s].fireEvery }

// Speed returns the per-frame movement step.
func (s AlienSize) Speed() float64 { return alienSizes[s].speed }

// String returns a human-readable tier name.
func (s AlienSize) String() string {
	if s == AlienSmall {
		return "small"
	}
	return "big"
}

// Alien is an enemy saucer. It wanders on a randomly re-picked heading and
// periodically fires at the ship.
type Alien struct {
	Pos      core.Vec2
	Dir      core.Vec2
	Size     AlienSize
	Removed  bool
	LastDir  float64 // last heading change timestamp
	LastShot float64 // last shot timestamp
}

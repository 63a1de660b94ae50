package rocks

// Snapshot captures the observable session state for determinism testing
// and replay verification: two sessions fed the same seed and input script
// must produce identical snapshots.
type Snapshot struct {
	Frame       uint64
	Now         float64
	Score       int
	Lives       int
	ShipX       float64
	ShipY       float64
	ShipRot     float64
	ShipAlive   bool
	Rocks       int
	BigRocks    int
	MedRocks    int
	SmallRocks  int
	Particles   int
	Projectiles int
	Aliens      int
}

// Snapshot returns the current session snapshot.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:       w.frame,
		Now:         w.now,
		Score:       w.score,
		Lives:       w.lives,
		ShipX:       w.ship.Pos.X,
		ShipY:       w.ship.Pos.Y,
		ShipRot:     w.ship.Rot,
		ShipAlive:   w.ship.Alive(),
		Rocks:       len(w.rocks),
		Particles:   len(w.particles),
		Projectiles: len(w.projectiles),
		Aliens:      len(w.aliens),
	}
	for i := range w.rocks {
		switch w.rocks[i].Size {
		case RockBig:
			snap.BigRocks++
		case RockMedium:
			snap.MedRocks++
		case RockSmall:
			snap.SmallRocks++
		}
	}
	return snap
}

package rocks

// Cue names a fire-and-forget audio trigger emitted by the simulation.
// The core never plays anything itself; it hands cues to a SoundSink.
type Cue int

const (
	CueThrust Cue = iota
	CueShoot
	CueExplosion
	CueRockBreak
	CueBloopLow
	CueBloopHigh
)

// String returns the cue name used in logs and diagnostics.
func (c Cue) String() string {
	switch c {
	case CueThrust:
		return "thrust"
	case CueShoot:
		return "shoot"
	case CueExplosion:
		return "explosion"
	case CueRockBreak:
		return "rock_break"
	case CueBloopLow:
		return "bloop_low"
	case CueBloopHigh:
		return "bloop_high"
	default:
		return "unknown"
	}
}

// SoundSink receives cue triggers. Implementations must not block; playback
// failures are the sink's problem, never the simulation's.
type SoundSink interface {
	Play(Cue)
}

// NopSink discards all cues. Used for headless simulation, replays, and
// remote sessions.
type NopSink struct{}

// Play implements SoundSink.
func (NopSink) Play(Cue) {}

// Package audio synthesizes the game's sound effects with gopxl/beep.
// All cues are generated procedurally; there are no sample assets.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/spacerocks/spacerocks/internal/games/rocks"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Engine maps gameplay cues to short synthesized streamers on a shared
// mixer. It implements rocks.SoundSink.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewEngine creates an audio engine. Call Initialize before Play.
func NewEngine() *Engine {
	return &Engine{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Cleanup silences the mixer. beep has no speaker Close, so clearing the
// mixer is as far as teardown goes.
func (e *Engine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	e.mixer.Clear()
	e.initialized = false
}

// Play queues the streamer for a gameplay cue. Safe to call from the
// simulation tick; unknown cues are ignored.
func (e *Engine) Play(cue rocks.Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	var streamer beep.Streamer
	switch cue {
	case rocks.CueThrust:
		streamer = take(80*time.Millisecond, newRumble(55, 6))
	case rocks.CueShoot:
		streamer = take(120*time.Millisecond, newSweep(880, 220, 120*time.Millisecond))
	case rocks.CueExplosion:
		streamer = take(500*time.Millisecond, newBurst(3, 0.35))
	case rocks.CueRockBreak:
		streamer = take(180*time.Millisecond, newBurst(10, 0.25))
	case rocks.CueBloopLow:
		streamer = take(90*time.Millisecond, newTone(110))
	case rocks.CueBloopHigh:
		streamer = take(90*time.Millisecond, newTone(165))
	default:
		return
	}

	e.mixer.Add(streamer)
}

func take(d time.Duration, s beep.Streamer) beep.Streamer {
	return beep.Take(sampleRate.N(d), s)
}

// toneGenerator produces a plain sine with a short attack envelope.
type toneGenerator struct {
	freq float64
	pos  int
}

func newTone(freq float64) *toneGenerator {
	return &toneGenerator{freq: freq}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)

		envelope := math.Min(t/0.005, 1.0)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}

// sweepGenerator slides a sine from one frequency to another, used for the
// pew of a fired projectile.
type sweepGenerator struct {
	from, to float64
	span     float64
	phase    float64
	pos      int
}

func newSweep(from, to float64, d time.Duration) *sweepGenerator {
	return &sweepGenerator{from: from, to: to, span: d.Seconds()}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)

		progress := math.Min(t/g.span, 1.0)
		freq := g.from + (g.to-g.from)*progress

		// Integrate phase so the slide stays click-free.
		g.phase += 2 * math.Pi * freq / float64(sampleRate)
		envelope := 1.0 - progress
		sample := 0.2 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error {
	return nil
}

// burstGenerator makes a decaying noise burst over a low rumble, used for
// explosions and rock breakup.
type burstGenerator struct {
	decay float64
	gain  float64
	seed  int64
	pos   int
}

func newBurst(decay, gain float64) *burstGenerator {
	return &burstGenerator{
		decay: decay,
		gain:  gain,
		seed:  time.Now().UnixNano(),
	}
}

func (g *burstGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)

		envelope := math.Exp(-t * g.decay)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.3 * math.Sin(2*math.Pi*70*t)
		sample := g.gain * envelope * (0.7*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *burstGenerator) Err() error {
	return nil
}

// rumbleGenerator is a wobbling low tone for the thrust loop. Each thrust
// cue is a short burst, so consecutive bursts read as a continuous rumble.
type rumbleGenerator struct {
	freq   float64
	wobble float64
	seed   int64
	pos    int
}

func newRumble(freq, wobble float64) *rumbleGenerator {
	return &rumbleGenerator{
		freq:   freq,
		wobble: wobble,
		seed:   time.Now().UnixNano(),
	}
}

func (g *rumbleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)

		freq := g.freq + g.wobble*math.Sin(2*math.Pi*9*t)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		sample := 0.15*math.Sin(2*math.Pi*freq*t) + 0.05*noise

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *rumbleGenerator) Err() error {
	return nil
}

package audio

import (
	"math"
	"testing"
	"time"

	"github.com/spacerocks/spacerocks/internal/games/rocks"
)

func TestPlayBeforeInitializeIsSafe(t *testing.T) {
	e := NewEngine()

	// Must not panic or touch the speaker before Initialize
	e.Play(rocks.CueShoot)
	e.Play(rocks.CueExplosion)
	e.Cleanup()
}

func TestGeneratorsProduceBoundedSamples(t *testing.T) {
	generators := map[string]interface {
		Stream(samples [][2]float64) (int, bool)
		Err() error
	}{
		"tone":   newTone(110),
		"sweep":  newSweep(880, 220, 120*time.Millisecond),
		"burst":  newBurst(3, 0.35),
		"rumble": newRumble(55, 6),
	}

	for name, gen := range generators {
		t.Run(name, func(t *testing.T) {
			buf := make([][2]float64, 4800)
			n, ok := gen.Stream(buf)
			if !ok || n != len(buf) {
				t.Fatalf("Stream() = (%d, %v), expected full buffer", n, ok)
			}
			if gen.Err() != nil {
				t.Fatalf("Err() = %v, expected nil", gen.Err())
			}

			for i, s := range buf {
				for ch := 0; ch < 2; ch++ {
					v := s[ch]
					if math.IsNaN(v) {
						t.Fatalf("sample %d ch %d is NaN", i, ch)
					}
					if v < -1 || v > 1 {
						t.Fatalf("sample %d ch %d = %f, outside [-1, 1]", i, ch, v)
					}
				}
			}
		})
	}
}

func TestSweepEnvelopeDecays(t *testing.T) {
	g := newSweep(880, 220, 100*time.Millisecond)

	// Past the sweep span, the envelope reaches zero
	buf := make([][2]float64, int(sampleRate)/5)
	g.Stream(buf)

	tail := buf[len(buf)-100:]
	for i, s := range tail {
		if s[0] != 0 {
			t.Fatalf("tail sample %d = %f, expected silence after the sweep span", i, s[0])
		}
	}
}

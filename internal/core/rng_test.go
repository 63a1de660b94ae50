package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(12345)
	b := NewRNG(12345)

	for i := 0; i < 100; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("RNGs with the same seed diverged at step %d", i)
		}
	}
}

func TestRNGDifferentSeeds(t *testing.T) {
	a := NewRNG(1)
	b := NewRNG(2)

	same := 0
	for i := 0; i < 100; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	if same == 100 {
		t.Error("RNGs with different seeds produced identical sequences")
	}
}

func TestRNGZeroSeedUsesDefault(t *testing.T) {
	a := NewRNG(0)
	b := NewRNG(0)

	if a.Uint64() != b.Uint64() {
		t.Error("Zero-seeded RNGs should share the default seed")
	}
}

func TestRNGFloatRange(t *testing.T) {
	rng := NewRNG(42)
	for i := 0; i < 1000; i++ {
		f := rng.Float()
		if f < 0 || f >= 1 {
			t.Fatalf("Float() = %f, expected [0, 1)", f)
		}
	}
}

func TestRNGIntn(t *testing.T) {
	rng := NewRNG(42)
	for i := 0; i < 1000; i++ {
		n := rng.Intn(7)
		if n < 0 || n >= 7 {
			t.Fatalf("Intn(7) = %d, expected [0, 7)", n)
		}
	}

	if rng.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
	if rng.Intn(-5) != 0 {
		t.Error("Intn(-5) should return 0")
	}
}

func TestRNGRange(t *testing.T) {
	rng := NewRNG(42)
	for i := 0; i < 1000; i++ {
		v := rng.Range(-2.5, 3.5)
		if v < -2.5 || v >= 3.5 {
			t.Fatalf("Range(-2.5, 3.5) = %f, out of bounds", v)
		}
	}
}

package core

// RNG is a deterministic pseudo-random number generator (xorshift64).
// One instance drives session gameplay randomness; throwaway instances are
// constructed from stored seeds wherever a reproducible stream is needed
// independently of the session stream (e.g. a rock's silhouette).
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = 88172645463325252 // Default seed
	}
	return &RNG{state: seed}
}

// Uint64 returns the next random uint64.
func (r *RNG) Uint64() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Uint64()&0x7FFFFFFFFFFFFFFF) / float64(0x8000000000000000)
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Uint64() % uint64(n))
}

// Range returns a random float64 in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float()
}

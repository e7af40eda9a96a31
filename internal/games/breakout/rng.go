package breakout

// SimpleRNG is a deterministic xorshift64* generator.
// Serves use it for the horizontal direction so seeded runs replay exactly.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a generator from a seed. Zero is remapped since
// xorshift never leaves the zero state.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 0x9E3779B97F4A7C15
	}
	return &SimpleRNG{state: s}
}

// Next returns the next pseudo-random value.
func (r *SimpleRNG) Next() uint64 {
	r.state ^= r.state >> 12
	r.state ^= r.state << 25
	r.state ^= r.state >> 27
	return r.state * 2685821657736338717
}

// Sign returns -1 or +1 with equal probability.
func (r *SimpleRNG) Sign() float64 {
	if r.Next()>>63 == 1 {
		return 1
	}
	return -1
}

// State exposes the generator state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

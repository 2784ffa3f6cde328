package world

import (
	"math"
	"math/big"
	"math/rand/v2"
)

const (
	// HeightSeedOffset separates the height stream from the grid stream.
	HeightSeedOffset = 4515435

	// MaxSeed bounds derived seeds. It is fixed rather than taken from the
	// host's native int so derived seeds match on every platform.
	MaxSeed int64 = math.MaxInt64
)

// Stream is a seedable uniform source of floats in [0,1).
type Stream struct {
	r *rand.Rand
}

// NewStream creates a stream seeded with seed.
func NewStream(seed int64) *Stream {
	s := &Stream{}
	s.Seed(seed)
	return s
}

// Seed resets the stream to the deterministic state for seed.
func (s *Stream) Seed(seed int64) {
	s.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Next returns the next value in [0,1).
func (s *Stream) Next() float64 {
	return s.r.Float64()
}

// HeightSeed derives the height stream seed: (seed + HeightSeedOffset) mod MaxSeed.
// The result is always in [0, MaxSeed).
func HeightSeed(seed int64) int64 {
	v := new(big.Int).SetInt64(seed)
	v.Add(v, big.NewInt(HeightSeedOffset))
	v.Mod(v, big.NewInt(MaxSeed))
	return v.Int64()
}

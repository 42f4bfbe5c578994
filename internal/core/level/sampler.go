package level

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Sampler draws uniform integers from [lo, hi).
type Sampler interface {
	IntRange(lo, hi int) int
}

// SeededSampler is a Sampler whose sequence is fully determined by a seed.
// Levels restart it at the beginning of every check run so the run can be
// replayed from the seed recorded in its Report.
type SeededSampler interface {
	Sampler
	Seed() uint64
	Reseed(seed uint64)
	Uint64() uint64
}

var _ SeededSampler = (*RandSampler)(nil)

// RandSampler is a Sampler over a seeded PCG source.
//
// # Determinism
//
// Two RandSamplers built with the same seed produce the same sequence. The
// first check run on a level uses the construction seed; later runs reseed
// from the current stream, and Report.Seed always names the seed the run
// started from.
type RandSampler struct {
	seed uint64
	rng  *rand.Rand
}

func NewRandSampler(seed uint64) *RandSampler {
	s := &RandSampler{}
	s.Reseed(seed)
	return s
}

// Reseed restarts the sequence from seed.
func (s *RandSampler) Reseed(seed uint64) {
	s.seed = seed
	s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Uint64 draws a raw value from the stream, used to derive the next run seed.
func (s *RandSampler) Uint64() uint64 {
	return s.rng.Uint64()
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func (s *RandSampler) Seed() uint64 { return s.seed }

func (s *RandSampler) IntRange(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo)
}

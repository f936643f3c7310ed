// Package entropy provides the random draws behind births, deaths, harvests
// and market prices. Seeds come from crypto/rand unless one is configured.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
)

// Source is the randomness the game consumes.
type Source interface {
	// NextFloat returns a uniform value in [0, max).
	NextFloat(max float64) float64
	// Next returns a uniform integer in [min, max).
	Next(min, max int) int
}

// Rand is a seeded Source.
type Rand struct {
	rng  *mrand.Rand
	seed int64
}

// New creates a Source from seed. A zero seed draws one from crypto/rand.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = CryptoSeed()
	}
	return &Rand{
		rng:  mrand.New(mrand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed in use, so a game can be replayed.
func (r *Rand) Seed() int64 { return r.seed }

func (r *Rand) NextFloat(max float64) float64 {
	return r.rng.Float64() * max
}

func (r *Rand) Next(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min)
}

// CryptoSeed returns a non-zero seed read from crypto/rand.
func CryptoSeed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// This should never happen but a fixed seed still yields a playable game.
		return 42
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	if seed == 0 {
		return 42
	}
	return seed
}

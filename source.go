package passkit

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/big"
	mrand "math/rand/v2"
	"time"
)

// Source supplies the randomness consumed by a Generator. All draws a
// Generator performs go through a Source, so substituting a seeded one makes
// every randomized operation reproducible.
type Source interface {
	// IntN returns a uniformly distributed int in [0, n). n must be positive.
	IntN(n int) int
}

// cryptoSource draws from crypto/rand, falling back to a time-seeded PRNG
// when the system source is unavailable (restricted sandboxes, exhausted
// descriptors).
type cryptoSource struct {
	fallback *mrand.Rand
}

func newCryptoSource() *cryptoSource {
	seed := readSeed()
	return &cryptoSource{fallback: mrand.New(mrand.NewPCG(seed, seed))}
}

func (s *cryptoSource) IntN(n int) int {
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return s.fallback.IntN(n)
	}
	return int(v.Int64())
}

// NewSeededSource returns a deterministic Source. Two sources built from the
// same seed produce identical draw sequences, which pins down every
// randomized generation step for tests and reproducible runs.
func NewSeededSource(seed uint64) Source {
	return seededSource{rand: mrand.New(mrand.NewPCG(seed, seed))}
}

type seededSource struct {
	rand *mrand.Rand
}

func (s seededSource) IntN(n int) int { return s.rand.IntN(n) }

// readSeed seeds the fallback PRNG from the system source when possible,
// from the clock otherwise.
func readSeed() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.BigEndian.Uint64(buf[:])
}

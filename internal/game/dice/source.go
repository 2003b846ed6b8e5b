package dice

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
)

// cryptoSource implements Source using crypto/rand.
//
// Invariant: All values produced are uniformly distributed in [0, n) for any n > 0.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
// Panics with "dice: crypto/rand failure: <err>" if crypto/rand fails.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

// seededSource implements Source with a PCG generator so that a given seed
// always replays the same sequence of draws.
//
// Not safe for concurrent use.
type seededSource struct {
	r *mrand.Rand
}

// NewSeededSource returns a deterministic Source for seed.
//
// Postcondition: Two sources created with the same seed yield identical sequences.
func NewSeededSource(seed uint64) Source {
	return &seededSource{r: mrand.New(mrand.NewPCG(seed, 0))}
}

// Intn returns a pseudo-random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	return s.r.IntN(n)
}

// NewSource returns the Source named by kind: "crypto" or "seeded".
//
// Postcondition: Returns a Source, or an error for an unknown kind.
func NewSource(kind string, seed uint64) (Source, error) {
	switch kind {
	case "crypto":
		return NewCryptoSource(), nil
	case "seeded":
		return NewSeededSource(seed), nil
	default:
		return nil, fmt.Errorf("dice: unknown source %q", kind)
	}
}

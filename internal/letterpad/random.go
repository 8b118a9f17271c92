package letterpad

import "math/rand"

// Random provides the randomness used to shuffle tiles so tests can
// script it.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// NewSeededRandom returns a math/rand source. A seed of 0 is used as-is;
// callers that want time-based seeds pick one themselves.
func NewSeededRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}

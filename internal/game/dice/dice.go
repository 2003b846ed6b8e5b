// Package dice provides the randomness abstraction shared by every game
// element.
package dice

// Source is the randomness provider for element draws.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Between returns a uniformly distributed int in [lo, hi] drawn from src.
//
// Precondition: lo <= hi; src must be non-nil.
// Postcondition: lo <= return value <= hi.
func Between(src Source, lo, hi int) int {
	if hi < lo {
		panic("dice: Between called with hi < lo")
	}
	return lo + src.Intn(hi-lo+1)
}

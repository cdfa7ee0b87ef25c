// Package dice provides the randomness abstraction for the battle simulator.
// All combat randomness flows through a Source so that battles are
// reproducible when a seeded source is supplied.
package dice

// chanceScale is the integer resolution used for probability draws.
// A probability p maps to the threshold round(p * chanceScale) out of
// chanceScale equally likely outcomes.
const chanceScale = 10000

// Source is the randomness provider for all combat draws.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// IntBetween returns a uniform random int in [lo, hi], inclusive on both ends.
//
// Precondition: src must be non-nil; lo <= hi.
// Postcondition: lo <= result <= hi.
func IntBetween(src Source, lo, hi int) int {
	if lo > hi {
		panic("dice: IntBetween called with lo > hi")
	}
	return lo + src.Intn(hi-lo+1)
}

// Chance performs a Bernoulli draw with probability p.
//
// Precondition: src must be non-nil; 0 <= p <= 1.
// Postcondition: Returns true with probability round(p*10000)/10000.
// Probabilities at or below 0 never draw; at or above 1 they always succeed,
// and neither consumes a value from src.
func Chance(src Source, p float64) bool {
	threshold := int(p*chanceScale + 0.5)
	if threshold <= 0 {
		return false
	}
	if threshold >= chanceScale {
		return true
	}
	return src.Intn(chanceScale) < threshold
}

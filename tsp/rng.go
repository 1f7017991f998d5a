// Package tsp - deterministic RNG helpers for the genetic solver.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single factory; no time-based sources anywhere.
//   - Isolation: each solver run owns its stream, so concurrent runs never
//     share RNG state (math/rand.Rand is not goroutine-safe).
package tsp

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand. The seed is used verbatim;
// 0 is an ordinary, valid seed. Callers signal "no seed given" through
// Options.HasSeed, never through a magic seed value.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// shuffleInPlace performs an in-place Fisher-Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, rng *rand.Rand) {
	var (
		i int
		j int
	)
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// randPerm returns a fresh random permutation of 0..n-1 drawn from rng.
//
// Complexity: O(n) time, O(n) space.
func randPerm(n int, rng *rand.Rand) []int {
	p := identityOrder(n)
	shuffleInPlace(p, rng)

	return p
}

// Package tsp - unified dispatcher.
//
// Solve routes to the strategy selected by Options.Algo. The direct
// entrypoints (SolveBruteForce, SolveMSTApprox, SolveGenetic) perform the
// same validation, so behaviour is identical whichever door a caller uses.
//
// Design principles:
//   - Deterministic: all randomness flows from Options.Seed.
//   - Strict sentinels: only errors from types.go; anytime degradation
//     under an expired budget is never an error.
//   - Degenerate sizes (0, 1 or 2 cities) resolve to the trivial
//     ascending-ID tour without entering any search loop.
package tsp

import "time"

// Solve validates opts.Algo and dispatches to the selected strategy.
//
// Errors: ErrUnknownAlgorithm for an unrecognized selector, otherwise
// whatever the chosen strategy reports.
func Solve(cities []City, opts Options) (Result, error) {
	switch opts.Algo {
	case BruteForce:
		return SolveBruteForce(cities, opts)
	case MSTApprox:
		return SolveMSTApprox(cities, opts)
	case Genetic:
		return SolveGenetic(cities, opts)
	default:
		return Result{}, ErrUnknownAlgorithm
	}
}

// trivialResult prices the ascending-ID ring. It backs the degenerate-size
// fast paths and the budget-expired fallbacks.
func trivialResult(inst *instance, started time.Time) Result {
	var order = identityOrder(inst.n)

	return Result{
		Tour:    inst.toIDs(order),
		Length:  inst.tourLen(order),
		Elapsed: time.Since(started),
	}
}

// Package tsp - minimum-spanning-tree 2-approximation (MSTApprox).
//
// SolveMSTApprox runs the classic construction:
//
//  1. Minimum spanning tree on the complete distance graph (primMST).
//  2. Depth-first preorder walk of the tree, children in ascending order.
//  3. The preorder visits every vertex exactly once, so it already is the
//     shortcut tour; closing it back to the root yields the cycle.
//
// Mathematical guarantee:
//   - Under metric distances (triangle inequality), tour length ≤ 2·MST
//     weight ≤ 2·OPT. Rounding to integer distances can perturb the metric
//     property in degenerate coordinate sets; the bound holds for practical
//     instances and is asserted against real MST weight in tests.
//
// Determinism:
//   - Heap ties break on the smaller vertex index and children are visited
//     in ascending order, so identical inputs give identical tours.
//     Options.Seed is accepted and ignored.
package tsp

import "time"

// SolveMSTApprox builds the spanning-tree tour.
//
// Contracts:
//   - opts.Cutoff must be positive. Construction is near-instant, so the
//     budget is polled once between the tree and walk phases; an expired
//     budget yields the ascending-ID fallback tour, never an error.
//   - cities need unique IDs and finite coordinates.
//
// Errors: ErrBadCutoff, ErrDuplicateCity, ErrBadCoordinate.
//
// Complexity: O(n² log n) time, O(n²) space.
func SolveMSTApprox(cities []City, opts Options) (Result, error) {
	var started = time.Now()
	if err := validateOptions(opts, MSTApprox); err != nil {
		return Result{}, err
	}
	inst, err := newInstance(cities)
	if err != nil {
		return Result{}, err
	}
	if inst.n <= 2 {
		return trivialResult(inst, started), nil
	}

	var deadline = started.Add(opts.Cutoff)
	parent := primMST(inst)
	if time.Now().After(deadline) {
		return trivialResult(inst, started), nil
	}
	order := preorderWalk(parent)

	return Result{
		Tour:    inst.toIDs(order),
		Length:  inst.tourLen(order),
		Elapsed: time.Since(started),
	}, nil
}

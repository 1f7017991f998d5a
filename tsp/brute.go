// Package tsp - exhaustive search (BruteForce).
//
// SolveBruteForce enumerates Hamiltonian tours in lexicographic order with
// the lowest-ID city fixed at position 0, keeping the best tour seen so far
// under a wall-clock budget.
//
// Rationale:
//  1. Fixing the first city removes the n rotations of every cyclic tour.
//     Both directions of a cycle are still enumerated; strict improvement
//     keeps the first optimum found, so results stay deterministic.
//  2. The candidate order is the classic next-lexicographic-permutation
//     walk over positions 1..n-1. The ascending identity order is always
//     evaluated first, so a fallback tour exists even when the budget
//     expires immediately.
//  3. Deadline checks are sparse (every 1024 permutations) to keep budget
//     bookkeeping out of the hot loop; overshoot stays in the microsecond
//     range at realistic evaluation rates.
//
// Complexity:
//   - Worst case (n-1)! permutation evaluations, O(n) each.
//   - Memory: O(n²) prefetched distances + O(n) search state.
package tsp

import (
	"math"
	"time"
)

// bfMask spaces out deadline polling; see deadlineDue.
const bfMask = 1023

// bfEngine holds the exhaustive-search state.
type bfEngine struct {
	inst *instance
	n    int

	deadline time.Time
	steps    int64

	order   []int // current candidate: order[0] fixed, order[1:] permuted
	best    []int
	bestLen float64
	evals   int64
}

// deadlineDue performs a sparse deadline test (once per bfMask+1 calls).
func (e *bfEngine) deadlineDue() bool {
	e.steps++
	if (e.steps & bfMask) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// evaluate prices the current candidate and commits it on strict improvement.
func (e *bfEngine) evaluate() {
	e.evals++
	var l = e.inst.tourLen(e.order)
	if l < e.bestLen {
		e.bestLen = l
		copy(e.best, e.order)
	}
}

// run walks the permutations lexicographically until exhaustion or deadline.
func (e *bfEngine) run() {
	// The identity order is the first candidate; evaluate it unconditionally
	// so the engine always holds a valid tour.
	e.evaluate()
	for nextPermutation(e.order[1:]) {
		if e.deadlineDue() {
			return
		}
		e.evaluate()
	}
}

// nextPermutation rearranges a into its lexicographic successor in place.
// Returns false when a is already the final (descending) permutation.
//
// Complexity: O(n) worst case, O(1) amortized over a full enumeration.
func nextPermutation(a []int) bool {
	// Find the rightmost ascent a[i] < a[i+1].
	var i = len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	// Swap a[i] with the smallest larger element to its right.
	var j = len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]

	// Restore the suffix to ascending order.
	var l, r int
	for l, r = i+1, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}

	return true
}

// SolveBruteForce runs the exhaustive search.
//
// Contracts:
//   - opts.Cutoff must be positive; Seed is accepted and ignored.
//   - cities need unique IDs and finite coordinates.
//
// Anytime behaviour: when the budget expires the best tour found so far is
// returned with no error; a completed enumeration yields the exact optimum.
// 0, 1 and 2 cities resolve trivially without entering the search.
//
// Errors: ErrBadCutoff, ErrDuplicateCity, ErrBadCoordinate.
func SolveBruteForce(cities []City, opts Options) (Result, error) {
	var started = time.Now()
	if err := validateOptions(opts, BruteForce); err != nil {
		return Result{}, err
	}
	inst, err := newInstance(cities)
	if err != nil {
		return Result{}, err
	}
	if inst.n <= 2 {
		return trivialResult(inst, started), nil
	}

	var e = bfEngine{
		inst:     inst,
		n:        inst.n,
		deadline: started.Add(opts.Cutoff),
		order:    identityOrder(inst.n),
		best:     make([]int, inst.n),
		bestLen:  math.Inf(1),
	}
	e.run()

	return Result{
		Tour:       inst.toIDs(e.best),
		Length:     e.bestLen,
		Elapsed:    time.Since(started),
		Iterations: e.evals,
	}, nil
}

// Package tsp - instance normalization shared by all solvers.
//
// Engines never touch caller slices or city IDs directly: newInstance sorts
// a copy of the cities by ascending ID, validates the set, and prefetches
// every pairwise distance into a dense row-major buffer. From there on the
// search space is plain indices 0..n-1; only Result maps back to IDs.
//
// Design:
//   - Deterministic: ascending-ID order fixes index assignment regardless
//     of the caller's slice order.
//   - Hot-path discipline: one O(n²) prefetch up front, then O(1) lookups.
//   - No logging, no panics on user input; only sentinel errors.
package tsp

import (
	"math"
	"sort"
)

// instance is the normalized, solver-ready form of a city set.
type instance struct {
	n   int
	ids []int     // ids[idx] = city ID, ascending
	w   []float64 // w[u*n+v] = rounded distance between indices u and v
}

// newInstance validates cities and builds the dense distance buffer.
//
// Contracts:
//   - IDs must be unique (ErrDuplicateCity); coordinates finite
//     (ErrBadCoordinate). The input slice is not mutated.
//   - n == 0 yields a valid empty instance.
//
// Complexity: O(n log n) sort + O(n²) prefetch.
func newInstance(cities []City) (*instance, error) {
	var n = len(cities)
	inst := &instance{n: n, ids: make([]int, n)}
	if n == 0 {
		return inst, nil
	}

	// Sort a copy by ID to fix the index assignment.
	sorted := make([]City, n)
	copy(sorted, cities)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var (
		i int
		c City
	)
	for i = 0; i < n; i++ {
		c = sorted[i]
		if !finite(c.X) || !finite(c.Y) {
			return nil, ErrBadCoordinate
		}
		if i > 0 && c.ID == sorted[i-1].ID {
			return nil, ErrDuplicateCity
		}
		inst.ids[i] = c.ID
	}

	// Symmetric prefetch; the diagonal stays zero.
	inst.w = make([]float64, n*n)
	var (
		u, v int
		d    float64
	)
	for u = 0; u < n; u++ {
		for v = u + 1; v < n; v++ {
			d = Distance(sorted[u], sorted[v])
			inst.w[u*n+v] = d
			inst.w[v*n+u] = d
		}
	}

	return inst, nil
}

// at is the fast accessor into the dense distance buffer.
func (in *instance) at(u, v int) float64 { return in.w[u*in.n+v] }

// tourLen sums consecutive distances along order plus the closing edge.
// Callers guarantee order is a permutation of 0..n-1; sizes 0 and 1 cost 0.
//
// Complexity: O(n).
func (in *instance) tourLen(order []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 1; i < len(order); i++ {
		sum += in.at(order[i-1], order[i])
	}
	if len(order) > 1 {
		sum += in.at(order[len(order)-1], order[0])
	}

	return sum
}

// toIDs maps an index order to the caller-facing city ID tour.
func (in *instance) toIDs(order []int) []int {
	out := make([]int, len(order))
	var i int
	for i = range order {
		out[i] = in.ids[order[i]]
	}

	return out
}

// finite reports whether x is neither NaN nor infinite.
func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

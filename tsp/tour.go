// Package tsp - tour utilities shared by all solvers.
//
// Tours are open permutations of city IDs: each city appears exactly once
// and the closing edge back to the first entry is implicit. Helpers here
// operate purely on tour structure, never on distances.
package tsp

// ValidateTour checks that tour visits every city's ID exactly once, in
// open form (len(tour) == len(cities), no repeated closing entry).
//
// Errors: ErrBadTour on any shape violation; ErrDuplicateCity when the
// city set itself is malformed.
//
// Complexity: O(n) expected time, O(n) space.
func ValidateTour(cities []City, tour []int) error {
	if len(tour) != len(cities) {
		return ErrBadTour
	}

	remaining := make(map[int]struct{}, len(cities))
	var (
		i  int
		ok bool
	)
	for i = 0; i < len(cities); i++ {
		if _, ok = remaining[cities[i].ID]; ok {
			return ErrDuplicateCity
		}
		remaining[cities[i].ID] = struct{}{}
	}

	// Consume IDs as they appear; a miss is either an unknown ID or a repeat.
	for i = 0; i < len(tour); i++ {
		if _, ok = remaining[tour[i]]; !ok {
			return ErrBadTour
		}
		delete(remaining, tour[i])
	}

	return nil
}

// identityOrder returns indices 0..n-1 (the ascending-ID ring).
//
// Complexity: O(n).
func identityOrder(n int) []int {
	out := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = i
	}

	return out
}

// copyOrder returns an independent copy of an index order.
func copyOrder(order []int) []int {
	out := make([]int, len(order))
	copy(out, order)

	return out
}

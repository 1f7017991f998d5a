// Package tsp - the shared distance model.
//
// Every solver prices edges through Distance, so lengths are directly
// comparable across strategies and across independent runs. The model is
// Euclidean distance rounded to the nearest integer; working on integral
// weights keeps accumulated tour lengths exact in float64 (no cross-platform
// drift, no stabilization pass needed).
package tsp

import "math"

// Distance returns the Euclidean distance between two cities rounded to the
// nearest integer (halves round away from zero).
//
// Complexity: O(1).
func Distance(a, b City) float64 {
	return math.Round(math.Hypot(a.X-b.X, a.Y-b.Y))
}

// TourLength computes the total length of tour over cities, including the
// implicit closing edge from the last city back to the first. It is an
// independent recomputation path: it does not share the solvers' prefetched
// buffers, which makes it suitable for cross-checking Result.Length.
//
// Contracts:
//   - tour lists city IDs and must be a permutation of the IDs in cities
//     (ErrBadTour otherwise).
//   - cities must be well-formed (ErrDuplicateCity / ErrBadCoordinate).
//   - 0 or 1 cities yield length 0.
//
// Complexity: O(n) expected time, O(n) space.
func TourLength(cities []City, tour []int) (float64, error) {
	var n = len(cities)
	if len(tour) != n {
		return 0, ErrBadTour
	}
	if n == 0 {
		return 0, nil
	}

	// Index cities by ID, validating the set along the way.
	byID := make(map[int]City, n)
	var (
		i  int
		c  City
		ok bool
	)
	for i = 0; i < n; i++ {
		c = cities[i]
		if !finite(c.X) || !finite(c.Y) {
			return 0, ErrBadCoordinate
		}
		if _, ok = byID[c.ID]; ok {
			return 0, ErrDuplicateCity
		}
		byID[c.ID] = c
	}

	// Walk the tour; every ID must resolve and may appear only once.
	var (
		sum  float64
		prev City
		cur  City
		seen = make(map[int]struct{}, n)
	)
	for i = 0; i < n; i++ {
		cur, ok = byID[tour[i]]
		if !ok {
			return 0, ErrBadTour
		}
		if _, ok = seen[tour[i]]; ok {
			return 0, ErrBadTour
		}
		seen[tour[i]] = struct{}{}
		if i > 0 {
			sum += Distance(prev, cur)
		}
		prev = cur
	}
	if n > 1 {
		sum += Distance(prev, byID[tour[0]])
	}

	return sum, nil
}

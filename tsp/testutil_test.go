// Package tsp_test shared fixtures and independent reference
// implementations. The references deliberately avoid the package's internal
// buffers: exhaustiveBest enumerates raw permutations through TourLength and
// primWeight re-derives the spanning-tree weight with the array form of
// Prim, so solver results are cross-checked against genuinely separate code
// paths.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tourlab/tourlab/tsp"
)

// seedDet is the fixed seed used wherever a test needs reproducible
// randomness.
const seedDet int64 = 42

// circleCities places n cities evenly on a circle of the given radius,
// IDs 1..n in angular order. In convex position the perimeter order is the
// optimal tour, which makes expected results easy to reason about.
func circleCities(n int, radius float64) []tsp.City {
	cities := make([]tsp.City, n)
	var (
		i  int
		th float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		cities[i] = tsp.City{ID: i + 1, X: radius * math.Cos(th), Y: radius * math.Sin(th)}
	}

	return cities
}

// scatterCities draws n cities uniformly from [0,span)², IDs 1..n, using a
// dedicated deterministic stream so fixtures never depend on call order.
func scatterCities(n int, span float64, seed int64) []tsp.City {
	rng := rand.New(rand.NewSource(seed))
	cities := make([]tsp.City, n)
	var i int
	for i = 0; i < n; i++ {
		cities[i] = tsp.City{ID: i + 1, X: rng.Float64() * span, Y: rng.Float64() * span}
	}

	return cities
}

// unitSquare is the canonical 4-city instance: every Hamiltonian cycle costs
// exactly 4 under rounded distances (sides 1, diagonals round(√2)=1).
func unitSquare() []tsp.City {
	return []tsp.City{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 1, Y: 0},
		{ID: 3, X: 0, Y: 1},
		{ID: 4, X: 1, Y: 1},
	}
}

// exhaustiveBest returns the minimum tour length over every permutation of
// the city IDs. O(n!) - keep n ≤ 8.
func exhaustiveBest(t *testing.T, cities []tsp.City) float64 {
	t.Helper()

	ids := make([]int, len(cities))
	var i int
	for i = range cities {
		ids[i] = cities[i].ID
	}

	var best = math.Inf(1)
	var walk func(k int)
	walk = func(k int) {
		if k == len(ids) {
			l, err := tsp.TourLength(cities, ids)
			require.NoError(t, err)
			if l < best {
				best = l
			}

			return
		}
		var j int
		for j = k; j < len(ids); j++ {
			ids[k], ids[j] = ids[j], ids[k]
			walk(k + 1)
			ids[k], ids[j] = ids[j], ids[k]
		}
	}
	walk(0)

	return best
}

// primWeight computes the minimum-spanning-tree weight with the O(n²) array
// form of Prim, independent of the solvers' heap implementation.
func primWeight(cities []tsp.City) float64 {
	var n = len(cities)
	if n < 2 {
		return 0
	}

	inTree := make([]bool, n)
	best := make([]float64, n)
	var v int
	for v = 1; v < n; v++ {
		best[v] = math.Inf(1)
	}

	var (
		total float64
		it    int
		u     int
		d     float64
	)
	for it = 0; it < n; it++ {
		u = -1
		for v = 0; v < n; v++ {
			if !inTree[v] && (u == -1 || best[v] < best[u]) {
				u = v
			}
		}
		inTree[u] = true
		total += best[u]
		for v = 0; v < n; v++ {
			if !inTree[v] {
				d = tsp.Distance(cities[u], cities[v])
				if d < best[v] {
					best[v] = d
				}
			}
		}
	}

	return total
}

// requireValidResult asserts the tour is a permutation of the city IDs and
// that the reported length matches an independent recomputation.
func requireValidResult(t *testing.T, cities []tsp.City, res tsp.Result) {
	t.Helper()

	require.NoError(t, tsp.ValidateTour(cities, res.Tour))
	recomputed, err := tsp.TourLength(cities, res.Tour)
	require.NoError(t, err)
	require.Equal(t, recomputed, res.Length)
}

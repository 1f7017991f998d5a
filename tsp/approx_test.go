package tsp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tourlab/tourlab/tsp"
)

func approxOptions() tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Algo = tsp.MSTApprox

	return opts
}

// TestSolveMSTApprox_WithinFactorTwo verifies the guarantee that pins the
// algorithm: mstWeight <= tourLength <= 2*mstWeight on metric instances.
func TestSolveMSTApprox_WithinFactorTwo(t *testing.T) {
	var tests = []struct {
		name   string
		cities []tsp.City
	}{
		{"circle30", circleCities(30, 100)},
		{"scatter40", scatterCities(40, 2000, seedDet)},
		{"scatter75", scatterCities(75, 5000, seedDet+1)},
	}

	var tc struct {
		name   string
		cities []tsp.City
	}
	for _, tc = range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tsp.SolveMSTApprox(tc.cities, approxOptions())
			require.NoError(t, err)
			requireValidResult(t, tc.cities, res)

			mst := primWeight(tc.cities)
			require.GreaterOrEqual(t, res.Length, mst)
			require.LessOrEqual(t, res.Length, 2*mst)
		})
	}
}

// TestSolveMSTApprox_UnitSquare: every cycle on the unit square costs 4, so
// the approximation cannot miss it.
func TestSolveMSTApprox_UnitSquare(t *testing.T) {
	cities := unitSquare()

	res, err := tsp.SolveMSTApprox(cities, approxOptions())
	require.NoError(t, err)
	requireValidResult(t, cities, res)
	require.Equal(t, 4.0, res.Length)
}

// TestSolveMSTApprox_CollinearChain: on a line the spanning tree is the
// chain itself, and the preorder reads the cities left to right.
func TestSolveMSTApprox_CollinearChain(t *testing.T) {
	cities := []tsp.City{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 10, Y: 0},
		{ID: 3, X: 20, Y: 0},
		{ID: 4, X: 30, Y: 0},
	}

	res, err := tsp.SolveMSTApprox(cities, approxOptions())
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, res.Tour)
	require.Equal(t, 60.0, res.Length) // 10+10+10 out, 30 back
}

// TestSolveMSTApprox_Deterministic: tie-breaking is fixed, so the tour is a
// pure function of the input; an optional seed changes nothing.
func TestSolveMSTApprox_Deterministic(t *testing.T) {
	cities := scatterCities(60, 3000, seedDet)

	first, err := tsp.SolveMSTApprox(cities, approxOptions())
	require.NoError(t, err)

	seeded := approxOptions()
	seeded.Seed = 99
	seeded.HasSeed = true
	second, err := tsp.SolveMSTApprox(cities, seeded)
	require.NoError(t, err)

	require.Equal(t, first.Tour, second.Tour)
	require.Equal(t, first.Length, second.Length)
}

// TestSolveMSTApprox_DegenerateSizes mirrors the exact solver's trivial
// handling for 0, 1 and 2 cities.
func TestSolveMSTApprox_DegenerateSizes(t *testing.T) {
	res, err := tsp.SolveMSTApprox([]tsp.City{}, approxOptions())
	require.NoError(t, err)
	require.Empty(t, res.Tour)

	pair := []tsp.City{{ID: 5, X: 0, Y: 0}, {ID: 3, X: 0, Y: 4}}
	res, err = tsp.SolveMSTApprox(pair, approxOptions())
	require.NoError(t, err)
	require.Equal(t, []int{3, 5}, res.Tour)
	require.Equal(t, 8.0, res.Length)
}

// TestSolveMSTApprox_BadInput: malformed instances are rejected before any
// tree is built.
func TestSolveMSTApprox_BadInput(t *testing.T) {
	dup := []tsp.City{{ID: 1, X: 0, Y: 0}, {ID: 1, X: 5, Y: 5}, {ID: 2, X: 9, Y: 9}}
	_, err := tsp.SolveMSTApprox(dup, approxOptions())
	require.ErrorIs(t, err, tsp.ErrDuplicateCity)

	opts := approxOptions()
	opts.Cutoff = -time.Second
	_, err = tsp.SolveMSTApprox(unitSquare(), opts)
	require.ErrorIs(t, err, tsp.ErrBadCutoff)
}

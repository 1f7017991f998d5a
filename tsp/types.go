// Package tsp - shared types, options and sentinel errors.
//
// This file defines the public data model (City, Result), the algorithm
// selector, the Options struct with its defaults, and the strict sentinel
// error tree used across all solvers.
//
// Error design:
//   - Two coarse roots: ErrInvalidConfig (bad Options) and ErrMalformedInput
//     (bad cities/tours). Every finer sentinel wraps one of them, so callers
//     may match either the precise cause or the coarse kind via errors.Is.
//   - Solvers never panic on user input and never log; errors are the only
//     failure channel.
package tsp

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// City is a single 2-D point to visit. ID is the caller's stable identifier;
// it need not be contiguous or start at any particular value, but must be
// unique within one instance. Coordinates must be finite.
type City struct {
	ID int
	X  float64
	Y  float64
}

// Algorithm selects the solving strategy.
type Algorithm uint8

const (
	// BruteForce enumerates permutations exhaustively (lexicographic order,
	// first city fixed) under a wall-clock budget; exact when it finishes.
	BruteForce Algorithm = iota

	// MSTApprox builds a minimum spanning tree and shortcuts its preorder
	// walk into a tour; length ≤ 2×OPT under metric distances.
	MSTApprox

	// Genetic runs a seeded evolutionary search; requires Options.HasSeed.
	Genetic
)

// algoNames maps Algorithm values to their canonical short names.
// These names are stable: they appear in CLI flags and solution file names.
var algoNames = [...]string{
	BruteForce: "BF",
	MSTApprox:  "Approx",
	Genetic:    "LS",
}

// String returns the canonical short name ("BF", "Approx", "LS").
func (a Algorithm) String() string {
	if int(a) < len(algoNames) {
		return algoNames[a]
	}

	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// ParseAlgorithm maps a short name (case-insensitive) to its Algorithm.
// Returns ErrUnknownAlgorithm for anything else.
func ParseAlgorithm(s string) (Algorithm, error) {
	var a Algorithm
	for a = BruteForce; int(a) < len(algoNames); a++ {
		if strings.EqualFold(s, algoNames[a]) {
			return a, nil
		}
	}

	return 0, ErrUnknownAlgorithm
}

// Default knob values. Zero-valued Options fields fall back to these (or to
// instance-derived values; see Options).
const (
	// DefaultCutoff bounds a single solver run.
	DefaultCutoff = 60 * time.Second

	// DefaultMutationProb is the per-child swap-mutation probability.
	DefaultMutationProb = 0.02

	// DefaultStagnationLimit stops the genetic search after this many
	// consecutive generations without global improvement.
	DefaultStagnationLimit = 50
)

// Options configures a solver run. The zero value is NOT usable directly
// (Cutoff must be positive); start from DefaultOptions and adjust.
type Options struct {
	// Algo selects the strategy for Solve. Direct entrypoints ignore it.
	Algo Algorithm

	// Cutoff is the wall-clock budget for one run. Must be positive.
	// BruteForce and Genetic return their best-so-far when it expires;
	// MSTApprox normally finishes well within any practical budget.
	Cutoff time.Duration

	// Seed drives all randomized decisions. It is used verbatim (0 is a
	// valid seed). HasSeed distinguishes "seed 0" from "no seed given":
	// Genetic refuses to run without one, the other strategies accept and
	// ignore it.
	Seed    int64
	HasSeed bool

	// PopulationSize is the genetic population P. 0 derives
	// max(50, min(100, 5n)) from the instance size n; negative is invalid.
	PopulationSize int

	// EliteCount is the number of best tours copied unchanged into the next
	// generation. 0 derives max(5, P/10); negative is invalid. Must stay
	// below PopulationSize after derivation.
	EliteCount int

	// MutationProb is the per-child swap-mutation probability in [0,1].
	// 0 falls back to DefaultMutationProb.
	MutationProb float64

	// StagnationLimit stops the genetic search after this many consecutive
	// generations without improving the global best. 0 falls back to
	// DefaultStagnationLimit; negative is invalid.
	StagnationLimit int

	// OnGeneration, when non-nil, is invoked by Genetic once per completed
	// generation with the 1-based generation number and the global best
	// length so far. Must be fast; it runs inside the search loop.
	OnGeneration func(gen int, best float64)
}

// DefaultOptions returns the canonical starting configuration:
// MSTApprox, 60s cutoff, genetic knobs at their documented defaults.
func DefaultOptions() Options {
	return Options{
		Algo:            MSTApprox,
		Cutoff:          DefaultCutoff,
		MutationProb:    DefaultMutationProb,
		StagnationLimit: DefaultStagnationLimit,
	}
}

// Result is the outcome of a solver run.
type Result struct {
	// Tour lists city IDs in visiting order, each exactly once, with the
	// closing edge back to Tour[0] implicit. len(Tour) equals the number
	// of cities.
	Tour []int

	// Length is the total tour length including the closing edge, under
	// the rounded-Euclidean distance model.
	Length float64

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// Iterations counts the work units performed: permutations evaluated
	// (BruteForce), generations completed (Genetic), 0 for MSTApprox.
	Iterations int64
}

// Coarse error kinds. All finer sentinels wrap exactly one of these.
var (
	// ErrInvalidConfig reports unusable Options.
	ErrInvalidConfig = errors.New("tsp: invalid configuration")

	// ErrMalformedInput reports unusable cities or tours.
	ErrMalformedInput = errors.New("tsp: malformed input")
)

// Fine-grained sentinels. Match with errors.Is against either the precise
// value or its coarse root.
var (
	// ErrBadCutoff is returned when Options.Cutoff is zero or negative.
	ErrBadCutoff = fmt.Errorf("%w: cutoff must be positive", ErrInvalidConfig)

	// ErrUnknownAlgorithm is returned for an unrecognized Algorithm value
	// or name.
	ErrUnknownAlgorithm = fmt.Errorf("%w: unknown algorithm", ErrInvalidConfig)

	// ErrSeedRequired is returned when Genetic runs without HasSeed.
	ErrSeedRequired = fmt.Errorf("%w: genetic search requires an explicit seed", ErrInvalidConfig)

	// ErrBadPopulation is returned when genetic knobs are out of range
	// (negative sizes, elite ≥ population, mutation outside [0,1]).
	ErrBadPopulation = fmt.Errorf("%w: unusable population shape", ErrInvalidConfig)

	// ErrDuplicateCity is returned when two cities share an ID.
	ErrDuplicateCity = fmt.Errorf("%w: duplicate city id", ErrMalformedInput)

	// ErrBadCoordinate is returned when a coordinate is NaN or infinite.
	ErrBadCoordinate = fmt.Errorf("%w: non-finite coordinate", ErrMalformedInput)

	// ErrBadTour is returned when a tour is not a permutation of the
	// instance's city IDs.
	ErrBadTour = fmt.Errorf("%w: tour is not a permutation of the cities", ErrMalformedInput)
)

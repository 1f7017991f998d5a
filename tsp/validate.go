// Package tsp - option validation shared by all entrypoints.
//
// Validation is split in two stages:
//  1. validateOptions checks knobs that are independent of the instance
//     (cutoff, seed presence, raw knob ranges).
//  2. resolveGAConfig applies the instance-aware zero-value fallbacks for
//     the genetic knobs and enforces the final shape constraints.
//
// Both stages are deterministic, side-effect free, and report only the
// sentinel errors from types.go.
package tsp

// validateOptions checks instance-independent knobs for the given strategy.
//
// Complexity: O(1).
func validateOptions(opts Options, algo Algorithm) error {
	if opts.Cutoff <= 0 {
		return ErrBadCutoff
	}
	if algo != Genetic {
		// BruteForce and MSTApprox accept (and ignore) any seed.
		return nil
	}

	if !opts.HasSeed {
		return ErrSeedRequired
	}
	if opts.PopulationSize < 0 || opts.EliteCount < 0 || opts.StagnationLimit < 0 {
		return ErrBadPopulation
	}
	if opts.MutationProb < 0 || opts.MutationProb > 1 {
		return ErrBadPopulation
	}
	// When both sizes are explicit the ordering can be rejected early;
	// derived values are checked again in resolveGAConfig.
	if opts.PopulationSize > 0 && opts.EliteCount > 0 && opts.EliteCount >= opts.PopulationSize {
		return ErrBadPopulation
	}

	return nil
}

// gaConfig is the resolved, instance-aware genetic parameter set.
type gaConfig struct {
	popSize         int
	eliteCount      int
	mutationProb    float64
	stagnationLimit int
}

// resolveGAConfig applies the documented zero-value fallbacks for n cities:
// population max(50, min(100, 5n)), elite max(5, P/10), mutation
// DefaultMutationProb, stagnation DefaultStagnationLimit.
//
// Errors: ErrBadPopulation when the resolved elite count reaches the
// resolved population size.
//
// Complexity: O(1).
func resolveGAConfig(opts Options, n int) (gaConfig, error) {
	var cfg gaConfig

	cfg.popSize = opts.PopulationSize
	if cfg.popSize == 0 {
		cfg.popSize = 5 * n
		if cfg.popSize > 100 {
			cfg.popSize = 100
		}
		if cfg.popSize < 50 {
			cfg.popSize = 50
		}
	}

	cfg.eliteCount = opts.EliteCount
	if cfg.eliteCount == 0 {
		cfg.eliteCount = cfg.popSize / 10
		if cfg.eliteCount < 5 {
			cfg.eliteCount = 5
		}
	}
	if cfg.eliteCount >= cfg.popSize {
		return gaConfig{}, ErrBadPopulation
	}

	cfg.mutationProb = opts.MutationProb
	if cfg.mutationProb == 0 {
		cfg.mutationProb = DefaultMutationProb
	}

	cfg.stagnationLimit = opts.StagnationLimit
	if cfg.stagnationLimit == 0 {
		cfg.stagnationLimit = DefaultStagnationLimit
	}

	return cfg, nil
}

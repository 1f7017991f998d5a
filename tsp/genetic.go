// Package tsp - genetic search (Genetic).
//
// gaEngine evolves a population of candidate tours:
//
//  1. Initialization: P uniformly random permutations from the seeded RNG.
//  2. Fitness: 1/(length+1e-10), normalized into a cumulative roulette wheel.
//  3. Selection: two independent wheel draws per child; when both hit the
//     same tour the second parent shifts to the neighbouring index.
//  4. Crossover: a random segment of parent 1 is copied in place, remaining
//     slots fill from parent 2 left to right, skipping cities already placed.
//  5. Mutation: with probability MutationProb per child, swap two distinct
//     positions.
//  6. Elitism: the EliteCount shortest tours survive unchanged.
//  7. Termination: wall-clock budget or StagnationLimit consecutive
//     generations without a new global best, whichever comes first.
//
// The global best is tracked across all generations and never regresses, so
// the returned tour is the best ever seen even when late generations drift.
//
// Complexity: O(P·n) per generation for evaluation and breeding, plus
// O(P log P) for the elite sort.
package tsp

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

// fitnessFloor guards the fitness division against zero-length tours.
const fitnessFloor = 1e-10

// gaEngine holds the evolutionary search state.
type gaEngine struct {
	inst *instance
	n    int
	cfg  gaConfig
	rng  *rand.Rand

	deadline time.Time
	onGen    func(gen int, best float64)

	pop     [][]int
	lengths []float64
	probs   []float64 // cumulative selection probabilities
	byLen   []int     // index-sort scratch for elitism

	best    []int
	bestLen float64

	generations int64
	stagnant    int
}

// setup seeds the population and adopts its best tour as the initial global
// best, so even a zero-generation run returns a valid permutation.
func (e *gaEngine) setup() {
	e.pop = make([][]int, e.cfg.popSize)
	e.lengths = make([]float64, e.cfg.popSize)
	e.probs = make([]float64, e.cfg.popSize)
	e.byLen = make([]int, e.cfg.popSize)

	var p int
	for p = 0; p < e.cfg.popSize; p++ {
		e.pop[p] = randPerm(e.n, e.rng)
		e.lengths[p] = e.inst.tourLen(e.pop[p])
	}

	e.best = make([]int, e.n)
	e.bestLen = math.Inf(1)
	e.adoptBest()
}

// adoptBest commits the shortest population tour when it beats the global
// best. Reports whether the global best improved.
func (e *gaEngine) adoptBest() bool {
	var (
		p        int
		improved bool
	)
	for p = 0; p < e.cfg.popSize; p++ {
		if e.lengths[p] < e.bestLen {
			e.bestLen = e.lengths[p]
			copy(e.best, e.pop[p])
			improved = true
		}
	}

	return improved
}

// updateWheel refreshes the cumulative roulette wheel from current lengths.
// Shorter tours receive proportionally larger slices via 1/(length+floor).
func (e *gaEngine) updateWheel() {
	var (
		p     int
		f     float64
		total float64
	)
	for p = 0; p < e.cfg.popSize; p++ {
		f = 1 / (e.lengths[p] + fitnessFloor)
		e.probs[p] = f
		total += f
	}

	var acc float64
	for p = 0; p < e.cfg.popSize; p++ {
		acc += e.probs[p] / total
		e.probs[p] = acc
	}
	// Pin the tail so a draw near 1.0 cannot fall off the wheel.
	e.probs[e.cfg.popSize-1] = 1
}

// spin returns a population index drawn from the cumulative wheel.
func (e *gaEngine) spin() int {
	var i = sort.SearchFloat64s(e.probs, e.rng.Float64())
	if i >= e.cfg.popSize {
		i = e.cfg.popSize - 1
	}

	return i
}

// selectParents draws a roulette pair; identical draws shift the second
// parent to the neighbouring index so crossover always mixes two tours.
func (e *gaEngine) selectParents() (int, int) {
	var (
		p1 = e.spin()
		p2 = e.spin()
	)
	if p2 == p1 {
		p2 = (p1 + 1) % e.cfg.popSize
	}

	return p1, p2
}

// crossover copies a random segment of a into the child, then fills the
// remaining slots from b in order, skipping cities the segment already
// placed. The child is always a valid permutation.
func (e *gaEngine) crossover(a, b []int) []int {
	var (
		start  = e.rng.Intn(e.n)
		segLen = 1 + e.rng.Intn(e.n/2)
		end    = start + segLen
	)
	if end > e.n {
		end = e.n
	}

	child := make([]int, e.n)
	used := make([]bool, e.n)

	var i int
	for i = start; i < end; i++ {
		child[i] = a[i]
		used[a[i]] = true
	}

	var from int // read cursor into b
	for i = 0; i < e.n; i++ {
		if i >= start && i < end {
			continue
		}
		for used[b[from]] {
			from++
		}
		child[i] = b[from]
		used[b[from]] = true
		from++
	}

	return child
}

// mutate swaps two distinct positions with probability cfg.mutationProb.
func (e *gaEngine) mutate(t []int) {
	if e.rng.Float64() >= e.cfg.mutationProb {
		return
	}
	var (
		i = e.rng.Intn(e.n)
		j = e.rng.Intn(e.n)
	)
	for j == i {
		j = e.rng.Intn(e.n)
	}
	t[i], t[j] = t[j], t[i]
}

// evolve produces the next population: elites survive unchanged, children
// bred by selection, crossover and mutation fill the remaining slots.
func (e *gaEngine) evolve() {
	e.updateWheel()

	// Elite indices: the cfg.eliteCount shortest tours, stable on ties.
	var p int
	for p = 0; p < e.cfg.popSize; p++ {
		e.byLen[p] = p
	}
	sort.SliceStable(e.byLen, func(i, j int) bool {
		return e.lengths[e.byLen[i]] < e.lengths[e.byLen[j]]
	})

	next := make([][]int, 0, e.cfg.popSize)
	for p = 0; p < e.cfg.eliteCount; p++ {
		next = append(next, copyOrder(e.pop[e.byLen[p]]))
	}

	var (
		p1, p2 int
		child  []int
	)
	for len(next) < e.cfg.popSize {
		p1, p2 = e.selectParents()
		child = e.crossover(e.pop[p1], e.pop[p2])
		e.mutate(child)
		next = append(next, child)
	}

	e.pop = next
	for p = 0; p < e.cfg.popSize; p++ {
		e.lengths[p] = e.inst.tourLen(e.pop[p])
	}
}

// run executes the generational loop until the budget or stagnation stop.
func (e *gaEngine) run() {
	for time.Now().Before(e.deadline) && e.stagnant < e.cfg.stagnationLimit {
		e.evolve()
		e.generations++
		if e.adoptBest() {
			e.stagnant = 0
		} else {
			e.stagnant++
		}
		if e.onGen != nil {
			e.onGen(int(e.generations), e.bestLen)
		}
	}
}

// SolveGenetic runs the evolutionary search.
//
// Contracts:
//   - opts.Cutoff must be positive and opts.HasSeed set; the same seed over
//     the same cities reproduces the run exactly.
//   - Genetic knobs follow the zero-value fallbacks documented on Options.
//   - cities need unique IDs and finite coordinates.
//
// Anytime behaviour: the global best at termination is returned; with a
// near-zero budget that is the best tour of the initial random population.
// 0, 1 and 2 cities resolve trivially without entering the loop.
//
// Errors: ErrBadCutoff, ErrSeedRequired, ErrBadPopulation,
// ErrDuplicateCity, ErrBadCoordinate.
func SolveGenetic(cities []City, opts Options) (Result, error) {
	var started = time.Now()
	if err := validateOptions(opts, Genetic); err != nil {
		return Result{}, err
	}
	inst, err := newInstance(cities)
	if err != nil {
		return Result{}, err
	}
	if inst.n <= 2 {
		return trivialResult(inst, started), nil
	}

	cfg, err := resolveGAConfig(opts, inst.n)
	if err != nil {
		return Result{}, err
	}

	var e = gaEngine{
		inst:     inst,
		n:        inst.n,
		cfg:      cfg,
		rng:      rngFromSeed(opts.Seed),
		deadline: started.Add(opts.Cutoff),
		onGen:    opts.OnGeneration,
	}
	e.setup()
	e.run()

	return Result{
		Tour:       inst.toIDs(e.best),
		Length:     e.bestLen,
		Elapsed:    time.Since(started),
		Iterations: e.generations,
	}, nil
}

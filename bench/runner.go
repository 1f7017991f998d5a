package bench

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tourlab/tourlab/tsp"
	"github.com/tourlab/tourlab/tsplib"
)

// RunResult is the outcome of one cell of the matrix.
type RunResult struct {
	Instance     string
	Algorithm    tsp.Algorithm
	Seed         int64
	HasSeed      bool
	Length       float64
	Elapsed      time.Duration
	Iterations   int64
	SolutionPath string
}

// job is one expanded matrix cell waiting to run.
type job struct {
	instance string
	opts     tsp.Options
}

// Runner executes a configured matrix.
type Runner struct {
	cfg    *Config
	store  *Store
	logger *log.Logger
}

// NewRunner wires a runner. store may be nil (no archiving); logger may be
// nil (a default logrus logger is used).
func NewRunner(cfg *Config, store *Store, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New()
	}

	return &Runner{cfg: cfg, store: store, logger: logger}
}

// Run executes every instance x algorithm x seed cell under a worker pool
// of cfg.Workers goroutines. Each cell is isolated: it parses its own copy
// of the instance and owns its engine state, so parallel cells cannot
// interact. Solutions are written to cfg.OutputDir; when a store is
// attached every run is archived.
//
// On the first failing cell the remaining cells are cancelled and the
// error is returned; partial results are discarded.
func (r *Runner) Run(ctx context.Context) ([]RunResult, error) {
	jobs := r.expand()
	if len(jobs) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrBadConfig)
	}
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return nil, err
	}

	r.logger.WithFields(log.Fields{
		"cells":   len(jobs),
		"workers": r.cfg.Workers,
	}).Info("starting batch")

	results := make([]RunResult, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)

	for i := range jobs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.runCell(jobs[i])
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// runCell parses, solves, writes the .sol file and archives one cell.
func (r *Runner) runCell(jb job) (RunResult, error) {
	inst, err := tsplib.ParseFile(tsplib.InstancePath(r.cfg.DataDir, jb.instance))
	if err != nil {
		return RunResult{}, err
	}

	res, err := tsp.Solve(inst.Cities, jb.opts)
	if err != nil {
		return RunResult{}, fmt.Errorf("%s/%s: %w", jb.instance, jb.opts.Algo, err)
	}

	name := tsplib.SolutionFilename(jb.instance, jb.opts.Algo, jb.opts.Cutoff, jb.opts.Seed, jb.opts.HasSeed)
	path := filepath.Join(r.cfg.OutputDir, name)
	f, err := os.Create(path)
	if err != nil {
		return RunResult{}, err
	}
	if err = tsplib.WriteSolution(f, res.Length, res.Tour); err != nil {
		f.Close()
		return RunResult{}, err
	}
	if err = f.Close(); err != nil {
		return RunResult{}, err
	}

	if r.store != nil {
		_, err = r.store.RecordRun(RunRecord{
			Instance:   jb.instance,
			Algorithm:  jb.opts.Algo,
			Cutoff:     jb.opts.Cutoff,
			Seed:       jb.opts.Seed,
			HasSeed:    jb.opts.HasSeed,
			Length:     res.Length,
			Tour:       res.Tour,
			Elapsed:    res.Elapsed,
			Iterations: res.Iterations,
		})
		if err != nil {
			return RunResult{}, err
		}
	}

	fields := log.Fields{
		"instance": jb.instance,
		"algo":     jb.opts.Algo.String(),
		"length":   res.Length,
		"elapsed":  res.Elapsed.Round(time.Millisecond).String(),
	}
	if jb.opts.HasSeed {
		fields["seed"] = jb.opts.Seed
	}
	r.logger.WithFields(fields).Info("cell done")

	return RunResult{
		Instance:     jb.instance,
		Algorithm:    jb.opts.Algo,
		Seed:         jb.opts.Seed,
		HasSeed:      jb.opts.HasSeed,
		Length:       res.Length,
		Elapsed:      res.Elapsed,
		Iterations:   res.Iterations,
		SolutionPath: path,
	}, nil
}

// expand unrolls the config into concrete cells: one BF and one Approx run
// per instance when enabled (both deterministic), one LS run per
// instance x seed. Instances are visited in sorted order so cell order is
// stable for a given config.
func (r *Runner) expand() []job {
	instances := append([]string(nil), r.cfg.Instances...)
	sort.Strings(instances)

	var jobs []job
	var name string
	for _, name = range instances {
		if r.cfg.BruteForce.Enabled {
			opts := tsp.DefaultOptions()
			opts.Algo = tsp.BruteForce
			opts.Cutoff = r.cfg.BruteForce.Cutoff()
			jobs = append(jobs, job{instance: name, opts: opts})
		}
		if r.cfg.Approx.Enabled {
			opts := tsp.DefaultOptions()
			opts.Algo = tsp.MSTApprox
			opts.Cutoff = r.cfg.Approx.Cutoff()
			jobs = append(jobs, job{instance: name, opts: opts})
		}
		if r.cfg.Genetic.Enabled {
			var seed int64
			for _, seed = range r.cfg.Genetic.Seeds {
				opts := tsp.DefaultOptions()
				opts.Algo = tsp.Genetic
				opts.Cutoff = r.cfg.Genetic.Cutoff()
				opts.Seed = seed
				opts.HasSeed = true
				jobs = append(jobs, job{instance: name, opts: opts})
			}
		}
	}

	return jobs
}

package bench

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrBadConfig is the root of every configuration error in this package.
var ErrBadConfig = errors.New("bench: bad config")

// Default knobs applied by Load when the file leaves them unset. The
// cutoffs mirror the interactive defaults: a minute for the exact search,
// a second per genetic run so ten seeds stay affordable.
const (
	DefaultBFCutoff  = 60 * time.Second
	DefaultLSCutoff  = time.Second
	DefaultWorkers   = 1
	DefaultDataDir   = "data"
	DefaultOutputDir = "solutions"
)

// JobSpec configures one algorithm's slice of the matrix. Jobs are
// opt-in: a spec left disabled contributes no runs.
type JobSpec struct {
	Enabled       bool    `yaml:"enabled"`
	CutoffSeconds float64 `yaml:"cutoff_seconds"`
	Seeds         []int64 `yaml:"seeds"`
}

// Cutoff returns the job's wall-clock budget as a duration.
func (j JobSpec) Cutoff() time.Duration {
	return time.Duration(j.CutoffSeconds * float64(time.Second))
}

// Config is the YAML shape of a batch run.
type Config struct {
	DataDir   string   `yaml:"data_dir"`
	OutputDir string   `yaml:"output_dir"`
	Archive   string   `yaml:"archive"` // SQLite path; empty disables archiving
	Instances []string `yaml:"instances"`
	Workers   int      `yaml:"workers"`

	BruteForce JobSpec `yaml:"brute_force"`
	Approx     JobSpec `yaml:"approx"`
	Genetic    JobSpec `yaml:"genetic"`
}

// Load reads path, fills defaults and validates.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	cfg.applyDefaults()
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills the knobs the file left at their zero values.
func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
	if c.BruteForce.CutoffSeconds == 0 {
		c.BruteForce.CutoffSeconds = DefaultBFCutoff.Seconds()
	}
	if c.Approx.CutoffSeconds == 0 {
		c.Approx.CutoffSeconds = DefaultBFCutoff.Seconds()
	}
	if c.Genetic.CutoffSeconds == 0 {
		c.Genetic.CutoffSeconds = DefaultLSCutoff.Seconds()
	}
	if c.Genetic.Enabled && len(c.Genetic.Seeds) == 0 {
		// Ten canonical seeds, 0 through 9.
		c.Genetic.Seeds = make([]int64, 10)
		var i int64
		for i = 0; i < 10; i++ {
			c.Genetic.Seeds[i] = i
		}
	}
}

// Validate reports the first structural problem, ErrBadConfig-wrapped.
func (c *Config) Validate() error {
	if len(c.Instances) == 0 {
		return fmt.Errorf("%w: no instances listed", ErrBadConfig)
	}
	if !c.BruteForce.Enabled && !c.Approx.Enabled && !c.Genetic.Enabled {
		return fmt.Errorf("%w: no algorithm enabled", ErrBadConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrBadConfig, c.Workers)
	}
	if c.BruteForce.Enabled && c.BruteForce.CutoffSeconds <= 0 {
		return fmt.Errorf("%w: brute_force cutoff must be positive", ErrBadConfig)
	}
	if c.Approx.Enabled && c.Approx.CutoffSeconds <= 0 {
		return fmt.Errorf("%w: approx cutoff must be positive", ErrBadConfig)
	}
	if c.Genetic.Enabled {
		if c.Genetic.CutoffSeconds <= 0 {
			return fmt.Errorf("%w: genetic cutoff must be positive", ErrBadConfig)
		}
		if len(c.Genetic.Seeds) == 0 {
			return fmt.Errorf("%w: genetic enabled without seeds", ErrBadConfig)
		}
	}

	return nil
}

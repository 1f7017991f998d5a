package bench_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tourlab/tourlab/bench"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
data_dir: /tmp/instances
output_dir: /tmp/solutions
archive: /tmp/runs.db
instances: [berlin52, toy4]
workers: 4
brute_force:
  enabled: true
  cutoff_seconds: 120
approx:
  enabled: true
genetic:
  enabled: true
  cutoff_seconds: 2.5
  seeds: [1, 2, 3]
`)

	cfg, err := bench.Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/instances", cfg.DataDir)
	require.Equal(t, "/tmp/solutions", cfg.OutputDir)
	require.Equal(t, "/tmp/runs.db", cfg.Archive)
	require.Equal(t, []string{"berlin52", "toy4"}, cfg.Instances)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, 120*time.Second, cfg.BruteForce.Cutoff())
	require.Equal(t, 2500*time.Millisecond, cfg.Genetic.Cutoff())
	require.Equal(t, []int64{1, 2, 3}, cfg.Genetic.Seeds)
}

// TestLoad_Defaults: a minimal file gets the canonical knobs: one worker,
// data/ and solutions/ dirs, 60s and 1s cutoffs, seeds 0 through 9.
func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
instances: [toy4]
genetic:
  enabled: true
`)

	cfg, err := bench.Load(path)
	require.NoError(t, err)
	require.Equal(t, "data", cfg.DataDir)
	require.Equal(t, "solutions", cfg.OutputDir)
	require.Empty(t, cfg.Archive)
	require.Equal(t, 1, cfg.Workers)
	require.Equal(t, 60*time.Second, cfg.BruteForce.Cutoff())
	require.Equal(t, time.Second, cfg.Genetic.Cutoff())
	require.Equal(t, []int64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, cfg.Genetic.Seeds)
}

func TestLoad_Rejections(t *testing.T) {
	var tests = []struct {
		name string
		body string
	}{
		{"no instances", "approx:\n  enabled: true\n"},
		{"nothing enabled", "instances: [toy4]\n"},
		{"negative workers", "instances: [toy4]\nworkers: -2\napprox:\n  enabled: true\n"},
		{"negative cutoff", "instances: [toy4]\napprox:\n  enabled: true\n  cutoff_seconds: -5\n"},
		{"not yaml", "instances: [unterminated\n"},
	}

	var tc struct {
		name string
		body string
	}
	for _, tc = range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bench.Load(writeConfig(t, tc.body))
			require.ErrorIs(t, err, bench.ErrBadConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := bench.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.NotErrorIs(t, err, bench.ErrBadConfig)
}

package tsplib_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tourlab/tourlab/tsp"
	"github.com/tourlab/tourlab/tsplib"
)

func TestWriteSolution_Format(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, tsplib.WriteSolution(&sb, 1234.5, []int{3, 1, 2}))
	require.Equal(t, "1234.50\n3, 1, 2\n", sb.String())
}

func TestWriteSolution_EmptyTour(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, tsplib.WriteSolution(&sb, 0, nil))
	require.Equal(t, "0.00\n\n", sb.String())
}

func TestReadSolution_RoundTrip(t *testing.T) {
	var sb strings.Builder
	tour := []int{5, 2, 9, 1}
	require.NoError(t, tsplib.WriteSolution(&sb, 777.25, tour))

	length, got, err := tsplib.ReadSolution(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Equal(t, 777.25, length)
	require.Equal(t, tour, got)
}

func TestReadSolution_EmptyTourLine(t *testing.T) {
	length, tour, err := tsplib.ReadSolution(strings.NewReader("0.00\n\n"))
	require.NoError(t, err)
	require.Equal(t, 0.0, length)
	require.Empty(t, tour)
}

func TestReadSolution_Rejections(t *testing.T) {
	var tests = []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"bad length", "abc\n1, 2\n"},
		{"missing tour line", "10.00\n"},
		{"bad tour entry", "10.00\n1, two, 3\n"},
	}

	var tc struct {
		name string
		in   string
	}
	for _, tc = range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := tsplib.ReadSolution(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tsplib.ErrBadFormat)
		})
	}
}

func TestSolutionFilename(t *testing.T) {
	var tests = []struct {
		name    string
		inst    string
		algo    tsp.Algorithm
		cutoff  time.Duration
		seed    int64
		hasSeed bool
		want    string
	}{
		{"bf carries cutoff", "Berlin52", tsp.BruteForce, 60 * time.Second, 0, false, "berlin52_BF_60.sol"},
		{"approx bare", "toy4", tsp.MSTApprox, time.Second, 0, false, "toy4_Approx.sol"},
		{"approx keeps ignored seed", "toy4", tsp.MSTApprox, time.Second, 3, true, "toy4_Approx_3.sol"},
		{"ls carries cutoff and seed", "XQF131", tsp.Genetic, time.Second, 7, true, "xqf131_LS_1_7.sol"},
	}

	var tc struct {
		name    string
		inst    string
		algo    tsp.Algorithm
		cutoff  time.Duration
		seed    int64
		hasSeed bool
		want    string
	}
	for _, tc = range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tsplib.SolutionFilename(tc.inst, tc.algo, tc.cutoff, tc.seed, tc.hasSeed)
			require.Equal(t, tc.want, got)
		})
	}
}

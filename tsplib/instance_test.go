package tsplib_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tourlab/tourlab/tsp"
	"github.com/tourlab/tourlab/tsplib"
)

const sampleTSP = `NAME : toy4
COMMENT : four corners
TYPE : TSP
DIMENSION : 4
EDGE_WEIGHT_TYPE : EUC_2D
NODE_COORD_SECTION
1 0 0
2 10 0
3 10 10
4 0 10
EOF
`

func TestParse_WellFormed(t *testing.T) {
	inst, err := tsplib.Parse(strings.NewReader(sampleTSP))
	require.NoError(t, err)

	require.Equal(t, "toy4", inst.Name)
	require.Equal(t, "four corners", inst.Comment)
	require.Equal(t, 4, inst.Dimension)
	require.Equal(t, []tsp.City{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 10, Y: 0},
		{ID: 3, X: 10, Y: 10},
		{ID: 4, X: 0, Y: 10},
	}, inst.Cities)
}

// TestParse_HeaderVariations: colon spacing is free, unknown keys are
// skipped, repeated COMMENT lines concatenate, the EOF line is optional.
func TestParse_HeaderVariations(t *testing.T) {
	in := strings.Join([]string{
		"NAME:spaced",
		"COMMENT: first",
		"COMMENT: second",
		"DISPLAY_DATA_TYPE : COORD_DISPLAY",
		"DIMENSION:2",
		"EDGE_WEIGHT_TYPE:EUC_2D",
		"NODE_COORD_SECTION",
		"1 1.5 -2.5",
		"2 3.25e1 0",
	}, "\n")

	inst, err := tsplib.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, "spaced", inst.Name)
	require.Equal(t, "first second", inst.Comment)
	require.Equal(t, 2, inst.Dimension)
	require.Equal(t, 32.5, inst.Cities[1].X)
}

func TestParse_Rejections(t *testing.T) {
	var tests = []struct {
		name string
		in   string
	}{
		{"missing section", "NAME : x\nDIMENSION : 2\n"},
		{"section before dimension", "NAME : x\nNODE_COORD_SECTION\n1 0 0\n"},
		{"row arity", "DIMENSION : 1\nNODE_COORD_SECTION\n1 0\n"},
		{"bad id", "DIMENSION : 1\nNODE_COORD_SECTION\none 0 0\n"},
		{"bad x", "DIMENSION : 1\nNODE_COORD_SECTION\n1 left 0\n"},
		{"bad y", "DIMENSION : 1\nNODE_COORD_SECTION\n1 0 up\n"},
		{"duplicate id", "DIMENSION : 2\nNODE_COORD_SECTION\n7 0 0\n7 1 1\n"},
		{"too many rows", "DIMENSION : 1\nNODE_COORD_SECTION\n1 0 0\n2 1 1\n"},
		{"too few rows", "DIMENSION : 3\nNODE_COORD_SECTION\n1 0 0\n2 1 1\n"},
		{"bad dimension", "DIMENSION : many\nNODE_COORD_SECTION\n"},
		{"wrong type", "TYPE : TOUR\nDIMENSION : 1\nNODE_COORD_SECTION\n1 0 0\n"},
		{"wrong metric", "EDGE_WEIGHT_TYPE : GEO\nDIMENSION : 1\nNODE_COORD_SECTION\n1 0 0\n"},
		{"headerless junk", "JUST SOME WORDS\nDIMENSION : 1\nNODE_COORD_SECTION\n1 0 0\n"},
	}

	var tc struct {
		name string
		in   string
	}
	for _, tc = range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsplib.Parse(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tsplib.ErrBadFormat)
		})
	}
}

func TestParseFile_NameFallsBackToStem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corners.tsp")

	anon := strings.Replace(sampleTSP, "NAME : toy4\n", "", 1)
	require.NoError(t, os.WriteFile(path, []byte(anon), 0o644))

	inst, err := tsplib.ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, "corners", inst.Name)
	require.Len(t, inst.Cities, 4)
}

func TestParseFile_MissingFile(t *testing.T) {
	_, err := tsplib.ParseFile(filepath.Join(t.TempDir(), "nope.tsp"))
	require.Error(t, err)
	require.NotErrorIs(t, err, tsplib.ErrBadFormat)
}

func TestInstancePath(t *testing.T) {
	require.Equal(t,
		filepath.Join("data", "berlin52.tsp"),
		tsplib.InstancePath("data", "berlin52"))
}

// TestParse_FeedsSolver: a parsed instance drops straight into the solver.
func TestParse_FeedsSolver(t *testing.T) {
	inst, err := tsplib.Parse(strings.NewReader(sampleTSP))
	require.NoError(t, err)

	opts := tsp.DefaultOptions()
	opts.Algo = tsp.MSTApprox
	res, err := tsp.Solve(inst.Cities, opts)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, res.Tour) // perimeter order
	require.Equal(t, 40.0, res.Length)
}

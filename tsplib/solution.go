package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tourlab/tourlab/tsp"
)

// WriteSolution emits the two-line solution format: the tour length with
// two decimals, then the city IDs joined by ", ".
func WriteSolution(w io.Writer, length float64, tour []int) error {
	if _, err := fmt.Fprintf(w, "%.2f\n", length); err != nil {
		return err
	}

	ids := make([]string, len(tour))
	var i int
	for i = range tour {
		ids[i] = strconv.Itoa(tour[i])
	}
	_, err := fmt.Fprintf(w, "%s\n", strings.Join(ids, ", "))

	return err
}

// ReadSolution parses the two-line solution format back into a length and
// a tour. The inverse of WriteSolution.
//
// Errors: ErrBadFormat-wrapped on any structural violation.
func ReadSolution(r io.Reader) (float64, []int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
		}
		return 0, nil, fmt.Errorf("%w: empty solution", ErrBadFormat)
	}
	length, err := strconv.ParseFloat(strings.TrimSpace(sc.Text()), 64)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: bad length line %q", ErrBadFormat, sc.Text())
	}

	if !sc.Scan() {
		if err = sc.Err(); err != nil {
			return 0, nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
		}
		return 0, nil, fmt.Errorf("%w: missing tour line", ErrBadFormat)
	}
	tourLine := strings.TrimSpace(sc.Text())
	if tourLine == "" {
		return length, []int{}, nil
	}

	parts := strings.Split(tourLine, ",")
	tour := make([]int, 0, len(parts))
	var part string
	for _, part = range parts {
		id, convErr := strconv.Atoi(strings.TrimSpace(part))
		if convErr != nil {
			return 0, nil, fmt.Errorf("%w: bad tour entry %q", ErrBadFormat, part)
		}
		tour = append(tour, id)
	}

	return length, tour, nil
}

// SolutionFilename builds the conventional output name for one solver run.
//
// Naming rules (instance is lowercased):
//   - BF:     <inst>_BF_<cutoffSeconds>.sol
//   - Approx: <inst>_Approx.sol, or <inst>_Approx_<seed>.sol when a seed
//     was supplied (it is ignored by the engine but kept in the name so
//     batch artifacts stay distinct).
//   - LS:     <inst>_LS_<cutoffSeconds>_<seed>.sol
func SolutionFilename(instance string, algo tsp.Algorithm, cutoff time.Duration, seed int64, hasSeed bool) string {
	inst := strings.ToLower(instance)
	secs := int(cutoff.Seconds())

	switch algo {
	case tsp.BruteForce:
		return fmt.Sprintf("%s_%s_%d.sol", inst, algo, secs)
	case tsp.MSTApprox:
		if hasSeed {
			return fmt.Sprintf("%s_%s_%d.sol", inst, algo, seed)
		}
		return fmt.Sprintf("%s_%s.sol", inst, algo)
	default:
		return fmt.Sprintf("%s_%s_%d_%d.sol", inst, algo, secs, seed)
	}
}

package bench

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/tourlab/tourlab/tsp"
)

// Summary aggregates the runs of one algorithm on one instance.
type Summary struct {
	Instance    string
	Algorithm   tsp.Algorithm
	Runs        int
	MeanLength  float64
	StdDev      float64
	MinLength   float64
	MaxLength   float64
	MeanElapsed time.Duration
}

// Summarize groups results by (instance, algorithm) and aggregates
// lengths and elapsed times. Output is sorted by instance, then by
// algorithm, so tables render in a stable order. StdDev is zero for
// groups with fewer than two runs.
func Summarize(results []RunResult) []Summary {
	type key struct {
		instance string
		algo     tsp.Algorithm
	}
	groups := make(map[key][]RunResult)
	var res RunResult
	for _, res = range results {
		k := key{instance: res.Instance, algo: res.Algorithm}
		groups[k] = append(groups[k], res)
	}

	summaries := make([]Summary, 0, len(groups))
	var members []RunResult
	for _, members = range groups {
		lengths := make([]float64, len(members))
		minLen := members[0].Length
		maxLen := members[0].Length
		var elapsed time.Duration
		var i int
		for i = range members {
			lengths[i] = members[i].Length
			if members[i].Length < minLen {
				minLen = members[i].Length
			}
			if members[i].Length > maxLen {
				maxLen = members[i].Length
			}
			elapsed += members[i].Elapsed
		}

		stddev := 0.0
		if len(lengths) > 1 {
			stddev = stat.StdDev(lengths, nil)
		}
		summaries = append(summaries, Summary{
			Instance:    members[0].Instance,
			Algorithm:   members[0].Algorithm,
			Runs:        len(members),
			MeanLength:  stat.Mean(lengths, nil),
			StdDev:      stddev,
			MinLength:   minLen,
			MaxLength:   maxLen,
			MeanElapsed: elapsed / time.Duration(len(members)),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Instance != summaries[j].Instance {
			return summaries[i].Instance < summaries[j].Instance
		}
		return summaries[i].Algorithm < summaries[j].Algorithm
	})

	return summaries
}

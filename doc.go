// Package tourlab is a toolkit for the Euclidean Traveling Salesman
// Problem: three interchangeable solver engines over one rounded-integer
// distance model, plus the file formats, batch tooling and charts that
// surround them.
//
// 🚀 What is tourlab?
//
//	A deterministic, reproducibility-first TSP suite that brings together:
//		• Exact search: time-bounded exhaustive enumeration, anytime best-so-far
//		• Approximation: MST-based 2-approximation (Prim + preorder walk)
//		• Local search: seeded genetic algorithm with elitism and stagnation stop
//		• TSPLIB I/O: EUC_2D instance parsing and two-line solution files
//		• Batch runs: YAML-configured matrices, worker pool, SQLite archive
//		• Charts: tour and convergence plots as standalone ECharts HTML
//
// ✨ Why choose tourlab?
//
//   - Same distances everywhere – every engine scores with the identical
//     rounded Euclidean metric, so lengths are comparable across engines
//   - Reproducible – explicit seeds, engine-owned RNGs, no global state
//   - Anytime – cutoffs degrade answers gracefully, never into errors
//
// Everything is organized under five packages:
//
//	tsp/         - City/Options/Result types and the three solver engines
//	tsplib/      - instance parsing and solution files
//	bench/       - batch runner, run archive, statistical summaries
//	viz/         - tour and convergence charts
//	cmd/tourlab/ - the command line front end
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    4───3
//
//	four cities on a square; the optimal tour walks the perimeter.
//
// Dive into the tsp package docs for the engine contracts and into
// cmd/tourlab for the CLI surface.
//
//	go get github.com/tourlab/tourlab
package tourlab

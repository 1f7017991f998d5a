// Package tsp provides Travelling Salesman Problem solvers over 2-D city
// coordinates.
//
// Three interchangeable strategies sit behind one dispatcher:
//
//   - BruteForce - exhaustive lexicographic search under a wall-clock budget.
//
//   - Complexity: O((n-1)!) worst case; anytime (returns best-so-far on timeout).
//
//   - MSTApprox - minimum-spanning-tree 2-approximation (heap-grown Prim +
//     preorder walk with shortcutting).
//
//   - Complexity: O(n² log n) time, O(n²) memory.
//
//   - Genetic - seeded evolutionary search with roulette selection, segment
//     crossover, swap mutation and elitism. Anytime; terminates on the
//     wall-clock budget or after a run of stagnant generations.
//
// All strategies share one distance model: Euclidean distance rounded to the
// nearest integer. A tour is an open permutation of city IDs; the closing
// edge back to the first city is implicit and always included in reported
// lengths.
//
// Use Solve with Options.Algo to dispatch, or call SolveBruteForce,
// SolveMSTApprox and SolveGenetic directly; inputs are validated either way.
package tsp

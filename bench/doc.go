// Package bench runs solver matrices in batch: every configured
// instance x algorithm x seed combination, each run fully isolated with
// its own engine state, executed under a bounded worker pool.
//
// A YAML file configures the matrix (see Config). Solutions land in the
// output directory under the conventional tsplib filenames, and runs are
// optionally archived to a SQLite database for later comparison. Summarize
// aggregates finished runs per instance and algorithm.
package bench

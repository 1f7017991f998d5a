// Package tsplib reads and writes the on-disk formats around the solver:
// TSPLIB-style instance files (the EUC_2D node-coordinate subset) and the
// two-line solution files produced by the tooling.
//
// # File formats
//
// An instance file is a header of "KEY : VALUE" lines (NAME, COMMENT,
// TYPE, DIMENSION, EDGE_WEIGHT_TYPE) followed by NODE_COORD_SECTION with
// one "id x y" row per city, optionally terminated by an EOF line. Only
// TYPE: TSP with EDGE_WEIGHT_TYPE: EUC_2D is accepted; rounding of
// distances is the solver's concern, not the parser's.
//
// A solution file is two lines: the tour length formatted with two
// decimals, then the visiting order as comma-and-space separated city IDs.
//
// # Errors
//
// All structural problems wrap ErrBadFormat, so callers match one sentinel
// with errors.Is regardless of which rule was violated.
package tsplib

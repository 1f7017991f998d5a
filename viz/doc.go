// Package viz renders solver output as standalone ECharts HTML: the tour
// polyline over the city scatter, and the per-generation convergence of
// the genetic engine. Charts are returned unrendered so callers pick the
// destination (file, HTTP response, buffer).
package viz

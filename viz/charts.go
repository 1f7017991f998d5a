package viz

import (
	"fmt"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/tourlab/tourlab/tsp"
)

// TourChart plots cities as a scatter with the closed tour drawn through
// them. The tour must be a valid permutation of the cities' IDs.
func TourChart(name string, cities []tsp.City, tour []int, length float64) (*charts.Line, error) {
	if err := tsp.ValidateTour(cities, tour); err != nil {
		return nil, err
	}

	byID := make(map[int]tsp.City, len(cities))
	var c tsp.City
	for _, c = range cities {
		byID[c.ID] = c
	}

	// Polyline through the cities in visiting order, closed back to the
	// start; a parallel scatter keeps the city dots visible on top.
	path := make([]opts.LineData, 0, len(tour)+1)
	dots := make([]opts.ScatterData, 0, len(cities))
	var id int
	for _, id = range tour {
		c = byID[id]
		path = append(path, opts.LineData{Value: []interface{}{c.X, c.Y}})
		dots = append(dots, opts.ScatterData{Value: []interface{}{c.X, c.Y}})
	}
	if len(tour) > 1 {
		c = byID[tour[0]]
		path = append(path, opts.LineData{Value: []interface{}{c.X, c.Y}})
	}

	minX, maxX, minY, maxY := bounds(cities)
	padX := (maxX - minX) * 0.05
	if padX == 0 {
		padX = 1.0
	}
	padY := (maxY - minY) * 0.05
	if padY == 0 {
		padY = 1.0
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Tour " + name, Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Tour " + name, Subtitle: fmt.Sprintf("cities=%d length=%.2f", len(cities), length)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: minX - padX, Max: maxX + padX, Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: minY - padY, Max: maxY + padY, Name: "Y", NameLocation: "middle", NameGap: 30}),
	)
	line.AddSeries("tour", path,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
	)

	scatter := charts.NewScatter()
	scatter.AddSeries("cities", dots, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}))
	line.Overlap(scatter)

	return line, nil
}

// ConvergenceChart plots the running best length per generation, as
// captured from the genetic engine's OnGeneration hook.
func ConvergenceChart(name string, best []float64) *charts.Line {
	gens := make([]string, len(best))
	points := make([]opts.LineData, len(best))
	var i int
	for i = range best {
		gens[i] = strconv.Itoa(i + 1)
		points[i] = opts.LineData{Value: best[i]}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Convergence " + name, Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: "Convergence " + name, Subtitle: fmt.Sprintf("generations=%d", len(best))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "generation"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "best length"}),
	)
	line.SetXAxis(gens).AddSeries("best", points,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)

	return line
}

// bounds returns the coordinate envelope of cities (zeros when empty).
func bounds(cities []tsp.City) (minX, maxX, minY, maxY float64) {
	if len(cities) == 0 {
		return 0, 0, 0, 0
	}

	minX, maxX = cities[0].X, cities[0].X
	minY, maxY = cities[0].Y, cities[0].Y
	var c tsp.City
	for _, c = range cities[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}

	return minX, maxX, minY, maxY
}

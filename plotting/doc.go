// Package plotting provides a thin helper for visualizing fitted model
// curves on a pluggable plotting surface.
//
// This package defines the surface abstraction (Figure, Axes) and the
// Plotter, which samples a model function over a domain and forwards one
// draw call per fitted-parameter vector to the surface. The surface
// implementations live in the engine subpackages:
//   - gonumengine: renders with gonum.org/v1/plot
//   - chartengine: renders with github.com/wcharczuk/go-chart/v2
//   - recordengine: records draw calls in memory, for inspection and export
//
// Common usage pattern:
//
//	plotter, err := plotting.New(gonumengine.NewFigure)
//	if err != nil {
//		// handle error
//	}
//
//	figure, err := plotter.PlotFitting(data, fitfunction.Linear, "My Fit",
//		[][]float64{{1, 1}, {3, 2}},
//		plotting.WithXMin(-10),
//	)
//	if err != nil {
//		// handle error
//	}
//
//	err = figure.Save("fit.png")
//
// The parameter argument accepts a single vector ([]float64), several
// vectors ([][]float64), or named vectors (map[string][]float64); the label
// of each curve is either a formatted numeric representation of the vector
// or the name it is mapped under.
package plotting

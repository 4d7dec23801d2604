// Package plotspy provides test doubles (spies) for the plotting surface.
//
// This package contains spy implementations of the plotting.Figure and
// plotting.Axes interfaces:
//   - FigureSpy: hands out a single AxesSpy and records Save calls
//   - AxesSpy: captures Plot, Legend, title, axis-label and grid calls
//
// It also provides assertion helpers to compare captured draw calls against
// expected series within a relative epsilon.
//
// These test doubles enable comprehensive testing of the plotting helper
// without requiring an actual rendering backend.
package plotspy

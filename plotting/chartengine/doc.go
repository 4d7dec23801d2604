// Package chartengine implements the plotting surface on top of
// github.com/wcharczuk/go-chart/v2.
//
// Drawing calls accumulate chart series in memory; the chart is only built
// and rendered when Save is called. The first error recorded by a drawing
// call is returned from Save, mirroring the plotting.Axes contract.
package chartengine

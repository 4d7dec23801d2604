package chartengine

import (
	"fmt"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/OhadNir9/eddington/plotting"
)

const (
	defaultWidth  = 1024
	defaultHeight = 768
)

// Figure implements plotting.Figure for go-chart.
type Figure struct {
	axes     *axes
	firstErr error
}

// New creates a new go-chart backed Figure.
func New() *Figure {
	return &Figure{}
}

// NewFigure is a plotting.FigureFactory for go-chart backed figures.
func NewFigure() plotting.Figure {
	return New()
}

// AddSubplot returns the axes of the figure. go-chart draws one chart per
// figure, so every call returns the same axes.
func (f *Figure) AddSubplot() plotting.Axes {
	if f.axes == nil {
		f.axes = &axes{figure: f}
	}

	return f.axes
}

// Save builds the chart from the accumulated drawing calls and renders it
// as PNG to the given path.
// It returns the first error recorded by a preceding drawing call.
func (f *Figure) Save(path string) error {
	if f.firstErr != nil {
		return f.firstErr
	}

	if f.axes == nil {
		return fmt.Errorf("figure has no axes, nothing to render")
	}

	graph := f.axes.buildChart()

	file, createErr := os.Create(path)
	if createErr != nil {
		return createErr
	}
	defer file.Close() //nolint:errcheck

	return graph.Render(chart.PNG, file)
}

func (f *Figure) recordError(err error) {
	if f.firstErr == nil {
		f.firstErr = err
	}
}

// axes implements plotting.Axes by accumulating chart state until Save.
type axes struct {
	figure *Figure

	title  string
	xLabel string
	yLabel string
	series []chart.Series
	legend bool
	grid   bool
}

func (a *axes) Plot(x, y []float64, label plotting.SeriesLabelString) {
	if len(x) != len(y) {
		a.figure.recordError(fmt.Errorf("mismatched series lengths: %d x values, %d y values", len(x), len(y)))
		return
	}

	a.series = append(a.series, chart.ContinuousSeries{
		Name:    label,
		XValues: x,
		YValues: y,
	})
}

func (a *axes) Legend() {
	a.legend = true
}

func (a *axes) SetTitle(title string) {
	a.title = title
}

func (a *axes) SetXLabel(label string) {
	a.xLabel = label
}

func (a *axes) SetYLabel(label string) {
	a.yLabel = label
}

func (a *axes) Grid(on bool) {
	a.grid = on
}

func (a *axes) buildChart() chart.Chart {
	graph := chart.Chart{
		Title:  a.title,
		Width:  defaultWidth,
		Height: defaultHeight,
		XAxis: chart.XAxis{
			Name: a.xLabel,
		},
		YAxis: chart.YAxis{
			Name: a.yLabel,
		},
		Series: a.series,
	}

	if a.grid {
		gridStyle := chart.Style{
			StrokeColor: chart.ColorLightGray,
			StrokeWidth: 1.0,
		}
		graph.XAxis.GridMajorStyle = gridStyle
		graph.YAxis.GridMajorStyle = gridStyle
	}

	if a.legend {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}

	return graph
}

// Ensure the engine satisfies the plotting surface.
var _ plotting.Figure = (*Figure)(nil)
var _ plotting.Axes = (*axes)(nil)

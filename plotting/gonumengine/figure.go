package gonumengine

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/OhadNir9/eddington/plotting"
)

const (
	defaultWidth  = 6 * vg.Inch
	defaultHeight = 4 * vg.Inch
)

// Figure implements plotting.Figure for gonum.org/v1/plot.
type Figure struct {
	plot     *plot.Plot
	axes     *axes
	firstErr error
}

// New creates a new gonum/plot backed Figure.
func New() *Figure {
	return &Figure{
		plot: plot.New(),
	}
}

// NewFigure is a plotting.FigureFactory for gonum/plot backed figures.
func NewFigure() plotting.Figure {
	return New()
}

// AddSubplot returns the axes of the figure. gonum/plot draws one plot per
// figure, so every call returns the same axes.
func (f *Figure) AddSubplot() plotting.Axes {
	if f.axes == nil {
		f.axes = &axes{figure: f}
	}

	return f.axes
}

// Save renders the figure as PNG to the given path.
// It returns the first error recorded by a preceding drawing call.
func (f *Figure) Save(path string) error {
	if f.firstErr != nil {
		return f.firstErr
	}

	return f.plot.Save(defaultWidth, defaultHeight, path)
}

func (f *Figure) recordError(err error) {
	if f.firstErr == nil {
		f.firstErr = err
	}
}

// axes implements plotting.Axes on the figure's single plot.
type axes struct {
	figure *Figure

	// pending legend entries, committed when Legend is called
	pendingLabels []plotting.SeriesLabelString
	pendingLines  []*plotter.Line
}

// Plot draws one curve through the given points. The legend entry is kept
// pending until Legend commits it, since gonum/plot renders every legend
// entry it holds.
func (a *axes) Plot(x, y []float64, label plotting.SeriesLabelString) {
	if len(x) != len(y) {
		a.figure.recordError(fmt.Errorf("mismatched series lengths: %d x values, %d y values", len(x), len(y)))
		return
	}

	points := make(plotter.XYs, len(x))
	for i := range x {
		points[i].X = x[i]
		points[i].Y = y[i]
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		a.figure.recordError(err)
		return
	}

	a.figure.plot.Add(line)
	a.pendingLabels = append(a.pendingLabels, label)
	a.pendingLines = append(a.pendingLines, line)
}

// Legend commits the legend entries of all previously drawn curves.
func (a *axes) Legend() {
	for i, label := range a.pendingLabels {
		a.figure.plot.Legend.Add(label, a.pendingLines[i])
	}

	a.pendingLabels = a.pendingLabels[:0]
	a.pendingLines = a.pendingLines[:0]
}

func (a *axes) SetTitle(title string) {
	a.figure.plot.Title.Text = title
}

func (a *axes) SetXLabel(label string) {
	a.figure.plot.X.Label.Text = label
}

func (a *axes) SetYLabel(label string) {
	a.figure.plot.Y.Label.Text = label
}

// Grid adds a background grid. Grids are off by default and cannot be
// removed from a gonum plot once added, so Grid(false) is a no-op.
func (a *axes) Grid(on bool) {
	if on {
		a.figure.plot.Add(plotter.NewGrid())
	}
}

// Ensure the engine satisfies the plotting surface.
var _ plotting.Figure = (*Figure)(nil)
var _ plotting.Axes = (*axes)(nil)

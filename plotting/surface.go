package plotting

// SeriesLabelString is a type alias for string, representing the legend label of a drawn curve.
type SeriesLabelString = string

// Figure is the plotting surface the Plotter draws on.
//
// Implementations wrap a concrete rendering backend; they are expected to
// defer backend errors until Save so that the drawing methods mirror the
// fire-and-forget surface of typical plotting libraries.
type Figure interface {
	// AddSubplot returns the axes of the figure, creating them on first call.
	AddSubplot() Axes

	// Save renders the figure to the given path. It returns the first error
	// recorded by any preceding drawing call.
	Save(path string) error
}

// Axes is the drawing surface of a single subplot.
type Axes interface {
	// Plot draws one curve through the given points with the given legend label.
	Plot(x, y []float64, label SeriesLabelString)

	// Legend draws the legend box from the labels of previously drawn curves.
	Legend()

	SetTitle(title string)
	SetXLabel(label string)
	SetYLabel(label string)
	Grid(on bool)
}

// FigureFactory creates a fresh Figure for each plotting operation.
// Engine subpackages provide factories for real rendering backends; tests
// substitute a factory returning a spy.
type FigureFactory func() Figure

package plotting

// Option defines a functional option for configuring a Plotter.
type Option func(*Plotter) error

// WithLogger sets the logger for the Plotter.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: per-series sampling details (development use)
// Info level: series counts and durations (production-safe)
// Error level: failures that cause the plotting operation to fail.
func WithLogger(logger Logger) Option {
	return func(p *Plotter) error {
		p.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Plotter.
// The metrics collector will receive operational metrics including plot
// durations, series counts, and failed operations.
func WithMetrics(collector MetricsCollector) Option {
	return func(p *Plotter) error {
		p.metricsCollector = collector
		return nil
	}
}

// plotConfig holds the per-operation settings of PlotFitting.
// The zero value means "derive everything from the dataset".
type plotConfig struct {
	xMin      float64
	hasXMin   bool
	xMax      float64
	hasXMax   bool
	step      float64
	hasStep   bool
	legend    bool
	hasLegend bool
	xLabel    string
	hasXLabel bool
	yLabel    string
	hasYLabel bool
	grid      bool
	hasGrid   bool
}

// PlotOption defines a functional option for a single PlotFitting operation.
type PlotOption func(*plotConfig) error

// WithXMin sets the lower bound of the sampled domain.
// The default is the lowest x value of the dataset minus a tenth of the x range.
func WithXMin(xMin float64) PlotOption {
	return func(cfg *plotConfig) error {
		cfg.xMin = xMin
		cfg.hasXMin = true

		return nil
	}
}

// WithXMax sets the upper bound of the sampled domain.
// The default is the highest x value of the dataset plus a tenth of the x range.
func WithXMax(xMax float64) PlotOption {
	return func(cfg *plotConfig) error {
		cfg.xMax = xMax
		cfg.hasXMax = true

		return nil
	}
}

// WithStep sets the distance between sample points. Sampling remains
// stop-exclusive: points are xmin, xmin+step, ... up to but not including xmax.
// The default is a step spanning the domain with 1000 points.
func WithStep(step float64) PlotOption {
	return func(cfg *plotConfig) error {
		if step <= 0 {
			return ErrInvalidStep
		}

		cfg.step = step
		cfg.hasStep = true

		return nil
	}
}

// WithLegend overrides the automatic legend behavior. By default the legend
// is drawn exactly when more than one curve is plotted; WithLegend(true)
// forces it for a single curve and WithLegend(false) suppresses it entirely.
func WithLegend(legend bool) PlotOption {
	return func(cfg *plotConfig) error {
		cfg.legend = legend
		cfg.hasLegend = true

		return nil
	}
}

// WithXLabel overrides the x axis label. The default is the dataset's x column name.
func WithXLabel(label string) PlotOption {
	return func(cfg *plotConfig) error {
		cfg.xLabel = label
		cfg.hasXLabel = true

		return nil
	}
}

// WithYLabel overrides the y axis label. The default is the dataset's y column name.
func WithYLabel(label string) PlotOption {
	return func(cfg *plotConfig) error {
		cfg.yLabel = label
		cfg.hasYLabel = true

		return nil
	}
}

// WithGrid toggles the background grid of the axes.
func WithGrid(grid bool) PlotOption {
	return func(cfg *plotConfig) error {
		cfg.grid = grid
		cfg.hasGrid = true

		return nil
	}
}

package plotting

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/OhadNir9/eddington/fitdata"
	"github.com/OhadNir9/eddington/fitfunction"
)

// Plotter draws fitted model curves on figures created by its FigureFactory.
// It is a thin adapter: it samples the model function over a domain derived
// from the dataset and forwards one draw call per parameter vector to the
// plotting surface, with customizable logging and metrics.
type Plotter struct {
	newFigure        FigureFactory
	logger           Logger
	metricsCollector MetricsCollector
}

// New creates a Plotter drawing on figures produced by the given factory,
// with optional configuration.
func New(newFigure FigureFactory, options ...Option) (Plotter, error) {
	if newFigure == nil {
		return Plotter{}, ErrNilFigureFactory
	}

	plotter := Plotter{
		newFigure: newFigure,
	}

	for _, option := range options {
		if err := option(&plotter); err != nil {
			return Plotter{}, err
		}
	}

	return plotter, nil
}

// series is one curve to draw: a parameter vector and its legend label.
type series struct {
	label SeriesLabelString
	a     []float64
}

// PlotFitting draws the model function fn on a fresh figure, once per
// fitted-parameter vector, and returns the figure for saving.
//
// The parameter argument a accepts:
//   - []float64: a single vector, labeled with its formatted numeric repr
//   - [][]float64: several vectors, each labeled with its formatted numeric repr
//   - map[string][]float64: named vectors in sorted-key order, labeled by name
//
// Any other type fails with an error wrapping ErrUnsupportedParameters that
// names the offending value and its type.
//
// The sampled domain and the legend, title, axis-label and grid behavior are
// controlled with PlotOption values, falling back to the dataset's x range
// and column names.
func (p Plotter) PlotFitting(
	data fitdata.FittingData,
	fn fitfunction.FitFunction,
	titleName string,
	a any,
	options ...PlotOption,
) (Figure, error) {

	start := time.Now()

	cfg := plotConfig{}
	for _, option := range options {
		if err := option(&cfg); err != nil {
			return nil, err
		}
	}

	allSeries, resolveErr := resolveSeries(a)
	if resolveErr != nil {
		p.logError(logMsgResolveFailed, logAttrError, resolveErr.Error())
		p.incrementCounter(metricPlotErrors, map[string]string{metricLabelFunction: fn.Name()})

		return nil, resolveErr
	}

	xs, sampleErr := p.sampleDomain(data, cfg)
	if sampleErr != nil {
		return nil, sampleErr
	}

	figure := p.newFigure()
	axes := figure.AddSubplot()

	p.decorateAxes(axes, data, titleName, cfg)

	for _, s := range allSeries {
		ys, evaluateErr := fn.Evaluate(s.a, xs)
		if evaluateErr != nil {
			p.logError(logMsgEvaluateFailed, logAttrError, evaluateErr.Error(), logAttrFunction, fn.Name())
			p.incrementCounter(metricPlotErrors, map[string]string{metricLabelFunction: fn.Name()})

			return nil, evaluateErr
		}

		axes.Plot(xs, ys, s.label)
		p.logDebug(logMsgSeriesDrawn,
			logAttrFunction, fn.Name(),
			logAttrLabel, s.label,
			logAttrSampleCount, len(xs))
	}

	if p.legendWanted(cfg, len(allSeries)) {
		axes.Legend()
	}

	duration := time.Since(start)
	p.logOperation(
		logMsgPlotCompleted,
		logAttrDatasetID, data.ID().String(),
		logAttrFunction, fn.Name(),
		logAttrSeriesCount, len(allSeries),
		logAttrSampleCount, len(xs),
		logAttrDurationMS, p.durationToMilliseconds(duration))
	p.recordDuration(metricPlotDuration, duration, map[string]string{metricLabelFunction: fn.Name()})
	p.recordValue(metricPlotSeries, float64(len(allSeries)), map[string]string{metricLabelFunction: fn.Name()})

	return figure, nil
}

// resolveSeries normalizes the accepted parameter shapes into an ordered
// list of labeled vectors. Map input is ordered by sorted keys, since Go
// map iteration order is not stable.
func resolveSeries(a any) ([]series, error) {
	switch vectors := a.(type) {
	case []float64:
		return []series{{label: FormatParameters(vectors), a: vectors}}, nil

	case [][]float64:
		allSeries := make([]series, 0, len(vectors))
		for _, vector := range vectors {
			allSeries = append(allSeries, series{label: FormatParameters(vector), a: vector})
		}

		return allSeries, nil

	case map[string][]float64:
		names := make([]string, 0, len(vectors))
		for name := range vectors {
			names = append(names, name)
		}
		slices.Sort(names)

		allSeries := make([]series, 0, len(vectors))
		for _, name := range names {
			allSeries = append(allSeries, series{label: name, a: vectors[name]})
		}

		return allSeries, nil

	default:
		return nil, fmt.Errorf("%v has unmatching type %T: %w", a, a, ErrUnsupportedParameters)
	}
}

// sampleDomain builds the evenly spaced x values the curves are drawn through.
//
// Without an explicit step the domain is split into exactly
// defaultSamplePoints points; with one, points are laid out stop-exclusively
// from xmin in step increments.
func (p Plotter) sampleDomain(data fitdata.FittingData, cfg plotConfig) ([]float64, error) {
	if data.Length() == 0 {
		return nil, fitdata.ErrEmptyData
	}

	xMin, xMax := p.resolveBoundaries(data, cfg)
	if xMax <= xMin {
		return nil, fmt.Errorf("%w: [%g, %g)", ErrEmptyDomain, xMin, xMax)
	}

	step := (xMax - xMin) / defaultSamplePoints
	sampleCount := defaultSamplePoints
	if cfg.hasStep {
		step = cfg.step
		sampleCount = int(math.Ceil((xMax - xMin) / step))
	}

	xs := make([]float64, sampleCount)
	for i := range xs {
		xs[i] = xMin + float64(i)*step
	}

	return xs, nil
}

func (p Plotter) resolveBoundaries(data fitdata.FittingData, cfg plotConfig) (float64, float64) {
	dataMin := slices.Min(data.X())
	dataMax := slices.Max(data.X())
	gap := (dataMax - dataMin) * domainGapFraction

	xMin := dataMin - gap
	if cfg.hasXMin {
		xMin = cfg.xMin
	}

	xMax := dataMax + gap
	if cfg.hasXMax {
		xMax = cfg.xMax
	}

	return xMin, xMax
}

func (p Plotter) decorateAxes(axes Axes, data fitdata.FittingData, titleName string, cfg plotConfig) {
	axes.SetTitle(titleName)

	xLabel := data.XColumn()
	if cfg.hasXLabel {
		xLabel = cfg.xLabel
	}
	axes.SetXLabel(xLabel)

	yLabel := data.YColumn()
	if cfg.hasYLabel {
		yLabel = cfg.yLabel
	}
	axes.SetYLabel(yLabel)

	if cfg.hasGrid {
		axes.Grid(cfg.grid)
	}
}

// legendWanted decides whether the legend box is drawn: an explicit
// WithLegend wins, otherwise it is drawn exactly when multiple curves are present.
func (p Plotter) legendWanted(cfg plotConfig, seriesCount int) bool {
	if cfg.hasLegend {
		return cfg.legend
	}

	return seriesCount > 1
}

func (p Plotter) logDebug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p Plotter) logOperation(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p Plotter) logError(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Error(msg, args...)
	}
}

func (p Plotter) recordDuration(metric string, duration time.Duration, labels map[string]string) {
	if p.metricsCollector != nil {
		p.metricsCollector.RecordDuration(metric, duration, labels)
	}
}

func (p Plotter) recordValue(metric string, value float64, labels map[string]string) {
	if p.metricsCollector != nil {
		p.metricsCollector.RecordValue(metric, value, labels)
	}
}

func (p Plotter) incrementCounter(metric string, labels map[string]string) {
	if p.metricsCollector != nil {
		p.metricsCollector.IncrementCounter(metric, labels)
	}
}

func (p Plotter) durationToMilliseconds(duration time.Duration) float64 {
	return float64(duration.Nanoseconds()) / 1e6
}

package plotting

import (
	"errors"
)

var ErrNilFigureFactory = errors.New("nil figure factory supplied")
var ErrUnsupportedParameters = errors.New("can accept only []float64, [][]float64 and map[string][]float64")
var ErrInvalidStep = errors.New("step must be positive")
var ErrEmptyDomain = errors.New("plot domain is empty, xmin must be lower than xmax")

const (
	// defaultSamplePoints is the number of evenly spaced sample points used
	// when no explicit step is configured.
	defaultSamplePoints = 1000

	// domainGapFraction widens the default domain beyond the measured x range
	// by this fraction of the range on each side.
	domainGapFraction = 0.1

	logMsgPlotCompleted  = "plot fitting completed"
	logMsgSeriesDrawn    = "series drawn"
	logMsgEvaluateFailed = "model function evaluation failed"
	logMsgResolveFailed  = "failed to resolve parameter vectors"
	logAttrError         = "error"
	logAttrLabel         = "label"
	logAttrDatasetID     = "dataset_id"
	logAttrFunction      = "function"
	logAttrSeriesCount   = "series_count"
	logAttrSampleCount   = "sample_count"
	logAttrDurationMS    = "duration_ms"
	metricPlotDuration   = "plot_fitting_duration"
	metricPlotSeries     = "plot_fitting_series"
	metricPlotErrors     = "plot_fitting_errors"
	metricLabelFunction  = "function"
)

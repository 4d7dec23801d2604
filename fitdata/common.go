package fitdata

import (
	"errors"
)

var ErrEmptyData = errors.New("fitting data must contain at least one measurement")
var ErrMismatchedColumnLengths = errors.New("fitting data columns differ in length")
var ErrInvalidMeasurementCount = errors.New("measurement count must be at least 1")
var ErrInvalidXRange = errors.New("x range minimum must be lower than maximum")
var ErrNegativeSigma = errors.New("sigma must not be negative")

const (
	defaultXColumnName  = "x"
	defaultYColumnName  = "y"
	defaultMeasurements = 20
	defaultMinX         = 0
	defaultMaxX         = 20
	defaultXSigma       = 1
	defaultYSigma       = 3
	defaultMinCoeff     = -100
	defaultMaxCoeff     = 100
)

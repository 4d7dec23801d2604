package fitdata

import (
	"math"
	"math/rand/v2"

	"github.com/OhadNir9/eddington/fitfunction"
)

type randomConfig struct {
	xColumn      string
	yColumn      string
	x            []float64
	a            []float64
	measurements int
	minX         float64
	maxX         float64
	xSigma       float64
	ySigma       float64
	seed         uint64
	seeded       bool
}

// RandomOption defines a functional option for configuring Random.
type RandomOption func(*randomConfig) error

// WithXValues uses the given x values instead of drawing them uniformly.
// It overrides the measurement count and the x range.
func WithXValues(x []float64) RandomOption {
	return func(cfg *randomConfig) error {
		if len(x) == 0 {
			return ErrEmptyData
		}

		cfg.x = x

		return nil
	}
}

// WithParameters uses the given parameter vector instead of drawing one at random.
// Its length must match the model function's parameter count.
func WithParameters(a []float64) RandomOption {
	return func(cfg *randomConfig) error {
		cfg.a = a
		return nil
	}
}

// WithMeasurements sets the number of generated measurements.
func WithMeasurements(measurements int) RandomOption {
	return func(cfg *randomConfig) error {
		if measurements < 1 {
			return ErrInvalidMeasurementCount
		}

		cfg.measurements = measurements

		return nil
	}
}

// WithXRange sets the half-open range the x values are drawn from.
func WithXRange(minX, maxX float64) RandomOption {
	return func(cfg *randomConfig) error {
		if minX >= maxX {
			return ErrInvalidXRange
		}

		cfg.minX = minX
		cfg.maxX = maxX

		return nil
	}
}

// WithXSigma sets the scale of the x uncertainties.
func WithXSigma(xSigma float64) RandomOption {
	return func(cfg *randomConfig) error {
		if xSigma < 0 {
			return ErrNegativeSigma
		}

		cfg.xSigma = xSigma

		return nil
	}
}

// WithYSigma sets the scale of the y uncertainties.
func WithYSigma(ySigma float64) RandomOption {
	return func(cfg *randomConfig) error {
		if ySigma < 0 {
			return ErrNegativeSigma
		}

		cfg.ySigma = ySigma

		return nil
	}
}

// WithSeed makes the generated dataset reproducible.
func WithSeed(seed uint64) RandomOption {
	return func(cfg *randomConfig) error {
		cfg.seed = seed
		cfg.seeded = true

		return nil
	}
}

// WithColumnNames sets the column names used as default axis labels when plotting.
func WithColumnNames(xColumn, yColumn string) RandomOption {
	return func(cfg *randomConfig) error {
		cfg.xColumn = xColumn
		cfg.yColumn = yColumn

		return nil
	}
}

// Random is a factory method for FittingData generating a synthetic dataset
// for the given model function.
//
// The x values are drawn uniformly from the configured range unless supplied
// with WithXValues. The parameter vector is drawn uniformly from
// [-100, 100) unless supplied with WithParameters. The uncertainties are the
// absolute values of normal draws scaled by the configured sigmas, and the
// y values are the model values perturbed by their uncertainty.
func Random(fn fitfunction.FitFunction, options ...RandomOption) (FittingData, error) {
	cfg := randomConfig{
		xColumn:      defaultXColumnName,
		yColumn:      defaultYColumnName,
		measurements: defaultMeasurements,
		minX:         defaultMinX,
		maxX:         defaultMaxX,
		xSigma:       defaultXSigma,
		ySigma:       defaultYSigma,
	}

	for _, option := range options {
		if err := option(&cfg); err != nil {
			return FittingData{}, err
		}
	}

	rng := cfg.newRNG()

	x := cfg.x
	if x == nil {
		x = make([]float64, cfg.measurements)
		for i := range x {
			x[i] = cfg.minX + rng.Float64()*(cfg.maxX-cfg.minX)
		}
	}

	a := cfg.a
	if a == nil {
		a = make([]float64, fn.NumParameters())
		for i := range a {
			a[i] = defaultMinCoeff + rng.Float64()*(defaultMaxCoeff-defaultMinCoeff)
		}
	}

	modelValues, evaluateErr := fn.Evaluate(a, x)
	if evaluateErr != nil {
		return FittingData{}, evaluateErr
	}

	xErr := make([]float64, len(x))
	yErr := make([]float64, len(x))
	y := make([]float64, len(x))
	for i := range x {
		xErr[i] = math.Abs(rng.NormFloat64()) * cfg.xSigma
		yErr[i] = math.Abs(rng.NormFloat64()) * cfg.ySigma
		y[i] = modelValues[i] + rng.NormFloat64()*yErr[i]
	}

	return Build(cfg.xColumn, cfg.yColumn, x, xErr, y, yErr)
}

func (cfg randomConfig) newRNG() *rand.Rand {
	if cfg.seeded {
		return rand.New(rand.NewPCG(cfg.seed, cfg.seed))
	}

	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

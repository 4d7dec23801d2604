package fitdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OhadNir9/eddington/fitdata"
	"github.com/OhadNir9/eddington/fitfunction"
)

func Test_Random_OptionErrorCases(t *testing.T) {
	tests := []struct {
		name        string
		option      fitdata.RandomOption
		expectedErr error
	}{
		{
			name:        "empty x values",
			option:      fitdata.WithXValues(nil),
			expectedErr: fitdata.ErrEmptyData,
		},
		{
			name:        "zero measurements",
			option:      fitdata.WithMeasurements(0),
			expectedErr: fitdata.ErrInvalidMeasurementCount,
		},
		{
			name:        "inverted x range",
			option:      fitdata.WithXRange(10, 10),
			expectedErr: fitdata.ErrInvalidXRange,
		},
		{
			name:        "negative x sigma",
			option:      fitdata.WithXSigma(-1),
			expectedErr: fitdata.ErrNegativeSigma,
		},
		{
			name:        "negative y sigma",
			option:      fitdata.WithYSigma(-0.5),
			expectedErr: fitdata.ErrNegativeSigma,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fitdata.Random(fitfunction.Linear, tt.option)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func Test_Random_RejectsWrongParameterCount(t *testing.T) {
	_, err := fitdata.Random(fitfunction.Linear, fitdata.WithParameters([]float64{1, 2, 3}))

	assert.ErrorIs(t, err, fitfunction.ErrInvalidParameterCount)
}

func Test_Random_DefaultMeasurementCount(t *testing.T) {
	data, err := fitdata.Random(fitfunction.Linear)
	require.NoError(t, err)

	assert.Equal(t, 20, data.Length())
	assert.Len(t, data.XErr(), 20)
	assert.Len(t, data.Y(), 20)
	assert.Len(t, data.YErr(), 20)
}

func Test_Random_RespectsMeasurementsAndRange(t *testing.T) {
	data, err := fitdata.Random(
		fitfunction.Linear,
		fitdata.WithMeasurements(50),
		fitdata.WithXRange(-5, 5),
		fitdata.WithSeed(7),
	)
	require.NoError(t, err)

	assert.Equal(t, 50, data.Length())
	for _, xi := range data.X() {
		assert.GreaterOrEqual(t, xi, -5.0)
		assert.Less(t, xi, 5.0)
	}
}

func Test_Random_UsesSuppliedXValues(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	data, err := fitdata.Random(
		fitfunction.Linear,
		fitdata.WithXValues(x),
		fitdata.WithParameters([]float64{1, 2}),
		fitdata.WithSeed(42),
	)
	require.NoError(t, err)

	assert.Equal(t, x, data.X())
	assert.Equal(t, 5, data.Length())
}

func Test_Random_UncertaintiesAreNonNegative(t *testing.T) {
	data, err := fitdata.Random(fitfunction.Parabolic, fitdata.WithSeed(11))
	require.NoError(t, err)

	for i := range data.X() {
		assert.GreaterOrEqual(t, data.XErr()[i], 0.0)
		assert.GreaterOrEqual(t, data.YErr()[i], 0.0)
	}
}

func Test_Random_ZeroSigmasReproduceTheModelExactly(t *testing.T) {
	a := []float64{2, 3}
	x := []float64{0, 1, 2}

	data, err := fitdata.Random(
		fitfunction.Linear,
		fitdata.WithXValues(x),
		fitdata.WithParameters(a),
		fitdata.WithXSigma(0),
		fitdata.WithYSigma(0),
	)
	require.NoError(t, err)

	expectedY, err := fitfunction.Linear.Evaluate(a, x)
	require.NoError(t, err)

	for i := range x {
		assert.InDelta(t, expectedY[i], data.Y()[i], 1e-12)
		assert.Zero(t, data.XErr()[i])
		assert.Zero(t, data.YErr()[i])
	}
}

func Test_Random_SeedMakesDatasetsReproducible(t *testing.T) {
	first, err := fitdata.Random(fitfunction.Exponential, fitdata.WithSeed(1234))
	require.NoError(t, err)
	second, err := fitdata.Random(fitfunction.Exponential, fitdata.WithSeed(1234))
	require.NoError(t, err)

	assert.Equal(t, first.X(), second.X())
	assert.Equal(t, first.XErr(), second.XErr())
	assert.Equal(t, first.Y(), second.Y())
	assert.Equal(t, first.YErr(), second.YErr())
}

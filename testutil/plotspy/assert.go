package plotspy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ExpectedPlotCall describes one Plot call an axes spy is expected to have captured.
type ExpectedPlotCall struct {
	X     []float64
	Y     []float64
	Label string
}

// AssertPlotCalls verifies that the axes spy captured exactly the expected
// Plot calls, in order. The x and y values are compared within the given
// relative epsilon, the labels must match exactly.
func AssertPlotCalls(t testing.TB, axes *AxesSpy, expectedCalls []ExpectedPlotCall, epsilon float64) {
	t.Helper()

	records := axes.GetPlotRecords()
	require.Len(t, records, len(expectedCalls), "unexpected number of plot calls")

	for i, expected := range expectedCalls {
		assert.Equal(t, expected.Label, records[i].Label, "label of plot call %d", i)
		assertValuesInEpsilon(t, expected.X, records[i].X, epsilon, "x values of plot call %d", i)
		assertValuesInEpsilon(t, expected.Y, records[i].Y, epsilon, "y values of plot call %d", i)
	}
}

// AssertLegendCalledOnce verifies that the legend was drawn exactly once.
func AssertLegendCalledOnce(t testing.TB, axes *AxesSpy) {
	t.Helper()

	assert.Equal(t, 1, axes.LegendCalls(), "legend should have been drawn exactly once")
}

// AssertLegendNotCalled verifies that the legend was never drawn.
func AssertLegendNotCalled(t testing.TB, axes *AxesSpy) {
	t.Helper()

	assert.Zero(t, axes.LegendCalls(), "legend should not have been drawn")
}

func assertValuesInEpsilon(t testing.TB, expected, actual []float64, epsilon float64, msgAndArgs ...any) {
	t.Helper()

	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return
	}

	for i := range expected {
		// Relative comparison breaks down around zero, fall back to an
		// absolute delta there.
		if math.Abs(expected[i]) < epsilon {
			assert.InDelta(t, expected[i], actual[i], epsilon, msgAndArgs...)
			continue
		}

		assert.InEpsilon(t, expected[i], actual[i], epsilon, msgAndArgs...)
	}
}

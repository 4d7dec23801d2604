package chartengine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OhadNir9/eddington/fitdata"
	"github.com/OhadNir9/eddington/fitfunction"
	"github.com/OhadNir9/eddington/plotting"
	"github.com/OhadNir9/eddington/plotting/chartengine"
)

func Test_Figure_SavesPNG(t *testing.T) {
	figure := chartengine.New()
	axes := figure.AddSubplot()

	axes.SetTitle("Parabolic Fit")
	axes.SetXLabel("x")
	axes.SetYLabel("y")
	axes.Plot([]float64{0, 1, 2, 3}, []float64{1, 2, 5, 10}, "[a[0]=1.000, a[1]=0.000, a[2]=1.000]")
	axes.Legend()

	path := filepath.Join(t.TempDir(), "fit.png")
	require.NoError(t, figure.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func Test_Figure_AddSubplotReturnsSameAxes(t *testing.T) {
	figure := chartengine.New()

	assert.Same(t, figure.AddSubplot(), figure.AddSubplot())
}

func Test_Figure_MismatchedSeriesLengthsSurfaceOnSave(t *testing.T) {
	figure := chartengine.New()
	axes := figure.AddSubplot()

	axes.Plot([]float64{0, 1, 2}, []float64{1}, "broken")

	err := figure.Save(filepath.Join(t.TempDir(), "fit.png"))
	assert.ErrorContains(t, err, "mismatched series lengths")
}

func Test_Figure_SaveWithoutAxes(t *testing.T) {
	figure := chartengine.New()

	err := figure.Save(filepath.Join(t.TempDir(), "fit.png"))
	assert.ErrorContains(t, err, "no axes")
}

func Test_Plotter_EndToEndWithChartEngine(t *testing.T) {
	data, err := fitdata.Random(
		fitfunction.Parabolic,
		fitdata.WithParameters([]float64{1, 0, 1}),
		fitdata.WithSeed(3),
	)
	require.NoError(t, err)

	plotter, err := plotting.New(chartengine.NewFigure)
	require.NoError(t, err)

	figure, err := plotter.PlotFitting(data, fitfunction.Parabolic, "Parabolic Fit", map[string][]float64{
		"fitted":  {1, 0, 1},
		"control": {0, 1, 1},
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "fit.png")
	require.NoError(t, figure.Save(path))

	info, statErr := os.Stat(path)
	require.NoError(t, statErr)
	assert.Positive(t, info.Size())
}

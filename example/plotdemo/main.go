// Command plotdemo generates a random dataset for a model function and
// renders the fitted curves with both plotting engines.
//
// Usage:
//
//	go run ./example/plotdemo -function linear -out /tmp/plots
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/OhadNir9/eddington/fitdata"
	"github.com/OhadNir9/eddington/fitfunction"
	"github.com/OhadNir9/eddington/plotting"
	"github.com/OhadNir9/eddington/plotting/chartengine"
	"github.com/OhadNir9/eddington/plotting/gonumengine"
	"github.com/OhadNir9/eddington/plotting/oteladapters"
)

type config struct {
	functionName string
	outDir       string
	measurements int
	seed         uint64
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("plotdemo failed: %v", err)
	}
}

func run() error {
	cfg := parseFlags()

	fn, err := fitfunction.Get(cfg.functionName)
	if err != nil {
		return fmt.Errorf("unknown function %q (available: %v): %w", cfg.functionName, fitfunction.Names(), err)
	}

	if err = os.MkdirAll(cfg.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := fitdata.Random(fn,
		fitdata.WithMeasurements(cfg.measurements),
		fitdata.WithSeed(cfg.seed),
	)
	if err != nil {
		return fmt.Errorf("failed to generate random data: %w", err)
	}

	logger := oteladapters.NewSlogLogger("plotdemo")

	// Two slightly different parameter vectors so the legend kicks in.
	vectors := [][]float64{
		full(1, fn.NumParameters()),
		full(2, fn.NumParameters()),
	}
	named := map[string][]float64{
		"low":  vectors[0],
		"high": vectors[1],
	}

	renders := []struct {
		engineName string
		factory    plotting.FigureFactory
		a          any
	}{
		{engineName: "gonum", factory: gonumengine.NewFigure, a: vectors},
		{engineName: "chart", factory: chartengine.NewFigure, a: named},
	}

	for _, render := range renders {
		plotter, newErr := plotting.New(render.factory, plotting.WithLogger(logger))
		if newErr != nil {
			return newErr
		}

		figure, plotErr := plotter.PlotFitting(data, fn, "Fitting Of "+cfg.functionName, render.a)
		if plotErr != nil {
			return fmt.Errorf("plotting with %s engine failed: %w", render.engineName, plotErr)
		}

		path := filepath.Join(cfg.outDir, fmt.Sprintf("%s_%s_%s.png", cfg.functionName, render.engineName, uuid.NewString()[:8]))
		if saveErr := figure.Save(path); saveErr != nil {
			return fmt.Errorf("saving %s figure failed: %w", render.engineName, saveErr)
		}

		log.Printf("wrote %s", path)
	}

	return nil
}

func parseFlags() config {
	cfg := config{}

	flag.StringVar(&cfg.functionName, "function", "linear", "model function to plot")
	flag.StringVar(&cfg.outDir, "out", ".", "directory for the generated images")
	flag.IntVar(&cfg.measurements, "measurements", 20, "number of random measurements")
	flag.Uint64Var(&cfg.seed, "seed", 42, "seed for the random dataset")
	flag.Parse()

	return cfg
}

func full(value float64, length int) []float64 {
	result := make([]float64, length)
	for i := range result {
		result[i] = value
	}

	return result
}

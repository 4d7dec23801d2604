package plotspy

import (
	"sync"

	"github.com/OhadNir9/eddington/plotting"
)

// FigureSpy is a plotting.Figure implementation that captures surface calls
// for testing. It hands out a single AxesSpy, mirroring how a figure mock's
// add_subplot returns one axes object however often it is called.
type FigureSpy struct {
	axes            AxesSpy
	addSubplotCalls int
	saveCalls       []string
	saveErr         error
	mu              sync.Mutex
}

// NewFigureSpy creates a new FigureSpy instance.
func NewFigureSpy() *FigureSpy {
	return &FigureSpy{}
}

// Factory returns a plotting.FigureFactory handing out this spy, for
// injecting it into a Plotter.
func (s *FigureSpy) Factory() plotting.FigureFactory {
	return func() plotting.Figure {
		return s
	}
}

// AddSubplot implements the Figure interface for testing.
func (s *FigureSpy) AddSubplot() plotting.Axes {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addSubplotCalls++

	return &s.axes
}

// Save implements the Figure interface for testing. It records the path and
// returns the error configured with FailSaveWith, if any.
func (s *FigureSpy) Save(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saveCalls = append(s.saveCalls, path)

	return s.saveErr
}

// FailSaveWith makes all subsequent Save calls return the given error.
func (s *FigureSpy) FailSaveWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saveErr = err
}

// Axes returns the AxesSpy handed out by AddSubplot.
func (s *FigureSpy) Axes() *AxesSpy {
	return &s.axes
}

// AddSubplotCalls returns how often AddSubplot was called.
func (s *FigureSpy) AddSubplotCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addSubplotCalls
}

// GetSaveCalls returns a copy of all recorded Save paths.
func (s *FigureSpy) GetSaveCalls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.saveCalls...)
}

// Reset clears all recorded calls, including those of the axes.
func (s *FigureSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addSubplotCalls = 0
	s.saveCalls = s.saveCalls[:0]
	s.axes.Reset()
}

// Ensure FigureSpy implements plotting.Figure.
var _ plotting.Figure = (*FigureSpy)(nil)

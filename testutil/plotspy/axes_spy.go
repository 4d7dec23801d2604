package plotspy

import (
	"sync"

	"github.com/OhadNir9/eddington/plotting"
)

// SpyPlotRecord represents a recorded Plot call.
type SpyPlotRecord struct {
	X     []float64
	Y     []float64
	Label string
}

// AxesSpy is a plotting.Axes implementation that captures drawing calls for testing.
type AxesSpy struct {
	plotRecords []SpyPlotRecord
	legendCalls int
	titles      []string
	xLabels     []string
	yLabels     []string
	gridCalls   []bool
	mu          sync.Mutex
}

// Plot implements the Axes interface for testing.
func (s *AxesSpy) Plot(x, y []float64, label plotting.SeriesLabelString) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.plotRecords = append(s.plotRecords, SpyPlotRecord{
		X:     append([]float64(nil), x...),
		Y:     append([]float64(nil), y...),
		Label: label,
	})
}

// Legend implements the Axes interface for testing.
func (s *AxesSpy) Legend() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.legendCalls++
}

// SetTitle implements the Axes interface for testing.
func (s *AxesSpy) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.titles = append(s.titles, title)
}

// SetXLabel implements the Axes interface for testing.
func (s *AxesSpy) SetXLabel(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.xLabels = append(s.xLabels, label)
}

// SetYLabel implements the Axes interface for testing.
func (s *AxesSpy) SetYLabel(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.yLabels = append(s.yLabels, label)
}

// Grid implements the Axes interface for testing.
func (s *AxesSpy) Grid(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gridCalls = append(s.gridCalls, on)
}

// GetPlotRecords returns a copy of all recorded Plot calls.
func (s *AxesSpy) GetPlotRecords() []SpyPlotRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyPlotRecord(nil), s.plotRecords...)
}

// LegendCalls returns how often Legend was called.
func (s *AxesSpy) LegendCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.legendCalls
}

// GetTitles returns a copy of all recorded SetTitle calls.
func (s *AxesSpy) GetTitles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.titles...)
}

// GetXLabels returns a copy of all recorded SetXLabel calls.
func (s *AxesSpy) GetXLabels() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.xLabels...)
}

// GetYLabels returns a copy of all recorded SetYLabel calls.
func (s *AxesSpy) GetYLabels() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.yLabels...)
}

// GetGridCalls returns a copy of all recorded Grid calls.
func (s *AxesSpy) GetGridCalls() []bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]bool(nil), s.gridCalls...)
}

// Reset clears all recorded calls.
func (s *AxesSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.plotRecords = s.plotRecords[:0]
	s.legendCalls = 0
	s.titles = s.titles[:0]
	s.xLabels = s.xLabels[:0]
	s.yLabels = s.yLabels[:0]
	s.gridCalls = s.gridCalls[:0]
}

// Ensure AxesSpy implements plotting.Axes.
var _ plotting.Axes = (*AxesSpy)(nil)

package fitdata

import (
	"github.com/google/uuid"
)

// FittingData is a dataset with independent and dependent measurements used
// to derive parameter vectors, plus the uncertainty of each column.
//
// While it is built on plain float64 slices to stay agnostic of the client's
// numeric stack, it should only be constructed with the supplied factory
// methods Build and Random.
type FittingData struct {
	id      uuid.UUID
	xColumn string
	yColumn string
	x       []float64
	xErr    []float64
	y       []float64
	yErr    []float64
}

// Build is a factory method for FittingData.
//
// All four columns must share the same non-zero length.
// The column names are used as default axis labels when plotting.
func Build(xColumn, yColumn string, x, xErr, y, yErr []float64) (FittingData, error) {
	if len(x) == 0 {
		return FittingData{}, ErrEmptyData
	}

	if len(xErr) != len(x) || len(y) != len(x) || len(yErr) != len(x) {
		return FittingData{}, ErrMismatchedColumnLengths
	}

	if xColumn == "" {
		xColumn = defaultXColumnName
	}

	if yColumn == "" {
		yColumn = defaultYColumnName
	}

	return FittingData{
		id:      uuid.New(),
		xColumn: xColumn,
		yColumn: yColumn,
		x:       x,
		xErr:    xErr,
		y:       y,
		yErr:    yErr,
	}, nil
}

// ID returns the identity of this dataset, assigned at construction.
// It is used to correlate log records with the dataset they belong to.
func (fd FittingData) ID() uuid.UUID {
	return fd.id
}

func (fd FittingData) XColumn() string {
	return fd.xColumn
}

func (fd FittingData) YColumn() string {
	return fd.yColumn
}

func (fd FittingData) X() []float64 {
	return fd.x
}

func (fd FittingData) XErr() []float64 {
	return fd.xErr
}

func (fd FittingData) Y() []float64 {
	return fd.y
}

func (fd FittingData) YErr() []float64 {
	return fd.yErr
}

// Length returns the number of measurements in the dataset.
func (fd FittingData) Length() int {
	return len(fd.x)
}

package fitfunction

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// The builtin model functions. All of them are pre-registered in the
// default registry under their lowercase names.
var (
	Linear      = mustBuild("linear", 2, "a[0] + a[1] * x", linearValue, linearXDerivative, linearADerivative)
	Constant    = mustBuild("constant", 1, "a[0]", constantValue, constantXDerivative, constantADerivative)
	Parabolic   = mustBuild("parabolic", 3, "a[0] + a[1] * x + a[2] * x ^ 2", parabolicValue, parabolicXDerivative, parabolicADerivative)
	Hyperbolic  = mustBuild("hyperbolic", 3, "a[0] / (x + a[1]) + a[2]", hyperbolicValue, hyperbolicXDerivative, hyperbolicADerivative)
	Exponential = mustBuild("exponential", 3, "a[0] * exp(a[1] * x) + a[2]", exponentialValue, exponentialXDerivative, exponentialADerivative)
)

func mustBuild(
	name FunctionNameString,
	numParameters int,
	syntax string,
	value ValueFunc,
	xDerivative XDerivativeFunc,
	aDerivative ADerivativeFunc,
) FitFunction {

	fn, err := Build(name, numParameters, syntax, value, xDerivative, aDerivative)
	if err != nil {
		panic(err)
	}

	return fn
}

func linearValue(a, x []float64) []float64 {
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = a[0] + a[1]*xi
	}

	return y
}

func linearXDerivative(a, x []float64) []float64 {
	return full(a[1], len(x))
}

func linearADerivative(_, x []float64) *mat.Dense {
	return stack(full(1, len(x)), x)
}

func constantValue(a, x []float64) []float64 {
	return full(a[0], len(x))
}

func constantXDerivative(_, x []float64) []float64 {
	return full(0, len(x))
}

func constantADerivative(_, x []float64) *mat.Dense {
	return stack(full(1, len(x)))
}

func parabolicValue(a, x []float64) []float64 {
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = a[0] + a[1]*xi + a[2]*xi*xi
	}

	return y
}

func parabolicXDerivative(a, x []float64) []float64 {
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = a[1] + 2*a[2]*xi
	}

	return y
}

func parabolicADerivative(_, x []float64) *mat.Dense {
	squares := make([]float64, len(x))
	for i, xi := range x {
		squares[i] = xi * xi
	}

	return stack(full(1, len(x)), x, squares)
}

func hyperbolicValue(a, x []float64) []float64 {
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = a[0]/(xi+a[1]) + a[2]
	}

	return y
}

func hyperbolicXDerivative(a, x []float64) []float64 {
	y := make([]float64, len(x))
	for i, xi := range x {
		shifted := xi + a[1]
		y[i] = -a[0] / (shifted * shifted)
	}

	return y
}

func hyperbolicADerivative(a, x []float64) *mat.Dense {
	reciprocals := make([]float64, len(x))
	slopes := make([]float64, len(x))
	for i, xi := range x {
		shifted := xi + a[1]
		reciprocals[i] = 1 / shifted
		slopes[i] = -a[0] / (shifted * shifted)
	}

	return stack(reciprocals, slopes, full(1, len(x)))
}

func exponentialValue(a, x []float64) []float64 {
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = a[0]*math.Exp(a[1]*xi) + a[2]
	}

	return y
}

func exponentialXDerivative(a, x []float64) []float64 {
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = a[0] * a[1] * math.Exp(a[1]*xi)
	}

	return y
}

func exponentialADerivative(a, x []float64) *mat.Dense {
	exponentials := make([]float64, len(x))
	scaled := make([]float64, len(x))
	for i, xi := range x {
		exponentials[i] = math.Exp(a[1] * xi)
		scaled[i] = a[0] * xi * exponentials[i]
	}

	return stack(exponentials, scaled, full(1, len(x)))
}

func full(value float64, length int) []float64 {
	row := make([]float64, length)
	for i := range row {
		row[i] = value
	}

	return row
}

// stack builds a dense matrix with one row per given slice.
func stack(rows ...[]float64) *mat.Dense {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return &mat.Dense{}
	}

	data := make([]float64, 0, len(rows)*len(rows[0]))
	for _, row := range rows {
		data = append(data, row...)
	}

	return mat.NewDense(len(rows), len(rows[0]), data)
}

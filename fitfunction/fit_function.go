package fitfunction

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ValueFunc evaluates the model at every point of x with the parameter vector a.
type ValueFunc func(a, x []float64) []float64

// XDerivativeFunc evaluates the derivative of the model with respect to x
// at every point of x.
type XDerivativeFunc func(a, x []float64) []float64

// ADerivativeFunc evaluates the gradient of the model with respect to the
// parameter vector a. The result has one row per parameter and one column
// per point of x.
type ADerivativeFunc func(a, x []float64) *mat.Dense

// FitFunction is an immutable model function used to draw fitted curves.
//
// While it is evaluated with plain float64 slices to stay agnostic of the
// client's numeric stack, it should only be constructed with the supplied
// factory method Build.
type FitFunction struct {
	name          FunctionNameString
	numParameters int
	syntax        string
	value         ValueFunc
	xDerivative   XDerivativeFunc
	aDerivative   ADerivativeFunc
}

// Build is a factory method for FitFunction.
//
// The derivatives may be nil; evaluating a missing derivative returns
// ErrMissingXDerivative / ErrMissingADerivative.
// Returns an error if the name is empty, numParameters is not positive,
// or the value function is nil.
func Build(
	name FunctionNameString,
	numParameters int,
	syntax string,
	value ValueFunc,
	xDerivative XDerivativeFunc,
	aDerivative ADerivativeFunc,
) (FitFunction, error) {

	if name == "" {
		return FitFunction{}, ErrEmptyFunctionName
	}

	if numParameters < 1 {
		return FitFunction{}, fmt.Errorf("%w: %q declares %d parameters", ErrInvalidParameterCount, name, numParameters)
	}

	if value == nil {
		return FitFunction{}, ErrNilValueFunc
	}

	return FitFunction{
		name:          name,
		numParameters: numParameters,
		syntax:        syntax,
		value:         value,
		xDerivative:   xDerivative,
		aDerivative:   aDerivative,
	}, nil
}

func (f FitFunction) Name() FunctionNameString {
	return f.name
}

func (f FitFunction) NumParameters() int {
	return f.numParameters
}

// Syntax returns a human-readable formula of the model, e.g. "a[0] + a[1] * x".
func (f FitFunction) Syntax() string {
	return f.syntax
}

// Evaluate computes the model values for every point of x.
// Returns an error if the parameter vector length does not match NumParameters.
func (f FitFunction) Evaluate(a, x []float64) ([]float64, error) {
	if err := f.validateParameters(a); err != nil {
		return nil, err
	}

	return f.value(a, x), nil
}

// XDerivative computes the derivative of the model with respect to x
// for every point of x.
func (f FitFunction) XDerivative(a, x []float64) ([]float64, error) {
	if err := f.validateParameters(a); err != nil {
		return nil, err
	}

	if f.xDerivative == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingXDerivative, f.name)
	}

	return f.xDerivative(a, x), nil
}

// ADerivative computes the gradient of the model with respect to the parameter
// vector, with one row per parameter and one column per point of x.
func (f FitFunction) ADerivative(a, x []float64) (*mat.Dense, error) {
	if err := f.validateParameters(a); err != nil {
		return nil, err
	}

	if f.aDerivative == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingADerivative, f.name)
	}

	return f.aDerivative(a, x), nil
}

func (f FitFunction) validateParameters(a []float64) error {
	if len(a) != f.numParameters {
		return fmt.Errorf(
			"%w: %q expects %d parameters, got %d",
			ErrInvalidParameterCount, f.name, f.numParameters, len(a))
	}

	return nil
}

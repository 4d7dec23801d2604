package fitfunction

import (
	"errors"
)

var ErrEmptyFunctionName = errors.New("empty fit function name supplied")
var ErrNilValueFunc = errors.New("nil value function supplied")
var ErrInvalidParameterCount = errors.New("parameter vector length does not match the fit function")
var ErrMissingXDerivative = errors.New("fit function has no x derivative")
var ErrMissingADerivative = errors.New("fit function has no a derivative")
var ErrFunctionNotRegistered = errors.New("fit function is not registered")
var ErrFunctionAlreadyRegistered = errors.New("fit function is already registered")

// FunctionNameString is a type alias for string, representing the name of a FitFunction.
type FunctionNameString = string

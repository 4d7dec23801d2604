// Package fitfunction provides model functions for curve fitting and a
// registry to look them up by name.
//
// A FitFunction couples a vectorized model evaluation with its derivatives
// with respect to x and to the parameter vector. The parameter vector "a"
// holds the coefficients produced by a fit; its length must match the
// function's declared parameter count.
//
// The package ships the common model functions (linear, constant, parabolic,
// hyperbolic, exponential) pre-registered in the default registry.
//
// Common usage pattern:
//
//	fn, err := fitfunction.Get("linear")
//	if err != nil {
//		// handle error
//	}
//
//	y, err := fn.Evaluate([]float64{1, 2}, xs)
package fitfunction

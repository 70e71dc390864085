package univariate

import "gonum.org/v1/gonum/diff/fd"

// DefaultStep is the default finite difference step.
const DefaultStep = 1e-5

// Fprime estimates the first derivative of f at x with the central
// difference (f(x+h) - f(x-h)) / 2h. h is used as given; it should be small
// relative to the curvature scale of f but large enough to avoid
// cancellation. If h is zero the formula's own default step is used.
// Nothing is checked, so a function undefined near x gives Inf or NaN.
func Fprime(f func(float64) float64, x, h float64) float64 {
	return fd.Derivative(f, x, &fd.Settings{
		Formula: fd.Central,
		Step:    h,
	})
}

// Fsecond estimates the second derivative of f at x with the central
// difference (f(x+h) - 2f(x) + f(x-h)) / h². It is more sensitive to the
// choice of h than Fprime.
func Fsecond(f func(float64) float64, x, h float64) float64 {
	return fd.Derivative(f, x, &fd.Settings{
		Formula: fd.Central2nd,
		Step:    h,
	})
}

package rootfind

import (
	"gonum.org/v1/gonum/diff/fd"
)

type numericFn struct {
	f    func(float64) float64
	step float64
}

// NewNumericFunc wraps a raw function and approximates its derivatives by
// central finite differences. It satisfies TwiceDifferentiable, so Newton-
// Raphson and Halley can run on functions without analytic derivatives.
//
// step is the finite-difference step; pass 0 to use the formula defaults.
// Numeric derivatives trade accuracy for convenience: near-cancellation in
// f makes them noisy, and that noise feeds directly into the step computation
// of derivative-based solvers. Prefer analytic derivatives when available.
func NewNumericFunc(f func(float64) float64, step float64) TwiceDifferentiable {
	if step < 0 {
		step = 0
	}
	return numericFn{f: f, step: step}
}

func (w numericFn) Eval(x float64) float64 { return w.f(x) }

func (w numericFn) EvalD1(x float64) float64 {
	return fd.Derivative(w.f, x, &fd.Settings{
		Formula: fd.Central,
		Step:    w.step,
	})
}

func (w numericFn) EvalD2(x float64) float64 {
	return fd.Derivative(w.f, x, &fd.Settings{
		Formula: fd.Central2nd,
		Step:    w.step,
	})
}

package solver

import (
	"github.com/copyleftdev/FINNR/internal/rootfind"
	"github.com/copyleftdev/FINNR/internal/rootfind/convergence"
)

const opHalley = "solver.HalleyNaive"

// HalleyNaive finds a root by Halley's iteration
//
//	x' = x - 2*f(x)*f'(x) / (2*f'(x)^2 - f(x)*f''(x))
//
// starting from the guess x0. With a good guess, a simple root, and
// well-behaved derivatives, convergence order exceeds Newton-Raphson's.
//
// The naive caveats and the failure taxonomy are the same as
// NewtonRaphsonNaive, with the stability guard applied to the denominator
// 2*f'(x)^2 - f(x)*f''(x) instead of the bare derivative.
func HalleyNaive(f rootfind.TwiceDifferentiable, x0 float64, maxIter int, policy convergence.Policy) (float64, error) {
	step := func(x, fx float64) (float64, error) {
		d1 := f.EvalD1(x)
		d2 := f.EvalD2(x)

		num := 2 * fx * d1
		denom := 2*d1*d1 - fx*d2
		if derivativeTooSmall(x, num, denom) {
			return 0, rootfind.NewError(rootfind.ErrDerivativeTooSmall, opHalley, x, 0)
		}
		xNew := x - num/denom
		if !isFinite(xNew) {
			return 0, rootfind.NewError(rootfind.ErrNonFinite, opHalley, xNew, 0)
		}
		return xNew, nil
	}
	return iterate(f, step, x0, maxIter, policy, opHalley)
}

package solver

import (
	"github.com/copyleftdev/FINNR/internal/rootfind"
	"github.com/copyleftdev/FINNR/internal/rootfind/convergence"
)

const opNewton = "solver.NewtonRaphsonNaive"

// NewtonRaphsonNaive finds a root by the iteration x' = x - f(x)/f'(x),
// starting from the guess x0. Near a simple root convergence is quadratic.
//
// This is the naive form: no bracketing, no damping, no safeguard of any
// kind. A poor guess can diverge, cycle, or land far outside the region of
// interest. Callers who need guaranteed convergence should scan for a bracket
// and use Bisection or FalsePosition instead.
//
// Failure taxonomy: ErrDerivativeTooSmall when |f'(x)| falls under the
// relative stability guard (checked before the division, so a zero derivative
// never divides); ErrNonFinite when an iterate overflows or x0 is not finite;
// ErrMaxIterations at the cap.
func NewtonRaphsonNaive(f rootfind.Differentiable, x0 float64, maxIter int, policy convergence.Policy) (float64, error) {
	step := func(x, fx float64) (float64, error) {
		d := f.EvalD1(x)
		if derivativeTooSmall(x, fx, d) {
			return 0, rootfind.NewError(rootfind.ErrDerivativeTooSmall, opNewton, x, 0)
		}
		xNew := x - fx/d
		if !isFinite(xNew) {
			return 0, rootfind.NewError(rootfind.ErrNonFinite, opNewton, xNew, 0)
		}
		return xNew, nil
	}
	return iterate(f, step, x0, maxIter, policy, opNewton)
}

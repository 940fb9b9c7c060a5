package solver

import (
	"github.com/copyleftdev/FINNR/internal/rootfind"
	"github.com/copyleftdev/FINNR/internal/rootfind/convergence"
)

// stepFunc computes the next iterate from the current position and its
// function value, or fails with a typed error.
type stepFunc func(x, fx float64) (float64, error)

// iterate drives the open (non-bracketing) methods: it applies step, checks
// the convergence policy with the previous and current iterates, and enforces
// the iteration cap. The step functions carry the per-method numerics; the
// loop carries everything the methods share.
func iterate(f rootfind.Func, step stepFunc, x0 float64, maxIter int, policy convergence.Policy, op string) (float64, error) {
	if !isFinite(x0) {
		return 0, rootfind.NewError(rootfind.ErrNonFinite, op, x0, 0)
	}

	if maxIter <= 0 {
		return 0, rootfind.NewError(rootfind.ErrMaxIterations, op, x0, 0)
	}

	xPre := x0
	fPre := f.Eval(x0)
	last := x0

	for i := 0; i < maxIter; i++ {
		xCur, err := step(xPre, fPre)
		if err != nil {
			return 0, err
		}
		fCur := f.Eval(xCur)

		if policy.Converged(xPre, xCur, fCur, i) {
			return xCur, nil
		}

		xPre, fPre = xCur, fCur
		last = xCur
	}
	return 0, rootfind.NewError(rootfind.ErrMaxIterations, op, last, maxIter)
}

package solver

import (
	"math"

	"github.com/copyleftdev/FINNR/internal/rootfind"
	"github.com/copyleftdev/FINNR/internal/rootfind/bracket"
	"github.com/copyleftdev/FINNR/internal/rootfind/convergence"
)

const opFalsePosition = "solver.FalsePosition"

// FalsePosition finds a root by secant interpolation across the bracket,
// narrowing by the same sign rule as bisection but converging superlinearly
// on well-behaved functions.
//
// Plain false position stagnates on convex functions: one endpoint is never
// replaced and convergence collapses to linear. This implementation applies
// the Illinois modification: an endpoint retained twice in a row has its
// function value halved in the interpolation formula (the stored value is
// untouched), and halved again for every further retention, pulling the
// interpolated point away from the stagnant endpoint. The scaling resets as
// soon as the endpoint is replaced.
//
// Preconditions, exact-root handling, and the failure taxonomy match
// Bisection: ErrNotABracket before any iteration, ErrMaxIterations at the cap.
func FalsePosition(f rootfind.Func, br bracket.Bracket, maxIter int, policy convergence.Policy) (float64, error) {
	a, b := br.Lo(), br.Hi()
	fA, fB := f.Eval(a), f.Eval(b)

	if fA == 0 {
		return a, nil
	}
	if fB == 0 {
		return b, nil
	}
	if !bracket.SignChange(fA, fB) {
		return 0, rootfind.NewError(rootfind.ErrNotABracket, opFalsePosition, a, 0)
	}

	scaleA, scaleB := 1.0, 1.0
	retainedA, retainedB := 0, 0
	prev := math.Inf(1)
	last := a

	for i := 0; i < maxIter; i++ {
		gA, gB := fA*scaleA, fB*scaleB
		x := b - gB*(b-a)/(gB-gA)
		fX := f.Eval(x)
		if fX == 0 {
			return x, nil
		}

		if bracket.SignChange(fA, fX) {
			// Root is in [a, x]; b is replaced, a is retained.
			b, fB = x, fX
			scaleB, retainedB = 1.0, 0
			retainedA++
			if retainedA >= 2 {
				scaleA *= 0.5
			}
		} else {
			a, fA = x, fX
			scaleA, retainedA = 1.0, 0
			retainedB++
			if retainedB >= 2 {
				scaleB *= 0.5
			}
		}

		if policy.Converged(prev, x, fX, i) {
			return x, nil
		}
		prev = x
		last = x
	}
	return 0, rootfind.NewError(rootfind.ErrMaxIterations, opFalsePosition, last, maxIter)
}

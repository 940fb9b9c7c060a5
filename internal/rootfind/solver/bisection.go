package solver

import (
	"math"

	"github.com/copyleftdev/FINNR/internal/rootfind"
	"github.com/copyleftdev/FINNR/internal/rootfind/bracket"
	"github.com/copyleftdev/FINNR/internal/rootfind/convergence"
)

const opBisection = "solver.Bisection"

// Bisection finds a root by repeatedly halving a bracket, keeping whichever
// half still straddles the root. The interval width halves every iteration
// regardless of f's shape, so convergence is guaranteed and linear: reaching a
// target width w from an initial width W takes ceil(log2(W/w)) iterations.
//
// The bracket's sign invariant is re-validated against f before iterating,
// failing with ErrNotABracket when it does not hold (a bracket built against a
// different function, for example). An endpoint that is already an exact root
// is returned immediately. Fails with ErrMaxIterations when the cap is
// reached before the policy fires.
func Bisection(f rootfind.Func, br bracket.Bracket, maxIter int, policy convergence.Policy) (float64, error) {
	lo, hi := br.Lo(), br.Hi()
	fLo, fHi := f.Eval(lo), f.Eval(hi)

	if fLo == 0 {
		return lo, nil
	}
	if fHi == 0 {
		return hi, nil
	}
	if !bracket.SignChange(fLo, fHi) {
		return 0, rootfind.NewError(rootfind.ErrNotABracket, opBisection, lo, 0)
	}

	// No previous midpoint exists on the first iteration; +Inf keeps any
	// step-based policy from firing before a step has been taken.
	prev := math.Inf(1)

	for i := 0; i < maxIter; i++ {
		mid := lo + (hi-lo)*0.5
		fMid := f.Eval(mid)
		if fMid == 0 {
			return mid, nil
		}

		if bracket.SignChange(fLo, fMid) {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}

		if policy.Converged(prev, mid, fMid, i) {
			return mid, nil
		}
		prev = mid
	}
	return 0, rootfind.NewError(rootfind.ErrMaxIterations, opBisection, lo+(hi-lo)*0.5, maxIter)
}

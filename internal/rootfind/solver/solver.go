// Package solver implements the root-finding iterations.
//
// Bisection and FalsePosition consume a validated bracket and maintain its
// sign invariant while narrowing, so they always make progress. The naive
// methods (NewtonRaphsonNaive, HalleyNaive) iterate from a single initial
// guess with no bracketing safeguard: they converge fast near a simple root
// and can diverge, oscillate, or wander arbitrarily far otherwise. The naive
// suffix is deliberate; bracket-guarded hybrid variants are a planned separate
// entry point, not a configuration of these.
//
// Every solver is a pure synchronous computation: no goroutines, no I/O, no
// retained state between calls. max_iterations is the only bound on runtime
// and failures come back as typed errors from the rootfind package, never as
// panics.
package solver

import "math"

// machEps is the double-precision machine epsilon, 2^-52.
const machEps = 0x1p-52

// derivativeTooSmall reports whether num/denom at position x is numerically
// meaningless as a step: |denom| <= machEps*|num|/(1+|x|) implies the step
// would exceed (1+|x|)/machEps, far past any plausible domain of interest.
// The guard is relative, so a legitimately tiny residual over a tiny
// derivative still passes.
func derivativeTooSmall(x, num, denom float64) bool {
	limit := machEps * math.Abs(num) / (1 + math.Abs(x))
	return math.Abs(denom) <= limit
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Package convergence defines when iterative root finders stop.
//
// Solvers consult a Policy after every iteration and depend only on the
// interface: canned policies, combinators, and caller-supplied ones are all
// treated identically. Policies are pure decision functions; the only state
// they see is what the solver passes in, including the iteration index.
package convergence

import (
	"fmt"
	"math"
)

// Policy decides, after each iteration, whether a solver should stop.
// prevX and curX are the previous and current iterates, fCur holds f(curX),
// and iter is the zero-based iteration index.
type Policy interface {
	Converged(prevX, curX, fCur float64, iter int) bool
}

// StepTolerance stops when successive iterates are within Eps of each other:
// |curX - prevX| <= Eps.
//
// This can fire prematurely far from a root: a steep derivative makes a
// method like Newton-Raphson take tiny x steps even when f(x) is still large.
// Combine with ResidualTolerance when that matters.
type StepTolerance struct {
	Eps float64
}

// NewStepTolerance constructs a step-tolerance policy. It panics when eps is
// not a positive finite number; a zero or NaN tolerance can never fire and is
// always a programming mistake.
func NewStepTolerance(eps float64) StepTolerance {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("convergence: step tolerance must be positive and finite, got %v", eps))
	}
	return StepTolerance{Eps: eps}
}

// Converged implements Policy.
func (p StepTolerance) Converged(prevX, curX, _ float64, _ int) bool {
	return math.Abs(curX-prevX) <= p.Eps
}

// ResidualTolerance stops when the function value is small: |f(curX)| <= Eps.
//
// Beware of nearly flat functions: f(x) = -1e-7*x + 0.01 has its root at
// 1e5, but a residual tolerance of 1e-3 accepts anything in [9e4, 1.1e5].
type ResidualTolerance struct {
	Eps float64
}

// NewResidualTolerance constructs a residual-tolerance policy. It panics when
// eps is negative or not finite; zero is allowed (exact roots only).
func NewResidualTolerance(eps float64) ResidualTolerance {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("convergence: residual tolerance must be non-negative and finite, got %v", eps))
	}
	return ResidualTolerance{Eps: eps}
}

// Converged implements Policy.
func (p ResidualTolerance) Converged(_, _, fCur float64, _ int) bool {
	return math.Abs(fCur) <= p.Eps
}

type allOf []Policy

// All combines policies so that every one must agree before the solver stops.
func All(ps ...Policy) Policy { return allOf(ps) }

func (c allOf) Converged(prevX, curX, fCur float64, iter int) bool {
	for _, p := range c {
		if !p.Converged(prevX, curX, fCur, iter) {
			return false
		}
	}
	return true
}

type anyOf []Policy

// Any combines policies so that the solver stops as soon as one fires.
func Any(ps ...Policy) Policy { return anyOf(ps) }

func (c anyOf) Converged(prevX, curX, fCur float64, iter int) bool {
	for _, p := range c {
		if p.Converged(prevX, curX, fCur, iter) {
			return true
		}
	}
	return false
}

// Combined stops when either the step tolerance or the residual tolerance
// fires. This is the usual default for the service layer.
func Combined(stepEps, residualEps float64) Policy {
	return Any(NewStepTolerance(stepEps), NewResidualTolerance(residualEps))
}

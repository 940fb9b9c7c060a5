package rootfind

import (
	"errors"
	"fmt"
	"math"
)

// Failure kinds returned by the bracket and solver packages. Callers match
// them with errors.Is; the *Error wrapper adds position and iteration context.
var (
	// ErrInvalidBounds indicates a Bounds with lo >= hi or a non-finite endpoint.
	ErrInvalidBounds = errors.New("invalid bounds")

	// ErrInvalidWindow indicates a scan window that is non-positive, non-finite,
	// or wider than the bounds being scanned.
	ErrInvalidWindow = errors.New("invalid window")

	// ErrNotABracket indicates an interval whose endpoint values do not take
	// opposite signs (and neither is an exact root).
	ErrNotABracket = errors.New("not a bracket")

	// ErrMaxIterations indicates the iteration cap was reached before the
	// convergence policy fired.
	ErrMaxIterations = errors.New("iteration limit reached")

	// ErrDerivativeTooSmall indicates a derivative-based step could not be
	// computed because the divisor was too close to zero to be meaningful.
	ErrDerivativeTooSmall = errors.New("derivative too small")

	// ErrNonFinite indicates the solver produced a non-finite iterate
	// (overflow or NaN), or was started from a non-finite guess.
	ErrNonFinite = errors.New("iterate is not finite")
)

// Error is a root-finding failure with context. Kind is always one of the
// sentinel errors above, so errors.Is(err, rootfind.ErrMaxIterations) works on
// any error returned by this module.
type Error struct {
	// Kind classifies the failure.
	Kind error
	// Op is the operation that failed, e.g. "solver.Bisection".
	Op string
	// X is the last relevant x position, or NaN when no position applies.
	X float64
	// Iterations is the number of iterations completed before the failure,
	// zero for configuration errors.
	Iterations int
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Kind.Error()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if !math.IsNaN(e.X) {
		msg = fmt.Sprintf("%s (x=%g)", msg, e.X)
	}
	if e.Iterations > 0 {
		msg = fmt.Sprintf("%s after %d iterations", msg, e.Iterations)
	}
	return msg
}

// Unwrap returns the failure kind.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

// NewError creates a contextual root-finding error. Pass NaN for x when the
// failure has no associated position.
func NewError(kind error, op string, x float64, iterations int) *Error {
	return &Error{
		Kind:       kind,
		Op:         op,
		X:          x,
		Iterations: iterations,
	}
}

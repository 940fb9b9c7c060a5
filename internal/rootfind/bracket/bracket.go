// Package bracket discovers and represents root-holding intervals.
//
// A bracket is a closed interval [lo, hi] where f takes opposite signs at the
// endpoints (or is exactly zero at one of them). For a continuous f the
// intermediate value theorem guarantees at least one root inside; without a
// continuity guarantee the sign change may be a singularity instead.
//
// Brackets are found by sliding a fixed-width window over a Bounds and testing
// the window boundaries for sign changes. The scan has known blind spots:
//
//   - Roots that touch but do not cross the x-axis produce no sign change and
//     cannot be detected.
//   - A window wide enough to contain an even number of crossings sees no net
//     sign change and misses all of them.
//   - Several closely spaced roots inside one window collapse into a single
//     detected sign change and are reported as one bracket.
//
// These are properties of windowed scanning, not defects; shrink the window to
// tighten detection.
package bracket

import (
	"math"

	"github.com/copyleftdev/FINNR/internal/rootfind"
)

// Bounds is the caller's full search domain, the closed interval [Lo, Hi].
// Valid Bounds always satisfy Lo < Hi with both endpoints finite.
type Bounds struct {
	Lo, Hi float64
}

// NewBounds validates and constructs a search domain. It fails with
// ErrInvalidBounds unless lo < hi and both endpoints are finite.
func NewBounds(lo, hi float64) (Bounds, error) {
	if !isFinite(lo) || !isFinite(hi) || lo >= hi {
		return Bounds{}, rootfind.NewError(rootfind.ErrInvalidBounds, "bracket.NewBounds", math.NaN(), 0)
	}
	return Bounds{Lo: lo, Hi: hi}, nil
}

// Width returns Hi - Lo.
func (b Bounds) Width() float64 { return b.Hi - b.Lo }

// Mid returns the midpoint of the interval.
func (b Bounds) Mid() float64 { return b.Lo + (b.Hi-b.Lo)*0.5 }

// Contains reports whether x lies in [Lo, Hi].
func (b Bounds) Contains(x float64) bool { return x >= b.Lo && x <= b.Hi }

// Bracket is a validated root-holding interval: f takes opposite signs at the
// endpoints, or one endpoint is an exact root (a degenerate bracket with
// Lo == Hi). Brackets are created by New or emitted by a Generator; solvers
// only ever narrow them.
type Bracket struct {
	lo, hi float64
}

// New validates [lo, hi] against f and constructs a Bracket. It fails with
// ErrNotABracket when the endpoints are non-finite, out of order, or the sign
// condition does not hold.
func New(f rootfind.Func, lo, hi float64) (Bracket, error) {
	if !isFinite(lo) || !isFinite(hi) || lo > hi {
		return Bracket{}, rootfind.NewError(rootfind.ErrNotABracket, "bracket.New", lo, 0)
	}
	fLo, fHi := f.Eval(lo), f.Eval(hi)
	if fLo != 0 && fHi != 0 && !SignChange(fLo, fHi) {
		return Bracket{}, rootfind.NewError(rootfind.ErrNotABracket, "bracket.New", lo, 0)
	}
	return Bracket{lo: lo, hi: hi}, nil
}

// Lo returns the lower endpoint.
func (b Bracket) Lo() float64 { return b.lo }

// Hi returns the upper endpoint.
func (b Bracket) Hi() float64 { return b.hi }

// Width returns Hi - Lo; zero for a degenerate bracket.
func (b Bracket) Width() float64 { return b.hi - b.lo }

// Mid returns the midpoint of the bracket.
func (b Bracket) Mid() float64 { return b.lo + (b.hi-b.lo)*0.5 }

// SignChange reports whether a and b have strictly opposite signs. Zeros never
// participate in a sign change here; exact roots are handled explicitly by the
// scan and the solvers. Comparing signs instead of testing a*b < 0 avoids
// false negatives from floating-point underflow of the product.
func SignChange(a, b float64) bool {
	return (a < 0 && b > 0) || (a > 0 && b < 0)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

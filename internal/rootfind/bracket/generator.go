package bracket

import (
	"math"

	"github.com/copyleftdev/FINNR/internal/rootfind"
)

// Generator lazily emits root-holding brackets found by a single left-to-right
// window scan over a Bounds. Each call to Next resumes the scan where the
// previous bracket was found; the sequence is finite and, because evaluators
// are deterministic, Reset reproduces it exactly.
//
// An exact zero at a window boundary is emitted as a degenerate [x, x]
// bracket. The boundary is tested once, so the zero is attributed to the
// window ending there and never also opens the following window's bracket.
type Generator struct {
	f      rootfind.Func
	bounds Bounds
	window float64

	cursor float64 // boundary the scan resumes from
	fCur   float64 // f(cursor)
	primed bool    // cursor already tested for an exact zero
	done   bool
}

// NewGenerator validates the scan configuration and positions the scan at
// bounds.Lo. It fails with ErrInvalidWindow when window is non-positive,
// non-finite, or wider than the bounds.
func NewGenerator(f rootfind.Func, bounds Bounds, window float64) (*Generator, error) {
	if !(window > 0) || math.IsInf(window, 0) || window > bounds.Width() {
		return nil, rootfind.NewError(rootfind.ErrInvalidWindow, "bracket.NewGenerator", math.NaN(), 0)
	}
	g := &Generator{f: f, bounds: bounds, window: window}
	g.Reset()
	return g, nil
}

// Reset restarts the scan from bounds.Lo. The regenerated sequence is
// identical to the first, assuming a deterministic evaluator.
func (g *Generator) Reset() {
	g.cursor = g.bounds.Lo
	g.fCur = g.f.Eval(g.bounds.Lo)
	g.primed = false
	g.done = false
}

// Next returns the next bracket in the scan, or false when the bounds are
// exhausted.
func (g *Generator) Next() (Bracket, bool) {
	if g.done {
		return Bracket{}, false
	}

	// The resume boundary may itself be an exact root. This covers bounds.Lo
	// on the first call; interior boundaries are tested as the scan reaches
	// them below.
	if !g.primed {
		g.primed = true
		if g.fCur == 0 {
			return Bracket{lo: g.cursor, hi: g.cursor}, true
		}
	}

	for g.cursor < g.bounds.Hi {
		next := math.Min(g.cursor+g.window, g.bounds.Hi)
		fNext := g.f.Eval(next)

		a, fA := g.cursor, g.fCur
		g.cursor, g.fCur = next, fNext

		if fNext == 0 {
			return Bracket{lo: next, hi: next}, true
		}
		if SignChange(fA, fNext) {
			return Bracket{lo: a, hi: next}, true
		}
	}

	g.done = true
	return Bracket{}, false
}

// All runs the remainder of the scan and collects every bracket. On a freshly
// constructed or Reset generator this is the full sequence.
func (g *Generator) All() []Bracket {
	var out []Bracket
	for {
		b, ok := g.Next()
		if !ok {
			return out
		}
		out = append(out, b)
	}
}

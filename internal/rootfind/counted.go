package rootfind

// Counted decorates an evaluator and counts f(x) calls. The service layer uses
// it to report the evaluation cost of a solve; tests use it to compare solver
// efficiency. Not safe for concurrent use: share-nothing per solve, like the
// solvers themselves.
type Counted struct {
	f     Func
	evals int
}

// NewCounted wraps f with an evaluation counter.
func NewCounted(f Func) *Counted {
	return &Counted{f: f}
}

// Eval evaluates the wrapped function and increments the counter.
func (c *Counted) Eval(x float64) float64 {
	c.evals++
	return c.f.Eval(x)
}

// Evals returns the number of Eval calls made so far.
func (c *Counted) Evals() int { return c.evals }

// Reset zeroes the counter.
func (c *Counted) Reset() { c.evals = 0 }

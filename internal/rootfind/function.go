// Package rootfind provides the shared core of the root-finding service: the
// function evaluator capability set, the typed failure taxonomy, and evaluator
// decorators. The bracket, convergence, and solver subpackages build on it.
//
// Evaluators are capability-gated through an interface tower: every evaluator
// can compute f(x); some can also compute f'(x) and f''(x). Solvers declare
// the capability they need in their signature, so passing an evaluator without
// the required derivative is a compile error, not a runtime surprise.
//
// Evaluators must be deterministic and side-effect free. Solvers re-evaluate
// f at previously visited points and maintain sign invariants across calls;
// a non-deterministic evaluator voids both.
package rootfind

// Func evaluates a real single-variable function f(x).
type Func interface {
	Eval(x float64) float64
}

// Differentiable evaluates f(x) and its first derivative f'(x).
type Differentiable interface {
	Func
	EvalD1(x float64) float64
}

// TwiceDifferentiable evaluates f(x) and its first and second derivatives.
type TwiceDifferentiable interface {
	Differentiable
	EvalD2(x float64) float64
}

type fn struct {
	f func(float64) float64
}

// NewFunc wraps a raw function as a Func with no derivative capabilities.
func NewFunc(f func(float64) float64) Func {
	return fn{f: f}
}

func (w fn) Eval(x float64) float64 { return w.f(x) }

type fnD1 struct {
	f, df func(float64) float64
}

// NewFuncD1 wraps a function and its analytic first derivative. The result
// satisfies Differentiable and can drive Newton-Raphson, but not Halley.
func NewFuncD1(f, df func(float64) float64) Differentiable {
	return fnD1{f: f, df: df}
}

func (w fnD1) Eval(x float64) float64   { return w.f(x) }
func (w fnD1) EvalD1(x float64) float64 { return w.df(x) }

type fnD2 struct {
	f, df, d2f func(float64) float64
}

// NewFuncD2 wraps a function and its analytic first and second derivatives,
// satisfying TwiceDifferentiable.
func NewFuncD2(f, df, d2f func(float64) float64) TwiceDifferentiable {
	return fnD2{f: f, df: df, d2f: d2f}
}

func (w fnD2) Eval(x float64) float64   { return w.f(x) }
func (w fnD2) EvalD1(x float64) float64 { return w.df(x) }
func (w fnD2) EvalD2(x float64) float64 { return w.d2f(x) }

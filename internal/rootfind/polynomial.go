package rootfind

// Polynomial is an evaluator for c[0] + c[1]*x + ... + c[n]*x^n with exact
// analytic derivatives. It is the function representation accepted over the
// wire by the HTTP and JSON-RPC surfaces, where callers cannot ship closures.
type Polynomial struct {
	coeffs []float64
}

// NewPolynomial creates a polynomial evaluator from coefficients in ascending
// degree order. An empty coefficient slice is the zero polynomial.
func NewPolynomial(coeffs []float64) Polynomial {
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return Polynomial{coeffs: c}
}

// Coefficients returns a copy of the coefficients in ascending degree order.
func (p Polynomial) Coefficients() []float64 {
	c := make([]float64, len(p.coeffs))
	copy(c, p.coeffs)
	return c
}

// Eval computes p(x) by Horner's rule.
func (p Polynomial) Eval(x float64) float64 {
	acc := 0.0
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc*x + p.coeffs[i]
	}
	return acc
}

// EvalD1 computes p'(x).
func (p Polynomial) EvalD1(x float64) float64 {
	acc := 0.0
	for i := len(p.coeffs) - 1; i >= 1; i-- {
		acc = acc*x + float64(i)*p.coeffs[i]
	}
	return acc
}

// EvalD2 computes p''(x).
func (p Polynomial) EvalD2(x float64) float64 {
	acc := 0.0
	for i := len(p.coeffs) - 1; i >= 2; i-- {
		acc = acc*x + float64(i)*float64(i-1)*p.coeffs[i]
	}
	return acc
}

package rootfind

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestNewFunc(t *testing.T) {
	f := NewFunc(func(x float64) float64 { return x*x - 4 })

	assert.Equal(t, 0.0, f.Eval(2))
	assert.Equal(t, -4.0, f.Eval(0))
	assert.Equal(t, 5.0, f.Eval(3))
}

func TestNewFuncD1(t *testing.T) {
	f := NewFuncD1(
		func(x float64) float64 { return x * x },
		func(x float64) float64 { return 2 * x },
	)

	assert.Equal(t, 9.0, f.Eval(3))
	assert.Equal(t, 6.0, f.EvalD1(3))
}

func TestNewFuncD2(t *testing.T) {
	f := NewFuncD2(
		func(x float64) float64 { return x * x * x },
		func(x float64) float64 { return 3 * x * x },
		func(x float64) float64 { return 6 * x },
	)

	assert.Equal(t, 8.0, f.Eval(2))
	assert.Equal(t, 12.0, f.EvalD1(2))
	assert.Equal(t, 12.0, f.EvalD2(2))
}

func TestNewNumericFuncDerivatives(t *testing.T) {
	f := NewNumericFunc(math.Sin, 0)

	for _, x := range []float64{-2.5, -1, 0, 0.5, 1.3, 3} {
		assert.Equal(t, math.Sin(x), f.Eval(x))
		assert.True(t, scalar.EqualWithinAbs(f.EvalD1(x), math.Cos(x), 1e-6),
			"d/dx sin at %g: got %g want %g", x, f.EvalD1(x), math.Cos(x))
		assert.True(t, scalar.EqualWithinAbs(f.EvalD2(x), -math.Sin(x), 1e-4),
			"d2/dx2 sin at %g: got %g want %g", x, f.EvalD2(x), -math.Sin(x))
	}
}

func TestNewNumericFuncCustomStep(t *testing.T) {
	f := NewNumericFunc(func(x float64) float64 { return x * x }, 1e-5)

	assert.True(t, scalar.EqualWithinAbs(f.EvalD1(3), 6, 1e-6))

	// A negative step falls back to the formula default.
	g := NewNumericFunc(math.Exp, -1)
	assert.True(t, scalar.EqualWithinAbs(g.EvalD1(0), 1, 1e-6))
}

func TestCounted(t *testing.T) {
	f := NewCounted(NewFunc(func(x float64) float64 { return 2 * x }))

	require.Equal(t, 0, f.Evals())
	assert.Equal(t, 4.0, f.Eval(2))
	assert.Equal(t, 6.0, f.Eval(3))
	assert.Equal(t, 2, f.Evals())

	f.Reset()
	assert.Equal(t, 0, f.Evals())
	f.Eval(1)
	assert.Equal(t, 1, f.Evals())
}

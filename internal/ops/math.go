package ops

import (
	"math"

	"github.com/born-ml/dual/internal/dual"
)

type expOp[T dual.Float] struct{}

func (expOp[T]) Value(v T) T { return T(math.Exp(float64(v))) }
func (expOp[T]) DValue(x dual.Duo[T]) T {
	return T(math.Exp(float64(x.V))) * x.D
}

type logOp[T dual.Float] struct{}

func (logOp[T]) Value(v T) T { return T(math.Log(float64(v))) }
func (logOp[T]) DValue(x dual.Duo[T]) T {
	// A derivative at a point outside the domain is meaningless, so negative
	// inputs force NaN even though d/v alone would stay finite. Zero needs no
	// guard: d/v already yields ±Inf there.
	if x.V < 0 {
		return T(math.NaN())
	}
	return x.D / x.V
}

type sinOp[T dual.Float] struct{}

func (sinOp[T]) Value(v T) T { return T(math.Sin(float64(v))) }
func (sinOp[T]) DValue(x dual.Duo[T]) T {
	return T(math.Cos(float64(x.V))) * x.D
}

type cosOp[T dual.Float] struct{}

func (cosOp[T]) Value(v T) T { return T(math.Cos(float64(v))) }
func (cosOp[T]) DValue(x dual.Duo[T]) T {
	return -T(math.Sin(float64(x.V))) * x.D
}

type sqrtOp[T dual.Float] struct{}

func (sqrtOp[T]) Value(v T) T { return T(math.Sqrt(float64(v))) }
func (sqrtOp[T]) DValue(x dual.Duo[T]) T {
	return x.D / (2 * T(math.Sqrt(float64(x.V))))
}

// Exp returns e**x.
func Exp[T dual.Float](x *dual.Number[T]) *dual.Number[T] {
	return dual.Unary[T](expOp[T]{}, x)
}

// Log returns the natural logarithm of x.
//
// Negative inputs yield NaN in both the value and every derivative; log(0)
// yields a -Inf value with +Inf derivatives.
func Log[T dual.Float](x *dual.Number[T]) *dual.Number[T] {
	return dual.Unary[T](logOp[T]{}, x)
}

// Sin returns the sine of x.
func Sin[T dual.Float](x *dual.Number[T]) *dual.Number[T] {
	return dual.Unary[T](sinOp[T]{}, x)
}

// Cos returns the cosine of x.
func Cos[T dual.Float](x *dual.Number[T]) *dual.Number[T] {
	return dual.Unary[T](cosOp[T]{}, x)
}

// Sqrt returns the square root of x. Negative inputs yield NaN in both the
// value and every derivative.
func Sqrt[T dual.Float](x *dual.Number[T]) *dual.Number[T] {
	return dual.Unary[T](sqrtOp[T]{}, x)
}

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops is the catalogue of elementary differentiable operators over
// dual Numbers: add, subtract, multiply, divide, negate, power, exp, log,
// sin, cos, and sqrt, plus sum/product reductions over Arrays.
//
// Every operator dispatches through the protocol in the dual package, so a
// binary operator applied to operands with different channel sets yields a
// result tracking their merged set, with the correct one-sided or two-sided
// derivative rule chosen per channel.
//
// Example:
//
//	x := dual.New(1.0, 0)
//	r := ops.Sin(ops.Log(ops.Mul(x, x)))
//	_ = r.Value()   // sin(log(1)) = 0
//	_ = r.DValue(0) // cos(log(1)) * 2/1 = 2
package ops

import (
	"github.com/born-ml/dual/internal/dual"
	"github.com/born-ml/dual/internal/ops"
)

// Float is the scalar constraint, re-exported for convenience.
type Float = dual.Float

// Add returns x + y.
func Add[T Float](x, y *dual.Number[T]) *dual.Number[T] { return ops.Add(x, y) }

// AddScalar returns x + v.
func AddScalar[T Float](x *dual.Number[T], v T) *dual.Number[T] { return ops.AddScalar(x, v) }

// ScalarAdd returns v + y.
func ScalarAdd[T Float](v T, y *dual.Number[T]) *dual.Number[T] { return ops.ScalarAdd(v, y) }

// Sub returns x - y.
func Sub[T Float](x, y *dual.Number[T]) *dual.Number[T] { return ops.Sub(x, y) }

// SubScalar returns x - v.
func SubScalar[T Float](x *dual.Number[T], v T) *dual.Number[T] { return ops.SubScalar(x, v) }

// ScalarSub returns v - y.
func ScalarSub[T Float](v T, y *dual.Number[T]) *dual.Number[T] { return ops.ScalarSub(v, y) }

// Mul returns x * y.
func Mul[T Float](x, y *dual.Number[T]) *dual.Number[T] { return ops.Mul(x, y) }

// MulScalar returns x * v.
func MulScalar[T Float](x *dual.Number[T], v T) *dual.Number[T] { return ops.MulScalar(x, v) }

// ScalarMul returns v * y.
func ScalarMul[T Float](v T, y *dual.Number[T]) *dual.Number[T] { return ops.ScalarMul(v, y) }

// Div returns x / y.
func Div[T Float](x, y *dual.Number[T]) *dual.Number[T] { return ops.Div(x, y) }

// DivScalar returns x / v.
func DivScalar[T Float](x *dual.Number[T], v T) *dual.Number[T] { return ops.DivScalar(x, v) }

// ScalarDiv returns v / y.
func ScalarDiv[T Float](v T, y *dual.Number[T]) *dual.Number[T] { return ops.ScalarDiv(v, y) }

// Neg returns -x.
func Neg[T Float](x *dual.Number[T]) *dual.Number[T] { return ops.Neg(x) }

// Pow returns x**y, tracking the merged channels of base and exponent.
func Pow[T Float](x, y *dual.Number[T]) *dual.Number[T] { return ops.Pow(x, y) }

// PowScalar returns x**v for a plain scalar exponent.
func PowScalar[T Float](x *dual.Number[T], v T) *dual.Number[T] { return ops.PowScalar(x, v) }

// ScalarPow returns v**y for a plain scalar base.
func ScalarPow[T Float](v T, y *dual.Number[T]) *dual.Number[T] { return ops.ScalarPow(v, y) }

// Exp returns e**x.
func Exp[T Float](x *dual.Number[T]) *dual.Number[T] { return ops.Exp(x) }

// Log returns the natural logarithm of x. Negative inputs yield NaN in both
// value and derivatives; log(0) yields -Inf with +Inf derivatives.
func Log[T Float](x *dual.Number[T]) *dual.Number[T] { return ops.Log(x) }

// Sin returns the sine of x.
func Sin[T Float](x *dual.Number[T]) *dual.Number[T] { return ops.Sin(x) }

// Cos returns the cosine of x.
func Cos[T Float](x *dual.Number[T]) *dual.Number[T] { return ops.Cos(x) }

// Sqrt returns the square root of x. Negative inputs yield NaN in both value
// and derivatives.
func Sqrt[T Float](x *dual.Number[T]) *dual.Number[T] { return ops.Sqrt(x) }

// Sum folds an Array with addition, merging channel sets along the way.
func Sum[T Float](a *dual.Array[T]) *dual.Number[T] { return ops.Sum(a) }

// Prod folds an Array with multiplication.
func Prod[T Float](a *dual.Array[T]) *dual.Number[T] { return ops.Prod(a) }

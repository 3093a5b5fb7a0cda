package ops

import (
	"math"

	"github.com/born-ml/dual/internal/dual"
)

type powOp[T dual.Float] struct{}

func (powOp[T]) Value(a, b T) T {
	return T(math.Pow(float64(a), float64(b)))
}

// d(a^b) = a^(b-1) * (b*da + a*db*ln a)
func (powOp[T]) DValue(x, y dual.Duo[T]) T {
	return T(math.Pow(float64(x.V), float64(y.V)-1)) *
		(y.V*x.D + x.V*y.D*T(math.Log(float64(x.V))))
}

// scalar exponent v: d(a^v) = v * a^(v-1) * da
func (powOp[T]) DValueLeft(x dual.Duo[T], v T) T {
	return v * T(math.Pow(float64(x.V), float64(v)-1)) * x.D
}

// scalar base v: d(v^b) = db * v^b * ln v
func (powOp[T]) DValueRight(v T, y dual.Duo[T]) T {
	return y.D * T(math.Pow(float64(v), float64(y.V))) * T(math.Log(float64(v)))
}

// Pow returns x**y, tracking the merged channel sets of base and exponent.
func Pow[T dual.Float](x, y *dual.Number[T]) *dual.Number[T] {
	return dual.Binary[T](powOp[T]{}, x, y)
}

// PowScalar returns x**v for a plain scalar exponent.
func PowScalar[T dual.Float](x *dual.Number[T], v T) *dual.Number[T] {
	return dual.BinaryLeft[T](powOp[T]{}, x, v)
}

// ScalarPow returns v**y for a plain scalar base.
func ScalarPow[T dual.Float](v T, y *dual.Number[T]) *dual.Number[T] {
	return dual.BinaryRight[T](powOp[T]{}, v, y)
}

// Package ops is the catalogue of elementary differentiable operators. Each
// operator is a strategy plugged into the dispatch protocol of
// internal/dual: a plain value formula plus one to three derivative formulas
// selected per output channel by the channel-set merge.
package ops

import (
	"github.com/born-ml/dual/internal/dual"
)

type addOp[T dual.Float] struct{}

func (addOp[T]) Value(a, b T) T                   { return a + b }
func (addOp[T]) DValue(x, y dual.Duo[T]) T        { return x.D + y.D }
func (addOp[T]) DValueLeft(x dual.Duo[T], _ T) T  { return x.D }
func (addOp[T]) DValueRight(_ T, y dual.Duo[T]) T { return y.D }

type subOp[T dual.Float] struct{}

func (subOp[T]) Value(a, b T) T                   { return a - b }
func (subOp[T]) DValue(x, y dual.Duo[T]) T        { return x.D - y.D }
func (subOp[T]) DValueLeft(x dual.Duo[T], _ T) T  { return x.D }
func (subOp[T]) DValueRight(_ T, y dual.Duo[T]) T { return -y.D }

type mulOp[T dual.Float] struct{}

func (mulOp[T]) Value(a, b T) T                   { return a * b }
func (mulOp[T]) DValue(x, y dual.Duo[T]) T        { return x.V*y.D + y.V*x.D }
func (mulOp[T]) DValueLeft(x dual.Duo[T], v T) T  { return v * x.D }
func (mulOp[T]) DValueRight(v T, y dual.Duo[T]) T { return v * y.D }

type divOp[T dual.Float] struct{}

func (divOp[T]) Value(a, b T) T                   { return a / b }
func (divOp[T]) DValue(x, y dual.Duo[T]) T        { return (y.V*x.D - x.V*y.D) / (y.V * y.V) }
func (divOp[T]) DValueLeft(x dual.Duo[T], v T) T  { return x.D / v }
func (divOp[T]) DValueRight(v T, y dual.Duo[T]) T { return (-v * y.D) / (y.V * y.V) }

type negOp[T dual.Float] struct{}

func (negOp[T]) Value(v T) T            { return -v }
func (negOp[T]) DValue(x dual.Duo[T]) T { return -x.D }

// Add returns x + y.
func Add[T dual.Float](x, y *dual.Number[T]) *dual.Number[T] {
	return dual.Binary[T](addOp[T]{}, x, y)
}

// AddScalar returns x + v.
func AddScalar[T dual.Float](x *dual.Number[T], v T) *dual.Number[T] {
	return dual.BinaryLeft[T](addOp[T]{}, x, v)
}

// ScalarAdd returns v + y.
func ScalarAdd[T dual.Float](v T, y *dual.Number[T]) *dual.Number[T] {
	return dual.BinaryRight[T](addOp[T]{}, v, y)
}

// Sub returns x - y.
func Sub[T dual.Float](x, y *dual.Number[T]) *dual.Number[T] {
	return dual.Binary[T](subOp[T]{}, x, y)
}

// SubScalar returns x - v.
func SubScalar[T dual.Float](x *dual.Number[T], v T) *dual.Number[T] {
	return dual.BinaryLeft[T](subOp[T]{}, x, v)
}

// ScalarSub returns v - y.
func ScalarSub[T dual.Float](v T, y *dual.Number[T]) *dual.Number[T] {
	return dual.BinaryRight[T](subOp[T]{}, v, y)
}

// Mul returns x * y.
func Mul[T dual.Float](x, y *dual.Number[T]) *dual.Number[T] {
	return dual.Binary[T](mulOp[T]{}, x, y)
}

// MulScalar returns x * v.
func MulScalar[T dual.Float](x *dual.Number[T], v T) *dual.Number[T] {
	return dual.BinaryLeft[T](mulOp[T]{}, x, v)
}

// ScalarMul returns v * y.
func ScalarMul[T dual.Float](v T, y *dual.Number[T]) *dual.Number[T] {
	return dual.BinaryRight[T](mulOp[T]{}, v, y)
}

// Div returns x / y.
func Div[T dual.Float](x, y *dual.Number[T]) *dual.Number[T] {
	return dual.Binary[T](divOp[T]{}, x, y)
}

// DivScalar returns x / v.
func DivScalar[T dual.Float](x *dual.Number[T], v T) *dual.Number[T] {
	return dual.BinaryLeft[T](divOp[T]{}, x, v)
}

// ScalarDiv returns v / y.
func ScalarDiv[T dual.Float](v T, y *dual.Number[T]) *dual.Number[T] {
	return dual.BinaryRight[T](divOp[T]{}, v, y)
}

// Neg returns -x.
func Neg[T dual.Float](x *dual.Number[T]) *dual.Number[T] {
	return dual.Unary[T](negOp[T]{}, x)
}

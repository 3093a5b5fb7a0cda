package dual

// UnaryOp is the strategy contract for a differentiable unary operator.
// Value computes the plain result; DValue applies the operator's derivative
// formula to one channel's Duo. The chain rule per channel is
// d/dc f(x) = f'(x) * dx/dc, and DValue receives dx/dc inside the Duo.
type UnaryOp[T Float] interface {
	Value(v T) T
	DValue(x Duo[T]) T
}

// BinaryOp is the strategy contract for a differentiable binary operator.
// Besides the two-sided DValue it carries the two one-sided shapes, used when
// one operand does not track the channel under consideration. The one-sided
// formulas bake the missing operand's zero derivative into the closed form
// rather than computing with an explicit zero.
type BinaryOp[T Float] interface {
	Value(a, b T) T
	DValue(x, y Duo[T]) T
	DValueLeft(x Duo[T], v T) T
	DValueRight(v T, y Duo[T]) T
}

// Unary applies op to x. The result tracks exactly x's channel set, with each
// channel's derivative computed independently through op.DValue.
func Unary[T Float](op UnaryOp[T], x *Number[T]) *Number[T] {
	out := newNumber(op.Value(x.value), x.channels.Clone())
	for i := range x.channels {
		out.dvalues[i] = op.DValue(Duo[T]{V: x.value, D: x.dvalues[i]})
	}
	return out
}

// BinaryLeft applies op to (x, v) where v is a plain scalar. The result
// tracks x's channel set unchanged.
func BinaryLeft[T Float](op BinaryOp[T], x *Number[T], v T) *Number[T] {
	out := newNumber(op.Value(x.value, v), x.channels.Clone())
	for i := range x.channels {
		out.dvalues[i] = op.DValueLeft(Duo[T]{V: x.value, D: x.dvalues[i]}, v)
	}
	return out
}

// BinaryRight applies op to (v, y) where v is a plain scalar. The result
// tracks y's channel set unchanged.
func BinaryRight[T Float](op BinaryOp[T], v T, y *Number[T]) *Number[T] {
	out := newNumber(op.Value(v, y.value), y.channels.Clone())
	for i := range y.channels {
		out.dvalues[i] = op.DValueRight(v, Duo[T]{V: y.value, D: y.dvalues[i]})
	}
	return out
}

// Binary applies op to two Numbers, merging their channel sets per Merge.
//
// Channels tracked only by x use the scalar-right rule with y's value,
// channels tracked only by y use the scalar-left rule with x's value, and
// channels tracked by both use the full two-Duo rule. The result value is
// op.Value(x, y), computed once, independent of channel handling.
func Binary[T Float](op BinaryOp[T], x, y *Number[T]) *Number[T] {
	common, onlyL, onlyR, result := Merge(x.channels, y.channels)
	out := newNumber(op.Value(x.value, y.value), result)

	// result is laid out as onlyL ++ common ++ onlyR; fill the slots in that
	// order.
	i := 0
	for _, c := range onlyL {
		out.dvalues[i] = op.DValueLeft(x.duo(c), y.value)
		i++
	}
	for _, c := range common {
		out.dvalues[i] = op.DValue(x.duo(c), y.duo(c))
		i++
	}
	for _, c := range onlyR {
		out.dvalues[i] = op.DValueRight(x.value, y.duo(c))
		i++
	}
	return out
}

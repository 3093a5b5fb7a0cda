// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import (
	"github.com/born-ml/dual/internal/dual"
)

// Type aliases for the public API.

// Float is the constraint for scalar types a Number can carry.
type Float = dual.Float

// Number is a dual value: a scalar paired with per-channel derivatives.
type Number[T Float] = dual.Number[T]

// Duo is a transient (value, derivative) pair for one channel, passed into a
// strategy's derivative formula.
type Duo[T Float] = dual.Duo[T]

// Set is an ordered collection of distinct channel indices.
type Set = dual.Set

// Array is a fixed-arity ordered collection of Numbers.
type Array[T Float] = dual.Array[T]

// UnaryOp is the strategy contract for a differentiable unary operator.
type UnaryOp[T Float] = dual.UnaryOp[T]

// BinaryOp is the strategy contract for a differentiable binary operator.
type BinaryOp[T Float] = dual.BinaryOp[T]

// New creates a Number tracking the given channels, with every derivative
// slot seeded to 1.
func New[T Float](value T, channels ...int) *Number[T] {
	return dual.New(value, channels...)
}

// Channel-set algebra.

// Union returns a's channels followed by b's channels not already in a.
func Union(a, b Set) Set { return dual.Union(a, b) }

// Intersection returns the channels of a that also occur in b, in a's order.
func Intersection(a, b Set) Set { return dual.Intersection(a, b) }

// Difference returns the channels of a that do not occur in b, in a's order.
func Difference(a, b Set) Set { return dual.Difference(a, b) }

// Concat concatenates sets without deduplication; inputs must be disjoint.
func Concat(sets ...Set) Set { return dual.Concat(sets...) }

// Merge computes the canonical (common, onlyL, onlyR, result) split used by
// binary dispatch.
func Merge(l, r Set) (common, onlyL, onlyR, result Set) { return dual.Merge(l, r) }

// Sequence returns the n consecutive channels starting at start.
func Sequence(start, n int) Set { return dual.Sequence(start, n) }

// Operator dispatch protocol. The ops package plugs the elementary operator
// catalogue into these; custom operators implement UnaryOp or BinaryOp and
// dispatch the same way.

// Unary applies op to x; the result tracks exactly x's channels.
func Unary[T Float](op UnaryOp[T], x *Number[T]) *Number[T] {
	return dual.Unary(op, x)
}

// Binary applies op to two Numbers, merging their channel sets.
func Binary[T Float](op BinaryOp[T], x, y *Number[T]) *Number[T] {
	return dual.Binary(op, x, y)
}

// BinaryLeft applies op to (x, v) for a plain scalar v.
func BinaryLeft[T Float](op BinaryOp[T], x *Number[T], v T) *Number[T] {
	return dual.BinaryLeft(op, x, v)
}

// BinaryRight applies op to (v, y) for a plain scalar v.
func BinaryRight[T Float](op BinaryOp[T], v T, y *Number[T]) *Number[T] {
	return dual.BinaryRight(op, v, y)
}

// Collections.

// NewArray creates an Array from the given Numbers.
func NewArray[T Float](elems ...*Number[T]) *Array[T] {
	return dual.NewArray(elems...)
}

// Make creates an Array where slot i tracks its own fresh channel
// startChannel+i.
func Make[T Float](startChannel int, values ...T) *Array[T] {
	return dual.Make(startChannel, values...)
}

// FromValues creates an Array where slot i holds values[i] tracking
// channels[i].
func FromValues[T Float](channels []Set, values []T) (*Array[T], error) {
	return dual.FromValues[T](channels, values)
}

// Transform applies f to every slot of a.
func Transform[T Float](a *Array[T], f func(*Number[T]) *Number[T]) *Array[T] {
	return dual.Transform(a, f)
}

// Transform2 applies f position-wise across two Arrays of equal arity.
func Transform2[T Float](a, b *Array[T], f func(x, y *Number[T]) *Number[T]) *Array[T] {
	return dual.Transform2(a, b, f)
}

// Broadcast applies f to every slot of a with a fixed right-hand scalar.
func Broadcast[T Float](a *Array[T], v T, f func(x *Number[T], v T) *Number[T]) *Array[T] {
	return dual.Broadcast(a, v, f)
}

// BroadcastLeft applies f to every slot of a with a fixed left-hand scalar.
func BroadcastLeft[T Float](v T, a *Array[T], f func(v T, y *Number[T]) *Number[T]) *Array[T] {
	return dual.BroadcastLeft(v, a, f)
}

// Zip groups the i-th slots of the given Arrays, truncating to the smallest
// arity.
func Zip[T Float](arrays ...*Array[T]) [][]*Number[T] {
	return dual.Zip(arrays...)
}

// View returns an Array sharing the selected slots of a.
func View[T Float](a *Array[T], idx ...int) *Array[T] {
	return dual.View(a, idx...)
}

// ConcatArrays returns an Array sharing the slots of the inputs, in order.
func ConcatArrays[T Float](arrays ...*Array[T]) *Array[T] {
	return dual.ConcatArrays(arrays...)
}

// Reduce folds the Array with combine, left to right.
func Reduce[T Float](a *Array[T], combine func(x, y *Number[T]) *Number[T]) *Number[T] {
	return dual.Reduce(a, combine)
}

// ForEach calls f on every slot in order.
func ForEach[T Float](a *Array[T], f func(*Number[T])) {
	dual.ForEach(a, f)
}

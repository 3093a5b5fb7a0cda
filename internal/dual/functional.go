package dual

import "fmt"

// Transform applies f to every slot of a, producing a new Array of the same
// arity. Slots are independent; f never sees more than one slot.
func Transform[T Float](a *Array[T], f func(*Number[T]) *Number[T]) *Array[T] {
	elems := make([]*Number[T], a.Len())
	for i, e := range a.elems {
		elems[i] = f(e)
	}
	return &Array[T]{elems: elems}
}

// Transform2 applies f position-wise across two Arrays of equal arity.
// Panics if the arities differ; mixing arities is a programming error, not a
// per-call condition to recover from.
func Transform2[T Float](a, b *Array[T], f func(x, y *Number[T]) *Number[T]) *Array[T] {
	if a.Len() != b.Len() {
		panic(fmt.Sprintf("dual: arity mismatch %d != %d", a.Len(), b.Len()))
	}
	elems := make([]*Number[T], a.Len())
	for i := range a.elems {
		elems[i] = f(a.elems[i], b.elems[i])
	}
	return &Array[T]{elems: elems}
}

// Broadcast applies f to every slot of a with the fixed right-hand scalar v.
func Broadcast[T Float](a *Array[T], v T, f func(x *Number[T], v T) *Number[T]) *Array[T] {
	elems := make([]*Number[T], a.Len())
	for i, e := range a.elems {
		elems[i] = f(e, v)
	}
	return &Array[T]{elems: elems}
}

// BroadcastLeft applies f to every slot of a with the fixed left-hand
// scalar v.
func BroadcastLeft[T Float](v T, a *Array[T], f func(v T, y *Number[T]) *Number[T]) *Array[T] {
	elems := make([]*Number[T], a.Len())
	for i, e := range a.elems {
		elems[i] = f(v, e)
	}
	return &Array[T]{elems: elems}
}

// Zip groups the i-th slots of the given Arrays. The result length is the
// smallest arity among the inputs.
func Zip[T Float](arrays ...*Array[T]) [][]*Number[T] {
	if len(arrays) == 0 {
		return nil
	}
	n := arrays[0].Len()
	for _, a := range arrays[1:] {
		if a.Len() < n {
			n = a.Len()
		}
	}
	out := make([][]*Number[T], n)
	for i := range out {
		row := make([]*Number[T], len(arrays))
		for j, a := range arrays {
			row[j] = a.elems[i]
		}
		out[i] = row
	}
	return out
}

// View returns an Array sharing the selected slots of a, in the given order.
// Mutations through the view are visible in a.
// Panics if any index is out of range.
func View[T Float](a *Array[T], idx ...int) *Array[T] {
	elems := make([]*Number[T], len(idx))
	for i, j := range idx {
		elems[i] = a.At(j)
	}
	return &Array[T]{elems: elems}
}

// ConcatArrays returns an Array sharing the slots of the inputs, in order.
func ConcatArrays[T Float](arrays ...*Array[T]) *Array[T] {
	n := 0
	for _, a := range arrays {
		n += a.Len()
	}
	elems := make([]*Number[T], 0, n)
	for _, a := range arrays {
		elems = append(elems, a.elems...)
	}
	return &Array[T]{elems: elems}
}

// Reduce folds the Array with combine, left to right.
// Panics on an empty Array.
func Reduce[T Float](a *Array[T], combine func(x, y *Number[T]) *Number[T]) *Number[T] {
	if a.Len() == 0 {
		panic("dual: reduce of empty array")
	}
	acc := a.elems[0]
	for _, e := range a.elems[1:] {
		acc = combine(acc, e)
	}
	return acc
}

// ForEach calls f on every slot in order.
func ForEach[T Float](a *Array[T], f func(*Number[T])) {
	for _, e := range a.elems {
		f(e)
	}
}

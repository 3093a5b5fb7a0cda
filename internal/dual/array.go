package dual

import "fmt"

// Array is a fixed-arity ordered collection of Numbers. Each slot tracks its
// own channel set independently; no operation ever mixes slots. The arity is
// fixed at construction.
type Array[T Float] struct {
	elems []*Number[T]
}

// NewArray creates an Array from the given Numbers. The slots reference the
// given Numbers directly.
func NewArray[T Float](elems ...*Number[T]) *Array[T] {
	out := &Array[T]{elems: make([]*Number[T], len(elems))}
	copy(out.elems, elems)
	return out
}

// Make creates an Array where slot i holds values[i] tracking its own fresh
// channel startChannel+i, seeded per New.
//
// Example:
//
//	a := dual.Make(0, 1.5, 2.5, 3.5) // channels 0, 1, 2
func Make[T Float](startChannel int, values ...T) *Array[T] {
	elems := make([]*Number[T], len(values))
	for i, v := range values {
		elems[i] = New(v, startChannel+i)
	}
	return &Array[T]{elems: elems}
}

// FromValues creates an Array where slot i holds values[i] tracking
// channels[i]. Returns an error if the lengths differ.
func FromValues[T Float](channels []Set, values []T) (*Array[T], error) {
	if len(channels) != len(values) {
		return nil, fmt.Errorf("dual: %d channel sets for %d values", len(channels), len(values))
	}
	elems := make([]*Number[T], len(values))
	for i, v := range values {
		elems[i] = newNumber(v, channels[i].Clone())
	}
	return &Array[T]{elems: elems}, nil
}

// Len returns the arity.
func (a *Array[T]) Len() int {
	return len(a.elems)
}

// At returns the Number at slot i.
// Panics if i is out of range.
func (a *Array[T]) At(i int) *Number[T] {
	if i < 0 || i >= len(a.elems) {
		panic(fmt.Sprintf("dual: index %d out of range for arity %d", i, len(a.elems)))
	}
	return a.elems[i]
}

// Values returns the plain scalar of every slot in order, derivatives
// dropped.
func (a *Array[T]) Values() []T {
	out := make([]T, len(a.elems))
	for i, e := range a.elems {
		out[i] = e.Value()
	}
	return out
}

// AssignValues overwrites each slot's scalar with values[i], keeping every
// slot's channel set and derivatives.
// Panics if the lengths differ; arity is fixed at construction.
func (a *Array[T]) AssignValues(values []T) {
	if len(values) != len(a.elems) {
		panic(fmt.Sprintf("dual: %d values for arity %d", len(values), len(a.elems)))
	}
	for i, v := range values {
		a.elems[i].SetValue(v)
	}
}

// Assign performs the component-wise conversion from another Array: each slot
// takes the corresponding slot's scalar from b while keeping its own channel
// set and derivatives.
// Panics if the arities differ.
func (a *Array[T]) Assign(b *Array[T]) {
	if b.Len() != len(a.elems) {
		panic(fmt.Sprintf("dual: arity mismatch %d != %d", len(a.elems), b.Len()))
	}
	for i := range a.elems {
		a.elems[i].SetValue(b.elems[i].Value())
	}
}

// Clone returns an Array of independent deep copies of every slot.
func (a *Array[T]) Clone() *Array[T] {
	elems := make([]*Number[T], len(a.elems))
	for i, e := range a.elems {
		elems[i] = e.Clone()
	}
	return &Array[T]{elems: elems}
}

// String returns the slots joined by newlines, one Number per line.
func (a *Array[T]) String() string {
	out := ""
	for i, e := range a.elems {
		if i > 0 {
			out += "\n"
		}
		out += e.String()
	}
	return out
}

// Package dual provides the core types for forward-mode automatic
// differentiation: dual numbers with per-channel derivative storage, the
// channel-set algebra, the operator dispatch protocol, and a fixed-arity
// container with elementwise adaptors.
package dual

import (
	"fmt"
	"strings"
)

// Float is the constraint for scalar types a Number can carry.
// Arithmetic follows IEEE-754: domain and range errors surface as NaN/Inf
// values flowing through the computation, never as Go errors.
type Float interface {
	~float32 | ~float64
}

// Number is a dual value: a scalar paired with one partial derivative per
// tracked channel. The tracked channel set is fixed at construction; only the
// stored magnitudes may change afterwards, through SetValue and SetDValue.
//
// A Number is not safe for concurrent mutation. Distinct instances never
// share state, so concurrent read-only use across goroutines is safe.
type Number[T Float] struct {
	value    T
	channels Set
	dvalues  []T // parallel to channels
}

// New creates a Number tracking the given channels.
//
// Every derivative slot is seeded to 1, not 0: a freshly declared variable is
// its own derivative with respect to its own channel. The seed applies to
// every listed channel, including channels the caller only carries along.
//
// Example:
//
//	x := dual.New(5.0, 0)     // x tracks channel 0, dx/d0 = 1
//	y := dual.New(2.0, 1, 2)  // y tracks channels 1 and 2
func New[T Float](value T, channels ...int) *Number[T] {
	return newNumber(value, Set(channels).Clone())
}

// newNumber builds a Number over an already-computed channel set, seeding
// every derivative slot to 1. The set is owned by the new Number; callers
// must not retain it.
func newNumber[T Float](value T, channels Set) *Number[T] {
	dvalues := make([]T, len(channels))
	for i := range dvalues {
		dvalues[i] = 1
	}
	return &Number[T]{value: value, channels: channels, dvalues: dvalues}
}

// Value returns the stored scalar.
func (n *Number[T]) Value() T {
	return n.value
}

// SetValue overwrites the stored scalar. The channel set is unchanged.
func (n *Number[T]) SetValue(v T) {
	n.value = v
}

// DValue returns the stored derivative for channel c.
// Panics if c is not tracked by this Number; asking for an untracked
// channel is a programming error, not a runtime condition.
func (n *Number[T]) DValue(c int) T {
	for i, ch := range n.channels {
		if ch == c {
			return n.dvalues[i]
		}
	}
	panic(fmt.Sprintf("dual: channel %d not tracked (tracked set %v)", c, n.channels))
}

// SetDValue overwrites the stored derivative for channel c.
// Panics if c is not tracked by this Number.
func (n *Number[T]) SetDValue(c int, d T) {
	for i, ch := range n.channels {
		if ch == c {
			n.dvalues[i] = d
			return
		}
	}
	panic(fmt.Sprintf("dual: channel %d not tracked (tracked set %v)", c, n.channels))
}

// Has reports whether channel c is tracked by this Number.
func (n *Number[T]) Has(c int) bool {
	return n.channels.Has(c)
}

// Channels returns a copy of the tracked channel set.
func (n *Number[T]) Channels() Set {
	return n.channels.Clone()
}

// Len returns the number of tracked channels.
func (n *Number[T]) Len() int {
	return len(n.channels)
}

// Scalar returns the value as a plain scalar, dropping all derivative
// information. Use it where a Number must be treated as an ordinary number.
func (n *Number[T]) Scalar() T {
	return n.value
}

// Clone returns an independent deep copy.
func (n *Number[T]) Clone() *Number[T] {
	out := &Number[T]{
		value:    n.value,
		channels: n.channels.Clone(),
		dvalues:  make([]T, len(n.dvalues)),
	}
	copy(out.dvalues, n.dvalues)
	return out
}

// String returns a human-readable representation: the value followed by the
// per-channel derivatives, e.g. "3.5 [0:1 1:2]".
func (n *Number[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v [", n.value)
	for i, c := range n.channels {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d:%v", c, n.dvalues[i])
	}
	b.WriteByte(']')
	return b.String()
}

// Duo is a transient (value, derivative) pair for exactly one channel,
// extracted by the dispatch layer and handed to a strategy's derivative
// formula. It is a view; it owns no storage.
type Duo[T Float] struct {
	V T // operand value
	D T // operand derivative for the channel under consideration
}

// duo extracts the Duo for channel c. The dispatch layer only calls it for
// channels known to be tracked.
func (n *Number[T]) duo(c int) Duo[T] {
	return Duo[T]{V: n.value, D: n.DValue(c)}
}

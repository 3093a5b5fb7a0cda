package dual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeAssignsFreshChannels(t *testing.T) {
	a := Make(0, 1.5, 2.5, 3.5)

	require.Equal(t, 3, a.Len())
	assert.Equal(t, Set{0}, a.At(0).Channels())
	assert.Equal(t, Set{1}, a.At(1).Channels())
	assert.Equal(t, Set{2}, a.At(2).Channels())
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, a.Values())
	assert.Equal(t, 1.0, a.At(1).DValue(1), "slots are seeded like New")
}

func TestMakeStartChannelOffset(t *testing.T) {
	a := Make(5, 1.0, 2.0)

	assert.Equal(t, Set{5}, a.At(0).Channels())
	assert.Equal(t, Set{6}, a.At(1).Channels())
}

func TestNewArraySharesElements(t *testing.T) {
	x := New(1.0, 0)
	a := NewArray(x)
	a.At(0).SetValue(9.0)

	assert.Equal(t, 9.0, x.Value())
}

func TestFromValues(t *testing.T) {
	a, err := FromValues([]Set{{0, 1}, {2}}, []float64{1.0, 2.0})
	require.NoError(t, err)

	assert.Equal(t, Set{0, 1}, a.At(0).Channels())
	assert.Equal(t, Set{2}, a.At(1).Channels())
	assert.Equal(t, []float64{1, 2}, a.Values())
}

func TestFromValuesLengthMismatch(t *testing.T) {
	_, err := FromValues([]Set{{0}}, []float64{1.0, 2.0})
	assert.Error(t, err)
}

func TestAtOutOfRangePanics(t *testing.T) {
	a := Make(0, 1.0)

	assert.Panics(t, func() { a.At(1) })
	assert.Panics(t, func() { a.At(-1) })
}

func TestAssignValues(t *testing.T) {
	a := Make(0, 1.0, 2.0)
	a.At(0).SetDValue(0, 3.0)
	a.AssignValues([]float64{7.0, 8.0})

	assert.Equal(t, []float64{7, 8}, a.Values())
	assert.Equal(t, 3.0, a.At(0).DValue(0), "derivatives survive value assignment")
	assert.Panics(t, func() { a.AssignValues([]float64{1}) })
}

func TestAssignComponentwise(t *testing.T) {
	a := Make(0, 1.0, 2.0)
	b := Make(10, 5.0, 6.0)
	a.Assign(b)

	assert.Equal(t, []float64{5, 6}, a.Values())
	assert.Equal(t, Set{0}, a.At(0).Channels(), "destination keeps its own channels")
	assert.Panics(t, func() { a.Assign(Make(0, 1.0)) })
}

func TestArrayClone(t *testing.T) {
	a := Make(0, 1.0)
	b := a.Clone()
	b.At(0).SetValue(9.0)

	assert.Equal(t, 1.0, a.At(0).Value())
}

func TestArrayString(t *testing.T) {
	a := Make(0, 1.5, 2.5)
	assert.Equal(t, "1.5 [0:1]\n2.5 [1:1]", a.String())
}

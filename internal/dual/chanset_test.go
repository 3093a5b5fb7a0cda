package dual

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetHas(t *testing.T) {
	s := Set{3, 0, 7}

	assert.True(t, s.Has(3))
	assert.True(t, s.Has(0))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(1))
	assert.False(t, Set{}.Has(0))
}

func TestSetClone(t *testing.T) {
	s := Set{1, 2}
	c := s.Clone()
	c[0] = 9

	assert.Equal(t, Set{1, 2}, s, "clone must not alias the original")
}

func TestDedup(t *testing.T) {
	assert.Equal(t, Set{2, 0, 1}, Dedup(Set{2, 0, 2, 1, 0}))
	assert.Equal(t, Set{}, Dedup(Set{}))
}

func TestUnion(t *testing.T) {
	// A's elements first, then B's elements not already in A.
	assert.Equal(t, Set{0, 1, 2, 3}, Union(Set{0, 1, 2}, Set{1, 3, 2}))
	assert.Equal(t, Set{5}, Union(Set{5}, Set{5}))
	assert.Equal(t, Set{1, 2}, Union(Set{}, Set{1, 2}))
	assert.Equal(t, Set{1, 2}, Union(Set{1, 2}, Set{}))
}

func TestIntersection(t *testing.T) {
	// A's original order wins.
	assert.Equal(t, Set{2, 1}, Intersection(Set{0, 2, 1}, Set{1, 2, 3}))
	assert.Equal(t, Set{}, Intersection(Set{0, 1}, Set{2, 3}))
	assert.Equal(t, Set{}, Intersection(Set{}, Set{1}))
}

func TestDifference(t *testing.T) {
	assert.Equal(t, Set{0, 3}, Difference(Set{0, 1, 3}, Set{1, 2}))
	assert.Equal(t, Set{0, 1}, Difference(Set{0, 1}, Set{}))
	assert.Equal(t, Set{}, Difference(Set{}, Set{0}))
}

func TestConcat(t *testing.T) {
	// Straight concatenation, no deduplication.
	assert.Equal(t, Set{0, 1, 1, 2}, Concat(Set{0, 1}, Set{1}, Set{2}))
	assert.Equal(t, Set{}, Concat())
}

func TestSequence(t *testing.T) {
	assert.Equal(t, Set{4, 5, 6}, Sequence(4, 3))
	assert.Equal(t, Set{}, Sequence(0, 0))
}

func TestMergeOrdering(t *testing.T) {
	// The canonical layout is unique-left, common, unique-right.
	common, onlyL, onlyR, result := Merge(Set{0, 1, 2}, Set{1, 2, 3})

	assert.Equal(t, Set{1, 2}, common)
	assert.Equal(t, Set{0}, onlyL)
	assert.Equal(t, Set{3}, onlyR)
	assert.Equal(t, Set{0, 1, 2, 3}, result)
}

func TestMergeDisjoint(t *testing.T) {
	common, onlyL, onlyR, result := Merge(Set{4, 0}, Set{2, 7})

	assert.Empty(t, common)
	assert.Equal(t, Set{4, 0}, onlyL)
	assert.Equal(t, Set{2, 7}, onlyR)
	assert.Equal(t, Set{4, 0, 2, 7}, result)
}

func TestMergeIdentical(t *testing.T) {
	common, onlyL, onlyR, result := Merge(Set{0, 1}, Set{0, 1})

	assert.Equal(t, Set{0, 1}, common)
	assert.Empty(t, onlyL)
	assert.Empty(t, onlyR)
	assert.Equal(t, Set{0, 1}, result)
}

func TestMergeEmpty(t *testing.T) {
	_, _, _, result := Merge(Set{}, Set{})
	assert.Empty(t, result)

	_, onlyL, _, result := Merge(Set{1}, Set{})
	assert.Equal(t, Set{1}, onlyL)
	assert.Equal(t, Set{1}, result)
}

// randomSet draws a distinct ordered set of channels in [0, 8).
func randomSet(rng *rand.Rand) Set {
	s := Set{}
	for _, c := range rng.Perm(8)[:rng.Intn(6)] {
		s = append(s, c)
	}
	return s
}

// TestMergeProperties pins the dynamic algebra to the static contract: the
// three parts are disjoint, cover exactly the union of the inputs, preserve
// operand ordering, and concatenate in unique-left/common/unique-right order.
func TestMergeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		l, r := randomSet(rng), randomSet(rng)
		common, onlyL, onlyR, result := Merge(l, r)

		require.Equal(t, result, Concat(onlyL, common, onlyR), "layout must be onlyL|common|onlyR")
		require.Equal(t, len(result), len(Dedup(result)), "result must hold distinct channels")

		for _, c := range common {
			require.True(t, l.Has(c) && r.Has(c))
		}
		for _, c := range onlyL {
			require.True(t, l.Has(c) && !r.Has(c))
		}
		for _, c := range onlyR {
			require.True(t, r.Has(c) && !l.Has(c))
		}

		union := Union(l, r)
		require.Equal(t, len(union), len(result))
		for _, c := range union {
			require.True(t, result.Has(c), "merge must cover the union")
		}

		// Each part preserves its source operand's relative order.
		require.Equal(t, Intersection(l, r), common)
		require.Equal(t, Difference(l, r), onlyL)
		require.Equal(t, Difference(r, l), onlyR)
	}
}

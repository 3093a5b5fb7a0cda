package ops

import (
	"github.com/born-ml/dual/internal/dual"
)

// Sum folds an Array with addition, left to right. Each fold step merges
// channel sets through the dispatch protocol, so the result tracks the union
// of every slot's channels.
func Sum[T dual.Float](a *dual.Array[T]) *dual.Number[T] {
	return dual.Reduce(a, Add[T])
}

// Prod folds an Array with multiplication, left to right.
func Prod[T dual.Float](a *dual.Array[T]) *dual.Number[T] {
	return dual.Reduce(a, Mul[T])
}

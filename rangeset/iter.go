package rangeset

import (
	"iter"

	"github.com/vipcxj/rangeset/integer"
)

// Iterator walks the values of a Set in ascending order.
type Iterator[T integer.Integer] struct {
	bounds  []T
	index   int
	value   T
	started bool
}

// Iter returns an iterator positioned before the smallest value of s. Every
// call starts a fresh traversal.
func (s Set[T]) Iter() *Iterator[T] {
	return &Iterator[T]{bounds: s.bounds}
}

// Next returns the next value, or false once every value has been returned.
func (it *Iterator[T]) Next() (T, bool) {
	if it.index >= len(it.bounds) {
		return 0, false
	}
	if !it.started {
		it.started = true
		it.value = it.bounds[0]
		return it.value, true
	}
	if it.value == it.bounds[it.index+1] {
		it.index += 2
		if it.index >= len(it.bounds) {
			return 0, false
		}
		it.value = it.bounds[it.index]
		return it.value, true
	}
	// value is below the upper bound, so this cannot overflow
	it.value++
	return it.value, true
}

// All returns the values of s in ascending order.
func (s Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Intervals returns the closed intervals of s in ascending order.
func (s Set[T]) Intervals() iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for i := 0; i < len(s.bounds); i += 2 {
			if !yield(s.bounds[i], s.bounds[i+1]) {
				return
			}
		}
	}
}

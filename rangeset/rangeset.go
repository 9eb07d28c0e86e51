// Package rangeset implements immutable sets of integers stored as sorted,
// disjoint closed intervals.
//
// A Set keeps its intervals in one flat slice of bounds: even indexes hold
// lower bounds and odd indexes hold upper bounds. The slice is strictly
// increasing and no two stored intervals touch, so every set has exactly one
// representation. The empty set has no bounds and the whole domain of T is
// [Min, Max].
//
// Every operation returns a new Set; none of them modify their receiver or
// argument, so a Set may be shared between goroutines without locking.
package rangeset

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/vipcxj/rangeset/integer"
)

// ErrMalformed is returned when a bound sequence breaks the canonical form.
var ErrMalformed = errors.New("malformed bound sequence")

// Ranger is anything that normalizes to a closed pair. ok is false when it
// holds no value. bound.Range and bound.Any implement it.
type Ranger[T integer.Integer] interface {
	Bounds() (min, max T, ok bool)
}

// Set is an immutable set of values of T. The zero value is the empty set.
type Set[T integer.Integer] struct {
	bounds []T
}

// Empty returns the set holding no value.
func Empty[T integer.Integer]() Set[T] {
	return Set[T]{}
}

// Total returns the set holding every value of T.
func Total[T integer.Integer]() Set[T] {
	return Set[T]{bounds: []T{integer.Min[T](), integer.Max[T]()}}
}

// New returns the set holding [min, max], or the empty set when max < min.
func New[T integer.Integer](min, max T) Set[T] {
	if max < min {
		return Empty[T]()
	}
	return Set[T]{bounds: []T{min, max}}
}

// FromRange returns the set holding the values of r.
func FromRange[T integer.Integer](r Ranger[T]) Set[T] {
	min, max, ok := r.Bounds()
	if !ok {
		return Empty[T]()
	}
	return New(min, max)
}

type pair[T integer.Integer] struct {
	min, max T
}

// FromRanges returns the union of ranges. Empty ranges are dropped; the rest
// are sorted by lower bound and merged whenever they overlap or touch.
func FromRanges[T integer.Integer](ranges ...Ranger[T]) Set[T] {
	pairs := make([]pair[T], 0, len(ranges))
	for _, r := range ranges {
		if min, max, ok := r.Bounds(); ok && min <= max {
			pairs = append(pairs, pair[T]{min, max})
		}
	}
	if len(pairs) == 0 {
		return Empty[T]()
	}
	slices.SortFunc(pairs, func(a, b pair[T]) int {
		switch {
		case a.min < b.min:
			return -1
		case a.min > b.min:
			return 1
		}
		return 0
	})

	bounds := make([]T, 0, len(pairs)*2)
	bounds = append(bounds, pairs[0].min, pairs[0].max)
	for _, p := range pairs[1:] {
		last := len(bounds) - 1
		if touches(bounds[last], p.min) {
			bounds[last] = max(bounds[last], p.max)
		} else {
			bounds = append(bounds, p.min, p.max)
		}
		if bounds[len(bounds)-1] == integer.Max[T]() {
			// nothing sorts past the end of the domain
			break
		}
	}
	return Set[T]{bounds: slices.Clip(bounds)}
}

// touches reports whether an interval starting at lower overlaps or is
// adjacent to one ending at upper. It never computes upper+1 at the end of
// the domain.
func touches[T integer.Integer](upper, lower T) bool {
	if lower <= upper {
		return true
	}
	next, ok := integer.Next(upper)
	return ok && lower == next
}

// FromBounds builds a set from a flat bound sequence as returned by Bounds.
// The sequence must already be canonical: even length, strictly increasing,
// and with no two intervals adjacent.
func FromBounds[T integer.Integer](bounds []T) (Set[T], error) {
	if len(bounds)%2 != 0 {
		return Set[T]{}, errors.Wrapf(ErrMalformed, "odd number of bounds (%d)", len(bounds))
	}
	for i := 0; i < len(bounds); i += 2 {
		if bounds[i] > bounds[i+1] {
			return Set[T]{}, errors.Wrapf(ErrMalformed, "interval %d: lower bound %v above upper bound %v", i/2, bounds[i], bounds[i+1])
		}
		if i > 0 && touches(bounds[i-1], bounds[i]) {
			return Set[T]{}, errors.Wrapf(ErrMalformed, "interval %d: [%v,%v] overlaps or touches the previous interval ending at %v", i/2, bounds[i], bounds[i+1], bounds[i-1])
		}
	}
	if len(bounds) == 0 {
		return Empty[T](), nil
	}
	return Set[T]{bounds: slices.Clone(bounds)}, nil
}

// Bounds returns a copy of the flat bound sequence.
func (s Set[T]) Bounds() []T {
	return slices.Clone(s.bounds)
}

// Len returns the number of disjoint intervals in s.
func (s Set[T]) Len() int {
	return len(s.bounds) / 2
}

// First returns the smallest value of s, or false when s is empty.
func (s Set[T]) First() (T, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	return s.bounds[0], true
}

// Last returns the largest value of s, or false when s is empty.
func (s Set[T]) Last() (T, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	return s.bounds[len(s.bounds)-1], true
}

// IsEmpty reports whether s holds no value.
func (s Set[T]) IsEmpty() bool {
	return len(s.bounds) == 0
}

// IsTotal reports whether s holds every value of T.
func (s Set[T]) IsTotal() bool {
	return len(s.bounds) >= 2 && s.bounds[0] == integer.Min[T]() && s.bounds[1] >= integer.Max[T]()
}

// Equal reports whether s and o hold the same values.
func (s Set[T]) Equal(o Set[T]) bool {
	return slices.Equal(s.bounds, o.bounds)
}

// Contains reports whether v is in s.
func (s Set[T]) Contains(v T) bool {
	if s.IsEmpty() {
		return false
	}
	first, last := s.bounds[0], s.bounds[len(s.bounds)-1]
	if v < first || v > last {
		return false
	}
	// position of the first bound that is not below v
	pos, _ := slices.BinarySearch(s.bounds, v)
	// an odd position means v sits between a lower bound and its upper bound
	return s.bounds[pos] == v || pos%2 != 0
}

// ContainsAll reports whether every value of o is also in s.
func (s Set[T]) ContainsAll(o Set[T]) bool {
	if s.IsTotal() || o.IsEmpty() {
		return true
	}
	if s.IsEmpty() || o.IsTotal() {
		return false
	}

	i, j := 0, 0
	for j < len(o.bounds) {
		if i == len(s.bounds) {
			return false
		}
		sMin, sMax := s.bounds[i], s.bounds[i+1]
		oMin, oMax := o.bounds[j], o.bounds[j+1]
		switch {
		case sMin <= oMin && sMax >= oMax:
			j += 2
		case sMax > oMin:
			// the interval of s reaches into the interval of o without enclosing it
			return false
		default:
			i += 2
		}
	}
	return true
}

// Count returns the number of values in s. ok is false when the count does
// not fit in a uint64, which only happens for the total set of a 64-bit type.
func (s Set[T]) Count() (n uint64, ok bool) {
	for i := 0; i < len(s.bounds); i += 2 {
		// modular uint64 arithmetic gives the exact width for signed T too
		width := uint64(s.bounds[i+1]) - uint64(s.bounds[i]) + 1
		if width == 0 || n+width < n {
			return 0, false
		}
		n += width
	}
	return n, true
}

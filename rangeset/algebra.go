package rangeset

import "github.com/vipcxj/rangeset/integer"

// Union returns the set of values in s or in o.
func (s Set[T]) Union(o Set[T]) Set[T] {
	if s.IsEmpty() || o.IsTotal() {
		return o
	}
	if o.IsEmpty() || s.IsTotal() {
		return s
	}

	bounds := make([]T, 0, len(s.bounds)+len(o.bounds))
	i, j := 0, 0
	for i < len(s.bounds) || j < len(o.bounds) {
		var lo, hi T
		if j == len(o.bounds) || (i < len(s.bounds) && s.bounds[i] <= o.bounds[j]) {
			lo, hi = s.bounds[i], s.bounds[i+1]
			i += 2
		} else {
			lo, hi = o.bounds[j], o.bounds[j+1]
			j += 2
		}

		last := len(bounds) - 1
		switch {
		case last < 0 || !touches(bounds[last], lo):
			bounds = append(bounds, lo, hi)
		case hi > bounds[last]:
			bounds[last] = hi
		}
		if bounds[len(bounds)-1] == integer.Max[T]() {
			break
		}
	}
	return Set[T]{bounds: bounds}
}

// HasIntersection reports whether s and o share at least one value.
func (s Set[T]) HasIntersection(o Set[T]) bool {
	i, j := 0, 0
	for i < len(s.bounds) && j < len(o.bounds) {
		switch {
		case s.bounds[i+1] < o.bounds[j]:
			i += 2
		case o.bounds[j+1] < s.bounds[i]:
			j += 2
		default:
			return true
		}
	}
	return false
}

// Intersection returns the set of values in both s and o.
func (s Set[T]) Intersection(o Set[T]) Set[T] {
	if s.IsEmpty() || o.IsEmpty() {
		return Empty[T]()
	}
	if s.IsTotal() {
		return o
	}
	if o.IsTotal() {
		return s
	}

	var bounds []T
	i, j := 0, 0
	for i < len(s.bounds) && j < len(o.bounds) {
		sMin, sMax := s.bounds[i], s.bounds[i+1]
		oMin, oMax := o.bounds[j], o.bounds[j+1]
		switch {
		case sMax < oMin:
			i += 2
		case oMax < sMin:
			j += 2
		default:
			bounds = append(bounds, max(sMin, oMin), min(sMax, oMax))
			if sMax < oMax {
				i += 2
			} else {
				j += 2
			}
		}
	}
	return Set[T]{bounds: bounds}
}

// Complement returns the set of values of T that are not in s.
func (s Set[T]) Complement() Set[T] {
	if s.IsEmpty() {
		return Total[T]()
	}
	if s.IsTotal() {
		return Empty[T]()
	}

	bounds := make([]T, 0, len(s.bounds)+2)
	if gapHi, ok := integer.Prev(s.bounds[0]); ok {
		bounds = append(bounds, integer.Min[T](), gapHi)
	}
	for i := 1; i < len(s.bounds); i += 2 {
		gapLo, ok := integer.Next(s.bounds[i])
		if !ok {
			// the last interval runs to the end of the domain
			break
		}
		gapHi := integer.Max[T]()
		if i+1 < len(s.bounds) {
			// stored intervals never touch, so the next lower bound is above Min
			gapHi, _ = integer.Prev(s.bounds[i+1])
		}
		bounds = append(bounds, gapLo, gapHi)
	}
	return Set[T]{bounds: bounds}
}

// Difference returns the set of values in s but not in o.
func (s Set[T]) Difference(o Set[T]) Set[T] {
	return s.Intersection(o.Complement())
}

// SymmetricDifference returns the set of values in exactly one of s and o.
func (s Set[T]) SymmetricDifference(o Set[T]) Set[T] {
	return s.Difference(o).Union(o.Difference(s))
}

// Package bound converts range literals with open, closed or unbounded
// endpoints into the closed (min, max) pairs a range set is built from.
package bound

import (
	"fmt"

	"github.com/vipcxj/rangeset/integer"
)

// Endpoint is one side of a Range. Value is ignored when Kind is
// KindUnbounded.
type Endpoint[T integer.Integer] struct {
	Kind  Kind
	Value T
}

// Unbounded returns an endpoint reaching the edge of the domain.
func Unbounded[T integer.Integer]() Endpoint[T] {
	return Endpoint[T]{Kind: KindUnbounded}
}

// Included returns an endpoint that keeps v.
func Included[T integer.Integer](v T) Endpoint[T] {
	return Endpoint[T]{Kind: KindIncluded, Value: v}
}

// Excluded returns an endpoint that leaves v out.
func Excluded[T integer.Integer](v T) Endpoint[T] {
	return Endpoint[T]{Kind: KindExcluded, Value: v}
}

// Range is a contiguous span of T described by two independent endpoints.
// Every literal form (a..b, a..=b, a.., ..b, ..=b, .., (a,b) and so on) is a
// Range with a particular pair of endpoint kinds.
type Range[T integer.Integer] struct {
	Low  Endpoint[T]
	High Endpoint[T]
}

// Between returns the range limited by low and high.
func Between[T integer.Integer](low, high Endpoint[T]) Range[T] {
	return Range[T]{Low: low, High: high}
}

// Full is the literal `..`: the whole domain.
func Full[T integer.Integer]() Range[T] {
	return Range[T]{Low: Unbounded[T](), High: Unbounded[T]()}
}

// From is the literal `min..`.
func From[T integer.Integer](min T) Range[T] {
	return Range[T]{Low: Included(min), High: Unbounded[T]()}
}

// After is every value strictly greater than min.
func After[T integer.Integer](min T) Range[T] {
	return Range[T]{Low: Excluded(min), High: Unbounded[T]()}
}

// To is the literal `..max`, max excluded.
func To[T integer.Integer](max T) Range[T] {
	return Range[T]{Low: Unbounded[T](), High: Excluded(max)}
}

// ToInclusive is the literal `..=max`.
func ToInclusive[T integer.Integer](max T) Range[T] {
	return Range[T]{Low: Unbounded[T](), High: Included(max)}
}

// HalfOpen is the literal `min..max`, max excluded.
func HalfOpen[T integer.Integer](min, max T) Range[T] {
	return Range[T]{Low: Included(min), High: Excluded(max)}
}

// Closed is the literal `min..=max`.
func Closed[T integer.Integer](min, max T) Range[T] {
	return Range[T]{Low: Included(min), High: Included(max)}
}

// Open excludes both min and max.
func Open[T integer.Integer](min, max T) Range[T] {
	return Range[T]{Low: Excluded(min), High: Excluded(max)}
}

// Single holds exactly v.
func Single[T integer.Integer](v T) Range[T] {
	return Closed(v, v)
}

// Bounds normalizes r to the closed pair [min, max]. An excluded low end
// moves up by one, an excluded high end moves down by one and unbounded ends
// take the domain limits. ok is false when r holds no value, which includes
// excluding the domain's own maximum on the low side or its minimum on the
// high side.
func (r Range[T]) Bounds() (min, max T, ok bool) {
	switch r.Low.Kind {
	case KindIncluded:
		min = r.Low.Value
	case KindExcluded:
		if min, ok = integer.Next(r.Low.Value); !ok {
			return min, max, false
		}
	default:
		min = integer.Min[T]()
	}
	switch r.High.Kind {
	case KindIncluded:
		max = r.High.Value
	case KindExcluded:
		if max, ok = integer.Prev(r.High.Value); !ok {
			return min, max, false
		}
	default:
		max = integer.Max[T]()
	}
	return min, max, min <= max
}

// IsEmpty reports whether r holds no value.
func (r Range[T]) IsEmpty() bool {
	_, _, ok := r.Bounds()
	return !ok
}

// Contains reports whether v lies in r.
func (r Range[T]) Contains(v T) bool {
	min, max, ok := r.Bounds()
	return ok && min <= v && v <= max
}

// String renders r in a form Parse reads back.
func (r Range[T]) String() string {
	if r.Low.Kind == KindIncluded && r.High.Kind == KindIncluded && r.Low.Value == r.High.Value {
		return integer.Format(r.Low.Value)
	}
	if r.Low.Kind == KindExcluded || r.High.Kind == KindExcluded {
		left, right := "[", "]"
		if r.Low.Kind != KindIncluded {
			left = "("
		}
		if r.High.Kind != KindIncluded {
			right = ")"
		}
		return fmt.Sprintf("%s%s,%s%s", left, endpointText(r.Low), endpointText(r.High), right)
	}
	// only included and unbounded ends are left
	switch {
	case r.Low.Kind == KindUnbounded && r.High.Kind == KindUnbounded:
		return ".."
	case r.Low.Kind == KindUnbounded:
		return "..=" + integer.Format(r.High.Value)
	case r.High.Kind == KindUnbounded:
		return integer.Format(r.Low.Value) + ".."
	}
	return integer.Format(r.Low.Value) + "..=" + integer.Format(r.High.Value)
}

func endpointText[T integer.Integer](e Endpoint[T]) string {
	if e.Kind == KindUnbounded {
		return ""
	}
	return integer.Format(e.Value)
}

// Any is a range already normalized to its closed pair. It lets ranges of
// any literal form share one slice.
type Any[T integer.Integer] struct {
	min, max T
	ok       bool
}

// AnyOf normalizes r.
func AnyOf[T integer.Integer](r Range[T]) Any[T] {
	min, max, ok := r.Bounds()
	return Any[T]{min: min, max: max, ok: ok}
}

// Pair is the closed pair [min, max]; it is empty when max < min.
func Pair[T integer.Integer](min, max T) Any[T] {
	return Any[T]{min: min, max: max, ok: min <= max}
}

// Bounds returns the normalized pair.
func (a Any[T]) Bounds() (min, max T, ok bool) {
	return a.min, a.max, a.ok
}

// Package integer describes the fixed-width integer types a range set can be
// built over, and the boundary arithmetic those sets rely on.
package integer

import (
	"strconv"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Integer is satisfied by every Go fixed-width integer type, including named
// types whose underlying type is one of them.
type Integer interface {
	constraints.Integer
}

// Signed reports whether T is a signed integer type.
func Signed[T Integer]() bool {
	var zero T
	return ^zero < zero
}

// Bits returns the width of T in bits.
func Bits[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// Min returns the smallest value representable by T.
func Min[T Integer]() T {
	if !Signed[T]() {
		return 0
	}
	// 1 << (bits-1) wraps to the most negative value in two's complement.
	return One[T]() << (Bits[T]() - 1)
}

// Max returns the largest value representable by T.
func Max[T Integer]() T {
	return ^Min[T]()
}

// One returns the successor step of T.
func One[T Integer]() T {
	return 1
}

// Next returns v+1, or false when v is already Max[T].
func Next[T Integer](v T) (T, bool) {
	if v == Max[T]() {
		return v, false
	}
	return v + One[T](), true
}

// Prev returns v-1, or false when v is already Min[T].
func Prev[T Integer](v T) (T, bool) {
	if v == Min[T]() {
		return v, false
	}
	return v - One[T](), true
}

// Parse reads s as a value of T. Prefixes 0x, 0o and 0b select the base;
// values that do not fit in T are rejected.
func Parse[T Integer](s string) (T, error) {
	if s == "" {
		return 0, errors.New("empty integer")
	}
	if Signed[T]() {
		n, err := strconv.ParseInt(s, 0, Bits[T]())
		if err != nil {
			return 0, errors.Wrapf(err, "invalid integer %q", s)
		}
		return T(n), nil
	}
	n, err := strconv.ParseUint(s, 0, Bits[T]())
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer %q", s)
	}
	return T(n), nil
}

// Format renders v in base 10.
func Format[T Integer](v T) string {
	if Signed[T]() {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

package integer_test

import (
	"math"
	"testing"

	"github.com/vipcxj/rangeset/integer"
)

type limitsTest[T integer.Integer] struct {
	min, max T
	bits     int
	signed   bool
}

func testLimits[T integer.Integer](t *testing.T, want limitsTest[T]) {
	t.Helper()
	if got := integer.Min[T](); got != want.min {
		t.Errorf("Min() = %v, want %v", got, want.min)
	}
	if got := integer.Max[T](); got != want.max {
		t.Errorf("Max() = %v, want %v", got, want.max)
	}
	if got := integer.Bits[T](); got != want.bits {
		t.Errorf("Bits() = %d, want %d", got, want.bits)
	}
	if got := integer.Signed[T](); got != want.signed {
		t.Errorf("Signed() = %v, want %v", got, want.signed)
	}
	if got := integer.One[T](); got != 1 {
		t.Errorf("One() = %v, want 1", got)
	}
}

type percent uint8

func TestLimits(t *testing.T) {
	t.Parallel()
	t.Run("[uint8]", func(t *testing.T) { testLimits(t, limitsTest[uint8]{0, math.MaxUint8, 8, false}) })
	t.Run("[uint16]", func(t *testing.T) { testLimits(t, limitsTest[uint16]{0, math.MaxUint16, 16, false}) })
	t.Run("[uint32]", func(t *testing.T) { testLimits(t, limitsTest[uint32]{0, math.MaxUint32, 32, false}) })
	t.Run("[uint64]", func(t *testing.T) { testLimits(t, limitsTest[uint64]{0, math.MaxUint64, 64, false}) })
	t.Run("[uint]", func(t *testing.T) { testLimits(t, limitsTest[uint]{0, math.MaxUint, 32 << (^uint(0) >> 63), false}) })
	t.Run("[int8]", func(t *testing.T) { testLimits(t, limitsTest[int8]{math.MinInt8, math.MaxInt8, 8, true}) })
	t.Run("[int16]", func(t *testing.T) { testLimits(t, limitsTest[int16]{math.MinInt16, math.MaxInt16, 16, true}) })
	t.Run("[int32]", func(t *testing.T) { testLimits(t, limitsTest[int32]{math.MinInt32, math.MaxInt32, 32, true}) })
	t.Run("[int64]", func(t *testing.T) { testLimits(t, limitsTest[int64]{math.MinInt64, math.MaxInt64, 64, true}) })
	t.Run("[int]", func(t *testing.T) { testLimits(t, limitsTest[int]{math.MinInt, math.MaxInt, 32 << (^uint(0) >> 63), true}) })
	t.Run("[named]", func(t *testing.T) { testLimits(t, limitsTest[percent]{0, 255, 8, false}) })
}

func TestNextPrev(t *testing.T) {
	t.Parallel()
	if v, ok := integer.Next[uint8](254); !ok || v != 255 {
		t.Fatalf("Next(254) = %v, %v; want 255, true", v, ok)
	}
	if _, ok := integer.Next[uint8](255); ok {
		t.Fatalf("Next(255) must report the domain edge")
	}
	if v, ok := integer.Prev[int8](-127); !ok || v != -128 {
		t.Fatalf("Prev(-127) = %v, %v; want -128, true", v, ok)
	}
	if _, ok := integer.Prev[int8](math.MinInt8); ok {
		t.Fatalf("Prev(MinInt8) must report the domain edge")
	}
	if _, ok := integer.Prev[uint64](0); ok {
		t.Fatalf("Prev(0) must report the domain edge for unsigned types")
	}
}

func TestParse(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in      string
		want    int16
		wantErr bool
	}{
		{"0", 0, false},
		{"-32768", math.MinInt16, false},
		{"32767", math.MaxInt16, false},
		{"0x10", 16, false},
		{"32768", 0, true},
		{"", 0, true},
		{"x", 0, true},
	}
	for _, tc := range cases {
		got, err := integer.Parse[int16](tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if !tc.wantErr && got != tc.want {
			t.Fatalf("Parse(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
	if _, err := integer.Parse[uint8]("-1"); err == nil {
		t.Fatalf("Parse[uint8](-1) must fail")
	}
	if got, err := integer.Parse[uint8]("255"); err != nil || got != 255 {
		t.Fatalf("Parse[uint8](255) = %v, %v", got, err)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()
	if got := integer.Format[int8](-128); got != "-128" {
		t.Fatalf("Format(-128) = %q", got)
	}
	if got := integer.Format[uint64](math.MaxUint64); got != "18446744073709551615" {
		t.Fatalf("Format(MaxUint64) = %q", got)
	}
}

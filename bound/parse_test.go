package bound

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestParse_ValidAndString(t *testing.T) {
	tests := []struct {
		in      string
		want    Range[int32]
		wantStr string
	}{
		{"5", Single[int32](5), "5"},
		{" =5 ", Single[int32](5), "5"},
		{">5", After[int32](5), "(5,)"},
		{">=5", From[int32](5), "5.."},
		{"<5", To[int32](5), "(,5)"},
		{"<=-5", ToInclusive[int32](-5), "..=-5"},
		{"[1,3]", Closed[int32](1, 3), "1..=3"},
		{"[1,3)", HalfOpen[int32](1, 3), "[1,3)"},
		{"(1,3)", Open[int32](1, 3), "(1,3)"},
		{"( , 3]", ToInclusive[int32](3), "..=3"},
		{"(1,)", After[int32](1), "(1,)"},
		{"(,)", Full[int32](), ".."},
		{"3..5", HalfOpen[int32](3, 5), "[3,5)"},
		{"3..=5", Closed[int32](3, 5), "3..=5"},
		{"-3..", From[int32](-3), "-3.."},
		{"..5", To[int32](5), "(,5)"},
		{"..=5", ToInclusive[int32](5), "..=5"},
		{"..", Full[int32](), ".."},
		{"0x10..=0x20", Closed[int32](16, 32), "16..=32"},
		{"9..3", HalfOpen[int32](9, 3), "[9,3)"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse[int32](tc.in)
			if err != nil {
				t.Fatalf("unexpected error parsing %q: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
			if s := got.String(); s != tc.wantStr {
				t.Fatalf("String() = %q, want %q", s, tc.wantStr)
			}
			back, err := Parse[int32](got.String())
			if err != nil {
				t.Fatalf("String() output %q does not parse: %v", got.String(), err)
			}
			if back != got {
				t.Fatalf("round trip %q: got %+v want %+v", got.String(), back, got)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	errCases := []struct {
		in  string
		sub string
	}{
		{"", "empty range"},
		{"[,5]", "unbounded side must be open"},
		{"(1,2,3)", "invalid integer"},
		{"[1 2]", "missing ','"},
		{"1..=", "missing upper bound"},
		{">x", "invalid integer"},
		{"abc", "unrecognized range format"},
		{"300", "unrecognized"},
	}
	for _, tc := range errCases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := Parse[uint8](tc.in)
			if err == nil {
				t.Fatalf("expected error parsing %q, got nil", tc.in)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("error for %q is not ErrSyntax: %v", tc.in, err)
			}
			if tc.sub != "" && !strings.Contains(err.Error(), tc.sub) {
				t.Fatalf("error for %q does not contain %q: %v", tc.in, tc.sub, err)
			}
		})
	}
}

func TestParseList(t *testing.T) {
	got, err := ParseList[uint8](" 9..15;23..18  3..=5;4 ")
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}
	want := []Range[uint8]{HalfOpen[uint8](9, 15), HalfOpen[uint8](23, 18), Closed[uint8](3, 5), Single[uint8](4)}
	if len(got) != len(want) {
		t.Fatalf("ParseList returned %d ranges, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("range %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if empty, err := ParseList[uint8]("  ;; "); err != nil || len(empty) != 0 {
		t.Fatalf("blank list = %v, %v", empty, err)
	}
	if _, err := ParseList[uint8]("1;x"); err == nil {
		t.Fatalf("expected error for bad token")
	}
}

func TestParseList_SpacesInsideBrackets(t *testing.T) {
	tests := []struct {
		in   string
		want []Range[int]
	}{
		{"[1, 5]", []Range[int]{Closed(1, 5)}},
		{" ( , 3] 7;[ 9 ,12 )", []Range[int]{ToInclusive(3), Single(7), HalfOpen(9, 12)}},
		{"[1, 5];(8,)", []Range[int]{Closed(1, 5), After(8)}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseList[int](tc.in)
			if err != nil {
				t.Fatalf("ParseList(%q): %v", tc.in, err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("ParseList(%q) = %v, want %v", tc.in, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("range %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
	if _, err := ParseList[int]("[1, 5"); err == nil {
		t.Fatalf("expected error for an unclosed bracket")
	}
}

func TestParseNaturalList(t *testing.T) {
	tests := []struct {
		in   string
		want []Range[uint16]
	}{
		{"", nil},
		{"all", []Range[uint16]{From[uint16](0)}},
		{"3", []Range[uint16]{Single[uint16](3)}},
		{"0-3,8-11", []Range[uint16]{Closed[uint16](0, 3), Closed[uint16](8, 11)}},
		{"5-", []Range[uint16]{From[uint16](5)}},
		{"-4", []Range[uint16]{Closed[uint16](0, 4)}},
		{"1_3-5_7-7", []Range[uint16]{Single[uint16](1), Closed[uint16](3, 5), Closed[uint16](7, 7)}},
		{"7,1", []Range[uint16]{Single[uint16](7), Single[uint16](1)}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseNaturalList[uint16](tc.in)
			if err != nil {
				t.Fatalf("unexpected error parsing %q: %v", tc.in, err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("range %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestParseNaturalList_Errors(t *testing.T) {
	errCases := []struct {
		in  string
		sub string
	}{
		{"1--2", "invalid token"},
		{"3-1", "min > max"},
		{"a-b", "not natural number"},
		{"2-b", "not natural number"},
		{"a-3", "not natural number"},
		{"-", "invalid token"},
		{"x", "not natural number"},
		{"1-2-3", "invalid token"},
		{"+1", "not natural number"},
	}
	for _, tc := range errCases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := ParseNaturalList[int](tc.in)
			if err == nil {
				t.Fatalf("expected error parsing %q, got nil", tc.in)
			}
			if !strings.Contains(err.Error(), tc.sub) {
				t.Fatalf("error for %q does not contain %q: %v", tc.in, tc.sub, err)
			}
		})
	}
}

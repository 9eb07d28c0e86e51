package bound

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/vipcxj/rangeset/integer"
)

// ErrSyntax is the cause of every error returned by the parsers in this
// package.
var ErrSyntax = errors.New("invalid range syntax")

// Parse reads a single range.
//
// Supported formats:
//   - N
//   - =N
//   - >N, >=N, <N, <=N
//   - (min,max), (min,max], [min,max), [min,max]
//   - (,max), (min,), (,max] etc.
//   - min..max, min..=max, min.., ..max, ..=max, ..
//
// Spaces are ignored. In interval notation an unbounded side must be open
// ('(' or ')'). A reversed range such as 9..3 is not an error: it simply
// holds no value.
func Parse[T integer.Integer](value string) (Range[T], error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return Range[T]{}, errors.Wrap(ErrSyntax, "empty range")
	}

	num := func(tok string) (T, error) {
		n, err := integer.Parse[T](strings.TrimSpace(tok))
		if err != nil {
			return 0, errors.Wrapf(ErrSyntax, "%v in %q", err, value)
		}
		return n, nil
	}

	// prefix operators
	for _, op := range []string{">=", "<=", "=", ">", "<"} {
		if !strings.HasPrefix(s, op) {
			continue
		}
		n, err := num(s[len(op):])
		if err != nil {
			return Range[T]{}, err
		}
		switch op {
		case ">=":
			return From(n), nil
		case "<=":
			return ToInclusive(n), nil
		case ">":
			return After(n), nil
		case "<":
			return To(n), nil
		}
		return Single(n), nil
	}

	// interval notation
	if len(s) >= 2 && (s[0] == '(' || s[0] == '[') && (s[len(s)-1] == ')' || s[len(s)-1] == ']') {
		leftInclusive := s[0] == '['
		rightInclusive := s[len(s)-1] == ']'
		left, right, found := strings.Cut(s[1:len(s)-1], ",")
		if !found {
			return Range[T]{}, errors.Wrapf(ErrSyntax, "missing ',' in %q", value)
		}
		low, err := intervalEndpoint(left, leftInclusive, num)
		if err != nil {
			return Range[T]{}, errors.Wrapf(err, "left side of %q", value)
		}
		high, err := intervalEndpoint(right, rightInclusive, num)
		if err != nil {
			return Range[T]{}, errors.Wrapf(err, "right side of %q", value)
		}
		return Between(low, high), nil
	}

	// literal notation
	if left, right, found := strings.Cut(s, ".."); found {
		low, high := Unbounded[T](), Unbounded[T]()
		if left = strings.TrimSpace(left); left != "" {
			n, err := num(left)
			if err != nil {
				return Range[T]{}, err
			}
			low = Included(n)
		}
		inclusive := strings.HasPrefix(right, "=")
		right = strings.TrimSpace(strings.TrimPrefix(right, "="))
		switch {
		case right != "":
			n, err := num(right)
			if err != nil {
				return Range[T]{}, err
			}
			high = Excluded(n)
			if inclusive {
				high = Included(n)
			}
		case inclusive:
			return Range[T]{}, errors.Wrapf(ErrSyntax, "missing upper bound after '..=' in %q", value)
		}
		return Between(low, high), nil
	}

	n, err := num(s)
	if err != nil {
		return Range[T]{}, errors.Wrapf(ErrSyntax, "unrecognized range format %q", value)
	}
	return Single(n), nil
}

func intervalEndpoint[T integer.Integer](tok string, inclusive bool, num func(string) (T, error)) (Endpoint[T], error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		// infinite side must be open
		if inclusive {
			return Endpoint[T]{}, errors.Wrap(ErrSyntax, "unbounded side must be open")
		}
		return Unbounded[T](), nil
	}
	n, err := num(tok)
	if err != nil {
		return Endpoint[T]{}, err
	}
	if inclusive {
		return Included(n), nil
	}
	return Excluded(n), nil
}

// ParseList reads ranges separated by ';' or white space. White space inside
// interval brackets belongs to the range, so "[1, 5] 7" is two ranges. An
// empty or blank string yields no range.
func ParseList[T integer.Integer](value string) ([]Range[T], error) {
	tokens := splitList(value)
	ranges := make([]Range[T], 0, len(tokens))
	for _, tok := range tokens {
		r, err := Parse[T](tok)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// splitList cuts value at ';' and at white space outside brackets, dropping
// empty tokens.
func splitList(value string) []string {
	var tokens []string
	depth, start := 0, -1
	for i, r := range value {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			depth = max(depth-1, 0)
		}
		if r == ';' || (depth == 0 && unicode.IsSpace(r)) {
			if start >= 0 {
				tokens = append(tokens, value[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, value[start:])
	}
	return tokens
}

// ParseNaturalList reads a list of natural numbers in the syntax used for
// cpu and node lists. Tokens are separated by ',' or '_':
//
//	"all"    -> every natural number
//	"N"      -> a single natural number
//	"N-M"    -> closed interval [N, M]
//	"N-"     -> >= N
//	"-M"     -> <= M, starting at 0
//
// Tokens may come in any order and may overlap.
func ParseNaturalList[T integer.Integer](value string) ([]Range[T], error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if value == "all" {
		return []Range[T]{From[T](0)}, nil
	}

	tokens := strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == '_' })
	var ranges []Range[T]
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if strings.Count(tok, "-") > 1 {
			return nil, errors.Wrapf(ErrSyntax, "invalid token %q", tok)
		}
		left, right, found := strings.Cut(tok, "-")
		if !found {
			n, err := parseNatural[T](tok)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid token %q", tok)
			}
			ranges = append(ranges, Single(n))
			continue
		}
		switch {
		case left != "" && right != "":
			n1, err := parseNatural[T](left)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid left bound in %q", tok)
			}
			n2, err := parseNatural[T](right)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid right bound in %q", tok)
			}
			if n1 > n2 {
				return nil, errors.Wrapf(ErrSyntax, "invalid range %q: min > max", tok)
			}
			ranges = append(ranges, Closed(n1, n2))
		case left != "": // "N-"
			n, err := parseNatural[T](left)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid bound in %q", tok)
			}
			ranges = append(ranges, From(n))
		case right != "": // "-M"
			n, err := parseNatural[T](right)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid bound in %q", tok)
			}
			ranges = append(ranges, Closed(0, n))
		default:
			return nil, errors.Wrapf(ErrSyntax, "invalid token %q", tok)
		}
	}
	return ranges, nil
}

// parseNatural parses s as a natural number of T.
func parseNatural[T integer.Integer](s string) (T, error) {
	if s == "" || s[0] == '+' {
		return 0, errors.Wrapf(ErrSyntax, "not natural number: %q", s)
	}
	n, err := integer.Parse[T](s)
	if err != nil || n < 0 {
		return 0, errors.Wrapf(ErrSyntax, "not natural number: %q", s)
	}
	return n, nil
}

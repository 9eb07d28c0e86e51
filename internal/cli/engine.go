package cli

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/vipcxj/rangeset/bound"
	"github.com/vipcxj/rangeset/integer"
	"github.com/vipcxj/rangeset/rangeset"
)

// Set is a range set of whatever domain type the engine was built for.
type Set interface {
	String() string
	MarshalJSON() ([]byte, error)
	yaml.Marshaler
}

// Values is an ordered list of domain values.
type Values struct {
	text []string
	raw  any
}

// Len returns the number of values.
func (v Values) Len() int {
	return len(v.text)
}

// Engine evaluates set expressions of one domain type. Every operand is a
// list of ranges as read by bound.ParseList.
type Engine interface {
	Type() DomainType
	Show(expr string) (Set, error)
	Union(exprs ...string) (Set, error)
	Intersect(exprs ...string) (Set, error)
	Diff(exprs ...string) (Set, error)
	SymDiff(a, b string) (Set, error)
	Complement(expr string) (Set, error)
	Contains(expr string, values ...string) ([]bool, error)
	ContainsAll(a, b string) (bool, error)
	Overlaps(a, b string) (bool, error)
	Iter(expr string, limit int) (Values, error)
	Count(expr string) (n uint64, ok bool, err error)
	// Collect builds a set from discrete values, intersected with a cpu-list
	// style mask when mask is not empty.
	Collect(values []int64, mask string) (Set, error)
}

// NewEngine returns the engine for typ.
func NewEngine(typ DomainType, log logrus.FieldLogger) (Engine, error) {
	switch typ {
	case DomainTypeU8:
		return engine[uint8]{typ, log}, nil
	case DomainTypeU16:
		return engine[uint16]{typ, log}, nil
	case DomainTypeU32:
		return engine[uint32]{typ, log}, nil
	case DomainTypeU64:
		return engine[uint64]{typ, log}, nil
	case DomainTypeUint:
		return engine[uint]{typ, log}, nil
	case DomainTypeI8:
		return engine[int8]{typ, log}, nil
	case DomainTypeI16:
		return engine[int16]{typ, log}, nil
	case DomainTypeI32:
		return engine[int32]{typ, log}, nil
	case DomainTypeI64:
		return engine[int64]{typ, log}, nil
	case DomainTypeInt:
		return engine[int]{typ, log}, nil
	}
	return nil, errors.Errorf("unsupported domain type %v", typ)
}

type engine[T integer.Integer] struct {
	typ DomainType
	log logrus.FieldLogger
}

func (e engine[T]) Type() DomainType {
	return e.typ
}

func (e engine[T]) parse(expr string) (rangeset.Set[T], error) {
	ranges, err := bound.ParseList[T](expr)
	if err != nil {
		return rangeset.Set[T]{}, errors.Wrapf(err, "operand %q", expr)
	}
	rangers := make([]rangeset.Ranger[T], 0, len(ranges))
	for _, r := range ranges {
		if r.IsEmpty() {
			e.log.WithField("range", r.String()).Warn("range holds no value")
			continue
		}
		rangers = append(rangers, r)
	}
	s := rangeset.FromRanges(rangers...)
	e.log.WithFields(logrus.Fields{
		"operand":   expr,
		"ranges":    len(ranges),
		"intervals": s.Len(),
	}).Debug("parsed operand")
	return s, nil
}

func (e engine[T]) parseAll(exprs []string) ([]rangeset.Set[T], error) {
	if len(exprs) == 0 {
		return nil, errors.New("no operand")
	}
	sets := make([]rangeset.Set[T], len(exprs))
	for i, expr := range exprs {
		s, err := e.parse(expr)
		if err != nil {
			return nil, err
		}
		sets[i] = s
	}
	return sets, nil
}

func (e engine[T]) parsePair(a, b string) (rangeset.Set[T], rangeset.Set[T], error) {
	sa, err := e.parse(a)
	if err != nil {
		return sa, sa, err
	}
	sb, err := e.parse(b)
	return sa, sb, err
}

func (e engine[T]) fold(op string, exprs []string, f func(acc, s rangeset.Set[T]) rangeset.Set[T]) (Set, error) {
	sets, err := e.parseAll(exprs)
	if err != nil {
		return nil, err
	}
	acc := sets[0]
	for _, s := range sets[1:] {
		acc = f(acc, s)
	}
	e.log.WithFields(logrus.Fields{"op": op, "operands": len(sets)}).Debug("evaluated")
	return acc, nil
}

func (e engine[T]) Show(expr string) (Set, error) {
	return e.fold("show", []string{expr}, nil)
}

func (e engine[T]) Union(exprs ...string) (Set, error) {
	return e.fold("union", exprs, rangeset.Set[T].Union)
}

func (e engine[T]) Intersect(exprs ...string) (Set, error) {
	return e.fold("intersect", exprs, rangeset.Set[T].Intersection)
}

func (e engine[T]) Diff(exprs ...string) (Set, error) {
	return e.fold("diff", exprs, rangeset.Set[T].Difference)
}

func (e engine[T]) SymDiff(a, b string) (Set, error) {
	return e.fold("symdiff", []string{a, b}, rangeset.Set[T].SymmetricDifference)
}

func (e engine[T]) Complement(expr string) (Set, error) {
	s, err := e.parse(expr)
	if err != nil {
		return nil, err
	}
	return s.Complement(), nil
}

func (e engine[T]) Contains(expr string, values ...string) ([]bool, error) {
	s, err := e.parse(expr)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(values))
	for i, raw := range values {
		v, err := integer.Parse[T](raw)
		if err != nil {
			return nil, err
		}
		out[i] = s.Contains(v)
	}
	return out, nil
}

func (e engine[T]) ContainsAll(a, b string) (bool, error) {
	sa, sb, err := e.parsePair(a, b)
	if err != nil {
		return false, err
	}
	return sa.ContainsAll(sb), nil
}

func (e engine[T]) Overlaps(a, b string) (bool, error) {
	sa, sb, err := e.parsePair(a, b)
	if err != nil {
		return false, err
	}
	return sa.HasIntersection(sb), nil
}

// Iter lists the values of expr in ascending order, stopping after limit
// values when limit is positive.
func (e engine[T]) Iter(expr string, limit int) (Values, error) {
	s, err := e.parse(expr)
	if err != nil {
		return Values{}, err
	}
	var vals []T
	for v := range s.All() {
		if limit > 0 && len(vals) == limit {
			e.log.WithField("limit", limit).Debug("iteration truncated")
			break
		}
		vals = append(vals, v)
	}
	return valuesOf(vals), nil
}

func (e engine[T]) Count(expr string) (uint64, bool, error) {
	s, err := e.parse(expr)
	if err != nil {
		return 0, false, err
	}
	n, ok := s.Count()
	return n, ok, nil
}

func (e engine[T]) Collect(values []int64, mask string) (Set, error) {
	rangers := make([]rangeset.Ranger[T], 0, len(values))
	for _, raw := range values {
		v := T(raw)
		if int64(v) != raw || (v < 0) != (raw < 0) {
			return nil, errors.Errorf("value %d does not fit in %v", raw, e.typ)
		}
		rangers = append(rangers, bound.Pair(v, v))
	}
	s := rangeset.FromRanges(rangers...)
	if mask == "" {
		return s, nil
	}
	ranges, err := bound.ParseNaturalList[T](mask)
	if err != nil {
		return nil, errors.Wrap(err, "mask")
	}
	masks := make([]rangeset.Ranger[T], len(ranges))
	for i, r := range ranges {
		masks[i] = r
	}
	return s.Intersection(rangeset.FromRanges(masks...)), nil
}

func valuesOf[T integer.Integer](vals []T) Values {
	text := make([]string, len(vals))
	for i, v := range vals {
		text[i] = integer.Format(v)
	}
	if integer.Signed[T]() {
		raw := make([]int64, len(vals))
		for i, v := range vals {
			raw[i] = int64(v)
		}
		return Values{text: text, raw: raw}
	}
	raw := make([]uint64, len(vals))
	for i, v := range vals {
		raw[i] = uint64(v)
	}
	return Values{text: text, raw: raw}
}

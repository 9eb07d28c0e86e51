package rangeset

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vipcxj/rangeset/integer"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// wide copies bounds into []int64 or []uint64 so that encoders never treat a
// set of bytes as binary data.
func wide[T integer.Integer](bounds []T) any {
	if integer.Signed[T]() {
		out := make([]int64, len(bounds))
		for i, b := range bounds {
			out[i] = int64(b)
		}
		return out
	}
	out := make([]uint64, len(bounds))
	for i, b := range bounds {
		out[i] = uint64(b)
	}
	return out
}

// narrow converts decoded values back to T, rejecting anything T cannot hold.
func narrow[T integer.Integer, W int64 | uint64](values []W) ([]T, error) {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
		if W(out[i]) != v {
			return nil, errors.Wrapf(ErrMalformed, "bound %v out of range for %d-bit integers", v, integer.Bits[T]())
		}
	}
	return out, nil
}

func decode[T integer.Integer](unmarshal func(any) error) (Set[T], error) {
	var bounds []T
	if integer.Signed[T]() {
		var values []int64
		if err := unmarshal(&values); err != nil {
			return Set[T]{}, err
		}
		b, err := narrow[T](values)
		if err != nil {
			return Set[T]{}, err
		}
		bounds = b
	} else {
		var values []uint64
		if err := unmarshal(&values); err != nil {
			return Set[T]{}, err
		}
		b, err := narrow[T](values)
		if err != nil {
			return Set[T]{}, err
		}
		bounds = b
	}
	return FromBounds(bounds)
}

// MarshalJSON encodes s as its flat bound sequence.
func (s Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(wide(s.bounds))
}

// UnmarshalJSON decodes a flat bound sequence. The sequence must be canonical.
// Called directly, a rejected sequence yields an error matching ErrMalformed
// under errors.Is; jsoniter keeps only its text when s is decoded as a field.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	set, err := decode[T](func(v any) error { return json.Unmarshal(data, v) })
	if err != nil {
		return errors.Wrap(err, "decode range set")
	}
	*s = set
	return nil
}

// MarshalYAML encodes s as its flat bound sequence.
func (s Set[T]) MarshalYAML() (interface{}, error) {
	return wide(s.bounds), nil
}

// UnmarshalYAML decodes a flat bound sequence. The sequence must be canonical.
func (s *Set[T]) UnmarshalYAML(value *yaml.Node) error {
	set, err := decode[T](value.Decode)
	if err != nil {
		return errors.Wrapf(err, "decode range set at line %d", value.Line)
	}
	*s = set
	return nil
}

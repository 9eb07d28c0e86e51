package rangeset_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vipcxj/rangeset/rangeset"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type host struct {
	Name string                `json:"name" yaml:"name"`
	CPUs rangeset.Set[uint8]   `json:"cpus" yaml:"cpus"`
	Offs rangeset.Set[int64]   `json:"offs" yaml:"offs"`
	Tags *rangeset.Set[uint16] `json:"tags,omitempty" yaml:"tags,omitempty"`
}

func TestJSON(t *testing.T) {
	in := host{
		Name: "a",
		CPUs: of[uint8](t, 0, 3, 8, 255),
		Offs: of[int64](t, -9223372036854775808, -1),
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"a","cpus":[0,3,8,255],"offs":[-9223372036854775808,-1]}`, string(data))

	var out host
	require.NoError(t, json.Unmarshal(data, &out))
	if diff := cmp.Diff(in.CPUs.Bounds(), out.CPUs.Bounds()); diff != "" {
		t.Errorf("cpus mismatch (-want +got):\n%s", diff)
	}
	require.True(t, in.Offs.Equal(out.Offs))

	empty, err := json.Marshal(rangeset.Empty[uint8]())
	require.NoError(t, err)
	require.Equal(t, "[]", string(empty))
}

func TestJSON_Errors(t *testing.T) {
	for _, data := range []string{
		`[1]`,
		`[5,3]`,
		`[1,5,6,9]`,
		`[1,5,4,9]`,
		`[0,256]`,
		`[-1,5]`,
		`{"a":1}`,
	} {
		var s rangeset.Set[uint8]
		err := json.Unmarshal([]byte(data), &s)
		require.Error(t, err, data)
		require.True(t, s.IsEmpty(), "failed decode must leave the set untouched")
	}

	// jsoniter flattens the error of a nested decoder into text
	var s rangeset.Set[uint8]
	err := json.Unmarshal([]byte(`[1,5,6,9]`), &s)
	require.ErrorContains(t, err, "malformed bound sequence")

	err = s.UnmarshalJSON([]byte(`[1,5,6,9]`))
	require.True(t, errors.Is(err, rangeset.ErrMalformed), "%v", err)
	require.True(t, s.IsEmpty())

	var i8 rangeset.Set[int8]
	err = i8.UnmarshalJSON([]byte(`[-129,0]`))
	require.True(t, errors.Is(err, rangeset.ErrMalformed), "%v", err)
	err = json.Unmarshal([]byte(`[-129,0]`), &i8)
	require.ErrorContains(t, err, "malformed bound sequence")
}

func TestYAML(t *testing.T) {
	tags := of[uint16](t, 100, 200)
	in := host{
		Name: "b",
		CPUs: of[uint8](t, 1, 1),
		Tags: &tags,
	}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	require.Equal(t, `name: b
cpus:
    - 1
    - 1
offs: []
tags:
    - 100
    - 200
`, string(data))

	var out host
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.True(t, in.CPUs.Equal(out.CPUs))
	require.True(t, out.Offs.IsEmpty())
	require.NotNil(t, out.Tags)
	require.True(t, tags.Equal(*out.Tags))
}

func TestYAML_Errors(t *testing.T) {
	var out host
	err := yaml.Unmarshal([]byte("name: c\ncpus: [4, 2]\n"), &out)
	require.ErrorContains(t, err, "line 2")
	require.True(t, errors.Is(err, rangeset.ErrMalformed), "%v", err)

	err = yaml.Unmarshal([]byte("cpus: [1, 300]\n"), &out)
	require.Error(t, err)

	err = yaml.Unmarshal([]byte("cpus: {a: 1}\n"), &out)
	require.Error(t, err)
}

package cli

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func render(t *testing.T, format OutputFormat, f func(p *Printer) error) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f(NewPrinter(&buf, format)))
	return buf.String()
}

func TestPrinter_Set(t *testing.T) {
	log, _ := test.NewNullLogger()
	e, err := NewEngine(DomainTypeU8, log)
	require.NoError(t, err)
	s, err := e.Show("2..=44 56..=60")
	require.NoError(t, err)
	empty, err := e.Show("")
	require.NoError(t, err)

	cases := []struct {
		format OutputFormat
		set    Set
		want   string
	}{
		{OutputFormatText, s, "[ 2..=44 56..=60 ]\n"},
		{OutputFormatJson, s, "[2,44,56,60]\n"},
		{OutputFormatYaml, s, "- 2\n- 44\n- 56\n- 60\n"},
		{OutputFormatText, empty, "[ ]\n"},
		{OutputFormatJson, empty, "[]\n"},
		{OutputFormatYaml, empty, "[]\n"},
	}
	for _, tc := range cases {
		got := render(t, tc.format, func(p *Printer) error { return p.Set(tc.set) })
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%v output mismatch (-want +got):\n%s", tc.format, diff)
		}
	}
}

func TestPrinter_Bools(t *testing.T) {
	bs := []bool{true, false}
	require.Equal(t, "true\nfalse\n", render(t, OutputFormatText, func(p *Printer) error { return p.Bools(bs) }))
	require.Equal(t, "[true,false]\n", render(t, OutputFormatJson, func(p *Printer) error { return p.Bools(bs) }))
	require.Equal(t, "- true\n- false\n", render(t, OutputFormatYaml, func(p *Printer) error { return p.Bools(bs) }))
	require.Equal(t, "false\n", render(t, OutputFormatJson, func(p *Printer) error { return p.Bool(false) }))
	require.Equal(t, "true\n", render(t, OutputFormatYaml, func(p *Printer) error { return p.Bool(true) }))
}

func TestPrinter_Values(t *testing.T) {
	vals := valuesOf([]int8{-2, -1})
	require.Equal(t, "-2\n-1\n", render(t, OutputFormatText, func(p *Printer) error { return p.Values(vals) }))
	require.Equal(t, "[-2,-1]\n", render(t, OutputFormatJson, func(p *Printer) error { return p.Values(vals) }))
	require.Equal(t, "- -2\n- -1\n", render(t, OutputFormatYaml, func(p *Printer) error { return p.Values(vals) }))

	bytesVals := valuesOf([]uint8{0, 255})
	require.Equal(t, "[0,255]\n", render(t, OutputFormatJson, func(p *Printer) error { return p.Values(bytesVals) }))
}

func TestPrinter_Count(t *testing.T) {
	cases := []struct {
		format OutputFormat
		n      uint64
		ok     bool
		human  bool
		want   string
	}{
		{OutputFormatText, 256, true, false, "256\n"},
		{OutputFormatText, 1234567, true, true, "1,234,567\n"},
		{OutputFormatText, 0, false, false, "18446744073709551616\n"},
		{OutputFormatText, 0, false, true, "18,446,744,073,709,551,616\n"},
		{OutputFormatJson, 1234567, true, true, "1234567\n"},
		{OutputFormatJson, 0, false, false, "18446744073709551616\n"},
		{OutputFormatYaml, 42, true, false, "42\n"},
	}
	for _, tc := range cases {
		got := render(t, tc.format, func(p *Printer) error { return p.Count(tc.n, tc.ok, tc.human) })
		require.Equal(t, tc.want, got, "%v %d %v %v", tc.format, tc.n, tc.ok, tc.human)
	}

	// 2^64 stays an integer in yaml as it does in json
	got := render(t, OutputFormatYaml, func(p *Printer) error { return p.Count(0, false, false) })
	require.Contains(t, got, "18446744073709551616")
	require.NotContains(t, got, `"`)
	require.NotContains(t, got, "'")
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(got), &node))
	require.Equal(t, "!!int", node.Content[0].Tag)
	require.Equal(t, "18446744073709551616", node.Content[0].Value)
}

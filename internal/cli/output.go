package cli

import (
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Printer writes results in one output format.
type Printer struct {
	w      io.Writer
	format OutputFormat
}

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer, format OutputFormat) *Printer {
	return &Printer{w: w, format: format}
}

// print writes lines in text mode and v otherwise.
func (p *Printer) print(lines []string, v any) error {
	switch p.format {
	case OutputFormatJson:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(p.w, "%s\n", b)
		return err
	case OutputFormatYaml:
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = p.w.Write(b)
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return err
		}
	}
	return nil
}

// Set writes s as "[ a..=b ]" text or as its flat bound sequence.
func (p *Printer) Set(s Set) error {
	return p.print([]string{s.String()}, s)
}

// Bool writes a single truth value.
func (p *Printer) Bool(b bool) error {
	return p.print([]string{strconv.FormatBool(b)}, b)
}

// Bools writes one truth value per line, or a list.
func (p *Printer) Bools(bs []bool) error {
	lines := make([]string, len(bs))
	for i, b := range bs {
		lines[i] = strconv.FormatBool(b)
	}
	return p.print(lines, bs)
}

// Values writes one value per line, or a list.
func (p *Printer) Values(v Values) error {
	return p.print(v.text, v.raw)
}

// Count writes a cardinality. ok false means the count is exactly 2^64.
// human groups the digits with commas.
func (p *Printer) Count(n uint64, ok, human bool) error {
	exact := new(big.Int).SetUint64(n)
	if !ok {
		exact.Lsh(big.NewInt(1), 64)
	}
	text := exact.String()
	if human {
		text = humanize.BigComma(exact)
	}
	var v any = n
	switch {
	case ok:
	case p.format == OutputFormatYaml:
		// *big.Int would marshal as a quoted string
		v = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: exact.String()}
	default:
		v = exact
	}
	return p.print([]string{text}, v)
}

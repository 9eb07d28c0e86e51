//go:generate go run github.com/dmarkham/enumer -type=DomainType -trimprefix=DomainType -transform=kebab -text
//go:generate go run github.com/dmarkham/enumer -type=OutputFormat -trimprefix=OutputFormat -transform=kebab -text
package cli

// DomainType selects the integer type every operand is parsed into.
type DomainType int

const (
	DomainTypeU8 DomainType = iota
	DomainTypeU16
	DomainTypeU32
	DomainTypeU64
	DomainTypeUint
	DomainTypeI8
	DomainTypeI16
	DomainTypeI32
	DomainTypeI64
	DomainTypeInt
)

// Set implements pflag.Value.
func (i *DomainType) Set(s string) error {
	v, err := DomainTypeString(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// Type implements pflag.Value.
func (i *DomainType) Type() string {
	return "type"
}

// OutputFormat selects how results are written.
type OutputFormat int

const (
	OutputFormatText OutputFormat = iota
	OutputFormatJson
	OutputFormatYaml
)

// Set implements pflag.Value.
func (i *OutputFormat) Set(s string) error {
	v, err := OutputFormatString(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// Type implements pflag.Value.
func (i *OutputFormat) Type() string {
	return "format"
}

//go:generate go run github.com/dmarkham/enumer -type=Kind -trimprefix=Kind -transform=kebab
package bound

// Kind tells how an Endpoint limits its side of a Range.
type Kind int

const (
	// KindUnbounded extends the side to the edge of the integer domain.
	KindUnbounded Kind = iota
	// KindIncluded keeps the endpoint value in the range.
	KindIncluded
	// KindExcluded leaves the endpoint value out of the range.
	KindExcluded
)

package rangeset

import (
	"strings"

	"github.com/vipcxj/rangeset/integer"
)

// String lists the intervals of s as "[ a..=b c..=d ]".
func (s Set[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for lo, hi := range s.Intervals() {
		sb.WriteString(integer.Format(lo))
		sb.WriteString("..=")
		sb.WriteString(integer.Format(hi))
		sb.WriteByte(' ')
	}
	sb.WriteByte(']')
	return sb.String()
}

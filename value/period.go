package value

import (
	"strconv"
	"strings"
)

// Period represents a date based amount of time
type Period struct {
	Years  int
	Months int
	Days   int
}

// IsZero returns true if period has no length
func (p Period) IsZero() bool {
	return p.Years == 0 && p.Months == 0 && p.Days == 0
}

// String returns ISO-8601 representation, i.e. P1Y2M3D
func (p Period) String() string {
	if p.IsZero() {
		return "P0D"
	}
	sb := strings.Builder{}
	sb.WriteByte('P')
	if p.Years != 0 {
		sb.WriteString(strconv.Itoa(p.Years))
		sb.WriteByte('Y')
	}
	if p.Months != 0 {
		sb.WriteString(strconv.Itoa(p.Months))
		sb.WriteByte('M')
	}
	if p.Days != 0 {
		sb.WriteString(strconv.Itoa(p.Days))
		sb.WriteByte('D')
	}
	return sb.String()
}

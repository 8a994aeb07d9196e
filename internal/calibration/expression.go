package calibration

import (
	"fmt"
	"strings"
)

// FormatConstant renders v as a firmware Double literal.
func FormatConstant(v float64) string {
	return fmt.Sprintf("t_double(%.4e)", v)
}

// FormatHorner renders p as a nested expression in inputName, starting from
// the constant term:
//
//	c0+x*(c1+x*(c2))
func FormatHorner(p Polynomial, inputName string) string {
	if len(p) == 0 {
		return FormatConstant(0)
	}
	var sb strings.Builder
	for i := len(p) - 1; i > 0; i-- {
		sb.WriteString(FormatConstant(p[i]))
		sb.WriteString("+")
		sb.WriteString(inputName)
		sb.WriteString("*(")
	}
	sb.WriteString(FormatConstant(p[0]))
	sb.WriteString(strings.Repeat(")", len(p)-1))
	return sb.String()
}

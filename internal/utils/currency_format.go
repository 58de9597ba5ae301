package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatKES renders an amount the way the reporting screens do:
// "KES " followed by the absolute value with thousands separators, with
// negative amounts in parentheses.
// Example: FormatKES(-2240685) returns "KES (2,240,685)".
func FormatKES(amount decimal.Decimal) string {
	formatted := groupThousands(amount.Abs().String())
	if amount.IsNegative() {
		return "KES (" + formatted + ")"
	}
	return "KES " + formatted
}

// groupThousands inserts comma separators into the integer part of a
// non-negative decimal string, leaving any fractional part untouched.
func groupThousands(s string) string {
	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx:]
	}

	n := len(intPart)
	if n <= 3 {
		return intPart + fracPart
	}

	var b strings.Builder
	first := n % 3
	if first > 0 {
		b.WriteString(intPart[:first])
	}
	for i := first; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + fracPart
}

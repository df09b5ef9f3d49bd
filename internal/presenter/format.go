package presenter

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL formats an amount as "R$ 1,234.56".
func FormatBRL(v float64) string {
	return "R$ " + FormatNumber(v, 2)
}

// FormatNumber formats v with the given number of decimal places and comma
// thousands separators.
func FormatNumber(v float64, places int32) string {
	fixed := decimal.NewFromFloat(v).StringFixed(places)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, hasFrac := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

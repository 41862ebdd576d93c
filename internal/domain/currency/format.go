package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders amount with the currency symbol and thousands separators, e.g. "₦1,250,000.00".
// Unknown codes are rendered with the code as prefix.
func Format(amount decimal.Decimal, code string) string {
	c, ok := Lookup(code)
	if !ok {
		c = Currency{Code: strings.ToUpper(code), Symbol: strings.ToUpper(code) + " ", Decimals: 2}
	}

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(c.Decimals)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + c.Symbol + b.String()
}

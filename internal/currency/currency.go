// Package currency formats Philippine peso amounts for display. Rounding
// to two decimal places happens here and only here; stored amounts stay
// exact.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

const glyph = "₱"

// FormatPHP renders an amount with the peso glyph, thousands grouping,
// and exactly two decimal places: 1234.5 → "₱1,234.50".
func FormatPHP(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString(glyph)
	b.WriteString(groupThousands(intPart))
	b.WriteString(".")
	b.WriteString(fracPart)
	return b.String()
}

// FormatPHPShort renders a compact amount for dashboards: ₱1.5K, ₱2.3M.
// Amounts under a thousand drop the decimals entirely.
func FormatPHPShort(amount decimal.Decimal) string {
	million := decimal.NewFromInt(1_000_000)
	thousand := decimal.NewFromInt(1_000)

	switch {
	case amount.GreaterThanOrEqual(million):
		return glyph + amount.Div(million).StringFixed(1) + "M"
	case amount.GreaterThanOrEqual(thousand):
		return glyph + amount.Div(thousand).StringFixed(1) + "K"
	default:
		return glyph + amount.StringFixed(0)
	}
}

// ParsePHP parses a formatted peso string back into an amount. Returns
// zero for unparseable input, mirroring the forgiving display-layer use.
func ParsePHP(s string) decimal.Decimal {
	cleaned := strings.NewReplacer(glyph, "", ",", "", " ", "").Replace(s)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

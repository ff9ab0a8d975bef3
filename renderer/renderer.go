// Package renderer turns domain reports into markdown. All display
// rounding happens here; the domain types stay exact.
package renderer

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const notAvailable = "n/a"

// percent renders a decimal percentage with two fraction digits.
func percent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

// signedPercent is percent with an explicit plus on gains.
func signedPercent(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + percent(d)
	}
	return percent(d)
}

func signedFloatPercent(f float64) string {
	return fmt.Sprintf("%+.2f%%", f)
}

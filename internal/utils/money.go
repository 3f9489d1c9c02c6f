package utils

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount as US dollars, e.g. $1,234.56 or -$0.50.
// The amount is rounded half-up to cents first.
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	rounded := amount.Round(2)
	_, cents, _ := strings.Cut(rounded.StringFixed(2), ".")
	return sign + "$" + humanize.BigComma(rounded.BigInt()) + "." + cents
}

package view

import "github.com/shopspring/decimal"

// Money formats an amount for display, rounding to two digits only here.
func Money(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

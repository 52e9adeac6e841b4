// Package currency renders monetary amounts as localized display strings.
package currency

import (
	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Display formats an amount in the given ISO 4217 currency, e.g. "$1,234.50".
// Unknown codes fall back to two fractional digits with the code as symbol.
func Display(amount decimal.Decimal, code string) string {
	fraction := 2
	if cur := gomoney.GetCurrency(code); cur != nil {
		fraction = cur.Fraction
	}

	minorUnits := amount.Shift(int32(fraction)).Round(0).IntPart()
	return gomoney.New(minorUnits, code).Display()
}

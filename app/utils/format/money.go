package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var soles = accounting.Accounting{Symbol: "S/ ", Precision: 2, Thousand: ",", Decimal: "."}

// Soles renders an amount the way the dashboard shows Peruvian currency,
// e.g. "S/ 1,234.50".
func Soles(amount decimal.Decimal) string {
	return soles.FormatMoneyDecimal(amount)
}

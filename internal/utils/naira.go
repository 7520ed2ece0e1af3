package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const nairaSign = "₦"

var amountPrinter = message.NewPrinter(language.English)

// FormatNaira форматирует сумму для отображения: 50000 -> "₦50,000.00"
func FormatNaira(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	return sign + nairaSign + amountPrinter.Sprintf("%.2f", amount.Round(2).InexactFloat64())
}

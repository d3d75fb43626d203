package dashboard

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// usd renders numbers with en-US grouping; the dashboard is fixed to a
// single currency and locale.
var usd = message.NewPrinter(language.AmericanEnglish)

var oneHundred = decimal.NewFromInt(100)

// FormatCurrency renders integer minor units as a display string,
// e.g. 123456 -> "$1,234.56". Deterministic, no failure mode.
func FormatCurrency(minorUnits int64) string {
	units := decimal.NewFromInt(minorUnits).Div(oneHundred)
	return usd.Sprintf("$%.2f", units.InexactFloat64())
}

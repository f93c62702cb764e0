// Package currency renders canonical (USD) amounts as display strings
// in the user's selected currency, using the static exchange rate table.
// Output is deterministic: each supported currency has a fixed locale
// convention and never varies with the process environment.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/shopspring/decimal"

	"pennyledger/internal/money"
)

var (
	english = message.NewPrinter(language.AmericanEnglish)
	german  = message.NewPrinter(language.German)
)

// Format converts amountUSD with the rate for the given currency code
// and renders it:
//
//	USD     $1,234.56
//	EUR     1.234,56 € (European grouping and decimal comma)
//	RWF     1,796,285 Frw (rounded to whole francs)
//	other   1234.56 CODE
//
// A missing or zero rate falls back to 1.
func Format(amountUSD money.Amount, code string, rates map[string]float64) string {
	rate := rates[code]
	if rate == 0 {
		rate = 1
	}

	converted := amountUSD.Mul(decimal.NewFromFloat(rate))

	switch code {
	case "USD":
		s := english.Sprintf("%v", twoDecimals(converted.Abs()))
		if converted.IsNegative() {
			return "-$" + s
		}

		return "$" + s
	case "EUR":
		return german.Sprintf("%v €", twoDecimals(converted))
	case "RWF":
		return english.Sprintf("%v Frw", number.Decimal(converted.Round(0).Decimal().IntPart()))
	}

	return converted.StringFixed(2) + " " + code
}

// Formatter binds a currency selection and rate table into a single-arg
// formatting function for the aggregator's advisory messages.
func Formatter(code string, rates map[string]float64) func(money.Amount) string {
	return func(a money.Amount) string {
		return Format(a, code, rates)
	}
}

func twoDecimals(a money.Amount) number.Formatter {
	return number.Decimal(a.Round(2).Float64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	)
}

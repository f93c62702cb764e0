package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pennyledger/internal/currency"
	"pennyledger/internal/money"
)

var rates = map[string]float64{"USD": 1, "EUR": 0.92, "RWF": 1455}

func TestFormat(t *testing.T) {
	type testCase struct {
		name   string
		amount string
		code   string
		want   string
	}

	tests := []testCase{
		{name: "USD", amount: "1234.56", code: "USD", want: "$1,234.56"},
		{name: "USDWholeNumber", amount: "1000", code: "USD", want: "$1,000.00"},
		{name: "USDNegative", amount: "-1234.56", code: "USD", want: "-$1,234.56"},
		{name: "EURGroupingAndDecimalComma", amount: "1234.56", code: "EUR", want: "1.135,80 €"},
		{name: "RWFRoundedWholeFrancs", amount: "1234.56", code: "RWF", want: "1,796,285 Frw"},
		{name: "UnknownCodeFallsBack", amount: "12.345", code: "GBP", want: "12.35 GBP"},
		{name: "MissingRateDefaultsToOne", amount: "12.34", code: "GBP", want: "12.34 GBP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := currency.Format(money.MustParse(tt.amount), tt.code, rates)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatterBindsSelection(t *testing.T) {
	format := currency.Formatter("RWF", rates)
	assert.Equal(t, "1,455 Frw", format(money.MustParse("1")))
}

package settings

import "pennyledger/internal/money"

// Currency is a display currency code. Amounts are stored in USD and
// converted at display time using the static exchange rates.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	RWF Currency = "RWF"
)

func (c Currency) Valid() bool {
	switch c {
	case USD, EUR, RWF:
		return true
	}

	return false
}

// Theme is the UI color scheme. The core only stores it; rendering is the
// presentation collaborator's concern.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Settings holds the user preferences persisted alongside the ledger.
type Settings struct {
	Currency      Currency           `json:"currency"`
	BudgetCap     money.Amount       `json:"budgetCap"`
	Theme         Theme              `json:"theme"`
	ExchangeRates map[string]float64 `json:"exchangeRates"`
}

// Default returns first-run settings: USD, a 1000 budget cap, light theme
// and the static exchange rate table.
func Default() Settings {
	return Settings{
		Currency:  USD,
		BudgetCap: money.FromInt(1000),
		Theme:     ThemeLight,
		ExchangeRates: map[string]float64{
			"USD": 1,
			"EUR": 0.92,
			"RWF": 1455,
		},
	}
}

// Rate returns the multiplier for converting a USD amount into the given
// currency, defaulting to 1 for unknown codes.
func (s Settings) Rate(c Currency) float64 {
	if r, ok := s.ExchangeRates[string(c)]; ok && r != 0 {
		return r
	}

	return 1
}

// Clone returns a copy that shares no state with the receiver.
func (s Settings) Clone() Settings {
	out := s
	out.ExchangeRates = make(map[string]float64, len(s.ExchangeRates))

	for k, v := range s.ExchangeRates {
		out.ExchangeRates[k] = v
	}

	return out
}

// Patch carries the settings fields to overwrite. Nil fields keep their
// current value.
type Patch struct {
	Currency  *Currency
	BudgetCap *money.Amount
	Theme     *Theme
}

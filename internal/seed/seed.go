// Package seed supplies starter data for first runs and for recovery
// when the persisted state is missing or unreadable.
package seed

import (
	_ "embed"
	"encoding/json"
	"log/slog"

	"pennyledger/internal/money"
	"pennyledger/internal/settings"
	"pennyledger/internal/transaction"
)

//go:embed seed.json
var seedJSON []byte

type document struct {
	Transactions []transaction.Transaction `json:"transactions"`
	Settings     *settings.Settings        `json:"settings"`
}

// Load returns the bundled seed document. If the document is unreadable
// or carries no transactions it falls back to a fixed built-in pair of
// entries, so the caller always receives a usable ledger.
func Load() ([]transaction.Transaction, settings.Settings) {
	var doc document

	if err := json.Unmarshal(seedJSON, &doc); err != nil || len(doc.Transactions) == 0 {
		if err != nil {
			slog.Warn("bundled seed unreadable, using built-in entries", "error", err)
		}

		return builtin()
	}

	cfg := settings.Default()

	if s := doc.Settings; s != nil {
		if s.Currency.Valid() {
			cfg.Currency = s.Currency
		}

		if s.BudgetCap.IsPositive() {
			cfg.BudgetCap = s.BudgetCap
		}

		if s.Theme.Valid() {
			cfg.Theme = s.Theme
		}

		if len(s.ExchangeRates) > 0 {
			cfg.ExchangeRates = s.ExchangeRates
		}
	}

	return doc.Transactions, cfg
}

// builtin is the last-resort seed: two fixed entries.
func builtin() ([]transaction.Transaction, settings.Settings) {
	return []transaction.Transaction{
		{ID: "1", Description: "Lunch", Amount: money.MustParse("-25.50"), Category: "Food", Date: "2025-09-25"},
		{ID: "2", Description: "Salary", Amount: money.MustParse("2500"), Category: "Income", Date: "2025-09-20"},
	}, settings.Default()
}

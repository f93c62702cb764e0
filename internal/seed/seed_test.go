package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pennyledger/internal/seed"
	"pennyledger/internal/settings"
)

func TestLoad(t *testing.T) {
	txs, cfg := seed.Load()

	require.NotEmpty(t, txs, "the bundled seed must always yield a usable ledger")

	for _, tx := range txs {
		assert.NotEmpty(t, tx.ID)
		assert.NotEmpty(t, tx.Description)
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, tx.Date)
	}

	assert.True(t, cfg.Currency.Valid())
	assert.True(t, cfg.BudgetCap.IsPositive())
	assert.Equal(t, settings.ThemeLight, cfg.Theme)
	assert.Contains(t, cfg.ExchangeRates, "RWF")
}

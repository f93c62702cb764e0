package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pennyledger/internal/ledger"
	"pennyledger/internal/ledger/store"
	"pennyledger/internal/money"
	"pennyledger/internal/settings"
	"pennyledger/internal/transaction"
)

func openStore(t *testing.T) *store.SQLite {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestLoad_NoState(t *testing.T) {
	s := openStore(t)

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ledger.ErrNoState)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	state := &ledger.State{
		Transactions: []transaction.Transaction{
			{ID: "a", Description: "Lunch", Amount: money.MustParse("-25.50"), Category: "Food", Date: "2025-09-25"},
			{ID: "b", Description: "Salary", Amount: money.MustParse("2500"), Category: "Income", Date: "2025-09-20"},
		},
		Settings: settings.Default(),
	}

	require.NoError(t, s.Save(ctx, state))

	got, err := s.Load(ctx)
	require.NoError(t, err)

	require.Len(t, got.Transactions, 2)
	assert.Equal(t, state.Transactions[0].ID, got.Transactions[0].ID)
	assert.Equal(t, state.Transactions[0].Description, got.Transactions[0].Description)
	assert.True(t, got.Transactions[0].Amount.Equal(state.Transactions[0].Amount))
	assert.Equal(t, state.Transactions[0].Date, got.Transactions[0].Date)
	assert.Equal(t, state.Settings.Currency, got.Settings.Currency)
	assert.True(t, got.Settings.BudgetCap.Equal(state.Settings.BudgetCap))
	assert.Equal(t, state.Settings.ExchangeRates, got.Settings.ExchangeRates)
}

func TestSave_Overwrites(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	first := &ledger.State{
		Transactions: []transaction.Transaction{{ID: "a", Description: "First", Date: "2025-09-01"}},
		Settings:     settings.Default(),
	}
	require.NoError(t, s.Save(ctx, first))

	second := &ledger.State{Settings: settings.Default()}
	require.NoError(t, s.Save(ctx, second))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Transactions, "a later save replaces the whole document")
}

package export_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pennyledger/internal/export"
	"pennyledger/internal/ledger"
	"pennyledger/internal/money"
	"pennyledger/internal/settings"
	"pennyledger/internal/transaction"
)

type staticSource struct {
	state ledger.State
}

func (s staticSource) Snapshot() ledger.State { return s.state }

func testState() ledger.State {
	return ledger.State{
		Transactions: []transaction.Transaction{
			{ID: "1", Description: `Lunch at "Mario's"`, Amount: money.MustParse("-25.50"), Category: "Food", Date: "2025-09-25"},
			{ID: "2", Description: "Salary", Amount: money.MustParse("2500"), Category: "Income", Date: "2025-09-20"},
		},
		Settings: settings.Default(),
	}
}

func TestService_JSON(t *testing.T) {
	var buf bytes.Buffer

	svc := export.NewService(staticSource{state: testState()})
	require.NoError(t, svc.JSON(&buf))

	var doc struct {
		Transactions []transaction.Transaction `json:"transactions"`
		Settings     settings.Settings         `json:"settings"`
		Exported     string                    `json:"exported"`
	}

	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Transactions, 2)
	assert.Equal(t, "1", doc.Transactions[0].ID)
	assert.Equal(t, settings.USD, doc.Settings.Currency)
	assert.NotEmpty(t, doc.Exported)

	// Amounts stay numeric in the document.
	assert.Contains(t, buf.String(), `"amount": -25.5`)
}

func TestService_CSV(t *testing.T) {
	var buf bytes.Buffer

	svc := export.NewService(staticSource{state: testState()})
	require.NoError(t, svc.CSV(&buf))

	want := "Date,Description,Category,Amount\n" +
		"2025-09-25,\"Lunch at \"\"Mario's\"\"\",Food,-25.5\n" +
		"2025-09-20,\"Salary\",Income,2500\n"

	assert.Equal(t, want, buf.String())
}

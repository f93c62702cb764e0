package transaction

import (
	"errors"
	"time"

	"pennyledger/internal/money"
)

// Type represents the direction of a transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// ErrNotFound is returned when a transaction id is not present in the ledger.
var ErrNotFound = errors.New("transaction not found")

// Transaction is a single dated, categorized, signed monetary movement.
// Amounts are stored in the canonical currency (USD); positive means
// income, negative means expense. ID and CreatedAt are assigned once on
// creation and never change.
type Transaction struct {
	ID          string       `json:"id"`
	Description string       `json:"description"`
	Amount      money.Amount `json:"amount"`
	Category    string       `json:"category"`
	Date        string       `json:"date"` // calendar date, YYYY-MM-DD
	CreatedAt   time.Time    `json:"createdAt,omitzero"`
}

// TypeOf reports whether the transaction is income or expense based on
// the sign of its amount. Zero amounts count as income.
func (t Transaction) TypeOf() Type {
	if t.Amount.IsNegative() {
		return TypeExpense
	}

	return TypeIncome
}

// IsExpense reports whether the amount is negative.
func (t Transaction) IsExpense() bool { return t.Amount.IsNegative() }

// CreateParams carries the raw user-entered fields for a new transaction.
// All values are unvalidated strings; the ledger runs them through the
// validator before committing anything.
type CreateParams struct {
	Description string
	Amount      string // unsigned decimal, at most 2 fraction digits
	Type        Type
	Category    string
	Date        string
}

// UpdatePatch carries the fields to merge onto an existing transaction.
// Nil fields are left untouched. ID and CreatedAt cannot be patched.
type UpdatePatch struct {
	Description *string
	Amount      *string // unsigned; sign comes from Type or the existing record
	Type        *Type
	Category    *string
	Date        *string
}

package ledger

import (
	"pennyledger/internal/settings"
	"pennyledger/internal/transaction"
)

// State is the persisted document: the full transaction collection plus
// user settings. Its JSON layout is the durable wire format, so a
// load(save(x)) round trip reproduces x exactly.
type State struct {
	Transactions []transaction.Transaction `json:"transactions"`
	Settings     settings.Settings         `json:"settings"`
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := State{
		Transactions: make([]transaction.Transaction, len(s.Transactions)),
		Settings:     s.Settings.Clone(),
	}
	copy(out.Transactions, s.Transactions)

	return out
}

package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"pennyledger/internal/transaction"
)

// jsonParser reads a `{"transactions": [...]}` document. Settings in the
// document are ignored; ids are discarded later by the ledger, which
// assigns fresh ones on import.
type jsonParser struct{}

func (jsonParser) Parse(r io.Reader) ([]transaction.Transaction, error) {
	var doc struct {
		Transactions *[]transaction.Transaction `json:"transactions"`
	}

	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	if doc.Transactions == nil {
		return nil, errors.New("missing transactions field")
	}

	return *doc.Transactions, nil
}

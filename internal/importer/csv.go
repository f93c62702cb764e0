package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "pennyledger/internal/encoding"
	"pennyledger/internal/money"
	"pennyledger/internal/transaction"
)

// csvParser reads the application's own CSV export format
// (Date,Description,Category,Amount), so an exported file round-trips
// back in. Input encoding is detected and normalized first.
type csvParser struct{}

var csvHeader = []string{"Date", "Description", "Category", "Amount"}

func (csvParser) Parse(r io.Reader) ([]transaction.Transaction, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = len(csvHeader)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 || !headerMatches(rows[0]) {
		return nil, fmt.Errorf("expected header %s", strings.Join(csvHeader, ","))
	}

	txs := make([]transaction.Transaction, 0, len(rows)-1)

	for i, row := range rows[1:] {
		amt, err := money.Parse(strings.TrimSpace(row[3]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		txs = append(txs, transaction.Transaction{
			Date:        strings.TrimSpace(row[0]),
			Description: row[1],
			Category:    strings.TrimSpace(row[2]),
			Amount:      amt,
		})
	}

	return txs, nil
}

func headerMatches(row []string) bool {
	for i, want := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(row[i]), want) {
			return false
		}
	}

	return true
}

// Package importer parses external documents into transactions ready to
// append to the ledger. A parse failure never mutates anything; the
// caller only imports a fully parsed batch.
package importer

import (
	"fmt"
	"io"

	"pennyledger/internal/transaction"
)

// Format identifies a supported import document format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

type Parser interface {
	Parse(r io.Reader) ([]transaction.Transaction, error)
}

type Service struct {
	json Parser
	csv  Parser
}

func NewService() *Service {
	return &Service{
		json: jsonParser{},
		csv:  csvParser{},
	}
}

// Parse reads the document with the parser for the given format.
func (s *Service) Parse(format Format, r io.Reader) ([]transaction.Transaction, error) {
	switch format {
	case FormatJSON:
		return s.json.Parse(r)
	case FormatCSV:
		return s.csv.Parse(r)
	}

	return nil, fmt.Errorf("unknown import format: %s", format)
}

// Package export renders the ledger as downloadable JSON and CSV
// documents.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"pennyledger/internal/ledger"
	"pennyledger/internal/settings"
	"pennyledger/internal/transaction"
)

// Source supplies the document to export.
type Source interface {
	Snapshot() ledger.State
}

type Service struct {
	src Source
	now func() time.Time
}

func NewService(src Source) *Service {
	return &Service{src: src, now: time.Now}
}

type jsonDocument struct {
	Transactions []transaction.Transaction `json:"transactions"`
	Settings     settings.Settings         `json:"settings"`
	Exported     string                    `json:"exported"`
}

// JSON writes the full state plus an export timestamp, indented for
// human consumption.
func (s *Service) JSON(w io.Writer) error {
	st := s.src.Snapshot()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(jsonDocument{
		Transactions: st.Transactions,
		Settings:     st.Settings,
		Exported:     s.now().UTC().Format(time.RFC3339),
	}); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}

	return nil
}

// CSV writes one row per transaction in ledger order. The description
// is always double-quoted with internal quotes doubled; the amount is
// the raw signed value. encoding/csv quotes only when it must, so the
// rows are assembled directly to keep the fixed quoting.
func (s *Service) CSV(w io.Writer) error {
	st := s.src.Snapshot()

	if _, err := io.WriteString(w, "Date,Description,Category,Amount\n"); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, tx := range st.Transactions {
		desc := `"` + strings.ReplaceAll(tx.Description, `"`, `""`) + `"`

		row := fmt.Sprintf("%s,%s,%s,%s\n", tx.Date, desc, tx.Category, tx.Amount.String())
		if _, err := io.WriteString(w, row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	return nil
}

package importfile

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pennyledger/internal/importer"
	"pennyledger/internal/ledger"
)

type Handler struct {
	importSvc *importer.Service
	ledgerSvc *ledger.Service
}

func NewHandler(importSvc *importer.Service, ledgerSvc *ledger.Service) *Handler {
	return &Handler{importSvc: importSvc, ledgerSvc: ledgerSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/json", h.importAs(importer.FormatJSON))
	r.Post("/csv", h.importAs(importer.FormatCSV))
}

type importResponse struct {
	Imported int `json:"imported"`
}

func (h *Handler) importAs(format importer.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txs, err := h.importSvc.Parse(format, r.Body)
		if err != nil {
			// Parse failures reject the whole document; the ledger is untouched.
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		n, err := h.ledgerSvc.Import(r.Context(), txs)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(importResponse{Imported: n}); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

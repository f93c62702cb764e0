package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pennyledger/internal/export"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/json", h.exportJSON)
	r.Get("/csv", h.exportCSV)
}

func (h *Handler) exportJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", attachment("json"))

	if err := h.svc.JSON(w); err != nil {
		slog.Error("failed to write json export", "error", err)
	}
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", attachment("csv"))

	if err := h.svc.CSV(w); err != nil {
		slog.Error("failed to write csv export", "error", err)
	}
}

func attachment(ext string) string {
	return fmt.Sprintf(`attachment; filename="finance-export-%s.%s"`,
		time.Now().Format(time.DateOnly), ext)
}

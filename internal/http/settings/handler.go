package settings

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pennyledger/internal/ledger"
	"pennyledger/internal/money"
	"pennyledger/internal/settings"
	"pennyledger/internal/validate"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Patch("/", h.update)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.Settings())
}

type updateSettingsRequest struct {
	Currency  *settings.Currency `json:"currency,omitempty"`
	BudgetCap *money.Amount      `json:"budgetCap,omitempty"`
	Theme     *settings.Theme    `json:"theme,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cfg, err := h.svc.UpdateSettings(r.Context(), settings.Patch{
		Currency:  req.Currency,
		BudgetCap: req.BudgetCap,
		Theme:     req.Theme,
	})
	if err != nil {
		var verr *ledger.ValidationError
		if errors.As(err, &verr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)

			body := struct {
				Error  string                     `json:"error"`
				Fields map[string]validate.Result `json:"fields"`
			}{Error: verr.Error(), Fields: verr.Fields}

			if err := json.NewEncoder(w).Encode(body); err != nil {
				slog.Error("failed to encode response", "error", err)
			}

			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	writeJSON(w, cfg)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

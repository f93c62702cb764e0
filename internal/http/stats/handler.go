package stats

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pennyledger/internal/currency"
	"pennyledger/internal/ledger"
	"pennyledger/internal/money"
	"pennyledger/internal/stats"
)

type Handler struct {
	svc *ledger.Service
	now func() time.Time
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/totals", h.totals)
	r.Get("/last7days", h.last7Days)
	r.Get("/budget", h.budget)
}

// formatter returns the display renderer for the user's selected
// currency.
func (h *Handler) formatter() func(money.Amount) string {
	cfg := h.svc.Settings()
	return currency.Formatter(string(cfg.Currency), cfg.ExchangeRates)
}

type totalsResponse struct {
	stats.Totals

	Display struct {
		Balance  string `json:"balance"`
		Income   string `json:"income"`
		Expenses string `json:"expenses"`
	} `json:"display"`
}

func (h *Handler) totals(w http.ResponseWriter, r *http.Request) {
	format := h.formatter()

	resp := totalsResponse{Totals: stats.ComputeTotals(h.svc.Transactions())}
	resp.Display.Balance = format(resp.Balance)
	resp.Display.Income = format(resp.Income)
	resp.Display.Expenses = format(resp.Expenses)

	writeJSON(w, resp)
}

type last7DaysResponse struct {
	stats.Report

	Status          stats.Status `json:"status"`
	DisplaySpent    string       `json:"displaySpent"`
	DisplayByDay    [7]string    `json:"displayByDay"`
	BudgetPercent   float64      `json:"budgetPercent"`
	BudgetRemaining money.Amount `json:"budgetRemaining"`
}

func (h *Handler) last7Days(w http.ResponseWriter, r *http.Request) {
	cfg := h.svc.Settings()
	format := h.formatter()

	rep := stats.Last7Days(h.svc.Transactions(), h.now())
	util := stats.BudgetUtilization(rep.TotalSpent, cfg.BudgetCap)

	resp := last7DaysResponse{
		Report:          rep,
		Status:          stats.Classify(rep.TotalSpent, cfg.BudgetCap, format),
		DisplaySpent:    format(rep.TotalSpent),
		BudgetPercent:   util.Percentage,
		BudgetRemaining: util.Remaining,
	}

	for i, amt := range rep.DailyTotals {
		resp.DisplayByDay[i] = format(amt)
	}

	writeJSON(w, resp)
}

type budgetResponse struct {
	stats.Utilization

	Spent        money.Amount `json:"spent"`
	Cap          money.Amount `json:"cap"`
	DisplaySpent string       `json:"displaySpent"`
	DisplayLeft  string       `json:"displayLeft"`
}

func (h *Handler) budget(w http.ResponseWriter, r *http.Request) {
	cfg := h.svc.Settings()
	format := h.formatter()

	totals := stats.ComputeTotals(h.svc.Transactions())
	util := stats.BudgetUtilization(totals.Expenses, cfg.BudgetCap)

	writeJSON(w, budgetResponse{
		Utilization:  util,
		Spent:        totals.Expenses,
		Cap:          cfg.BudgetCap,
		DisplaySpent: format(totals.Expenses),
		DisplayLeft:  format(util.Remaining),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

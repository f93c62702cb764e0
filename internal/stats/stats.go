// Package stats derives aggregate figures from the transaction
// collection. Everything here is a pure function over a snapshot; the
// ledger is never mutated.
package stats

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pennyledger/internal/money"
	"pennyledger/internal/transaction"
)

var hundred = decimal.NewFromInt(100)

// Totals are the whole-ledger aggregates. Balance = Income - Expenses
// always holds; all three come out of a single pass.
type Totals struct {
	Balance  money.Amount `json:"balance"`
	Income   money.Amount `json:"income"`
	Expenses money.Amount `json:"expenses"`
}

// ComputeTotals sums the ledger: balance over signed amounts, income
// over positive amounts, expenses over magnitudes of negative amounts.
func ComputeTotals(txs []transaction.Transaction) Totals {
	var t Totals

	for _, tx := range txs {
		t.Balance = t.Balance.Add(tx.Amount)

		if tx.Amount.IsNegative() {
			t.Expenses = t.Expenses.Add(tx.Amount.Abs())
		} else {
			t.Income = t.Income.Add(tx.Amount)
		}
	}

	return t
}

// Utilization describes spending against the budget cap. Remaining is
// clamped at zero and Percentage at [0, 100]; a non-positive cap yields
// zero percent.
type Utilization struct {
	Remaining  money.Amount `json:"remaining"`
	Percentage float64      `json:"percentage"`
}

func BudgetUtilization(expenses, cap money.Amount) Utilization {
	u := Utilization{Remaining: cap.Sub(expenses)}

	if u.Remaining.IsNegative() {
		u.Remaining = money.Zero
	}

	if cap.IsPositive() {
		pct, _ := expenses.Decimal().Div(cap.Decimal()).Mul(hundred).Float64()

		switch {
		case pct < 0:
			pct = 0
		case pct > 100:
			pct = 100
		}

		u.Percentage = pct
	}

	return u
}

// Report summarizes expense activity over the seven calendar days ending
// at the reference date. DailyTotals[0] is the oldest day (ref-6),
// DailyTotals[6] is the reference day; DayLabels holds the matching
// short weekday names.
type Report struct {
	Records     int             `json:"records"`
	TotalSpent  money.Amount    `json:"totalSpent"`
	TopCategory string          `json:"topCategory"`
	DailyTotals [7]money.Amount `json:"dailyTotals"`
	DayLabels   [7]string       `json:"dayLabels"`
}

// NoTopCategory is the TopCategory sentinel when the window holds no
// expenses.
const NoTopCategory = "none"

// Last7Days restricts the ledger to expense transactions dated on or
// after ref-7 days (date-only comparison, lower bound inclusive) and
// aggregates them. Ties for the top category go to the category
// encountered first. Dates that pass the calendar pattern but do not
// parse (e.g. Feb 30) are skipped.
func Last7Days(txs []transaction.Transaction, ref time.Time) Report {
	refDay := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	lower := refDay.AddDate(0, 0, -7)

	rep := Report{TopCategory: NoTopCategory}

	for i := range rep.DayLabels {
		rep.DayLabels[i] = refDay.AddDate(0, 0, i-6).Format("Mon")
	}

	byCategory := map[string]money.Amount{}

	var order []string

	for _, tx := range txs {
		if !tx.IsExpense() {
			continue
		}

		day, err := time.Parse(time.DateOnly, tx.Date)
		if err != nil || day.Before(lower) {
			continue
		}

		spent := tx.Amount.Abs()
		rep.Records++
		rep.TotalSpent = rep.TotalSpent.Add(spent)

		if _, ok := byCategory[tx.Category]; !ok {
			order = append(order, tx.Category)
		}

		byCategory[tx.Category] = byCategory[tx.Category].Add(spent)

		if bucket := 6 + int(day.Sub(refDay).Hours()/24); bucket >= 0 && bucket <= 6 {
			rep.DailyTotals[bucket] = rep.DailyTotals[bucket].Add(spent)
		}
	}

	top := money.Zero

	for _, cat := range order {
		if byCategory[cat].Cmp(top) > 0 {
			top = byCategory[cat]
			rep.TopCategory = cat
		}
	}

	return rep
}

// Level grades how urgent the spending situation is.
type Level string

const (
	LevelCritical Level = "critical"
	LevelHigh     Level = "high"
	LevelMedium   Level = "medium"
	LevelInfo     Level = "info"
	LevelNormal   Level = "normal"
)

// Status is the advisory shown for spending against the cap.
type Status struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// FormatFunc renders a canonical amount as a display string in the
// user's currency.
type FormatFunc func(money.Amount) string

// Classify grades spending against the cap. The exceeded-cap check runs
// before the zero-spending check, so blowing the budget is never
// reported as "no spending".
func Classify(spent, cap money.Amount, format FormatFunc) Status {
	remaining := cap.Sub(spent)
	pct := BudgetUtilization(spent, cap).Percentage

	switch {
	case remaining.IsNegative():
		return Status{
			Level:   LevelCritical,
			Message: fmt.Sprintf("Exceeded cap by %s!", format(remaining.Abs())),
		}
	case pct >= 90:
		return Status{
			Level:   LevelHigh,
			Message: fmt.Sprintf("%.1f%% used. %s left.", pct, format(remaining)),
		}
	case pct >= 75:
		return Status{
			Level:   LevelMedium,
			Message: fmt.Sprintf("%.1f%% used. %s left.", pct, format(remaining)),
		}
	case spent.IsZero():
		return Status{
			Level:   LevelInfo,
			Message: "No spending in last 7 days. Set a cap to track.",
		}
	}

	return Status{
		Level:   LevelNormal,
		Message: fmt.Sprintf("%s remaining of %s.", format(remaining), format(cap)),
	}
}

package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"pennyledger/internal/money"
	"pennyledger/internal/settings"
	"pennyledger/internal/transaction"
	"pennyledger/internal/validate"
)

// ErrNoState is returned by a Store when nothing has been persisted yet.
var ErrNoState = errors.New("no persisted state")

//go:generate mockgen -source=service.go -destination=store_mock.go -package=ledger

// Store is the persistence gateway. It durably saves and restores the
// whole ledger document; every mutation is followed by a synchronous
// Save so durable state never trails the in-memory collection.
type Store interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, state *State) error
}

// Notifier receives user-facing messages emitted after mutations. The
// presentation collaborator decides how to surface them; the core never
// blocks on acknowledgment.
type Notifier interface {
	Notify(message, severity string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message, severity string)

func (f NotifierFunc) Notify(message, severity string) { f(message, severity) }

// SeedFunc supplies fallback data when no usable persisted state exists.
type SeedFunc func() ([]transaction.Transaction, settings.Settings)

// ValidationError carries per-field errors and warnings for a rejected
// mutation. It is recoverable: the ledger is untouched when it occurs.
type ValidationError struct {
	Fields map[string]validate.Result
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}

	sort.Strings(names)

	return "invalid fields: " + strings.Join(names, ", ")
}

// Service owns the ordered transaction collection and settings. All
// operations run to completion under a single lock, preserving the
// one-mutator-at-a-time model, and every committed mutation is saved
// through the Store before control returns. If the save fails the
// in-memory change is rolled back, so memory and disk never diverge.
type Service struct {
	store    Store
	seed     SeedFunc
	notifier Notifier
	now      func() time.Time

	mu    sync.Mutex
	state State
}

func NewService(store Store, seed SeedFunc, notifier Notifier) *Service {
	return &Service{
		store:    store,
		seed:     seed,
		notifier: notifier,
		now:      time.Now,
		state:    State{Settings: settings.Default()},
	}
}

// Load restores state from the store. A missing or undecodable document,
// or an empty transaction collection, degrades to the seed data rather
// than failing; the seeded state is saved back immediately.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.store.Load(ctx)
	if err == nil && len(st.Transactions) > 0 {
		s.state = *st
		return
	}

	if err != nil && !errors.Is(err, ErrNoState) {
		slog.Warn("discarding unreadable persisted state", "error", err)
	}

	if s.seed != nil {
		txs, cfg := s.seed()
		s.state = State{Transactions: txs, Settings: cfg}
	}

	if err := s.save(ctx); err != nil {
		slog.Error("failed to persist seeded state", "error", err)
	}
}

// Add validates the raw fields, assigns a fresh id and creation
// timestamp, appends the transaction and saves. Duplicate content is
// never rejected; only id uniqueness is guaranteed, by generation.
func (s *Service) Add(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
	fields := map[string]validate.Result{
		"description": validate.Field("description", params.Description),
		"amount":      validate.Field("amount", params.Amount),
		"date":        validate.Field("date", params.Date),
		"category":    validate.Field("category", params.Category),
	}
	fields["type"] = validateType(params.Type)

	if err := validationError(fields); err != nil {
		return nil, err
	}

	amt := money.MustParse(params.Amount)
	if params.Type == transaction.TypeExpense {
		amt = amt.Neg()
	}

	tx := transaction.Transaction{
		ID:          uuid.NewString(),
		Description: params.Description,
		Amount:      amt,
		Category:    params.Category,
		Date:        params.Date,
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Transactions = append(s.state.Transactions, tx)

	if err := s.save(ctx); err != nil {
		s.state.Transactions = s.state.Transactions[:len(s.state.Transactions)-1]
		return nil, err
	}

	s.notify("Transaction added")

	return &tx, nil
}

// Update merges the patch onto the transaction with the given id. Fields
// not present in the patch keep their value; id and createdAt are
// immutable. Returns transaction.ErrNotFound for an unknown id.
func (s *Service) Update(ctx context.Context, id string, patch transaction.UpdatePatch) (*transaction.Transaction, error) {
	fields := map[string]validate.Result{}

	if patch.Description != nil {
		fields["description"] = validate.Field("description", *patch.Description)
	}

	if patch.Amount != nil {
		fields["amount"] = validate.Field("amount", *patch.Amount)
	}

	if patch.Date != nil {
		fields["date"] = validate.Field("date", *patch.Date)
	}

	if patch.Category != nil {
		fields["category"] = validate.Field("category", *patch.Category)
	}

	if patch.Type != nil {
		fields["type"] = validateType(*patch.Type)
	}

	if err := validationError(fields); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return nil, transaction.ErrNotFound
	}

	orig := s.state.Transactions[idx]
	tx := orig

	if patch.Description != nil {
		tx.Description = *patch.Description
	}

	if patch.Category != nil {
		tx.Category = *patch.Category
	}

	if patch.Date != nil {
		tx.Date = *patch.Date
	}

	typ := orig.TypeOf()
	if patch.Type != nil {
		typ = *patch.Type
	}

	if patch.Amount != nil {
		tx.Amount = money.MustParse(*patch.Amount)
	} else {
		tx.Amount = tx.Amount.Abs()
	}

	if typ == transaction.TypeExpense {
		tx.Amount = tx.Amount.Neg()
	}

	s.state.Transactions[idx] = tx

	if err := s.save(ctx); err != nil {
		s.state.Transactions[idx] = orig
		return nil, err
	}

	s.notify("Transaction updated")

	return &tx, nil
}

// Remove excludes the transaction with the given id. A missing id is a
// silent no-op: removed is false and the ledger is unchanged.
func (s *Service) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return false, nil
	}

	removed := s.state.Transactions[idx]
	s.state.Transactions = append(s.state.Transactions[:idx], s.state.Transactions[idx+1:]...)

	if err := s.save(ctx); err != nil {
		s.state.Transactions = append(s.state.Transactions, transaction.Transaction{})
		copy(s.state.Transactions[idx+1:], s.state.Transactions[idx:])
		s.state.Transactions[idx] = removed

		return false, err
	}

	s.notify("Transaction deleted")

	return true, nil
}

// Find returns a copy of the transaction with the given id, or
// transaction.ErrNotFound.
func (s *Service) Find(id string) (*transaction.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return nil, transaction.ErrNotFound
	}

	tx := s.state.Transactions[idx]

	return &tx, nil
}

// Transactions returns a snapshot of the collection in insertion order.
func (s *Service) Transactions() []transaction.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]transaction.Transaction, len(s.state.Transactions))
	copy(out, s.state.Transactions)

	return out
}

// Filter returns the transactions whose description or category matches
// the search pattern (case-insensitive regular expression) and whose
// category equals the selector unless it is "all" or empty. An invalid
// pattern applies no search filter at all. The result is sorted by date
// descending; ties keep their original order.
func (s *Service) Filter(search, category string) []transaction.Transaction {
	list := s.Transactions()

	if search != "" {
		if re, err := regexp.Compile("(?i)" + search); err == nil {
			kept := list[:0]

			for _, tx := range list {
				if re.MatchString(tx.Description) || re.MatchString(tx.Category) {
					kept = append(kept, tx)
				}
			}

			list = kept
		}
	}

	if category != "" && category != "all" {
		kept := list[:0]

		for _, tx := range list {
			if tx.Category == category {
				kept = append(kept, tx)
			}
		}

		list = kept
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Date > list[j].Date
	})

	return list
}

// Categories returns the distinct categories in first-seen order.
func (s *Service) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.state.Transactions))

	var out []string

	for _, tx := range s.state.Transactions {
		if _, ok := seen[tx.Category]; ok {
			continue
		}

		seen[tx.Category] = struct{}{}
		out = append(out, tx.Category)
	}

	return out
}

// Import appends externally supplied transactions, assigning each a
// freshly generated id regardless of any id it carried. The whole batch
// is saved once; on failure nothing is kept.
func (s *Service) Import(ctx context.Context, txs []transaction.Transaction) (int, error) {
	if len(txs) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := len(s.state.Transactions)

	for _, tx := range txs {
		tx.ID = uuid.NewString()
		s.state.Transactions = append(s.state.Transactions, tx)
	}

	if err := s.save(ctx); err != nil {
		s.state.Transactions = s.state.Transactions[:prev]
		return 0, err
	}

	s.notify(fmt.Sprintf("Imported %d transactions", len(txs)))

	return len(txs), nil
}

// Settings returns a copy of the current settings.
func (s *Service) Settings() settings.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Settings.Clone()
}

// UpdateSettings overwrites the provided settings fields after
// validating them, then saves.
func (s *Service) UpdateSettings(ctx context.Context, patch settings.Patch) (settings.Settings, error) {
	fields := map[string]validate.Result{}

	if patch.Currency != nil && !patch.Currency.Valid() {
		fields["currency"] = validate.Result{Errors: []string{"Unknown currency"}}
	}

	if patch.Theme != nil && !patch.Theme.Valid() {
		fields["theme"] = validate.Result{Errors: []string{"Unknown theme"}}
	}

	if patch.BudgetCap != nil && !patch.BudgetCap.IsPositive() {
		fields["budgetCap"] = validate.Result{Errors: []string{"Must be a positive number"}}
	}

	if err := validationError(fields); err != nil {
		return settings.Settings{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orig := s.state.Settings

	if patch.Currency != nil {
		s.state.Settings.Currency = *patch.Currency
	}

	if patch.Theme != nil {
		s.state.Settings.Theme = *patch.Theme
	}

	if patch.BudgetCap != nil {
		s.state.Settings.BudgetCap = *patch.BudgetCap
	}

	if err := s.save(ctx); err != nil {
		s.state.Settings = orig
		return settings.Settings{}, err
	}

	s.notify("Settings saved")

	return s.state.Settings.Clone(), nil
}

// Snapshot returns a deep copy of the whole persisted document.
func (s *Service) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

// index returns the position of id in the collection, or -1. Callers
// hold the lock.
func (s *Service) index(id string) int {
	for i, tx := range s.state.Transactions {
		if tx.ID == id {
			return i
		}
	}

	return -1
}

// save persists the current state. Callers hold the lock.
func (s *Service) save(ctx context.Context) error {
	st := s.state.Clone()

	if err := s.store.Save(ctx, &st); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}

	return nil
}

func (s *Service) notify(message string) {
	if s.notifier != nil {
		s.notifier.Notify(message, "info")
	}
}

func validateType(t transaction.Type) validate.Result {
	switch t {
	case transaction.TypeIncome, transaction.TypeExpense:
		return validate.Result{}
	case "":
		return validate.Result{Errors: []string{"Required"}}
	}

	return validate.Result{Errors: []string{"Must be income or expense"}}
}

// validationError collapses per-field results into a ValidationError,
// or nil when every checked field passed.
func validationError(fields map[string]validate.Result) error {
	failed := map[string]validate.Result{}

	for name, res := range fields {
		if !res.OK() {
			failed[name] = res
		}
	}

	if len(failed) == 0 {
		return nil
	}

	return &ValidationError{Fields: failed}
}

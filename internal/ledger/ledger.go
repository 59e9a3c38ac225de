// Package ledger holds the in-memory transaction store and budget registry.
package ledger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"wallet/internal/model"
)

// ErrNotFound is returned when an id or category has no matching entry.
var ErrNotFound = errors.New("not found")

// Order selects the sort applied by List.
type Order int

const (
	// OrderRecency sorts by created_at descending, newest first.
	// Used for the history view.
	OrderRecency Order = iota
	// OrderChronological sorts by stated date ascending. Used for CSV export.
	OrderChronological
)

// Ledger is the aggregate of all transactions plus the budget registry
// for one user. It is purely in-memory; callers persist it through the
// store package after every mutation.
type Ledger struct {
	transactions []model.Transaction
	budgets      []model.BudgetLimit // registry insertion order matters
	lastCreated  time.Time
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Restore rebuilds a ledger from previously persisted parts. Every
// record is validated; a record without an id (hand-edited files) gets
// a fresh one. The budget registry keeps the given order.
func Restore(transactions []model.Transaction, budgets []model.BudgetLimit) (*Ledger, error) {
	l := New()
	if err := l.ReplaceAll(transactions); err != nil {
		return nil, err
	}
	if err := l.ReplaceBudgets(budgets); err != nil {
		return nil, err
	}
	return l, nil
}

// Add validates and appends a new transaction, returning the stored
// record. An empty date defaults to today; an empty description gets
// the standard placeholder. The caller is responsible for persisting
// the ledger afterwards.
func (l *Ledger) Add(typ model.Type, amount float64, category, description, date string) (model.Transaction, error) {
	if date == "" {
		date = time.Now().Format(model.DateLayout)
	}
	if strings.TrimSpace(description) == "" {
		description = model.NoDescription
	}

	t := model.Transaction{
		ID:          model.NewID(),
		Type:        typ,
		Amount:      amount,
		Category:    strings.TrimSpace(category),
		Date:        date,
		Description: description,
		CreatedAt:   l.nextCreatedAt(),
	}
	if err := t.Validate(); err != nil {
		return model.Transaction{}, err
	}

	l.transactions = append(l.transactions, t)
	return t, nil
}

// nextCreatedAt returns a creation instant strictly after every
// previously issued one, so recency ordering never has real ties even
// when the clock is coarse.
func (l *Ledger) nextCreatedAt() time.Time {
	now := time.Now().UTC()
	if !now.After(l.lastCreated) {
		now = l.lastCreated.Add(time.Nanosecond)
	}
	l.lastCreated = now
	return now
}

// Get returns the transaction with the given id.
func (l *Ledger) Get(id string) (model.Transaction, error) {
	for _, t := range l.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Transaction{}, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
}

// Update edits the user-editable fields of an existing transaction.
// ID and CreatedAt are immutable. The ledger is unchanged on error.
func (l *Ledger) Update(id string, typ model.Type, amount float64, category, description, date string) (model.Transaction, error) {
	for i, t := range l.transactions {
		if t.ID != id {
			continue
		}
		updated := t
		updated.Type = typ
		updated.Amount = amount
		updated.Category = strings.TrimSpace(category)
		updated.Date = date
		updated.Description = description
		if strings.TrimSpace(updated.Description) == "" {
			updated.Description = model.NoDescription
		}
		if err := updated.Validate(); err != nil {
			return model.Transaction{}, err
		}
		l.transactions[i] = updated
		return updated, nil
	}
	return model.Transaction{}, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
}

// Delete removes exactly the transaction with the given id. Identity is
// the opaque id only; two records that render identically are still
// distinct.
func (l *Ledger) Delete(id string) error {
	for i, t := range l.transactions {
		if t.ID == id {
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("transaction %s: %w", id, ErrNotFound)
}

// Transactions returns a copy of the stored records in insertion order.
func (l *Ledger) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Len returns the number of stored transactions.
func (l *Ledger) Len() int {
	return len(l.transactions)
}

// List returns the transactions in the requested order. The returned
// slice is a copy; mutating it does not touch the ledger.
func (l *Ledger) List(order Order) []model.Transaction {
	out := l.Transactions()
	switch order {
	case OrderChronological:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Date != out[j].Date {
				return out[i].Date < out[j].Date
			}
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}

// ReplaceAll substitutes the whole transaction store, as used by
// import. The swap is atomic: if any record fails validation the
// existing store is left untouched.
func (l *Ledger) ReplaceAll(transactions []model.Transaction) error {
	replacement := make([]model.Transaction, 0, len(transactions))
	var last time.Time
	for i, t := range transactions {
		if t.ID == "" {
			t.ID = model.NewID()
		}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if t.CreatedAt.After(last) {
			last = t.CreatedAt
		}
		replacement = append(replacement, t)
	}
	l.transactions = replacement
	l.lastCreated = last
	return nil
}

// SetBudget sets or replaces the monthly limit for a category. New
// categories are appended, preserving registry insertion order.
func (l *Ledger) SetBudget(category string, limit float64) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return model.ErrEmptyCategory
	}
	if limit <= 0 {
		return model.ErrInvalidLimit
	}
	for i, b := range l.budgets {
		if b.Category == category {
			l.budgets[i].Limit = limit
			return nil
		}
	}
	l.budgets = append(l.budgets, model.BudgetLimit{Category: category, Limit: limit})
	return nil
}

// UnsetBudget removes a category from the registry. Transactions in
// that category are unaffected.
func (l *Ledger) UnsetBudget(category string) error {
	for i, b := range l.budgets {
		if b.Category == category {
			l.budgets = append(l.budgets[:i], l.budgets[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("budget %s: %w", category, ErrNotFound)
}

// BudgetFor returns the limit for a category, if one is tracked.
func (l *Ledger) BudgetFor(category string) (float64, bool) {
	for _, b := range l.budgets {
		if b.Category == category {
			return b.Limit, true
		}
	}
	return 0, false
}

// Budgets returns a copy of the registry in insertion order.
func (l *Ledger) Budgets() []model.BudgetLimit {
	out := make([]model.BudgetLimit, len(l.budgets))
	copy(out, l.budgets)
	return out
}

// ReplaceBudgets substitutes the whole budget registry, as used by
// import. Atomic like ReplaceAll.
func (l *Ledger) ReplaceBudgets(budgets []model.BudgetLimit) error {
	replacement := make([]model.BudgetLimit, 0, len(budgets))
	for _, b := range budgets {
		if strings.TrimSpace(b.Category) == "" {
			return model.ErrEmptyCategory
		}
		if b.Limit <= 0 {
			return fmt.Errorf("budget %s: %w", b.Category, model.ErrInvalidLimit)
		}
		replacement = append(replacement, b)
	}
	l.budgets = replacement
	return nil
}

// Package model defines domain types for the wallet ledger and reports.
package model

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Type distinguishes money coming in from money going out.
type Type string

const (
	Income  Type = "Income"
	Expense Type = "Expense"
)

// ParseType converts user input into a Type, case-insensitively.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return "", ErrInvalidType
	}
}

// DateLayout is the calendar-day format used for transaction dates.
const DateLayout = "2006-01-02"

// Validation errors reported by the ledger on bad input.
var (
	ErrInvalidType   = errors.New("type must be income or expense")
	ErrInvalidAmount = errors.New("amount must be a positive number")
	ErrEmptyCategory = errors.New("category is required")
	ErrInvalidDate   = errors.New("date must be YYYY-MM-DD")
	ErrInvalidLimit  = errors.New("budget limit must be positive")
)

// Placeholder used when a transaction is added without a description.
const NoDescription = "No description"

// ParseAmount converts user input into a positive amount. Both dot and
// comma decimal separators are accepted.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// Transaction is a single dated monetary event.
//
// Amount is always a positive magnitude; the sign of the event is
// carried by Type. CreatedAt is assigned once at insertion and is the
// authoritative recency key; Date is the user-stated calendar day and
// drives all monthly bucketing.
type Transaction struct {
	ID          string    `json:"id"`
	Type        Type      `json:"type"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewID returns a fresh opaque transaction identifier.
func NewID() string {
	return uuid.New().String()
}

// Signed returns the amount with its sign derived from the type.
func (t Transaction) Signed() float64 {
	if t.Type == Expense {
		return -t.Amount
	}
	return t.Amount
}

// MonthKey returns the YYYY-MM bucket of the transaction's stated date.
func (t Transaction) MonthKey() string {
	if len(t.Date) < 7 {
		return t.Date
	}
	return t.Date[:7]
}

// Validate checks the structural invariants of a transaction record.
func (t Transaction) Validate() error {
	if t.Type != Income && t.Type != Expense {
		return ErrInvalidType
	}
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// SuggestedCategories returns the conventional category set for a type.
// Categories are suggestions only; the ledger accepts any non-empty name.
func SuggestedCategories(typ Type) []string {
	if typ == Income {
		return []string{"Salary", "Freelance", "Investment", "Gift", "Other"}
	}
	return []string{"Food", "Transport", "Housing", "Utilities", "Health", "Entertainment", "Shopping", "General"}
}

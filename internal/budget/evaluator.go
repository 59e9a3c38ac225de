// Package budget evaluates monthly category spend against the registry.
package budget

import (
	"fmt"
	"time"

	"wallet/internal/ledger"
	"wallet/internal/model"
)

// WarningThreshold is the share of the limit at which a category is
// flagged before it is exceeded.
const WarningThreshold = 0.80

// CurrentMonth returns the YYYY-MM bucket for the present day.
func CurrentMonth() string {
	return time.Now().Format("2006-01")
}

// Evaluate computes spend-vs-limit for one tracked category in one
// month. Only Expense transactions whose stated date falls in the
// month count towards spend.
func Evaluate(l *ledger.Ledger, category, month string) (model.BudgetReport, error) {
	limit, ok := l.BudgetFor(category)
	if !ok {
		return model.BudgetReport{}, fmt.Errorf("budget %s: %w", category, ledger.ErrNotFound)
	}
	return evaluate(l.Transactions(), category, limit, month), nil
}

// EvaluateAll evaluates every tracked category for the given month, in
// registry insertion order.
func EvaluateAll(l *ledger.Ledger, month string) []model.BudgetReport {
	transactions := l.Transactions()
	budgets := l.Budgets()

	reports := make([]model.BudgetReport, 0, len(budgets))
	for _, b := range budgets {
		reports = append(reports, evaluate(transactions, b.Category, b.Limit, month))
	}
	return reports
}

func evaluate(transactions []model.Transaction, category string, limit float64, month string) model.BudgetReport {
	var spent float64
	for _, t := range transactions {
		if t.Type == model.Expense && t.Category == category && t.MonthKey() == month {
			spent += t.Amount
		}
	}

	r := model.BudgetReport{
		Category:  category,
		Month:     month,
		Spent:     spent,
		Limit:     limit,
		Remaining: limit - spent,
	}
	if limit > 0 {
		r.Percent = spent / limit * 100
	}

	switch {
	case spent > limit:
		r.Status = model.Exceeded
	case limit > 0 && spent/limit >= WarningThreshold:
		r.Status = model.Warning
	default:
		r.Status = model.OnTrack
	}
	return r
}

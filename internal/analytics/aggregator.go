// Package analytics computes read-only rollups and filters over the
// transaction store.
package analytics

import (
	"sort"
	"strings"

	"wallet/internal/model"
)

// TypeFilter selects which transaction types a filter admits.
type TypeFilter string

const (
	TypeAll     TypeFilter = "All"
	TypeIncome  TypeFilter = TypeFilter(model.Income)
	TypeExpense TypeFilter = TypeFilter(model.Expense)
)

// CategoryAll is the category filter value that admits every category.
const CategoryAll = "All"

// Filter returns the transactions currently visible under the three
// AND-combined predicates, preserving input order. The text predicate
// is a case-insensitive substring match against description or
// category; empty text matches everything. Filter never mutates the
// store — it is a visibility mask, not a deletion.
func Filter(transactions []model.Transaction, text string, typ TypeFilter, category string) []model.Transaction {
	var visible []model.Transaction
	for _, t := range transactions {
		if typ != TypeAll && typ != "" && string(t.Type) != string(typ) {
			continue
		}
		if category != CategoryAll && category != "" && t.Category != category {
			continue
		}
		if text != "" &&
			!containsIgnoreCase(t.Description, text) &&
			!containsIgnoreCase(t.Category, text) {
			continue
		}
		visible = append(visible, t)
	}
	return visible
}

// ByCategory groups transactions of one type by category, sorted by
// total descending. Percentages are shares of the type's grand total.
func ByCategory(transactions []model.Transaction, typ model.Type) []model.CategorySummary {
	catMap := make(map[string]*model.CategorySummary)
	var grandTotal float64

	for _, t := range transactions {
		if t.Type != typ {
			continue
		}
		cs, ok := catMap[t.Category]
		if !ok {
			cs = &model.CategorySummary{Category: t.Category}
			catMap[t.Category] = cs
		}
		cs.Total += t.Amount
		cs.Count++
		grandTotal += t.Amount
	}

	categories := make([]model.CategorySummary, 0, len(catMap))
	for _, cs := range catMap {
		cs.Average = cs.Total / float64(cs.Count)
		if grandTotal > 0 {
			cs.PercentOfTotal = cs.Total / grandTotal * 100
		}
		categories = append(categories, *cs)
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Total != categories[j].Total {
			return categories[i].Total > categories[j].Total
		}
		return categories[i].Category < categories[j].Category
	})

	return categories
}

// MonthOrder selects the row ordering of ByMonth.
type MonthOrder int

const (
	// ReportOrder lists the most recent month first, for tables.
	ReportOrder MonthOrder = iota
	// TrendOrder lists months ascending, for plots.
	TrendOrder
)

// ByMonth groups transactions by the YYYY-MM bucket of their stated
// date. Only months with at least one transaction produce a row.
func ByMonth(transactions []model.Transaction, order MonthOrder) []model.MonthlySummary {
	monthMap := make(map[string]*model.MonthlySummary)

	for _, t := range transactions {
		key := t.MonthKey()
		ms, ok := monthMap[key]
		if !ok {
			ms = &model.MonthlySummary{Month: key}
			monthMap[key] = ms
		}
		if t.Type == model.Income {
			ms.IncomeTotal += t.Amount
		} else {
			ms.ExpenseTotal += t.Amount
		}
		ms.Count++
	}

	months := make([]model.MonthlySummary, 0, len(monthMap))
	for _, ms := range monthMap {
		ms.Balance = ms.IncomeTotal - ms.ExpenseTotal
		months = append(months, *ms)
	}
	sort.Slice(months, func(i, j int) bool {
		if order == TrendOrder {
			return months[i].Month < months[j].Month
		}
		return months[i].Month > months[j].Month
	})

	return months
}

// Totals sums income and expenses over the given transactions. Balance
// is the figure shown as the current balance.
func Totals(transactions []model.Transaction) model.Totals {
	var totals model.Totals
	for _, t := range transactions {
		if t.Type == model.Income {
			totals.TotalIncome += t.Amount
		} else {
			totals.TotalExpense += t.Amount
		}
	}
	totals.Balance = totals.TotalIncome - totals.TotalExpense
	return totals
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

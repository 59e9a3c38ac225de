package model

// CategorySummary holds the rollup for one category within one type.
type CategorySummary struct {
	Category       string
	Total          float64
	Count          int
	Average        float64
	PercentOfTotal float64 // share of the type's grand total, 0-100
}

// MonthlySummary holds the rollup for one YYYY-MM bucket.
type MonthlySummary struct {
	Month        string
	IncomeTotal  float64
	ExpenseTotal float64
	Balance      float64
	Count        int
}

// Totals holds the overall income/expense sums and the current balance.
type Totals struct {
	TotalIncome  float64
	TotalExpense float64
	Balance      float64
}

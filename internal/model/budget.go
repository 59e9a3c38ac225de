package model

// BudgetLimit is a monthly spending cap for one expense category.
type BudgetLimit struct {
	Category string
	Limit    float64
}

// BudgetStatus classifies monthly spend against a category limit.
type BudgetStatus string

const (
	OnTrack  BudgetStatus = "On Track"
	Warning  BudgetStatus = "Warning"
	Exceeded BudgetStatus = "Exceeded"
)

// BudgetReport is the evaluated state of one category for one month.
type BudgetReport struct {
	Category  string
	Month     string // YYYY-MM
	Spent     float64
	Limit     float64
	Remaining float64
	Percent   float64 // 0-100
	Status    BudgetStatus
}

package budget

import (
	"errors"
	"testing"

	"wallet/internal/ledger"
	"wallet/internal/model"
)

func newLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l := ledger.New()
	if err := l.SetBudget("Food", 100); err != nil {
		t.Fatalf("SetBudget: %v", err)
	}
	return l
}

func addExpense(t *testing.T, l *ledger.Ledger, amount float64, category, date string) {
	t.Helper()
	if _, err := l.Add(model.Expense, amount, category, "", date); err != nil {
		t.Fatalf("Add: %v", err)
	}
}

func TestEvaluateWarningThenExceeded(t *testing.T) {
	l := newLedger(t)
	addExpense(t, l, 40, "Food", "2024-06-03")
	addExpense(t, l, 45, "Food", "2024-06-20")

	r, err := Evaluate(l, "Food", "2024-06")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if r.Spent != 85 {
		t.Fatalf("spent = %v, want 85", r.Spent)
	}
	if r.Percent != 85 {
		t.Fatalf("percent = %v, want 85", r.Percent)
	}
	if r.Status != model.Warning {
		t.Fatalf("status = %v, want Warning", r.Status)
	}

	addExpense(t, l, 20, "Food", "2024-06-25")
	r, err = Evaluate(l, "Food", "2024-06")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if r.Spent != 105 {
		t.Fatalf("spent = %v, want 105", r.Spent)
	}
	if r.Status != model.Exceeded {
		t.Fatalf("status = %v, want Exceeded", r.Status)
	}
	if r.Remaining != -5 {
		t.Fatalf("remaining = %v, want -5", r.Remaining)
	}
}

func TestEvaluateOnTrack(t *testing.T) {
	l := newLedger(t)
	addExpense(t, l, 79.99, "Food", "2024-06-03")

	r, err := Evaluate(l, "Food", "2024-06")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if r.Status != model.OnTrack {
		t.Fatalf("status = %v, want On Track just below the threshold", r.Status)
	}
}

func TestEvaluateExactlyAtThresholds(t *testing.T) {
	l := newLedger(t)
	addExpense(t, l, 80, "Food", "2024-06-03")

	r, _ := Evaluate(l, "Food", "2024-06")
	if r.Status != model.Warning {
		t.Fatalf("80%% spent: status = %v, want Warning", r.Status)
	}

	addExpense(t, l, 20, "Food", "2024-06-04")
	r, _ = Evaluate(l, "Food", "2024-06")
	// Spending exactly the limit is not over it.
	if r.Status != model.Warning {
		t.Fatalf("100%% spent: status = %v, want Warning", r.Status)
	}
	if r.Remaining != 0 {
		t.Fatalf("remaining = %v, want 0", r.Remaining)
	}
}

func TestEvaluateBucketsByStatedDate(t *testing.T) {
	l := newLedger(t)
	// Entered today, but stated for another month.
	addExpense(t, l, 90, "Food", "2023-12-15")
	addExpense(t, l, 10, "Food", "2024-06-01")

	r, err := Evaluate(l, "Food", "2024-06")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if r.Spent != 10 {
		t.Fatalf("spent = %v, want 10; bucketing must follow date, not entry time", r.Spent)
	}
}

func TestEvaluateIgnoresIncomeAndOtherCategories(t *testing.T) {
	l := newLedger(t)
	addExpense(t, l, 30, "Food", "2024-06-01")
	addExpense(t, l, 500, "Transport", "2024-06-01")
	if _, err := l.Add(model.Income, 1000, "Food", "", "2024-06-01"); err != nil {
		t.Fatalf("Add income: %v", err)
	}

	r, err := Evaluate(l, "Food", "2024-06")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if r.Spent != 30 {
		t.Fatalf("spent = %v, want 30", r.Spent)
	}
}

func TestEvaluateUntrackedCategory(t *testing.T) {
	l := newLedger(t)
	if _, err := Evaluate(l, "Transport", "2024-06"); !errors.Is(err, ledger.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestEvaluateAllRegistryOrder(t *testing.T) {
	l := ledger.New()
	for _, c := range []string{"Housing", "Food", "Transport"} {
		if err := l.SetBudget(c, 100); err != nil {
			t.Fatalf("SetBudget(%s): %v", c, err)
		}
	}

	reports := EvaluateAll(l, "2024-06")
	want := []string{"Housing", "Food", "Transport"}
	if len(reports) != len(want) {
		t.Fatalf("have %d reports, want %d", len(reports), len(want))
	}
	for i, r := range reports {
		if r.Category != want[i] {
			t.Fatalf("report %d is %s, want %s (registry insertion order)", i, r.Category, want[i])
		}
	}
}

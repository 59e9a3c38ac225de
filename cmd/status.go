package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wallet/internal/analytics"
	"wallet/internal/budget"
	"wallet/internal/cli"
	"wallet/internal/ledger"
	"wallet/internal/model"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Balance, totals, recent activity, and budget alerts",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

const recentCount = 5

func runStatus(_ *cobra.Command, _ []string) error {
	l, err := loadLedger()
	if err != nil {
		return err
	}

	totals := analytics.Totals(l.Transactions())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("Current Balance: %s",
		cli.FormatSigned(cfg.General.Currency, totals.Balance))))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Income", cli.FormatAmount(cfg.General.Currency, totals.TotalIncome)},
			{"Expenses", cli.FormatAmount(cfg.General.Currency, totals.TotalExpense)},
			{"Balance", cli.RenderBalance(cli.FormatSigned(cfg.General.Currency, totals.Balance), totals.Balance)},
			{"Transactions", fmt.Sprintf("%d", l.Len())},
		},
	}))

	if recent := l.List(ledger.OrderRecency); len(recent) > 0 {
		if len(recent) > recentCount {
			recent = recent[:recentCount]
		}
		rows := make([][]string, 0, len(recent))
		for _, t := range recent {
			rows = append(rows, []string{
				t.Date,
				t.Category,
				cli.TypeMark(t.Type) + cli.FormatAmount(cfg.General.Currency, t.Amount),
				t.Description,
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Recent",
			Headers: []string{"Date", "Category", "Amount", "Description"},
			Rows:    rows,
		}))
	}

	// Alert panel: only categories worth worrying about this month.
	var alerts []model.BudgetReport
	for _, r := range budget.EvaluateAll(l, budget.CurrentMonth()) {
		if r.Status != model.OnTrack {
			alerts = append(alerts, r)
		}
	}
	if len(alerts) > 0 {
		fmt.Println()
		fmt.Println(cli.Warn("  Budget alerts"))
		for _, r := range alerts {
			printBudgetAlert(r)
		}
	}

	return nil
}

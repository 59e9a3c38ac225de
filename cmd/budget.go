package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wallet/internal/budget"
	"wallet/internal/cli"
	"wallet/internal/model"
)

var budgetMonth string

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage monthly category budgets",
	RunE:  runBudgetStatus,
}

var budgetSetCmd = &cobra.Command{
	Use:   "set <category> <limit>",
	Short: "Set the monthly limit for an expense category",
	Args:  cobra.ExactArgs(2),
	RunE:  runBudgetSet,
}

var budgetUnsetCmd = &cobra.Command{
	Use:   "unset <category>",
	Short: "Stop tracking a category budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetUnset,
}

var budgetStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Spend vs limit for every tracked category",
	RunE:  runBudgetStatus,
}

func init() {
	budgetCmd.PersistentFlags().StringVar(&budgetMonth, "month", "", "Month to evaluate, YYYY-MM (default current)")
	budgetCmd.AddCommand(budgetSetCmd, budgetUnsetCmd, budgetStatusCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetSet(_ *cobra.Command, args []string) error {
	limit, err := model.ParseAmount(args[1])
	if err != nil {
		return model.ErrInvalidLimit
	}

	l, err := loadLedger()
	if err != nil {
		return err
	}
	if err := l.SetBudget(args[0], limit); err != nil {
		return err
	}
	if err := persist(l); err != nil {
		return err
	}

	fmt.Printf("  Budget for %s set to %s per month.\n",
		args[0], cli.FormatAmount(cfg.General.Currency, limit))
	return nil
}

func runBudgetUnset(_ *cobra.Command, args []string) error {
	l, err := loadLedger()
	if err != nil {
		return err
	}
	if err := l.UnsetBudget(args[0]); err != nil {
		return err
	}
	if err := persist(l); err != nil {
		return err
	}

	fmt.Printf("  No longer tracking a budget for %s.\n", args[0])
	return nil
}

func runBudgetStatus(_ *cobra.Command, _ []string) error {
	l, err := loadLedger()
	if err != nil {
		return err
	}

	month := budgetMonth
	if month == "" {
		month = budget.CurrentMonth()
	}

	reports := budget.EvaluateAll(l, month)
	if len(reports) == 0 {
		fmt.Println("\n  No budgets tracked. Set one with `wallet budget set <category> <limit>`.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGETS  %s", cli.FormatMonth(month))))
	fmt.Println()

	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			r.Category,
			cli.FormatAmount(cfg.General.Currency, r.Spent),
			cli.FormatAmount(cfg.General.Currency, r.Limit),
			cli.FormatSigned(cfg.General.Currency, r.Remaining),
			cli.FormatPercent(r.Percent),
			cli.RenderBudgetBar(r.Percent, 16),
			cli.RenderStatus(r.Status),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Spent", "Limit", "Remaining", "Used", "", "Status"},
		Rows:    rows,
	}))
	return nil
}

package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"wallet/internal/budget"
	"wallet/internal/cli"
	"wallet/internal/model"
)

var (
	addType     string
	addAmount   string
	addCategory string
	addDesc     string
	addDate     string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction",
	Long:  "Record an income or expense. Without --amount an interactive form is shown.",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addType, "type", "t", "expense", "Transaction type (income|expense)")
	addCmd.Flags().StringVarP(&addAmount, "amount", "a", "", "Amount (positive number)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category")
	addCmd.Flags().StringVarP(&addDesc, "desc", "m", "", "Description")
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "Date YYYY-MM-DD (default today)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	if !cmd.Flags().Changed("amount") {
		if err := addForm(); err != nil {
			return err
		}
	}

	typ, err := model.ParseType(addType)
	if err != nil {
		return err
	}
	amount, err := model.ParseAmount(addAmount)
	if err != nil {
		return err
	}
	if addCategory == "" {
		addCategory = cfg.General.DefaultCategory
	}

	l, err := loadLedger()
	if err != nil {
		return err
	}

	t, err := l.Add(typ, amount, addCategory, addDesc, addDate)
	if err != nil {
		return err
	}
	if err := persist(l); err != nil {
		return err
	}

	mark := cli.TypeMark(t.Type)
	fmt.Printf("  Recorded %s%s  %s  %s  (%s)\n",
		mark, cli.FormatAmount(cfg.General.Currency, t.Amount),
		t.Category, t.Date, cli.ShortID(t.ID))

	// Immediate budget feedback when an expense lands in a tracked
	// category. Evaluation is read-only; nothing extra is persisted.
	if t.Type == model.Expense {
		if _, tracked := l.BudgetFor(t.Category); tracked {
			report, err := budget.Evaluate(l, t.Category, budget.CurrentMonth())
			if err == nil {
				printBudgetAlert(report)
			}
		}
	}
	return nil
}

func printBudgetAlert(r model.BudgetReport) {
	line := fmt.Sprintf("  %s budget: %s of %s (%s) %s",
		r.Category,
		cli.FormatAmount(cfg.General.Currency, r.Spent),
		cli.FormatAmount(cfg.General.Currency, r.Limit),
		cli.FormatPercent(r.Percent),
		cli.RenderStatus(r.Status),
	)
	fmt.Println(line)
	if r.Status == model.Exceeded {
		fmt.Printf("  Over by %s this month.\n",
			cli.FormatAmount(cfg.General.Currency, -r.Remaining))
	}
}

func addForm() error {
	categories := model.SuggestedCategories(model.Expense)
	if t, err := model.ParseType(addType); err == nil && t == model.Income {
		categories = model.SuggestedCategories(model.Income)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Expense", "expense"),
					huh.NewOption("Income", "income"),
				).
				Value(&addType),
			huh.NewInput().
				Title("Amount").
				Placeholder("12.50").
				Validate(func(s string) error {
					_, err := model.ParseAmount(s)
					return err
				}).
				Value(&addAmount),
			huh.NewInput().
				Title("Category").
				Placeholder(cfg.General.DefaultCategory).
				Suggestions(categories).
				Value(&addCategory),
			huh.NewInput().
				Title("Description").
				Value(&addDesc),
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD, empty for today").
				Value(&addDate),
		),
	)
	return form.Run()
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wallet/internal/analytics"
	"wallet/internal/charts"
	"wallet/internal/cli"
	"wallet/internal/model"
)

var (
	reportType  string
	reportChart string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregate reports by category or by month",
}

var reportCategoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Totals, counts, averages, and shares per category",
	RunE:  runReportCategory,
}

var reportMonthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Income, expenses, and balance per month",
	RunE:  runReportMonthly,
}

func init() {
	reportCategoryCmd.Flags().StringVarP(&reportType, "type", "t", "expense", "Type to report (income|expense)")
	reportCmd.PersistentFlags().StringVar(&reportChart, "chart", "", "Also write a PNG chart to this path")
	reportCmd.AddCommand(reportCategoryCmd, reportMonthlyCmd)
	rootCmd.AddCommand(reportCmd)
}

func runReportCategory(_ *cobra.Command, _ []string) error {
	typ, err := model.ParseType(reportType)
	if err != nil {
		return err
	}

	l, err := loadLedger()
	if err != nil {
		return err
	}

	categories := analytics.ByCategory(l.Transactions(), typ)
	if len(categories) == 0 {
		fmt.Printf("\n  No %s transactions yet.\n", reportType)
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s BY CATEGORY", typ)))
	fmt.Println()

	maxTotal := categories[0].Total
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{
			c.Category,
			cli.FormatAmount(cfg.General.Currency, c.Total),
			fmt.Sprintf("%d", c.Count),
			cli.FormatAmount(cfg.General.Currency, c.Average),
			cli.FormatPercent(c.PercentOfTotal),
			cli.RenderHorizontalBar(c.Total, maxTotal, 20),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Total", "Count", "Average", "Share", ""},
		Rows:    rows,
	}))

	if reportChart != "" {
		if err := charts.CategoryPie(categories, fmt.Sprintf("%s by category", typ), reportChart); err != nil {
			return err
		}
		fmt.Printf("  Chart written to %s\n", reportChart)
	}
	return nil
}

func runReportMonthly(_ *cobra.Command, _ []string) error {
	l, err := loadLedger()
	if err != nil {
		return err
	}

	months := analytics.ByMonth(l.Transactions(), analytics.ReportOrder)
	if len(months) == 0 {
		fmt.Println("\n  No transactions yet.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY REPORT"))
	fmt.Println()

	rows := make([][]string, 0, len(months))
	for _, m := range months {
		rows = append(rows, []string{
			cli.FormatMonth(m.Month),
			cli.FormatAmount(cfg.General.Currency, m.IncomeTotal),
			cli.FormatAmount(cfg.General.Currency, m.ExpenseTotal),
			cli.RenderBalance(cli.FormatSigned(cfg.General.Currency, m.Balance), m.Balance),
			fmt.Sprintf("%d", m.Count),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Income", "Expenses", "Balance", "Count"},
		Rows:    rows,
	}))

	if reportChart != "" {
		trend := analytics.ByMonth(l.Transactions(), analytics.TrendOrder)
		if err := charts.MonthlyTrend(trend, reportChart); err != nil {
			return err
		}
		fmt.Printf("  Chart written to %s\n", reportChart)
	}
	return nil
}

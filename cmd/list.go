package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wallet/internal/analytics"
	"wallet/internal/cli"
	"wallet/internal/ledger"
	"wallet/internal/model"
)

var (
	listText     string
	listType     string
	listCategory string
	listOrder    string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "history"},
	Short:   "Show transaction history",
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVar(&listText, "text", "", "Substring match on description or category")
	listCmd.Flags().StringVarP(&listType, "type", "t", "all", "Type filter (all|income|expense)")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Category filter")
	listCmd.Flags().StringVar(&listOrder, "order", "recent", "Sort order (recent|date)")
	rootCmd.AddCommand(listCmd)
}

func parseTypeFilter(s string) (analytics.TypeFilter, error) {
	if s == "" || s == "all" || s == "All" {
		return analytics.TypeAll, nil
	}
	typ, err := model.ParseType(s)
	if err != nil {
		return analytics.TypeAll, err
	}
	return analytics.TypeFilter(typ), nil
}

func runList(_ *cobra.Command, _ []string) error {
	l, err := loadLedger()
	if err != nil {
		return err
	}

	order := ledger.OrderRecency
	if listOrder == "date" {
		order = ledger.OrderChronological
	}

	typeFilter, err := parseTypeFilter(listType)
	if err != nil {
		return err
	}
	category := listCategory
	if category == "" {
		category = analytics.CategoryAll
	}

	visible := analytics.Filter(l.List(order), listText, typeFilter, category)
	if len(visible) == 0 {
		fmt.Println("\n  No transactions match.")
		return nil
	}

	rows := make([][]string, 0, len(visible))
	for _, t := range visible {
		rows = append(rows, []string{
			cli.ShortID(t.ID),
			t.Date,
			string(t.Type),
			t.Category,
			cli.TypeMark(t.Type) + cli.FormatAmount(cfg.General.Currency, t.Amount),
			t.Description,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Transactions (%d shown, %d total)", len(visible), l.Len()),
		Headers: []string{"ID", "Date", "Type", "Category", "Amount", "Description"},
		Rows:    rows,
	}))
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wallet/internal/cli"
	"wallet/internal/model"
)

var (
	editType     string
	editAmount   string
	editCategory string
	editDesc     string
	editDate     string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a transaction's fields",
	Long:  "Change type, amount, category, description, or date of an existing transaction. The id and creation time never change.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editType, "type", "t", "", "New type (income|expense)")
	editCmd.Flags().StringVarP(&editAmount, "amount", "a", "", "New amount")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "New category")
	editCmd.Flags().StringVarP(&editDesc, "desc", "m", "", "New description")
	editCmd.Flags().StringVarP(&editDate, "date", "d", "", "New date YYYY-MM-DD")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	l, err := loadLedger()
	if err != nil {
		return err
	}

	t, err := resolveID(l, args[0])
	if err != nil {
		return err
	}

	typ := t.Type
	if cmd.Flags().Changed("type") {
		typ, err = model.ParseType(editType)
		if err != nil {
			return err
		}
	}
	amount := t.Amount
	if cmd.Flags().Changed("amount") {
		amount, err = model.ParseAmount(editAmount)
		if err != nil {
			return err
		}
	}
	category := t.Category
	if cmd.Flags().Changed("category") {
		category = editCategory
	}
	desc := t.Description
	if cmd.Flags().Changed("desc") {
		desc = editDesc
	}
	date := t.Date
	if cmd.Flags().Changed("date") {
		date = editDate
	}

	updated, err := l.Update(t.ID, typ, amount, category, desc, date)
	if err != nil {
		return err
	}
	if err := persist(l); err != nil {
		return err
	}

	fmt.Printf("  Updated %s%s  %s  %s  (%s)\n",
		cli.TypeMark(updated.Type), cli.FormatAmount(cfg.General.Currency, updated.Amount),
		updated.Category, updated.Date, cli.ShortID(updated.ID))
	return nil
}

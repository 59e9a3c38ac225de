package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wallet/internal/cli"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a transaction by id",
	Long:    "Delete exactly one transaction by its id or a unique id prefix. Deletion never matches on displayed fields, so duplicate-looking rows are safe.",
	Args:    cobra.ExactArgs(1),
	RunE:    runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(_ *cobra.Command, args []string) error {
	l, err := loadLedger()
	if err != nil {
		return err
	}

	t, err := resolveID(l, args[0])
	if err != nil {
		return err
	}
	if err := l.Delete(t.ID); err != nil {
		return err
	}
	if err := persist(l); err != nil {
		return err
	}

	fmt.Printf("  Deleted %s%s  %s  %s  (%s)\n",
		cli.TypeMark(t.Type), cli.FormatAmount(cfg.General.Currency, t.Amount),
		t.Category, t.Date, cli.ShortID(t.ID))
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wallet/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Replace the ledger with an exported snapshot",
	Long:  "Import a JSON snapshot. The whole ledger is substituted, transactions and budgets alike; nothing is merged.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	l, err := store.ImportJSON(args[0])
	if err != nil {
		return err
	}
	if err := persist(l); err != nil {
		return err
	}

	fmt.Printf("  Imported %d transactions and %d budgets from %s\n",
		l.Len(), len(l.Budgets()), args[0])
	return nil
}

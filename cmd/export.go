package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wallet/internal/ledger"
	"wallet/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger",
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv <path>",
	Short: "Write transactions as CSV, oldest date first",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportCSV,
}

var exportJSONCmd = &cobra.Command{
	Use:   "json <path>",
	Short: "Write a full ledger snapshot for backup or transfer",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportJSON,
}

func init() {
	exportCmd.AddCommand(exportCSVCmd, exportJSONCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExportCSV(_ *cobra.Command, args []string) error {
	l, err := loadLedger()
	if err != nil {
		return err
	}
	if err := store.ExportCSV(l.List(ledger.OrderChronological), args[0]); err != nil {
		return err
	}
	fmt.Printf("  Exported %d transactions to %s\n", l.Len(), args[0])
	return nil
}

func runExportJSON(_ *cobra.Command, args []string) error {
	l, err := loadLedger()
	if err != nil {
		return err
	}
	if err := store.ExportJSON(l, args[0]); err != nil {
		return err
	}
	fmt.Printf("  Exported %d transactions and %d budgets to %s\n",
		l.Len(), len(l.Budgets()), args[0])
	return nil
}

package cmd

import (
	"github.com/spf13/cobra"

	"wallet/internal/tui"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Open the to-do manager",
	Long:  "Launch the interactive task list. Tasks live in their own database, separate from the ledger.",
	RunE: func(_ *cobra.Command, _ []string) error {
		return tui.Run(cfg.TasksPath())
	},
}

func init() {
	rootCmd.AddCommand(todoCmd)
}

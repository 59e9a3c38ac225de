package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wallet/internal/cli"
	"wallet/internal/config"
)

var (
	cfgCurrency string
	cfgCategory string
	cfgDataDir  string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change wallet settings",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&cfgCurrency, "currency", "", "Currency symbol shown in amounts")
	configCmd.Flags().StringVar(&cfgCategory, "default-category", "", "Category used when none is given")
	configCmd.Flags().StringVar(&cfgDataDir, "data-dir", "", "Directory holding the ledger and task files")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	changed := false
	if cmd.Flags().Changed("currency") {
		cfg.General.Currency = cfgCurrency
		changed = true
	}
	if cmd.Flags().Changed("default-category") {
		cfg.General.DefaultCategory = cfgCategory
		changed = true
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.General.DataDir = cfgDataDir
		changed = true
	}

	if changed {
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("  Saved to %s\n", config.ConfigPath())
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Settings",
		Headers: []string{"Key", "Value"},
		Rows: [][]string{
			{"currency", cfg.General.Currency},
			{"default_category", cfg.General.DefaultCategory},
			{"config file", config.ConfigPath()},
			{"ledger file", ledgerPath()},
			{"tasks db", cfg.TasksPath()},
		},
	}))
	return nil
}

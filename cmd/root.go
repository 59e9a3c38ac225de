// Package cmd wires the wallet CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"wallet/internal/config"
	"wallet/internal/ledger"
	"wallet/internal/log"
	"wallet/internal/model"
	"wallet/internal/store"
)

var (
	cfg      config.Config
	flagFile string
)

var rootCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Personal finance tracker",
	Long:  "Track income and expenses, monthly category budgets, and reports, all in a local JSON file.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		log.Init(cfg.DataDir())
		return nil
	},
	RunE: runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Ledger file (default from config)")
}

func ledgerPath() string {
	if flagFile != "" {
		return flagFile
	}
	return cfg.LedgerPath()
}

// loadLedger reads the snapshot, translating a corrupt file into
// actionable advice instead of silently starting empty.
func loadLedger() (*ledger.Ledger, error) {
	l, err := store.Load(ledgerPath())
	if err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			return nil, fmt.Errorf("%w\nThe file was left untouched. Fix it by hand or import a known-good export.", err)
		}
		return nil, err
	}
	return l, nil
}

// persist writes the ledger through to disk. On failure the mutation
// already happened in memory, so the mismatch is spelled out rather
// than hidden.
func persist(l *ledger.Ledger) error {
	if err := store.Save(l, ledgerPath()); err != nil {
		return fmt.Errorf("change applied in memory but NOT saved: %w", err)
	}
	return nil
}

// resolveID finds the transaction whose id matches args exactly or by
// unique prefix, so users can paste the short id from listings.
func resolveID(l *ledger.Ledger, prefix string) (model.Transaction, error) {
	if t, err := l.Get(prefix); err == nil {
		return t, nil
	}

	var matches []model.Transaction
	for _, t := range l.Transactions() {
		if strings.HasPrefix(t.ID, prefix) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return model.Transaction{}, fmt.Errorf("transaction %s: %w", prefix, ledger.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return model.Transaction{}, fmt.Errorf("id prefix %q is ambiguous (%d matches)", prefix, len(matches))
	}
}

package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"wallet/internal/model"
)

// csvHeader is the fixed export header; external consumers rely on it.
var csvHeader = []string{"Date", "Type", "Category", "Amount", "Description", "CreatedAt"}

// ExportCSV writes one row per transaction, oldest date first,
// overwriting path.
func ExportCSV(transactions []model.Transaction, path string) error {
	rows := make([]model.Transaction, len(transactions))
	copy(rows, transactions)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].CreatedAt.Before(rows[j].CreatedAt)
	})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, t := range rows {
		record := []string{
			t.Date,
			string(t.Type),
			t.Category,
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			t.Description,
			t.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wallet/internal/ledger"
	"wallet/internal/model"
)

func sampleLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l := ledger.New()
	if _, err := l.Add(model.Income, 1200.50, "Salary", "May pay", "2024-05-01"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := l.Add(model.Expense, 45.25, "Food", "Groceries", "2024-05-03"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := l.SetBudget("Food", 300); err != nil {
		t.Fatalf("SetBudget: %v", err)
	}
	return l
}

func TestLoadMissingFileReturnsEmptyLedger(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.Len() != 0 || len(l.Budgets()) != 0 {
		t.Fatal("missing file must yield an empty ledger, not an error")
	}
}

func TestLoadCorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet_data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("got %v, want ErrCorrupt", err)
	}

	// The broken file must be left for the user to inspect.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("corrupt file was removed: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet_data.json")
	orig := sampleLedger(t)

	if err := Save(orig, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	assertEquivalent(t, orig, loaded)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wallet_data.json")
	if err := Save(sampleLedger(t), path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "wallet_data.json" {
		t.Fatalf("unexpected files after save: %v", entries)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	orig := sampleLedger(t)

	if err := ExportJSON(orig, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	imported, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}

	assertEquivalent(t, orig, imported)
}

func TestImportMissingKeysDefaultToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"last_updated":"2024-05-01T00:00:00Z"}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	l, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if l.Len() != 0 || len(l.Budgets()) != 0 {
		t.Fatal("missing keys must mean empty collections, not an error")
	}
}

func TestImportMissingFileIsAnError(t *testing.T) {
	if _, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("import of a missing file must fail, unlike load")
	}
}

func assertEquivalent(t *testing.T, want, got *ledger.Ledger) {
	t.Helper()

	wantTx, gotTx := want.Transactions(), got.Transactions()
	if len(gotTx) != len(wantTx) {
		t.Fatalf("have %d transactions, want %d", len(gotTx), len(wantTx))
	}
	byID := make(map[string]model.Transaction, len(wantTx))
	for _, tx := range wantTx {
		byID[tx.ID] = tx
	}
	for _, tx := range gotTx {
		orig, ok := byID[tx.ID]
		if !ok {
			t.Fatalf("unexpected transaction id %s", tx.ID)
		}
		if tx.Type != orig.Type || tx.Amount != orig.Amount || tx.Category != orig.Category ||
			tx.Date != orig.Date || tx.Description != orig.Description {
			t.Fatalf("transaction %s changed in round trip:\n got %+v\nwant %+v", tx.ID, tx, orig)
		}
		if !tx.CreatedAt.Equal(orig.CreatedAt) {
			t.Fatalf("created_at changed in round trip: %v != %v", tx.CreatedAt, orig.CreatedAt)
		}
	}

	wantBudgets := make(map[string]float64)
	for _, b := range want.Budgets() {
		wantBudgets[b.Category] = b.Limit
	}
	gotBudgets := got.Budgets()
	if len(gotBudgets) != len(wantBudgets) {
		t.Fatalf("have %d budgets, want %d", len(gotBudgets), len(wantBudgets))
	}
	for _, b := range gotBudgets {
		if wantBudgets[b.Category] != b.Limit {
			t.Fatalf("budget %s = %v, want %v", b.Category, b.Limit, wantBudgets[b.Category])
		}
	}
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	l := ledger.New()
	if _, err := l.Add(model.Income, 99, "Salary", "pay", "2024-03-02"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := l.Add(model.Expense, 10.5, "Food", "lunch, with friends", "2024-01-05"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := ExportCSV(l.Transactions(), path); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "Date,Type,Category,Amount,Description,CreatedAt" {
		t.Fatalf("header = %q", lines[0])
	}
	if len(lines) != 3 {
		t.Fatalf("have %d lines, want 3", len(lines))
	}
	// Oldest date first, regardless of entry order.
	if !strings.HasPrefix(lines[1], "2024-01-05,Expense,Food,10.50,") {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "2024-03-02,Income,Salary,99.00,") {
		t.Fatalf("row 2 = %q", lines[2])
	}
	// The embedded comma must be quoted, not split.
	if !strings.Contains(lines[1], `"lunch, with friends"`) {
		t.Fatalf("description not quoted: %q", lines[1])
	}
}

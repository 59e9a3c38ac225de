// Package store persists the ledger as a JSON snapshot and exports
// flattened views. The snapshot is the sole unit of persistence: it is
// loaded once at startup and rewritten in full after every mutation.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"wallet/internal/ledger"
	"wallet/internal/log"
	"wallet/internal/model"
)

// ErrCorrupt is returned when a ledger file exists but cannot be
// parsed. The file on disk is never touched in that case; the caller
// decides what to do with it.
var ErrCorrupt = errors.New("ledger file is corrupt")

// Snapshot is the on-disk shape of a persisted ledger.
type Snapshot struct {
	Transactions []model.Transaction `json:"transactions"`
	Budgets      map[string]float64  `json:"budgets"`
	LastUpdated  time.Time           `json:"last_updated"`
	ExportDate   *time.Time          `json:"export_date,omitempty"`
}

func makeSnapshot(l *ledger.Ledger) Snapshot {
	budgets := make(map[string]float64)
	for _, b := range l.Budgets() {
		budgets[b.Category] = b.Limit
	}
	return Snapshot{
		Transactions: l.Transactions(),
		Budgets:      budgets,
		LastUpdated:  time.Now().UTC(),
	}
}

func restoreSnapshot(snap Snapshot) (*ledger.Ledger, error) {
	// The budgets object carries no order; rebuild the registry in
	// sorted category order so loads are deterministic.
	categories := make([]string, 0, len(snap.Budgets))
	for c := range snap.Budgets {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	budgets := make([]model.BudgetLimit, 0, len(categories))
	for _, c := range categories {
		budgets = append(budgets, model.BudgetLimit{Category: c, Limit: snap.Budgets[c]})
	}

	return ledger.Restore(snap.Transactions, budgets)
}

// writeFileAtomic writes to a temp file in the target directory and
// renames it over path, so a crash mid-write cannot corrupt the last
// good snapshot.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".wallet-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing snapshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// Save overwrites path with the full current state of the ledger. It
// must be called after every mutating ledger operation; on error the
// in-memory state is retained and the caller surfaces the mismatch.
func Save(l *ledger.Ledger, path string) error {
	data, err := json.MarshalIndent(makeSnapshot(l), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return err
	}
	log.Logger.Debug().Str("path", path).Int("transactions", l.Len()).Msg("ledger saved")
	return nil
}

// Load reads the snapshot at path. A missing file yields an empty
// ledger; a file that exists but cannot be parsed yields ErrCorrupt
// rather than silently discarding data.
func Load(path string) (*ledger.Ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ledger.New(), nil
		}
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	return decodeSnapshot(data, path)
}

func decodeSnapshot(data []byte, path string) (*ledger.Ledger, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrCorrupt, err)
	}
	l, err := restoreSnapshot(snap)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrCorrupt, err)
	}
	log.Logger.Debug().Str("path", path).Int("transactions", l.Len()).Msg("ledger loaded")
	return l, nil
}

// ExportJSON writes a snapshot stamped with an export date. The output
// is accepted back by ImportJSON unchanged.
func ExportJSON(l *ledger.Ledger, path string) error {
	snap := makeSnapshot(l)
	now := time.Now().UTC()
	snap.ExportDate = &now

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return writeFileAtomic(path, data)
}

// ImportJSON reads an exported (or hand-written) snapshot. Missing
// transactions or budgets keys are treated as empty collections; a
// missing file is an error, unlike Load.
func ImportJSON(path string) (*ledger.Ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import: %w", err)
	}
	return decodeSnapshot(data, path)
}

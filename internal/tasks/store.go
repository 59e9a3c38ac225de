// Package tasks provides the SQLite-backed store for the to-do manager.
package tasks

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when a task id has no matching row.
var ErrNotFound = errors.New("task not found")

// ErrEmptyTask is returned when adding a task without text.
var ErrEmptyTask = errors.New("task text is required")

// Categories is the suggested category set for new tasks.
var Categories = []string{"General", "Home", "Study", "Shopping", "Work"}

// Task is one to-do entry.
type Task struct {
	ID        int64
	Text      string
	Category  string
	Done      bool
	CreatedAt time.Time
}

// Store wraps the task database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the task database at the given path.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening task db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the task database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a new task. An empty category defaults to General.
func (s *Store) Add(text, category string) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrEmptyTask
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = "General"
	}

	t := Task{
		Text:      text,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}
	res, err := s.db.Exec(
		"INSERT INTO tasks (text, category, done, created_at) VALUES (?, ?, 0, ?)",
		t.Text, t.Category, t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return Task{}, fmt.Errorf("inserting task: %w", err)
	}
	t.ID, _ = res.LastInsertId()
	return t, nil
}

// List returns tasks in creation order, optionally restricted to those
// whose text or category contains the filter, case-insensitively.
func (s *Store) List(filter string) ([]Task, error) {
	rows, err := s.db.Query("SELECT id, text, category, done, created_at FROM tasks ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	needle := strings.ToLower(filter)
	var tasks []Task
	for rows.Next() {
		var t Task
		var done int
		var created string
		if err := rows.Scan(&t.ID, &t.Text, &t.Category, &done, &created); err != nil {
			return nil, err
		}
		t.Done = done != 0
		t.CreatedAt, _ = time.Parse(time.RFC3339, created)

		if needle != "" &&
			!strings.Contains(strings.ToLower(t.Text), needle) &&
			!strings.Contains(strings.ToLower(t.Category), needle) {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Toggle flips the done flag of one task and returns its new state.
func (s *Store) Toggle(id int64) (Task, error) {
	res, err := s.db.Exec("UPDATE tasks SET done = 1 - done WHERE id = ?", id)
	if err != nil {
		return Task{}, fmt.Errorf("toggling task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}

	var t Task
	var done int
	var created string
	err = s.db.QueryRow("SELECT id, text, category, done, created_at FROM tasks WHERE id = ?", id).
		Scan(&t.ID, &t.Text, &t.Category, &done, &created)
	if err != nil {
		return Task{}, fmt.Errorf("reading task: %w", err)
	}
	t.Done = done != 0
	t.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return t, nil
}

// Delete removes one task by id.
func (s *Store) Delete(id int64) error {
	res, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return nil
}

// Clear removes every task.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM tasks")
	if err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}
	return nil
}

package tasks

import (
	"errors"
	"path/filepath"
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAddAndList(t *testing.T) {
	s := openStore(t)

	if _, err := s.Add("  ", "Home"); !errors.Is(err, ErrEmptyTask) {
		t.Fatalf("blank task: got %v, want ErrEmptyTask", err)
	}

	first, err := s.Add("Buy milk", "Shopping")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if first.Category != "Shopping" || first.Done {
		t.Fatalf("task = %+v", first)
	}

	second, err := s.Add("Read chapter 3", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if second.Category != "General" {
		t.Fatalf("empty category should default to General, got %q", second.Category)
	}

	list, err := s.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("have %d tasks, want 2", len(list))
	}
	if list[0].Text != "Buy milk" || list[1].Text != "Read chapter 3" {
		t.Fatal("tasks must list in creation order")
	}
}

func TestListSubstringFilter(t *testing.T) {
	s := openStore(t)
	for _, task := range []struct{ text, cat string }{
		{"Buy milk", "Shopping"},
		{"Fix the sink", "Home"},
		{"Buy train ticket", "General"},
	} {
		if _, err := s.Add(task.text, task.cat); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	got, err := s.List("BUY")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("have %d matches, want 2 (case-insensitive)", len(got))
	}

	got, err = s.List("home")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Text != "Fix the sink" {
		t.Fatal("filter must also match the category")
	}
}

func TestToggle(t *testing.T) {
	s := openStore(t)
	task, err := s.Add("Buy milk", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	toggled, err := s.Toggle(task.ID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !toggled.Done {
		t.Fatal("first toggle should mark the task done")
	}

	toggled, err = s.Toggle(task.ID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if toggled.Done {
		t.Fatal("second toggle should mark the task not done again")
	}

	if _, err := s.Toggle(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id: got %v, want ErrNotFound", err)
	}
}

func TestDeleteAndClear(t *testing.T) {
	s := openStore(t)
	task, err := s.Add("Buy milk", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := s.Add("Walk the dog", ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := s.Delete(task.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete: got %v, want ErrNotFound", err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	list, err := s.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("have %d tasks after clear, want 0", len(list))
	}
}

package history

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "searches.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := newTestStore(t)

	if err := s.Record("finance", 5); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.Record("technology", 3); err != nil {
		t.Fatalf("record: %v", err)
	}

	entries, err := s.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Newest first.
	if entries[0].Keyword != "technology" || entries[0].ResultCount != 3 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Keyword != "finance" || entries[1].ResultCount != 5 {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestRecent_Limit(t *testing.T) {
	s := newTestStore(t)
	for _, kw := range []string{"a", "b", "c", "d"} {
		if err := s.Record(kw, 1); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	entries, err := s.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Keyword != "d" || entries[1].Keyword != "c" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestRecent_Empty(t *testing.T) {
	s := newTestStore(t)
	entries, err := s.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestOpen_Reopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "searches.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Record("finance", 2); err != nil {
		t.Fatalf("record: %v", err)
	}
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	entries, err := s2.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 || entries[0].Keyword != "finance" {
		t.Errorf("expected persisted entry, got %+v", entries)
	}
}

package cache

import (
	"path/filepath"
	"testing"
)

func testStore(t *testing.T, s Store) {
	t.Helper()

	if _, ok, err := s.Get("x+y"); err != nil || ok {
		t.Fatalf("expected a clean miss, got ok=%v err=%v", ok, err)
	}

	if err := s.Put("x+y", "x + y"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, ok, err := s.Get("x+y")
	if err != nil || !ok {
		t.Fatalf("expected a hit, got ok=%v err=%v", ok, err)
	}
	if out != "x + y" {
		t.Errorf("expected 'x + y', got %q", out)
	}

	// Overwrite
	if err := s.Put("x+y", "other"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, _, _ = s.Get("x+y")
	if out != "other" {
		t.Errorf("expected overwrite, got %q", out)
	}

	// Multi-line values round-trip intact.
	if err := s.Put("frac", "1\n━\n2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, _, _ = s.Get("frac")
	if out != "1\n━\n2" {
		t.Errorf("multi-line value mangled: %q", out)
	}
}

func TestMemory(t *testing.T) {
	s := NewMemory()
	defer s.Close()
	testStore(t, s)
}

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texel.db")
	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testStore(t, s)
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopen: contents persist and the schema version checks out.
	s, err = NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	out, ok, err := s.Get("frac")
	if err != nil || !ok || out != "1\n━\n2" {
		t.Errorf("expected persisted value, got %q ok=%v err=%v", out, ok, err)
	}
}

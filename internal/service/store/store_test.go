package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestArchive_Disabled(t *testing.T) {
	a := New("")
	if a.Enabled() {
		t.Error("expected archive disabled for empty dir")
	}

	name, err := a.Save([]byte(`{"channels":[]}`))
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if name != "" {
		t.Errorf("expected empty filename, got %q", name)
	}
}

func TestArchive_Save(t *testing.T) {
	dir := t.TempDir()
	a := New(dir)
	a.now = func() time.Time {
		return time.Date(2024, 3, 17, 9, 45, 30, 0, time.UTC)
	}

	raw := []byte(`{"channels":[]}`)
	name, err := a.Save(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(name, "transcript_20240317_094530_") || !strings.HasSuffix(name, ".json") {
		t.Errorf("unexpected filename %q", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read archived file: %v", err)
	}
	if string(data) != string(raw) {
		t.Errorf("archived content = %q, want %q", data, raw)
	}
}

// Two saves within the same second must not collide.
func TestArchive_UniqueNamesWithinSecond(t *testing.T) {
	dir := t.TempDir()
	a := New(dir)
	a.now = func() time.Time {
		return time.Date(2024, 3, 17, 9, 45, 30, 0, time.UTC)
	}

	first, err := a.Save([]byte(`{}`))
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := a.Save([]byte(`{}`))
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if first == second {
		t.Errorf("expected distinct filenames, both %q", first)
	}
}

func TestArchive_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")
	a := New(dir)

	if _, err := a.Save([]byte(`{}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("results dir not created: %v", err)
	}
}

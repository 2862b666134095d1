package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func touch(t *testing.T, dir, name string, mtime time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", name, err)
	}
}

func TestLatestFile(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	dir := t.TempDir()
	touch(t, dir, "2025-01-15.xlsx", base.Add(2*time.Hour)) // newest mtime
	touch(t, dir, "2025-02-01.xlsx", base)
	touch(t, dir, "2025-01-31.XLSX", base.Add(time.Hour))
	touch(t, dir, "~$2025-03-01.xlsx", base.Add(3*time.Hour)) // Office lock file
	touch(t, dir, "2025-04-01.csv", base.Add(4*time.Hour))
	if err := os.Mkdir(filepath.Join(dir, "2025-05-01.xlsx"), 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		policy SelectionPolicy
		want   string
	}{
		{name: "by name", policy: SelectByName, want: "2025-02-01.xlsx"},
		{name: "by modification time", policy: SelectByModTime, want: "2025-01-15.xlsx"},
		{name: "unknown policy falls back to name", policy: "", want: "2025-02-01.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LatestFile(dir, ".xlsx", tt.policy)
			if err != nil {
				t.Fatalf("LatestFile() error = %v", err)
			}
			if got.Name != tt.want {
				t.Errorf("LatestFile() = %q, want %q", got.Name, tt.want)
			}
			if got.Path != filepath.Join(dir, tt.want) {
				t.Errorf("Path = %q", got.Path)
			}
		})
	}
}

func TestLatestFile_ModTimeTieBreak(t *testing.T) {
	mtime := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	dir := t.TempDir()
	touch(t, dir, "a.xlsx", mtime)
	touch(t, dir, "b.xlsx", mtime)

	got, err := LatestFile(dir, ".xlsx", SelectByModTime)
	if err != nil {
		t.Fatalf("LatestFile() error = %v", err)
	}
	if got.Name != "b.xlsx" {
		t.Errorf("LatestFile() = %q, want b.xlsx", got.Name)
	}
}

func TestLatestFile_NoMatch(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "stock.csv", time.Now())
	touch(t, dir, "~$stock.xlsx", time.Now())

	_, err := LatestFile(dir, ".xlsx", SelectByName)
	if !errors.Is(err, ErrNoDataFileFound) {
		t.Fatalf("error = %v, want ErrNoDataFileFound", err)
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) || loadErr.Path != dir {
		t.Errorf("error should be a *LoadError for %s, got %#v", dir, err)
	}
}

func TestLatestFile_MissingDir(t *testing.T) {
	_, err := LatestFile(filepath.Join(t.TempDir(), "nope"), "", SelectByName)
	if !errors.Is(err, ErrNoDataFileFound) {
		t.Errorf("error = %v, want ErrNoDataFileFound", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, should wrap os.ErrNotExist", err)
	}
}

func TestParseSelectionPolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    SelectionPolicy
		wantErr bool
	}{
		{"", SelectByName, false},
		{"name", SelectByName, false},
		{" MTIME ", SelectByModTime, false},
		{"newest", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSelectionPolicy(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSelectionPolicy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSelectionPolicy(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDataFile_DateLabel(t *testing.T) {
	tests := map[string]string{
		"2025-01-31.xlsx":        "2025-01-31",
		"2025-01-31.backup.xlsx": "2025-01-31",
		"stock":                  "stock",
	}
	for name, want := range tests {
		if got := (DataFile{Name: name}).DateLabel(); got != want {
			t.Errorf("DateLabel(%q) = %q, want %q", name, got, want)
		}
	}
}

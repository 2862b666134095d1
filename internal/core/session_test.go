package core

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeStockWorkbook(t, filepath.Join(dir, "2025-01-30.xlsx"), stockHeader, [][]any{
		{"GI", "25mm", 2.5, 3.2, 100},
	})
	writeStockWorkbook(t, filepath.Join(dir, "2025-01-31.xlsx"), stockHeader, [][]any{
		{"MS", "50mm", 3.0, 5.0, 10},
		{},
		{"MS", "50mm", 4.0, 6.5, 2},
		{"SS", "80mm", "-", 8.0, ""},
	})

	s, err := Load(context.Background(), LoadConfig{Dir: dir, Extension: ".xlsx", Policy: SelectByName})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.File.Name != "2025-01-31.xlsx" {
		t.Errorf("File = %q, want 2025-01-31.xlsx", s.File.Name)
	}
	if s.File.DateLabel() != "2025-01-31" {
		t.Errorf("DateLabel() = %q", s.File.DateLabel())
	}
	if s.Table.Len() != 3 {
		t.Fatalf("Table.Len() = %d, want 3", s.Table.Len())
	}
	if s.Table[2].Line != 5 {
		t.Errorf("Table[2].Line = %d, want 5", s.Table[2].Line)
	}
	if s.Table[2].ThicknessMM.Valid || s.Table[2].Quantity.Valid {
		t.Errorf("placeholders should load as missing: %+v", s.Table[2])
	}
	if len(s.Options.Categories) != 2 {
		t.Errorf("Categories = %v, want [MS SS]", s.Options.Categories)
	}
	if s.ID.String() == "" || s.LoadedAt.IsZero() {
		t.Errorf("session identity not set: %+v", s)
	}

	// End to end: MS / 50mm / 3 for 7 pipes.
	records := Filter(s.Table, Criteria{Category: "MS", SizeOD: "50mm", Thickness: "3"})
	results, err := CheckAvailability(records, 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || !results[0].Available || results[0].TotalWeight.Decimal.String() != "35" {
		t.Errorf("availability = %+v", results)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("no data file", func(t *testing.T) {
		_, err := Load(context.Background(), LoadConfig{Dir: t.TempDir()})
		if !errors.Is(err, ErrNoDataFileFound) {
			t.Errorf("error = %v, want ErrNoDataFileFound", err)
		}
	})

	t.Run("schema mismatch", func(t *testing.T) {
		dir := t.TempDir()
		header := []any{ColCategory, ColSizeOD, ColThickness, ColWeight} // no Quantity
		writeStockWorkbook(t, filepath.Join(dir, "stock.xlsx"), header, [][]any{
			{"MS", "50mm", 3.0, 5.0},
		})

		_, err := Load(context.Background(), LoadConfig{Dir: dir})
		if !errors.Is(err, ErrSchemaMismatch) {
			t.Fatalf("error = %v, want ErrSchemaMismatch", err)
		}
		var mismatch *SchemaMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("error should carry *SchemaMismatchError: %v", err)
		}
		if len(mismatch.Missing) != 1 || mismatch.Missing[0] != ColQuantity {
			t.Errorf("Missing = %v, want [Quantity]", mismatch.Missing)
		}
	})

	t.Run("header only", func(t *testing.T) {
		dir := t.TempDir()
		writeStockWorkbook(t, filepath.Join(dir, "stock.xlsx"), stockHeader, nil)

		s, err := Load(context.Background(), LoadConfig{Dir: dir})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if s.Table.Len() != 0 {
			t.Errorf("Table.Len() = %d, want 0", s.Table.Len())
		}
	})
}

package core

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	header := []string{ColQuantity, ColCategory, "Notes", ColSizeOD, ColThickness, ColWeight}
	idx, err := ValidateHeaders(header, PipeFieldSpecs)
	if err != nil {
		t.Fatalf("ValidateHeaders() error = %v", err)
	}

	rows := [][]string{
		{"10", "  MS ", "", " 50mm", "3.0", "5"},
		{},
		{"", "", "", "", "", ""},
		{"abc", "GI", "x", "25mm", "-", "n/a"},
		{"4", "SS", "", "80mm"}, // short row: thickness and weight absent
	}

	table := Normalize(rows, idx)
	if table.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (blank rows skipped)", table.Len())
	}

	first := table[0]
	if first.Line != 2 {
		t.Errorf("first.Line = %d, want 2", first.Line)
	}
	if first.Category != "MS" || first.SizeOD != "50mm" {
		t.Errorf("text not trimmed: %q / %q", first.Category, first.SizeOD)
	}
	if !first.ThicknessMM.Valid || first.ThicknessMM.Decimal.String() != "3" {
		t.Errorf("ThicknessMM = %+v, want 3", first.ThicknessMM)
	}
	if !first.Quantity.Valid || first.Quantity.Decimal.IntPart() != 10 {
		t.Errorf("Quantity = %+v, want 10", first.Quantity)
	}

	dirty := table[1]
	if dirty.Line != 5 {
		t.Errorf("dirty.Line = %d, want 5 (original line kept)", dirty.Line)
	}
	if dirty.Quantity.Valid || dirty.ThicknessMM.Valid || dirty.WeightKG.Valid {
		t.Errorf("unparseable numerics should be missing: %+v", dirty)
	}
	if dirty.Category != "GI" {
		t.Errorf("dirty.Category = %q, want GI", dirty.Category)
	}

	short := table[2]
	if short.ThicknessMM.Valid || short.WeightKG.Valid {
		t.Errorf("absent cells should be missing: %+v", short)
	}
	if !short.Quantity.Valid {
		t.Errorf("short.Quantity should be present")
	}
}

func TestNormalize_Empty(t *testing.T) {
	idx, _ := ValidateHeaders([]string{ColCategory, ColSizeOD, ColThickness, ColWeight, ColQuantity}, PipeFieldSpecs)
	table := Normalize(nil, idx)
	if table == nil || table.Len() != 0 {
		t.Errorf("Normalize(nil) = %v, want empty non-nil table", table)
	}
}

func TestNormalize_OutOfRangeNumbersAreMissing(t *testing.T) {
	idx := MakeHeaderIndex([]string{ColCategory, ColSizeOD, ColThickness, ColWeight, ColQuantity})
	rows := [][]string{
		{"MS", "50mm", "1e300000000", "1e300000000", "1e300000000"},
		{"MS", "50mm", "3", "5", "10"},
	}

	table := Normalize(rows, idx)
	odd := table[0]
	if odd.ThicknessMM.Valid || odd.WeightKG.Valid || odd.Quantity.Valid {
		t.Fatalf("out-of-range numbers should be missing: %+v", odd)
	}

	opts := BuildOptions(table)
	if len(opts.Thicknesses) != 1 || opts.Thicknesses[0].String() != "3" {
		t.Errorf("Thicknesses = %v, want [3]", opts.Thicknesses)
	}

	results, err := CheckAvailability(table, 1)
	if err != nil {
		t.Fatalf("CheckAvailability() error = %v", err)
	}
	if results[0].Available || results[0].StockDescription != "Quantity unknown" || results[0].TotalWeight.Valid {
		t.Errorf("result = %+v, want unknown quantity and no weight", results[0])
	}
}

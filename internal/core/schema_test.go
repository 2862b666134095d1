package core

import (
	"errors"
	"reflect"
	"testing"
)

func TestValidateHeaders(t *testing.T) {
	full := []string{ColCategory, ColSizeOD, ColThickness, ColWeight, ColQuantity}

	tests := []struct {
		name        string
		header      []string
		wantMissing []string
	}{
		{
			name:   "exact header",
			header: full,
		},
		{
			name:   "reordered with extra columns",
			header: []string{"Remarks", ColQuantity, ColWeight, "Location", ColThickness, ColSizeOD, ColCategory},
		},
		{
			name:   "surrounding whitespace is ignored",
			header: []string{" Pipe Category ", "Pipe Size (OD)\t", ColThickness, ColWeight, ColQuantity},
		},
		{
			name:        "one column missing",
			header:      []string{ColCategory, ColSizeOD, ColThickness, ColQuantity},
			wantMissing: []string{ColWeight},
		},
		{
			name:        "case sensitive",
			header:      []string{"pipe category", ColSizeOD, ColThickness, ColWeight, "QUANTITY"},
			wantMissing: []string{ColCategory, ColQuantity},
		},
		{
			name:        "empty header",
			header:      nil,
			wantMissing: full,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := ValidateHeaders(tt.header, PipeFieldSpecs)

			if len(tt.wantMissing) == 0 {
				if err != nil {
					t.Fatalf("ValidateHeaders() error = %v", err)
				}
				for _, col := range full {
					if _, ok := idx[col]; !ok {
						t.Errorf("index missing column %q", col)
					}
				}
				return
			}

			if !errors.Is(err, ErrSchemaMismatch) {
				t.Fatalf("ValidateHeaders() error = %v, want ErrSchemaMismatch", err)
			}
			var mismatch *SchemaMismatchError
			if !errors.As(err, &mismatch) {
				t.Fatalf("error is not *SchemaMismatchError: %T", err)
			}
			if !reflect.DeepEqual(mismatch.Missing, tt.wantMissing) {
				t.Errorf("Missing = %v, want %v", mismatch.Missing, tt.wantMissing)
			}
			if !reflect.DeepEqual(mismatch.Required, full) {
				t.Errorf("Required = %v, want %v", mismatch.Required, full)
			}
		})
	}
}

func TestMakeHeaderIndex_FirstOccurrenceWins(t *testing.T) {
	idx := MakeHeaderIndex([]string{"Quantity", "", "Quantity"})
	if idx["Quantity"] != 0 {
		t.Errorf("idx[Quantity] = %d, want 0", idx["Quantity"])
	}
	if _, ok := idx[""]; ok {
		t.Error("empty header name should not be indexed")
	}
}

package core

import (
	"strings"
)

// MakeHeaderIndex creates a HeaderIndex from a header row.
// Names are trimmed; when a name repeats, the first occurrence wins.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := CleanCell(h)
		if key == "" {
			continue
		}
		if _, seen := idx[key]; !seen {
			idx[key] = i
		}
	}
	return idx
}

// RequiredColumns returns the names of the required columns in specs.
func RequiredColumns(specs []FieldSpec) []string {
	var names []string
	for _, spec := range specs {
		if spec.Required {
			names = append(names, spec.Name)
		}
	}
	return names
}

// ValidateHeaders checks that every required column exists in the header row.
// This is a set containment check; column order and extra columns are ignored.
// Returns the header index, or a *SchemaMismatchError naming the required and
// missing columns.
func ValidateHeaders(header []string, specs []FieldSpec) (HeaderIndex, error) {
	idx := MakeHeaderIndex(header)
	var missing []string

	for _, spec := range specs {
		if !spec.Required {
			continue
		}
		if _, ok := idx[spec.Name]; !ok {
			missing = append(missing, spec.Name)
		}
	}

	if len(missing) > 0 {
		return nil, &SchemaMismatchError{
			Required: RequiredColumns(specs),
			Missing:  missing,
		}
	}

	return idx, nil
}

// cell returns the trimmed value of the named column, or "" if the row is
// shorter than the column position.
func cell(row []string, idx HeaderIndex, name string) string {
	pos, ok := idx[name]
	if !ok || pos >= len(row) {
		return ""
	}
	return CleanCell(row[pos])
}

// blankRow reports whether every cell in the row is empty.
func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
